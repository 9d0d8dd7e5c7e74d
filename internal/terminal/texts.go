package terminal

// DefaultProfileImage is shown next to the whoami biography.
const DefaultProfileImage = "/images/stephen-mccullough.jpg"

const helpText = `Available commands:

File System:
  ls [path]          List directory contents
  cd <path>          Change directory
  pwd                Print working directory
  cat <file>         Display file contents
  tree [path]        Display directory tree

Information:
  whoami             About Stephen McCullough
  about              One-line bio
  projects           List active projects
  swanson            Meet Swanson
  ask <question>     Ask Swanson a question
  help [command]     Show this help or help for specific command
  clear              Clear terminal
  exit               Close terminal

Try asking questions like:
  "Tell me about his Rails experience"
  "What projects is he working on?"

Navigate the site like a file system:
  ls projects/       View available project articles
  cat projects/jotter.md   Read about the Jotter project`

var commandHelp = map[string]string{
	"ls":       "ls [path] - List directory contents",
	"cd":       "cd <path> - Change directory (.. for parent, / for root)",
	"pwd":      "pwd - Print working directory",
	"cat":      "cat <file> - Display file contents",
	"tree":     "tree [path] - Display directory tree",
	"clear":    "clear - Clear terminal screen",
	"exit":     "exit - Close the terminal",
	"help":     "help [command] - Show help for a command",
	"whoami":   "whoami - Display information about Stephen",
	"about":    "about - One-line bio and link",
	"projects": "projects - Quick list of active projects",
	"swanson":  "swanson - Meet Stephen's terminal alter ego",
	"ask":      "ask <question> - Ask a question about Stephen's work",
}

const whoamiText = `Stephen McCullough
Software Engineer | Northern Ireland

Currently building AI Operating Systems and personal projects.
Specialising in Rails, Python, and modern web architecture.

Visit /about for more information
Run 'projects' to see current work`

const aboutText = "Stephen McCullough - Software Engineer\nView full bio: /about"

const projectsText = `Active Projects:

• swm.cc - This site (Astro 5 + Tailwind CSS 4)
• whatisonthe.tv - TV tracking app (FastAPI + SvelteKit)
• Jotter - Bookmark manager (Rails 8 + Hotwire)
• the-mcculloughs.org - Family photo archive (Rails 8)

Run 'ls projects/' for full list
Visit /projects on the website for detailed articles`

const swansonText = `╔═══════════════════════════════════════╗
║  SWANSON v1.0 - Stephen's alter ego   ║
╚═══════════════════════════════════════╝

I answer questions about Stephen's work. No cloud. No LLM.
Pre-written answers, a knowledge base and a search index.

Just ask:
  What about rails?
  What projects is he working on?
  Who is Stephen?

Or be explicit: ask <question>`

const askUsage = "Usage: ask <question>\nExample: ask what about rails?"

const stillLoading = "Swanson is still loading the knowledge base. Try again in a moment."

// WelcomeText is shown when the terminal opens after boot and after clear.
const WelcomeText = "Welcome to swm.cc. Type 'help' for available commands, or just ask a question."
