package session

import (
	"sync"
	"time"
)

// BootPhase is where the boot sequence is.
type BootPhase int

const (
	BootIdle BootPhase = iota
	BootPlaying
	BootDone
)

func (p BootPhase) String() string {
	switch p {
	case BootPlaying:
		return "playing"
	case BootDone:
		return "done"
	default:
		return "idle"
	}
}

// BootLine is printed after waiting Delay.
type BootLine struct {
	Text  string
	Delay time.Duration
}

// Boot plays a list of lines once. Every Start and Cancel bumps the
// generation; a tick carrying an older generation is ignored, so a
// cancelled sequence can never print again.
type Boot struct {
	mu    sync.Mutex
	lines []BootLine
	speed float64
	phase BootPhase
	next  int
	gen   int
}

// NewBoot creates a boot sequence. Speed scales playback: 2 plays twice
// as fast, values <= 0 mean normal speed.
func NewBoot(lines []BootLine, speed float64) *Boot {
	if speed <= 0 {
		speed = 1
	}
	return &Boot{lines: lines, speed: speed}
}

// Phase returns the current phase.
func (b *Boot) Phase() BootPhase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase
}

// Generation returns the current generation.
func (b *Boot) Generation() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gen
}

// Start moves Idle to Playing and returns the generation ticks must carry.
// It reports false if the sequence already started. An empty sequence goes
// straight to Done.
func (b *Boot) Start() (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != BootIdle {
		return b.gen, false
	}
	b.gen++
	if len(b.lines) == 0 {
		b.phase = BootDone
		return b.gen, true
	}
	b.phase = BootPlaying
	return b.gen, true
}

// Delay is how long to wait before the next line, scaled by speed.
func (b *Boot) Delay() (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != BootPlaying {
		return 0, false
	}
	return time.Duration(float64(b.lines[b.next].Delay) / b.speed), true
}

// Advance returns the next line for a tick of generation gen. Stale
// generations and finished sequences yield false. Returning the last line
// moves the sequence to Done.
func (b *Boot) Advance(gen int) (BootLine, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != BootPlaying || gen != b.gen {
		return BootLine{}, false
	}
	line := b.lines[b.next]
	b.next++
	if b.next == len(b.lines) {
		b.phase = BootDone
	}
	return line, true
}

// Cancel skips the remaining lines.
func (b *Boot) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase == BootDone {
		return
	}
	b.phase = BootDone
	b.gen++
}

// DefaultBootLines is the standard boot sequence.
func DefaultBootLines() []BootLine {
	ms := time.Millisecond
	return []BootLine{
		{"╔═══════════════════════════════════════════════════════════════╗", 0},
		{"║              SWMCC Operating System v2025.11.14               ║", 100 * ms},
		{"║         Definitely Not Running on a Raspberry Pi Zero         ║", 100 * ms},
		{"╚═══════════════════════════════════════════════════════════════╝", 100 * ms},
		{"", 200 * ms},
		{"🔧 Initialising swmcc kernel...", 300 * ms},
		{"🧠 Loading personality modules... OK", 400 * ms},
		{"☕ Mounting /dev/coffee... OK", 350 * ms},
		{"😴 Starting procrastination daemon... FAILED (as expected)", 500 * ms},
		{"🚂 Loading Rails monolith driver... OK", 300 * ms},
		{"🐍 Detecting Python installations... Found 47 versions", 450 * ms},
		{"🤖 Initialising AI agent \"swanson\" (Stephen's alter ego)... ONLINE", 500 * ms},
		{"🔍 Indexing content for intelligent search... OK", 350 * ms},
		{"😏 Enabling sarcasm module... Because clearly Stephen needs help with that", 400 * ms},
		{"✨ System ready. Stephen is not.", 300 * ms},
		{"", 200 * ms},
		{"Available Commands:", 100 * ms},
		{"", 100 * ms},
		{"File System:", 50 * ms},
		{"  ls [path]               # List contents", 50 * ms},
		{"  cd <path>               # Change directory", 50 * ms},
		{"  pwd                     # Print working directory", 50 * ms},
		{"  cat <file>              # Read file contents", 50 * ms},
		{"  tree                    # Show directory structure", 50 * ms},
		{"", 50 * ms},
		{"Information:", 50 * ms},
		{"  whoami                  # About Stephen", 50 * ms},
		{"  projects                # List active projects", 50 * ms},
		{"  help                    # Show all commands", 50 * ms},
		{"", 50 * ms},
		{"Swanson AI Chat:", 50 * ms},
		{"  swanson                 # Meet Swanson", 50 * ms},
		{"  Just ask naturally:     # \"Tell me about Rails\"", 50 * ms},
		{"                          # \"What projects is he working on?\"", 50 * ms},
		{"", 50 * ms},
		{"Terminal:", 50 * ms},
		{"  clear                   # Clear screen", 50 * ms},
		{"  exit                    # Close terminal", 50 * ms},
		{"", 100 * ms},
	}
}
