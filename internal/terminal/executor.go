package terminal

import (
	"sort"
	"strings"

	"swmterm/internal/content"
	"swmterm/internal/errors"
	"swmterm/internal/matcher"
	"swmterm/internal/vfs"
	"swmterm/pkg/types"
)

// StateUpdate is the session change a command asks for.
type StateUpdate struct {
	CurrentPath string
}

// Result is the outcome of one command. Failures are ordinary text results.
type Result struct {
	Kind   types.ResultKind
	Text   string
	Image  string
	Update *StateUpdate
	// Rule names the matcher rule that answered a question, if any.
	Rule string
}

func text(s string) Result { return Result{Kind: types.ResultText, Text: s} }

func failure(err *errors.TerminalError) Result { return text(err.Message()) }

// SnapshotSource supplies the content a command runs against.
type SnapshotSource interface {
	Snapshot() *content.Snapshot
}

type staticSource struct{ snap *content.Snapshot }

func (s staticSource) Snapshot() *content.Snapshot { return s.snap }

// StaticSource serves one fixed snapshot.
func StaticSource(snap *content.Snapshot) SnapshotSource {
	return staticSource{snap: snap}
}

// Observer is told about every executed command.
type Observer func(name string, res Result)

// Option configures an Executor.
type Option func(*Executor)

// WithProfileImage sets the image whoami shows.
func WithProfileImage(path string) Option {
	return func(e *Executor) { e.profileImage = path }
}

// WithResponder replaces the question responder.
func WithResponder(r *matcher.Responder) Option {
	return func(e *Executor) { e.responder = r }
}

// WithObserver registers fn to be called after each command.
func WithObserver(fn Observer) Option {
	return func(e *Executor) { e.observers = append(e.observers, fn) }
}

type handler func(e *Executor, cmd Command, cwd string, snap *content.Snapshot) Result

// Executor runs commands against the current snapshot. It holds no session
// state: the caller passes the working directory and applies the returned
// update.
type Executor struct {
	source       SnapshotSource
	responder    *matcher.Responder
	profileImage string
	observers    []Observer
	handlers     map[string]handler
}

// NewExecutor creates an executor reading content from source.
func NewExecutor(source SnapshotSource, opts ...Option) *Executor {
	e := &Executor{
		source:       source,
		profileImage: DefaultProfileImage,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.responder == nil {
		e.responder = matcher.NewResponder()
	}
	e.handlers = map[string]handler{
		"help":     (*Executor).help,
		"clear":    clearScreen,
		"cls":      clearScreen,
		"exit":     closeTerminal,
		"quit":     closeTerminal,
		"ls":       (*Executor).list,
		"dir":      (*Executor).list,
		"cd":       (*Executor).changeDir,
		"pwd":      printDir,
		"cat":      (*Executor).cat,
		"tree":     (*Executor).tree,
		"whoami":   (*Executor).whoami,
		"about":    fixed(aboutText),
		"projects": fixed(projectsText),
		"swanson":  fixed(swansonText),
		"ask":      (*Executor).ask,
	}
	return e
}

// Commands lists the command names the executor understands, sorted.
func (e *Executor) Commands() []string {
	names := make([]string, 0, len(e.handlers))
	for name := range e.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns the snapshot commands currently run against.
func (e *Executor) Snapshot() *content.Snapshot {
	snap := e.source.Snapshot()
	if snap == nil {
		snap = content.DefaultSnapshot()
	}
	return snap
}

// Execute runs cmd with cwd as the working directory. One snapshot is used
// for the whole command.
func (e *Executor) Execute(cmd Command, cwd string) Result {
	res := e.execute(cmd, cwd)
	for _, fn := range e.observers {
		fn(strings.ToLower(cmd.Name), res)
	}
	return res
}

func (e *Executor) execute(cmd Command, cwd string) Result {
	if cmd.Name == "" {
		return text("")
	}
	if cwd == "" {
		cwd = "/"
	}
	snap := e.Snapshot()

	if h, ok := e.handlers[strings.ToLower(cmd.Name)]; ok {
		return h(e, cmd, cwd, snap)
	}

	line := cmd.Line()
	if matcher.IsQuestion(line) {
		return e.answer(line, snap)
	}
	return failure(errors.NewTerminalError(cmd.Name, "", errors.CommandNotFound))
}

func fixed(s string) handler {
	return func(*Executor, Command, string, *content.Snapshot) Result { return text(s) }
}

func clearScreen(*Executor, Command, string, *content.Snapshot) Result {
	return Result{Kind: types.ResultClear}
}

func closeTerminal(*Executor, Command, string, *content.Snapshot) Result {
	return Result{Kind: types.ResultClose}
}

func printDir(_ *Executor, _ Command, cwd string, _ *content.Snapshot) Result {
	return text(cwd)
}

func (e *Executor) help(cmd Command, _ string, _ *content.Snapshot) Result {
	if len(cmd.Args) == 0 {
		return text(helpText)
	}
	if h, ok := commandHelp[cmd.Args[0]]; ok {
		return text(h)
	}
	return text("No help available for: " + cmd.Args[0])
}

// target resolves the optional path argument. The second value is how the
// path is named in messages: the argument as typed, or the resolved path.
func target(cmd Command, cwd string) (string, string) {
	if len(cmd.Args) == 0 {
		return cwd, cwd
	}
	return vfs.ResolvePath(cwd, cmd.Args[0]), cmd.Args[0]
}

func (e *Executor) list(cmd Command, cwd string, snap *content.Snapshot) Result {
	path, shown := target(cmd, cwd)
	node, ok := snap.FS.Lookup(path)
	if !ok {
		return failure(errors.NewTerminalError("ls", shown, errors.NotFound))
	}
	if !node.IsDir() {
		return text(shown)
	}
	return text(strings.Join(node.List(), "\n"))
}

func (e *Executor) changeDir(cmd Command, cwd string, snap *content.Snapshot) Result {
	if len(cmd.Args) == 0 {
		return Result{Kind: types.ResultText, Update: &StateUpdate{CurrentPath: "/"}}
	}

	arg := cmd.Args[0]
	path := vfs.ResolvePath(cwd, arg)
	node, ok := snap.FS.Lookup(path)
	if !ok {
		return failure(errors.NewTerminalError("cd", arg, errors.NotFound))
	}
	if !node.IsDir() {
		return failure(errors.NewTerminalError("cd", arg, errors.NotADirectory))
	}
	return Result{Kind: types.ResultText, Update: &StateUpdate{CurrentPath: vfs.Normalize(path)}}
}

func (e *Executor) cat(cmd Command, cwd string, snap *content.Snapshot) Result {
	if len(cmd.Args) == 0 {
		return failure(errors.NewTerminalError("cat", "", errors.MissingOperand))
	}

	arg := cmd.Args[0]
	node, ok := snap.FS.Lookup(vfs.ResolvePath(cwd, arg))
	if !ok {
		return failure(errors.NewTerminalError("cat", arg, errors.NotFound))
	}
	if node.IsDir() {
		return failure(errors.NewTerminalError("cat", arg, errors.IsADirectory))
	}
	if node.Content == "" {
		return text("File is empty")
	}
	return text(node.Content)
}

func (e *Executor) tree(cmd Command, cwd string, snap *content.Snapshot) Result {
	path, shown := target(cmd, cwd)
	node, ok := snap.FS.Lookup(path)
	if !ok {
		return failure(errors.NewTerminalError("tree", shown, errors.NotFound))
	}
	return text(vfs.RenderTree(node, vfs.Base(path)))
}

func (e *Executor) whoami(Command, string, *content.Snapshot) Result {
	return Result{Kind: types.ResultImage, Text: whoamiText, Image: e.profileImage}
}

func (e *Executor) ask(cmd Command, _ string, snap *content.Snapshot) Result {
	question := strings.Join(cmd.Args, " ")
	if strings.TrimSpace(question) == "" {
		return text(askUsage)
	}
	return e.answer(question, snap)
}

func (e *Executor) answer(question string, snap *content.Snapshot) Result {
	if !snap.Loaded {
		return Result{Kind: types.ResultText, Text: stillLoading, Rule: errors.DataNotReady.String()}
	}
	ans := e.responder.Respond(strings.ToLower(question), snap)
	return Result{Kind: types.ResultText, Text: ans.Text, Rule: ans.Rule}
}
