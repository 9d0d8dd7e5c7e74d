// Package session holds one visitor's terminal state: the working
// directory, the command history and the boot sequence.
package session

import (
	"strings"
	"sync"
	"time"

	"swmterm/internal/content"
	"swmterm/internal/terminal"
	"swmterm/internal/vfs"
	"swmterm/pkg/types"
)

// Executor runs commands for a session. *terminal.Executor implements it.
type Executor interface {
	Execute(cmd terminal.Command, cwd string) terminal.Result
	Commands() []string
	Snapshot() *content.Snapshot
}

// State is the per-visitor terminal state.
type State struct {
	// CurrentPath is always a normalized path that named a directory when
	// it was set.
	CurrentPath string
	// History holds submitted lines, oldest first.
	History []string
	// Cursor indexes History; len(History) means a fresh line is being edited.
	Cursor int
}

// PromptConfig names the user and host shown in the prompt.
type PromptConfig struct {
	User string
	Host string
}

// DefaultPrompt is visitor@swm.cc.
var DefaultPrompt = PromptConfig{User: "visitor", Host: "swm.cc"}

// Option configures a Session.
type Option func(*Session)

// WithPrompt sets the prompt's user and host.
func WithPrompt(p PromptConfig) Option {
	return func(s *Session) {
		if p.User != "" {
			s.prompt.User = p.User
		}
		if p.Host != "" {
			s.prompt.Host = p.Host
		}
	}
}

// WithID sets the session identifier.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// Session is safe for concurrent use; calls are serialized.
type Session struct {
	mu         sync.Mutex
	id         string
	exec       Executor
	prompt     PromptConfig
	state      State
	createdAt  time.Time
	lastActive time.Time
}

// New creates a session at the root directory.
func New(exec Executor, opts ...Option) *Session {
	now := time.Now()
	s := &Session{
		exec:       exec,
		prompt:     DefaultPrompt,
		state:      State{CurrentPath: "/", History: []string{}},
		createdAt:  now,
		lastActive: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier, empty for local sessions.
func (s *Session) ID() string { return s.id }

// CreatedAt returns when the session started.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// LastActive returns when a line was last submitted.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.History = append([]string(nil), s.state.History...)
	return st
}

// CurrentPath returns the working directory.
func (s *Session) CurrentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentPath
}

// Prompt renders the prompt for the working directory.
func (s *Session) Prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promptLocked()
}

func (s *Session) promptLocked() string {
	return FormatPrompt(s.prompt, s.state.CurrentPath)
}

// FormatPrompt renders user@host:~$ at the root, otherwise the path without
// its leading slash in place of "~".
func FormatPrompt(p PromptConfig, path string) string {
	where := "~"
	if path != "/" && path != "" {
		where = strings.Replace(path, "/", "", 1)
	}
	return p.User + "@" + p.Host + ":" + where + "$ "
}

// Submit runs line. Blank input is ignored and reported with ok false.
// The line is recorded in the history and the cursor moves past its end.
func (s *Session) Submit(line string) (res terminal.Result, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return terminal.Result{Kind: types.ResultText}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res = s.exec.Execute(terminal.Parse(line), s.state.CurrentPath)
	if res.Update != nil {
		s.state.CurrentPath = vfs.Normalize(res.Update.CurrentPath)
	}
	s.state.History = append(s.state.History, line)
	s.state.Cursor = len(s.state.History)
	s.lastActive = time.Now()
	return res, true
}

// Prev steps back through the history. It reports false at the oldest
// entry, leaving the input as it is.
func (s *Session) Prev() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Cursor <= 0 {
		return "", false
	}
	s.state.Cursor--
	return s.state.History[s.state.Cursor], true
}

// Next steps forward through the history. Moving past the newest entry
// returns an empty line.
func (s *Session) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Cursor < len(s.state.History)-1 {
		s.state.Cursor++
		return s.state.History[s.state.Cursor]
	}
	s.state.Cursor = len(s.state.History)
	return ""
}

// History returns a copy of the submitted lines.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.state.History...)
}
