package server

import "swmterm/internal/content"

// ExecRequest is the body of POST /api/terminal/sessions/:id/exec.
type ExecRequest struct {
	Line string `json:"line" validate:"required,max=1024"`
}

// SessionResponse describes a newly created session.
type SessionResponse struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Cwd    string `json:"cwd"`
}

// ExecResponse is the outcome of one submitted line.
type ExecResponse struct {
	Kind   string `json:"kind"`
	Output string `json:"output"`
	Image  string `json:"image,omitempty"`
	Rule   string `json:"rule,omitempty"`
	Prompt string `json:"prompt"`
	Cwd    string `json:"cwd"`
}

// HistoryResponse lists a session's submitted lines, oldest first.
type HistoryResponse struct {
	ID      string   `json:"id"`
	History []string `json:"history"`
}

// IndexResponse summarises the loaded content index.
type IndexResponse struct {
	Source string        `json:"source"`
	Stats  content.Stats `json:"stats"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
