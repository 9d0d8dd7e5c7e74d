// Package errors provides standardized error handling for swmterm.
// It defines the error kinds a terminal command or the content pipeline can
// produce, and helpers for consistent creation, wrapping and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Filesystem error kinds
	NotFound
	NotADirectory
	IsADirectory
	// Usage error kinds
	MissingOperand
	CommandNotFound
	// Data error kinds
	DataNotReady
	InvalidIndex
	// Config error kinds
	InvalidConfig
	// Session error kinds
	SessionNotFound
)

// String returns a short name for the kind, used in logs and API payloads.
func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case NotADirectory:
		return "not_a_directory"
	case IsADirectory:
		return "is_a_directory"
	case MissingOperand:
		return "missing_operand"
	case CommandNotFound:
		return "command_not_found"
	case DataNotReady:
		return "data_not_ready"
	case InvalidIndex:
		return "invalid_index"
	case InvalidConfig:
		return "invalid_config"
	case SessionNotFound:
		return "session_not_found"
	default:
		return "unknown"
	}
}

// Common error constants for frequently occurring errors
var (
	ErrDataNotReady    = &ApplicationError{msg: "content index not loaded", kind: DataNotReady}
	ErrSessionNotFound = &ApplicationError{msg: "session not found", kind: SessionNotFound}
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// Is matches sentinel application errors by kind so that wrapped copies of
// ErrDataNotReady or ErrSessionNotFound still satisfy errors.Is.
func (e *ApplicationError) Is(target error) bool {
	t, ok := target.(*ApplicationError)
	if !ok {
		return false
	}
	return t.err == nil && t.kind != Unknown && t.kind == e.kind && t.msg == e.msg
}

// TerminalError is an error raised by a terminal command. Command is the
// command name as typed and Arg is the operand the user supplied.
type TerminalError struct {
	ApplicationError
	command string
	arg     string
}

// NewTerminalError creates a new terminal command error
func NewTerminalError(command, arg string, kind ErrorKind) *TerminalError {
	return &TerminalError{
		ApplicationError: ApplicationError{
			msg:  kindMessage(kind),
			kind: kind,
		},
		command: command,
		arg:     arg,
	}
}

func kindMessage(kind ErrorKind) string {
	switch kind {
	case NotFound:
		return "No such file or directory"
	case NotADirectory:
		return "not a directory"
	case IsADirectory:
		return "Is a directory"
	case MissingOperand:
		return "missing file operand"
	case CommandNotFound:
		return "Command not found"
	default:
		return "error"
	}
}

// Command returns the command that failed
func (e *TerminalError) Command() string {
	return e.command
}

// Arg returns the offending argument
func (e *TerminalError) Arg() string {
	return e.arg
}

// Error returns the error as a Go-style message
func (e *TerminalError) Error() string {
	if e.arg != "" {
		return fmt.Sprintf("%s: %s: %s", e.command, e.arg, e.msg)
	}
	return fmt.Sprintf("%s: %s", e.command, e.msg)
}

// Message renders the error the way a shell prints it. Each command has its
// own phrasing, which visitors recognise from real shells.
func (e *TerminalError) Message() string {
	switch e.kind {
	case NotFound:
		switch e.command {
		case "ls", "dir":
			return fmt.Sprintf("ls: cannot access '%s': No such file or directory", e.arg)
		case "cd":
			return fmt.Sprintf("cd: no such file or directory: %s", e.arg)
		default:
			return fmt.Sprintf("%s: %s: No such file or directory", e.command, e.arg)
		}
	case NotADirectory:
		return fmt.Sprintf("%s: not a directory: %s", e.command, e.arg)
	case IsADirectory:
		return fmt.Sprintf("%s: %s: Is a directory", e.command, e.arg)
	case MissingOperand:
		return fmt.Sprintf("%s: missing file operand\nTry '%s --help' for more information.", e.command, e.command)
	case CommandNotFound:
		return fmt.Sprintf("Command not found: %s\nType 'help' for available commands.", e.command)
	}
	return e.Error()
}

// IndexError represents a malformed content index
type IndexError struct {
	ApplicationError
	path string
}

// NewIndexError creates a new index error. Path locates the offending
// element inside the payload, e.g. "fileSystem/projects/jotter.md".
func NewIndexError(msg string, path string, err error) *IndexError {
	return &IndexError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidIndex,
		},
		path: path,
	}
}

// Error returns the index error message
func (e *IndexError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the payload path associated with the error
func (e *IndexError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidConfig,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: KindOf(err),
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: KindOf(err),
	}
}

// KindOf returns the kind of the first application error in err's chain.
func KindOf(err error) ErrorKind {
	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return Unknown
}

// IsNotFound checks if the error is a not-found error
func IsNotFound(err error) bool {
	return KindOf(err) == NotFound
}

// IsDataNotReady checks if the error signals an index that has not loaded yet
func IsDataNotReady(err error) bool {
	return KindOf(err) == DataNotReady
}

// IsInvalidIndex checks if the error is a malformed content index
func IsInvalidIndex(err error) bool {
	return KindOf(err) == InvalidIndex
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return KindOf(err) == InvalidConfig
}

// IsSessionNotFound checks if the error is an unknown session error
func IsSessionNotFound(err error) bool {
	return KindOf(err) == SessionNotFound
}
