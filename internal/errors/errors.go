// Package errors provides structured error types for dirshell.
// Every command failure carries one of these so callers can tell the
// failure classes apart without parsing messages.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindMissingArgument
	KindAlreadyExists
	KindInvalidPath
	KindForbidden
	KindNotFound
	KindUnknownCommand
	KindConfig
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindMissingArgument:
		return "missing argument"
	case KindAlreadyExists:
		return "already exists"
	case KindInvalidPath:
		return "invalid path"
	case KindForbidden:
		return "forbidden operation"
	case KindNotFound:
		return "not found"
	case KindUnknownCommand:
		return "unknown command"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for dirshell.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the user-facing text of err without the Op prefix.
// For an Error built from a bare message that is the message itself.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Context != "" {
			return e.Context
		}
		return Message(e.Err)
	}
	return err.Error()
}

// Command errors
func InvalidArgument(op Op, msg string) error {
	return E(op, KindInvalidArgument, msg)
}

func MissingArgument(op Op, msg string) error {
	return E(op, KindMissingArgument, msg)
}

func AlreadyExists(op Op, msg string) error {
	return E(op, KindAlreadyExists, msg)
}

func InvalidPath(op Op, msg string) error {
	return E(op, KindInvalidPath, msg)
}

func Forbidden(op Op, msg string) error {
	return E(op, KindForbidden, msg)
}

func NotFound(op Op, msg string) error {
	return E(op, KindNotFound, msg)
}

func UnknownCommand(msg string) error {
	return E(Op("shell.Dispatch"), KindUnknownCommand, msg)
}

// Store errors
func PositionOutOfRange(pos, size int) error {
	return E(Op("tree.RemoveAt"), KindNotFound, fmt.Sprintf("position %d out of range [0,%d)", pos, size))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindConfig, reason)
}

// Front end errors
func ReadFailed(source string, err error) error {
	return E(Op("shell.Run"), KindIO, fmt.Sprintf("failed to read commands from %s", source), err)
}
