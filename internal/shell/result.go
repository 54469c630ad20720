package shell

import "github.com/zhubert/dirshell/internal/errors"

// Status classifies a Result.
type Status int

const (
	// StatusSuccess is a completed command.
	StatusSuccess Status = iota
	// StatusNotice is a soft failure that is reported but is not an
	// error, such as ls finding no children.
	StatusNotice
	// StatusFailure is a rejected command. Nothing was changed.
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotice:
		return "notice"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Status codes carried by success-class results.
const (
	CodeOK     = 200
	CodeNotice = 403
)

// Result is the value every command handler returns. Exactly one of the
// three constructors below builds it.
type Result struct {
	Status  Status
	Code    int
	Message string
	// Err is set for notices and failures and is always an *errors.Error.
	Err error
}

// Success returns a StatusSuccess result.
func Success(msg string) Result {
	return Result{Status: StatusSuccess, Code: CodeOK, Message: msg}
}

// Notice returns a StatusNotice result for a soft failure.
func Notice(err error) Result {
	return Result{Status: StatusNotice, Code: CodeNotice, Message: errors.Message(err), Err: err}
}

// Failure returns a StatusFailure result.
func Failure(err error) Result {
	return Result{Status: StatusFailure, Message: errors.Message(err), Err: err}
}

// OK reports whether the command succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Kind returns the error kind of a notice or failure, KindUnknown otherwise.
func (r Result) Kind() errors.Kind {
	return errors.GetKind(r.Err)
}
