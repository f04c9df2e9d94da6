package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEnv     Phase = "env"     // environment bridge operations
	PhaseLoad    Phase = "load"    // source unit registration
	PhaseConvert Phase = "convert" // platform string conversion
	PhaseStorage Phase = "storage" // virtual filesystem operations
)

// Kind categorizes the error
type Kind string

const (
	KindArgument     Kind = "argument"     // guest-visible ArgumentError
	KindInvalidUTF8  Kind = "invalid_utf8" // byte sequence not representable natively
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict" // file/directory collisions
	KindRegistration Kind = "registration"
	KindInvalidInput Kind = "invalid_input"
	KindPlatform     Kind = "platform" // OS primitive failed after validation
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "/"))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Message returns the guest-facing message without the phase/kind prefix.
// Guest exceptions carry only the detail text.
func (e *Error) Message() string {
	return e.Detail
}

// Convenience constructors for common error patterns

// Argument creates the guest-visible ArgumentError raised by the
// environment bridge for malformed names and values.
func Argument(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseEnv,
		Kind:   KindArgument,
		Detail: detail,
	}
}

// IsArgument reports whether err is a guest-visible ArgumentError
func IsArgument(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindArgument
}

// InvalidUTF8 creates an invalid UTF-8 conversion error
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Conflict creates a file/directory conflict error for a load path
func Conflict(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseStorage,
		Kind:   KindConflict,
		Path:   path,
		Detail: detail,
	}
}

// Registration creates a capability registration error
func Registration(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindRegistration,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Platform wraps an OS primitive failure that slipped past pre-validation
func Platform(op string, cause error) *Error {
	return &Error{
		Phase:  PhaseEnv,
		Kind:   KindPlatform,
		Detail: fmt.Sprintf("%s failed", op),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
