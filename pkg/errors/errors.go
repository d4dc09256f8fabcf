// Package errors provides structured error reporting for ripple containers
// and their hosts.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidConfiguration indicates construction parameters that
	// violate their invariants, such as alpha outside [0, 1].
	KindInvalidConfiguration
	// KindTooManyChildren indicates a single-child container was given more
	// than one child.
	KindTooManyChildren
	// KindParsing indicates a malformed attribute document.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidConfiguration:
		return "invalid_configuration"
	case KindTooManyChildren:
		return "too_many_children"
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidConfiguration = &Error{Kind: KindInvalidConfiguration}
	ErrTooManyChildren      = &Error{Kind: KindTooManyChildren}
	ErrParsing              = &Error{Kind: KindParsing}
)

// Error is a categorized failure.
type Error struct {
	// Op is the operation that failed (e.g., "ripple.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
	if e.Op == "" {
		return fmt.Sprintf("[%s]: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a sentinel of the same kind: an *Error with no Op and no Err.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// New builds an error of the given kind with a formatted message.
func New(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Op:        op,
		Kind:      kind,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// InvalidConfiguration reports a construction parameter that violates its
// invariant.
func InvalidConfiguration(op, format string, args ...any) *Error {
	return New(op, KindInvalidConfiguration, format, args...)
}

// TooManyChildren reports a single-child container that found n children.
// The stack is captured because the failure surfaces as a layout panic.
func TooManyChildren(op string, n int) *Error {
	err := New(op, KindTooManyChildren, "container accepts at most one child, found %d", n)
	err.StackTrace = CaptureStack()
	return err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error, so a panicked
// *Error still matches its sentinel.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// ParseError describes a single bad field in an attribute document.
type ParseError struct {
	// Field is the attribute key.
	Field string
	// Value is the raw value found.
	Value any
	// Reason explains what was expected.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("attribute %s=%v: %s", e.Field, e.Value, e.Reason)
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
