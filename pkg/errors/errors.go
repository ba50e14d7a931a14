// Package errors provides structured error reporting for the circle layout.
//
// Geometry never fails: malformed percentages degrade into odd sectors.
// What this package carries are the faults around it, such as a child that
// panics while painting, a missing inner-circle resource, or a config file
// that cannot be read.
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
	// KindLayout indicates degenerate or inconsistent layout input.
	KindLayout
	// KindPaint indicates a failure while compositing.
	KindPaint
	// KindPointer indicates a failure while routing a pointer event.
	KindPointer
	// KindConfig indicates an unreadable or invalid configuration.
	KindConfig
	// KindResource indicates a missing drawable or image resource.
	KindResource
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindPaint:
		return "paint"
	case KindPointer:
		return "pointer"
	case KindConfig:
		return "config"
	case KindResource:
		return "resource"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error carrying the failing operation and its kind.
type Error struct {
	// Op is the operation that failed (e.g., "circlelayout.SetInnerCircleResource").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error for op wrapping err.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Errorf returns an Error for op with a formatted message.
func Errorf(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return KindUnknown
		}
		err = u.Unwrap()
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.HandlePointer").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
