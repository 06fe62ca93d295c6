// Package errors provides structured error handling for the Canopy toolkit.
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
	// KindState indicates a state-store mutation error.
	KindState
	// KindListener indicates a failure inside a subscription callback.
	KindListener
	// KindLifecycle indicates a failure during node teardown.
	KindLifecycle
	// KindCompute indicates a computed-value recomputation error.
	KindCompute
	// KindConfig indicates a configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindListener:
		return "listener"
	case KindLifecycle:
		return "lifecycle"
	case KindCompute:
		return "compute"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CanopyError represents a structured error in the Canopy toolkit.
type CanopyError struct {
	// Op is the operation that failed (e.g., "state.SetPath").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the state path involved, if applicable.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CanopyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CanopyError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "state.emit").
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

// ErrorHandler receives errors reported by the Canopy toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *CanopyError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
