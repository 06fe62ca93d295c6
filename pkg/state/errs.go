package state

import "fmt"

// ForbiddenKeyError reports a write whose path contains a guarded prototype
// key. The tree is left untouched.
type ForbiddenKeyError struct {
	// Path is the full path that was rejected.
	Path string
	// Segment is the offending segment.
	Segment string
}

func (e *ForbiddenKeyError) Error() string {
	return fmt.Sprintf("forbidden key %q in path %q", e.Segment, e.Path)
}

// PathSyntaxError reports a malformed path.
type PathSyntaxError struct {
	Path   string
	Reason string
}

func (e *PathSyntaxError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// PathTypeError reports a write that cannot be applied because an existing
// value along the path has an incompatible shape, such as a non-numeric
// segment addressing a sequence.
type PathTypeError struct {
	Path    string
	Segment string
	Reason  string
}

func (e *PathTypeError) Error() string {
	return fmt.Sprintf("cannot write path %q at segment %q: %s", e.Path, e.Segment, e.Reason)
}

// ValidationFailedError reports a transaction whose validator rejected the
// resulting state. The tree has been rolled back to its pre-transaction
// snapshot.
type ValidationFailedError struct{}

func (e *ValidationFailedError) Error() string {
	return "transaction validation failed, state rolled back"
}

// ComputeCycleError reports a computed definition whose target is reachable
// from its own dependency set.
type ComputeCycleError struct {
	Target string
	Via    string
}

func (e *ComputeCycleError) Error() string {
	if e.Via != "" && e.Via != e.Target {
		return fmt.Sprintf("computed %q depends on itself via %q", e.Target, e.Via)
	}
	return fmt.Sprintf("computed %q depends on itself", e.Target)
}

// ComputeRedefinedError reports a second computed definition for a target
// path that already has one.
type ComputeRedefinedError struct {
	Target string
}

func (e *ComputeRedefinedError) Error() string {
	return fmt.Sprintf("computed %q is already defined", e.Target)
}

// UnsupportedTypeError reports input outside the closed Value union.
type UnsupportedTypeError struct {
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported state value of type %T", e.Value)
}
