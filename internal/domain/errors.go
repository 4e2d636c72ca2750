package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCycle is returned when attaching a context would make it its own ancestor.
	ErrCycle = errors.New("context cycle")

	// ErrReparent is returned when attaching a node that already has a parent.
	ErrReparent = errors.New("node already attached")

	// ErrFrozen is returned when the tree shape is mutated after Run began.
	ErrFrozen = errors.New("tree is frozen")
)

// PanicError is a recovered panic from a hook or example action.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack captured at recovery.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error.
// This lets errors.Is match sentinel errors passed to panic.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// InvocationError labels a failure raised by a bound closure.
//
// Spec-finder adapters wrap the actions they bind so that diagnostics can
// name the target. Exercise strips this wrapper and records the cause.
type InvocationError struct {
	Target string
	Err    error
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoke %s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// IsPanic reports whether err is (or wraps) a recovered panic.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// unwrapInvocation returns the cause of an InvocationError, or err unchanged.
func unwrapInvocation(err error) error {
	var ie *InvocationError
	if errors.As(err, &ie) && ie.Err != nil {
		return ie.Err
	}
	return err
}
