package domain

import "runtime/debug"

// Action is a zero-argument hook or example body.
// A returned error or a panic marks the step as failed.
type Action func() error

// capture runs fn and converts a panic into a *PanicError.
// This is the recovery boundary for one example or one context.
func capture(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// call invokes a possibly-nil action.
func (a Action) call() error {
	if a == nil {
		return nil
	}
	return a()
}
