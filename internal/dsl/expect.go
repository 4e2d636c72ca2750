package dsl

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// ExpectationError is a failed expectation inside an example.
type ExpectationError struct {
	Message string
}

// Error implements the error interface.
func (e *ExpectationError) Error() string {
	return e.Message
}

// Equal returns an *ExpectationError with a diff unless want and got are equal.
func Equal(want, got any, opts ...cmp.Option) error {
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		return &ExpectationError{Message: fmt.Sprintf("expected %v, got %v (-want +got):\n%s", want, got, diff)}
	}
	return nil
}

// True returns an *ExpectationError carrying the formatted message unless cond holds.
func True(cond bool, format string, args ...any) error {
	if !cond {
		return &ExpectationError{Message: fmt.Sprintf(format, args...)}
	}
	return nil
}

// NoError returns an *ExpectationError wrapping err if it is non-nil.
func NoError(err error) error {
	if err != nil {
		return &ExpectationError{Message: fmt.Sprintf("unexpected error: %v", err)}
	}
	return nil
}

// IsExpectation reports whether err is a failed expectation rather than an
// unexpected error or panic.
func IsExpectation(err error) bool {
	var ee *ExpectationError
	return errors.As(err, &ee)
}
