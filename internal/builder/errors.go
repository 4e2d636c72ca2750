package builder

import (
	"errors"
	"fmt"
	"strings"
)

// DefinitionErrorCode categorizes construction-time failures.
type DefinitionErrorCode string

const (
	// ErrCodeNilDefinition indicates a nil context definition.
	ErrCodeNilDefinition DefinitionErrorCode = "NIL_DEFINITION"

	// ErrCodeNilExample indicates a nil example definition.
	ErrCodeNilExample DefinitionErrorCode = "NIL_EXAMPLE"

	// ErrCodeEmptyName indicates a context without a name.
	ErrCodeEmptyName DefinitionErrorCode = "EMPTY_NAME"

	// ErrCodeEmptyDescription indicates an example without a description.
	ErrCodeEmptyDescription DefinitionErrorCode = "EMPTY_DESCRIPTION"

	// ErrCodeCycle indicates a definition nested inside itself.
	ErrCodeCycle DefinitionErrorCode = "CYCLE"

	// ErrCodeWiring indicates the domain tree rejected a link.
	ErrCodeWiring DefinitionErrorCode = "WIRING"
)

// DefinitionError is a malformed definition detected before execution.
type DefinitionError struct {
	// Code identifies the error category.
	Code DefinitionErrorCode

	// Path is the chain of definition names from the root to the problem.
	// For cycles it ends with the repeated definition: ["a", "b", "a"].
	Path []string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if len(e.Path) > 0 {
		msg += fmt.Sprintf(" (at %s)", strings.Join(e.Path, " → "))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// IsCycleError returns true if err is a definition cycle.
// Uses errors.As to handle wrapped errors.
func IsCycleError(err error) bool {
	var de *DefinitionError
	if errors.As(err, &de) {
		return de.Code == ErrCodeCycle
	}
	return false
}
