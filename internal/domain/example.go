package domain

// Example is a leaf unit of verification.
//
// An Example is attached to exactly one Context via AddExample. Its outcome
// is recorded at most once per run and read by formatters afterwards.
type Example struct {
	description string
	action      Action
	pending     bool

	outcome Outcome
	err     error

	// context is a back-reference for reporting only.
	context *Context
}

// NewExample creates an example with the given description and action.
// A nil action makes the example pending.
func NewExample(description string, action Action) *Example {
	return &Example{
		description: description,
		action:      action,
		pending:     action == nil,
	}
}

// NewPendingExample creates an example that is always skipped.
func NewPendingExample(description string, action Action) *Example {
	e := NewExample(description, action)
	e.pending = true
	return e
}

// Description returns the human-readable example text.
func (e *Example) Description() string {
	return e.description
}

// Context returns the owning context, or nil if the example is unattached.
func (e *Example) Context() *Context {
	return e.context
}

// FullDescription returns the owning context path followed by the description.
func (e *Example) FullDescription() string {
	if e.context == nil {
		return e.description
	}
	return e.context.FullContext() + ". " + e.description
}

// IsPending reports whether the example will be skipped.
//
// The flag set at construction or attach time is sticky. The owning
// context's current pending state is consulted as well, so marking an
// ancestor pending after attach is still honoured.
func (e *Example) IsPending() bool {
	if e.pending {
		return true
	}
	return e.context != nil && e.context.IsPending()
}

// Outcome returns the recorded outcome.
// An undecided pending example reports Pending.
func (e *Example) Outcome() Outcome {
	if e.outcome == NotRun && e.IsPending() {
		return Pending
	}
	return e.outcome
}

// Err returns the failure cause, or nil unless the outcome is Failed.
func (e *Example) Err() error {
	return e.err
}

// Failed reports whether the example recorded a failure.
func (e *Example) Failed() bool {
	return e.outcome == Failed
}

// record sets the outcome once. Decided outcomes are never overwritten.
func (e *Example) record(outcome Outcome, err error) bool {
	if e.outcome != NotRun {
		return false
	}
	e.outcome = outcome
	e.err = err
	return true
}

// reset clears the recorded outcome for a new run.
// The pending flag is monotonic and survives.
func (e *Example) reset() {
	e.outcome = NotRun
	e.err = nil
}
