package domain

import "fmt"

// Outcome is the recorded result of exercising an Example.
type Outcome int

const (
	// NotRun means the example has not been exercised in the current run.
	NotRun Outcome = iota

	// Passed means every step in the example's chain succeeded.
	Passed

	// Failed means a step failed; Example.Err holds the cause.
	Failed

	// Pending means the example was skipped.
	Pending
)

var outcomeNames = map[Outcome]string{
	NotRun:  "not_run",
	Passed:  "passed",
	Failed:  "failed",
	Pending: "pending",
}

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ParseOutcome parses the name produced by String.
func ParseOutcome(s string) (Outcome, error) {
	for o, name := range outcomeNames {
		if name == s {
			return o, nil
		}
	}
	return NotRun, fmt.Errorf("unknown outcome %q", s)
}
