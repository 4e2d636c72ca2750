package runner

import (
	"time"

	"github.com/roach88/specrun/internal/domain"
)

// ContextFailure is a context-level failure captured during a run.
type ContextFailure struct {
	Context *domain.Context
	Err     error
}

// Summary describes one finished run.
type Summary struct {
	// RunID identifies the run in logs, metrics and reports.
	RunID string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is the wall time of the whole run.
	Duration time.Duration

	// Score tallies every example in the forest after the run.
	Score domain.Score

	// ContextFailures lists contexts whose setup or declaration failed,
	// in the order they were reached.
	ContextFailures []ContextFailure

	durations map[*domain.Example]time.Duration
}

// Pass reports whether nothing failed: no failed examples and no context failures.
func (s *Summary) Pass() bool {
	return s.Score.Failed == 0 && len(s.ContextFailures) == 0
}

// ExampleDuration returns how long exercising e took, or zero if it was not seen.
func (s *Summary) ExampleDuration(e *domain.Example) time.Duration {
	return s.durations[e]
}
