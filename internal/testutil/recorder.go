package testutil

import (
	"slices"
	"sync"
)

// Recorder is an append-only log for asserting the order hooks ran in.
type Recorder struct {
	mu      sync.Mutex
	entries []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends entry.
func (r *Recorder) Record(entry string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

// Hook returns an action that records entry and succeeds.
func (r *Recorder) Hook(entry string) func() error {
	return func() error {
		r.Record(entry)
		return nil
	}
}

// Failing returns an action that records entry and returns err.
func (r *Recorder) Failing(entry string, err error) func() error {
	return func() error {
		r.Record(entry)
		return err
	}
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// Count returns how many times entry was recorded.
func (r *Recorder) Count(entry string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e == entry {
			n++
		}
	}
	return n
}

// Reset discards every entry.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
