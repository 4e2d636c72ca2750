package testutil

import (
	"sync"
	"time"
)

// Epoch is the wall time DeterministicClock reports at tick zero.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultStep is the time that passes between two ticks.
const DefaultStep = time.Millisecond

// DeterministicClock is a logical clock that doubles as a fake wall clock.
//
// Every call to Now advances one tick and returns Epoch + ticks*step, so
// durations measured between consecutive Now calls are always one step.
// This keeps report output byte-identical across runs.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu   sync.Mutex
	seq  int64
	step time.Duration
}

// NewDeterministicClock creates a new deterministic clock starting at 0.
//
// The first call to Next() returns 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{seq: 0, step: DefaultStep}
}

// NewDeterministicClockWithStep creates a clock that advances by step per tick.
func NewDeterministicClockWithStep(step time.Duration) *DeterministicClock {
	return &DeterministicClock{seq: 0, step: step}
}

// Next increments and returns the next sequence number.
func (c *DeterministicClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *DeterministicClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Now advances one tick and returns the corresponding wall time.
func (c *DeterministicClock) Now() time.Time {
	seq := c.Next()
	return Epoch.Add(time.Duration(seq) * c.step)
}

// Reset resets the clock to 0.
//
// Used for test reuse. After Reset(), the next call to Next() returns 1.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
