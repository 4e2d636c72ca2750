package runner

import (
	"time"

	"go.uber.org/zap"

	"github.com/roach88/specrun/internal/domain"
	"github.com/roach88/specrun/internal/metrics"
)

// Runner drives a built tree.
type Runner struct {
	logger    *zap.Logger
	clock     Clock
	ids       IDGenerator
	metrics   *metrics.Recorder
	observers []domain.Observer
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock sets the clock used for timestamps and durations.
func WithClock(clock Clock) Option {
	return func(r *Runner) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithIDGenerator sets the run ID generator. Defaults to UUIDv7Generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(r *Runner) {
		if ids != nil {
			r.ids = ids
		}
	}
}

// WithMetrics records run results into m.
func WithMetrics(m *metrics.Recorder) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithObserver adds an observer that receives every execution event after
// the runner's own bookkeeping.
func WithObserver(obs domain.Observer) Option {
	return func(r *Runner) {
		if obs != nil {
			r.observers = append(r.observers, obs)
		}
	}
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger: zap.NewNop(),
		clock:  SystemClock{},
		ids:    UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resets contexts, executes every root in order and returns the summary.
//
// Run never fails: example and context failures are recorded on the tree
// and summarised. Construction errors are the builder's concern.
func (r *Runner) Run(contexts *domain.ContextCollection) *Summary {
	runID := r.ids.Generate()
	logger := r.logger.With(zap.String("run_id", runID))

	contexts.Reset()

	obs := &runObserver{
		logger:    logger,
		clock:     r.clock,
		metrics:   r.metrics,
		next:      r.observers,
		started:   make(map[*domain.Example]time.Time),
		durations: make(map[*domain.Example]time.Duration),
	}

	start := r.clock.Now()
	logger.Info("run started",
		zap.Int("roots", contexts.Len()),
		zap.Int("examples", domain.Count(contexts.AllExamples())),
	)

	contexts.Run(obs)

	summary := &Summary{
		RunID:           runID,
		StartedAt:       start,
		Duration:        r.clock.Now().Sub(start),
		Score:           domain.Tally(contexts),
		ContextFailures: obs.contextFailures,
		durations:       obs.durations,
	}

	if r.metrics != nil {
		r.metrics.ObserveRun(runID, summary.Duration)
	}

	logger.Info("run finished",
		zap.Int("total", summary.Score.Total),
		zap.Int("passed", summary.Score.Passed),
		zap.Int("failed", summary.Score.Failed),
		zap.Int("pending", summary.Score.Pending),
		zap.Int("context_failures", len(summary.ContextFailures)),
		zap.Duration("duration", summary.Duration),
	)
	return summary
}
