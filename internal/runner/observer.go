package runner

import (
	"time"

	"go.uber.org/zap"

	"github.com/roach88/specrun/internal/domain"
	"github.com/roach88/specrun/internal/metrics"
)

// runObserver does the runner's per-event bookkeeping and fans out to
// user observers. It is used by exactly one run.
type runObserver struct {
	logger  *zap.Logger
	clock   Clock
	metrics *metrics.Recorder
	next    []domain.Observer

	started         map[*domain.Example]time.Time
	durations       map[*domain.Example]time.Duration
	contextFailures []ContextFailure
}

func (o *runObserver) ContextEntered(c *domain.Context) {
	o.logger.Debug("entering context",
		zap.String("context", c.FullContext()),
		zap.Bool("pending", c.IsPending()),
	)
	for _, n := range o.next {
		n.ContextEntered(c)
	}
}

func (o *runObserver) ContextFailed(c *domain.Context, err error) {
	o.contextFailures = append(o.contextFailures, ContextFailure{Context: c, Err: err})
	o.logger.Warn("context failed",
		zap.String("context", c.FullContext()),
		zap.Int("examples", domain.Count(c.AllExamples())),
		zap.Error(err),
	)
	if o.metrics != nil {
		o.metrics.ObserveContextFailure()
	}
	for _, n := range o.next {
		n.ContextFailed(c, err)
	}
}

func (o *runObserver) ExampleStarted(e *domain.Example) {
	o.started[e] = o.clock.Now()
	for _, n := range o.next {
		n.ExampleStarted(e)
	}
}

func (o *runObserver) ExampleFinished(e *domain.Example) {
	d := o.clock.Now().Sub(o.started[e])
	delete(o.started, e)
	o.durations[e] = d

	fields := []zap.Field{
		zap.String("example", e.FullDescription()),
		zap.Stringer("outcome", e.Outcome()),
		zap.Duration("duration", d),
	}
	if err := e.Err(); err != nil {
		fields = append(fields, zap.Error(err))
	}
	o.logger.Debug("example finished", fields...)

	if o.metrics != nil {
		o.metrics.ObserveExample(e.Outcome().String(), d)
	}
	for _, n := range o.next {
		n.ExampleFinished(e)
	}
}
