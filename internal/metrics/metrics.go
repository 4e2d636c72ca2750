// Package metrics counts run results in a per-run prometheus registry.
//
// Nothing is registered globally: each Recorder owns its registry so that
// several runs in one process (and parallel tests) never share counters.
// One-shot CLI runs export the registry through the node exporter textfile
// format with WriteTextfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "specrun"

// Recorder holds the collectors for one run.
type Recorder struct {
	registry *prometheus.Registry

	examples        *prometheus.CounterVec
	contextFailures prometheus.Counter
	exampleDuration prometheus.Histogram
	runDuration     prometheus.Gauge
	lastRun         *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		examples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "examples_total",
			Help:      "Examples exercised, by outcome",
		}, []string{"outcome"}),
		contextFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "context_failures_total",
			Help:      "Contexts whose setup or declaration failed",
		}),
		exampleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "example_duration_seconds",
			Help:      "Time spent exercising a single example",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run",
		}),
		lastRun: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_run_info",
			Help:      "Always 1, labelled with the ID of the last run",
		}, []string{"run_id"}),
	}

	r.registry.MustRegister(
		r.examples,
		r.contextFailures,
		r.exampleDuration,
		r.runDuration,
		r.lastRun,
	)
	return r
}

// Registry returns the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveExample counts one example outcome and its duration.
func (r *Recorder) ObserveExample(outcome string, d time.Duration) {
	r.examples.WithLabelValues(outcome).Inc()
	r.exampleDuration.Observe(d.Seconds())
}

// ObserveContextFailure counts one context-level failure.
func (r *Recorder) ObserveContextFailure() {
	r.contextFailures.Inc()
}

// ObserveRun records the duration and ID of a finished run.
func (r *Recorder) ObserveRun(runID string, d time.Duration) {
	r.runDuration.Set(d.Seconds())
	r.lastRun.Reset()
	r.lastRun.WithLabelValues(runID).Set(1)
}

// WriteTextfile writes every metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
