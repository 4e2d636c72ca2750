package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsOutcomes(t *testing.T) {
	r := NewRecorder()

	r.ObserveExample("passed", time.Millisecond)
	r.ObserveExample("passed", time.Millisecond)
	r.ObserveExample("failed", time.Millisecond)
	r.ObserveContextFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.examples.WithLabelValues("passed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.examples.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.contextFailures))
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()

	a.ObserveContextFailure()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.contextFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.contextFailures))
}

func TestRecorder_ObserveRunKeepsOnlyLastID(t *testing.T) {
	r := NewRecorder()

	r.ObserveRun("run-1", time.Second)
	r.ObserveRun("run-2", 2*time.Second)

	assert.Equal(t, 1, testutil.CollectAndCount(r.lastRun))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.lastRun.WithLabelValues("run-2")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.runDuration))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveExample("pending", 0)

	path := filepath.Join(t.TempDir(), "specrun.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `specrun_examples_total{outcome="pending"} 1`)
}

func TestRecorder_WriteTextfileBadPath(t *testing.T) {
	r := NewRecorder()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write metrics textfile")
}
