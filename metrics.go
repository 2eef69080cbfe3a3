package lloyd

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRun is called after each run.
	// iterations is the number of iterations executed, converged reports
	// whether the tolerance was reached, err is nil if successful.
	RecordRun(k, iterations int, converged bool, duration time.Duration, err error)

	// RecordIteration is called after each iteration with the largest
	// centroid movement of that iteration.
	RecordIteration(iteration int, maxMovement float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(int, float64)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunConverged    atomic.Int64
	RunTotalNanos   atomic.Int64
	IterationCount  atomic.Int64
	lastMaxMovement atomic.Uint64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(k, iterations int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	if converged {
		b.RunConverged.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(iteration int, maxMovement float64) {
	b.IterationCount.Add(1)
	b.lastMaxMovement.Store(math.Float64bits(maxMovement))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:        b.RunCount.Load(),
		RunErrors:       b.RunErrors.Load(),
		RunConverged:    b.RunConverged.Load(),
		RunAvgNanos:     b.getAvgRunNanos(),
		IterationCount:  b.IterationCount.Load(),
		LastMaxMovement: math.Float64frombits(b.lastMaxMovement.Load()),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount        int64
	RunErrors       int64
	RunConverged    int64
	RunAvgNanos     int64
	IterationCount  int64
	LastMaxMovement float64
}
