package lloyd

import (
	"runtime"

	"github.com/hupe1980/lloyd/model"
)

const (
	// DefaultMaxIterations is the iteration budget used when none is configured.
	DefaultMaxIterations = 100
	// DefaultTolerance is the convergence threshold used when none is configured.
	DefaultTolerance = 0.001
)

type options struct {
	maxIterations    int
	tolerance        float64
	trace            bool
	observer         func(model.Snapshot)
	logger           *Logger
	metricsCollector MetricsCollector
	concurrency      int
}

// Option configures Run and RunBatch.
type Option func(*options)

func defaultOptions() options {
	return options{
		maxIterations:    DefaultMaxIterations,
		tolerance:        DefaultTolerance,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		concurrency:      runtime.GOMAXPROCS(0),
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// WithMaxIterations sets the iteration budget. Run rejects values <= 0.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithTolerance sets the convergence threshold. A run converges once the
// largest centroid movement of an iteration is strictly below tol.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithTrace records a snapshot of every iteration in Result.Trace.
func WithTrace() Option {
	return func(o *options) {
		o.trace = true
	}
}

// WithObserver calls fn with the snapshot of every iteration, in order,
// as the run progresses. Under RunBatch fn may be called concurrently
// from different jobs.
func WithObserver(fn func(model.Snapshot)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &lloyd.BasicMetricsCollector{}
//	res, _ := lloyd.Run(points, 2, seeds, lloyd.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithConcurrency bounds the number of jobs RunBatch executes at once.
// Values <= 0 fall back to runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}
