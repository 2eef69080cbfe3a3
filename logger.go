package lloyd

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/lloyd/model"
)

// Logger wraps slog.Logger with lloyd-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithJob adds a job index field to the logger.
func (l *Logger) WithJob(job int) *Logger {
	return &Logger{
		Logger: l.Logger.With("job", job),
	}
}

// LogIteration logs the state reached after one iteration.
func (l *Logger) LogIteration(ctx context.Context, s model.Snapshot, maxMovement float64) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", s.Iteration,
		"centroids", model.FormatPoints(s.Centroids),
		"clusters", s.Assignment.String(),
		"max_movement", maxMovement,
	)
}

// LogRun logs the outcome of a run.
func (l *Logger) LogRun(ctx context.Context, iterations int, converged bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "run failed",
			"error", err,
		)
	case converged:
		l.InfoContext(ctx, "run converged",
			"iterations", iterations,
		)
	default:
		l.WarnContext(ctx, "run stopped without converging",
			"iterations", iterations,
		)
	}
}

// LogBatch logs the outcome of a batch run.
func (l *Logger) LogBatch(ctx context.Context, jobs, converged int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch failed",
			"jobs", jobs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"jobs", jobs,
			"converged", converged,
		)
	}
}
