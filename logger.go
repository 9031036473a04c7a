package colorsep

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/colorsep/candidate"
)

// Logger wraps slog.Logger with colorsep-specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithProfile adds a profile field to the logger.
func (l *Logger) WithProfile(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("profile", name),
	}
}

// WithSize adds the LUT size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogGenerate logs a candidate generation pass.
func (l *Logger) LogGenerate(ctx context.Context, stats candidate.Stats, d time.Duration) {
	l.InfoContext(ctx, "candidates generated",
		"resolution", stats.Resolution,
		"combinations", stats.Combinations,
		"candidates", stats.Generated,
		"pruned", stats.Pruned,
		"duration", d,
	)
}

// LogIndex logs an index build.
func (l *Logger) LogIndex(ctx context.Context, kind string, points int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"kind", kind,
			"points", points,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "index built",
		"kind", kind,
		"points", points,
		"duration", d,
	)
}

// LogMap logs the parallel mapping phase.
func (l *Logger) LogMap(ctx context.Context, cells, workers, distinct int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "grid mapping failed",
			"cells", cells,
			"workers", workers,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "grid mapped",
		"cells", cells,
		"workers", workers,
		"distinct", distinct,
		"duration", d,
	)
}

// LogWrite logs one written output file.
func (l *Logger) LogWrite(ctx context.Context, name string, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"file", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "lut written",
		"file", name,
		"bytes", bytes,
	)
}
