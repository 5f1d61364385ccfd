package modelgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with modelgo-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSource adds the document source name to the logger.
func (l *Logger) WithSource(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", name),
	}
}

// WithModel adds a model id field to the logger.
func (l *Logger) WithModel(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("model", id),
	}
}

// LogFetch logs a document fetch.
func (l *Logger) LogFetch(ctx context.Context, source string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fetch failed",
			"source", source,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fetch completed",
			"source", source,
			"bytes", size,
		)
	}
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, total, failed, warned int) {
	if failed > 0 {
		l.WarnContext(ctx, "load completed with failures",
			"records", total,
			"failed", failed,
			"warned", warned,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"records", total,
			"warned", warned,
		)
	}
}
