package scanpy

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with scanpy-specific helpers.
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

// LogResolve logs the outcome of one key resolution pass.
func (l *Logger) LogResolve(op string, requested, ambiguous, missing int) {
	if missing > 0 || ambiguous > 0 {
		l.Warn("key resolution failed",
			"op", op,
			"requested", requested,
			"missing", missing,
			"ambiguous", ambiguous,
		)
	} else {
		l.Debug("keys resolved",
			"op", op,
			"requested", requested,
		)
	}
}

// LogProjection logs a completed projection.
func (l *Logger) LogProjection(op string, rows, cols int) {
	l.Debug("projection assembled",
		"op", op,
		"rows", rows,
		"cols", cols,
	)
}

// LogRankedFilter logs a completed ranked-group extraction.
func (l *Logger) LogRankedFilter(group string, total, kept int) {
	l.Debug("ranked group filtered",
		"group", group,
		"total", total,
		"kept", kept,
	)
}

// orNoop returns the logger, or a silent one when nil. Options structs leave
// Logger nil by default.
func orNoop(l *Logger) *Logger {
	if l == nil {
		return NoopLogger()
	}
	return l
}
