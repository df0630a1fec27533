package kdgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kdgo-specific context.
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

// LogBuild logs a tree construction.
func (l *Logger) LogBuild(records, dimension, leafThreshold int, err error) {
	if err != nil {
		l.Error("build failed",
			"records", records,
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.Debug("build completed",
			"records", records,
			"dimension", dimension,
			"leaf_threshold", leafThreshold,
		)
	}
}

// LogSearch logs a k-nearest-neighbor search.
func (l *Logger) LogSearch(k, resultsFound int, err error) {
	if err != nil {
		l.Error("search failed",
			"k", k,
			"error", err,
		)
	} else {
		l.Debug("search completed",
			"k", k,
			"results", resultsFound,
		)
	}
}
