package test_utils

import (
	"log/slog"
	"os"
)

// NewTestLogger returns a logger suitable for tests. Only errors are
// emitted so passing runs stay quiet, with source locations included to
// make failures easy to chase down.
func NewTestLogger() *slog.Logger {
	return NewTestLoggerAtLevel(slog.LevelError)
}

// NewTestLoggerAtLevel is NewTestLogger with the minimum level overridden,
// for tests that want to see what a component logs.
func NewTestLoggerAtLevel(level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})

	return slog.New(handler)
}
