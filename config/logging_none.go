package config

import (
	"context"
	"log/slog"
)

type LoggingConfigNone struct {
	Type LoggingConfigType `json:"type" yaml:"type"`
}

func (l *LoggingConfigNone) GetType() LoggingConfigType {
	return LoggingConfigTypeNone
}

type noopHandler struct{}

func (h *noopHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (h *noopHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h *noopHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return h }
func (h *noopHandler) WithGroup(_ string) slog.Handler               { return h }

func (l *LoggingConfigNone) GetRootLogger() *slog.Logger {
	return slog.New(&noopHandler{})
}
