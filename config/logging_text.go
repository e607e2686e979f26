package config

import (
	"log/slog"
)

// LoggingConfigText emits human readable text logs via slog's text handler.
type LoggingConfigText struct {
	Type   LoggingConfigType   `json:"type" yaml:"type"`
	To     LoggingConfigOutput `json:"to,omitempty" yaml:"to,omitempty"`
	Level  LoggingConfigLevel  `json:"level,omitempty" yaml:"level,omitempty"`
	Source bool                `json:"source,omitempty" yaml:"source,omitempty"`
}

func (l *LoggingConfigText) GetType() LoggingConfigType {
	return LoggingConfigTypeText
}

func (l *LoggingConfigText) GetRootLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(l.To.Output(), &slog.HandlerOptions{
		Level:     l.Level.Level(),
		AddSource: l.Source,
	}))
}
