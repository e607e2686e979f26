package config

import (
	"log/slog"
)

// LoggingConfigJson emits structured JSON logs via slog's JSON handler.
type LoggingConfigJson struct {
	Type   LoggingConfigType   `json:"type" yaml:"type"`
	To     LoggingConfigOutput `json:"to,omitempty" yaml:"to,omitempty"`
	Level  LoggingConfigLevel  `json:"level,omitempty" yaml:"level,omitempty"`
	Source bool                `json:"source,omitempty" yaml:"source,omitempty"`
}

func (l *LoggingConfigJson) GetType() LoggingConfigType {
	return LoggingConfigTypeJson
}

func (l *LoggingConfigJson) GetRootLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(l.To.Output(), &slog.HandlerOptions{
		Level:     l.Level.Level(),
		AddSource: l.Source,
	}))
}
