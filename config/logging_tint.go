package config

import (
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rmorlok/credagent/util"
)

// LoggingConfigTint emits colorized text logs, intended for local development.
type LoggingConfigTint struct {
	Type       LoggingConfigType   `json:"type" yaml:"type"`
	To         LoggingConfigOutput `json:"to,omitempty" yaml:"to,omitempty"`
	Level      LoggingConfigLevel  `json:"level,omitempty" yaml:"level,omitempty"`
	Source     bool                `json:"source,omitempty" yaml:"source,omitempty"`
	NoColor    *bool               `json:"no_color,omitempty" yaml:"no_color,omitempty"`
	TimeFormat *string             `json:"time_format,omitempty" yaml:"time_format,omitempty"`
}

func (l *LoggingConfigTint) GetType() LoggingConfigType {
	return LoggingConfigTypeTint
}

func (l *LoggingConfigTint) GetRootLogger() *slog.Logger {
	timeFormat := time.Kitchen
	if l.TimeFormat != nil {
		timeFormat = *l.TimeFormat
	}

	return slog.New(tint.NewHandler(l.To.Output(), &tint.Options{
		Level:      l.Level.Level(),
		AddSource:  l.Source,
		NoColor:    util.CoerceBool(l.NoColor),
		TimeFormat: timeFormat,
	}))
}
