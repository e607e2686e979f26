package config

import (
	"context"
	"log/slog"
)

type C interface {
	// Validate checks that the configuration is valid
	Validate(ctx context.Context) error

	// GetRoot gets the root of the configuration; the data loaded from a configuration file
	GetRoot() *Root

	// IsDebugMode tells the system if debug flags have been passed when running this service
	IsDebugMode() bool

	// GetRootLogger returns the root logger instance configured for the application. This will always
	// return a logger, defaulting to a none logger if nothing is configured.
	GetRootLogger() *slog.Logger
}
