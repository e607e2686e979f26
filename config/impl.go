package config

import (
	"context"
	"log/slog"
	"os"
)

type config struct {
	root *Root
}

func (c *config) Validate(ctx context.Context) error {
	return c.root.Validate(ctx)
}

func (c *config) GetRoot() *Root {
	if c == nil {
		return nil
	}

	return c.root
}

func (c *config) IsDebugMode() bool {
	return os.Getenv("CREDAGENT_DEBUG_MODE") == "true"
}

func (c *config) GetRootLogger() *slog.Logger {
	return c.root.GetRootLogger()
}

var _ C = (*config)(nil)
