package caredis

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

func Ping(ctx context.Context, c Client, logger *slog.Logger) bool {
	if c == nil {
		logger.Error("redis client is unexpectedly nil")
		return false
	}

	_, err := c.Ping(ctx).Result()
	if err != nil {
		logger.Error(errors.Wrap(err, "failed to connect to redis server").Error())
		return false
	}

	return true
}
