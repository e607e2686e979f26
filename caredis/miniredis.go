package caredis

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rmorlok/credagent/config"
)

var miniredisServer *miniredis.Miniredis
var miniredisClient *redis.Client
var miniredisMutex sync.Mutex
var miniredisErr error

// NewMiniredis creates a new redis connection to a miniredis instance. This is intended for tests and
// local development only.
func NewMiniredis(redisConfig *config.RedisMiniredis) (Client, error) {
	if miniredisServer == nil {
		miniredisMutex.Lock()
		defer miniredisMutex.Unlock()

		// Check again now that we are the primary
		if miniredisServer == nil {
			var err error
			miniredisServer, err = miniredis.Run()
			if err != nil {
				miniredisErr = errors.Wrap(err, "failed to start miniredis server")
			}

			miniredisClient = redis.NewClient(&redis.Options{
				Addr:     miniredisServer.Addr(),
				Protocol: 2,
			})

			// Test the connection to ensure it's working
			_, err = miniredisClient.Ping(context.Background()).Result()
			if err != nil {
				miniredisServer.Close()
				miniredisErr = errors.Wrap(err, "failed to connect to miniredis client")
			}
		}
	}

	if miniredisErr != nil {
		return nil, miniredisErr
	}

	return miniredisClient, nil
}
