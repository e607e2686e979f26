package main

import (
	"context"
	"log/slog"

	"github.com/rmorlok/credagent/calog"
	"github.com/rmorlok/credagent/caredis"
	"github.com/rmorlok/credagent/httpf"
	"github.com/rmorlok/credagent/metadata"
	"github.com/rmorlok/credagent/secagent"
)

// deps holds the wired dependencies commands operate on.
type deps struct {
	logger *slog.Logger
	httpf  httpf.F
	mds    metadata.Client
	redis  caredis.Client
	agent  secagent.S
}

func newDeps(ctx context.Context) (*deps, error) {
	logger := cfg.GetRootLogger()
	calog.SetDefaultLog(logger)

	f := httpf.CreateFactory(cfg, logger, httpf.NewLoggingRoundTripperFactory(logger))
	mds := metadata.NewClient(cfg, f, logger)

	var redisClient caredis.Client
	if cfg.GetRoot().Redis.Inner() != nil {
		var err error
		redisClient, err = caredis.NewForRoot(ctx, cfg.GetRoot())
		if err != nil {
			return nil, err
		}
	}

	return &deps{
		logger: logger,
		httpf:  f,
		mds:    mds,
		redis:  redisClient,
		agent:  secagent.NewSource(cfg, mds, redisClient, logger),
	}, nil
}
