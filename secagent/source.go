package secagent

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rmorlok/credagent/cactx"
	"github.com/rmorlok/credagent/caredis"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/metadata"
)

// sharedCacheKey is where the fetched mTLS configuration is stored in redis when the shared
// cache is enabled. The key carries a TTL matching the validity window.
const sharedCacheKey = "credagent:secagent:mtls-config"

type source struct {
	cfg    config.C
	mds    metadata.Client
	redis  caredis.Client
	logger *slog.Logger

	mu     sync.Mutex
	cached *MTLSConfig
}

// NewSource creates an agent address source backed by the metadata service. redisClient may be
// nil; it is only used when the shared cache is enabled in config.
func NewSource(cfg config.C, mds metadata.Client, redisClient caredis.Client, logger *slog.Logger) S {
	return &source{
		cfg:    cfg,
		mds:    mds,
		redis:  redisClient,
		logger: logger,
	}
}

func (s *source) GetAddress(ctx context.Context) string {
	mtlsConfig, err := s.GetMTLSConfig(ctx)
	if err != nil {
		s.logger.Warn("failed to resolve secure session agent address", "error", err.Error())
		return ""
	}

	return mtlsConfig.S2AAddress
}

func (s *source) GetMTLSConfig(ctx context.Context) (*MTLSConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached.IsValid(ctx) {
		return s.cached, nil
	}

	if fromShared := s.readSharedCache(ctx); fromShared.IsValid(ctx) {
		s.cached = fromShared
		return s.cached, nil
	}

	fetched, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if fetched.IsValid(ctx) {
		s.cached = fetched
		s.writeSharedCache(ctx, fetched)
	}

	return fetched, nil
}

func (s *source) fetch(ctx context.Context) (*MTLSConfig, error) {
	resp, err := s.mds.MTLSConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	root := s.cfg.GetRoot()

	return &MTLSConfig{
		S2AAddress: resp.S2AAddress,
		FetchedAt:  cactx.GetClock(ctx).Now(),
		Validity:   root.Agent.GetConfigValidityOrDefault(),
	}, nil
}

func (s *source) sharedCacheEnabled() bool {
	return s.cfg.GetRoot().Agent.GetSharedCache() && s.redis != nil
}

func (s *source) readSharedCache(ctx context.Context) *MTLSConfig {
	if !s.sharedCacheEnabled() {
		return nil
	}

	data, err := s.redis.Get(ctx, sharedCacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("failed to read mtls config from shared cache", "error", err.Error())
		}
		return nil
	}

	var mtlsConfig MTLSConfig
	if err := json.Unmarshal([]byte(data), &mtlsConfig); err != nil {
		s.logger.Warn("discarding malformed mtls config in shared cache", "error", err.Error())
		return nil
	}

	return &mtlsConfig
}

func (s *source) writeSharedCache(ctx context.Context, mtlsConfig *MTLSConfig) {
	if !s.sharedCacheEnabled() {
		return
	}

	data, err := json.Marshal(mtlsConfig)
	if err != nil {
		s.logger.Warn("failed to serialize mtls config for shared cache", "error", err.Error())
		return
	}

	ttl := mtlsConfig.ExpiresAt().Sub(cactx.GetClock(ctx).Now())
	if ttl <= 0 {
		return
	}

	if err := s.redis.Set(ctx, sharedCacheKey, string(data), ttl).Err(); err != nil {
		s.logger.Warn("failed to write mtls config to shared cache", "error", err.Error())
	}
}

var _ S = (*source)(nil)
