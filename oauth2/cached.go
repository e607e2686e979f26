package oauth2

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/caredis"
	"github.com/rmorlok/credagent/config"
)

// cachedTokenSource wraps a token source and serves the last minted token until it falls inside
// the early refresh margin. Refreshes are serialized within the process, and optionally across
// processes with a redis lock.
type cachedTokenSource struct {
	credentialName string
	cfg            config.C
	wrapped        TokenSource
	redis          caredis.Client
	logger         *slog.Logger

	mu    sync.Mutex
	token *Token
}

// NewCachedTokenSource wraps a token source with caching and refresh serialization. redisClient
// may be nil; it is only used when the distributed lock is enabled in config.
func NewCachedTokenSource(credentialName string, cfg config.C, wrapped TokenSource, redisClient caredis.Client, logger *slog.Logger) TokenSource {
	return &cachedTokenSource{
		credentialName: credentialName,
		cfg:            cfg,
		wrapped:        wrapped,
		redis:          redisClient,
		logger:         logger,
	}
}

func (s *cachedTokenSource) Token(ctx context.Context) (*Token, error) {
	margin := s.cfg.GetRoot().Tokens.GetEarlyRefreshMarginOrDefault()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token.UsableFor(ctx, margin) {
		return s.token, nil
	}

	if s.distributedLockEnabled() {
		mutex := s.refreshMutex()
		if err := mutex.Lock(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to obtain token refresh lock")
		}
		defer func() {
			if err := mutex.Unlock(ctx); err != nil {
				s.logger.Warn("failed to release token refresh lock", "credential", s.credentialName, "error", err.Error())
			}
		}()
	}

	token, err := s.wrapped.Token(ctx)
	if err != nil {
		return nil, err
	}

	s.token = token
	return token, nil
}

func (s *cachedTokenSource) distributedLockEnabled() bool {
	return s.cfg.GetRoot().Tokens.GetUseDistributedLockOrDefault() && s.redis != nil
}

func (s *cachedTokenSource) refreshMutex() caredis.Mutex {
	return caredis.NewMutex(
		s.redis,
		"credagent:token-refresh:"+s.credentialName,
		caredis.MutexOptionRetryFor(30*time.Second),
		caredis.MutexOptionLockFor(30*time.Second),
		caredis.MutexOptionRetryExponentialBackoff(50*time.Millisecond, 1*time.Second),
		caredis.MutexOptionDetailedLockMetadata(),
	)
}

var _ TokenSource = (*cachedTokenSource)(nil)
