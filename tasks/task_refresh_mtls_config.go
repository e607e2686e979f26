package tasks

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rmorlok/credagent/calog"
	"github.com/rmorlok/credagent/caredis"
)

const taskTypeRefreshMTLSConfig = "secagent:refresh_mtls_config"
const refreshMTLSConfigMutexKey = "credagent:tasks:refresh-mtls-config"

func newRefreshMTLSConfigTask() *asynq.Task {
	return asynq.NewTask(taskTypeRefreshMTLSConfig, nil)
}

// refreshMTLSConfig re-fetches the mTLS configuration so the shared cache stays warm for the
// rest of the fleet.
func (th *taskHandler) refreshMTLSConfig(ctx context.Context, t *asynq.Task) error {
	logger := calog.NewBuilder(th.logger).
		WithTask(t).
		WithCtx(ctx).
		Build()
	logger.Info("refresh mtls config task started")
	defer logger.Info("refresh mtls config task completed")

	if th.redis != nil {
		// Only one worker in the fleet refreshes per cycle; the rest pick the
		// result up from the shared cache.
		m := caredis.NewMutex(
			th.redis,
			refreshMTLSConfigMutexKey,
			caredis.MutexOptionLockFor(time.Minute),
			caredis.MutexOptionNoRetry(),
			caredis.MutexOptionDetailedLockMetadata(),
		)
		if err := m.Lock(ctx); err != nil {
			if caredis.MutexIsErrNotObtained(err) {
				logger.Info("another worker is refreshing the mtls config")
				return nil
			}
			return err
		}
		defer m.Unlock(ctx)
	}

	mtlsConfig, err := th.agent.GetMTLSConfig(ctx)
	if err != nil {
		return err
	}

	if mtlsConfig.S2AAddress == "" {
		logger.Warn("metadata service reported no secure session agent for this vm")
		return nil
	}

	logger.Info("mtls config refreshed", "address", mtlsConfig.S2AAddress, "expires_at", mtlsConfig.ExpiresAt())
	return nil
}
