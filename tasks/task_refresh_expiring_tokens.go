package tasks

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rmorlok/credagent/calog"
)

const taskTypeRefreshExpiringTokens = "oauth2:refresh_expiring_credential_tokens"

func newRefreshExpiringTokensTask() *asynq.Task {
	return asynq.NewTask(taskTypeRefreshExpiringTokens, nil)
}

// refreshExpiringTokens fans out a refresh task per configured credential. The per-credential
// task goes through the cached token source, so credentials still inside their validity window
// are a no-op.
func (th *taskHandler) refreshExpiringTokens(ctx context.Context, t *asynq.Task) error {
	logger := calog.NewBuilder(th.logger).
		WithTask(t).
		WithCtx(ctx).
		Build()
	logger.Info("refresh expiring credential tokens task started")
	defer logger.Info("refresh expiring credential tokens task completed")

	if !th.cfg.GetRoot().Tokens.GetRefreshInBackgroundOrDefault() {
		return nil
	}

	for _, cred := range th.cfg.GetRoot().Credentials {
		task, err := newRefreshCredentialTokenTask(cred.Name)
		if err != nil {
			return err
		}

		if _, err := th.asynq.EnqueueContext(ctx, task); err != nil {
			return err
		}
	}

	return nil
}
