package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rmorlok/credagent/calog"
	"github.com/rmorlok/credagent/oauth2"
)

const taskTypeRefreshCredentialToken = "oauth2:refresh_credential_token"

type refreshCredentialTokenTaskPayload struct {
	CredentialName string `json:"credential_name"`
}

func newRefreshCredentialTokenTask(credentialName string) (*asynq.Task, error) {
	payload, err := json.Marshal(refreshCredentialTokenTaskPayload{credentialName})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskTypeRefreshCredentialToken, payload), nil
}

func (th *taskHandler) refreshCredentialToken(ctx context.Context, t *asynq.Task) error {
	var p refreshCredentialTokenTaskPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("%s json.Unmarshal failed: %v: %w", taskTypeRefreshCredentialToken, err, asynq.SkipRetry)
	}

	if p.CredentialName == "" {
		return fmt.Errorf("%s credential name not specified: %w", taskTypeRefreshCredentialToken, asynq.SkipRetry)
	}

	logger := calog.NewBuilder(th.logger).
		WithTask(t).
		WithCtx(ctx).
		WithCredentialName(p.CredentialName).
		Build()

	if th.cfg.GetRoot().GetCredential(p.CredentialName) == nil {
		return fmt.Errorf("credential '%s' not found: %w", p.CredentialName, asynq.SkipRetry)
	}

	source, err := oauth2.ForCredential(th.cfg, th.httpf, th.mds, th.redis, logger, p.CredentialName)
	if err != nil {
		return err
	}

	token, err := source.Token(ctx)
	if err != nil {
		return err
	}

	logger.Info("credential token refreshed", "expires_at", token.ExpiresAt)
	return nil
}
