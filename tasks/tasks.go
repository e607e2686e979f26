// Package tasks contains the background work the worker runs: keeping the shared mTLS
// configuration warm and refreshing credential tokens before they expire.
package tasks

import (
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/rmorlok/credagent/caasynq"
	"github.com/rmorlok/credagent/caredis"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/httpf"
	"github.com/rmorlok/credagent/metadata"
	"github.com/rmorlok/credagent/secagent"
)

type TaskRegistrar interface {
	RegisterTasks(mux *asynq.ServeMux)
	GetCronTasks() []*asynq.PeriodicTaskConfig
}

type taskHandler struct {
	cfg    config.C
	agent  secagent.S
	mds    metadata.Client
	httpf  httpf.F
	redis  caredis.Client
	asynq  caasynq.Client
	logger *slog.Logger
}

func NewTaskHandler(
	cfg config.C,
	agent secagent.S,
	mds metadata.Client,
	f httpf.F,
	redisClient caredis.Client,
	asynqClient caasynq.Client,
	logger *slog.Logger,
) TaskRegistrar {
	return &taskHandler{
		cfg:    cfg,
		agent:  agent,
		mds:    mds,
		httpf:  f,
		redis:  redisClient,
		asynq:  asynqClient,
		logger: logger,
	}
}

func (th *taskHandler) RegisterTasks(mux *asynq.ServeMux) {
	mux.HandleFunc(taskTypeRefreshMTLSConfig, th.refreshMTLSConfig)
	mux.HandleFunc(taskTypeRefreshCredentialToken, th.refreshCredentialToken)
	mux.HandleFunc(taskTypeRefreshExpiringTokens, th.refreshExpiringTokens)
}

func (th *taskHandler) GetCronTasks() []*asynq.PeriodicTaskConfig {
	root := th.cfg.GetRoot()
	configs := make([]*asynq.PeriodicTaskConfig, 0)

	if root.Agent.GetSharedCache() {
		configs = append(configs, &asynq.PeriodicTaskConfig{
			Cronspec: root.Tokens.GetRefreshCronScheduleOrDefault(),
			Task:     newRefreshMTLSConfigTask(),
		})
	}

	if root.Tokens.GetRefreshInBackgroundOrDefault() {
		configs = append(configs, &asynq.PeriodicTaskConfig{
			Cronspec: root.Tokens.GetRefreshCronScheduleOrDefault(),
			Task:     newRefreshExpiringTokensTask(),
		})
	}

	return configs
}
