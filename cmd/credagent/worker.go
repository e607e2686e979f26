package main

import (
	"context"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/caasynq"
	"github.com/rmorlok/credagent/calog"
	"github.com/rmorlok/credagent/tasks"
	"github.com/spf13/cobra"
)

// cronProvider adapts a task registrar to asynq's periodic task config provider.
type cronProvider struct {
	registrar tasks.TaskRegistrar
}

func (p *cronProvider) GetConfigs() ([]*asynq.PeriodicTaskConfig, error) {
	return p.registrar.GetCronTasks(), nil
}

func cmdWorker() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the background worker",
		Long:  "Run the worker that keeps the shared mTLS configuration warm and refreshes expiring credential tokens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			d, err := newDeps(ctx)
			if err != nil {
				return err
			}

			if d.redis == nil {
				return errors.New("the worker requires the redis block to be configured")
			}

			logger := calog.NewBuilder(d.logger).WithService("worker").Build()

			asynqClient := asynq.NewClientFromRedisClient(d.redis)
			defer asynqClient.Close()

			if err := asynqClient.Ping(); err != nil {
				return errors.Wrap(err, "failed to connect to redis for task queue")
			}

			taskClient := caasynq.WrapClientWithDefaultOptions(asynqClient, []asynq.Option{
				asynq.Queue("default"),
				asynq.MaxRetry(3),
			})

			registrar := tasks.NewTaskHandler(cfg, d.agent, d.mds, d.httpf, d.redis, taskClient, logger)

			mux := asynq.NewServeMux()
			registrar.RegisterTasks(mux)

			srv := asynq.NewServerFromRedisClient(
				d.redis,
				asynq.Config{
					Concurrency: concurrency,
					BaseContext: func() context.Context {
						return ctx
					},
					Queues: map[string]int{
						"default": 5,
					},
				},
			)

			mgr, err := asynq.NewPeriodicTaskManager(
				asynq.PeriodicTaskManagerOpts{
					RedisUniversalClient:       d.redis,
					PeriodicTaskConfigProvider: &cronProvider{registrar: registrar},
					SyncInterval:               10 * time.Second,
				},
			)
			if err != nil {
				return errors.Wrap(err, "error creating periodic task manager")
			}

			var wg sync.WaitGroup
			var srvErr, mgrErr error

			wg.Add(1)
			go func() {
				defer wg.Done()
				logger.Info("worker is running")
				srvErr = srv.Run(mux)
			}()

			wg.Add(1)
			go func() {
				defer wg.Done()
				logger.Info("scheduler is running")
				mgrErr = mgr.Run()
			}()

			wg.Wait()

			if srvErr != nil {
				return errors.Wrap(srvErr, "task server failed")
			}
			return errors.Wrap(mgrErr, "scheduler failed")
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 5, "Number of tasks processed concurrently")

	return cmd
}
