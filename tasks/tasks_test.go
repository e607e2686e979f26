package tasks

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	caasynq_mock "github.com/rmorlok/credagent/caasynq/mock"
	"github.com/rmorlok/credagent/calog"
	"github.com/rmorlok/credagent/caredis"
	"github.com/rmorlok/credagent/config"
	httpf_mock "github.com/rmorlok/credagent/httpf/mock"
	"github.com/rmorlok/credagent/metadata"
	metadata_mock "github.com/rmorlok/credagent/metadata/mock"
	"github.com/rmorlok/credagent/secagent"
	secagent_mock "github.com/rmorlok/credagent/secagent/mock"
	"github.com/rmorlok/credagent/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	agent *secagent_mock.MockS
	mds   *metadata_mock.MockClient
	asynq *caasynq_mock.MockClient
}

func newTestHandler(t *testing.T, root *config.Root) (*taskHandler, *handlerMocks) {
	return newTestHandlerWithRedis(t, root, nil)
}

func newTestHandlerWithRedis(t *testing.T, root *config.Root, redisClient caredis.Client) (*taskHandler, *handlerMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &handlerMocks{
		agent: secagent_mock.NewMockS(ctrl),
		mds:   metadata_mock.NewMockClient(ctrl),
		asynq: caasynq_mock.NewMockClient(ctrl),
	}

	th := NewTaskHandler(
		config.FromRoot(root),
		m.agent,
		m.mds,
		httpf_mock.NewFactoryWithMockingClient(ctrl),
		redisClient,
		m.asynq,
		calog.NewNoopLogger(),
	).(*taskHandler)

	return th, m
}

func TestGetCronTasks(t *testing.T) {
	tests := []struct {
		name      string
		root      *config.Root
		wantTypes []string
	}{
		{
			name:      "nothing enabled",
			root:      &config.Root{},
			wantTypes: []string{},
		},
		{
			name: "shared cache enabled",
			root: &config.Root{
				Agent: &config.Agent{SharedCache: true},
			},
			wantTypes: []string{taskTypeRefreshMTLSConfig},
		},
		{
			name: "background refresh enabled",
			root: &config.Root{
				Tokens: &config.Tokens{RefreshInBackground: util.ToPtr(true)},
			},
			wantTypes: []string{taskTypeRefreshExpiringTokens},
		},
		{
			name: "both enabled",
			root: &config.Root{
				Agent:  &config.Agent{SharedCache: true},
				Tokens: &config.Tokens{RefreshInBackground: util.ToPtr(true)},
			},
			wantTypes: []string{taskTypeRefreshMTLSConfig, taskTypeRefreshExpiringTokens},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, _ := newTestHandler(t, tt.root)

			configs := th.GetCronTasks()

			types := util.Map(configs, func(c *asynq.PeriodicTaskConfig) string {
				return c.Task.Type()
			})
			assert.Equal(t, tt.wantTypes, types)

			for _, c := range configs {
				assert.Equal(t, "@every 30m", c.Cronspec)
			}
		})
	}
}

func TestRefreshMTLSConfigTask(t *testing.T) {
	ctx := context.Background()

	t.Run("refreshes the config", func(t *testing.T) {
		th, m := newTestHandler(t, &config.Root{})

		m.agent.EXPECT().
			GetMTLSConfig(gomock.Any()).
			Return(&secagent.MTLSConfig{S2AAddress: "169.254.169.254:8080"}, nil)

		require.NoError(t, th.refreshMTLSConfig(ctx, newRefreshMTLSConfigTask()))
	})

	t.Run("no agent present is not an error", func(t *testing.T) {
		th, m := newTestHandler(t, &config.Root{})

		m.agent.EXPECT().
			GetMTLSConfig(gomock.Any()).
			Return(&secagent.MTLSConfig{}, nil)

		require.NoError(t, th.refreshMTLSConfig(ctx, newRefreshMTLSConfigTask()))
	})

	t.Run("takes the fleet lock when redis is configured", func(t *testing.T) {
		redisClient, err := caredis.NewMiniredis(&config.RedisMiniredis{})
		require.NoError(t, err)
		require.NoError(t, redisClient.FlushAll(ctx).Err())

		th, m := newTestHandlerWithRedis(t, &config.Root{}, redisClient)

		m.agent.EXPECT().
			GetMTLSConfig(gomock.Any()).
			Return(&secagent.MTLSConfig{S2AAddress: "169.254.169.254:8080"}, nil)

		require.NoError(t, th.refreshMTLSConfig(ctx, newRefreshMTLSConfigTask()))

		// The lock is released when the task finishes.
		m2 := caredis.NewMutex(redisClient, refreshMTLSConfigMutexKey, caredis.MutexOptionNoRetry())
		require.NoError(t, m2.Lock(ctx))
		require.NoError(t, m2.Unlock(ctx))
	})

	t.Run("skips when another worker holds the lock", func(t *testing.T) {
		redisClient, err := caredis.NewMiniredis(&config.RedisMiniredis{})
		require.NoError(t, err)
		require.NoError(t, redisClient.FlushAll(ctx).Err())

		other := caredis.NewMutex(redisClient, refreshMTLSConfigMutexKey, caredis.MutexOptionNoRetry())
		require.NoError(t, other.Lock(ctx))
		defer other.Unlock(ctx)

		// No agent expectations; the handler must return before fetching.
		th, _ := newTestHandlerWithRedis(t, &config.Root{}, redisClient)

		require.NoError(t, th.refreshMTLSConfig(ctx, newRefreshMTLSConfigTask()))
	})

	t.Run("fetch failure is retried", func(t *testing.T) {
		th, m := newTestHandler(t, &config.Root{})

		m.agent.EXPECT().
			GetMTLSConfig(gomock.Any()).
			Return(nil, errors.New("metadata service unreachable"))

		err := th.refreshMTLSConfig(ctx, newRefreshMTLSConfigTask())
		require.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})
}

func TestRefreshCredentialTokenTask(t *testing.T) {
	ctx := context.Background()

	root := &config.Root{
		Credentials: []config.Credential{
			{
				Name: "vm-default",
				Auth: &config.CredentialAuth{
					InnerVal: &config.CredentialAuthMetadata{
						Type: config.CredentialAuthTypeMetadata,
					},
				},
			},
		},
	}

	t.Run("refreshes the token", func(t *testing.T) {
		th, m := newTestHandler(t, root)

		m.mds.EXPECT().
			AccessToken(gomock.Any(), gomock.Any()).
			Return(&metadata.TokenResponse{
				AccessToken: "ya29.minted",
				ExpiresIn:   3599,
			}, nil)

		task, err := newRefreshCredentialTokenTask("vm-default")
		require.NoError(t, err)
		require.NoError(t, th.refreshCredentialToken(ctx, task))
	})

	t.Run("malformed payload skips retry", func(t *testing.T) {
		th, _ := newTestHandler(t, root)

		err := th.refreshCredentialToken(ctx, asynq.NewTask(taskTypeRefreshCredentialToken, []byte("not json")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("missing credential name skips retry", func(t *testing.T) {
		th, _ := newTestHandler(t, root)

		task, err := newRefreshCredentialTokenTask("")
		require.NoError(t, err)

		err = th.refreshCredentialToken(ctx, task)
		require.Error(t, err)
		assert.True(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("unknown credential skips retry", func(t *testing.T) {
		th, _ := newTestHandler(t, root)

		task, err := newRefreshCredentialTokenTask("does-not-exist")
		require.NoError(t, err)

		err = th.refreshCredentialToken(ctx, task)
		require.Error(t, err)
		assert.True(t, errors.Is(err, asynq.SkipRetry))
	})
}

func TestRefreshExpiringTokensTask(t *testing.T) {
	ctx := context.Background()

	root := &config.Root{
		Tokens: &config.Tokens{RefreshInBackground: util.ToPtr(true)},
		Credentials: []config.Credential{
			{Name: "cred-a"},
			{Name: "cred-b"},
		},
	}

	t.Run("fans out per credential", func(t *testing.T) {
		th, m := newTestHandler(t, root)

		m.asynq.EXPECT().
			EnqueueContext(gomock.Any(), gomock.Any()).
			Return(&asynq.TaskInfo{}, nil).
			Times(2)

		require.NoError(t, th.refreshExpiringTokens(ctx, newRefreshExpiringTokensTask()))
	})

	t.Run("disabled is a no-op", func(t *testing.T) {
		th, _ := newTestHandler(t, &config.Root{Credentials: root.Credentials})

		require.NoError(t, th.refreshExpiringTokens(ctx, newRefreshExpiringTokensTask()))
	})

	t.Run("enqueue failure propagates", func(t *testing.T) {
		th, m := newTestHandler(t, root)

		m.asynq.EXPECT().
			EnqueueContext(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("queue unavailable"))

		require.Error(t, th.refreshExpiringTokens(ctx, newRefreshExpiringTokensTask()))
	})
}
