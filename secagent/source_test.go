package secagent

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/cactx"
	"github.com/rmorlok/credagent/calog"
	"github.com/rmorlok/credagent/caredis"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/metadata"
	metadata_mock "github.com/rmorlok/credagent/metadata/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource(t *testing.T, root *config.Root, redisClient caredis.Client) (S, *metadata_mock.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mds := metadata_mock.NewMockClient(ctrl)
	return NewSource(config.FromRoot(root), mds, redisClient, calog.NewNoopLogger()), mds
}

func fixedCtx(t time.Time) context.Context {
	return cactx.WithFixedClock(context.Background(), t)
}

func TestGetAddress(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("returns the agent address", func(t *testing.T) {
		s, mds := testSource(t, &config.Root{}, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil)

		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(fixedCtx(start)))
	})

	t.Run("fetch failure reports empty address", func(t *testing.T) {
		s, mds := testSource(t, &config.Root{}, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(nil, errors.New("metadata service unreachable"))

		assert.Equal(t, "", s.GetAddress(fixedCtx(start)))
	})

	t.Run("failures are not cached", func(t *testing.T) {
		s, mds := testSource(t, &config.Root{}, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(nil, errors.New("metadata service unreachable"))
		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil)

		ctx := fixedCtx(start)
		assert.Equal(t, "", s.GetAddress(ctx))
		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(ctx))
	})

	t.Run("empty address is not cached", func(t *testing.T) {
		s, mds := testSource(t, &config.Root{}, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: ""}, nil)
		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil)

		ctx := fixedCtx(start)
		assert.Equal(t, "", s.GetAddress(ctx))
		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(ctx))
	})

	t.Run("cached within the validity window", func(t *testing.T) {
		s, mds := testSource(t, &config.Root{}, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil).
			Times(1)

		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(fixedCtx(start)))
		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(fixedCtx(start.Add(30*time.Minute))))
		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(fixedCtx(start.Add(59*time.Minute))))
	})

	t.Run("refetched after the validity window", func(t *testing.T) {
		s, mds := testSource(t, &config.Root{}, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil)
		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "10.0.0.1:9443"}, nil)

		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(fixedCtx(start)))
		assert.Equal(t, "10.0.0.1:9443", s.GetAddress(fixedCtx(start.Add(61*time.Minute))))
	})

	t.Run("custom validity window", func(t *testing.T) {
		root := &config.Root{
			Agent: &config.Agent{
				ConfigValidity: &config.HumanDuration{Duration: 5 * time.Minute},
			},
		}
		s, mds := testSource(t, root, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil)
		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil)

		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(fixedCtx(start)))
		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(fixedCtx(start.Add(4*time.Minute))))
		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(fixedCtx(start.Add(6*time.Minute))))
	})

	t.Run("concurrent callers share a single fetch", func(t *testing.T) {
		s, mds := testSource(t, &config.Root{}, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil).
			Times(1)

		ctx := fixedCtx(start)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, "169.254.169.254:8080", s.GetAddress(ctx))
			}()
		}
		wg.Wait()
	})
}

func TestGetMTLSConfig(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("returns errors to the caller", func(t *testing.T) {
		s, mds := testSource(t, &config.Root{}, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(nil, errors.New("metadata service unreachable"))

		_, err := s.GetMTLSConfig(fixedCtx(start))
		require.Error(t, err)
	})

	t.Run("records fetch time and validity", func(t *testing.T) {
		s, mds := testSource(t, &config.Root{}, nil)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil)

		mtlsConfig, err := s.GetMTLSConfig(fixedCtx(start))
		require.NoError(t, err)
		assert.Equal(t, start, mtlsConfig.FetchedAt)
		assert.Equal(t, time.Hour, mtlsConfig.Validity)
		assert.Equal(t, start.Add(time.Hour), mtlsConfig.ExpiresAt())
	})
}

func TestSharedCache(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	root := &config.Root{
		Agent: &config.Agent{SharedCache: true},
	}

	newRedis := func(t *testing.T) caredis.Client {
		c, err := caredis.NewMiniredis(&config.RedisMiniredis{Provider: config.RedisProviderMiniredis})
		require.NoError(t, err)
		require.NoError(t, c.FlushAll(context.Background()).Err())
		return c
	}

	t.Run("second source serves from the shared cache", func(t *testing.T) {
		redisClient := newRedis(t)

		s1, mds1 := testSource(t, root, redisClient)

		// The second source gets no metadata expectations; it must be served from redis.
		s2, _ := testSource(t, root, redisClient)

		mds1.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil).
			Times(1)

		ctx := fixedCtx(start)
		assert.Equal(t, "169.254.169.254:8080", s1.GetAddress(ctx))
		assert.Equal(t, "169.254.169.254:8080", s2.GetAddress(ctx))
	})

	t.Run("expired shared entry triggers a refetch", func(t *testing.T) {
		redisClient := newRedis(t)

		s1, mds1 := testSource(t, root, redisClient)
		s2, mds2 := testSource(t, root, redisClient)

		mds1.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil)
		mds2.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "10.0.0.1:9443"}, nil)

		assert.Equal(t, "169.254.169.254:8080", s1.GetAddress(fixedCtx(start)))
		assert.Equal(t, "10.0.0.1:9443", s2.GetAddress(fixedCtx(start.Add(2*time.Hour))))
	})

	t.Run("shared cache disabled leaves redis untouched", func(t *testing.T) {
		redisClient := newRedis(t)

		s, mds := testSource(t, &config.Root{}, redisClient)

		mds.EXPECT().
			MTLSConfiguration(gomock.Any()).
			Return(&metadata.MTLSConfiguration{S2AAddress: "169.254.169.254:8080"}, nil)

		assert.Equal(t, "169.254.169.254:8080", s.GetAddress(fixedCtx(start)))

		keys, err := redisClient.Keys(context.Background(), "*").Result()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}
