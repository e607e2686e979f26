package caredis

import (
	"context"
	"testing"
	"time"

	"github.com/rmorlok/credagent/config"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) Client {
	c, err := NewMiniredis(&config.RedisMiniredis{Provider: config.RedisProviderMiniredis})
	require.NoError(t, err)
	return c
}

func TestMutex(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	t.Run("lock and unlock", func(t *testing.T) {
		m := NewMutex(c, "test:lock-unlock")
		require.NoError(t, m.Lock(ctx))
		require.NoError(t, m.Unlock(ctx))
	})

	t.Run("double lock fails", func(t *testing.T) {
		m := NewMutex(c, "test:double-lock")
		require.NoError(t, m.Lock(ctx))
		defer m.Unlock(ctx)
		require.Error(t, m.Lock(ctx))
	})

	t.Run("contention without retry", func(t *testing.T) {
		m1 := NewMutex(c, "test:contention", MutexOptionNoRetry())
		m2 := NewMutex(c, "test:contention", MutexOptionNoRetry())

		require.NoError(t, m1.Lock(ctx))
		defer m1.Unlock(ctx)

		err := m2.Lock(ctx)
		require.Error(t, err)
		require.True(t, MutexIsErrNotObtained(err))
	})

	t.Run("extend", func(t *testing.T) {
		m := NewMutex(c, "test:extend", MutexOptionLockFor(time.Minute))
		require.NoError(t, m.Lock(ctx))
		defer m.Unlock(ctx)
		require.NoError(t, m.Extend(ctx, 2*time.Minute))
	})

	t.Run("unlock without lock fails", func(t *testing.T) {
		m := NewMutex(c, "test:unlocked")
		require.Error(t, m.Unlock(ctx))
		require.Error(t, m.Extend(ctx, time.Minute))
	})

	t.Run("metadata options", func(t *testing.T) {
		m := NewMutex(c, "test:metadata",
			MutexOptionLockToken("some-token"),
			MutexOptionDetailedLockMetadata(),
		)
		require.NoError(t, m.Lock(ctx))
		require.NoError(t, m.Unlock(ctx))
	})
}

func TestPing(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	require.True(t, Ping(ctx, c, testLogger()))
	require.False(t, Ping(ctx, nil, testLogger()))
}
