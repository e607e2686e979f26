package cactx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tclock "k8s.io/utils/clock/testing"
)

func TestGetClock(t *testing.T) {
	t.Run("defaults to real clock", func(t *testing.T) {
		c := GetClock(context.Background())
		require.NotNil(t, c)
		require.WithinDuration(t, time.Now(), c.Now(), time.Second)
	})

	t.Run("returns clock from context", func(t *testing.T) {
		fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		ctx := WithClock(context.Background(), tclock.NewFakeClock(fixed))
		require.Equal(t, fixed, GetClock(ctx).Now())
	})

	t.Run("fixed clock helper", func(t *testing.T) {
		fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		ctx := WithFixedClock(context.Background(), fixed)
		require.Equal(t, fixed, GetClock(ctx).Now())
	})
}
