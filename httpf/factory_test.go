package httpf

import (
	"testing"

	"github.com/rmorlok/credagent/calog"
	"github.com/rmorlok/credagent/config"
	"github.com/stretchr/testify/require"
)

func TestClientFactory(t *testing.T) {
	cfg := config.FromRoot(&config.Root{})

	t.Run("chaining preserves request info", func(t *testing.T) {
		f := CreateFactory(cfg, calog.NewNoopLogger())

		scoped := f.ForRequestType(RequestTypeMetadata).ForCredentialName("default")
		inner := scoped.(*clientFactory)
		require.Equal(t, RequestTypeMetadata, inner.requestInfo.Type)
		require.Equal(t, "default", inner.requestInfo.CredentialName)

		// Original factory is unchanged
		require.Equal(t, RequestTypeGlobal, f.(*clientFactory).requestInfo.Type)
	})

	t.Run("new returns usable client", func(t *testing.T) {
		f := CreateFactory(cfg, calog.NewNoopLogger(), NewLoggingRoundTripperFactory(calog.NewNoopLogger()))
		cli := f.New()
		require.NotNil(t, cli)

		// Repeated calls share the cached parent
		require.NotNil(t, f.New())
	})
}
