package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("CREDAGENT_TEST_ENV_VAL", "some-value")
	require.Equal(t, "some-value", GetEnvDefault("CREDAGENT_TEST_ENV_VAL", "fallback"))

	t.Setenv("CREDAGENT_TEST_ENV_VAL", "  ")
	require.Equal(t, "fallback", GetEnvDefault("CREDAGENT_TEST_ENV_VAL", "fallback"))

	require.Equal(t, "fallback", GetEnvDefault("CREDAGENT_TEST_ENV_UNSET", "fallback"))
}
