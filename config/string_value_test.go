package config

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStringValue(t *testing.T) {
	ctx := context.Background()

	unmarshal := func(t *testing.T, data string) *StringValue {
		var sv StringValue
		require.NoError(t, yaml.Unmarshal([]byte(data), &sv))
		return &sv
	}

	t.Run("direct string", func(t *testing.T) {
		sv := unmarshal(t, `some-value`)
		require.True(t, sv.HasValue(ctx))
		val, err := sv.GetValue(ctx)
		require.NoError(t, err)
		require.Equal(t, "some-value", val)

		// Renders back as a bare string
		out, err := yaml.Marshal(sv)
		require.NoError(t, err)
		require.Equal(t, "some-value\n", string(out))
	})

	t.Run("value key", func(t *testing.T) {
		sv := unmarshal(t, `value: some-value`)
		val, err := sv.GetValue(ctx)
		require.NoError(t, err)
		require.Equal(t, "some-value", val)
	})

	t.Run("base64", func(t *testing.T) {
		sv := unmarshal(t, "base64: "+base64.StdEncoding.EncodeToString([]byte("decoded")))
		val, err := sv.GetValue(ctx)
		require.NoError(t, err)
		require.Equal(t, "decoded", val)
	})

	t.Run("base64 invalid", func(t *testing.T) {
		sv := unmarshal(t, `base64: "!!!not-base64!!!"`)
		_, err := sv.GetValue(ctx)
		require.Error(t, err)
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv("CREDAGENT_TEST_STRING_VALUE", "from-env")
		sv := unmarshal(t, `env_var: CREDAGENT_TEST_STRING_VALUE`)
		require.True(t, sv.HasValue(ctx))
		val, err := sv.GetValue(ctx)
		require.NoError(t, err)
		require.Equal(t, "from-env", val)
	})

	t.Run("env var missing", func(t *testing.T) {
		sv := unmarshal(t, `env_var: CREDAGENT_TEST_STRING_VALUE_UNSET`)
		require.False(t, sv.HasValue(ctx))
		_, err := sv.GetValue(ctx)
		require.Error(t, err)
	})

	t.Run("env var missing with default", func(t *testing.T) {
		sv := unmarshal(t, "env_var: CREDAGENT_TEST_STRING_VALUE_UNSET\ndefault: fallback")
		val, err := sv.GetValue(ctx)
		require.NoError(t, err)
		require.Equal(t, "fallback", val)
	})

	t.Run("env var base64", func(t *testing.T) {
		t.Setenv("CREDAGENT_TEST_STRING_VALUE_B64", base64.StdEncoding.EncodeToString([]byte("decoded")))
		sv := unmarshal(t, `env_var_base64: CREDAGENT_TEST_STRING_VALUE_B64`)
		val, err := sv.GetValue(ctx)
		require.NoError(t, err)
		require.Equal(t, "decoded", val)
	})

	t.Run("path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "value.txt")
		require.NoError(t, os.WriteFile(path, []byte("from-file"), 0600))

		sv := unmarshal(t, "path: "+path)
		require.True(t, sv.HasValue(ctx))
		val, err := sv.GetValue(ctx)
		require.NoError(t, err)
		require.Equal(t, "from-file", val)
	})

	t.Run("path missing", func(t *testing.T) {
		sv := unmarshal(t, `path: /does/not/exist`)
		require.False(t, sv.HasValue(ctx))
	})

	t.Run("invalid structure", func(t *testing.T) {
		var sv StringValue
		assert.Error(t, yaml.Unmarshal([]byte(`bogus: value`), &sv))
	})

	t.Run("unconfigured holder", func(t *testing.T) {
		sv := &StringValue{}
		require.False(t, sv.HasValue(ctx))
		_, err := sv.GetValue(ctx)
		require.Error(t, err)
	})
}

func TestStringValueClone(t *testing.T) {
	sv := NewStringValueDirect("some-value")
	clone := sv.CloneValue()
	require.NotSame(t, sv.Inner(), clone.Inner())
	require.Equal(t, sv.Inner(), clone.Inner())
}
