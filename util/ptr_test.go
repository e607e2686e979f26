package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToPtr(t *testing.T) {
	v := ToPtr("foo")
	require.NotNil(t, v)
	require.Equal(t, "foo", *v)
}

func TestCoerceString(t *testing.T) {
	require.Equal(t, "", CoerceString(ToPtr("")))
	require.Equal(t, "foo", CoerceString(ToPtr("foo")))
	require.Equal(t, "", CoerceString(nil))
}

func TestCoerceBool(t *testing.T) {
	require.True(t, CoerceBool(ToPtr(true)))
	require.False(t, CoerceBool(ToPtr(false)))
	require.False(t, CoerceBool(nil))
}
