package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.True(t, ComparePassword(hash, "secret1"))
	require.False(t, ComparePassword(hash, "secret2"))
	require.False(t, ComparePassword("not-a-hash", "secret1"))
}
