package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, CompareHashAndPassword(hash, "secret123"))
	require.False(t, CompareHashAndPassword(hash, "secret124"))
	require.False(t, CompareHashAndPassword("not-a-hash", "secret123"))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	a, err := HashPassword("secret123")
	require.NoError(t, err)
	b, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
