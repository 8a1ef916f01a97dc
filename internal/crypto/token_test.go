package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, hash, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, token, hash)
	assert.Equal(t, HashToken(token), hash)
}

func TestGenerateTokenUnique(t *testing.T) {
	t1, _, err := GenerateToken()
	require.NoError(t, err)
	t2, _, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}

func TestVerifyToken(t *testing.T) {
	token, hash, err := GenerateToken()
	require.NoError(t, err)

	assert.True(t, VerifyToken(token, hash))
	assert.False(t, VerifyToken("wrong", hash))
	assert.False(t, VerifyToken("", hash))
	assert.False(t, VerifyToken(token, ""))
}
