package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	token, err := GenerateSessionToken("user@example.com", "secret", 24)
	require.NoError(t, err)

	identifier, ok := ParseSessionToken(token, "secret")
	assert.True(t, ok)
	assert.Equal(t, "user@example.com", identifier)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("user@example.com", "secret", 24)
	require.NoError(t, err)

	_, ok := ParseSessionToken(token, "other-secret")
	assert.False(t, ok)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken("user@example.com", "secret", -1)
	require.NoError(t, err)

	_, ok := ParseSessionToken(token, "secret")
	assert.False(t, ok)
}

func TestSessionTokenGarbage(t *testing.T) {
	for _, input := range []string{"", "not-a-token", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, ok := ParseSessionToken(input, "secret")
		assert.False(t, ok, "input %q", input)
	}
}
