package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-session-secret")

func TestAccessTokenRoundtrip(t *testing.T) {
	identity := Identity{
		PrincipalID:   "sec_abc",
		PrincipalType: PrincipalUser,
		WorkspaceID:   "ws_1",
		OwnerID:       "own_1",
	}
	now := time.Now().UTC()

	token, expiresAt, err := SignAccessToken(testSecret, identity, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(AccessTokenTTL), expiresAt, time.Second)

	got, err := ParseAccessToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestParseAccessTokenRejects(t *testing.T) {
	identity := Identity{PrincipalID: "sec_abc", PrincipalType: PrincipalUser, WorkspaceID: "ws_1"}

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := SignAccessToken(testSecret, identity, time.Now())
		require.NoError(t, err)
		_, err = ParseAccessToken([]byte("other-secret"), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := SignAccessToken(testSecret, identity, time.Now().Add(-2*AccessTokenTTL))
		require.NoError(t, err)
		_, err = ParseAccessToken(testSecret, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseAccessToken(testSecret, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRefreshToken(t *testing.T) {
	token, digest, err := NewRefreshToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, HashToken(token), digest)
	assert.NotEqual(t, token, digest)

	other, _, err := NewRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
