package auth

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/missionloop/groundcontrol/test/database"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewService(client, testSecret, slog.Default())
}

func TestBootstrapAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	result, err := svc.Bootstrap(ctx, "ws_auth", "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, result.OwnerID)
	assert.NotEmpty(t, result.PrincipalID)

	t.Run("second bootstrap refused", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "ws_auth", "other@example.com", "pw")
		assert.ErrorIs(t, err, ErrOwnerExists)
	})

	t.Run("login mints a session", func(t *testing.T) {
		session, err := svc.Login(ctx, "ws_auth", "owner@example.com", "hunter2hunter2")
		require.NoError(t, err)

		identity, err := svc.ResolveBearer(ctx, session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.PrincipalID, identity.PrincipalID)
		assert.Equal(t, result.OwnerID, identity.OwnerID)
		assert.Equal(t, PrincipalUser, identity.PrincipalType)
		assert.Equal(t, "ws_auth", identity.WorkspaceID)
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		_, err := svc.Login(ctx, "ws_auth", "owner@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email indistinguishable", func(t *testing.T) {
		_, err := svc.Login(ctx, "ws_auth", "ghost@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshRotation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Bootstrap(ctx, "ws_auth", "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)
	first, err := svc.Login(ctx, "ws_auth", "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	t.Run("old refresh token is dead", func(t *testing.T) {
		_, err := svc.Refresh(ctx, first.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("new refresh token works", func(t *testing.T) {
		_, err := svc.Refresh(ctx, second.RefreshToken)
		assert.NoError(t, err)
	})
}

func TestAPIKeys(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	issued, key, err := svc.IssueAPIKey(ctx, "ws_auth", PrincipalAgent, "triage-agent")
	require.NoError(t, err)
	assert.True(t, len(key) > 3 && key[:3] == "ak_")

	t.Run("key resolves to its principal", func(t *testing.T) {
		identity, err := svc.ResolveBearer(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, issued.PrincipalID, identity.PrincipalID)
		assert.Equal(t, PrincipalAgent, identity.PrincipalType)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := svc.ResolveBearer(ctx, "ak_deadbeef")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("user type refused", func(t *testing.T) {
		_, _, err := svc.IssueAPIKey(ctx, "ws_auth", PrincipalUser, "nope")
		assert.Error(t, err)
	})
}
