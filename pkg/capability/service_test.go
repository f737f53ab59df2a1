package capability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/ent/event"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/models"
	testdb "github.com/missionloop/groundcontrol/test/database"
)

const wsID = "ws_cap"

func grantIdentity(principal string) auth.Identity {
	return auth.Identity{
		PrincipalID:   principal,
		PrincipalType: auth.PrincipalAgent,
		WorkspaceID:   wsID,
	}
}

func TestGrantAndDelegate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client, eventlog.NewStore(client.Client))
	ctx := context.Background()

	root, err := svc.Grant(ctx, grantIdentity("p1"), GrantRequest{
		WorkspaceID:          wsID,
		IssuedToPrincipalID:  "p1",
		GrantedByPrincipalID: "owner",
		Scopes: models.ScopeSet{
			Rooms: []string{"r1", "r2"},
			Tools: []string{"t1", "t2", "t3"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, root.Depth)

	t.Run("delegation attenuates scopes", func(t *testing.T) {
		child, err := svc.Grant(ctx, grantIdentity("p1"), GrantRequest{
			WorkspaceID:          wsID,
			IssuedToPrincipalID:  "p2",
			GrantedByPrincipalID: "p1",
			ParentTokenID:        root.TokenID,
			Scopes: models.ScopeSet{
				Rooms: []string{"r2", "r3"},
				Tools: []string{"t1", "t4"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"r2"}, child.Scopes.Rooms)
		assert.Equal(t, []string{"t1"}, child.Scopes.Tools)
		assert.Equal(t, 1, child.Depth)
	})

	t.Run("depth is bounded at three", func(t *testing.T) {
		parent := root
		holders := []string{"p1", "pa", "pb", "pc"}
		for i := 1; i <= MaxDelegationDepth; i++ {
			child, err := svc.Grant(ctx, grantIdentity(holders[i-1]), GrantRequest{
				WorkspaceID:          wsID,
				IssuedToPrincipalID:  holders[i],
				GrantedByPrincipalID: holders[i-1],
				ParentTokenID:        parent.TokenID,
				Scopes:               models.ScopeSet{Rooms: []string{"r1"}},
			})
			require.NoError(t, err)
			assert.Equal(t, i, child.Depth)
			parent = child
		}

		_, err := svc.Grant(ctx, grantIdentity("pc"), GrantRequest{
			WorkspaceID:          wsID,
			IssuedToPrincipalID:  "pd",
			GrantedByPrincipalID: "pc",
			ParentTokenID:        parent.TokenID,
			Scopes:               models.ScopeSet{Rooms: []string{"r1"}},
		})
		var denial *DenialError
		require.True(t, errors.As(err, &denial))
		assert.Equal(t, DeniedDepthExceeded, denial.Reason)

		attempts, err := client.Event.Query().
			Where(event.EventType(eventlog.TypeDelegationAttempted)).
			Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, attempts, 1)
	})

	t.Run("grantor must hold the parent", func(t *testing.T) {
		_, err := svc.Grant(ctx, grantIdentity("intruder"), GrantRequest{
			WorkspaceID:          wsID,
			IssuedToPrincipalID:  "px",
			GrantedByPrincipalID: "intruder",
			ParentTokenID:        root.TokenID,
			Scopes:               models.ScopeSet{Rooms: []string{"r1"}},
		})
		var denial *DenialError
		require.True(t, errors.As(err, &denial))
		assert.Equal(t, DeniedGrantorMismatch, denial.Reason)
	})

	t.Run("unknown parent", func(t *testing.T) {
		_, err := svc.Grant(ctx, grantIdentity("p1"), GrantRequest{
			WorkspaceID:          wsID,
			IssuedToPrincipalID:  "px",
			GrantedByPrincipalID: "p1",
			ParentTokenID:        "cap_missing",
			Scopes:               models.ScopeSet{Rooms: []string{"r1"}},
		})
		var denial *DenialError
		require.True(t, errors.As(err, &denial))
		assert.Equal(t, DeniedParentNotFound, denial.Reason)
	})
}

func TestRevoke(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client, eventlog.NewStore(client.Client))
	ctx := context.Background()

	root, err := svc.Grant(ctx, grantIdentity("p1"), GrantRequest{
		WorkspaceID:          wsID,
		IssuedToPrincipalID:  "p1",
		GrantedByPrincipalID: "owner",
		Scopes:               models.ScopeSet{Rooms: []string{"r1"}},
	})
	require.NoError(t, err)

	result, err := svc.Revoke(ctx, grantIdentity("p1"), wsID, root.TokenID, "rotation")
	require.NoError(t, err)
	assert.False(t, result.AlreadyRevoked)

	t.Run("revoke is idempotent", func(t *testing.T) {
		again, err := svc.Revoke(ctx, grantIdentity("p1"), wsID, root.TokenID, "rotation")
		require.NoError(t, err)
		assert.True(t, again.AlreadyRevoked)

		revokeEvents, err := client.Event.Query().
			Where(event.EventType(eventlog.TypeCapabilityRevoked)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, revokeEvents)
	})

	t.Run("delegating from a revoked parent is denied", func(t *testing.T) {
		_, err := svc.Grant(ctx, grantIdentity("p1"), GrantRequest{
			WorkspaceID:          wsID,
			IssuedToPrincipalID:  "p2",
			GrantedByPrincipalID: "p1",
			ParentTokenID:        root.TokenID,
			Scopes:               models.ScopeSet{Rooms: []string{"r1"}},
		})
		var denial *DenialError
		require.True(t, errors.As(err, &denial))
		assert.Equal(t, DeniedParentRevoked, denial.Reason)
	})

	t.Run("ancestor revocation kills resolution, not the row", func(t *testing.T) {
		// Build a fresh chain, then revoke the root.
		fresh, err := svc.Grant(ctx, grantIdentity("p1"), GrantRequest{
			WorkspaceID:          wsID,
			IssuedToPrincipalID:  "p1",
			GrantedByPrincipalID: "owner",
			Scopes:               models.ScopeSet{Rooms: []string{"r1"}},
		})
		require.NoError(t, err)
		child, err := svc.Grant(ctx, grantIdentity("p1"), GrantRequest{
			WorkspaceID:          wsID,
			IssuedToPrincipalID:  "p9",
			GrantedByPrincipalID: "p1",
			ParentTokenID:        fresh.TokenID,
			Scopes:               models.ScopeSet{Rooms: []string{"r1"}},
		})
		require.NoError(t, err)

		_, err = svc.Revoke(ctx, grantIdentity("p1"), wsID, fresh.TokenID, "")
		require.NoError(t, err)

		got, err := svc.Get(ctx, wsID, child.TokenID)
		require.NoError(t, err)
		assert.Nil(t, got.RevokedAt)

		_, err = svc.Resolve(ctx, wsID, "p9", "r1")
		assert.True(t, errors.Is(err, ErrTokenNotFound))
	})

	t.Run("revoking a missing token", func(t *testing.T) {
		_, err := svc.Revoke(ctx, grantIdentity("p1"), wsID, "cap_missing", "")
		assert.True(t, errors.Is(err, ErrTokenNotFound))
	})
}

func TestResolve(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client, eventlog.NewStore(client.Client))
	ctx := context.Background()

	_, err := svc.Grant(ctx, grantIdentity("p1"), GrantRequest{
		WorkspaceID:          wsID,
		IssuedToPrincipalID:  "p1",
		GrantedByPrincipalID: "owner",
		Scopes:               models.ScopeSet{Rooms: []string{"r1"}},
	})
	require.NoError(t, err)

	token, err := svc.Resolve(ctx, wsID, "p1", "r1")
	require.NoError(t, err)
	assert.Equal(t, "p1", token.IssuedToPrincipalID)

	_, err = svc.Resolve(ctx, wsID, "p1", "r_uncovered")
	assert.True(t, errors.Is(err, ErrTokenNotFound))

	_, err = svc.Resolve(ctx, wsID, "p_absent", "r1")
	assert.True(t, errors.Is(err, ErrTokenNotFound))
}
