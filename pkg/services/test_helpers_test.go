package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/capability"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/projector"
	"github.com/missionloop/groundcontrol/pkg/ratelimit"
	testdb "github.com/missionloop/groundcontrol/test/database"
)

const testWorkspace = "ws_svc"

// fixture wires the full service stack against a test database. The rate
// limiter is generous by default so intake tests do not trip it.
type fixture struct {
	db      *database.Client
	store   *eventlog.Store
	reg     *projector.Registry
	leases  *lease.Manager
	limiter *ratelimit.Limiter
	streaks *ratelimit.Streaks
	caps    *capability.Service

	messages   *MessageService
	rooms      *RoomService
	runs       *RunService
	approvals  *ApprovalService
	incidents  *IncidentService
	toolCalls  *ToolCallService
	scorecards *ScorecardService
	artifacts  *ArtifactService
	pipeline   *PipelineService
}

func newFixture(t *testing.T, limits ratelimit.Config) *fixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	store := eventlog.NewStore(db.Client)
	logger := slog.Default()
	reg := projector.NewRegistry(db, store, logger)
	leases := lease.NewManager(db)
	limiter := ratelimit.NewLimiter(limits)
	t.Cleanup(limiter.Stop)
	streaks := ratelimit.NewStreaks(db)
	caps := capability.NewService(db, store)

	messages := NewMessageService(db, store, reg, leases, limiter, streaks, nil, logger)
	messages.SetCapabilities(caps)

	return &fixture{
		db:      db,
		store:   store,
		reg:     reg,
		leases:  leases,
		limiter: limiter,
		streaks: streaks,
		caps:    caps,

		messages:   messages,
		rooms:      NewRoomService(db, store, reg, logger),
		runs:       NewRunService(db, store, reg, logger),
		approvals:  NewApprovalService(db, store, reg, leases, logger),
		incidents:  NewIncidentService(db, store, reg, logger),
		toolCalls:  NewToolCallService(db, store, reg, logger),
		scorecards: NewScorecardService(db, store, reg, logger),
		artifacts:  NewArtifactService(db, store, reg, nil, logger),
		pipeline:   NewPipelineService(db),
	}
}

func generousLimits() ratelimit.Config {
	return ratelimit.Config{
		Messages:  ratelimit.Limit{PerMinute: 6000, Burst: 1000},
		Heartbeat: ratelimit.Limit{PerMinute: 6000, Burst: 1000},
	}
}

// registerAgent creates an agent row and returns its request identity.
func (f *fixture) registerAgent(t *testing.T, agentID, principalID string) auth.Identity {
	t.Helper()
	err := f.db.AgentIdentity.Create().
		SetID(agentID).
		SetWorkspaceID(testWorkspace).
		SetPrincipalID(principalID).
		Exec(context.Background())
	require.NoError(t, err)
	return auth.Identity{
		PrincipalID:   principalID,
		PrincipalType: auth.PrincipalAgent,
		WorkspaceID:   testWorkspace,
	}
}

func ownerIdentity() auth.Identity {
	return auth.Identity{
		PrincipalID:   "sec_owner",
		PrincipalType: auth.PrincipalUser,
		WorkspaceID:   testWorkspace,
		OwnerID:       "own_1",
	}
}
