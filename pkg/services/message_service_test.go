package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entevent "github.com/missionloop/groundcontrol/ent/event"
	"github.com/missionloop/groundcontrol/pkg/capability"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/models"
	"github.com/missionloop/groundcontrol/pkg/ratelimit"
)

func intakeReq(agentID, key string) IntakeRequest {
	return IntakeRequest{
		SchemaVersion:  "1",
		FromAgentID:    agentID,
		IdempotencyKey: key,
		Payload:        json.RawMessage(`{"text":"hello"}`),
	}
}

func TestIntakeValidation(t *testing.T) {
	f := newFixture(t, generousLimits())
	identity := f.registerAgent(t, "agent_a", "sec_a")
	ctx := context.Background()

	cases := map[string]struct {
		mutate func(*IntakeRequest)
		code   string
	}{
		"unsupported schema version": {
			mutate: func(r *IntakeRequest) { r.SchemaVersion = "99" },
			code:   ReasonUnsupportedVersion,
		},
		"missing from_agent_id": {
			mutate: func(r *IntakeRequest) { r.FromAgentID = "" },
			code:   ReasonMissingField,
		},
		"missing idempotency_key": {
			mutate: func(r *IntakeRequest) { r.IdempotencyKey = "" },
			code:   ReasonMissingField,
		},
		"both payload and payload_ref": {
			mutate: func(r *IntakeRequest) { r.PayloadRef = &PayloadRef{ObjectKey: "k"} },
			code:   ReasonInvalidPayloadCombination,
		},
		"neither payload nor payload_ref": {
			mutate: func(r *IntakeRequest) { r.Payload = nil },
			code:   ReasonInvalidPayloadCombination,
		},
		"unknown intent": {
			mutate: func(r *IntakeRequest) { r.Intent = "ponder" },
			code:   ReasonInvalidIntentForType,
		},
		"resolve without work link": {
			mutate: func(r *IntakeRequest) { r.Intent = IntentResolve },
			code:   ReasonMissingWorkLink,
		},
		"heartbeat with work link": {
			mutate: func(r *IntakeRequest) {
				r.Intent = IntentHeartbeat
				r.WorkLinks = &WorkLinks{ApprovalID: "ap_1"}
			},
			code: ReasonInvalidIntentForType,
		},
		"two work links": {
			mutate: func(r *IntakeRequest) {
				r.WorkLinks = &WorkLinks{ApprovalID: "ap_1", IncidentID: "inc_1"}
			},
			code: ReasonInvalidPayloadCombination,
		},
		"oversized payload": {
			mutate: func(r *IntakeRequest) {
				big := make([]byte, maxPayloadBytes+100)
				for i := range big {
					big[i] = 'a'
				}
				r.Payload, _ = json.Marshal(map[string]string{"blob": string(big)})
			},
			code: ReasonPayloadTooLarge,
		},
		"agent of another principal": {
			mutate: func(r *IntakeRequest) { r.FromAgentID = "agent_b" },
			code:   ReasonUnknownAgent,
		},
		"unknown room": {
			mutate: func(r *IntakeRequest) { r.RoomID = "room_ghost" },
			code:   ReasonMissingField,
		},
		"occurred_at outside the skew window": {
			mutate: func(r *IntakeRequest) { r.OccurredAt = time.Now().Add(-30 * 24 * time.Hour) },
			code:   ReasonMissingField,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := intakeReq("agent_a", "key_"+name)
			tc.mutate(&req)
			_, err := f.messages.Intake(ctx, identity, req)
			require.Error(t, err)
			assert.Equal(t, tc.code, ReasonCode(err))
		})
	}
}

func TestIntakeIdempotentReplay(t *testing.T) {
	f := newFixture(t, generousLimits())
	identity := f.registerAgent(t, "agent_a", "sec_a")
	ctx := context.Background()

	first, err := f.messages.Intake(ctx, identity, intakeReq("agent_a", "K1"))
	require.NoError(t, err)
	assert.False(t, first.IdempotentReplay)
	assert.NotEmpty(t, first.MessageID)
	assert.NotEmpty(t, first.EventHash)
	assert.Equal(t, int64(1), first.StreamSeq)

	second, err := f.messages.Intake(ctx, identity, intakeReq("agent_a", "K1"))
	require.NoError(t, err)
	assert.True(t, second.IdempotentReplay)
	assert.Equal(t, first.MessageID, second.MessageID)
	assert.Equal(t, ReasonDuplicateIdempotentReplay, second.ReasonCode)

	// Exactly one message.created committed.
	n, err := f.db.Event.Query().
		Where(
			entevent.WorkspaceID(testWorkspace),
			entevent.EventTypeEQ(eventlog.TypeMessageCreated),
			entevent.IdempotencyKeyEQ("K1"),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestIntakeIdempotencyConflict(t *testing.T) {
	f := newFixture(t, generousLimits())
	identityA := f.registerAgent(t, "agent_a", "sec_a")
	identityB := f.registerAgent(t, "agent_b", "sec_b")
	ctx := context.Background()

	_, err := f.messages.Intake(ctx, identityA, intakeReq("agent_a", "K2"))
	require.NoError(t, err)

	_, err = f.messages.Intake(ctx, identityB, intakeReq("agent_b", "K2"))
	require.Error(t, err)
	assert.Equal(t, ReasonIdempotencyConflict, ReasonCode(err))
}

func TestIntakeLeaseDiscipline(t *testing.T) {
	f := newFixture(t, generousLimits())
	identityA := f.registerAgent(t, "agent_a", "sec_a")
	identityB := f.registerAgent(t, "agent_b", "sec_b")
	ctx := context.Background()

	_, err := f.leases.Acquire(ctx, testWorkspace, lease.ItemApproval, "ap_1", "agent_a", time.Minute)
	require.NoError(t, err)

	t.Run("preempted writer is refused", func(t *testing.T) {
		req := intakeReq("agent_b", "KB1")
		req.WorkLinks = &WorkLinks{ApprovalID: "ap_1"}
		_, err := f.messages.Intake(ctx, identityB, req)
		require.Error(t, err)
		assert.Equal(t, ReasonLeaseExpiredOrPreempted, ReasonCode(err))
	})

	t.Run("holder resolve commits and retires the lease", func(t *testing.T) {
		req := intakeReq("agent_a", "KA1")
		req.Intent = IntentResolve
		req.WorkLinks = &WorkLinks{ApprovalID: "ap_1"}
		res, err := f.messages.Intake(ctx, identityA, req)
		require.NoError(t, err)
		assert.False(t, res.LeaseWarning)

		_, err = f.leases.Get(ctx, testWorkspace, lease.ItemApproval, "ap_1")
		assert.ErrorIs(t, err, lease.ErrAbsent)
	})

	t.Run("absent lease warns but commits", func(t *testing.T) {
		req := intakeReq("agent_a", "KA2")
		req.WorkLinks = &WorkLinks{IncidentID: "inc_unleased"}
		res, err := f.messages.Intake(ctx, identityA, req)
		require.NoError(t, err)
		assert.True(t, res.LeaseWarning)
	})

	t.Run("run links are never leased", func(t *testing.T) {
		req := intakeReq("agent_a", "KA3")
		req.Intent = IntentResolve
		req.WorkLinks = &WorkLinks{RunID: "run_1"}
		res, err := f.messages.Intake(ctx, identityA, req)
		require.NoError(t, err)
		assert.False(t, res.LeaseWarning)
	})
}

func TestIntakeRateLimit(t *testing.T) {
	f := newFixture(t, ratelimit.Config{
		Messages:  ratelimit.Limit{PerMinute: 6, Burst: 2},
		Heartbeat: ratelimit.Limit{PerMinute: 6, Burst: 1},
	})
	identity := f.registerAgent(t, "agent_a", "sec_a")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := f.messages.Intake(ctx, identity, intakeReq("agent_a", "RL"+string(rune('a'+i))))
		require.NoError(t, err)
	}

	_, err := f.messages.Intake(ctx, identity, intakeReq("agent_a", "RLz"))
	require.Error(t, err)
	re, ok := AsReason(err)
	require.True(t, ok)
	assert.Equal(t, ReasonRateLimited, re.Code)
	assert.Contains(t, re.Details, "retry_after_seconds")

	// Heartbeats deny under their own code.
	hb := intakeReq("agent_a", "HB1")
	hb.Intent = IntentHeartbeat
	_, err = f.messages.Intake(ctx, identity, hb)
	require.NoError(t, err)
	hb2 := intakeReq("agent_a", "HB2")
	hb2.Intent = IntentHeartbeat
	_, err = f.messages.Intake(ctx, identity, hb2)
	require.Error(t, err)
	assert.Equal(t, ReasonHeartbeatRateLimited, ReasonCode(err))

	// Denials never consume the idempotency key: nothing was appended
	// under the denied key.
	n, err := f.db.Event.Query().
		Where(entevent.IdempotencyKeyEQ("HB2")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestIntakeRoomScopeEnforcement(t *testing.T) {
	f := newFixture(t, generousLimits())
	identity := f.registerAgent(t, "agent_a", "sec_a")
	ctx := context.Background()

	opsRoom, err := f.rooms.CreateRoom(ctx, ownerIdentity(), "ops")
	require.NoError(t, err)
	sideRoom, err := f.rooms.CreateRoom(ctx, ownerIdentity(), "side")
	require.NoError(t, err)

	t.Run("token-less agents are unconstrained", func(t *testing.T) {
		req := intakeReq("agent_a", "CS1")
		req.RoomID = sideRoom.ID
		_, err := f.messages.Intake(ctx, identity, req)
		require.NoError(t, err)
	})

	token, err := f.caps.Grant(ctx, ownerIdentity(), capability.GrantRequest{
		WorkspaceID:          testWorkspace,
		IssuedToPrincipalID:  "sec_a",
		GrantedByPrincipalID: "sec_owner",
		Scopes:               models.ScopeSet{Rooms: []string{opsRoom.ID}},
	})
	require.NoError(t, err)

	t.Run("covered room accepted", func(t *testing.T) {
		req := intakeReq("agent_a", "CS2")
		req.RoomID = opsRoom.ID
		_, err := f.messages.Intake(ctx, identity, req)
		require.NoError(t, err)
	})

	t.Run("uncovered room refused", func(t *testing.T) {
		req := intakeReq("agent_a", "CS3")
		req.RoomID = sideRoom.ID
		_, err := f.messages.Intake(ctx, identity, req)
		require.Error(t, err)
		assert.Equal(t, ReasonRoomScopeDenied, ReasonCode(err))
	})

	t.Run("revoking the last token lifts the constraint", func(t *testing.T) {
		_, err := f.caps.Revoke(ctx, ownerIdentity(), testWorkspace, token.TokenID, "rotation")
		require.NoError(t, err)

		req := intakeReq("agent_a", "CS4")
		req.RoomID = sideRoom.ID
		_, err = f.messages.Intake(ctx, identity, req)
		require.NoError(t, err)
	})
}

func TestIntakeRoomStream(t *testing.T) {
	f := newFixture(t, generousLimits())
	identity := f.registerAgent(t, "agent_a", "sec_a")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, ownerIdentity(), "ops")
	require.NoError(t, err)

	req := intakeReq("agent_a", "RM1")
	req.RoomID = room.ID
	res, err := f.messages.Intake(ctx, identity, req)
	require.NoError(t, err)

	row, err := f.db.Event.Get(ctx, res.EventID)
	require.NoError(t, err)
	assert.Equal(t, entevent.StreamTypeRoom, row.StreamType)
	assert.Equal(t, room.ID, row.StreamID)

	// The rooms reducer counted the message.
	updated, err := f.db.Room.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.MessageCount)
}
