package projector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/ent/approval"
	"github.com/missionloop/groundcontrol/ent/deadletter"
	"github.com/missionloop/groundcontrol/ent/evidencemanifest"
	"github.com/missionloop/groundcontrol/ent/incident"
	"github.com/missionloop/groundcontrol/ent/room"
	"github.com/missionloop/groundcontrol/ent/run"
	"github.com/missionloop/groundcontrol/ent/scorecard"
	"github.com/missionloop/groundcontrol/ent/skillentry"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	testdb "github.com/missionloop/groundcontrol/test/database"
)

const wsID = "ws_proj"

type harness struct {
	client *database.Client
	store  *eventlog.Store
	reg    *Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := eventlog.NewStore(client.Client)
	return &harness{
		client: client,
		store:  store,
		reg:    NewRegistry(client, store, slog.Default()),
	}
}

// record appends a draft and folds it, the way the write path does: append
// and fold in one transaction, dead letters deposited after commit.
func (h *harness) record(t *testing.T, d eventlog.Draft) *eventlog.Envelope {
	t.Helper()
	ctx := context.Background()

	tx, err := h.client.Tx(ctx)
	require.NoError(t, err)
	env, err := h.store.Append(ctx, tx, d)
	require.NoError(t, err)
	failures, err := h.reg.Fold(ctx, tx, env)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	h.reg.Deposit(ctx, failures)
	return env
}

// reapply folds an already-committed envelope a second time.
func (h *harness) reapply(t *testing.T, env *eventlog.Envelope) {
	t.Helper()
	ctx := context.Background()

	tx, err := h.client.Tx(ctx)
	require.NoError(t, err)
	failures, err := h.reg.Fold(ctx, tx, env)
	require.NoError(t, err)
	require.Empty(t, failures)
	require.NoError(t, tx.Commit())
}

func draft(eventType string, data string) eventlog.Draft {
	return eventlog.Draft{
		EventType:   eventType,
		WorkspaceID: wsID,
		ActorType:   eventlog.ActorAgent,
		ActorID:     "agent_1",
		StreamType:  eventlog.StreamWorkspace,
		StreamID:    wsID,
		Data:        json.RawMessage(data),
	}
}

func roomDraft(eventType, roomID, data string) eventlog.Draft {
	d := draft(eventType, data)
	d.RoomID = roomID
	d.StreamType = eventlog.StreamRoom
	d.StreamID = roomID
	return d
}

func TestRoomProjection(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.record(t, roomDraft(eventlog.TypeRoomCreated, "room_1", `{"title":"deploy window"}`))
	h.record(t, roomDraft(eventlog.TypeMessageCreated, "room_1", `{"text":"hi"}`))
	h.record(t, roomDraft(eventlog.TypeMessageCreated, "room_1", `{"text":"again"}`))

	row, err := h.client.Room.Get(ctx, "room_1")
	require.NoError(t, err)
	assert.Equal(t, "deploy window", row.Title)
	assert.Equal(t, int64(2), row.MessageCount)

	t.Run("reapply is a no-op", func(t *testing.T) {
		// Only the newest event's reapply is detectable via last_event_id;
		// fold the latest twice and check the counter held.
		latest := h.record(t, roomDraft(eventlog.TypeMessageCreated, "room_1", `{"text":"x"}`))
		h.reapply(t, latest)

		row, err := h.client.Room.Get(ctx, "room_1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), row.MessageCount)
	})

	t.Run("threads count their own messages", func(t *testing.T) {
		td := roomDraft(eventlog.TypeThreadCreated, "room_1", `{}`)
		td.ThreadID = "thr_1"
		h.record(t, td)

		md := roomDraft(eventlog.TypeMessageCreated, "room_1", `{"text":"threaded"}`)
		md.ThreadID = "thr_1"
		h.record(t, md)

		thr, err := h.client.Thread.Get(ctx, "thr_1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), thr.MessageCount)
	})
}

func runDraft(eventType, runID, data string) eventlog.Draft {
	d := draft(eventType, data)
	d.RunID = runID
	return d
}

func TestRunProjection(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.record(t, runDraft(eventlog.TypeRunCreated, "run_1", `{"title":"canary"}`))
	h.record(t, runDraft(eventlog.TypeRunStarted, "run_1", `{}`))

	row, err := h.client.Run.Get(ctx, "run_1")
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, row.Status)
	assert.NotNil(t, row.StartedAt)

	t.Run("failure records the error document", func(t *testing.T) {
		h.record(t, runDraft(eventlog.TypeRunFailed, "run_1",
			`{"error":{"code":"policy_denied","kind":"policy"}}`))

		row, err := h.client.Run.Get(ctx, "run_1")
		require.NoError(t, err)
		assert.Equal(t, run.StatusFailed, row.Status)
		require.NotNil(t, row.ErrorCode)
		assert.Equal(t, "policy_denied", *row.ErrorCode)
		require.NotNil(t, row.FinishedAt)
	})

	t.Run("terminal state absorbs later transitions", func(t *testing.T) {
		h.record(t, runDraft(eventlog.TypeRunStarted, "run_1", `{}`))

		row, err := h.client.Run.Get(ctx, "run_1")
		require.NoError(t, err)
		assert.Equal(t, run.StatusFailed, row.Status)
	})

	t.Run("steps settle once", func(t *testing.T) {
		sd := runDraft(eventlog.TypeStepStarted, "run_1", `{"name":"build"}`)
		sd.StepID = "stp_1"
		h.record(t, sd)

		cd := runDraft(eventlog.TypeStepCompleted, "run_1", `{}`)
		cd.StepID = "stp_1"
		h.record(t, cd)

		fd := runDraft(eventlog.TypeStepFailed, "run_1", `{}`)
		fd.StepID = "stp_1"
		h.record(t, fd)

		step, err := h.client.Step.Get(ctx, "stp_1")
		require.NoError(t, err)
		assert.Equal(t, "completed", string(step.Status))
	})
}

func TestIncidentProjection(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.record(t, draft(eventlog.TypeIncidentOpened,
		`{"incident_id":"inc_1","title":"api errors","severity":"high"}`))
	h.record(t, draft(eventlog.TypeIncidentRCAUpdated, `{"incident_id":"inc_1"}`))
	h.record(t, draft(eventlog.TypeIncidentLearningLogged,
		`{"incident_id":"inc_1","summary":"retry budget too small"}`))
	h.record(t, draft(eventlog.TypeIncidentClosed, `{"incident_id":"inc_1"}`))

	row, err := h.client.Incident.Get(ctx, "inc_1")
	require.NoError(t, err)
	assert.Equal(t, incident.StatusClosed, row.Status)
	assert.NotNil(t, row.RcaUpdatedAt)
	assert.Equal(t, 1, row.LearningCount)
	assert.NotNil(t, row.ClosedAt)

	learnings, err := h.client.IncidentLearning.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, learnings, 1)
	assert.Equal(t, "retry budget too small", learnings[0].Summary)
}

func TestArtifactManifest(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	artifactDraft := func(runID, artifactID string) eventlog.Draft {
		d := draft(eventlog.TypeArtifactCreated, fmt.Sprintf(
			`{"artifact_id":%q,"object_key":"blobs/%s","media_type":"text/plain","size_bytes":12}`,
			artifactID, artifactID))
		d.RunID = runID
		return d
	}

	// Same artifact set, opposite arrival order.
	h.record(t, artifactDraft("run_a", "art_b"))
	h.record(t, artifactDraft("run_a", "art_a"))
	h.record(t, artifactDraft("run_b", "art_a"))
	h.record(t, artifactDraft("run_b", "art_b"))

	manifestA, err := h.client.EvidenceManifest.Query().
		Where(evidencemanifest.RunID("run_a")).
		Only(ctx)
	require.NoError(t, err)
	manifestB, err := h.client.EvidenceManifest.Query().
		Where(evidencemanifest.RunID("run_b")).
		Only(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"art_a", "art_b"}, manifestA.ArtifactIds)
	assert.Equal(t, manifestA.ManifestHash, manifestB.ManifestHash)
	assert.Contains(t, manifestA.ManifestHash, "sha256:")
}

func TestScorecardProjection(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.record(t, draft(eventlog.TypeScorecardRecorded,
		`{"scorecard_id":"sc_1","subject":"canary","metrics":[
			{"key":"latency","value":1,"weight":1},
			{"key":"accuracy","value":0.5,"weight":1}]}`))

	row, err := h.client.Scorecard.Get(ctx, "sc_1")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, row.Score, 1e-9)
	assert.Equal(t, scorecard.DecisionPass, row.Decision)
	// Normalization sorts metrics by key.
	assert.Equal(t, "accuracy", row.Metrics[0].Key)
	assert.Contains(t, row.MetricsHash, "sha256:")

	t.Run("invalid metrics dead-letter", func(t *testing.T) {
		h.record(t, draft(eventlog.TypeScorecardRecorded,
			`{"scorecard_id":"sc_bad","metrics":[{"key":"x","value":2,"weight":1}]}`))

		_, err := h.client.Scorecard.Get(ctx, "sc_bad")
		assert.Error(t, err)

		letters, err := h.client.DeadLetter.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, letters)
	})

	t.Run("lesson rows land", func(t *testing.T) {
		h.record(t, draft(eventlog.TypeLessonRecorded,
			`{"lesson_id":"learn_1","title":"watch the p99","scorecard_id":"sc_1"}`))

		lessonRow, err := h.client.Lesson.Get(ctx, "learn_1")
		require.NoError(t, err)
		assert.Equal(t, "watch the p99", lessonRow.Title)
	})
}

func TestApprovalProjection(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.record(t, draft(eventlog.TypeApprovalRequested,
		`{"approval_id":"ap_1","title":"prod deploy"}`))
	h.record(t, draft(eventlog.TypeApprovalHeld, `{"approval_id":"ap_1"}`))
	h.record(t, draft(eventlog.TypeApprovalApproved,
		`{"approval_id":"ap_1","decided_by":"sec_owner"}`))

	row, err := h.client.Approval.Get(ctx, "ap_1")
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, row.Status)
	require.NotNil(t, row.DecidedBy)
	assert.Equal(t, "sec_owner", *row.DecidedBy)

	t.Run("decisions are absorbing", func(t *testing.T) {
		h.record(t, draft(eventlog.TypeApprovalRejected, `{"approval_id":"ap_1"}`))

		row, err := h.client.Approval.Get(ctx, "ap_1")
		require.NoError(t, err)
		assert.Equal(t, approval.StatusApproved, row.Status)
	})
}

func TestSkillLedger(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.record(t, draft(eventlog.TypeSkillObservationRecorded,
		`{"skill_name":"rollback","outcome":"success"}`))
	h.record(t, draft(eventlog.TypeSkillObservationRecorded,
		`{"skill_name":"rollback","outcome":"failure"}`))
	h.record(t, draft(eventlog.TypeSkillObservationRecorded,
		`{"skill_name":"rollback","outcome":"success"}`))

	row, err := h.client.SkillEntry.Query().
		Where(skillentry.SkillName("rollback")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), row.Attempts)
	assert.Equal(t, int64(2), row.Successes)
	assert.InDelta(t, 2.0/3.0, row.SurvivalScore, 1e-9)
}

func TestDeadLetters(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// message.created for a room that was never projected.
	h.record(t, roomDraft(eventlog.TypeMessageCreated, "room_ghost", `{"text":"lost"}`))

	letters, err := h.client.DeadLetter.Query().
		Where(deadletter.ResolvedAtIsNil()).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, "rooms", letters[0].Projector)

	t.Run("retry resolves once the room exists", func(t *testing.T) {
		h.record(t, roomDraft(eventlog.TypeRoomCreated, "room_ghost", `{"title":"late"}`))

		resolved, err := h.reg.RetryDeadLetters(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, resolved)

		remaining, err := h.client.DeadLetter.Query().
			Where(deadletter.ResolvedAtIsNil()).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, remaining)

		roomRow, err := h.client.Room.Get(ctx, "room_ghost")
		require.NoError(t, err)
		assert.Equal(t, int64(1), roomRow.MessageCount)
	})
}

func TestRebuild(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.record(t, roomDraft(eventlog.TypeRoomCreated, "room_r", `{"title":"rebuildable"}`))
	h.record(t, roomDraft(eventlog.TypeMessageCreated, "room_r", `{"text":"one"}`))
	h.record(t, roomDraft(eventlog.TypeMessageCreated, "room_r", `{"text":"two"}`))
	h.record(t, runDraft(eventlog.TypeRunCreated, "run_r", `{"title":"r"}`))
	h.record(t, runDraft(eventlog.TypeRunSucceeded, "run_r", `{}`))

	// Corrupt a projection, then rebuild from the log.
	require.NoError(t, h.client.Room.UpdateOneID("room_r").
		SetMessageCount(99).
		Exec(ctx))

	applied, err := h.reg.Rebuild(ctx, wsID)
	require.NoError(t, err)
	assert.Equal(t, 5, applied)

	roomRow, err := h.client.Room.Query().
		Where(room.ID("room_r")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), roomRow.MessageCount)

	runRow, err := h.client.Run.Get(ctx, "run_r")
	require.NoError(t, err)
	assert.Equal(t, run.StatusSucceeded, runRow.Status)
}
