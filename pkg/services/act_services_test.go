package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/ent/run"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/models"
)

func TestRunTransitions(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	r, err := f.runs.CreateRun(ctx, owner, "deploy api", "", "")
	require.NoError(t, err)
	assert.Equal(t, run.StatusQueued, r.Status)

	t.Run("queued cannot succeed directly", func(t *testing.T) {
		_, err := f.runs.UpdateRunStatus(ctx, owner, r.ID, "succeeded", nil)
		require.Error(t, err)
		assert.Equal(t, ReasonInvalidRunTransition, ReasonCode(err))
	})

	t.Run("queued cannot fail directly", func(t *testing.T) {
		_, err := f.runs.UpdateRunStatus(ctx, owner, r.ID, "failed", nil)
		require.Error(t, err)
		assert.Equal(t, ReasonInvalidRunTransition, ReasonCode(err))
	})

	updated, err := f.runs.UpdateRunStatus(ctx, owner, r.ID, "running", nil)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, updated.Status)
	assert.NotNil(t, updated.StartedAt)

	updated, err = f.runs.UpdateRunStatus(ctx, owner, r.ID, "succeeded", nil)
	require.NoError(t, err)
	assert.Equal(t, run.StatusSucceeded, updated.Status)
	assert.NotNil(t, updated.FinishedAt)

	t.Run("terminal states are absorbing", func(t *testing.T) {
		_, err := f.runs.UpdateRunStatus(ctx, owner, r.ID, "running", nil)
		require.Error(t, err)
		assert.Equal(t, ReasonInvalidRunTransition, ReasonCode(err))
	})

	t.Run("unknown run is not found", func(t *testing.T) {
		_, err := f.runs.UpdateRunStatus(ctx, owner, "run_ghost", "running", nil)
		require.Error(t, err)
		assert.Equal(t, ReasonNotFound, ReasonCode(err))
	})
}

func TestSteps(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	r, err := f.runs.CreateRun(ctx, owner, "migration", "", "")
	require.NoError(t, err)

	st, err := f.runs.CreateStep(ctx, owner, r.ID, "dump schema")
	require.NoError(t, err)

	settled, err := f.runs.SettleStep(ctx, owner, st.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", string(settled.Status))

	_, err = f.runs.SettleStep(ctx, owner, st.ID, "failed")
	require.Error(t, err)
	assert.Equal(t, ReasonInvalidRunTransition, ReasonCode(err))

	_, steps, err := f.runs.GetRun(ctx, testWorkspace, r.ID)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, st.ID, steps[0].ID)
}

func TestApprovalDecisions(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	ap, err := f.approvals.Request(ctx, owner, "ship it", "", "")
	require.NoError(t, err)
	assert.Equal(t, "pending", string(ap.Status))

	t.Run("hold then approve", func(t *testing.T) {
		res, err := f.approvals.Decide(ctx, owner, ap.ID, "hold")
		require.NoError(t, err)
		assert.Equal(t, "held", string(res.Approval.Status))

		res, err = f.approvals.Decide(ctx, owner, ap.ID, "approve")
		require.NoError(t, err)
		assert.Equal(t, "approved", string(res.Approval.Status))
		assert.NotNil(t, res.Approval.DecidedAt)
	})

	t.Run("decided approvals refuse further decisions", func(t *testing.T) {
		_, err := f.approvals.Decide(ctx, owner, ap.ID, "reject")
		require.Error(t, err)
		assert.Equal(t, ReasonApprovalAlreadyDecided, ReasonCode(err))
	})
}

func TestApprovalAgentLease(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	identityA := f.registerAgent(t, "agent_a", "sec_a")
	identityB := f.registerAgent(t, "agent_b", "sec_b")
	ctx := context.Background()

	t.Run("missing lease warns", func(t *testing.T) {
		ap, err := f.approvals.Request(ctx, owner, "no lease", "", "")
		require.NoError(t, err)
		res, err := f.approvals.Decide(ctx, identityA, ap.ID, "approve")
		require.NoError(t, err)
		assert.True(t, res.LeaseWarning)
	})

	t.Run("lease held by another agent refuses", func(t *testing.T) {
		ap, err := f.approvals.Request(ctx, owner, "contested", "", "")
		require.NoError(t, err)
		_, err = f.leases.Acquire(ctx, testWorkspace, lease.ItemApproval, ap.ID, "agent_a", time.Minute)
		require.NoError(t, err)

		_, err = f.approvals.Decide(ctx, identityB, ap.ID, "approve")
		require.Error(t, err)
		assert.Equal(t, ReasonLeaseHeld, ReasonCode(err))

		// The holder's decision lands and retires the lease.
		res, err := f.approvals.Decide(ctx, identityA, ap.ID, "approve")
		require.NoError(t, err)
		assert.False(t, res.LeaseWarning)
		_, err = f.leases.Get(ctx, testWorkspace, lease.ItemApproval, ap.ID)
		assert.ErrorIs(t, err, lease.ErrAbsent)
	})
}

func TestIncidentCloseGuards(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	inc, err := f.incidents.Open(ctx, owner, "db down", "critical", "", "")
	require.NoError(t, err)

	_, err = f.incidents.Close(ctx, owner, inc.ID)
	require.Error(t, err)
	assert.Equal(t, ReasonIncidentRCARequired, ReasonCode(err))

	_, err = f.incidents.UpdateRCA(ctx, owner, inc.ID, "connection pool exhausted")
	require.NoError(t, err)

	_, err = f.incidents.Close(ctx, owner, inc.ID)
	require.Error(t, err)
	assert.Equal(t, ReasonIncidentLearningRequired, ReasonCode(err))

	updated, err := f.incidents.LogLearning(ctx, owner, inc.ID, "cap pool per tenant")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.LearningCount)

	closed, err := f.incidents.Close(ctx, owner, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, "closed", string(closed.Status))
	assert.NotNil(t, closed.ClosedAt)

	_, err = f.incidents.UpdateRCA(ctx, owner, inc.ID, "late edit")
	require.Error(t, err)
	assert.Equal(t, ReasonIncidentClosed, ReasonCode(err))

	learnings, err := f.incidents.Learnings(ctx, testWorkspace, inc.ID)
	require.NoError(t, err)
	assert.Len(t, learnings, 1)
}

func TestToolCalls(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	tc, err := f.toolCalls.Start(ctx, owner, "kubectl", "", "")
	require.NoError(t, err)
	assert.Equal(t, "running", string(tc.Status))

	settled, err := f.toolCalls.Settle(ctx, owner, tc.ID, "failed", "timeout")
	require.NoError(t, err)
	assert.Equal(t, "failed", string(settled.Status))
	require.NotNil(t, settled.ErrorCode)
	assert.Equal(t, "timeout", *settled.ErrorCode)

	_, err = f.toolCalls.Settle(ctx, owner, tc.ID, "succeeded", "")
	require.Error(t, err)
	assert.Equal(t, ReasonInvalidRunTransition, ReasonCode(err))
}

func TestScorecards(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	t.Run("invalid metrics refused before append", func(t *testing.T) {
		_, err := f.scorecards.Record(ctx, owner, "eval", "", []models.ScoreMetric{
			{Key: "accuracy", Value: 1.5, Weight: 1},
		})
		require.Error(t, err)
		assert.Equal(t, ReasonInvalidMetrics, ReasonCode(err))
	})

	sc, err := f.scorecards.Record(ctx, owner, "eval", "", []models.ScoreMetric{
		{Key: "coverage", Value: 0.5, Weight: 1},
		{Key: "accuracy", Value: 0.9, Weight: 3},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, sc.Score, 1e-9)
	assert.Equal(t, "pass", string(sc.Decision))
	assert.NotEmpty(t, sc.MetricsHash)

	lesson, err := f.scorecards.RecordLesson(ctx, owner, "weight accuracy higher", "", sc.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "weight accuracy higher", lesson.Title)
}

func TestSkillObservations(t *testing.T) {
	f := newFixture(t, generousLimits())
	identity := f.registerAgent(t, "agent_a", "sec_a")
	ctx := context.Background()

	_, err := f.scorecards.RecordObservation(ctx, ownerIdentity(), "rollback", "success")
	require.Error(t, err)
	assert.Equal(t, ReasonUnknownAgent, ReasonCode(err))

	entry, err := f.scorecards.RecordObservation(ctx, identity, "rollback", "success")
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.Attempts)
	assert.InDelta(t, 1.0, entry.SurvivalScore, 1e-9)

	entry, err = f.scorecards.RecordObservation(ctx, identity, "rollback", "failure")
	require.NoError(t, err)
	assert.Equal(t, int64(2), entry.Attempts)
	assert.InDelta(t, 0.5, entry.SurvivalScore, 1e-9)
}

func TestArtifacts(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	r, err := f.runs.CreateRun(ctx, owner, "evidence run", "", "")
	require.NoError(t, err)

	art, err := f.artifacts.Create(ctx, owner, ArtifactInput{
		ObjectKey: "runs/evidence.tar.gz",
		MediaType: "application/gzip",
		SizeBytes: 1024,
		RunID:     r.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "runs/evidence.tar.gz", art.ObjectKey)

	manifest, err := f.artifacts.Manifest(ctx, testWorkspace, r.ID)
	require.NoError(t, err)
	assert.Contains(t, manifest.ArtifactIds, art.ID)
}
