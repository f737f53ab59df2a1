package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageByName(t *testing.T, board *PipelineBoard, name string) PipelineStage {
	t.Helper()
	for _, st := range board.Stages {
		if st.Stage == name {
			return st
		}
	}
	t.Fatalf("stage %s not on board", name)
	return PipelineStage{}
}

func entityIDs(stage PipelineStage) []string {
	ids := make([]string, 0, len(stage.Items))
	for _, item := range stage.Items {
		ids = append(ids, item.EntityID)
	}
	return ids
}

func TestPipelineTriage(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	r1, err := f.runs.CreateRun(ctx, owner, "queued run", "", "")
	require.NoError(t, err)

	r2, err := f.runs.CreateRun(ctx, owner, "succeeded run", "", "")
	require.NoError(t, err)
	_, err = f.runs.UpdateRunStatus(ctx, owner, r2.ID, "running", nil)
	require.NoError(t, err)
	_, err = f.runs.UpdateRunStatus(ctx, owner, r2.ID, "succeeded", nil)
	require.NoError(t, err)

	r3, err := f.runs.CreateRun(ctx, owner, "policy failure", "", "")
	require.NoError(t, err)
	_, err = f.runs.UpdateRunStatus(ctx, owner, r3.ID, "failed", &RunError{Code: "policy_denied"})
	require.NoError(t, err)

	r4, err := f.runs.CreateRun(ctx, owner, "transient failure", "", "")
	require.NoError(t, err)
	_, err = f.runs.UpdateRunStatus(ctx, owner, r4.ID, "failed", &RunError{Code: "transient_network"})
	require.NoError(t, err)

	board, err := f.pipeline.Board(ctx, testWorkspace, 0)
	require.NoError(t, err)
	require.Len(t, board.Stages, 6)

	assert.Empty(t, stageByName(t, board, StageInbox).Items)
	assert.Empty(t, stageByName(t, board, StagePromoted).Items)
	assert.Equal(t, []string{r1.ID}, entityIDs(stageByName(t, board, StageExecuteWorkspace)))
	assert.ElementsMatch(t, []string{r2.ID, r3.ID}, entityIDs(stageByName(t, board, StageReviewEvidence)))
	assert.Equal(t, []string{r4.ID}, entityIDs(stageByName(t, board, StageDemoted)))

	// r4 was updated last; the board watermark is its last event.
	r4Row, err := f.db.Run.Get(ctx, r4.ID)
	require.NoError(t, err)
	assert.Equal(t, r4Row.LastEventID, board.WatermarkEventID)
}

func TestPipelineIncidentTriage(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	// A failed run with a non-policy error triages to review once an open
	// incident links to it.
	r, err := f.runs.CreateRun(ctx, owner, "incident-linked failure", "", "")
	require.NoError(t, err)
	_, err = f.runs.UpdateRunStatus(ctx, owner, r.ID, "failed", &RunError{Code: "transient_network"})
	require.NoError(t, err)

	board, err := f.pipeline.Board(ctx, testWorkspace, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{r.ID}, entityIDs(stageByName(t, board, StageDemoted)))

	inc, err := f.incidents.Open(ctx, owner, "prod broke", "high", r.ID, "")
	require.NoError(t, err)

	board, err = f.pipeline.Board(ctx, testWorkspace, 0)
	require.NoError(t, err)
	review := stageByName(t, board, StageReviewEvidence)
	require.Equal(t, []string{r.ID}, entityIDs(review))
	assert.Equal(t, inc.ID, review.Items[0].IncidentID)
	assert.Empty(t, stageByName(t, board, StageDemoted).Items)
}

func TestPipelineApprovalsAndTruncation(t *testing.T) {
	f := newFixture(t, generousLimits())
	owner := ownerIdentity()
	ctx := context.Background()

	var approvalIDs []string
	for i := 0; i < 3; i++ {
		ap, err := f.approvals.Request(ctx, owner, "deploy", "", "")
		require.NoError(t, err)
		approvalIDs = append(approvalIDs, ap.ID)
	}

	board, err := f.pipeline.Board(ctx, testWorkspace, 2)
	require.NoError(t, err)
	pending := stageByName(t, board, StagePendingApproval)
	assert.Len(t, pending.Items, 2)
	assert.True(t, pending.Truncated)

	board, err = f.pipeline.Board(ctx, testWorkspace, 10)
	require.NoError(t, err)
	pending = stageByName(t, board, StagePendingApproval)
	assert.Len(t, pending.Items, 3)
	assert.False(t, pending.Truncated)
	assert.ElementsMatch(t, approvalIDs, entityIDs(pending))
}

func TestPipelineLimitBounds(t *testing.T) {
	f := newFixture(t, generousLimits())
	ctx := context.Background()

	_, err := f.pipeline.Board(ctx, testWorkspace, 501)
	require.Error(t, err)
	assert.Equal(t, ReasonMissingField, ReasonCode(err))

	_, err = f.pipeline.Board(ctx, testWorkspace, -1)
	require.Error(t, err)

	board, err := f.pipeline.Board(ctx, testWorkspace, 0)
	require.NoError(t, err)
	assert.Empty(t, board.WatermarkEventID)
}
