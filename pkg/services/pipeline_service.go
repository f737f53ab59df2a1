package services

import (
	"context"
	"fmt"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/approval"
	"github.com/missionloop/groundcontrol/ent/incident"
	"github.com/missionloop/groundcontrol/ent/predicate"
	"github.com/missionloop/groundcontrol/ent/run"
	"github.com/missionloop/groundcontrol/pkg/database"
)

// Pipeline stage names, in board order.
const (
	StageInbox            = "1_inbox"
	StagePendingApproval  = "2_pending_approval"
	StageExecuteWorkspace = "3_execute_workspace"
	StageReviewEvidence   = "4_review_evidence"
	StagePromoted         = "5_promoted"
	StageDemoted          = "6_demoted"
)

const (
	pipelineDefaultLimit = 200
	pipelineMaxLimit     = 500
)

// triageErrorCodes route a failed run to review rather than demoted.
var triageErrorCodes = []string{
	"policy_denied",
	"approval_required",
	"permission_denied",
	"external_write_kill_switch",
}

// PipelineItem is one board entry: an approval or a run, annotated with its
// open incident when one is linked.
type PipelineItem struct {
	EntityID    string    `json:"entity_id"`
	EntityType  string    `json:"entity_type"` // approval | run
	Status      string    `json:"status"`
	Title       string    `json:"title,omitempty"`
	RoomID      string    `json:"room_id,omitempty"`
	RunID       string    `json:"run_id,omitempty"`
	IncidentID  string    `json:"incident_id,omitempty"`
	ErrorCode   string    `json:"error_code,omitempty"`
	ErrorKind   string    `json:"error_kind,omitempty"`
	LastEventID string    `json:"last_event_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PipelineStage is one bucket of the board.
type PipelineStage struct {
	Stage     string         `json:"stage"`
	Items     []PipelineItem `json:"items"`
	Truncated bool           `json:"truncated"`
}

// PipelineBoard is the six-stage response of GET /v1/pipeline.
type PipelineBoard struct {
	Stages           []PipelineStage `json:"stages"`
	WatermarkEventID string          `json:"watermark_event_id,omitempty"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// PipelineService classifies a workspace's work into the six board stages.
type PipelineService struct {
	db *database.Client
}

// NewPipelineService creates the board reader.
func NewPipelineService(db *database.Client) *PipelineService {
	return &PipelineService{db: db}
}

// Board builds the pipeline view. Each populated stage fetches limit+1 rows
// to decide truncation; the watermark is the last_event_id of the most
// recently updated item on the board, ties broken by smallest entity id.
func (s *PipelineService) Board(ctx context.Context, workspaceID string, limit int) (*PipelineBoard, error) {
	if limit == 0 {
		limit = pipelineDefaultLimit
	}
	if limit < 1 || limit > pipelineMaxLimit {
		return nil, Reason(ReasonMissingField, "limit must be between 1 and 500").
			WithDetail("limit", limit)
	}

	incidents, err := s.openIncidents(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	approvals, err := s.pendingApprovals(ctx, workspaceID, limit)
	if err != nil {
		return nil, err
	}
	executing, err := s.runStage(ctx, StageExecuteWorkspace, workspaceID, limit, incidents,
		run.StatusIn(run.StatusQueued, run.StatusRunning))
	if err != nil {
		return nil, err
	}
	review, err := s.runStage(ctx, StageReviewEvidence, workspaceID, limit, incidents,
		run.Or(
			run.StatusEQ(run.StatusSucceeded),
			run.And(run.StatusEQ(run.StatusFailed), s.triagePredicate(incidents)),
		))
	if err != nil {
		return nil, err
	}
	demoted, err := s.runStage(ctx, StageDemoted, workspaceID, limit, incidents,
		run.And(run.StatusEQ(run.StatusFailed), run.Not(s.triagePredicate(incidents))))
	if err != nil {
		return nil, err
	}

	board := &PipelineBoard{
		Stages: []PipelineStage{
			{Stage: StageInbox, Items: []PipelineItem{}},
			approvals,
			executing,
			review,
			{Stage: StagePromoted, Items: []PipelineItem{}},
			demoted,
		},
		GeneratedAt: time.Now().UTC(),
	}
	board.WatermarkEventID = watermark(board.Stages)
	return board, nil
}

// openIncidentIndex maps run and correlation ids to their most recently
// opened live incident.
type openIncidentIndex struct {
	byRunID  map[string]string
	byCorrID map[string]string
}

func (s *PipelineService) openIncidents(ctx context.Context, workspaceID string) (*openIncidentIndex, error) {
	rows, err := s.db.Incident.Query().
		Where(
			incident.WorkspaceID(workspaceID),
			incident.StatusEQ(incident.StatusOpen),
		).
		Order(ent.Asc(incident.FieldOpenedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load open incidents: %w", err)
	}
	idx := &openIncidentIndex{
		byRunID:  make(map[string]string),
		byCorrID: make(map[string]string),
	}
	// Ascending order means the latest-opened incident wins the slot.
	for _, row := range rows {
		if row.RunID != nil && *row.RunID != "" {
			idx.byRunID[*row.RunID] = row.ID
		}
		if row.CorrelationID != "" {
			idx.byCorrID[row.CorrelationID] = row.ID
		}
	}
	return idx, nil
}

// triagePredicate is the SQL half of the triage rule: linked open incident,
// a policy-shaped error code, or error kind "policy".
func (s *PipelineService) triagePredicate(incidents *openIncidentIndex) predicate.Run {
	runIDs := make([]string, 0, len(incidents.byRunID))
	for id := range incidents.byRunID {
		runIDs = append(runIDs, id)
	}
	corrIDs := make([]string, 0, len(incidents.byCorrID))
	for id := range incidents.byCorrID {
		corrIDs = append(corrIDs, id)
	}
	preds := []predicate.Run{
		run.ErrorCodeIn(triageErrorCodes...),
		run.ErrorKindEQ("policy"),
	}
	if len(runIDs) > 0 {
		preds = append(preds, run.IDIn(runIDs...))
	}
	if len(corrIDs) > 0 {
		preds = append(preds, run.CorrelationIDIn(corrIDs...))
	}
	return run.Or(preds...)
}

func (s *PipelineService) pendingApprovals(ctx context.Context, workspaceID string, limit int) (PipelineStage, error) {
	rows, err := s.db.Approval.Query().
		Where(
			approval.WorkspaceID(workspaceID),
			approval.StatusIn(approval.StatusPending, approval.StatusHeld),
		).
		Order(ent.Desc(approval.FieldUpdatedAt), ent.Asc(approval.FieldID)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return PipelineStage{}, fmt.Errorf("failed to load pending approvals: %w", err)
	}

	stage := PipelineStage{Stage: StagePendingApproval, Items: []PipelineItem{}}
	stage.Truncated = len(rows) > limit
	if stage.Truncated {
		rows = rows[:limit]
	}
	for _, row := range rows {
		item := PipelineItem{
			EntityID:    row.ID,
			EntityType:  "approval",
			Status:      string(row.Status),
			Title:       row.Title,
			LastEventID: row.LastEventID,
			UpdatedAt:   row.UpdatedAt,
		}
		if row.RoomID != nil {
			item.RoomID = *row.RoomID
		}
		if row.RunID != nil {
			item.RunID = *row.RunID
		}
		stage.Items = append(stage.Items, item)
	}
	return stage, nil
}

func (s *PipelineService) runStage(
	ctx context.Context,
	name, workspaceID string,
	limit int,
	incidents *openIncidentIndex,
	pred predicate.Run,
) (PipelineStage, error) {
	rows, err := s.db.Run.Query().
		Where(run.WorkspaceID(workspaceID), pred).
		Order(ent.Desc(run.FieldUpdatedAt), ent.Asc(run.FieldID)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return PipelineStage{}, fmt.Errorf("failed to load runs: %w", err)
	}

	stage := PipelineStage{Stage: name, Items: []PipelineItem{}}
	stage.Truncated = len(rows) > limit
	if stage.Truncated {
		rows = rows[:limit]
	}
	for _, row := range rows {
		item := PipelineItem{
			EntityID:    row.ID,
			EntityType:  "run",
			Status:      string(row.Status),
			Title:       row.Title,
			LastEventID: row.LastEventID,
			UpdatedAt:   row.UpdatedAt,
		}
		if row.RoomID != nil {
			item.RoomID = *row.RoomID
		}
		if row.ErrorCode != nil {
			item.ErrorCode = *row.ErrorCode
		}
		if row.ErrorKind != nil {
			item.ErrorKind = *row.ErrorKind
		}
		if id, ok := incidents.byRunID[row.ID]; ok {
			item.IncidentID = id
		} else if id, ok := incidents.byCorrID[row.CorrelationID]; ok {
			item.IncidentID = id
		}
		stage.Items = append(stage.Items, item)
	}
	return stage, nil
}

// watermark picks the board's coherence point: the last_event_id of the item
// with the greatest updated_at across all populated stages, ties resolved by
// lexicographically smallest entity id.
func watermark(stages []PipelineStage) string {
	var best *PipelineItem
	for i := range stages {
		for j := range stages[i].Items {
			item := &stages[i].Items[j]
			switch {
			case best == nil,
				item.UpdatedAt.After(best.UpdatedAt),
				item.UpdatedAt.Equal(best.UpdatedAt) && item.EntityID < best.EntityID:
				best = item
			}
		}
	}
	if best == nil {
		return ""
	}
	return best.LastEventID
}
