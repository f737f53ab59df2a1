package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/approval"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/projector"
)

// ApprovalService records approval requests and decisions.
type ApprovalService struct {
	*recorder
	leases *lease.Manager
}

// NewApprovalService creates the approval act recorder.
func NewApprovalService(db *database.Client, store *eventlog.Store, reg *projector.Registry, leases *lease.Manager, logger *slog.Logger) *ApprovalService {
	return &ApprovalService{recorder: newRecorder(db, store, reg, logger), leases: leases}
}

// Request appends approval.requested (status pending).
func (s *ApprovalService) Request(ctx context.Context, identity auth.Identity, title, roomID, runID string) (*ent.Approval, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}

	approvalID := ids.Approval()
	data, err := json.Marshal(map[string]any{
		"approval_id": approvalID,
		"title":       title,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode approval payload: %w", err)
	}

	draft := eventlog.Draft{
		EventType:        eventlog.TypeApprovalRequested,
		WorkspaceID:      identity.WorkspaceID,
		RoomID:           roomID,
		RunID:            runID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		Data:             data,
	}
	if roomID != "" {
		draft.StreamType = eventlog.StreamRoom
		draft.StreamID = roomID
	}
	if _, err := s.record(ctx, draft); err != nil {
		return nil, err
	}

	row, err := s.db.Approval.Get(ctx, approvalID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back approval: %w", err)
	}
	return row, nil
}

// DecisionResult reports a decision commit plus the missing-lease warning.
type DecisionResult struct {
	Approval     *ent.Approval
	LeaseWarning bool
}

// Decide appends approval.approved / approval.rejected / approval.held.
// Decisions are single-shot: a settled approval refuses further decisions.
// Agent deciders must hold the approval's lease; a missing lease row is
// tolerated with a warning, a lease held by another agent is refused.
func (s *ApprovalService) Decide(ctx context.Context, identity auth.Identity, approvalID, decision string) (*DecisionResult, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}

	var eventType string
	switch decision {
	case "approve":
		eventType = eventlog.TypeApprovalApproved
	case "reject":
		eventType = eventlog.TypeApprovalRejected
	case "hold":
		eventType = eventlog.TypeApprovalHeld
	default:
		return nil, Reason(ReasonMissingField, "decision must be approve, reject, or hold").
			WithDetail("decision", decision)
	}

	row, err := s.db.Approval.Query().
		Where(approval.ID(approvalID), approval.WorkspaceID(identity.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, Reason(ReasonNotFound, "approval not found").WithDetail("approval_id", approvalID)
		}
		return nil, fmt.Errorf("failed to load approval: %w", err)
	}
	if row.Status == approval.StatusApproved || row.Status == approval.StatusRejected {
		return nil, Reason(ReasonApprovalAlreadyDecided, "approval is already decided").
			WithDetail("approval_id", approvalID).
			WithDetail("status", string(row.Status))
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin decision transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	leaseWarning := false
	leaseHeld := false
	if identity.PrincipalType == auth.PrincipalAgent {
		_, err := s.leases.Verify(ctx, tx, identity.WorkspaceID, lease.ItemApproval, approvalID, actor.ID)
		switch {
		case err == nil:
			leaseHeld = true
		case errors.Is(err, lease.ErrAbsent):
			leaseWarning = true
		case errors.Is(err, lease.ErrHeldByOther), errors.Is(err, lease.ErrExpired):
			return nil, Reason(ReasonLeaseHeld, "approval lease is not held by the caller").
				WithDetail("approval_id", approvalID)
		case errors.Is(err, lease.ErrLockUnavailable):
			return nil, Reason(ReasonHeartbeatRateLimited, "approval lease is contended, retry").
				WithDetail("approval_id", approvalID)
		default:
			return nil, err
		}
	}

	data, err := json.Marshal(map[string]any{
		"approval_id": approvalID,
		"decided_by":  actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode decision payload: %w", err)
	}

	draft := eventlog.Draft{
		EventType:        eventType,
		WorkspaceID:      identity.WorkspaceID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		CorrelationID:    row.CorrelationID,
		Data:             data,
	}
	if row.RoomID != nil && *row.RoomID != "" {
		draft.RoomID = *row.RoomID
		draft.StreamType = eventlog.StreamRoom
		draft.StreamID = *row.RoomID
	}
	if row.RunID != nil {
		draft.RunID = *row.RunID
	}

	_, failures, err := s.recordIn(ctx, tx, draft)
	if err != nil {
		return nil, err
	}

	// A settled approval retires its lease with the same commit.
	if leaseHeld && eventType != eventlog.TypeApprovalHeld {
		if err := s.leases.Delete(ctx, tx, identity.WorkspaceID, lease.ItemApproval, approvalID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit decision: %w", err)
	}
	committed = true
	s.reg.Deposit(ctx, failures)

	updated, err := s.db.Approval.Get(ctx, approvalID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back approval: %w", err)
	}
	return &DecisionResult{Approval: updated, LeaseWarning: leaseWarning}, nil
}

// List returns the workspace's approvals, optionally filtered by status.
func (s *ApprovalService) List(ctx context.Context, workspaceID, status string, limit int) ([]*ent.Approval, error) {
	if limit <= 0 || limit > pipelineMaxLimit {
		limit = pipelineDefaultLimit
	}
	q := s.db.Approval.Query().Where(approval.WorkspaceID(workspaceID))
	if status != "" {
		q = q.Where(approval.StatusEQ(approval.Status(status)))
	}
	rows, err := q.
		Order(ent.Desc(approval.FieldUpdatedAt), ent.Asc(approval.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}
	return rows, nil
}
