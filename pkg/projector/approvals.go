package projector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/approval"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// approvalProjector maintains proj_approvals. A decision (approved or
// rejected) is absorbing; later transition events for the same approval are
// dropped with a warning.
type approvalProjector struct {
	logger *slog.Logger
}

func (p *approvalProjector) Name() string { return "approvals" }

func (p *approvalProjector) Events() []string {
	return []string{
		eventlog.TypeApprovalRequested,
		eventlog.TypeApprovalHeld,
		eventlog.TypeApprovalApproved,
		eventlog.TypeApprovalRejected,
	}
}

func (p *approvalProjector) Apply(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var data struct {
		ApprovalID string `json:"approval_id"`
		Title      string `json:"title"`
		DecidedBy  string `json:"decided_by"`
	}
	if err := decodeData(env, &data); err != nil {
		return err
	}
	if data.ApprovalID == "" {
		return badPayloadf(env.EventType, "missing approval_id")
	}

	if env.EventType == eventlog.TypeApprovalRequested {
		create := tx.Approval.Create().
			SetID(data.ApprovalID).
			SetWorkspaceID(env.WorkspaceID).
			SetTitle(data.Title).
			SetStatus(approval.StatusPending).
			SetRequestedBy(env.ActorID).
			SetCorrelationID(env.CorrelationID).
			SetLastEventID(env.EventID).
			SetCreatedAt(env.RecordedAt).
			SetUpdatedAt(env.RecordedAt)
		if env.RoomID != "" {
			create = create.SetRoomID(env.RoomID)
		}
		if env.RunID != "" {
			create = create.SetRunID(env.RunID)
		}
		if err := create.
			OnConflictColumns(approval.FieldID).
			Ignore().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to upsert approval: %w", err)
		}
		return nil
	}

	row, err := tx.Approval.Query().
		Where(approval.ID(data.ApprovalID), approval.WorkspaceID(env.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return badPayloadf(env.EventType, "approval %s not projected", data.ApprovalID)
		}
		return fmt.Errorf("failed to load approval: %w", err)
	}
	if row.LastEventID == env.EventID {
		return nil
	}
	if row.Status == approval.StatusApproved || row.Status == approval.StatusRejected {
		p.logger.Warn("ignoring transition out of decided approval",
			slog.String("approval_id", data.ApprovalID),
			slog.String("status", string(row.Status)),
			slog.String("event_type", env.EventType))
		return nil
	}

	update := tx.Approval.UpdateOneID(data.ApprovalID).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt)
	switch env.EventType {
	case eventlog.TypeApprovalHeld:
		update = update.SetStatus(approval.StatusHeld)
	case eventlog.TypeApprovalApproved, eventlog.TypeApprovalRejected:
		status := approval.StatusApproved
		if env.EventType == eventlog.TypeApprovalRejected {
			status = approval.StatusRejected
		}
		decidedBy := data.DecidedBy
		if decidedBy == "" {
			decidedBy = env.ActorID
		}
		update = update.
			SetStatus(status).
			SetDecidedBy(decidedBy).
			SetDecidedAt(env.RecordedAt)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to transition approval: %w", err)
	}
	return nil
}
