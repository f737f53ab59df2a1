package projector

import (
	"context"
	"fmt"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/toolcall"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// toolCallProjector maintains proj_tool_calls.
type toolCallProjector struct{}

func (p *toolCallProjector) Name() string { return "tool_calls" }

func (p *toolCallProjector) Events() []string {
	return []string{
		eventlog.TypeToolCallStarted,
		eventlog.TypeToolCallSucceeded,
		eventlog.TypeToolCallFailed,
	}
}

func (p *toolCallProjector) Apply(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var data struct {
		ToolCallID string `json:"tool_call_id"`
		ToolName   string `json:"tool_name"`
		Error      struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := decodeData(env, &data); err != nil {
		return err
	}
	if data.ToolCallID == "" {
		return badPayloadf(env.EventType, "missing tool_call_id")
	}

	if env.EventType == eventlog.TypeToolCallStarted {
		create := tx.ToolCall.Create().
			SetID(data.ToolCallID).
			SetWorkspaceID(env.WorkspaceID).
			SetToolName(data.ToolName).
			SetStatus(toolcall.StatusRunning).
			SetStartedAt(env.RecordedAt).
			SetCorrelationID(env.CorrelationID).
			SetLastEventID(env.EventID).
			SetUpdatedAt(env.RecordedAt)
		if env.RunID != "" {
			create = create.SetRunID(env.RunID)
		}
		if env.StepID != "" {
			create = create.SetStepID(env.StepID)
		}
		if err := create.
			OnConflictColumns(toolcall.FieldID).
			Ignore().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to upsert tool call: %w", err)
		}
		return nil
	}

	row, err := tx.ToolCall.Query().
		Where(toolcall.ID(data.ToolCallID), toolcall.WorkspaceID(env.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return badPayloadf(env.EventType, "tool call %s not projected", data.ToolCallID)
		}
		return fmt.Errorf("failed to load tool call: %w", err)
	}
	if row.LastEventID == env.EventID || row.Status != toolcall.StatusRunning {
		return nil
	}

	status := toolcall.StatusSucceeded
	if env.EventType == eventlog.TypeToolCallFailed {
		status = toolcall.StatusFailed
	}
	update := tx.ToolCall.UpdateOneID(data.ToolCallID).
		SetStatus(status).
		SetFinishedAt(env.RecordedAt).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt)
	if status == toolcall.StatusFailed && data.Error.Code != "" {
		update = update.SetErrorCode(data.Error.Code)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to settle tool call: %w", err)
	}
	return nil
}
