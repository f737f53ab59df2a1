package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/toolcall"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/projector"
)

// ToolCallService records tool invocation lifecycle events.
type ToolCallService struct {
	*recorder
}

// NewToolCallService creates the tool call act recorder.
func NewToolCallService(db *database.Client, store *eventlog.Store, reg *projector.Registry, logger *slog.Logger) *ToolCallService {
	return &ToolCallService{recorder: newRecorder(db, store, reg, logger)}
}

// Start appends tool.call.started.
func (s *ToolCallService) Start(ctx context.Context, identity auth.Identity, toolName, runID, stepID string) (*ent.ToolCall, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}
	if toolName == "" {
		return nil, Reason(ReasonMissingField, "tool_name is required").WithDetail("field", "tool_name")
	}

	toolCallID := ids.ToolCall()
	data, err := json.Marshal(map[string]any{
		"tool_call_id": toolCallID,
		"tool_name":    toolName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool call payload: %w", err)
	}

	if _, err := s.record(ctx, eventlog.Draft{
		EventType:        eventlog.TypeToolCallStarted,
		WorkspaceID:      identity.WorkspaceID,
		RunID:            runID,
		StepID:           stepID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		Data:             data,
	}); err != nil {
		return nil, err
	}

	row, err := s.db.ToolCall.Get(ctx, toolCallID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back tool call: %w", err)
	}
	return row, nil
}

// Settle appends tool.call.succeeded or tool.call.failed. A settled call
// refuses further results.
func (s *ToolCallService) Settle(ctx context.Context, identity auth.Identity, toolCallID, outcome, errorCode string) (*ent.ToolCall, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}

	row, err := s.db.ToolCall.Query().
		Where(toolcall.ID(toolCallID), toolcall.WorkspaceID(identity.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, Reason(ReasonNotFound, "tool call not found").WithDetail("tool_call_id", toolCallID)
		}
		return nil, fmt.Errorf("failed to load tool call: %w", err)
	}

	var eventType string
	switch outcome {
	case "succeeded":
		eventType = eventlog.TypeToolCallSucceeded
	case "failed":
		eventType = eventlog.TypeToolCallFailed
	default:
		return nil, Reason(ReasonMissingField, "outcome must be succeeded or failed").
			WithDetail("outcome", outcome)
	}
	if row.Status != toolcall.StatusRunning {
		return nil, Reason(ReasonInvalidRunTransition, "tool call is already settled").
			WithDetail("tool_call_id", toolCallID).
			WithDetail("status", string(row.Status))
	}

	payload := map[string]any{"tool_call_id": toolCallID}
	if eventType == eventlog.TypeToolCallFailed && errorCode != "" {
		payload["error"] = map[string]any{"code": errorCode}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool call result: %w", err)
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
	if row.RunID != nil {
		draft.RunID = *row.RunID
	}
	if row.StepID != nil {
		draft.StepID = *row.StepID
	}
	if _, err := s.record(ctx, draft); err != nil {
		return nil, err
	}

	updated, err := s.db.ToolCall.Get(ctx, toolCallID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back tool call: %w", err)
	}
	return updated, nil
}
