package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/run"
	"github.com/missionloop/groundcontrol/ent/step"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/projector"
)

// RunError describes why a run or tool call failed.
type RunError struct {
	Code string `json:"code,omitempty"`
	Kind string `json:"kind,omitempty"`
}

// runTransitions is the allowed status graph: queued → running →
// {succeeded, failed}. Terminal states are absorbing.
var runTransitions = map[run.Status][]run.Status{
	run.StatusQueued:  {run.StatusRunning},
	run.StatusRunning: {run.StatusSucceeded, run.StatusFailed},
}

// RunService records run and step lifecycle events.
type RunService struct {
	*recorder
}

// NewRunService creates the run act recorder.
func NewRunService(db *database.Client, store *eventlog.Store, reg *projector.Registry, logger *slog.Logger) *RunService {
	return &RunService{recorder: newRecorder(db, store, reg, logger)}
}

// CreateRun appends run.created (status queued).
func (s *RunService) CreateRun(ctx context.Context, identity auth.Identity, title, roomID, correlationID string) (*ent.Run, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}

	runID := ids.Run()
	data, err := json.Marshal(map[string]any{"title": title})
	if err != nil {
		return nil, fmt.Errorf("failed to encode run payload: %w", err)
	}

	draft := eventlog.Draft{
		EventType:        eventlog.TypeRunCreated,
		WorkspaceID:      identity.WorkspaceID,
		RoomID:           roomID,
		RunID:            runID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		CorrelationID:    correlationID,
		Data:             data,
	}
	if roomID != "" {
		draft.StreamType = eventlog.StreamRoom
		draft.StreamID = roomID
	}
	if _, err := s.record(ctx, draft); err != nil {
		return nil, err
	}

	row, err := s.db.Run.Get(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back run: %w", err)
	}
	return row, nil
}

// UpdateRunStatus appends the transition event for a run, refusing moves the
// status graph does not allow.
func (s *RunService) UpdateRunStatus(ctx context.Context, identity auth.Identity, runID, status string, runErr *RunError) (*ent.Run, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}

	row, err := s.db.Run.Query().
		Where(run.ID(runID), run.WorkspaceID(identity.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, Reason(ReasonNotFound, "run not found").WithDetail("run_id", runID)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	var eventType string
	switch run.Status(status) {
	case run.StatusRunning:
		eventType = eventlog.TypeRunStarted
	case run.StatusSucceeded:
		eventType = eventlog.TypeRunSucceeded
	case run.StatusFailed:
		eventType = eventlog.TypeRunFailed
	default:
		return nil, Reason(ReasonMissingField, "status must be running, succeeded, or failed").
			WithDetail("status", status)
	}
	if !transitionAllowed(row.Status, run.Status(status)) {
		return nil, Reason(ReasonInvalidRunTransition, "run cannot move to the requested status").
			WithDetail("from", string(row.Status)).
			WithDetail("to", status)
	}

	var data json.RawMessage
	if run.Status(status) == run.StatusFailed {
		if runErr == nil {
			runErr = &RunError{}
		}
		data, err = json.Marshal(map[string]any{"error": runErr})
		if err != nil {
			return nil, fmt.Errorf("failed to encode run error: %w", err)
		}
	}

	draft := eventlog.Draft{
		EventType:        eventType,
		WorkspaceID:      identity.WorkspaceID,
		RunID:            runID,
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
	if _, err := s.record(ctx, draft); err != nil {
		return nil, err
	}

	updated, err := s.db.Run.Get(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back run: %w", err)
	}
	return updated, nil
}

func transitionAllowed(from, to run.Status) bool {
	for _, next := range runTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateStep appends step.started under a run.
func (s *RunService) CreateStep(ctx context.Context, identity auth.Identity, runID, name string) (*ent.Step, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}

	runRow, err := s.db.Run.Query().
		Where(run.ID(runID), run.WorkspaceID(identity.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, Reason(ReasonNotFound, "run not found").WithDetail("run_id", runID)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if runRow.Status != run.StatusQueued && runRow.Status != run.StatusRunning {
		return nil, Reason(ReasonInvalidRunTransition, "run is already settled").
			WithDetail("run_id", runID).
			WithDetail("status", string(runRow.Status))
	}

	stepID := ids.Step()
	data, err := json.Marshal(map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to encode step payload: %w", err)
	}

	if _, err := s.record(ctx, eventlog.Draft{
		EventType:        eventlog.TypeStepStarted,
		WorkspaceID:      identity.WorkspaceID,
		RunID:            runID,
		StepID:           stepID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		CorrelationID:    runRow.CorrelationID,
		Data:             data,
	}); err != nil {
		return nil, err
	}

	row, err := s.db.Step.Get(ctx, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back step: %w", err)
	}
	return row, nil
}

// SettleStep appends step.completed or step.failed.
func (s *RunService) SettleStep(ctx context.Context, identity auth.Identity, stepID, status string) (*ent.Step, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}

	row, err := s.db.Step.Query().
		Where(step.ID(stepID), step.WorkspaceID(identity.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, Reason(ReasonNotFound, "step not found").WithDetail("step_id", stepID)
		}
		return nil, fmt.Errorf("failed to load step: %w", err)
	}

	var eventType string
	switch status {
	case "completed":
		eventType = eventlog.TypeStepCompleted
	case "failed":
		eventType = eventlog.TypeStepFailed
	default:
		return nil, Reason(ReasonMissingField, "status must be completed or failed").
			WithDetail("status", status)
	}
	if row.Status != step.StatusRunning {
		return nil, Reason(ReasonInvalidRunTransition, "step is already settled").
			WithDetail("step_id", stepID).
			WithDetail("status", string(row.Status))
	}

	if _, err := s.record(ctx, eventlog.Draft{
		EventType:        eventType,
		WorkspaceID:      identity.WorkspaceID,
		RunID:            row.RunID,
		StepID:           stepID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		CorrelationID:    row.CorrelationID,
	}); err != nil {
		return nil, err
	}

	updated, err := s.db.Step.Get(ctx, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back step: %w", err)
	}
	return updated, nil
}

// GetRun returns a run with its steps.
func (s *RunService) GetRun(ctx context.Context, workspaceID, runID string) (*ent.Run, []*ent.Step, error) {
	row, err := s.db.Run.Query().
		Where(run.ID(runID), run.WorkspaceID(workspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, Reason(ReasonNotFound, "run not found").WithDetail("run_id", runID)
		}
		return nil, nil, fmt.Errorf("failed to load run: %w", err)
	}
	steps, err := s.db.Step.Query().
		Where(step.RunID(runID)).
		Order(ent.Asc(step.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load steps: %w", err)
	}
	return row, steps, nil
}

// ListRuns returns the workspace's runs, optionally filtered by status,
// newest first.
func (s *RunService) ListRuns(ctx context.Context, workspaceID, status string, limit int) ([]*ent.Run, error) {
	if limit <= 0 || limit > pipelineMaxLimit {
		limit = pipelineDefaultLimit
	}
	q := s.db.Run.Query().Where(run.WorkspaceID(workspaceID))
	if status != "" {
		q = q.Where(run.StatusEQ(run.Status(status)))
	}
	rows, err := q.
		Order(ent.Desc(run.FieldUpdatedAt), ent.Asc(run.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return rows, nil
}
