package projector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/run"
	"github.com/missionloop/groundcontrol/ent/step"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// runProjector maintains proj_runs and proj_steps. Terminal run states are
// absorbing: events arriving after succeeded/failed are logged and dropped,
// which makes replays harmless.
type runProjector struct {
	logger *slog.Logger
}

func (p *runProjector) Name() string { return "runs" }

func (p *runProjector) Events() []string {
	return []string{
		eventlog.TypeRunCreated,
		eventlog.TypeRunStarted,
		eventlog.TypeRunSucceeded,
		eventlog.TypeRunFailed,
		eventlog.TypeStepStarted,
		eventlog.TypeStepCompleted,
		eventlog.TypeStepFailed,
	}
}

// runError is the error document carried on run.failed events.
type runError struct {
	Code string `json:"code"`
	Kind string `json:"kind"`
}

func (p *runProjector) Apply(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	switch env.EventType {
	case eventlog.TypeRunCreated:
		return p.applyRunCreated(ctx, tx, env)
	case eventlog.TypeRunStarted:
		return p.transitionRun(ctx, tx, env, run.StatusRunning, nil)
	case eventlog.TypeRunSucceeded:
		return p.transitionRun(ctx, tx, env, run.StatusSucceeded, nil)
	case eventlog.TypeRunFailed:
		var data struct {
			Error runError `json:"error"`
		}
		if err := decodeData(env, &data); err != nil {
			return err
		}
		return p.transitionRun(ctx, tx, env, run.StatusFailed, &data.Error)
	case eventlog.TypeStepStarted:
		return p.applyStepStarted(ctx, tx, env)
	case eventlog.TypeStepCompleted:
		return p.transitionStep(ctx, tx, env, step.StatusCompleted)
	case eventlog.TypeStepFailed:
		return p.transitionStep(ctx, tx, env, step.StatusFailed)
	}
	return nil
}

func (p *runProjector) applyRunCreated(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	if env.RunID == "" {
		return badPayloadf(env.EventType, "missing run_id")
	}
	var data struct {
		Title string `json:"title"`
	}
	if len(env.Data) > 0 {
		_ = decodeData(env, &data)
	}
	create := tx.Run.Create().
		SetID(env.RunID).
		SetWorkspaceID(env.WorkspaceID).
		SetTitle(data.Title).
		SetStatus(run.StatusQueued).
		SetCorrelationID(env.CorrelationID).
		SetLastEventID(env.EventID).
		SetCreatedAt(env.RecordedAt).
		SetUpdatedAt(env.RecordedAt)
	if env.MissionID != "" {
		create = create.SetMissionID(env.MissionID)
	}
	if env.RoomID != "" {
		create = create.SetRoomID(env.RoomID)
	}
	if err := create.
		OnConflictColumns(run.FieldID).
		Ignore().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert run: %w", err)
	}
	return nil
}

func (p *runProjector) transitionRun(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope, to run.Status, runErr *runError) error {
	if env.RunID == "" {
		return badPayloadf(env.EventType, "missing run_id")
	}
	row, err := tx.Run.Query().
		Where(run.ID(env.RunID), run.WorkspaceID(env.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return badPayloadf(env.EventType, "run %s not projected", env.RunID)
		}
		return fmt.Errorf("failed to load run: %w", err)
	}
	if row.LastEventID == env.EventID {
		return nil
	}
	if row.Status == run.StatusSucceeded || row.Status == run.StatusFailed {
		p.logger.Warn("ignoring transition out of terminal run state",
			slog.String("run_id", env.RunID),
			slog.String("status", string(row.Status)),
			slog.String("event_type", env.EventType))
		return nil
	}

	update := tx.Run.UpdateOneID(env.RunID).
		SetStatus(to).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt)
	switch to {
	case run.StatusRunning:
		update = update.SetStartedAt(env.RecordedAt)
	case run.StatusSucceeded:
		update = update.SetFinishedAt(env.RecordedAt)
	case run.StatusFailed:
		update = update.SetFinishedAt(env.RecordedAt)
		if runErr != nil {
			if runErr.Code != "" {
				update = update.SetErrorCode(runErr.Code)
			}
			if runErr.Kind != "" {
				update = update.SetErrorKind(runErr.Kind)
			}
		}
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to transition run: %w", err)
	}
	return nil
}

func (p *runProjector) applyStepStarted(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	if env.StepID == "" || env.RunID == "" {
		return badPayloadf(env.EventType, "missing step_id or run_id")
	}
	var data struct {
		Name string `json:"name"`
	}
	if len(env.Data) > 0 {
		_ = decodeData(env, &data)
	}
	if err := tx.Step.Create().
		SetID(env.StepID).
		SetWorkspaceID(env.WorkspaceID).
		SetRunID(env.RunID).
		SetName(data.Name).
		SetStatus(step.StatusRunning).
		SetCorrelationID(env.CorrelationID).
		SetLastEventID(env.EventID).
		SetCreatedAt(env.RecordedAt).
		SetUpdatedAt(env.RecordedAt).
		OnConflictColumns(step.FieldID).
		Ignore().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert step: %w", err)
	}
	return nil
}

func (p *runProjector) transitionStep(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope, to step.Status) error {
	if env.StepID == "" {
		return badPayloadf(env.EventType, "missing step_id")
	}
	row, err := tx.Step.Query().
		Where(step.ID(env.StepID), step.WorkspaceID(env.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return badPayloadf(env.EventType, "step %s not projected", env.StepID)
		}
		return fmt.Errorf("failed to load step: %w", err)
	}
	if row.LastEventID == env.EventID || row.Status != step.StatusRunning {
		return nil
	}
	if err := tx.Step.UpdateOneID(env.StepID).
		SetStatus(to).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to transition step: %w", err)
	}
	return nil
}
