package projector

import (
	"context"
	"fmt"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/incident"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
)

// incidentProjector maintains proj_incidents and the per-incident learning
// ledger. The close guard (RCA + at least one learning) is enforced on the
// write side; by the time incident.closed reaches this reducer it is law.
type incidentProjector struct{}

func (p *incidentProjector) Name() string { return "incidents" }

func (p *incidentProjector) Events() []string {
	return []string{
		eventlog.TypeIncidentOpened,
		eventlog.TypeIncidentRCAUpdated,
		eventlog.TypeIncidentLearningLogged,
		eventlog.TypeIncidentClosed,
	}
}

// incidentRef extracts the incident id all four payloads carry.
type incidentRef struct {
	IncidentID string `json:"incident_id"`
}

func (p *incidentProjector) Apply(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	switch env.EventType {
	case eventlog.TypeIncidentOpened:
		return p.applyOpened(ctx, tx, env)
	case eventlog.TypeIncidentRCAUpdated:
		return p.applyRCAUpdated(ctx, tx, env)
	case eventlog.TypeIncidentLearningLogged:
		return p.applyLearningLogged(ctx, tx, env)
	case eventlog.TypeIncidentClosed:
		return p.applyClosed(ctx, tx, env)
	}
	return nil
}

func (p *incidentProjector) applyOpened(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var data struct {
		IncidentID string `json:"incident_id"`
		Title      string `json:"title"`
		Severity   string `json:"severity"`
	}
	if err := decodeData(env, &data); err != nil {
		return err
	}
	if data.IncidentID == "" {
		return badPayloadf(env.EventType, "missing incident_id")
	}
	create := tx.Incident.Create().
		SetID(data.IncidentID).
		SetWorkspaceID(env.WorkspaceID).
		SetTitle(data.Title).
		SetSeverity(data.Severity).
		SetStatus(incident.StatusOpen).
		SetCorrelationID(env.CorrelationID).
		SetOpenedAt(env.RecordedAt).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt)
	if env.RunID != "" {
		create = create.SetRunID(env.RunID)
	}
	if err := create.
		OnConflictColumns(incident.FieldID).
		Ignore().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert incident: %w", err)
	}
	return nil
}

func (p *incidentProjector) load(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope, incidentID string) (*ent.Incident, error) {
	row, err := tx.Incident.Query().
		Where(incident.ID(incidentID), incident.WorkspaceID(env.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, badPayloadf(env.EventType, "incident %s not projected", incidentID)
		}
		return nil, fmt.Errorf("failed to load incident: %w", err)
	}
	return row, nil
}

func (p *incidentProjector) applyRCAUpdated(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var ref incidentRef
	if err := decodeData(env, &ref); err != nil {
		return err
	}
	row, err := p.load(ctx, tx, env, ref.IncidentID)
	if err != nil {
		return err
	}
	if row.LastEventID == env.EventID {
		return nil
	}
	if err := tx.Incident.UpdateOneID(ref.IncidentID).
		SetRcaUpdatedAt(env.RecordedAt).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to stamp rca update: %w", err)
	}
	return nil
}

func (p *incidentProjector) applyLearningLogged(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var data struct {
		IncidentID string `json:"incident_id"`
		Summary    string `json:"summary"`
		LoggedBy   string `json:"logged_by"`
	}
	if err := decodeData(env, &data); err != nil {
		return err
	}
	row, err := p.load(ctx, tx, env, data.IncidentID)
	if err != nil {
		return err
	}
	if row.LastEventID == env.EventID {
		return nil
	}
	if data.LoggedBy == "" {
		data.LoggedBy = env.ActorID
	}
	if err := tx.IncidentLearning.Create().
		SetID(ids.Lesson()).
		SetWorkspaceID(env.WorkspaceID).
		SetIncidentID(data.IncidentID).
		SetSummary(data.Summary).
		SetLoggedBy(data.LoggedBy).
		SetLastEventID(env.EventID).
		SetCreatedAt(env.RecordedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record learning: %w", err)
	}
	if err := tx.Incident.UpdateOneID(data.IncidentID).
		AddLearningCount(1).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to bump learning count: %w", err)
	}
	return nil
}

func (p *incidentProjector) applyClosed(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var ref incidentRef
	if err := decodeData(env, &ref); err != nil {
		return err
	}
	row, err := p.load(ctx, tx, env, ref.IncidentID)
	if err != nil {
		return err
	}
	if row.LastEventID == env.EventID || row.Status == incident.StatusClosed {
		return nil
	}
	if err := tx.Incident.UpdateOneID(ref.IncidentID).
		SetStatus(incident.StatusClosed).
		SetClosedAt(env.RecordedAt).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to close incident: %w", err)
	}
	return nil
}
