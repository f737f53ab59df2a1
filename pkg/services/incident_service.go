package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/incident"
	"github.com/missionloop/groundcontrol/ent/incidentlearning"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/projector"
)

// IncidentService records the incident lifecycle. Closing is gated on a
// recorded RCA and at least one logged learning.
type IncidentService struct {
	*recorder
}

// NewIncidentService creates the incident act recorder.
func NewIncidentService(db *database.Client, store *eventlog.Store, reg *projector.Registry, logger *slog.Logger) *IncidentService {
	return &IncidentService{recorder: newRecorder(db, store, reg, logger)}
}

// Open appends incident.opened.
func (s *IncidentService) Open(ctx context.Context, identity auth.Identity, title, severity, runID, correlationID string) (*ent.Incident, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, Reason(ReasonMissingField, "title is required").WithDetail("field", "title")
	}

	incidentID := ids.Incident()
	data, err := json.Marshal(map[string]any{
		"incident_id": incidentID,
		"title":       title,
		"severity":    severity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode incident payload: %w", err)
	}

	if _, err := s.record(ctx, eventlog.Draft{
		EventType:        eventlog.TypeIncidentOpened,
		WorkspaceID:      identity.WorkspaceID,
		RunID:            runID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		CorrelationID:    correlationID,
		Data:             data,
	}); err != nil {
		return nil, err
	}

	row, err := s.db.Incident.Get(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back incident: %w", err)
	}
	return row, nil
}

// UpdateRCA appends incident.rca.updated, stamping rca_updated_at.
func (s *IncidentService) UpdateRCA(ctx context.Context, identity auth.Identity, incidentID, summary string) (*ent.Incident, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}
	row, err := s.openIncident(ctx, identity.WorkspaceID, incidentID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(map[string]any{
		"incident_id": incidentID,
		"summary":     summary,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode rca payload: %w", err)
	}

	if _, err := s.record(ctx, s.incidentDraft(eventlog.TypeIncidentRCAUpdated, identity, actor, row, data)); err != nil {
		return nil, err
	}

	updated, err := s.db.Incident.Get(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back incident: %w", err)
	}
	return updated, nil
}

// LogLearning appends incident.learning.logged, bumping learning_count.
func (s *IncidentService) LogLearning(ctx context.Context, identity auth.Identity, incidentID, summary string) (*ent.Incident, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}
	if summary == "" {
		return nil, Reason(ReasonMissingField, "summary is required").WithDetail("field", "summary")
	}
	row, err := s.openIncident(ctx, identity.WorkspaceID, incidentID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(map[string]any{
		"incident_id": incidentID,
		"summary":     summary,
		"logged_by":   actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode learning payload: %w", err)
	}

	if _, err := s.record(ctx, s.incidentDraft(eventlog.TypeIncidentLearningLogged, identity, actor, row, data)); err != nil {
		return nil, err
	}

	updated, err := s.db.Incident.Get(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back incident: %w", err)
	}
	return updated, nil
}

// Close appends incident.closed. The incident must carry an RCA and at
// least one learning before it may close.
func (s *IncidentService) Close(ctx context.Context, identity auth.Identity, incidentID string) (*ent.Incident, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}
	row, err := s.openIncident(ctx, identity.WorkspaceID, incidentID)
	if err != nil {
		return nil, err
	}
	if row.RcaUpdatedAt == nil {
		return nil, Reason(ReasonIncidentRCARequired, "incident has no recorded RCA").
			WithDetail("incident_id", incidentID)
	}
	if row.LearningCount < 1 {
		return nil, Reason(ReasonIncidentLearningRequired, "incident has no logged learning").
			WithDetail("incident_id", incidentID)
	}

	data, err := json.Marshal(map[string]any{"incident_id": incidentID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode close payload: %w", err)
	}

	if _, err := s.record(ctx, s.incidentDraft(eventlog.TypeIncidentClosed, identity, actor, row, data)); err != nil {
		return nil, err
	}

	updated, err := s.db.Incident.Get(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back incident: %w", err)
	}
	return updated, nil
}

// List returns the workspace's incidents, optionally filtered by status.
func (s *IncidentService) List(ctx context.Context, workspaceID, status string, limit int) ([]*ent.Incident, error) {
	if limit <= 0 || limit > pipelineMaxLimit {
		limit = pipelineDefaultLimit
	}
	q := s.db.Incident.Query().Where(incident.WorkspaceID(workspaceID))
	if status != "" {
		q = q.Where(incident.StatusEQ(incident.Status(status)))
	}
	rows, err := q.
		Order(ent.Desc(incident.FieldUpdatedAt), ent.Asc(incident.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return rows, nil
}

// Learnings returns an incident's logged learnings, oldest first.
func (s *IncidentService) Learnings(ctx context.Context, workspaceID, incidentID string) ([]*ent.IncidentLearning, error) {
	rows, err := s.db.IncidentLearning.Query().
		Where(
			incidentlearning.WorkspaceID(workspaceID),
			incidentlearning.IncidentID(incidentID),
		).
		Order(ent.Asc(incidentlearning.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list learnings: %w", err)
	}
	return rows, nil
}

func (s *IncidentService) openIncident(ctx context.Context, workspaceID, incidentID string) (*ent.Incident, error) {
	row, err := s.db.Incident.Query().
		Where(incident.ID(incidentID), incident.WorkspaceID(workspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, Reason(ReasonNotFound, "incident not found").WithDetail("incident_id", incidentID)
		}
		return nil, fmt.Errorf("failed to load incident: %w", err)
	}
	if row.Status == incident.StatusClosed {
		return nil, Reason(ReasonIncidentClosed, "incident is closed").WithDetail("incident_id", incidentID)
	}
	return row, nil
}

func (s *IncidentService) incidentDraft(eventType string, identity auth.Identity, actor Actor, row *ent.Incident, data json.RawMessage) eventlog.Draft {
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
	return draft
}
