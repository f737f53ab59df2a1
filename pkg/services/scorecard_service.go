package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/scorecard"
	"github.com/missionloop/groundcontrol/ent/skillentry"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/models"
	"github.com/missionloop/groundcontrol/pkg/projector"
)

// ScorecardService records scorecards, lessons, and skill observations —
// the ML-adjacent signals the platform stores but never computes.
type ScorecardService struct {
	*recorder
}

// NewScorecardService creates the scorecard act recorder.
func NewScorecardService(db *database.Client, store *eventlog.Store, reg *projector.Registry, logger *slog.Logger) *ScorecardService {
	return &ScorecardService{recorder: newRecorder(db, store, reg, logger)}
}

// Record validates the metric list and appends scorecard.recorded. The
// reducer derives the canonical hash, score, and decision.
func (s *ScorecardService) Record(ctx context.Context, identity auth.Identity, subject, runID string, metrics []models.ScoreMetric) (*ent.Scorecard, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}
	if _, err := models.NormalizeMetrics(metrics); err != nil {
		return nil, Reason(ReasonInvalidMetrics, err.Error())
	}

	scorecardID := ids.Scorecard()
	data, err := json.Marshal(map[string]any{
		"scorecard_id": scorecardID,
		"subject":      subject,
		"metrics":      metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode scorecard payload: %w", err)
	}

	if _, err := s.record(ctx, eventlog.Draft{
		EventType:        eventlog.TypeScorecardRecorded,
		WorkspaceID:      identity.WorkspaceID,
		RunID:            runID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		Data:             data,
	}); err != nil {
		return nil, err
	}

	row, err := s.db.Scorecard.Get(ctx, scorecardID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back scorecard: %w", err)
	}
	return row, nil
}

// RecordLesson appends lesson.recorded, optionally linked to a scorecard or
// incident.
func (s *ScorecardService) RecordLesson(ctx context.Context, identity auth.Identity, title, body, scorecardID, incidentID string) (*ent.Lesson, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, Reason(ReasonMissingField, "title is required").WithDetail("field", "title")
	}

	lessonID := ids.Lesson()
	data, err := json.Marshal(map[string]any{
		"lesson_id":    lessonID,
		"title":        title,
		"body":         body,
		"scorecard_id": scorecardID,
		"incident_id":  incidentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode lesson payload: %w", err)
	}

	if _, err := s.record(ctx, eventlog.Draft{
		EventType:        eventlog.TypeLessonRecorded,
		WorkspaceID:      identity.WorkspaceID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		Data:             data,
	}); err != nil {
		return nil, err
	}

	row, err := s.db.Lesson.Get(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back lesson: %w", err)
	}
	return row, nil
}

// RecordObservation appends skill.observation.recorded to the acting
// agent's survival ledger.
func (s *ScorecardService) RecordObservation(ctx context.Context, identity auth.Identity, skillName, outcome string) (*ent.SkillEntry, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}
	if identity.PrincipalType != auth.PrincipalAgent {
		return nil, Reason(ReasonUnknownAgent, "skill observations are agent acts only")
	}
	if skillName == "" {
		return nil, Reason(ReasonMissingField, "skill_name is required").WithDetail("field", "skill_name")
	}
	if outcome != "success" && outcome != "failure" {
		return nil, Reason(ReasonMissingField, "outcome must be success or failure").
			WithDetail("outcome", outcome)
	}

	data, err := json.Marshal(map[string]any{
		"skill_name": skillName,
		"outcome":    outcome,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode observation payload: %w", err)
	}

	if _, err := s.record(ctx, eventlog.Draft{
		EventType:        eventlog.TypeSkillObservationRecorded,
		WorkspaceID:      identity.WorkspaceID,
		ActorType:        eventlog.ActorAgent,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		Data:             data,
	}); err != nil {
		return nil, err
	}

	row, err := s.db.SkillEntry.Query().
		Where(
			skillentry.WorkspaceID(identity.WorkspaceID),
			skillentry.AgentID(actor.ID),
			skillentry.SkillName(skillName),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read back skill entry: %w", err)
	}
	return row, nil
}

// ListScorecards returns scorecards, optionally filtered by run.
func (s *ScorecardService) ListScorecards(ctx context.Context, workspaceID, runID string, limit int) ([]*ent.Scorecard, error) {
	if limit <= 0 || limit > pipelineMaxLimit {
		limit = pipelineDefaultLimit
	}
	q := s.db.Scorecard.Query().Where(scorecard.WorkspaceID(workspaceID))
	if runID != "" {
		q = q.Where(scorecard.RunID(runID))
	}
	rows, err := q.
		Order(ent.Desc(scorecard.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scorecards: %w", err)
	}
	return rows, nil
}

// ListSkills returns the survival ledger, optionally filtered by agent.
func (s *ScorecardService) ListSkills(ctx context.Context, workspaceID, agentID string) ([]*ent.SkillEntry, error) {
	q := s.db.SkillEntry.Query().Where(skillentry.WorkspaceID(workspaceID))
	if agentID != "" {
		q = q.Where(skillentry.AgentID(agentID))
	}
	rows, err := q.
		Order(ent.Desc(skillentry.FieldSurvivalScore), ent.Asc(skillentry.FieldSkillName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill entries: %w", err)
	}
	return rows, nil
}
