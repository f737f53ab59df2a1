package projector

import (
	"context"
	"fmt"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/lesson"
	"github.com/missionloop/groundcontrol/ent/scorecard"
	"github.com/missionloop/groundcontrol/pkg/canonical"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/models"
)

// scorecardProjector maintains proj_scorecards and proj_lessons. The
// scorecard row carries the normalized metric list, its canonical hash, the
// weighted score, and the pass/warn/fail decision.
type scorecardProjector struct{}

func (p *scorecardProjector) Name() string { return "scorecards" }

func (p *scorecardProjector) Events() []string {
	return []string{
		eventlog.TypeScorecardRecorded,
		eventlog.TypeLessonRecorded,
	}
}

func (p *scorecardProjector) Apply(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	if env.EventType == eventlog.TypeLessonRecorded {
		return p.applyLesson(ctx, tx, env)
	}
	return p.applyScorecard(ctx, tx, env)
}

func (p *scorecardProjector) applyScorecard(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var data struct {
		ScorecardID string               `json:"scorecard_id"`
		Subject     string               `json:"subject"`
		Metrics     []models.ScoreMetric `json:"metrics"`
	}
	if err := decodeData(env, &data); err != nil {
		return err
	}
	if data.ScorecardID == "" {
		return badPayloadf(env.EventType, "missing scorecard_id")
	}

	metrics, err := models.NormalizeMetrics(data.Metrics)
	if err != nil {
		return badPayload(env.EventType, err)
	}
	metricsHash, err := canonical.PrefixedHash(metrics)
	if err != nil {
		return fmt.Errorf("failed to hash metrics: %w", err)
	}
	score := models.Score(metrics)

	create := tx.Scorecard.Create().
		SetID(data.ScorecardID).
		SetWorkspaceID(env.WorkspaceID).
		SetSubject(data.Subject).
		SetMetrics(metrics).
		SetMetricsHash(metricsHash).
		SetScore(score).
		SetDecision(scorecard.Decision(models.Decide(score))).
		SetCorrelationID(env.CorrelationID).
		SetLastEventID(env.EventID).
		SetCreatedAt(env.RecordedAt).
		SetUpdatedAt(env.RecordedAt)
	if env.RunID != "" {
		create = create.SetRunID(env.RunID)
	}
	if err := create.
		OnConflictColumns(scorecard.FieldID).
		Ignore().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert scorecard: %w", err)
	}
	return nil
}

func (p *scorecardProjector) applyLesson(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var data struct {
		LessonID    string `json:"lesson_id"`
		Title       string `json:"title"`
		Body        string `json:"body"`
		ScorecardID string `json:"scorecard_id"`
		IncidentID  string `json:"incident_id"`
	}
	if err := decodeData(env, &data); err != nil {
		return err
	}
	if data.LessonID == "" || data.Title == "" {
		return badPayloadf(env.EventType, "missing lesson_id or title")
	}

	create := tx.Lesson.Create().
		SetID(data.LessonID).
		SetWorkspaceID(env.WorkspaceID).
		SetTitle(data.Title).
		SetBody(data.Body).
		SetLastEventID(env.EventID).
		SetCreatedAt(env.RecordedAt).
		SetUpdatedAt(env.RecordedAt)
	if data.ScorecardID != "" {
		create = create.SetScorecardID(data.ScorecardID)
	}
	if data.IncidentID != "" {
		create = create.SetIncidentID(data.IncidentID)
	}
	if err := create.
		OnConflictColumns(lesson.FieldID).
		Ignore().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert lesson: %w", err)
	}
	return nil
}
