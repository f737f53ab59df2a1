package projector

import (
	"context"
	"fmt"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/skillentry"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
)

// skillProjector maintains proj_skills_ledger: per (agent, skill) attempt
// and success counters with a derived survival score.
type skillProjector struct{}

func (p *skillProjector) Name() string { return "skills_ledger" }

func (p *skillProjector) Events() []string {
	return []string{eventlog.TypeSkillObservationRecorded}
}

func (p *skillProjector) Apply(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	var data struct {
		SkillName string `json:"skill_name"`
		Outcome   string `json:"outcome"`
	}
	if err := decodeData(env, &data); err != nil {
		return err
	}
	if data.SkillName == "" {
		return badPayloadf(env.EventType, "missing skill_name")
	}
	if data.Outcome != "success" && data.Outcome != "failure" {
		return badPayloadf(env.EventType, "outcome %q is not success or failure", data.Outcome)
	}

	row, err := tx.SkillEntry.Query().
		Where(
			skillentry.WorkspaceID(env.WorkspaceID),
			skillentry.AgentID(env.ActorID),
			skillentry.SkillName(data.SkillName),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load skill entry: %w", err)
	}

	attempts := int64(1)
	successes := int64(0)
	if data.Outcome == "success" {
		successes = 1
	}

	if row == nil {
		if err := tx.SkillEntry.Create().
			SetID(ids.SkillEntry()).
			SetWorkspaceID(env.WorkspaceID).
			SetAgentID(env.ActorID).
			SetSkillName(data.SkillName).
			SetAttempts(attempts).
			SetSuccesses(successes).
			SetSurvivalScore(float64(successes) / float64(attempts)).
			SetLastEventID(env.EventID).
			SetUpdatedAt(env.RecordedAt).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create skill entry: %w", err)
		}
		return nil
	}

	if row.LastEventID == env.EventID {
		return nil
	}
	attempts += row.Attempts
	successes += row.Successes
	if err := tx.SkillEntry.UpdateOneID(row.ID).
		SetAttempts(attempts).
		SetSuccesses(successes).
		SetSurvivalScore(float64(successes) / float64(attempts)).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update skill entry: %w", err)
	}
	return nil
}
