package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillEntry holds the schema definition for the skills ledger projection:
// per (agent, skill) survival stats folded from observation events.
type SkillEntry struct {
	ent.Schema
}

// Fields of the SkillEntry.
func (SkillEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("agent_id"),
		field.String("skill_name"),
		field.Int64("attempts").
			Default(0),
		field.Int64("successes").
			Default(0),
		field.Float("survival_score").
			Default(0),
		field.String("last_event_id"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SkillEntry.
func (SkillEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "agent_id", "skill_name").
			Unique(),
	}
}

// Annotations of the SkillEntry.
func (SkillEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_skills_ledger"},
	}
}
