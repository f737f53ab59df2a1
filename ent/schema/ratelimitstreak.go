package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RateLimitStreak holds the schema definition for persisted consecutive-429
// counters. Incremented under row lock on every denial; reset to zero
// asynchronously after the caller's next successful commit.
type RateLimitStreak struct {
	ent.Schema
}

// Fields of the RateLimitStreak.
func (RateLimitStreak) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("streak_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("agent_id"),
		field.String("scope"),
		field.Int("consecutive_429").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RateLimitStreak.
func (RateLimitStreak) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "agent_id", "scope").
			Unique(),
	}
}

// Annotations of the RateLimitStreak.
func (RateLimitStreak) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "rate_limit_streaks"},
	}
}
