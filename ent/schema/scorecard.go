package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/missionloop/groundcontrol/pkg/models"
)

// Scorecard holds the schema definition for the scorecards projection.
// metrics is stored key-sorted; metrics_hash is the sha256:-prefixed
// canonical hash of that sorted array.
type Scorecard struct {
	ent.Schema
}

// Fields of the Scorecard.
func (Scorecard) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scorecard_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("run_id").
			Optional().
			Nillable(),
		field.String("subject").
			Optional(),
		field.JSON("metrics", []models.ScoreMetric{}),
		field.String("metrics_hash"),
		field.Float("score"),
		field.Enum("decision").
			Values("pass", "warn", "fail"),
		field.String("correlation_id"),
		field.String("last_event_id"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Scorecard.
func (Scorecard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("run_id"),
	}
}

// Annotations of the Scorecard.
func (Scorecard) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_scorecards"},
	}
}
