package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeadLetter holds the schema definition for the reprojection queue. A
// projector failure deposits a row here; the maintenance worker re-folds
// the event later. The event log itself is never touched by either path.
type DeadLetter struct {
	ent.Schema
}

// Fields of the DeadLetter.
func (DeadLetter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dead_letter_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("event_id"),
		field.String("projector"),
		field.Text("error"),
		field.Int("attempts").
			Default(1),
		field.Time("created_at").
			Default(time.Now),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the DeadLetter.
func (DeadLetter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "projector").
			Unique(),
		index.Fields("resolved_at"),
	}
}

// Annotations of the DeadLetter.
func (DeadLetter) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_dead_letters"},
	}
}
