package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the runs projection. succeeded and
// failed are absorbing states; the reducer drops transitions out of them.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("mission_id").
			Optional().
			Nillable(),
		field.String("room_id").
			Optional().
			Nillable(),
		field.String("title").
			Optional(),
		field.Enum("status").
			Values("queued", "running", "succeeded", "failed").
			Default("queued"),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.String("correlation_id"),
		field.String("last_event_id"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("workspace_id", "updated_at"),
		index.Fields("correlation_id"),
	}
}

// Annotations of the Run.
func (Run) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_runs"},
	}
}
