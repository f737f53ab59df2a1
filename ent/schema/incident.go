package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for the incidents projection.
// Closing requires a recorded RCA and at least one learning entry; the
// write path enforces that before the incident.closed event is appended.
type Incident struct {
	ent.Schema
}

// Fields of the Incident.
func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("run_id").
			Optional().
			Nillable(),
		field.String("correlation_id").
			Optional(),
		field.String("title").
			Optional(),
		field.String("severity").
			Optional(),
		field.Enum("status").
			Values("open", "closed").
			Default("open"),
		field.Time("rca_updated_at").
			Optional().
			Nillable(),
		field.Int("learning_count").
			Default(0),
		field.Time("opened_at").
			Default(time.Now),
		field.Time("closed_at").
			Optional().
			Nillable(),
		field.String("last_event_id"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Incident.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("run_id"),
		index.Fields("correlation_id"),
	}
}

// Annotations of the Incident.
func (Incident) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_incidents"},
	}
}
