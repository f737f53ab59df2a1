package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IncidentLearning holds the schema definition for incident learning
// entries. proj_incidents.learning_count mirrors the row count per incident.
type IncidentLearning struct {
	ent.Schema
}

// Fields of the IncidentLearning.
func (IncidentLearning) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("incident_id"),
		field.Text("summary"),
		field.String("logged_by").
			Optional(),
		field.String("last_event_id"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the IncidentLearning.
func (IncidentLearning) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id"),
		index.Fields("workspace_id"),
	}
}

// Annotations of the IncidentLearning.
func (IncidentLearning) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_incident_learning"},
	}
}
