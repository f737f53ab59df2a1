package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson holds the schema definition for the lessons projection.
type Lesson struct {
	ent.Schema
}

// Fields of the Lesson.
func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lesson_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("scorecard_id").
			Optional().
			Nillable(),
		field.String("incident_id").
			Optional().
			Nillable(),
		field.String("title"),
		field.Text("body").
			Optional(),
		field.String("last_event_id"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Lesson.
func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("incident_id"),
	}
}

// Annotations of the Lesson.
func (Lesson) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_lessons"},
	}
}
