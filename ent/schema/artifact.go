package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the artifacts projection. The
// blob itself lives in external storage; we record the object key after a
// successful HEAD probe.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("run_id").
			Optional().
			Nillable(),
		field.String("object_key"),
		field.String("media_type").
			Optional(),
		field.Int64("size_bytes").
			Optional(),
		field.String("created_by_agent_id").
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

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("run_id"),
		index.Fields("object_key"),
	}
}

// Annotations of the Artifact.
func (Artifact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_artifacts"},
	}
}
