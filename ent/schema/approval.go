package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Approval holds the schema definition for the approvals projection.
// approved and rejected are absorbing; the reducer ignores later decisions
// and the write path rejects them with a conflict.
type Approval struct {
	ent.Schema
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("room_id").
			Optional().
			Nillable(),
		field.String("run_id").
			Optional().
			Nillable(),
		field.String("title").
			Optional(),
		field.Enum("status").
			Values("pending", "held", "approved", "rejected").
			Default("pending"),
		field.String("requested_by"),
		field.String("decided_by").
			Optional().
			Nillable(),
		field.Time("decided_at").
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

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("run_id"),
	}
}

// Annotations of the Approval.
func (Approval) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_approvals"},
	}
}
