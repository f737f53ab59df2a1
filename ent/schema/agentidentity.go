package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentIdentity maps a registered agent to its backing principal. Intake
// uses it to verify that from_agent_id belongs to the calling principal.
type AgentIdentity struct {
	ent.Schema
}

// Fields of the AgentIdentity.
func (AgentIdentity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("principal_id"),
		field.String("display_name").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the AgentIdentity.
func (AgentIdentity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("principal_id"),
	}
}

// Annotations of the AgentIdentity.
func (AgentIdentity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agents"},
	}
}
