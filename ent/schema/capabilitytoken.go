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

// CapabilityToken holds the schema definition for capability grants.
// Root grants have no parent; delegated grants form a tree whose edges live
// in sec_capability_delegation_edges. Scopes only ever narrow down the tree.
type CapabilityToken struct {
	ent.Schema
}

// Fields of the CapabilityToken.
func (CapabilityToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("token_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("issued_to_principal_id"),
		field.String("granted_by_principal_id"),
		field.String("parent_token_id").
			Optional().
			Nillable(),
		field.JSON("scopes", models.ScopeSet{}),
		field.Time("valid_until").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the CapabilityToken.
func (CapabilityToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "issued_to_principal_id"),
		index.Fields("parent_token_id"),
	}
}

// Annotations of the CapabilityToken.
func (CapabilityToken) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sec_capability_tokens"},
	}
}
