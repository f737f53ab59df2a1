package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DelegationEdge holds the schema definition for capability delegation
// lineage. depth counts hops from the root token (root grant = depth 0,
// first delegation = 1); the grant path rejects depth above three.
type DelegationEdge struct {
	ent.Schema
}

// Fields of the DelegationEdge.
func (DelegationEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("edge_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("parent_token_id"),
		field.String("child_token_id"),
		field.String("issued_to_principal_id"),
		field.String("granted_by_principal_id"),
		field.Int("depth"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the DelegationEdge.
func (DelegationEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_token_id").
			Unique(),
		index.Fields("parent_token_id"),
		index.Fields("workspace_id"),
	}
}

// Annotations of the DelegationEdge.
func (DelegationEdge) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sec_capability_delegation_edges"},
	}
}
