package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Principal holds the schema definition for authenticated identities.
// Owners, services, and agents all act through a principal; events record
// the acting principal alongside the legacy (actor_type, actor_id) pair.
type Principal struct {
	ent.Schema
}

// Fields of the Principal.
func (Principal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("principal_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.Enum("principal_type").
			Values("user", "service", "agent"),
		field.String("display_name").
			Optional(),
		field.String("legacy_actor_type").
			Optional().
			Nillable().
			Comment("Pre-principal actor mapping, kept for event continuity"),
		field.String("legacy_actor_id").
			Optional().
			Nillable(),
		field.String("api_key_hash").
			Optional().
			Nillable().
			Comment("SHA-256 of the bearer key; the raw key is never stored"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Principal.
func (Principal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("api_key_hash"),
		index.Fields("workspace_id", "legacy_actor_type", "legacy_actor_id").
			Unique(),
	}
}

// Annotations of the Principal.
func (Principal) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sec_principals"},
	}
}
