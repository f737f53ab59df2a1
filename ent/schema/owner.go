package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Owner holds the schema definition for workspace owners. Bootstrap creates
// at most one per workspace; the passphrase is stored as an encoded argon2id
// hash.
type Owner struct {
	ent.Schema
}

// Fields of the Owner.
func (Owner) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("owner_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Unique(),
		field.String("email"),
		field.String("principal_id"),
		field.String("passphrase_hash").
			Sensitive(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Owner.
func (Owner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "email"),
	}
}

// Annotations of the Owner.
func (Owner) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "owners"},
	}
}
