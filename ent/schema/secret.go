package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Secret holds the schema definition for envelope-encrypted secrets.
// Plaintext never touches this table; the GCM auth tag rides inside
// ciphertext as Go's AEAD seal emits it.
type Secret struct {
	ent.Schema
}

// Fields of the Secret.
func (Secret) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("secret_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("secret_name"),
		field.String("algorithm").
			Default("aes-256-gcm"),
		field.Bytes("ciphertext"),
		field.Bytes("nonce"),
		field.String("created_by_principal_id"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("last_accessed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Secret.
func (Secret) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "secret_name").
			Unique(),
	}
}

// Annotations of the Secret.
func (Secret) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sec_secrets"},
	}
}
