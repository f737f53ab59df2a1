package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuthSession holds the schema definition for owner login sessions. The
// refresh token is stored as a SHA-256 hex digest; refresh rotates the row.
type AuthSession struct {
	ent.Schema
}

// Fields of the AuthSession.
func (AuthSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("owner_id"),
		field.String("workspace_id"),
		field.String("refresh_token_hash").
			Sensitive(),
		field.Time("access_expires_at"),
		field.Time("refresh_expires_at"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the AuthSession.
func (AuthSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("refresh_token_hash"),
		index.Fields("owner_id"),
		index.Fields("refresh_expires_at"),
	}
}

// Annotations of the AuthSession.
func (AuthSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "auth_sessions"},
	}
}
