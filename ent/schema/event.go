package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the append-only event log.
// Rows are inserted by the event store inside the append transaction and are
// never updated or deleted. Payload columns use the plain json column type
// (not jsonb): the stored text is the canonical form the hash chain was
// computed over, and jsonb would rewrite it.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("event_type"),
		field.Int("event_version").
			Default(1),
		field.Time("occurred_at").
			Comment("Actor-supplied time, bounded by clock skew checks"),
		field.Time("recorded_at").
			Comment("Store-assigned commit time, part of the hashed envelope"),
		field.String("workspace_id"),
		field.String("mission_id").
			Optional().
			Nillable(),
		field.String("room_id").
			Optional().
			Nillable(),
		field.String("thread_id").
			Optional().
			Nillable(),
		field.String("run_id").
			Optional().
			Nillable(),
		field.String("step_id").
			Optional().
			Nillable(),
		field.Enum("actor_type").
			Values("user", "service", "agent"),
		field.String("actor_id"),
		field.String("actor_principal_id").
			Optional().
			Nillable(),
		field.Enum("zone").
			Values("sandbox", "supervised", "high_stakes").
			Default("sandbox"),
		field.Enum("stream_type").
			Values("workspace", "room", "thread"),
		field.String("stream_id"),
		field.Int64("stream_seq"),
		field.String("correlation_id"),
		field.String("causation_id").
			Optional().
			Nillable(),
		field.Enum("redaction_level").
			Values("none", "partial", "full").
			Default("none"),
		field.Bool("contains_secrets").
			Default(false),
		field.JSON("policy_context", json.RawMessage{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "json"}),
		field.JSON("model_context", json.RawMessage{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "json"}),
		field.JSON("display", json.RawMessage{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "json"}),
		field.JSON("data", json.RawMessage{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "json"}),
		field.String("idempotency_key").
			Optional().
			Nillable(),
		field.String("prev_event_hash").
			Optional().
			Nillable(),
		field.String("event_hash").
			Optional().
			Nillable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_type", "stream_id", "stream_seq").
			Unique(),
		// NULL keys are distinct, so unkeyed events never collide here.
		index.Fields("workspace_id", "event_type", "idempotency_key").
			Unique(),
		index.Fields("workspace_id", "event_type"),
		index.Fields("workspace_id", "recorded_at"),
		index.Fields("correlation_id"),
	}
}

// Annotations of the Event.
func (Event) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evt_events"},
	}
}
