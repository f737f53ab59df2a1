package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreamHead holds the per-stream append cursor. The append transaction
// locks this row FOR UPDATE, which serializes appenders and hands out both
// the next dense sequence number and the chain tail in one read.
type StreamHead struct {
	ent.Schema
}

// Fields of the StreamHead.
func (StreamHead) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("head_id").
			Unique().
			Immutable(),
		field.Enum("stream_type").
			Values("workspace", "room", "thread"),
		field.String("stream_id"),
		field.Int64("last_seq").
			Default(0),
		field.String("last_event_hash").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the StreamHead.
func (StreamHead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_type", "stream_id").
			Unique(),
	}
}

// Annotations of the StreamHead.
func (StreamHead) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evt_stream_heads"},
	}
}
