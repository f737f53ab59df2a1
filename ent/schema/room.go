package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Room holds the schema definition for the rooms projection. Like every
// proj_* table it is derived state: rebuildable from evt_events at any time.
type Room struct {
	ent.Schema
}

// Fields of the Room.
func (Room) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("room_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("title").
			Optional(),
		field.Int64("message_count").
			Default(0),
		field.String("correlation_id").
			Optional(),
		field.String("last_event_id"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Room.
func (Room) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
	}
}

// Annotations of the Room.
func (Room) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proj_rooms"},
	}
}
