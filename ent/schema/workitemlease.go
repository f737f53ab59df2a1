package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkItemLease holds the schema definition for work-item leases. One row
// per (workspace, type, item); acquire steals expired rows in place with a
// version bump rather than inserting history. Runs are never leased.
type WorkItemLease struct {
	ent.Schema
}

// Fields of the WorkItemLease.
func (WorkItemLease) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lease_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.Enum("work_item_type").
			Values("approval", "experiment", "incident"),
		field.String("work_item_id"),
		field.String("agent_id"),
		field.Time("expires_at"),
		field.Int("version").
			Default(1),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the WorkItemLease.
func (WorkItemLease) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "work_item_type", "work_item_id").
			Unique(),
		index.Fields("expires_at"),
		index.Fields("agent_id"),
	}
}

// Annotations of the WorkItemLease.
func (WorkItemLease) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "work_item_leases"},
	}
}
