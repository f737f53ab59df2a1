// Code generated by ent, DO NOT EDIT.

package workitemlease

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the workitemlease type in the database.
	Label = "work_item_lease"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lease_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldWorkItemType holds the string denoting the work_item_type field in the database.
	FieldWorkItemType = "work_item_type"
	// FieldWorkItemID holds the string denoting the work_item_id field in the database.
	FieldWorkItemID = "work_item_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the workitemlease in the database.
	Table = "work_item_leases"
)

// Columns holds all SQL columns for workitemlease fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldWorkItemType,
	FieldWorkItemID,
	FieldAgentID,
	FieldExpiresAt,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// WorkItemType defines the type for the "work_item_type" enum field.
type WorkItemType string

// WorkItemType values.
const (
	WorkItemTypeApproval   WorkItemType = "approval"
	WorkItemTypeExperiment WorkItemType = "experiment"
	WorkItemTypeIncident   WorkItemType = "incident"
)

func (wit WorkItemType) String() string {
	return string(wit)
}

// WorkItemTypeValidator is a validator for the "work_item_type" field enum values. It is called by the builders before save.
func WorkItemTypeValidator(wit WorkItemType) error {
	switch wit {
	case WorkItemTypeApproval, WorkItemTypeExperiment, WorkItemTypeIncident:
		return nil
	default:
		return fmt.Errorf("workitemlease: invalid enum value for work_item_type field: %q", wit)
	}
}

// OrderOption defines the ordering options for the WorkItemLease queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByWorkItemType orders the results by the work_item_type field.
func ByWorkItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkItemType, opts...).ToFunc()
}

// ByWorkItemID orders the results by the work_item_id field.
func ByWorkItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkItemID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
