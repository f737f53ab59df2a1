// Code generated by ent, DO NOT EDIT.

package ratelimitstreak

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ratelimitstreak type in the database.
	Label = "rate_limit_streak"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "streak_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldConsecutive429 holds the string denoting the consecutive_429 field in the database.
	FieldConsecutive429 = "consecutive_429"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the ratelimitstreak in the database.
	Table = "rate_limit_streaks"
)

// Columns holds all SQL columns for ratelimitstreak fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldAgentID,
	FieldScope,
	FieldConsecutive429,
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
	// DefaultConsecutive429 holds the default value on creation for the "consecutive_429" field.
	DefaultConsecutive429 int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the RateLimitStreak queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByConsecutive429 orders the results by the consecutive_429 field.
func ByConsecutive429(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutive429, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
