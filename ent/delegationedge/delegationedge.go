// Code generated by ent, DO NOT EDIT.

package delegationedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the delegationedge type in the database.
	Label = "delegation_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "edge_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldParentTokenID holds the string denoting the parent_token_id field in the database.
	FieldParentTokenID = "parent_token_id"
	// FieldChildTokenID holds the string denoting the child_token_id field in the database.
	FieldChildTokenID = "child_token_id"
	// FieldIssuedToPrincipalID holds the string denoting the issued_to_principal_id field in the database.
	FieldIssuedToPrincipalID = "issued_to_principal_id"
	// FieldGrantedByPrincipalID holds the string denoting the granted_by_principal_id field in the database.
	FieldGrantedByPrincipalID = "granted_by_principal_id"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the delegationedge in the database.
	Table = "sec_capability_delegation_edges"
)

// Columns holds all SQL columns for delegationedge fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldParentTokenID,
	FieldChildTokenID,
	FieldIssuedToPrincipalID,
	FieldGrantedByPrincipalID,
	FieldDepth,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DelegationEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByParentTokenID orders the results by the parent_token_id field.
func ByParentTokenID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTokenID, opts...).ToFunc()
}

// ByChildTokenID orders the results by the child_token_id field.
func ByChildTokenID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildTokenID, opts...).ToFunc()
}

// ByIssuedToPrincipalID orders the results by the issued_to_principal_id field.
func ByIssuedToPrincipalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuedToPrincipalID, opts...).ToFunc()
}

// ByGrantedByPrincipalID orders the results by the granted_by_principal_id field.
func ByGrantedByPrincipalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrantedByPrincipalID, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
