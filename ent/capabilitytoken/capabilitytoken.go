// Code generated by ent, DO NOT EDIT.

package capabilitytoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the capabilitytoken type in the database.
	Label = "capability_token"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "token_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldIssuedToPrincipalID holds the string denoting the issued_to_principal_id field in the database.
	FieldIssuedToPrincipalID = "issued_to_principal_id"
	// FieldGrantedByPrincipalID holds the string denoting the granted_by_principal_id field in the database.
	FieldGrantedByPrincipalID = "granted_by_principal_id"
	// FieldParentTokenID holds the string denoting the parent_token_id field in the database.
	FieldParentTokenID = "parent_token_id"
	// FieldScopes holds the string denoting the scopes field in the database.
	FieldScopes = "scopes"
	// FieldValidUntil holds the string denoting the valid_until field in the database.
	FieldValidUntil = "valid_until"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRevokedAt holds the string denoting the revoked_at field in the database.
	FieldRevokedAt = "revoked_at"
	// Table holds the table name of the capabilitytoken in the database.
	Table = "sec_capability_tokens"
)

// Columns holds all SQL columns for capabilitytoken fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldIssuedToPrincipalID,
	FieldGrantedByPrincipalID,
	FieldParentTokenID,
	FieldScopes,
	FieldValidUntil,
	FieldCreatedAt,
	FieldRevokedAt,
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

// OrderOption defines the ordering options for the CapabilityToken queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByIssuedToPrincipalID orders the results by the issued_to_principal_id field.
func ByIssuedToPrincipalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuedToPrincipalID, opts...).ToFunc()
}

// ByGrantedByPrincipalID orders the results by the granted_by_principal_id field.
func ByGrantedByPrincipalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrantedByPrincipalID, opts...).ToFunc()
}

// ByParentTokenID orders the results by the parent_token_id field.
func ByParentTokenID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTokenID, opts...).ToFunc()
}

// ByValidUntil orders the results by the valid_until field.
func ByValidUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidUntil, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRevokedAt orders the results by the revoked_at field.
func ByRevokedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevokedAt, opts...).ToFunc()
}
