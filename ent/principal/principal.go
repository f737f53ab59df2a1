// Code generated by ent, DO NOT EDIT.

package principal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the principal type in the database.
	Label = "principal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "principal_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldPrincipalType holds the string denoting the principal_type field in the database.
	FieldPrincipalType = "principal_type"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldLegacyActorType holds the string denoting the legacy_actor_type field in the database.
	FieldLegacyActorType = "legacy_actor_type"
	// FieldLegacyActorID holds the string denoting the legacy_actor_id field in the database.
	FieldLegacyActorID = "legacy_actor_id"
	// FieldAPIKeyHash holds the string denoting the api_key_hash field in the database.
	FieldAPIKeyHash = "api_key_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRevokedAt holds the string denoting the revoked_at field in the database.
	FieldRevokedAt = "revoked_at"
	// Table holds the table name of the principal in the database.
	Table = "sec_principals"
)

// Columns holds all SQL columns for principal fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldPrincipalType,
	FieldDisplayName,
	FieldLegacyActorType,
	FieldLegacyActorID,
	FieldAPIKeyHash,
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

// PrincipalType defines the type for the "principal_type" enum field.
type PrincipalType string

// PrincipalType values.
const (
	PrincipalTypeUser    PrincipalType = "user"
	PrincipalTypeService PrincipalType = "service"
	PrincipalTypeAgent   PrincipalType = "agent"
)

func (pt PrincipalType) String() string {
	return string(pt)
}

// PrincipalTypeValidator is a validator for the "principal_type" field enum values. It is called by the builders before save.
func PrincipalTypeValidator(pt PrincipalType) error {
	switch pt {
	case PrincipalTypeUser, PrincipalTypeService, PrincipalTypeAgent:
		return nil
	default:
		return fmt.Errorf("principal: invalid enum value for principal_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the Principal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByPrincipalType orders the results by the principal_type field.
func ByPrincipalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrincipalType, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByLegacyActorType orders the results by the legacy_actor_type field.
func ByLegacyActorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyActorType, opts...).ToFunc()
}

// ByLegacyActorID orders the results by the legacy_actor_id field.
func ByLegacyActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyActorID, opts...).ToFunc()
}

// ByAPIKeyHash orders the results by the api_key_hash field.
func ByAPIKeyHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKeyHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRevokedAt orders the results by the revoked_at field.
func ByRevokedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevokedAt, opts...).ToFunc()
}
