// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/principal"
)

// Principal is the model entity for the Principal schema.
type Principal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// PrincipalType holds the value of the "principal_type" field.
	PrincipalType principal.PrincipalType `json:"principal_type,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Pre-principal actor mapping, kept for event continuity
	LegacyActorType *string `json:"legacy_actor_type,omitempty"`
	// LegacyActorID holds the value of the "legacy_actor_id" field.
	LegacyActorID *string `json:"legacy_actor_id,omitempty"`
	// SHA-256 of the bearer key; the raw key is never stored
	APIKeyHash *string `json:"api_key_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// RevokedAt holds the value of the "revoked_at" field.
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Principal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case principal.FieldID, principal.FieldWorkspaceID, principal.FieldPrincipalType, principal.FieldDisplayName, principal.FieldLegacyActorType, principal.FieldLegacyActorID, principal.FieldAPIKeyHash:
			values[i] = new(sql.NullString)
		case principal.FieldCreatedAt, principal.FieldRevokedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Principal fields.
func (_m *Principal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case principal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case principal.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case principal.FieldPrincipalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field principal_type", values[i])
			} else if value.Valid {
				_m.PrincipalType = principal.PrincipalType(value.String)
			}
		case principal.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case principal.FieldLegacyActorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_actor_type", values[i])
			} else if value.Valid {
				_m.LegacyActorType = new(string)
				*_m.LegacyActorType = value.String
			}
		case principal.FieldLegacyActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_actor_id", values[i])
			} else if value.Valid {
				_m.LegacyActorID = new(string)
				*_m.LegacyActorID = value.String
			}
		case principal.FieldAPIKeyHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_hash", values[i])
			} else if value.Valid {
				_m.APIKeyHash = new(string)
				*_m.APIKeyHash = value.String
			}
		case principal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case principal.FieldRevokedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field revoked_at", values[i])
			} else if value.Valid {
				_m.RevokedAt = new(time.Time)
				*_m.RevokedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Principal.
// This includes values selected through modifiers, order, etc.
func (_m *Principal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Principal.
// Note that you need to call Principal.Unwrap() before calling this method if this Principal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Principal) Update() *PrincipalUpdateOne {
	return NewPrincipalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Principal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Principal) Unwrap() *Principal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Principal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Principal) String() string {
	var builder strings.Builder
	builder.WriteString("Principal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("principal_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrincipalType))
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	if v := _m.LegacyActorType; v != nil {
		builder.WriteString("legacy_actor_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LegacyActorID; v != nil {
		builder.WriteString("legacy_actor_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.APIKeyHash; v != nil {
		builder.WriteString("api_key_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RevokedAt; v != nil {
		builder.WriteString("revoked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Principals is a parsable slice of Principal.
type Principals []*Principal
