// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/capabilitytoken"
	"github.com/missionloop/groundcontrol/pkg/models"
)

// CapabilityToken is the model entity for the CapabilityToken schema.
type CapabilityToken struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// IssuedToPrincipalID holds the value of the "issued_to_principal_id" field.
	IssuedToPrincipalID string `json:"issued_to_principal_id,omitempty"`
	// GrantedByPrincipalID holds the value of the "granted_by_principal_id" field.
	GrantedByPrincipalID string `json:"granted_by_principal_id,omitempty"`
	// ParentTokenID holds the value of the "parent_token_id" field.
	ParentTokenID *string `json:"parent_token_id,omitempty"`
	// Scopes holds the value of the "scopes" field.
	Scopes models.ScopeSet `json:"scopes,omitempty"`
	// ValidUntil holds the value of the "valid_until" field.
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// RevokedAt holds the value of the "revoked_at" field.
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CapabilityToken) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case capabilitytoken.FieldScopes:
			values[i] = new([]byte)
		case capabilitytoken.FieldID, capabilitytoken.FieldWorkspaceID, capabilitytoken.FieldIssuedToPrincipalID, capabilitytoken.FieldGrantedByPrincipalID, capabilitytoken.FieldParentTokenID:
			values[i] = new(sql.NullString)
		case capabilitytoken.FieldValidUntil, capabilitytoken.FieldCreatedAt, capabilitytoken.FieldRevokedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CapabilityToken fields.
func (_m *CapabilityToken) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case capabilitytoken.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case capabilitytoken.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case capabilitytoken.FieldIssuedToPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issued_to_principal_id", values[i])
			} else if value.Valid {
				_m.IssuedToPrincipalID = value.String
			}
		case capabilitytoken.FieldGrantedByPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field granted_by_principal_id", values[i])
			} else if value.Valid {
				_m.GrantedByPrincipalID = value.String
			}
		case capabilitytoken.FieldParentTokenID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_token_id", values[i])
			} else if value.Valid {
				_m.ParentTokenID = new(string)
				*_m.ParentTokenID = value.String
			}
		case capabilitytoken.FieldScopes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scopes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scopes); err != nil {
					return fmt.Errorf("unmarshal field scopes: %w", err)
				}
			}
		case capabilitytoken.FieldValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_until", values[i])
			} else if value.Valid {
				_m.ValidUntil = new(time.Time)
				*_m.ValidUntil = value.Time
			}
		case capabilitytoken.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case capabilitytoken.FieldRevokedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CapabilityToken.
// This includes values selected through modifiers, order, etc.
func (_m *CapabilityToken) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CapabilityToken.
// Note that you need to call CapabilityToken.Unwrap() before calling this method if this CapabilityToken
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CapabilityToken) Update() *CapabilityTokenUpdateOne {
	return NewCapabilityTokenClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CapabilityToken entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CapabilityToken) Unwrap() *CapabilityToken {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CapabilityToken is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CapabilityToken) String() string {
	var builder strings.Builder
	builder.WriteString("CapabilityToken(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("issued_to_principal_id=")
	builder.WriteString(_m.IssuedToPrincipalID)
	builder.WriteString(", ")
	builder.WriteString("granted_by_principal_id=")
	builder.WriteString(_m.GrantedByPrincipalID)
	builder.WriteString(", ")
	if v := _m.ParentTokenID; v != nil {
		builder.WriteString("parent_token_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("scopes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scopes))
	builder.WriteString(", ")
	if v := _m.ValidUntil; v != nil {
		builder.WriteString("valid_until=")
		builder.WriteString(v.Format(time.ANSIC))
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

// CapabilityTokens is a parsable slice of CapabilityToken.
type CapabilityTokens []*CapabilityToken
