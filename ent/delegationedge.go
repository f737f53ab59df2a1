// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/delegationedge"
)

// DelegationEdge is the model entity for the DelegationEdge schema.
type DelegationEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// ParentTokenID holds the value of the "parent_token_id" field.
	ParentTokenID string `json:"parent_token_id,omitempty"`
	// ChildTokenID holds the value of the "child_token_id" field.
	ChildTokenID string `json:"child_token_id,omitempty"`
	// IssuedToPrincipalID holds the value of the "issued_to_principal_id" field.
	IssuedToPrincipalID string `json:"issued_to_principal_id,omitempty"`
	// GrantedByPrincipalID holds the value of the "granted_by_principal_id" field.
	GrantedByPrincipalID string `json:"granted_by_principal_id,omitempty"`
	// Depth holds the value of the "depth" field.
	Depth int `json:"depth,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DelegationEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case delegationedge.FieldDepth:
			values[i] = new(sql.NullInt64)
		case delegationedge.FieldID, delegationedge.FieldWorkspaceID, delegationedge.FieldParentTokenID, delegationedge.FieldChildTokenID, delegationedge.FieldIssuedToPrincipalID, delegationedge.FieldGrantedByPrincipalID:
			values[i] = new(sql.NullString)
		case delegationedge.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DelegationEdge fields.
func (_m *DelegationEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case delegationedge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case delegationedge.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case delegationedge.FieldParentTokenID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_token_id", values[i])
			} else if value.Valid {
				_m.ParentTokenID = value.String
			}
		case delegationedge.FieldChildTokenID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_token_id", values[i])
			} else if value.Valid {
				_m.ChildTokenID = value.String
			}
		case delegationedge.FieldIssuedToPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issued_to_principal_id", values[i])
			} else if value.Valid {
				_m.IssuedToPrincipalID = value.String
			}
		case delegationedge.FieldGrantedByPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field granted_by_principal_id", values[i])
			} else if value.Valid {
				_m.GrantedByPrincipalID = value.String
			}
		case delegationedge.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case delegationedge.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DelegationEdge.
// This includes values selected through modifiers, order, etc.
func (_m *DelegationEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DelegationEdge.
// Note that you need to call DelegationEdge.Unwrap() before calling this method if this DelegationEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DelegationEdge) Update() *DelegationEdgeUpdateOne {
	return NewDelegationEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DelegationEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DelegationEdge) Unwrap() *DelegationEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DelegationEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DelegationEdge) String() string {
	var builder strings.Builder
	builder.WriteString("DelegationEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("parent_token_id=")
	builder.WriteString(_m.ParentTokenID)
	builder.WriteString(", ")
	builder.WriteString("child_token_id=")
	builder.WriteString(_m.ChildTokenID)
	builder.WriteString(", ")
	builder.WriteString("issued_to_principal_id=")
	builder.WriteString(_m.IssuedToPrincipalID)
	builder.WriteString(", ")
	builder.WriteString("granted_by_principal_id=")
	builder.WriteString(_m.GrantedByPrincipalID)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DelegationEdges is a parsable slice of DelegationEdge.
type DelegationEdges []*DelegationEdge
