// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/incidentlearning"
)

// IncidentLearning is the model entity for the IncidentLearning schema.
type IncidentLearning struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID string `json:"incident_id,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// LoggedBy holds the value of the "logged_by" field.
	LoggedBy string `json:"logged_by,omitempty"`
	// LastEventID holds the value of the "last_event_id" field.
	LastEventID string `json:"last_event_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IncidentLearning) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case incidentlearning.FieldID, incidentlearning.FieldWorkspaceID, incidentlearning.FieldIncidentID, incidentlearning.FieldSummary, incidentlearning.FieldLoggedBy, incidentlearning.FieldLastEventID:
			values[i] = new(sql.NullString)
		case incidentlearning.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IncidentLearning fields.
func (_m *IncidentLearning) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case incidentlearning.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case incidentlearning.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case incidentlearning.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = value.String
			}
		case incidentlearning.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case incidentlearning.FieldLoggedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logged_by", values[i])
			} else if value.Valid {
				_m.LoggedBy = value.String
			}
		case incidentlearning.FieldLastEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_event_id", values[i])
			} else if value.Valid {
				_m.LastEventID = value.String
			}
		case incidentlearning.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the IncidentLearning.
// This includes values selected through modifiers, order, etc.
func (_m *IncidentLearning) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IncidentLearning.
// Note that you need to call IncidentLearning.Unwrap() before calling this method if this IncidentLearning
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IncidentLearning) Update() *IncidentLearningUpdateOne {
	return NewIncidentLearningClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IncidentLearning entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IncidentLearning) Unwrap() *IncidentLearning {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IncidentLearning is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IncidentLearning) String() string {
	var builder strings.Builder
	builder.WriteString("IncidentLearning(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("incident_id=")
	builder.WriteString(_m.IncidentID)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("logged_by=")
	builder.WriteString(_m.LoggedBy)
	builder.WriteString(", ")
	builder.WriteString("last_event_id=")
	builder.WriteString(_m.LastEventID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IncidentLearnings is a parsable slice of IncidentLearning.
type IncidentLearnings []*IncidentLearning
