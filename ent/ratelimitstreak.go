// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/ratelimitstreak"
)

// RateLimitStreak is the model entity for the RateLimitStreak schema.
type RateLimitStreak struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope string `json:"scope,omitempty"`
	// Consecutive429 holds the value of the "consecutive_429" field.
	Consecutive429 int `json:"consecutive_429,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RateLimitStreak) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ratelimitstreak.FieldConsecutive429:
			values[i] = new(sql.NullInt64)
		case ratelimitstreak.FieldID, ratelimitstreak.FieldWorkspaceID, ratelimitstreak.FieldAgentID, ratelimitstreak.FieldScope:
			values[i] = new(sql.NullString)
		case ratelimitstreak.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RateLimitStreak fields.
func (_m *RateLimitStreak) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ratelimitstreak.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ratelimitstreak.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case ratelimitstreak.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case ratelimitstreak.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		case ratelimitstreak.FieldConsecutive429:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_429", values[i])
			} else if value.Valid {
				_m.Consecutive429 = int(value.Int64)
			}
		case ratelimitstreak.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RateLimitStreak.
// This includes values selected through modifiers, order, etc.
func (_m *RateLimitStreak) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RateLimitStreak.
// Note that you need to call RateLimitStreak.Unwrap() before calling this method if this RateLimitStreak
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RateLimitStreak) Update() *RateLimitStreakUpdateOne {
	return NewRateLimitStreakClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RateLimitStreak entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RateLimitStreak) Unwrap() *RateLimitStreak {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RateLimitStreak is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RateLimitStreak) String() string {
	var builder strings.Builder
	builder.WriteString("RateLimitStreak(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteString(", ")
	builder.WriteString("consecutive_429=")
	builder.WriteString(fmt.Sprintf("%v", _m.Consecutive429))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RateLimitStreaks is a parsable slice of RateLimitStreak.
type RateLimitStreaks []*RateLimitStreak
