// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/streamhead"
)

// StreamHead is the model entity for the StreamHead schema.
type StreamHead struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StreamType holds the value of the "stream_type" field.
	StreamType streamhead.StreamType `json:"stream_type,omitempty"`
	// StreamID holds the value of the "stream_id" field.
	StreamID string `json:"stream_id,omitempty"`
	// LastSeq holds the value of the "last_seq" field.
	LastSeq int64 `json:"last_seq,omitempty"`
	// LastEventHash holds the value of the "last_event_hash" field.
	LastEventHash *string `json:"last_event_hash,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StreamHead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case streamhead.FieldLastSeq:
			values[i] = new(sql.NullInt64)
		case streamhead.FieldID, streamhead.FieldStreamType, streamhead.FieldStreamID, streamhead.FieldLastEventHash:
			values[i] = new(sql.NullString)
		case streamhead.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StreamHead fields.
func (_m *StreamHead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case streamhead.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case streamhead.FieldStreamType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_type", values[i])
			} else if value.Valid {
				_m.StreamType = streamhead.StreamType(value.String)
			}
		case streamhead.FieldStreamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_id", values[i])
			} else if value.Valid {
				_m.StreamID = value.String
			}
		case streamhead.FieldLastSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_seq", values[i])
			} else if value.Valid {
				_m.LastSeq = value.Int64
			}
		case streamhead.FieldLastEventHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_event_hash", values[i])
			} else if value.Valid {
				_m.LastEventHash = new(string)
				*_m.LastEventHash = value.String
			}
		case streamhead.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StreamHead.
// This includes values selected through modifiers, order, etc.
func (_m *StreamHead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StreamHead.
// Note that you need to call StreamHead.Unwrap() before calling this method if this StreamHead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StreamHead) Update() *StreamHeadUpdateOne {
	return NewStreamHeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StreamHead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StreamHead) Unwrap() *StreamHead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StreamHead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StreamHead) String() string {
	var builder strings.Builder
	builder.WriteString("StreamHead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stream_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreamType))
	builder.WriteString(", ")
	builder.WriteString("stream_id=")
	builder.WriteString(_m.StreamID)
	builder.WriteString(", ")
	builder.WriteString("last_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSeq))
	builder.WriteString(", ")
	if v := _m.LastEventHash; v != nil {
		builder.WriteString("last_event_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StreamHeads is a parsable slice of StreamHead.
type StreamHeads []*StreamHead
