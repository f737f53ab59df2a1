// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/event"
)

// Event is the model entity for the Event schema.
type Event struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// EventVersion holds the value of the "event_version" field.
	EventVersion int `json:"event_version,omitempty"`
	// Actor-supplied time, bounded by clock skew checks
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// Store-assigned commit time, part of the hashed envelope
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// MissionID holds the value of the "mission_id" field.
	MissionID *string `json:"mission_id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID *string `json:"room_id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID *string `json:"thread_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID *string `json:"run_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID *string `json:"step_id,omitempty"`
	// ActorType holds the value of the "actor_type" field.
	ActorType event.ActorType `json:"actor_type,omitempty"`
	// ActorID holds the value of the "actor_id" field.
	ActorID string `json:"actor_id,omitempty"`
	// ActorPrincipalID holds the value of the "actor_principal_id" field.
	ActorPrincipalID *string `json:"actor_principal_id,omitempty"`
	// Zone holds the value of the "zone" field.
	Zone event.Zone `json:"zone,omitempty"`
	// StreamType holds the value of the "stream_type" field.
	StreamType event.StreamType `json:"stream_type,omitempty"`
	// StreamID holds the value of the "stream_id" field.
	StreamID string `json:"stream_id,omitempty"`
	// StreamSeq holds the value of the "stream_seq" field.
	StreamSeq int64 `json:"stream_seq,omitempty"`
	// CorrelationID holds the value of the "correlation_id" field.
	CorrelationID string `json:"correlation_id,omitempty"`
	// CausationID holds the value of the "causation_id" field.
	CausationID *string `json:"causation_id,omitempty"`
	// RedactionLevel holds the value of the "redaction_level" field.
	RedactionLevel event.RedactionLevel `json:"redaction_level,omitempty"`
	// ContainsSecrets holds the value of the "contains_secrets" field.
	ContainsSecrets bool `json:"contains_secrets,omitempty"`
	// PolicyContext holds the value of the "policy_context" field.
	PolicyContext json.RawMessage `json:"policy_context,omitempty"`
	// ModelContext holds the value of the "model_context" field.
	ModelContext json.RawMessage `json:"model_context,omitempty"`
	// Display holds the value of the "display" field.
	Display json.RawMessage `json:"display,omitempty"`
	// Data holds the value of the "data" field.
	Data json.RawMessage `json:"data,omitempty"`
	// IdempotencyKey holds the value of the "idempotency_key" field.
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
	// PrevEventHash holds the value of the "prev_event_hash" field.
	PrevEventHash *string `json:"prev_event_hash,omitempty"`
	// EventHash holds the value of the "event_hash" field.
	EventHash    *string `json:"event_hash,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Event) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case event.FieldPolicyContext, event.FieldModelContext, event.FieldDisplay, event.FieldData:
			values[i] = new([]byte)
		case event.FieldContainsSecrets:
			values[i] = new(sql.NullBool)
		case event.FieldEventVersion, event.FieldStreamSeq:
			values[i] = new(sql.NullInt64)
		case event.FieldID, event.FieldEventType, event.FieldWorkspaceID, event.FieldMissionID, event.FieldRoomID, event.FieldThreadID, event.FieldRunID, event.FieldStepID, event.FieldActorType, event.FieldActorID, event.FieldActorPrincipalID, event.FieldZone, event.FieldStreamType, event.FieldStreamID, event.FieldCorrelationID, event.FieldCausationID, event.FieldRedactionLevel, event.FieldIdempotencyKey, event.FieldPrevEventHash, event.FieldEventHash:
			values[i] = new(sql.NullString)
		case event.FieldOccurredAt, event.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Event fields.
func (_m *Event) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case event.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case event.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case event.FieldEventVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_version", values[i])
			} else if value.Valid {
				_m.EventVersion = int(value.Int64)
			}
		case event.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		case event.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case event.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case event.FieldMissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mission_id", values[i])
			} else if value.Valid {
				_m.MissionID = new(string)
				*_m.MissionID = value.String
			}
		case event.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = new(string)
				*_m.RoomID = value.String
			}
		case event.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = new(string)
				*_m.ThreadID = value.String
			}
		case event.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = new(string)
				*_m.RunID = value.String
			}
		case event.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = new(string)
				*_m.StepID = value.String
			}
		case event.FieldActorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_type", values[i])
			} else if value.Valid {
				_m.ActorType = event.ActorType(value.String)
			}
		case event.FieldActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = value.String
			}
		case event.FieldActorPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_principal_id", values[i])
			} else if value.Valid {
				_m.ActorPrincipalID = new(string)
				*_m.ActorPrincipalID = value.String
			}
		case event.FieldZone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zone", values[i])
			} else if value.Valid {
				_m.Zone = event.Zone(value.String)
			}
		case event.FieldStreamType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_type", values[i])
			} else if value.Valid {
				_m.StreamType = event.StreamType(value.String)
			}
		case event.FieldStreamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_id", values[i])
			} else if value.Valid {
				_m.StreamID = value.String
			}
		case event.FieldStreamSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stream_seq", values[i])
			} else if value.Valid {
				_m.StreamSeq = value.Int64
			}
		case event.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case event.FieldCausationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field causation_id", values[i])
			} else if value.Valid {
				_m.CausationID = new(string)
				*_m.CausationID = value.String
			}
		case event.FieldRedactionLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field redaction_level", values[i])
			} else if value.Valid {
				_m.RedactionLevel = event.RedactionLevel(value.String)
			}
		case event.FieldContainsSecrets:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field contains_secrets", values[i])
			} else if value.Valid {
				_m.ContainsSecrets = value.Bool
			}
		case event.FieldPolicyContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field policy_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PolicyContext); err != nil {
					return fmt.Errorf("unmarshal field policy_context: %w", err)
				}
			}
		case event.FieldModelContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field model_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelContext); err != nil {
					return fmt.Errorf("unmarshal field model_context: %w", err)
				}
			}
		case event.FieldDisplay:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field display", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Display); err != nil {
					return fmt.Errorf("unmarshal field display: %w", err)
				}
			}
		case event.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case event.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = new(string)
				*_m.IdempotencyKey = value.String
			}
		case event.FieldPrevEventHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prev_event_hash", values[i])
			} else if value.Valid {
				_m.PrevEventHash = new(string)
				*_m.PrevEventHash = value.String
			}
		case event.FieldEventHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_hash", values[i])
			} else if value.Valid {
				_m.EventHash = new(string)
				*_m.EventHash = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Event.
// This includes values selected through modifiers, order, etc.
func (_m *Event) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Event.
// Note that you need to call Event.Unwrap() before calling this method if this Event
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Event) Update() *EventUpdateOne {
	return NewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Event entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Event) Unwrap() *Event {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Event is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Event) String() string {
	var builder strings.Builder
	builder.WriteString("Event(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("event_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventVersion))
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	if v := _m.MissionID; v != nil {
		builder.WriteString("mission_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RoomID; v != nil {
		builder.WriteString("room_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ThreadID; v != nil {
		builder.WriteString("thread_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RunID; v != nil {
		builder.WriteString("run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StepID; v != nil {
		builder.WriteString("step_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("actor_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorType))
	builder.WriteString(", ")
	builder.WriteString("actor_id=")
	builder.WriteString(_m.ActorID)
	builder.WriteString(", ")
	if v := _m.ActorPrincipalID; v != nil {
		builder.WriteString("actor_principal_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("zone=")
	builder.WriteString(fmt.Sprintf("%v", _m.Zone))
	builder.WriteString(", ")
	builder.WriteString("stream_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreamType))
	builder.WriteString(", ")
	builder.WriteString("stream_id=")
	builder.WriteString(_m.StreamID)
	builder.WriteString(", ")
	builder.WriteString("stream_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreamSeq))
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	if v := _m.CausationID; v != nil {
		builder.WriteString("causation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("redaction_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.RedactionLevel))
	builder.WriteString(", ")
	builder.WriteString("contains_secrets=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContainsSecrets))
	builder.WriteString(", ")
	builder.WriteString("policy_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.PolicyContext))
	builder.WriteString(", ")
	builder.WriteString("model_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelContext))
	builder.WriteString(", ")
	builder.WriteString("display=")
	builder.WriteString(fmt.Sprintf("%v", _m.Display))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	if v := _m.IdempotencyKey; v != nil {
		builder.WriteString("idempotency_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrevEventHash; v != nil {
		builder.WriteString("prev_event_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EventHash; v != nil {
		builder.WriteString("event_hash=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Events is a parsable slice of Event.
type Events []*Event
