// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldEventVersion holds the string denoting the event_version field in the database.
	FieldEventVersion = "event_version"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldActorType holds the string denoting the actor_type field in the database.
	FieldActorType = "actor_type"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldActorPrincipalID holds the string denoting the actor_principal_id field in the database.
	FieldActorPrincipalID = "actor_principal_id"
	// FieldZone holds the string denoting the zone field in the database.
	FieldZone = "zone"
	// FieldStreamType holds the string denoting the stream_type field in the database.
	FieldStreamType = "stream_type"
	// FieldStreamID holds the string denoting the stream_id field in the database.
	FieldStreamID = "stream_id"
	// FieldStreamSeq holds the string denoting the stream_seq field in the database.
	FieldStreamSeq = "stream_seq"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldCausationID holds the string denoting the causation_id field in the database.
	FieldCausationID = "causation_id"
	// FieldRedactionLevel holds the string denoting the redaction_level field in the database.
	FieldRedactionLevel = "redaction_level"
	// FieldContainsSecrets holds the string denoting the contains_secrets field in the database.
	FieldContainsSecrets = "contains_secrets"
	// FieldPolicyContext holds the string denoting the policy_context field in the database.
	FieldPolicyContext = "policy_context"
	// FieldModelContext holds the string denoting the model_context field in the database.
	FieldModelContext = "model_context"
	// FieldDisplay holds the string denoting the display field in the database.
	FieldDisplay = "display"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldPrevEventHash holds the string denoting the prev_event_hash field in the database.
	FieldPrevEventHash = "prev_event_hash"
	// FieldEventHash holds the string denoting the event_hash field in the database.
	FieldEventHash = "event_hash"
	// Table holds the table name of the event in the database.
	Table = "evt_events"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldEventType,
	FieldEventVersion,
	FieldOccurredAt,
	FieldRecordedAt,
	FieldWorkspaceID,
	FieldMissionID,
	FieldRoomID,
	FieldThreadID,
	FieldRunID,
	FieldStepID,
	FieldActorType,
	FieldActorID,
	FieldActorPrincipalID,
	FieldZone,
	FieldStreamType,
	FieldStreamID,
	FieldStreamSeq,
	FieldCorrelationID,
	FieldCausationID,
	FieldRedactionLevel,
	FieldContainsSecrets,
	FieldPolicyContext,
	FieldModelContext,
	FieldDisplay,
	FieldData,
	FieldIdempotencyKey,
	FieldPrevEventHash,
	FieldEventHash,
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
	// DefaultEventVersion holds the default value on creation for the "event_version" field.
	DefaultEventVersion int
	// DefaultContainsSecrets holds the default value on creation for the "contains_secrets" field.
	DefaultContainsSecrets bool
)

// ActorType defines the type for the "actor_type" enum field.
type ActorType string

// ActorType values.
const (
	ActorTypeUser    ActorType = "user"
	ActorTypeService ActorType = "service"
	ActorTypeAgent   ActorType = "agent"
)

func (at ActorType) String() string {
	return string(at)
}

// ActorTypeValidator is a validator for the "actor_type" field enum values. It is called by the builders before save.
func ActorTypeValidator(at ActorType) error {
	switch at {
	case ActorTypeUser, ActorTypeService, ActorTypeAgent:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for actor_type field: %q", at)
	}
}

// Zone defines the type for the "zone" enum field.
type Zone string

// ZoneSandbox is the default value of the Zone enum.
const DefaultZone = ZoneSandbox

// Zone values.
const (
	ZoneSandbox    Zone = "sandbox"
	ZoneSupervised Zone = "supervised"
	ZoneHighStakes Zone = "high_stakes"
)

func (z Zone) String() string {
	return string(z)
}

// ZoneValidator is a validator for the "zone" field enum values. It is called by the builders before save.
func ZoneValidator(z Zone) error {
	switch z {
	case ZoneSandbox, ZoneSupervised, ZoneHighStakes:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for zone field: %q", z)
	}
}

// StreamType defines the type for the "stream_type" enum field.
type StreamType string

// StreamType values.
const (
	StreamTypeWorkspace StreamType = "workspace"
	StreamTypeRoom      StreamType = "room"
	StreamTypeThread    StreamType = "thread"
)

func (st StreamType) String() string {
	return string(st)
}

// StreamTypeValidator is a validator for the "stream_type" field enum values. It is called by the builders before save.
func StreamTypeValidator(st StreamType) error {
	switch st {
	case StreamTypeWorkspace, StreamTypeRoom, StreamTypeThread:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for stream_type field: %q", st)
	}
}

// RedactionLevel defines the type for the "redaction_level" enum field.
type RedactionLevel string

// RedactionLevelNone is the default value of the RedactionLevel enum.
const DefaultRedactionLevel = RedactionLevelNone

// RedactionLevel values.
const (
	RedactionLevelNone    RedactionLevel = "none"
	RedactionLevelPartial RedactionLevel = "partial"
	RedactionLevelFull    RedactionLevel = "full"
)

func (rl RedactionLevel) String() string {
	return string(rl)
}

// RedactionLevelValidator is a validator for the "redaction_level" field enum values. It is called by the builders before save.
func RedactionLevelValidator(rl RedactionLevel) error {
	switch rl {
	case RedactionLevelNone, RedactionLevelPartial, RedactionLevelFull:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for redaction_level field: %q", rl)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByEventVersion orders the results by the event_version field.
func ByEventVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventVersion, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByActorType orders the results by the actor_type field.
func ByActorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorType, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByActorPrincipalID orders the results by the actor_principal_id field.
func ByActorPrincipalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorPrincipalID, opts...).ToFunc()
}

// ByZone orders the results by the zone field.
func ByZone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZone, opts...).ToFunc()
}

// ByStreamType orders the results by the stream_type field.
func ByStreamType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamType, opts...).ToFunc()
}

// ByStreamID orders the results by the stream_id field.
func ByStreamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamID, opts...).ToFunc()
}

// ByStreamSeq orders the results by the stream_seq field.
func ByStreamSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamSeq, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByCausationID orders the results by the causation_id field.
func ByCausationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCausationID, opts...).ToFunc()
}

// ByRedactionLevel orders the results by the redaction_level field.
func ByRedactionLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRedactionLevel, opts...).ToFunc()
}

// ByContainsSecrets orders the results by the contains_secrets field.
func ByContainsSecrets(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainsSecrets, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByPrevEventHash orders the results by the prev_event_hash field.
func ByPrevEventHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevEventHash, opts...).ToFunc()
}

// ByEventHash orders the results by the event_hash field.
func ByEventHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventHash, opts...).ToFunc()
}
