// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldID, id))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// EventVersion applies equality check predicate on the "event_version" field. It's identical to EventVersionEQ.
func EventVersion(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventVersion, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldOccurredAt, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRecordedAt, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldWorkspaceID, v))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldMissionID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRoomID, v))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldThreadID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRunID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStepID, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActorID, v))
}

// ActorPrincipalID applies equality check predicate on the "actor_principal_id" field. It's identical to ActorPrincipalIDEQ.
func ActorPrincipalID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActorPrincipalID, v))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamID, v))
}

// StreamSeq applies equality check predicate on the "stream_seq" field. It's identical to StreamSeqEQ.
func StreamSeq(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamSeq, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCorrelationID, v))
}

// CausationID applies equality check predicate on the "causation_id" field. It's identical to CausationIDEQ.
func CausationID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCausationID, v))
}

// ContainsSecrets applies equality check predicate on the "contains_secrets" field. It's identical to ContainsSecretsEQ.
func ContainsSecrets(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContainsSecrets, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIdempotencyKey, v))
}

// PrevEventHash applies equality check predicate on the "prev_event_hash" field. It's identical to PrevEventHashEQ.
func PrevEventHash(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPrevEventHash, v))
}

// EventHash applies equality check predicate on the "event_hash" field. It's identical to EventHashEQ.
func EventHash(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventHash, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventType, v))
}

// EventVersionEQ applies the EQ predicate on the "event_version" field.
func EventVersionEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventVersion, v))
}

// EventVersionNEQ applies the NEQ predicate on the "event_version" field.
func EventVersionNEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventVersion, v))
}

// EventVersionIn applies the In predicate on the "event_version" field.
func EventVersionIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventVersion, vs...))
}

// EventVersionNotIn applies the NotIn predicate on the "event_version" field.
func EventVersionNotIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventVersion, vs...))
}

// EventVersionGT applies the GT predicate on the "event_version" field.
func EventVersionGT(v int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventVersion, v))
}

// EventVersionGTE applies the GTE predicate on the "event_version" field.
func EventVersionGTE(v int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventVersion, v))
}

// EventVersionLT applies the LT predicate on the "event_version" field.
func EventVersionLT(v int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventVersion, v))
}

// EventVersionLTE applies the LTE predicate on the "event_version" field.
func EventVersionLTE(v int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventVersion, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldOccurredAt, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRecordedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDIsNil applies the IsNil predicate on the "mission_id" field.
func MissionIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldMissionID))
}

// MissionIDNotNil applies the NotNil predicate on the "mission_id" field.
func MissionIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldMissionID))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldMissionID, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDIsNil applies the IsNil predicate on the "room_id" field.
func RoomIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldRoomID))
}

// RoomIDNotNil applies the NotNil predicate on the "room_id" field.
func RoomIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldRoomID))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRoomID, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDIsNil applies the IsNil predicate on the "thread_id" field.
func ThreadIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldThreadID))
}

// ThreadIDNotNil applies the NotNil predicate on the "thread_id" field.
func ThreadIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldThreadID))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldThreadID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRunID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDIsNil applies the IsNil predicate on the "step_id" field.
func StepIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldStepID))
}

// StepIDNotNil applies the NotNil predicate on the "step_id" field.
func StepIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldStepID))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldStepID, v))
}

// ActorTypeEQ applies the EQ predicate on the "actor_type" field.
func ActorTypeEQ(v ActorType) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActorType, v))
}

// ActorTypeNEQ applies the NEQ predicate on the "actor_type" field.
func ActorTypeNEQ(v ActorType) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldActorType, v))
}

// ActorTypeIn applies the In predicate on the "actor_type" field.
func ActorTypeIn(vs ...ActorType) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldActorType, vs...))
}

// ActorTypeNotIn applies the NotIn predicate on the "actor_type" field.
func ActorTypeNotIn(vs ...ActorType) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldActorType, vs...))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldActorID, v))
}

// ActorPrincipalIDEQ applies the EQ predicate on the "actor_principal_id" field.
func ActorPrincipalIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActorPrincipalID, v))
}

// ActorPrincipalIDNEQ applies the NEQ predicate on the "actor_principal_id" field.
func ActorPrincipalIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldActorPrincipalID, v))
}

// ActorPrincipalIDIn applies the In predicate on the "actor_principal_id" field.
func ActorPrincipalIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldActorPrincipalID, vs...))
}

// ActorPrincipalIDNotIn applies the NotIn predicate on the "actor_principal_id" field.
func ActorPrincipalIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldActorPrincipalID, vs...))
}

// ActorPrincipalIDGT applies the GT predicate on the "actor_principal_id" field.
func ActorPrincipalIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldActorPrincipalID, v))
}

// ActorPrincipalIDGTE applies the GTE predicate on the "actor_principal_id" field.
func ActorPrincipalIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldActorPrincipalID, v))
}

// ActorPrincipalIDLT applies the LT predicate on the "actor_principal_id" field.
func ActorPrincipalIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldActorPrincipalID, v))
}

// ActorPrincipalIDLTE applies the LTE predicate on the "actor_principal_id" field.
func ActorPrincipalIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldActorPrincipalID, v))
}

// ActorPrincipalIDContains applies the Contains predicate on the "actor_principal_id" field.
func ActorPrincipalIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldActorPrincipalID, v))
}

// ActorPrincipalIDHasPrefix applies the HasPrefix predicate on the "actor_principal_id" field.
func ActorPrincipalIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldActorPrincipalID, v))
}

// ActorPrincipalIDHasSuffix applies the HasSuffix predicate on the "actor_principal_id" field.
func ActorPrincipalIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldActorPrincipalID, v))
}

// ActorPrincipalIDIsNil applies the IsNil predicate on the "actor_principal_id" field.
func ActorPrincipalIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldActorPrincipalID))
}

// ActorPrincipalIDNotNil applies the NotNil predicate on the "actor_principal_id" field.
func ActorPrincipalIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldActorPrincipalID))
}

// ActorPrincipalIDEqualFold applies the EqualFold predicate on the "actor_principal_id" field.
func ActorPrincipalIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldActorPrincipalID, v))
}

// ActorPrincipalIDContainsFold applies the ContainsFold predicate on the "actor_principal_id" field.
func ActorPrincipalIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldActorPrincipalID, v))
}

// ZoneEQ applies the EQ predicate on the "zone" field.
func ZoneEQ(v Zone) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldZone, v))
}

// ZoneNEQ applies the NEQ predicate on the "zone" field.
func ZoneNEQ(v Zone) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldZone, v))
}

// ZoneIn applies the In predicate on the "zone" field.
func ZoneIn(vs ...Zone) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldZone, vs...))
}

// ZoneNotIn applies the NotIn predicate on the "zone" field.
func ZoneNotIn(vs ...Zone) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldZone, vs...))
}

// StreamTypeEQ applies the EQ predicate on the "stream_type" field.
func StreamTypeEQ(v StreamType) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamType, v))
}

// StreamTypeNEQ applies the NEQ predicate on the "stream_type" field.
func StreamTypeNEQ(v StreamType) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStreamType, v))
}

// StreamTypeIn applies the In predicate on the "stream_type" field.
func StreamTypeIn(vs ...StreamType) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStreamType, vs...))
}

// StreamTypeNotIn applies the NotIn predicate on the "stream_type" field.
func StreamTypeNotIn(vs ...StreamType) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStreamType, vs...))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldStreamID, v))
}

// StreamSeqEQ applies the EQ predicate on the "stream_seq" field.
func StreamSeqEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamSeq, v))
}

// StreamSeqNEQ applies the NEQ predicate on the "stream_seq" field.
func StreamSeqNEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStreamSeq, v))
}

// StreamSeqIn applies the In predicate on the "stream_seq" field.
func StreamSeqIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStreamSeq, vs...))
}

// StreamSeqNotIn applies the NotIn predicate on the "stream_seq" field.
func StreamSeqNotIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStreamSeq, vs...))
}

// StreamSeqGT applies the GT predicate on the "stream_seq" field.
func StreamSeqGT(v int64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldStreamSeq, v))
}

// StreamSeqGTE applies the GTE predicate on the "stream_seq" field.
func StreamSeqGTE(v int64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldStreamSeq, v))
}

// StreamSeqLT applies the LT predicate on the "stream_seq" field.
func StreamSeqLT(v int64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldStreamSeq, v))
}

// StreamSeqLTE applies the LTE predicate on the "stream_seq" field.
func StreamSeqLTE(v int64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldStreamSeq, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldCorrelationID, v))
}

// CausationIDEQ applies the EQ predicate on the "causation_id" field.
func CausationIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCausationID, v))
}

// CausationIDNEQ applies the NEQ predicate on the "causation_id" field.
func CausationIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCausationID, v))
}

// CausationIDIn applies the In predicate on the "causation_id" field.
func CausationIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCausationID, vs...))
}

// CausationIDNotIn applies the NotIn predicate on the "causation_id" field.
func CausationIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCausationID, vs...))
}

// CausationIDGT applies the GT predicate on the "causation_id" field.
func CausationIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCausationID, v))
}

// CausationIDGTE applies the GTE predicate on the "causation_id" field.
func CausationIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCausationID, v))
}

// CausationIDLT applies the LT predicate on the "causation_id" field.
func CausationIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCausationID, v))
}

// CausationIDLTE applies the LTE predicate on the "causation_id" field.
func CausationIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCausationID, v))
}

// CausationIDContains applies the Contains predicate on the "causation_id" field.
func CausationIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldCausationID, v))
}

// CausationIDHasPrefix applies the HasPrefix predicate on the "causation_id" field.
func CausationIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldCausationID, v))
}

// CausationIDHasSuffix applies the HasSuffix predicate on the "causation_id" field.
func CausationIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldCausationID, v))
}

// CausationIDIsNil applies the IsNil predicate on the "causation_id" field.
func CausationIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldCausationID))
}

// CausationIDNotNil applies the NotNil predicate on the "causation_id" field.
func CausationIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldCausationID))
}

// CausationIDEqualFold applies the EqualFold predicate on the "causation_id" field.
func CausationIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldCausationID, v))
}

// CausationIDContainsFold applies the ContainsFold predicate on the "causation_id" field.
func CausationIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldCausationID, v))
}

// RedactionLevelEQ applies the EQ predicate on the "redaction_level" field.
func RedactionLevelEQ(v RedactionLevel) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRedactionLevel, v))
}

// RedactionLevelNEQ applies the NEQ predicate on the "redaction_level" field.
func RedactionLevelNEQ(v RedactionLevel) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRedactionLevel, v))
}

// RedactionLevelIn applies the In predicate on the "redaction_level" field.
func RedactionLevelIn(vs ...RedactionLevel) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRedactionLevel, vs...))
}

// RedactionLevelNotIn applies the NotIn predicate on the "redaction_level" field.
func RedactionLevelNotIn(vs ...RedactionLevel) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRedactionLevel, vs...))
}

// ContainsSecretsEQ applies the EQ predicate on the "contains_secrets" field.
func ContainsSecretsEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContainsSecrets, v))
}

// ContainsSecretsNEQ applies the NEQ predicate on the "contains_secrets" field.
func ContainsSecretsNEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldContainsSecrets, v))
}

// PolicyContextIsNil applies the IsNil predicate on the "policy_context" field.
func PolicyContextIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldPolicyContext))
}

// PolicyContextNotNil applies the NotNil predicate on the "policy_context" field.
func PolicyContextNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldPolicyContext))
}

// ModelContextIsNil applies the IsNil predicate on the "model_context" field.
func ModelContextIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldModelContext))
}

// ModelContextNotNil applies the NotNil predicate on the "model_context" field.
func ModelContextNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldModelContext))
}

// DisplayIsNil applies the IsNil predicate on the "display" field.
func DisplayIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldDisplay))
}

// DisplayNotNil applies the NotNil predicate on the "display" field.
func DisplayNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldDisplay))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldData))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// PrevEventHashEQ applies the EQ predicate on the "prev_event_hash" field.
func PrevEventHashEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPrevEventHash, v))
}

// PrevEventHashNEQ applies the NEQ predicate on the "prev_event_hash" field.
func PrevEventHashNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldPrevEventHash, v))
}

// PrevEventHashIn applies the In predicate on the "prev_event_hash" field.
func PrevEventHashIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldPrevEventHash, vs...))
}

// PrevEventHashNotIn applies the NotIn predicate on the "prev_event_hash" field.
func PrevEventHashNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldPrevEventHash, vs...))
}

// PrevEventHashGT applies the GT predicate on the "prev_event_hash" field.
func PrevEventHashGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldPrevEventHash, v))
}

// PrevEventHashGTE applies the GTE predicate on the "prev_event_hash" field.
func PrevEventHashGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldPrevEventHash, v))
}

// PrevEventHashLT applies the LT predicate on the "prev_event_hash" field.
func PrevEventHashLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldPrevEventHash, v))
}

// PrevEventHashLTE applies the LTE predicate on the "prev_event_hash" field.
func PrevEventHashLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldPrevEventHash, v))
}

// PrevEventHashContains applies the Contains predicate on the "prev_event_hash" field.
func PrevEventHashContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldPrevEventHash, v))
}

// PrevEventHashHasPrefix applies the HasPrefix predicate on the "prev_event_hash" field.
func PrevEventHashHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldPrevEventHash, v))
}

// PrevEventHashHasSuffix applies the HasSuffix predicate on the "prev_event_hash" field.
func PrevEventHashHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldPrevEventHash, v))
}

// PrevEventHashIsNil applies the IsNil predicate on the "prev_event_hash" field.
func PrevEventHashIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldPrevEventHash))
}

// PrevEventHashNotNil applies the NotNil predicate on the "prev_event_hash" field.
func PrevEventHashNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldPrevEventHash))
}

// PrevEventHashEqualFold applies the EqualFold predicate on the "prev_event_hash" field.
func PrevEventHashEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldPrevEventHash, v))
}

// PrevEventHashContainsFold applies the ContainsFold predicate on the "prev_event_hash" field.
func PrevEventHashContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldPrevEventHash, v))
}

// EventHashEQ applies the EQ predicate on the "event_hash" field.
func EventHashEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventHash, v))
}

// EventHashNEQ applies the NEQ predicate on the "event_hash" field.
func EventHashNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventHash, v))
}

// EventHashIn applies the In predicate on the "event_hash" field.
func EventHashIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventHash, vs...))
}

// EventHashNotIn applies the NotIn predicate on the "event_hash" field.
func EventHashNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventHash, vs...))
}

// EventHashGT applies the GT predicate on the "event_hash" field.
func EventHashGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventHash, v))
}

// EventHashGTE applies the GTE predicate on the "event_hash" field.
func EventHashGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventHash, v))
}

// EventHashLT applies the LT predicate on the "event_hash" field.
func EventHashLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventHash, v))
}

// EventHashLTE applies the LTE predicate on the "event_hash" field.
func EventHashLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventHash, v))
}

// EventHashContains applies the Contains predicate on the "event_hash" field.
func EventHashContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventHash, v))
}

// EventHashHasPrefix applies the HasPrefix predicate on the "event_hash" field.
func EventHashHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventHash, v))
}

// EventHashHasSuffix applies the HasSuffix predicate on the "event_hash" field.
func EventHashHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventHash, v))
}

// EventHashIsNil applies the IsNil predicate on the "event_hash" field.
func EventHashIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldEventHash))
}

// EventHashNotNil applies the NotNil predicate on the "event_hash" field.
func EventHashNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldEventHash))
}

// EventHashEqualFold applies the EqualFold predicate on the "event_hash" field.
func EventHashEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventHash, v))
}

// EventHashContainsFold applies the ContainsFold predicate on the "event_hash" field.
func EventHashContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventHash, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
