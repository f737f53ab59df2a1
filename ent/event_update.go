// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/event"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventUpdate) SetEventType(v string) *EventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventType(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventVersion sets the "event_version" field.
func (_u *EventUpdate) SetEventVersion(v int) *EventUpdate {
	_u.mutation.ResetEventVersion()
	_u.mutation.SetEventVersion(v)
	return _u
}

// SetNillableEventVersion sets the "event_version" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventVersion(v *int) *EventUpdate {
	if v != nil {
		_u.SetEventVersion(*v)
	}
	return _u
}

// AddEventVersion adds value to the "event_version" field.
func (_u *EventUpdate) AddEventVersion(v int) *EventUpdate {
	_u.mutation.AddEventVersion(v)
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *EventUpdate) SetOccurredAt(v time.Time) *EventUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableOccurredAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *EventUpdate) SetRecordedAt(v time.Time) *EventUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRecordedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *EventUpdate) SetWorkspaceID(v string) *EventUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableWorkspaceID(v *string) *EventUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *EventUpdate) SetMissionID(v string) *EventUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableMissionID(v *string) *EventUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *EventUpdate) ClearMissionID() *EventUpdate {
	_u.mutation.ClearMissionID()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *EventUpdate) SetRoomID(v string) *EventUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRoomID(v *string) *EventUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *EventUpdate) ClearRoomID() *EventUpdate {
	_u.mutation.ClearRoomID()
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *EventUpdate) SetThreadID(v string) *EventUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableThreadID(v *string) *EventUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *EventUpdate) ClearThreadID() *EventUpdate {
	_u.mutation.ClearThreadID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *EventUpdate) SetRunID(v string) *EventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRunID(v *string) *EventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *EventUpdate) ClearRunID() *EventUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *EventUpdate) SetStepID(v string) *EventUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStepID(v *string) *EventUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *EventUpdate) ClearStepID() *EventUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetActorType sets the "actor_type" field.
func (_u *EventUpdate) SetActorType(v event.ActorType) *EventUpdate {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableActorType(v *event.ActorType) *EventUpdate {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *EventUpdate) SetActorID(v string) *EventUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableActorID(v *string) *EventUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetActorPrincipalID sets the "actor_principal_id" field.
func (_u *EventUpdate) SetActorPrincipalID(v string) *EventUpdate {
	_u.mutation.SetActorPrincipalID(v)
	return _u
}

// SetNillableActorPrincipalID sets the "actor_principal_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableActorPrincipalID(v *string) *EventUpdate {
	if v != nil {
		_u.SetActorPrincipalID(*v)
	}
	return _u
}

// ClearActorPrincipalID clears the value of the "actor_principal_id" field.
func (_u *EventUpdate) ClearActorPrincipalID() *EventUpdate {
	_u.mutation.ClearActorPrincipalID()
	return _u
}

// SetZone sets the "zone" field.
func (_u *EventUpdate) SetZone(v event.Zone) *EventUpdate {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *EventUpdate) SetNillableZone(v *event.Zone) *EventUpdate {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// SetStreamType sets the "stream_type" field.
func (_u *EventUpdate) SetStreamType(v event.StreamType) *EventUpdate {
	_u.mutation.SetStreamType(v)
	return _u
}

// SetNillableStreamType sets the "stream_type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStreamType(v *event.StreamType) *EventUpdate {
	if v != nil {
		_u.SetStreamType(*v)
	}
	return _u
}

// SetStreamID sets the "stream_id" field.
func (_u *EventUpdate) SetStreamID(v string) *EventUpdate {
	_u.mutation.SetStreamID(v)
	return _u
}

// SetNillableStreamID sets the "stream_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStreamID(v *string) *EventUpdate {
	if v != nil {
		_u.SetStreamID(*v)
	}
	return _u
}

// SetStreamSeq sets the "stream_seq" field.
func (_u *EventUpdate) SetStreamSeq(v int64) *EventUpdate {
	_u.mutation.ResetStreamSeq()
	_u.mutation.SetStreamSeq(v)
	return _u
}

// SetNillableStreamSeq sets the "stream_seq" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStreamSeq(v *int64) *EventUpdate {
	if v != nil {
		_u.SetStreamSeq(*v)
	}
	return _u
}

// AddStreamSeq adds value to the "stream_seq" field.
func (_u *EventUpdate) AddStreamSeq(v int64) *EventUpdate {
	_u.mutation.AddStreamSeq(v)
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *EventUpdate) SetCorrelationID(v string) *EventUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableCorrelationID(v *string) *EventUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetCausationID sets the "causation_id" field.
func (_u *EventUpdate) SetCausationID(v string) *EventUpdate {
	_u.mutation.SetCausationID(v)
	return _u
}

// SetNillableCausationID sets the "causation_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableCausationID(v *string) *EventUpdate {
	if v != nil {
		_u.SetCausationID(*v)
	}
	return _u
}

// ClearCausationID clears the value of the "causation_id" field.
func (_u *EventUpdate) ClearCausationID() *EventUpdate {
	_u.mutation.ClearCausationID()
	return _u
}

// SetRedactionLevel sets the "redaction_level" field.
func (_u *EventUpdate) SetRedactionLevel(v event.RedactionLevel) *EventUpdate {
	_u.mutation.SetRedactionLevel(v)
	return _u
}

// SetNillableRedactionLevel sets the "redaction_level" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRedactionLevel(v *event.RedactionLevel) *EventUpdate {
	if v != nil {
		_u.SetRedactionLevel(*v)
	}
	return _u
}

// SetContainsSecrets sets the "contains_secrets" field.
func (_u *EventUpdate) SetContainsSecrets(v bool) *EventUpdate {
	_u.mutation.SetContainsSecrets(v)
	return _u
}

// SetNillableContainsSecrets sets the "contains_secrets" field if the given value is not nil.
func (_u *EventUpdate) SetNillableContainsSecrets(v *bool) *EventUpdate {
	if v != nil {
		_u.SetContainsSecrets(*v)
	}
	return _u
}

// SetPolicyContext sets the "policy_context" field.
func (_u *EventUpdate) SetPolicyContext(v json.RawMessage) *EventUpdate {
	_u.mutation.SetPolicyContext(v)
	return _u
}

// AppendPolicyContext appends value to the "policy_context" field.
func (_u *EventUpdate) AppendPolicyContext(v json.RawMessage) *EventUpdate {
	_u.mutation.AppendPolicyContext(v)
	return _u
}

// ClearPolicyContext clears the value of the "policy_context" field.
func (_u *EventUpdate) ClearPolicyContext() *EventUpdate {
	_u.mutation.ClearPolicyContext()
	return _u
}

// SetModelContext sets the "model_context" field.
func (_u *EventUpdate) SetModelContext(v json.RawMessage) *EventUpdate {
	_u.mutation.SetModelContext(v)
	return _u
}

// AppendModelContext appends value to the "model_context" field.
func (_u *EventUpdate) AppendModelContext(v json.RawMessage) *EventUpdate {
	_u.mutation.AppendModelContext(v)
	return _u
}

// ClearModelContext clears the value of the "model_context" field.
func (_u *EventUpdate) ClearModelContext() *EventUpdate {
	_u.mutation.ClearModelContext()
	return _u
}

// SetDisplay sets the "display" field.
func (_u *EventUpdate) SetDisplay(v json.RawMessage) *EventUpdate {
	_u.mutation.SetDisplay(v)
	return _u
}

// AppendDisplay appends value to the "display" field.
func (_u *EventUpdate) AppendDisplay(v json.RawMessage) *EventUpdate {
	_u.mutation.AppendDisplay(v)
	return _u
}

// ClearDisplay clears the value of the "display" field.
func (_u *EventUpdate) ClearDisplay() *EventUpdate {
	_u.mutation.ClearDisplay()
	return _u
}

// SetData sets the "data" field.
func (_u *EventUpdate) SetData(v json.RawMessage) *EventUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *EventUpdate) AppendData(v json.RawMessage) *EventUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *EventUpdate) ClearData() *EventUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *EventUpdate) SetIdempotencyKey(v string) *EventUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *EventUpdate) SetNillableIdempotencyKey(v *string) *EventUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *EventUpdate) ClearIdempotencyKey() *EventUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetPrevEventHash sets the "prev_event_hash" field.
func (_u *EventUpdate) SetPrevEventHash(v string) *EventUpdate {
	_u.mutation.SetPrevEventHash(v)
	return _u
}

// SetNillablePrevEventHash sets the "prev_event_hash" field if the given value is not nil.
func (_u *EventUpdate) SetNillablePrevEventHash(v *string) *EventUpdate {
	if v != nil {
		_u.SetPrevEventHash(*v)
	}
	return _u
}

// ClearPrevEventHash clears the value of the "prev_event_hash" field.
func (_u *EventUpdate) ClearPrevEventHash() *EventUpdate {
	_u.mutation.ClearPrevEventHash()
	return _u
}

// SetEventHash sets the "event_hash" field.
func (_u *EventUpdate) SetEventHash(v string) *EventUpdate {
	_u.mutation.SetEventHash(v)
	return _u
}

// SetNillableEventHash sets the "event_hash" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventHash(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventHash(*v)
	}
	return _u
}

// ClearEventHash clears the value of the "event_hash" field.
func (_u *EventUpdate) ClearEventHash() *EventUpdate {
	_u.mutation.ClearEventHash()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.ActorType(); ok {
		if err := event.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Event.actor_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Zone(); ok {
		if err := event.ZoneValidator(v); err != nil {
			return &ValidationError{Name: "zone", err: fmt.Errorf(`ent: validator failed for field "Event.zone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreamType(); ok {
		if err := event.StreamTypeValidator(v); err != nil {
			return &ValidationError{Name: "stream_type", err: fmt.Errorf(`ent: validator failed for field "Event.stream_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RedactionLevel(); ok {
		if err := event.RedactionLevelValidator(v); err != nil {
			return &ValidationError{Name: "redaction_level", err: fmt.Errorf(`ent: validator failed for field "Event.redaction_level": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventVersion(); ok {
		_spec.SetField(event.FieldEventVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventVersion(); ok {
		_spec.AddField(event.FieldEventVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(event.FieldOccurredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(event.FieldRecordedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(event.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(event.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(event.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(event.FieldRoomID, field.TypeString, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(event.FieldRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(event.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(event.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(event.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(event.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(event.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(event.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(event.FieldActorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(event.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorPrincipalID(); ok {
		_spec.SetField(event.FieldActorPrincipalID, field.TypeString, value)
	}
	if _u.mutation.ActorPrincipalIDCleared() {
		_spec.ClearField(event.FieldActorPrincipalID, field.TypeString)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(event.FieldZone, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StreamType(); ok {
		_spec.SetField(event.FieldStreamType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StreamID(); ok {
		_spec.SetField(event.FieldStreamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreamSeq(); ok {
		_spec.SetField(event.FieldStreamSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStreamSeq(); ok {
		_spec.AddField(event.FieldStreamSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(event.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CausationID(); ok {
		_spec.SetField(event.FieldCausationID, field.TypeString, value)
	}
	if _u.mutation.CausationIDCleared() {
		_spec.ClearField(event.FieldCausationID, field.TypeString)
	}
	if value, ok := _u.mutation.RedactionLevel(); ok {
		_spec.SetField(event.FieldRedactionLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContainsSecrets(); ok {
		_spec.SetField(event.FieldContainsSecrets, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PolicyContext(); ok {
		_spec.SetField(event.FieldPolicyContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPolicyContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldPolicyContext, value)
		})
	}
	if _u.mutation.PolicyContextCleared() {
		_spec.ClearField(event.FieldPolicyContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelContext(); ok {
		_spec.SetField(event.FieldModelContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldModelContext, value)
		})
	}
	if _u.mutation.ModelContextCleared() {
		_spec.ClearField(event.FieldModelContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Display(); ok {
		_spec.SetField(event.FieldDisplay, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDisplay(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldDisplay, value)
		})
	}
	if _u.mutation.DisplayCleared() {
		_spec.ClearField(event.FieldDisplay, field.TypeJSON)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(event.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldData, value)
		})
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(event.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(event.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(event.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.PrevEventHash(); ok {
		_spec.SetField(event.FieldPrevEventHash, field.TypeString, value)
	}
	if _u.mutation.PrevEventHashCleared() {
		_spec.ClearField(event.FieldPrevEventHash, field.TypeString)
	}
	if value, ok := _u.mutation.EventHash(); ok {
		_spec.SetField(event.FieldEventHash, field.TypeString, value)
	}
	if _u.mutation.EventHashCleared() {
		_spec.ClearField(event.FieldEventHash, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetEventType sets the "event_type" field.
func (_u *EventUpdateOne) SetEventType(v string) *EventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventType(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventVersion sets the "event_version" field.
func (_u *EventUpdateOne) SetEventVersion(v int) *EventUpdateOne {
	_u.mutation.ResetEventVersion()
	_u.mutation.SetEventVersion(v)
	return _u
}

// SetNillableEventVersion sets the "event_version" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventVersion(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetEventVersion(*v)
	}
	return _u
}

// AddEventVersion adds value to the "event_version" field.
func (_u *EventUpdateOne) AddEventVersion(v int) *EventUpdateOne {
	_u.mutation.AddEventVersion(v)
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *EventUpdateOne) SetOccurredAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableOccurredAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *EventUpdateOne) SetRecordedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRecordedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *EventUpdateOne) SetWorkspaceID(v string) *EventUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableWorkspaceID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *EventUpdateOne) SetMissionID(v string) *EventUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableMissionID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *EventUpdateOne) ClearMissionID() *EventUpdateOne {
	_u.mutation.ClearMissionID()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *EventUpdateOne) SetRoomID(v string) *EventUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRoomID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *EventUpdateOne) ClearRoomID() *EventUpdateOne {
	_u.mutation.ClearRoomID()
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *EventUpdateOne) SetThreadID(v string) *EventUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableThreadID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *EventUpdateOne) ClearThreadID() *EventUpdateOne {
	_u.mutation.ClearThreadID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *EventUpdateOne) SetRunID(v string) *EventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRunID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *EventUpdateOne) ClearRunID() *EventUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *EventUpdateOne) SetStepID(v string) *EventUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStepID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *EventUpdateOne) ClearStepID() *EventUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetActorType sets the "actor_type" field.
func (_u *EventUpdateOne) SetActorType(v event.ActorType) *EventUpdateOne {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableActorType(v *event.ActorType) *EventUpdateOne {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *EventUpdateOne) SetActorID(v string) *EventUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableActorID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetActorPrincipalID sets the "actor_principal_id" field.
func (_u *EventUpdateOne) SetActorPrincipalID(v string) *EventUpdateOne {
	_u.mutation.SetActorPrincipalID(v)
	return _u
}

// SetNillableActorPrincipalID sets the "actor_principal_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableActorPrincipalID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetActorPrincipalID(*v)
	}
	return _u
}

// ClearActorPrincipalID clears the value of the "actor_principal_id" field.
func (_u *EventUpdateOne) ClearActorPrincipalID() *EventUpdateOne {
	_u.mutation.ClearActorPrincipalID()
	return _u
}

// SetZone sets the "zone" field.
func (_u *EventUpdateOne) SetZone(v event.Zone) *EventUpdateOne {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableZone(v *event.Zone) *EventUpdateOne {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// SetStreamType sets the "stream_type" field.
func (_u *EventUpdateOne) SetStreamType(v event.StreamType) *EventUpdateOne {
	_u.mutation.SetStreamType(v)
	return _u
}

// SetNillableStreamType sets the "stream_type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStreamType(v *event.StreamType) *EventUpdateOne {
	if v != nil {
		_u.SetStreamType(*v)
	}
	return _u
}

// SetStreamID sets the "stream_id" field.
func (_u *EventUpdateOne) SetStreamID(v string) *EventUpdateOne {
	_u.mutation.SetStreamID(v)
	return _u
}

// SetNillableStreamID sets the "stream_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStreamID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetStreamID(*v)
	}
	return _u
}

// SetStreamSeq sets the "stream_seq" field.
func (_u *EventUpdateOne) SetStreamSeq(v int64) *EventUpdateOne {
	_u.mutation.ResetStreamSeq()
	_u.mutation.SetStreamSeq(v)
	return _u
}

// SetNillableStreamSeq sets the "stream_seq" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStreamSeq(v *int64) *EventUpdateOne {
	if v != nil {
		_u.SetStreamSeq(*v)
	}
	return _u
}

// AddStreamSeq adds value to the "stream_seq" field.
func (_u *EventUpdateOne) AddStreamSeq(v int64) *EventUpdateOne {
	_u.mutation.AddStreamSeq(v)
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *EventUpdateOne) SetCorrelationID(v string) *EventUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableCorrelationID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetCausationID sets the "causation_id" field.
func (_u *EventUpdateOne) SetCausationID(v string) *EventUpdateOne {
	_u.mutation.SetCausationID(v)
	return _u
}

// SetNillableCausationID sets the "causation_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableCausationID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetCausationID(*v)
	}
	return _u
}

// ClearCausationID clears the value of the "causation_id" field.
func (_u *EventUpdateOne) ClearCausationID() *EventUpdateOne {
	_u.mutation.ClearCausationID()
	return _u
}

// SetRedactionLevel sets the "redaction_level" field.
func (_u *EventUpdateOne) SetRedactionLevel(v event.RedactionLevel) *EventUpdateOne {
	_u.mutation.SetRedactionLevel(v)
	return _u
}

// SetNillableRedactionLevel sets the "redaction_level" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRedactionLevel(v *event.RedactionLevel) *EventUpdateOne {
	if v != nil {
		_u.SetRedactionLevel(*v)
	}
	return _u
}

// SetContainsSecrets sets the "contains_secrets" field.
func (_u *EventUpdateOne) SetContainsSecrets(v bool) *EventUpdateOne {
	_u.mutation.SetContainsSecrets(v)
	return _u
}

// SetNillableContainsSecrets sets the "contains_secrets" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableContainsSecrets(v *bool) *EventUpdateOne {
	if v != nil {
		_u.SetContainsSecrets(*v)
	}
	return _u
}

// SetPolicyContext sets the "policy_context" field.
func (_u *EventUpdateOne) SetPolicyContext(v json.RawMessage) *EventUpdateOne {
	_u.mutation.SetPolicyContext(v)
	return _u
}

// AppendPolicyContext appends value to the "policy_context" field.
func (_u *EventUpdateOne) AppendPolicyContext(v json.RawMessage) *EventUpdateOne {
	_u.mutation.AppendPolicyContext(v)
	return _u
}

// ClearPolicyContext clears the value of the "policy_context" field.
func (_u *EventUpdateOne) ClearPolicyContext() *EventUpdateOne {
	_u.mutation.ClearPolicyContext()
	return _u
}

// SetModelContext sets the "model_context" field.
func (_u *EventUpdateOne) SetModelContext(v json.RawMessage) *EventUpdateOne {
	_u.mutation.SetModelContext(v)
	return _u
}

// AppendModelContext appends value to the "model_context" field.
func (_u *EventUpdateOne) AppendModelContext(v json.RawMessage) *EventUpdateOne {
	_u.mutation.AppendModelContext(v)
	return _u
}

// ClearModelContext clears the value of the "model_context" field.
func (_u *EventUpdateOne) ClearModelContext() *EventUpdateOne {
	_u.mutation.ClearModelContext()
	return _u
}

// SetDisplay sets the "display" field.
func (_u *EventUpdateOne) SetDisplay(v json.RawMessage) *EventUpdateOne {
	_u.mutation.SetDisplay(v)
	return _u
}

// AppendDisplay appends value to the "display" field.
func (_u *EventUpdateOne) AppendDisplay(v json.RawMessage) *EventUpdateOne {
	_u.mutation.AppendDisplay(v)
	return _u
}

// ClearDisplay clears the value of the "display" field.
func (_u *EventUpdateOne) ClearDisplay() *EventUpdateOne {
	_u.mutation.ClearDisplay()
	return _u
}

// SetData sets the "data" field.
func (_u *EventUpdateOne) SetData(v json.RawMessage) *EventUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *EventUpdateOne) AppendData(v json.RawMessage) *EventUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *EventUpdateOne) ClearData() *EventUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *EventUpdateOne) SetIdempotencyKey(v string) *EventUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableIdempotencyKey(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *EventUpdateOne) ClearIdempotencyKey() *EventUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetPrevEventHash sets the "prev_event_hash" field.
func (_u *EventUpdateOne) SetPrevEventHash(v string) *EventUpdateOne {
	_u.mutation.SetPrevEventHash(v)
	return _u
}

// SetNillablePrevEventHash sets the "prev_event_hash" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillablePrevEventHash(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetPrevEventHash(*v)
	}
	return _u
}

// ClearPrevEventHash clears the value of the "prev_event_hash" field.
func (_u *EventUpdateOne) ClearPrevEventHash() *EventUpdateOne {
	_u.mutation.ClearPrevEventHash()
	return _u
}

// SetEventHash sets the "event_hash" field.
func (_u *EventUpdateOne) SetEventHash(v string) *EventUpdateOne {
	_u.mutation.SetEventHash(v)
	return _u
}

// SetNillableEventHash sets the "event_hash" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventHash(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventHash(*v)
	}
	return _u
}

// ClearEventHash clears the value of the "event_hash" field.
func (_u *EventUpdateOne) ClearEventHash() *EventUpdateOne {
	_u.mutation.ClearEventHash()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.ActorType(); ok {
		if err := event.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Event.actor_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Zone(); ok {
		if err := event.ZoneValidator(v); err != nil {
			return &ValidationError{Name: "zone", err: fmt.Errorf(`ent: validator failed for field "Event.zone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreamType(); ok {
		if err := event.StreamTypeValidator(v); err != nil {
			return &ValidationError{Name: "stream_type", err: fmt.Errorf(`ent: validator failed for field "Event.stream_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RedactionLevel(); ok {
		if err := event.RedactionLevelValidator(v); err != nil {
			return &ValidationError{Name: "redaction_level", err: fmt.Errorf(`ent: validator failed for field "Event.redaction_level": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventVersion(); ok {
		_spec.SetField(event.FieldEventVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventVersion(); ok {
		_spec.AddField(event.FieldEventVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(event.FieldOccurredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(event.FieldRecordedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(event.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(event.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(event.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(event.FieldRoomID, field.TypeString, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(event.FieldRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(event.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(event.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(event.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(event.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(event.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(event.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(event.FieldActorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(event.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorPrincipalID(); ok {
		_spec.SetField(event.FieldActorPrincipalID, field.TypeString, value)
	}
	if _u.mutation.ActorPrincipalIDCleared() {
		_spec.ClearField(event.FieldActorPrincipalID, field.TypeString)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(event.FieldZone, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StreamType(); ok {
		_spec.SetField(event.FieldStreamType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StreamID(); ok {
		_spec.SetField(event.FieldStreamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreamSeq(); ok {
		_spec.SetField(event.FieldStreamSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStreamSeq(); ok {
		_spec.AddField(event.FieldStreamSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(event.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CausationID(); ok {
		_spec.SetField(event.FieldCausationID, field.TypeString, value)
	}
	if _u.mutation.CausationIDCleared() {
		_spec.ClearField(event.FieldCausationID, field.TypeString)
	}
	if value, ok := _u.mutation.RedactionLevel(); ok {
		_spec.SetField(event.FieldRedactionLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContainsSecrets(); ok {
		_spec.SetField(event.FieldContainsSecrets, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PolicyContext(); ok {
		_spec.SetField(event.FieldPolicyContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPolicyContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldPolicyContext, value)
		})
	}
	if _u.mutation.PolicyContextCleared() {
		_spec.ClearField(event.FieldPolicyContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelContext(); ok {
		_spec.SetField(event.FieldModelContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldModelContext, value)
		})
	}
	if _u.mutation.ModelContextCleared() {
		_spec.ClearField(event.FieldModelContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Display(); ok {
		_spec.SetField(event.FieldDisplay, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDisplay(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldDisplay, value)
		})
	}
	if _u.mutation.DisplayCleared() {
		_spec.ClearField(event.FieldDisplay, field.TypeJSON)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(event.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldData, value)
		})
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(event.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(event.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(event.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.PrevEventHash(); ok {
		_spec.SetField(event.FieldPrevEventHash, field.TypeString, value)
	}
	if _u.mutation.PrevEventHashCleared() {
		_spec.ClearField(event.FieldPrevEventHash, field.TypeString)
	}
	if value, ok := _u.mutation.EventHash(); ok {
		_spec.SetField(event.FieldEventHash, field.TypeString, value)
	}
	if _u.mutation.EventHashCleared() {
		_spec.ClearField(event.FieldEventHash, field.TypeString)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
