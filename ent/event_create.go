// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/event"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventType sets the "event_type" field.
func (_c *EventCreate) SetEventType(v string) *EventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventVersion sets the "event_version" field.
func (_c *EventCreate) SetEventVersion(v int) *EventCreate {
	_c.mutation.SetEventVersion(v)
	return _c
}

// SetNillableEventVersion sets the "event_version" field if the given value is not nil.
func (_c *EventCreate) SetNillableEventVersion(v *int) *EventCreate {
	if v != nil {
		_c.SetEventVersion(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *EventCreate) SetOccurredAt(v time.Time) *EventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *EventCreate) SetRecordedAt(v time.Time) *EventCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *EventCreate) SetWorkspaceID(v string) *EventCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetMissionID sets the "mission_id" field.
func (_c *EventCreate) SetMissionID(v string) *EventCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableMissionID(v *string) *EventCreate {
	if v != nil {
		_c.SetMissionID(*v)
	}
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *EventCreate) SetRoomID(v string) *EventCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableRoomID(v *string) *EventCreate {
	if v != nil {
		_c.SetRoomID(*v)
	}
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *EventCreate) SetThreadID(v string) *EventCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableThreadID(v *string) *EventCreate {
	if v != nil {
		_c.SetThreadID(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *EventCreate) SetRunID(v string) *EventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableRunID(v *string) *EventCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *EventCreate) SetStepID(v string) *EventCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableStepID(v *string) *EventCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetActorType sets the "actor_type" field.
func (_c *EventCreate) SetActorType(v event.ActorType) *EventCreate {
	_c.mutation.SetActorType(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *EventCreate) SetActorID(v string) *EventCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetActorPrincipalID sets the "actor_principal_id" field.
func (_c *EventCreate) SetActorPrincipalID(v string) *EventCreate {
	_c.mutation.SetActorPrincipalID(v)
	return _c
}

// SetNillableActorPrincipalID sets the "actor_principal_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableActorPrincipalID(v *string) *EventCreate {
	if v != nil {
		_c.SetActorPrincipalID(*v)
	}
	return _c
}

// SetZone sets the "zone" field.
func (_c *EventCreate) SetZone(v event.Zone) *EventCreate {
	_c.mutation.SetZone(v)
	return _c
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_c *EventCreate) SetNillableZone(v *event.Zone) *EventCreate {
	if v != nil {
		_c.SetZone(*v)
	}
	return _c
}

// SetStreamType sets the "stream_type" field.
func (_c *EventCreate) SetStreamType(v event.StreamType) *EventCreate {
	_c.mutation.SetStreamType(v)
	return _c
}

// SetStreamID sets the "stream_id" field.
func (_c *EventCreate) SetStreamID(v string) *EventCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetStreamSeq sets the "stream_seq" field.
func (_c *EventCreate) SetStreamSeq(v int64) *EventCreate {
	_c.mutation.SetStreamSeq(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *EventCreate) SetCorrelationID(v string) *EventCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetCausationID sets the "causation_id" field.
func (_c *EventCreate) SetCausationID(v string) *EventCreate {
	_c.mutation.SetCausationID(v)
	return _c
}

// SetNillableCausationID sets the "causation_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableCausationID(v *string) *EventCreate {
	if v != nil {
		_c.SetCausationID(*v)
	}
	return _c
}

// SetRedactionLevel sets the "redaction_level" field.
func (_c *EventCreate) SetRedactionLevel(v event.RedactionLevel) *EventCreate {
	_c.mutation.SetRedactionLevel(v)
	return _c
}

// SetNillableRedactionLevel sets the "redaction_level" field if the given value is not nil.
func (_c *EventCreate) SetNillableRedactionLevel(v *event.RedactionLevel) *EventCreate {
	if v != nil {
		_c.SetRedactionLevel(*v)
	}
	return _c
}

// SetContainsSecrets sets the "contains_secrets" field.
func (_c *EventCreate) SetContainsSecrets(v bool) *EventCreate {
	_c.mutation.SetContainsSecrets(v)
	return _c
}

// SetNillableContainsSecrets sets the "contains_secrets" field if the given value is not nil.
func (_c *EventCreate) SetNillableContainsSecrets(v *bool) *EventCreate {
	if v != nil {
		_c.SetContainsSecrets(*v)
	}
	return _c
}

// SetPolicyContext sets the "policy_context" field.
func (_c *EventCreate) SetPolicyContext(v json.RawMessage) *EventCreate {
	_c.mutation.SetPolicyContext(v)
	return _c
}

// SetModelContext sets the "model_context" field.
func (_c *EventCreate) SetModelContext(v json.RawMessage) *EventCreate {
	_c.mutation.SetModelContext(v)
	return _c
}

// SetDisplay sets the "display" field.
func (_c *EventCreate) SetDisplay(v json.RawMessage) *EventCreate {
	_c.mutation.SetDisplay(v)
	return _c
}

// SetData sets the "data" field.
func (_c *EventCreate) SetData(v json.RawMessage) *EventCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *EventCreate) SetIdempotencyKey(v string) *EventCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *EventCreate) SetNillableIdempotencyKey(v *string) *EventCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetPrevEventHash sets the "prev_event_hash" field.
func (_c *EventCreate) SetPrevEventHash(v string) *EventCreate {
	_c.mutation.SetPrevEventHash(v)
	return _c
}

// SetNillablePrevEventHash sets the "prev_event_hash" field if the given value is not nil.
func (_c *EventCreate) SetNillablePrevEventHash(v *string) *EventCreate {
	if v != nil {
		_c.SetPrevEventHash(*v)
	}
	return _c
}

// SetEventHash sets the "event_hash" field.
func (_c *EventCreate) SetEventHash(v string) *EventCreate {
	_c.mutation.SetEventHash(v)
	return _c
}

// SetNillableEventHash sets the "event_hash" field if the given value is not nil.
func (_c *EventCreate) SetNillableEventHash(v *string) *EventCreate {
	if v != nil {
		_c.SetEventHash(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v string) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.EventVersion(); !ok {
		v := event.DefaultEventVersion
		_c.mutation.SetEventVersion(v)
	}
	if _, ok := _c.mutation.Zone(); !ok {
		v := event.DefaultZone
		_c.mutation.SetZone(v)
	}
	if _, ok := _c.mutation.RedactionLevel(); !ok {
		v := event.DefaultRedactionLevel
		_c.mutation.SetRedactionLevel(v)
	}
	if _, ok := _c.mutation.ContainsSecrets(); !ok {
		v := event.DefaultContainsSecrets
		_c.mutation.SetContainsSecrets(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "Event.event_type"`)}
	}
	if _, ok := _c.mutation.EventVersion(); !ok {
		return &ValidationError{Name: "event_version", err: errors.New(`ent: missing required field "Event.event_version"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "Event.occurred_at"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "Event.recorded_at"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Event.workspace_id"`)}
	}
	if _, ok := _c.mutation.ActorType(); !ok {
		return &ValidationError{Name: "actor_type", err: errors.New(`ent: missing required field "Event.actor_type"`)}
	}
	if v, ok := _c.mutation.ActorType(); ok {
		if err := event.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Event.actor_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "Event.actor_id"`)}
	}
	if _, ok := _c.mutation.Zone(); !ok {
		return &ValidationError{Name: "zone", err: errors.New(`ent: missing required field "Event.zone"`)}
	}
	if v, ok := _c.mutation.Zone(); ok {
		if err := event.ZoneValidator(v); err != nil {
			return &ValidationError{Name: "zone", err: fmt.Errorf(`ent: validator failed for field "Event.zone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreamType(); !ok {
		return &ValidationError{Name: "stream_type", err: errors.New(`ent: missing required field "Event.stream_type"`)}
	}
	if v, ok := _c.mutation.StreamType(); ok {
		if err := event.StreamTypeValidator(v); err != nil {
			return &ValidationError{Name: "stream_type", err: fmt.Errorf(`ent: validator failed for field "Event.stream_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "Event.stream_id"`)}
	}
	if _, ok := _c.mutation.StreamSeq(); !ok {
		return &ValidationError{Name: "stream_seq", err: errors.New(`ent: missing required field "Event.stream_seq"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Event.correlation_id"`)}
	}
	if _, ok := _c.mutation.RedactionLevel(); !ok {
		return &ValidationError{Name: "redaction_level", err: errors.New(`ent: missing required field "Event.redaction_level"`)}
	}
	if v, ok := _c.mutation.RedactionLevel(); ok {
		if err := event.RedactionLevelValidator(v); err != nil {
			return &ValidationError{Name: "redaction_level", err: fmt.Errorf(`ent: validator failed for field "Event.redaction_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContainsSecrets(); !ok {
		return &ValidationError{Name: "contains_secrets", err: errors.New(`ent: missing required field "Event.contains_secrets"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Event.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventVersion(); ok {
		_spec.SetField(event.FieldEventVersion, field.TypeInt, value)
		_node.EventVersion = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(event.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(event.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(event.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.MissionID(); ok {
		_spec.SetField(event.FieldMissionID, field.TypeString, value)
		_node.MissionID = &value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(event.FieldRoomID, field.TypeString, value)
		_node.RoomID = &value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(event.FieldThreadID, field.TypeString, value)
		_node.ThreadID = &value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(event.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(event.FieldStepID, field.TypeString, value)
		_node.StepID = &value
	}
	if value, ok := _c.mutation.ActorType(); ok {
		_spec.SetField(event.FieldActorType, field.TypeEnum, value)
		_node.ActorType = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(event.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.ActorPrincipalID(); ok {
		_spec.SetField(event.FieldActorPrincipalID, field.TypeString, value)
		_node.ActorPrincipalID = &value
	}
	if value, ok := _c.mutation.Zone(); ok {
		_spec.SetField(event.FieldZone, field.TypeEnum, value)
		_node.Zone = value
	}
	if value, ok := _c.mutation.StreamType(); ok {
		_spec.SetField(event.FieldStreamType, field.TypeEnum, value)
		_node.StreamType = value
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(event.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.StreamSeq(); ok {
		_spec.SetField(event.FieldStreamSeq, field.TypeInt64, value)
		_node.StreamSeq = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(event.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.CausationID(); ok {
		_spec.SetField(event.FieldCausationID, field.TypeString, value)
		_node.CausationID = &value
	}
	if value, ok := _c.mutation.RedactionLevel(); ok {
		_spec.SetField(event.FieldRedactionLevel, field.TypeEnum, value)
		_node.RedactionLevel = value
	}
	if value, ok := _c.mutation.ContainsSecrets(); ok {
		_spec.SetField(event.FieldContainsSecrets, field.TypeBool, value)
		_node.ContainsSecrets = value
	}
	if value, ok := _c.mutation.PolicyContext(); ok {
		_spec.SetField(event.FieldPolicyContext, field.TypeJSON, value)
		_node.PolicyContext = value
	}
	if value, ok := _c.mutation.ModelContext(); ok {
		_spec.SetField(event.FieldModelContext, field.TypeJSON, value)
		_node.ModelContext = value
	}
	if value, ok := _c.mutation.Display(); ok {
		_spec.SetField(event.FieldDisplay, field.TypeJSON, value)
		_node.Display = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(event.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(event.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.PrevEventHash(); ok {
		_spec.SetField(event.FieldPrevEventHash, field.TypeString, value)
		_node.PrevEventHash = &value
	}
	if value, ok := _c.mutation.EventHash(); ok {
		_spec.SetField(event.FieldEventHash, field.TypeString, value)
		_node.EventHash = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetEventType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventType sets the "event_type" field.
func (u *EventUpsert) SetEventType(v string) *EventUpsert {
	u.Set(event.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventType() *EventUpsert {
	u.SetExcluded(event.FieldEventType)
	return u
}

// SetEventVersion sets the "event_version" field.
func (u *EventUpsert) SetEventVersion(v int) *EventUpsert {
	u.Set(event.FieldEventVersion, v)
	return u
}

// UpdateEventVersion sets the "event_version" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventVersion() *EventUpsert {
	u.SetExcluded(event.FieldEventVersion)
	return u
}

// AddEventVersion adds v to the "event_version" field.
func (u *EventUpsert) AddEventVersion(v int) *EventUpsert {
	u.Add(event.FieldEventVersion, v)
	return u
}

// SetOccurredAt sets the "occurred_at" field.
func (u *EventUpsert) SetOccurredAt(v time.Time) *EventUpsert {
	u.Set(event.FieldOccurredAt, v)
	return u
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateOccurredAt() *EventUpsert {
	u.SetExcluded(event.FieldOccurredAt)
	return u
}

// SetRecordedAt sets the "recorded_at" field.
func (u *EventUpsert) SetRecordedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldRecordedAt, v)
	return u
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateRecordedAt() *EventUpsert {
	u.SetExcluded(event.FieldRecordedAt)
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *EventUpsert) SetWorkspaceID(v string) *EventUpsert {
	u.Set(event.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateWorkspaceID() *EventUpsert {
	u.SetExcluded(event.FieldWorkspaceID)
	return u
}

// SetMissionID sets the "mission_id" field.
func (u *EventUpsert) SetMissionID(v string) *EventUpsert {
	u.Set(event.FieldMissionID, v)
	return u
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateMissionID() *EventUpsert {
	u.SetExcluded(event.FieldMissionID)
	return u
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *EventUpsert) ClearMissionID() *EventUpsert {
	u.SetNull(event.FieldMissionID)
	return u
}

// SetRoomID sets the "room_id" field.
func (u *EventUpsert) SetRoomID(v string) *EventUpsert {
	u.Set(event.FieldRoomID, v)
	return u
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateRoomID() *EventUpsert {
	u.SetExcluded(event.FieldRoomID)
	return u
}

// ClearRoomID clears the value of the "room_id" field.
func (u *EventUpsert) ClearRoomID() *EventUpsert {
	u.SetNull(event.FieldRoomID)
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *EventUpsert) SetThreadID(v string) *EventUpsert {
	u.Set(event.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateThreadID() *EventUpsert {
	u.SetExcluded(event.FieldThreadID)
	return u
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *EventUpsert) ClearThreadID() *EventUpsert {
	u.SetNull(event.FieldThreadID)
	return u
}

// SetRunID sets the "run_id" field.
func (u *EventUpsert) SetRunID(v string) *EventUpsert {
	u.Set(event.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateRunID() *EventUpsert {
	u.SetExcluded(event.FieldRunID)
	return u
}

// ClearRunID clears the value of the "run_id" field.
func (u *EventUpsert) ClearRunID() *EventUpsert {
	u.SetNull(event.FieldRunID)
	return u
}

// SetStepID sets the "step_id" field.
func (u *EventUpsert) SetStepID(v string) *EventUpsert {
	u.Set(event.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateStepID() *EventUpsert {
	u.SetExcluded(event.FieldStepID)
	return u
}

// ClearStepID clears the value of the "step_id" field.
func (u *EventUpsert) ClearStepID() *EventUpsert {
	u.SetNull(event.FieldStepID)
	return u
}

// SetActorType sets the "actor_type" field.
func (u *EventUpsert) SetActorType(v event.ActorType) *EventUpsert {
	u.Set(event.FieldActorType, v)
	return u
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *EventUpsert) UpdateActorType() *EventUpsert {
	u.SetExcluded(event.FieldActorType)
	return u
}

// SetActorID sets the "actor_id" field.
func (u *EventUpsert) SetActorID(v string) *EventUpsert {
	u.Set(event.FieldActorID, v)
	return u
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateActorID() *EventUpsert {
	u.SetExcluded(event.FieldActorID)
	return u
}

// SetActorPrincipalID sets the "actor_principal_id" field.
func (u *EventUpsert) SetActorPrincipalID(v string) *EventUpsert {
	u.Set(event.FieldActorPrincipalID, v)
	return u
}

// UpdateActorPrincipalID sets the "actor_principal_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateActorPrincipalID() *EventUpsert {
	u.SetExcluded(event.FieldActorPrincipalID)
	return u
}

// ClearActorPrincipalID clears the value of the "actor_principal_id" field.
func (u *EventUpsert) ClearActorPrincipalID() *EventUpsert {
	u.SetNull(event.FieldActorPrincipalID)
	return u
}

// SetZone sets the "zone" field.
func (u *EventUpsert) SetZone(v event.Zone) *EventUpsert {
	u.Set(event.FieldZone, v)
	return u
}

// UpdateZone sets the "zone" field to the value that was provided on create.
func (u *EventUpsert) UpdateZone() *EventUpsert {
	u.SetExcluded(event.FieldZone)
	return u
}

// SetStreamType sets the "stream_type" field.
func (u *EventUpsert) SetStreamType(v event.StreamType) *EventUpsert {
	u.Set(event.FieldStreamType, v)
	return u
}

// UpdateStreamType sets the "stream_type" field to the value that was provided on create.
func (u *EventUpsert) UpdateStreamType() *EventUpsert {
	u.SetExcluded(event.FieldStreamType)
	return u
}

// SetStreamID sets the "stream_id" field.
func (u *EventUpsert) SetStreamID(v string) *EventUpsert {
	u.Set(event.FieldStreamID, v)
	return u
}

// UpdateStreamID sets the "stream_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateStreamID() *EventUpsert {
	u.SetExcluded(event.FieldStreamID)
	return u
}

// SetStreamSeq sets the "stream_seq" field.
func (u *EventUpsert) SetStreamSeq(v int64) *EventUpsert {
	u.Set(event.FieldStreamSeq, v)
	return u
}

// UpdateStreamSeq sets the "stream_seq" field to the value that was provided on create.
func (u *EventUpsert) UpdateStreamSeq() *EventUpsert {
	u.SetExcluded(event.FieldStreamSeq)
	return u
}

// AddStreamSeq adds v to the "stream_seq" field.
func (u *EventUpsert) AddStreamSeq(v int64) *EventUpsert {
	u.Add(event.FieldStreamSeq, v)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *EventUpsert) SetCorrelationID(v string) *EventUpsert {
	u.Set(event.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateCorrelationID() *EventUpsert {
	u.SetExcluded(event.FieldCorrelationID)
	return u
}

// SetCausationID sets the "causation_id" field.
func (u *EventUpsert) SetCausationID(v string) *EventUpsert {
	u.Set(event.FieldCausationID, v)
	return u
}

// UpdateCausationID sets the "causation_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateCausationID() *EventUpsert {
	u.SetExcluded(event.FieldCausationID)
	return u
}

// ClearCausationID clears the value of the "causation_id" field.
func (u *EventUpsert) ClearCausationID() *EventUpsert {
	u.SetNull(event.FieldCausationID)
	return u
}

// SetRedactionLevel sets the "redaction_level" field.
func (u *EventUpsert) SetRedactionLevel(v event.RedactionLevel) *EventUpsert {
	u.Set(event.FieldRedactionLevel, v)
	return u
}

// UpdateRedactionLevel sets the "redaction_level" field to the value that was provided on create.
func (u *EventUpsert) UpdateRedactionLevel() *EventUpsert {
	u.SetExcluded(event.FieldRedactionLevel)
	return u
}

// SetContainsSecrets sets the "contains_secrets" field.
func (u *EventUpsert) SetContainsSecrets(v bool) *EventUpsert {
	u.Set(event.FieldContainsSecrets, v)
	return u
}

// UpdateContainsSecrets sets the "contains_secrets" field to the value that was provided on create.
func (u *EventUpsert) UpdateContainsSecrets() *EventUpsert {
	u.SetExcluded(event.FieldContainsSecrets)
	return u
}

// SetPolicyContext sets the "policy_context" field.
func (u *EventUpsert) SetPolicyContext(v json.RawMessage) *EventUpsert {
	u.Set(event.FieldPolicyContext, v)
	return u
}

// UpdatePolicyContext sets the "policy_context" field to the value that was provided on create.
func (u *EventUpsert) UpdatePolicyContext() *EventUpsert {
	u.SetExcluded(event.FieldPolicyContext)
	return u
}

// ClearPolicyContext clears the value of the "policy_context" field.
func (u *EventUpsert) ClearPolicyContext() *EventUpsert {
	u.SetNull(event.FieldPolicyContext)
	return u
}

// SetModelContext sets the "model_context" field.
func (u *EventUpsert) SetModelContext(v json.RawMessage) *EventUpsert {
	u.Set(event.FieldModelContext, v)
	return u
}

// UpdateModelContext sets the "model_context" field to the value that was provided on create.
func (u *EventUpsert) UpdateModelContext() *EventUpsert {
	u.SetExcluded(event.FieldModelContext)
	return u
}

// ClearModelContext clears the value of the "model_context" field.
func (u *EventUpsert) ClearModelContext() *EventUpsert {
	u.SetNull(event.FieldModelContext)
	return u
}

// SetDisplay sets the "display" field.
func (u *EventUpsert) SetDisplay(v json.RawMessage) *EventUpsert {
	u.Set(event.FieldDisplay, v)
	return u
}

// UpdateDisplay sets the "display" field to the value that was provided on create.
func (u *EventUpsert) UpdateDisplay() *EventUpsert {
	u.SetExcluded(event.FieldDisplay)
	return u
}

// ClearDisplay clears the value of the "display" field.
func (u *EventUpsert) ClearDisplay() *EventUpsert {
	u.SetNull(event.FieldDisplay)
	return u
}

// SetData sets the "data" field.
func (u *EventUpsert) SetData(v json.RawMessage) *EventUpsert {
	u.Set(event.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *EventUpsert) UpdateData() *EventUpsert {
	u.SetExcluded(event.FieldData)
	return u
}

// ClearData clears the value of the "data" field.
func (u *EventUpsert) ClearData() *EventUpsert {
	u.SetNull(event.FieldData)
	return u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *EventUpsert) SetIdempotencyKey(v string) *EventUpsert {
	u.Set(event.FieldIdempotencyKey, v)
	return u
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *EventUpsert) UpdateIdempotencyKey() *EventUpsert {
	u.SetExcluded(event.FieldIdempotencyKey)
	return u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *EventUpsert) ClearIdempotencyKey() *EventUpsert {
	u.SetNull(event.FieldIdempotencyKey)
	return u
}

// SetPrevEventHash sets the "prev_event_hash" field.
func (u *EventUpsert) SetPrevEventHash(v string) *EventUpsert {
	u.Set(event.FieldPrevEventHash, v)
	return u
}

// UpdatePrevEventHash sets the "prev_event_hash" field to the value that was provided on create.
func (u *EventUpsert) UpdatePrevEventHash() *EventUpsert {
	u.SetExcluded(event.FieldPrevEventHash)
	return u
}

// ClearPrevEventHash clears the value of the "prev_event_hash" field.
func (u *EventUpsert) ClearPrevEventHash() *EventUpsert {
	u.SetNull(event.FieldPrevEventHash)
	return u
}

// SetEventHash sets the "event_hash" field.
func (u *EventUpsert) SetEventHash(v string) *EventUpsert {
	u.Set(event.FieldEventHash, v)
	return u
}

// UpdateEventHash sets the "event_hash" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventHash() *EventUpsert {
	u.SetExcluded(event.FieldEventHash)
	return u
}

// ClearEventHash clears the value of the "event_hash" field.
func (u *EventUpsert) ClearEventHash() *EventUpsert {
	u.SetNull(event.FieldEventHash)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(event.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *EventUpsertOne) SetEventType(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventType()
	})
}

// SetEventVersion sets the "event_version" field.
func (u *EventUpsertOne) SetEventVersion(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventVersion(v)
	})
}

// AddEventVersion adds v to the "event_version" field.
func (u *EventUpsertOne) AddEventVersion(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddEventVersion(v)
	})
}

// UpdateEventVersion sets the "event_version" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventVersion() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventVersion()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *EventUpsertOne) SetOccurredAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateOccurredAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateOccurredAt()
	})
}

// SetRecordedAt sets the "recorded_at" field.
func (u *EventUpsertOne) SetRecordedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRecordedAt(v)
	})
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRecordedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRecordedAt()
	})
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *EventUpsertOne) SetWorkspaceID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateWorkspaceID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetMissionID sets the "mission_id" field.
func (u *EventUpsertOne) SetMissionID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateMissionID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMissionID()
	})
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *EventUpsertOne) ClearMissionID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearMissionID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *EventUpsertOne) SetRoomID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRoomID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *EventUpsertOne) ClearRoomID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearRoomID()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *EventUpsertOne) SetThreadID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateThreadID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *EventUpsertOne) ClearThreadID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearThreadID()
	})
}

// SetRunID sets the "run_id" field.
func (u *EventUpsertOne) SetRunID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRunID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *EventUpsertOne) ClearRunID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearRunID()
	})
}

// SetStepID sets the "step_id" field.
func (u *EventUpsertOne) SetStepID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStepID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *EventUpsertOne) ClearStepID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearStepID()
	})
}

// SetActorType sets the "actor_type" field.
func (u *EventUpsertOne) SetActorType(v event.ActorType) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateActorType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateActorType()
	})
}

// SetActorID sets the "actor_id" field.
func (u *EventUpsertOne) SetActorID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateActorID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateActorID()
	})
}

// SetActorPrincipalID sets the "actor_principal_id" field.
func (u *EventUpsertOne) SetActorPrincipalID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetActorPrincipalID(v)
	})
}

// UpdateActorPrincipalID sets the "actor_principal_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateActorPrincipalID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateActorPrincipalID()
	})
}

// ClearActorPrincipalID clears the value of the "actor_principal_id" field.
func (u *EventUpsertOne) ClearActorPrincipalID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearActorPrincipalID()
	})
}

// SetZone sets the "zone" field.
func (u *EventUpsertOne) SetZone(v event.Zone) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetZone(v)
	})
}

// UpdateZone sets the "zone" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateZone() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateZone()
	})
}

// SetStreamType sets the "stream_type" field.
func (u *EventUpsertOne) SetStreamType(v event.StreamType) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStreamType(v)
	})
}

// UpdateStreamType sets the "stream_type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStreamType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStreamType()
	})
}

// SetStreamID sets the "stream_id" field.
func (u *EventUpsertOne) SetStreamID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStreamID(v)
	})
}

// UpdateStreamID sets the "stream_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStreamID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStreamID()
	})
}

// SetStreamSeq sets the "stream_seq" field.
func (u *EventUpsertOne) SetStreamSeq(v int64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStreamSeq(v)
	})
}

// AddStreamSeq adds v to the "stream_seq" field.
func (u *EventUpsertOne) AddStreamSeq(v int64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddStreamSeq(v)
	})
}

// UpdateStreamSeq sets the "stream_seq" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStreamSeq() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStreamSeq()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *EventUpsertOne) SetCorrelationID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateCorrelationID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetCausationID sets the "causation_id" field.
func (u *EventUpsertOne) SetCausationID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetCausationID(v)
	})
}

// UpdateCausationID sets the "causation_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateCausationID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCausationID()
	})
}

// ClearCausationID clears the value of the "causation_id" field.
func (u *EventUpsertOne) ClearCausationID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearCausationID()
	})
}

// SetRedactionLevel sets the "redaction_level" field.
func (u *EventUpsertOne) SetRedactionLevel(v event.RedactionLevel) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRedactionLevel(v)
	})
}

// UpdateRedactionLevel sets the "redaction_level" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRedactionLevel() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRedactionLevel()
	})
}

// SetContainsSecrets sets the "contains_secrets" field.
func (u *EventUpsertOne) SetContainsSecrets(v bool) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetContainsSecrets(v)
	})
}

// UpdateContainsSecrets sets the "contains_secrets" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateContainsSecrets() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateContainsSecrets()
	})
}

// SetPolicyContext sets the "policy_context" field.
func (u *EventUpsertOne) SetPolicyContext(v json.RawMessage) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetPolicyContext(v)
	})
}

// UpdatePolicyContext sets the "policy_context" field to the value that was provided on create.
func (u *EventUpsertOne) UpdatePolicyContext() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePolicyContext()
	})
}

// ClearPolicyContext clears the value of the "policy_context" field.
func (u *EventUpsertOne) ClearPolicyContext() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearPolicyContext()
	})
}

// SetModelContext sets the "model_context" field.
func (u *EventUpsertOne) SetModelContext(v json.RawMessage) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetModelContext(v)
	})
}

// UpdateModelContext sets the "model_context" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateModelContext() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateModelContext()
	})
}

// ClearModelContext clears the value of the "model_context" field.
func (u *EventUpsertOne) ClearModelContext() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearModelContext()
	})
}

// SetDisplay sets the "display" field.
func (u *EventUpsertOne) SetDisplay(v json.RawMessage) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetDisplay(v)
	})
}

// UpdateDisplay sets the "display" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateDisplay() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDisplay()
	})
}

// ClearDisplay clears the value of the "display" field.
func (u *EventUpsertOne) ClearDisplay() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearDisplay()
	})
}

// SetData sets the "data" field.
func (u *EventUpsertOne) SetData(v json.RawMessage) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateData() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *EventUpsertOne) ClearData() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearData()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *EventUpsertOne) SetIdempotencyKey(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateIdempotencyKey() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *EventUpsertOne) ClearIdempotencyKey() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearIdempotencyKey()
	})
}

// SetPrevEventHash sets the "prev_event_hash" field.
func (u *EventUpsertOne) SetPrevEventHash(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetPrevEventHash(v)
	})
}

// UpdatePrevEventHash sets the "prev_event_hash" field to the value that was provided on create.
func (u *EventUpsertOne) UpdatePrevEventHash() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePrevEventHash()
	})
}

// ClearPrevEventHash clears the value of the "prev_event_hash" field.
func (u *EventUpsertOne) ClearPrevEventHash() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearPrevEventHash()
	})
}

// SetEventHash sets the "event_hash" field.
func (u *EventUpsertOne) SetEventHash(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventHash(v)
	})
}

// UpdateEventHash sets the "event_hash" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventHash() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventHash()
	})
}

// ClearEventHash clears the value of the "event_hash" field.
func (u *EventUpsertOne) ClearEventHash() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearEventHash()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventUpsertOne.ID is not supported by MySQL driver. Use EventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(event.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *EventUpsertBulk) SetEventType(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventType()
	})
}

// SetEventVersion sets the "event_version" field.
func (u *EventUpsertBulk) SetEventVersion(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventVersion(v)
	})
}

// AddEventVersion adds v to the "event_version" field.
func (u *EventUpsertBulk) AddEventVersion(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddEventVersion(v)
	})
}

// UpdateEventVersion sets the "event_version" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventVersion() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventVersion()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *EventUpsertBulk) SetOccurredAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateOccurredAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateOccurredAt()
	})
}

// SetRecordedAt sets the "recorded_at" field.
func (u *EventUpsertBulk) SetRecordedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRecordedAt(v)
	})
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRecordedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRecordedAt()
	})
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *EventUpsertBulk) SetWorkspaceID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateWorkspaceID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetMissionID sets the "mission_id" field.
func (u *EventUpsertBulk) SetMissionID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateMissionID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMissionID()
	})
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *EventUpsertBulk) ClearMissionID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearMissionID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *EventUpsertBulk) SetRoomID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRoomID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *EventUpsertBulk) ClearRoomID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearRoomID()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *EventUpsertBulk) SetThreadID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateThreadID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *EventUpsertBulk) ClearThreadID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearThreadID()
	})
}

// SetRunID sets the "run_id" field.
func (u *EventUpsertBulk) SetRunID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRunID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *EventUpsertBulk) ClearRunID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearRunID()
	})
}

// SetStepID sets the "step_id" field.
func (u *EventUpsertBulk) SetStepID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStepID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *EventUpsertBulk) ClearStepID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearStepID()
	})
}

// SetActorType sets the "actor_type" field.
func (u *EventUpsertBulk) SetActorType(v event.ActorType) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateActorType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateActorType()
	})
}

// SetActorID sets the "actor_id" field.
func (u *EventUpsertBulk) SetActorID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateActorID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateActorID()
	})
}

// SetActorPrincipalID sets the "actor_principal_id" field.
func (u *EventUpsertBulk) SetActorPrincipalID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetActorPrincipalID(v)
	})
}

// UpdateActorPrincipalID sets the "actor_principal_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateActorPrincipalID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateActorPrincipalID()
	})
}

// ClearActorPrincipalID clears the value of the "actor_principal_id" field.
func (u *EventUpsertBulk) ClearActorPrincipalID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearActorPrincipalID()
	})
}

// SetZone sets the "zone" field.
func (u *EventUpsertBulk) SetZone(v event.Zone) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetZone(v)
	})
}

// UpdateZone sets the "zone" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateZone() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateZone()
	})
}

// SetStreamType sets the "stream_type" field.
func (u *EventUpsertBulk) SetStreamType(v event.StreamType) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStreamType(v)
	})
}

// UpdateStreamType sets the "stream_type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStreamType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStreamType()
	})
}

// SetStreamID sets the "stream_id" field.
func (u *EventUpsertBulk) SetStreamID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStreamID(v)
	})
}

// UpdateStreamID sets the "stream_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStreamID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStreamID()
	})
}

// SetStreamSeq sets the "stream_seq" field.
func (u *EventUpsertBulk) SetStreamSeq(v int64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStreamSeq(v)
	})
}

// AddStreamSeq adds v to the "stream_seq" field.
func (u *EventUpsertBulk) AddStreamSeq(v int64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddStreamSeq(v)
	})
}

// UpdateStreamSeq sets the "stream_seq" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStreamSeq() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStreamSeq()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *EventUpsertBulk) SetCorrelationID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateCorrelationID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetCausationID sets the "causation_id" field.
func (u *EventUpsertBulk) SetCausationID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetCausationID(v)
	})
}

// UpdateCausationID sets the "causation_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateCausationID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCausationID()
	})
}

// ClearCausationID clears the value of the "causation_id" field.
func (u *EventUpsertBulk) ClearCausationID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearCausationID()
	})
}

// SetRedactionLevel sets the "redaction_level" field.
func (u *EventUpsertBulk) SetRedactionLevel(v event.RedactionLevel) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRedactionLevel(v)
	})
}

// UpdateRedactionLevel sets the "redaction_level" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRedactionLevel() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRedactionLevel()
	})
}

// SetContainsSecrets sets the "contains_secrets" field.
func (u *EventUpsertBulk) SetContainsSecrets(v bool) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetContainsSecrets(v)
	})
}

// UpdateContainsSecrets sets the "contains_secrets" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateContainsSecrets() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateContainsSecrets()
	})
}

// SetPolicyContext sets the "policy_context" field.
func (u *EventUpsertBulk) SetPolicyContext(v json.RawMessage) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetPolicyContext(v)
	})
}

// UpdatePolicyContext sets the "policy_context" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdatePolicyContext() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePolicyContext()
	})
}

// ClearPolicyContext clears the value of the "policy_context" field.
func (u *EventUpsertBulk) ClearPolicyContext() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearPolicyContext()
	})
}

// SetModelContext sets the "model_context" field.
func (u *EventUpsertBulk) SetModelContext(v json.RawMessage) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetModelContext(v)
	})
}

// UpdateModelContext sets the "model_context" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateModelContext() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateModelContext()
	})
}

// ClearModelContext clears the value of the "model_context" field.
func (u *EventUpsertBulk) ClearModelContext() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearModelContext()
	})
}

// SetDisplay sets the "display" field.
func (u *EventUpsertBulk) SetDisplay(v json.RawMessage) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetDisplay(v)
	})
}

// UpdateDisplay sets the "display" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateDisplay() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDisplay()
	})
}

// ClearDisplay clears the value of the "display" field.
func (u *EventUpsertBulk) ClearDisplay() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearDisplay()
	})
}

// SetData sets the "data" field.
func (u *EventUpsertBulk) SetData(v json.RawMessage) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateData() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *EventUpsertBulk) ClearData() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearData()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *EventUpsertBulk) SetIdempotencyKey(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateIdempotencyKey() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *EventUpsertBulk) ClearIdempotencyKey() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearIdempotencyKey()
	})
}

// SetPrevEventHash sets the "prev_event_hash" field.
func (u *EventUpsertBulk) SetPrevEventHash(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetPrevEventHash(v)
	})
}

// UpdatePrevEventHash sets the "prev_event_hash" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdatePrevEventHash() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePrevEventHash()
	})
}

// ClearPrevEventHash clears the value of the "prev_event_hash" field.
func (u *EventUpsertBulk) ClearPrevEventHash() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearPrevEventHash()
	})
}

// SetEventHash sets the "event_hash" field.
func (u *EventUpsertBulk) SetEventHash(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventHash(v)
	})
}

// UpdateEventHash sets the "event_hash" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventHash() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventHash()
	})
}

// ClearEventHash clears the value of the "event_hash" field.
func (u *EventUpsertBulk) ClearEventHash() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearEventHash()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
