// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/run"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *RunCreate) SetWorkspaceID(v string) *RunCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetMissionID sets the "mission_id" field.
func (_c *RunCreate) SetMissionID(v string) *RunCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableMissionID(v *string) *RunCreate {
	if v != nil {
		_c.SetMissionID(*v)
	}
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *RunCreate) SetRoomID(v string) *RunCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableRoomID(v *string) *RunCreate {
	if v != nil {
		_c.SetRoomID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *RunCreate) SetTitle(v string) *RunCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *RunCreate) SetNillableTitle(v *string) *RunCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *RunCreate) SetErrorCode(v string) *RunCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorCode(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *RunCreate) SetErrorKind(v string) *RunCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorKind(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RunCreate) SetFinishedAt(v time.Time) *RunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableFinishedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *RunCreate) SetCorrelationID(v string) *RunCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *RunCreate) SetLastEventID(v string) *RunCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RunCreate) SetUpdatedAt(v time.Time) *RunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableUpdatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := run.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Run.workspace_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Run.correlation_id"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "Run.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Run.updated_at"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(run.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.MissionID(); ok {
		_spec.SetField(run.FieldMissionID, field.TypeString, value)
		_node.MissionID = &value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(run.FieldRoomID, field.TypeString, value)
		_node.RoomID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(run.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(run.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(run.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(run.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(run.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreate) OnConflict(opts ...sql.ConflictOption) *RunUpsertOne {
	_c.conflict = opts
	return &RunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreate) OnConflictColumns(columns ...string) *RunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertOne{
		create: _c,
	}
}

type (
	// RunUpsertOne is the builder for "upsert"-ing
	//  one Run node.
	RunUpsertOne struct {
		create *RunCreate
	}

	// RunUpsert is the "OnConflict" setter.
	RunUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *RunUpsert) SetWorkspaceID(v string) *RunUpsert {
	u.Set(run.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateWorkspaceID() *RunUpsert {
	u.SetExcluded(run.FieldWorkspaceID)
	return u
}

// SetMissionID sets the "mission_id" field.
func (u *RunUpsert) SetMissionID(v string) *RunUpsert {
	u.Set(run.FieldMissionID, v)
	return u
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateMissionID() *RunUpsert {
	u.SetExcluded(run.FieldMissionID)
	return u
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *RunUpsert) ClearMissionID() *RunUpsert {
	u.SetNull(run.FieldMissionID)
	return u
}

// SetRoomID sets the "room_id" field.
func (u *RunUpsert) SetRoomID(v string) *RunUpsert {
	u.Set(run.FieldRoomID, v)
	return u
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateRoomID() *RunUpsert {
	u.SetExcluded(run.FieldRoomID)
	return u
}

// ClearRoomID clears the value of the "room_id" field.
func (u *RunUpsert) ClearRoomID() *RunUpsert {
	u.SetNull(run.FieldRoomID)
	return u
}

// SetTitle sets the "title" field.
func (u *RunUpsert) SetTitle(v string) *RunUpsert {
	u.Set(run.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RunUpsert) UpdateTitle() *RunUpsert {
	u.SetExcluded(run.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *RunUpsert) ClearTitle() *RunUpsert {
	u.SetNull(run.FieldTitle)
	return u
}

// SetStatus sets the "status" field.
func (u *RunUpsert) SetStatus(v run.Status) *RunUpsert {
	u.Set(run.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsert) UpdateStatus() *RunUpsert {
	u.SetExcluded(run.FieldStatus)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *RunUpsert) SetErrorCode(v string) *RunUpsert {
	u.Set(run.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *RunUpsert) UpdateErrorCode() *RunUpsert {
	u.SetExcluded(run.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *RunUpsert) ClearErrorCode() *RunUpsert {
	u.SetNull(run.FieldErrorCode)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *RunUpsert) SetErrorKind(v string) *RunUpsert {
	u.Set(run.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *RunUpsert) UpdateErrorKind() *RunUpsert {
	u.SetExcluded(run.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *RunUpsert) ClearErrorKind() *RunUpsert {
	u.SetNull(run.FieldErrorKind)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsert) SetStartedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateStartedAt() *RunUpsert {
	u.SetExcluded(run.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsert) ClearStartedAt() *RunUpsert {
	u.SetNull(run.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *RunUpsert) SetFinishedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateFinishedAt() *RunUpsert {
	u.SetExcluded(run.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RunUpsert) ClearFinishedAt() *RunUpsert {
	u.SetNull(run.FieldFinishedAt)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RunUpsert) SetCorrelationID(v string) *RunUpsert {
	u.Set(run.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateCorrelationID() *RunUpsert {
	u.SetExcluded(run.FieldCorrelationID)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *RunUpsert) SetLastEventID(v string) *RunUpsert {
	u.Set(run.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateLastEventID() *RunUpsert {
	u.SetExcluded(run.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *RunUpsert) SetCreatedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateCreatedAt() *RunUpsert {
	u.SetExcluded(run.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RunUpsert) SetUpdatedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateUpdatedAt() *RunUpsert {
	u.SetExcluded(run.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertOne) UpdateNewValues() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(run.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunUpsertOne) Ignore() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertOne) DoNothing() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreate.OnConflict
// documentation for more info.
func (u *RunUpsertOne) Update(set func(*RunUpsert)) *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *RunUpsertOne) SetWorkspaceID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateWorkspaceID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetMissionID sets the "mission_id" field.
func (u *RunUpsertOne) SetMissionID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateMissionID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateMissionID()
	})
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *RunUpsertOne) ClearMissionID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearMissionID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *RunUpsertOne) SetRoomID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateRoomID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *RunUpsertOne) ClearRoomID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearRoomID()
	})
}

// SetTitle sets the "title" field.
func (u *RunUpsertOne) SetTitle(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateTitle() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *RunUpsertOne) ClearTitle() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearTitle()
	})
}

// SetStatus sets the "status" field.
func (u *RunUpsertOne) SetStatus(v run.Status) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStatus() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *RunUpsertOne) SetErrorCode(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateErrorCode() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *RunUpsertOne) ClearErrorCode() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorCode()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *RunUpsertOne) SetErrorKind(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateErrorKind() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *RunUpsertOne) ClearErrorKind() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorKind()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertOne) SetStartedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertOne) ClearStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *RunUpsertOne) SetFinishedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateFinishedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RunUpsertOne) ClearFinishedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearFinishedAt()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RunUpsertOne) SetCorrelationID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCorrelationID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *RunUpsertOne) SetLastEventID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateLastEventID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RunUpsertOne) SetCreatedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCreatedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RunUpsertOne) SetUpdatedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateUpdatedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunUpsertOne.ID is not supported by MySQL driver. Use RunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
	conflict []sql.ConflictOption
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunUpsertBulk {
	_c.conflict = opts
	return &RunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflictColumns(columns ...string) *RunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertBulk{
		create: _c,
	}
}

// RunUpsertBulk is the builder for "upsert"-ing
// a bulk of Run nodes.
type RunUpsertBulk struct {
	create *RunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertBulk) UpdateNewValues() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(run.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunUpsertBulk) Ignore() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertBulk) DoNothing() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreateBulk.OnConflict
// documentation for more info.
func (u *RunUpsertBulk) Update(set func(*RunUpsert)) *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *RunUpsertBulk) SetWorkspaceID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateWorkspaceID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetMissionID sets the "mission_id" field.
func (u *RunUpsertBulk) SetMissionID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateMissionID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateMissionID()
	})
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *RunUpsertBulk) ClearMissionID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearMissionID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *RunUpsertBulk) SetRoomID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateRoomID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *RunUpsertBulk) ClearRoomID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearRoomID()
	})
}

// SetTitle sets the "title" field.
func (u *RunUpsertBulk) SetTitle(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateTitle() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *RunUpsertBulk) ClearTitle() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearTitle()
	})
}

// SetStatus sets the "status" field.
func (u *RunUpsertBulk) SetStatus(v run.Status) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStatus() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *RunUpsertBulk) SetErrorCode(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateErrorCode() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *RunUpsertBulk) ClearErrorCode() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorCode()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *RunUpsertBulk) SetErrorKind(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateErrorKind() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *RunUpsertBulk) ClearErrorKind() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorKind()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertBulk) SetStartedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertBulk) ClearStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *RunUpsertBulk) SetFinishedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateFinishedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RunUpsertBulk) ClearFinishedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearFinishedAt()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RunUpsertBulk) SetCorrelationID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCorrelationID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *RunUpsertBulk) SetLastEventID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateLastEventID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RunUpsertBulk) SetCreatedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCreatedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RunUpsertBulk) SetUpdatedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateUpdatedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
