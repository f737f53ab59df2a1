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
	"github.com/missionloop/groundcontrol/ent/toolcall"
)

// ToolCallCreate is the builder for creating a ToolCall entity.
type ToolCallCreate struct {
	config
	mutation *ToolCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ToolCallCreate) SetWorkspaceID(v string) *ToolCallCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ToolCallCreate) SetRunID(v string) *ToolCallCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableRunID(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *ToolCallCreate) SetStepID(v string) *ToolCallCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableStepID(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolCallCreate) SetToolName(v string) *ToolCallCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolCallCreate) SetStatus(v toolcall.Status) *ToolCallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableStatus(v *toolcall.Status) *ToolCallCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *ToolCallCreate) SetErrorCode(v string) *ToolCallCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableErrorCode(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ToolCallCreate) SetStartedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableStartedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ToolCallCreate) SetFinishedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableFinishedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *ToolCallCreate) SetCorrelationID(v string) *ToolCallCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *ToolCallCreate) SetLastEventID(v string) *ToolCallCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ToolCallCreate) SetUpdatedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableUpdatedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolCallCreate) SetID(v string) *ToolCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ToolCallMutation object of the builder.
func (_c *ToolCallCreate) Mutation() *ToolCallMutation {
	return _c.mutation
}

// Save creates the ToolCall in the database.
func (_c *ToolCallCreate) Save(ctx context.Context) (*ToolCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolCallCreate) SaveX(ctx context.Context) *ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolCallCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := toolcall.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := toolcall.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := toolcall.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolCallCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "ToolCall.workspace_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolCall.tool_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolCall.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ToolCall.started_at"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "ToolCall.correlation_id"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "ToolCall.last_event_id"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ToolCall.updated_at"`)}
	}
	return nil
}

func (_c *ToolCallCreate) sqlSave(ctx context.Context) (*ToolCall, error) {
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
			return nil, fmt.Errorf("unexpected ToolCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolCallCreate) createSpec() (*ToolCall, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolcall.Table, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(toolcall.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(toolcall.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(toolcall.FieldStepID, field.TypeString, value)
		_node.StepID = &value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(toolcall.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(toolcall.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(toolcall.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(toolcall.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(toolcall.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(toolcall.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolCall.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolCallUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolCallCreate) OnConflict(opts ...sql.ConflictOption) *ToolCallUpsertOne {
	_c.conflict = opts
	return &ToolCallUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolCallCreate) OnConflictColumns(columns ...string) *ToolCallUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolCallUpsertOne{
		create: _c,
	}
}

type (
	// ToolCallUpsertOne is the builder for "upsert"-ing
	//  one ToolCall node.
	ToolCallUpsertOne struct {
		create *ToolCallCreate
	}

	// ToolCallUpsert is the "OnConflict" setter.
	ToolCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *ToolCallUpsert) SetWorkspaceID(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateWorkspaceID() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldWorkspaceID)
	return u
}

// SetRunID sets the "run_id" field.
func (u *ToolCallUpsert) SetRunID(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateRunID() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldRunID)
	return u
}

// ClearRunID clears the value of the "run_id" field.
func (u *ToolCallUpsert) ClearRunID() *ToolCallUpsert {
	u.SetNull(toolcall.FieldRunID)
	return u
}

// SetStepID sets the "step_id" field.
func (u *ToolCallUpsert) SetStepID(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateStepID() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldStepID)
	return u
}

// ClearStepID clears the value of the "step_id" field.
func (u *ToolCallUpsert) ClearStepID() *ToolCallUpsert {
	u.SetNull(toolcall.FieldStepID)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *ToolCallUpsert) SetToolName(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateToolName() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldToolName)
	return u
}

// SetStatus sets the "status" field.
func (u *ToolCallUpsert) SetStatus(v toolcall.Status) *ToolCallUpsert {
	u.Set(toolcall.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateStatus() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldStatus)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *ToolCallUpsert) SetErrorCode(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateErrorCode() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *ToolCallUpsert) ClearErrorCode() *ToolCallUpsert {
	u.SetNull(toolcall.FieldErrorCode)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ToolCallUpsert) SetStartedAt(v time.Time) *ToolCallUpsert {
	u.Set(toolcall.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateStartedAt() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *ToolCallUpsert) SetFinishedAt(v time.Time) *ToolCallUpsert {
	u.Set(toolcall.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateFinishedAt() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ToolCallUpsert) ClearFinishedAt() *ToolCallUpsert {
	u.SetNull(toolcall.FieldFinishedAt)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ToolCallUpsert) SetCorrelationID(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateCorrelationID() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldCorrelationID)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *ToolCallUpsert) SetLastEventID(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateLastEventID() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldLastEventID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ToolCallUpsert) SetUpdatedAt(v time.Time) *ToolCallUpsert {
	u.Set(toolcall.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateUpdatedAt() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolCallUpsertOne) UpdateNewValues() *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(toolcall.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToolCallUpsertOne) Ignore() *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolCallUpsertOne) DoNothing() *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolCallCreate.OnConflict
// documentation for more info.
func (u *ToolCallUpsertOne) Update(set func(*ToolCallUpsert)) *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ToolCallUpsertOne) SetWorkspaceID(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateWorkspaceID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *ToolCallUpsertOne) SetRunID(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateRunID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *ToolCallUpsertOne) ClearRunID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearRunID()
	})
}

// SetStepID sets the "step_id" field.
func (u *ToolCallUpsertOne) SetStepID(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateStepID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *ToolCallUpsertOne) ClearStepID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearStepID()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ToolCallUpsertOne) SetToolName(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateToolName() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateToolName()
	})
}

// SetStatus sets the "status" field.
func (u *ToolCallUpsertOne) SetStatus(v toolcall.Status) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateStatus() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *ToolCallUpsertOne) SetErrorCode(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateErrorCode() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *ToolCallUpsertOne) ClearErrorCode() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearErrorCode()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ToolCallUpsertOne) SetStartedAt(v time.Time) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateStartedAt() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ToolCallUpsertOne) SetFinishedAt(v time.Time) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateFinishedAt() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ToolCallUpsertOne) ClearFinishedAt() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearFinishedAt()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ToolCallUpsertOne) SetCorrelationID(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateCorrelationID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ToolCallUpsertOne) SetLastEventID(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateLastEventID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateLastEventID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ToolCallUpsertOne) SetUpdatedAt(v time.Time) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateUpdatedAt() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ToolCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToolCallUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ToolCallUpsertOne.ID is not supported by MySQL driver. Use ToolCallUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToolCallUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToolCallCreateBulk is the builder for creating many ToolCall entities in bulk.
type ToolCallCreateBulk struct {
	config
	err      error
	builders []*ToolCallCreate
	conflict []sql.ConflictOption
}

// Save creates the ToolCall entities in the database.
func (_c *ToolCallCreateBulk) Save(ctx context.Context) ([]*ToolCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolCallMutation)
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
func (_c *ToolCallCreateBulk) SaveX(ctx context.Context) []*ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolCallUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToolCallUpsertBulk {
	_c.conflict = opts
	return &ToolCallUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolCallCreateBulk) OnConflictColumns(columns ...string) *ToolCallUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolCallUpsertBulk{
		create: _c,
	}
}

// ToolCallUpsertBulk is the builder for "upsert"-ing
// a bulk of ToolCall nodes.
type ToolCallUpsertBulk struct {
	create *ToolCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolCallUpsertBulk) UpdateNewValues() *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(toolcall.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToolCallUpsertBulk) Ignore() *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolCallUpsertBulk) DoNothing() *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolCallCreateBulk.OnConflict
// documentation for more info.
func (u *ToolCallUpsertBulk) Update(set func(*ToolCallUpsert)) *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ToolCallUpsertBulk) SetWorkspaceID(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateWorkspaceID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *ToolCallUpsertBulk) SetRunID(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateRunID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *ToolCallUpsertBulk) ClearRunID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearRunID()
	})
}

// SetStepID sets the "step_id" field.
func (u *ToolCallUpsertBulk) SetStepID(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateStepID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *ToolCallUpsertBulk) ClearStepID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearStepID()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ToolCallUpsertBulk) SetToolName(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateToolName() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateToolName()
	})
}

// SetStatus sets the "status" field.
func (u *ToolCallUpsertBulk) SetStatus(v toolcall.Status) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateStatus() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *ToolCallUpsertBulk) SetErrorCode(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateErrorCode() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *ToolCallUpsertBulk) ClearErrorCode() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearErrorCode()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ToolCallUpsertBulk) SetStartedAt(v time.Time) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateStartedAt() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ToolCallUpsertBulk) SetFinishedAt(v time.Time) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateFinishedAt() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ToolCallUpsertBulk) ClearFinishedAt() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearFinishedAt()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ToolCallUpsertBulk) SetCorrelationID(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateCorrelationID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ToolCallUpsertBulk) SetLastEventID(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateLastEventID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateLastEventID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ToolCallUpsertBulk) SetUpdatedAt(v time.Time) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateUpdatedAt() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ToolCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToolCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
