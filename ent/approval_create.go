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
	"github.com/missionloop/groundcontrol/ent/approval"
)

// ApprovalCreate is the builder for creating a Approval entity.
type ApprovalCreate struct {
	config
	mutation *ApprovalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ApprovalCreate) SetWorkspaceID(v string) *ApprovalCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *ApprovalCreate) SetRoomID(v string) *ApprovalCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableRoomID(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetRoomID(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ApprovalCreate) SetRunID(v string) *ApprovalCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableRunID(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ApprovalCreate) SetTitle(v string) *ApprovalCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableTitle(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalCreate) SetStatus(v approval.Status) *ApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableStatus(v *approval.Status) *ApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *ApprovalCreate) SetRequestedBy(v string) *ApprovalCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *ApprovalCreate) SetDecidedBy(v string) *ApprovalCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableDecidedBy(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *ApprovalCreate) SetDecidedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableDecidedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *ApprovalCreate) SetCorrelationID(v string) *ApprovalCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *ApprovalCreate) SetLastEventID(v string) *ApprovalCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalCreate) SetCreatedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableCreatedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApprovalCreate) SetUpdatedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableUpdatedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalCreate) SetID(v string) *ApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalMutation object of the builder.
func (_c *ApprovalCreate) Mutation() *ApprovalMutation {
	return _c.mutation
}

// Save creates the Approval in the database.
func (_c *ApprovalCreate) Save(ctx context.Context) (*Approval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalCreate) SaveX(ctx context.Context) *Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := approval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approval.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := approval.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Approval.workspace_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Approval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`ent: missing required field "Approval.requested_by"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Approval.correlation_id"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "Approval.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Approval.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Approval.updated_at"`)}
	}
	return nil
}

func (_c *ApprovalCreate) sqlSave(ctx context.Context) (*Approval, error) {
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
			return nil, fmt.Errorf("unexpected Approval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalCreate) createSpec() (*Approval, *sqlgraph.CreateSpec) {
	var (
		_node = &Approval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approval.Table, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(approval.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(approval.FieldRoomID, field.TypeString, value)
		_node.RoomID = &value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(approval.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(approval.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(approval.FieldRequestedBy, field.TypeString, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(approval.FieldDecidedBy, field.TypeString, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(approval.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(approval.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(approval.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(approval.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Approval.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalUpsertOne {
	_c.conflict = opts
	return &ApprovalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalCreate) OnConflictColumns(columns ...string) *ApprovalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalUpsertOne is the builder for "upsert"-ing
	//  one Approval node.
	ApprovalUpsertOne struct {
		create *ApprovalCreate
	}

	// ApprovalUpsert is the "OnConflict" setter.
	ApprovalUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *ApprovalUpsert) SetWorkspaceID(v string) *ApprovalUpsert {
	u.Set(approval.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateWorkspaceID() *ApprovalUpsert {
	u.SetExcluded(approval.FieldWorkspaceID)
	return u
}

// SetRoomID sets the "room_id" field.
func (u *ApprovalUpsert) SetRoomID(v string) *ApprovalUpsert {
	u.Set(approval.FieldRoomID, v)
	return u
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateRoomID() *ApprovalUpsert {
	u.SetExcluded(approval.FieldRoomID)
	return u
}

// ClearRoomID clears the value of the "room_id" field.
func (u *ApprovalUpsert) ClearRoomID() *ApprovalUpsert {
	u.SetNull(approval.FieldRoomID)
	return u
}

// SetRunID sets the "run_id" field.
func (u *ApprovalUpsert) SetRunID(v string) *ApprovalUpsert {
	u.Set(approval.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateRunID() *ApprovalUpsert {
	u.SetExcluded(approval.FieldRunID)
	return u
}

// ClearRunID clears the value of the "run_id" field.
func (u *ApprovalUpsert) ClearRunID() *ApprovalUpsert {
	u.SetNull(approval.FieldRunID)
	return u
}

// SetTitle sets the "title" field.
func (u *ApprovalUpsert) SetTitle(v string) *ApprovalUpsert {
	u.Set(approval.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateTitle() *ApprovalUpsert {
	u.SetExcluded(approval.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *ApprovalUpsert) ClearTitle() *ApprovalUpsert {
	u.SetNull(approval.FieldTitle)
	return u
}

// SetStatus sets the "status" field.
func (u *ApprovalUpsert) SetStatus(v approval.Status) *ApprovalUpsert {
	u.Set(approval.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateStatus() *ApprovalUpsert {
	u.SetExcluded(approval.FieldStatus)
	return u
}

// SetRequestedBy sets the "requested_by" field.
func (u *ApprovalUpsert) SetRequestedBy(v string) *ApprovalUpsert {
	u.Set(approval.FieldRequestedBy, v)
	return u
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateRequestedBy() *ApprovalUpsert {
	u.SetExcluded(approval.FieldRequestedBy)
	return u
}

// SetDecidedBy sets the "decided_by" field.
func (u *ApprovalUpsert) SetDecidedBy(v string) *ApprovalUpsert {
	u.Set(approval.FieldDecidedBy, v)
	return u
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateDecidedBy() *ApprovalUpsert {
	u.SetExcluded(approval.FieldDecidedBy)
	return u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *ApprovalUpsert) ClearDecidedBy() *ApprovalUpsert {
	u.SetNull(approval.FieldDecidedBy)
	return u
}

// SetDecidedAt sets the "decided_at" field.
func (u *ApprovalUpsert) SetDecidedAt(v time.Time) *ApprovalUpsert {
	u.Set(approval.FieldDecidedAt, v)
	return u
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateDecidedAt() *ApprovalUpsert {
	u.SetExcluded(approval.FieldDecidedAt)
	return u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ApprovalUpsert) ClearDecidedAt() *ApprovalUpsert {
	u.SetNull(approval.FieldDecidedAt)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ApprovalUpsert) SetCorrelationID(v string) *ApprovalUpsert {
	u.Set(approval.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateCorrelationID() *ApprovalUpsert {
	u.SetExcluded(approval.FieldCorrelationID)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *ApprovalUpsert) SetLastEventID(v string) *ApprovalUpsert {
	u.Set(approval.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateLastEventID() *ApprovalUpsert {
	u.SetExcluded(approval.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ApprovalUpsert) SetCreatedAt(v time.Time) *ApprovalUpsert {
	u.Set(approval.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateCreatedAt() *ApprovalUpsert {
	u.SetExcluded(approval.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApprovalUpsert) SetUpdatedAt(v time.Time) *ApprovalUpsert {
	u.Set(approval.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateUpdatedAt() *ApprovalUpsert {
	u.SetExcluded(approval.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalUpsertOne) UpdateNewValues() *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approval.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Approval.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalUpsertOne) Ignore() *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalUpsertOne) DoNothing() *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalCreate.OnConflict
// documentation for more info.
func (u *ApprovalUpsertOne) Update(set func(*ApprovalUpsert)) *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ApprovalUpsertOne) SetWorkspaceID(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateWorkspaceID() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *ApprovalUpsertOne) SetRoomID(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateRoomID() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *ApprovalUpsertOne) ClearRoomID() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearRoomID()
	})
}

// SetRunID sets the "run_id" field.
func (u *ApprovalUpsertOne) SetRunID(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateRunID() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *ApprovalUpsertOne) ClearRunID() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearRunID()
	})
}

// SetTitle sets the "title" field.
func (u *ApprovalUpsertOne) SetTitle(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateTitle() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ApprovalUpsertOne) ClearTitle() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearTitle()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalUpsertOne) SetStatus(v approval.Status) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateStatus() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *ApprovalUpsertOne) SetRequestedBy(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateRequestedBy() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *ApprovalUpsertOne) SetDecidedBy(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateDecidedBy() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *ApprovalUpsertOne) ClearDecidedBy() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearDecidedBy()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *ApprovalUpsertOne) SetDecidedAt(v time.Time) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateDecidedAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ApprovalUpsertOne) ClearDecidedAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearDecidedAt()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ApprovalUpsertOne) SetCorrelationID(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateCorrelationID() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ApprovalUpsertOne) SetLastEventID(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateLastEventID() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ApprovalUpsertOne) SetCreatedAt(v time.Time) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateCreatedAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApprovalUpsertOne) SetUpdatedAt(v time.Time) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateUpdatedAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ApprovalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalUpsertOne.ID is not supported by MySQL driver. Use ApprovalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalCreateBulk is the builder for creating many Approval entities in bulk.
type ApprovalCreateBulk struct {
	config
	err      error
	builders []*ApprovalCreate
	conflict []sql.ConflictOption
}

// Save creates the Approval entities in the database.
func (_c *ApprovalCreateBulk) Save(ctx context.Context) ([]*Approval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Approval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalMutation)
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
func (_c *ApprovalCreateBulk) SaveX(ctx context.Context) []*Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Approval.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalUpsertBulk {
	_c.conflict = opts
	return &ApprovalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalCreateBulk) OnConflictColumns(columns ...string) *ApprovalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalUpsertBulk{
		create: _c,
	}
}

// ApprovalUpsertBulk is the builder for "upsert"-ing
// a bulk of Approval nodes.
type ApprovalUpsertBulk struct {
	create *ApprovalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalUpsertBulk) UpdateNewValues() *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approval.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalUpsertBulk) Ignore() *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalUpsertBulk) DoNothing() *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalUpsertBulk) Update(set func(*ApprovalUpsert)) *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ApprovalUpsertBulk) SetWorkspaceID(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateWorkspaceID() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *ApprovalUpsertBulk) SetRoomID(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateRoomID() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *ApprovalUpsertBulk) ClearRoomID() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearRoomID()
	})
}

// SetRunID sets the "run_id" field.
func (u *ApprovalUpsertBulk) SetRunID(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateRunID() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *ApprovalUpsertBulk) ClearRunID() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearRunID()
	})
}

// SetTitle sets the "title" field.
func (u *ApprovalUpsertBulk) SetTitle(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateTitle() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ApprovalUpsertBulk) ClearTitle() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearTitle()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalUpsertBulk) SetStatus(v approval.Status) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateStatus() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *ApprovalUpsertBulk) SetRequestedBy(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateRequestedBy() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *ApprovalUpsertBulk) SetDecidedBy(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateDecidedBy() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *ApprovalUpsertBulk) ClearDecidedBy() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearDecidedBy()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *ApprovalUpsertBulk) SetDecidedAt(v time.Time) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateDecidedAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ApprovalUpsertBulk) ClearDecidedAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearDecidedAt()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ApprovalUpsertBulk) SetCorrelationID(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateCorrelationID() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ApprovalUpsertBulk) SetLastEventID(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateLastEventID() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ApprovalUpsertBulk) SetCreatedAt(v time.Time) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateCreatedAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApprovalUpsertBulk) SetUpdatedAt(v time.Time) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateUpdatedAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ApprovalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
