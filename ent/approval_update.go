// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/approval"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ApprovalUpdate is the builder for updating Approval entities.
type ApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalMutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdate) Where(ps ...predicate.Approval) *ApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ApprovalUpdate) SetWorkspaceID(v string) *ApprovalUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableWorkspaceID(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *ApprovalUpdate) SetRoomID(v string) *ApprovalUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableRoomID(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *ApprovalUpdate) ClearRoomID() *ApprovalUpdate {
	_u.mutation.ClearRoomID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ApprovalUpdate) SetRunID(v string) *ApprovalUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableRunID(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ApprovalUpdate) ClearRunID() *ApprovalUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalUpdate) SetTitle(v string) *ApprovalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableTitle(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ApprovalUpdate) ClearTitle() *ApprovalUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdate) SetStatus(v approval.Status) *ApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableStatus(v *approval.Status) *ApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ApprovalUpdate) SetRequestedBy(v string) *ApprovalUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableRequestedBy(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalUpdate) SetDecidedBy(v string) *ApprovalUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableDecidedBy(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalUpdate) ClearDecidedBy() *ApprovalUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalUpdate) SetDecidedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableDecidedAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalUpdate) ClearDecidedAt() *ApprovalUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *ApprovalUpdate) SetCorrelationID(v string) *ApprovalUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableCorrelationID(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *ApprovalUpdate) SetLastEventID(v string) *ApprovalUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableLastEventID(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApprovalUpdate) SetCreatedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableCreatedAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalUpdate) SetUpdatedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdate) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approval.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(approval.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(approval.FieldRoomID, field.TypeString, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(approval.FieldRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(approval.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(approval.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approval.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(approval.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(approval.FieldRequestedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approval.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approval.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approval.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approval.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(approval.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(approval.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(approval.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approval.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalUpdateOne is the builder for updating a single Approval entity.
type ApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ApprovalUpdateOne) SetWorkspaceID(v string) *ApprovalUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableWorkspaceID(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *ApprovalUpdateOne) SetRoomID(v string) *ApprovalUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableRoomID(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *ApprovalUpdateOne) ClearRoomID() *ApprovalUpdateOne {
	_u.mutation.ClearRoomID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ApprovalUpdateOne) SetRunID(v string) *ApprovalUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableRunID(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ApprovalUpdateOne) ClearRunID() *ApprovalUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalUpdateOne) SetTitle(v string) *ApprovalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableTitle(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ApprovalUpdateOne) ClearTitle() *ApprovalUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdateOne) SetStatus(v approval.Status) *ApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableStatus(v *approval.Status) *ApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ApprovalUpdateOne) SetRequestedBy(v string) *ApprovalUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableRequestedBy(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalUpdateOne) SetDecidedBy(v string) *ApprovalUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableDecidedBy(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalUpdateOne) ClearDecidedBy() *ApprovalUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalUpdateOne) SetDecidedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableDecidedAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalUpdateOne) ClearDecidedAt() *ApprovalUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *ApprovalUpdateOne) SetCorrelationID(v string) *ApprovalUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableCorrelationID(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *ApprovalUpdateOne) SetLastEventID(v string) *ApprovalUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableLastEventID(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApprovalUpdateOne) SetCreatedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableCreatedAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalUpdateOne) SetUpdatedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdateOne) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdateOne) Where(ps ...predicate.Approval) *ApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalUpdateOne) Select(field string, fields ...string) *ApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Approval entity.
func (_u *ApprovalUpdateOne) Save(ctx context.Context) (*Approval, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdateOne) SaveX(ctx context.Context) *Approval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approval.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdateOne) sqlSave(ctx context.Context) (_node *Approval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Approval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approval.FieldID)
		for _, f := range fields {
			if !approval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approval.FieldID {
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
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(approval.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(approval.FieldRoomID, field.TypeString, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(approval.FieldRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(approval.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(approval.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approval.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(approval.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(approval.FieldRequestedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approval.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approval.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approval.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approval.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(approval.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(approval.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(approval.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approval.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Approval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
