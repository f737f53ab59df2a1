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
	"github.com/missionloop/groundcontrol/ent/predicate"
	"github.com/missionloop/groundcontrol/ent/workitemlease"
)

// WorkItemLeaseUpdate is the builder for updating WorkItemLease entities.
type WorkItemLeaseUpdate struct {
	config
	hooks    []Hook
	mutation *WorkItemLeaseMutation
}

// Where appends a list predicates to the WorkItemLeaseUpdate builder.
func (_u *WorkItemLeaseUpdate) Where(ps ...predicate.WorkItemLease) *WorkItemLeaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *WorkItemLeaseUpdate) SetWorkspaceID(v string) *WorkItemLeaseUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *WorkItemLeaseUpdate) SetNillableWorkspaceID(v *string) *WorkItemLeaseUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetWorkItemType sets the "work_item_type" field.
func (_u *WorkItemLeaseUpdate) SetWorkItemType(v workitemlease.WorkItemType) *WorkItemLeaseUpdate {
	_u.mutation.SetWorkItemType(v)
	return _u
}

// SetNillableWorkItemType sets the "work_item_type" field if the given value is not nil.
func (_u *WorkItemLeaseUpdate) SetNillableWorkItemType(v *workitemlease.WorkItemType) *WorkItemLeaseUpdate {
	if v != nil {
		_u.SetWorkItemType(*v)
	}
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *WorkItemLeaseUpdate) SetWorkItemID(v string) *WorkItemLeaseUpdate {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *WorkItemLeaseUpdate) SetNillableWorkItemID(v *string) *WorkItemLeaseUpdate {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *WorkItemLeaseUpdate) SetAgentID(v string) *WorkItemLeaseUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *WorkItemLeaseUpdate) SetNillableAgentID(v *string) *WorkItemLeaseUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *WorkItemLeaseUpdate) SetExpiresAt(v time.Time) *WorkItemLeaseUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *WorkItemLeaseUpdate) SetNillableExpiresAt(v *time.Time) *WorkItemLeaseUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *WorkItemLeaseUpdate) SetVersion(v int) *WorkItemLeaseUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *WorkItemLeaseUpdate) SetNillableVersion(v *int) *WorkItemLeaseUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *WorkItemLeaseUpdate) AddVersion(v int) *WorkItemLeaseUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkItemLeaseUpdate) SetCreatedAt(v time.Time) *WorkItemLeaseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkItemLeaseUpdate) SetNillableCreatedAt(v *time.Time) *WorkItemLeaseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkItemLeaseUpdate) SetUpdatedAt(v time.Time) *WorkItemLeaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkItemLeaseMutation object of the builder.
func (_u *WorkItemLeaseUpdate) Mutation() *WorkItemLeaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkItemLeaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemLeaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkItemLeaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemLeaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkItemLeaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workitemlease.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemLeaseUpdate) check() error {
	if v, ok := _u.mutation.WorkItemType(); ok {
		if err := workitemlease.WorkItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "work_item_type", err: fmt.Errorf(`ent: validator failed for field "WorkItemLease.work_item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkItemLeaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitemlease.Table, workitemlease.Columns, sqlgraph.NewFieldSpec(workitemlease.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(workitemlease.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkItemType(); ok {
		_spec.SetField(workitemlease.FieldWorkItemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(workitemlease.FieldWorkItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(workitemlease.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(workitemlease.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(workitemlease.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(workitemlease.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workitemlease.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workitemlease.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitemlease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkItemLeaseUpdateOne is the builder for updating a single WorkItemLease entity.
type WorkItemLeaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkItemLeaseMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *WorkItemLeaseUpdateOne) SetWorkspaceID(v string) *WorkItemLeaseUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *WorkItemLeaseUpdateOne) SetNillableWorkspaceID(v *string) *WorkItemLeaseUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetWorkItemType sets the "work_item_type" field.
func (_u *WorkItemLeaseUpdateOne) SetWorkItemType(v workitemlease.WorkItemType) *WorkItemLeaseUpdateOne {
	_u.mutation.SetWorkItemType(v)
	return _u
}

// SetNillableWorkItemType sets the "work_item_type" field if the given value is not nil.
func (_u *WorkItemLeaseUpdateOne) SetNillableWorkItemType(v *workitemlease.WorkItemType) *WorkItemLeaseUpdateOne {
	if v != nil {
		_u.SetWorkItemType(*v)
	}
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *WorkItemLeaseUpdateOne) SetWorkItemID(v string) *WorkItemLeaseUpdateOne {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *WorkItemLeaseUpdateOne) SetNillableWorkItemID(v *string) *WorkItemLeaseUpdateOne {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *WorkItemLeaseUpdateOne) SetAgentID(v string) *WorkItemLeaseUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *WorkItemLeaseUpdateOne) SetNillableAgentID(v *string) *WorkItemLeaseUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *WorkItemLeaseUpdateOne) SetExpiresAt(v time.Time) *WorkItemLeaseUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *WorkItemLeaseUpdateOne) SetNillableExpiresAt(v *time.Time) *WorkItemLeaseUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *WorkItemLeaseUpdateOne) SetVersion(v int) *WorkItemLeaseUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *WorkItemLeaseUpdateOne) SetNillableVersion(v *int) *WorkItemLeaseUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *WorkItemLeaseUpdateOne) AddVersion(v int) *WorkItemLeaseUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkItemLeaseUpdateOne) SetCreatedAt(v time.Time) *WorkItemLeaseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkItemLeaseUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkItemLeaseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkItemLeaseUpdateOne) SetUpdatedAt(v time.Time) *WorkItemLeaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkItemLeaseMutation object of the builder.
func (_u *WorkItemLeaseUpdateOne) Mutation() *WorkItemLeaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkItemLeaseUpdate builder.
func (_u *WorkItemLeaseUpdateOne) Where(ps ...predicate.WorkItemLease) *WorkItemLeaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkItemLeaseUpdateOne) Select(field string, fields ...string) *WorkItemLeaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkItemLease entity.
func (_u *WorkItemLeaseUpdateOne) Save(ctx context.Context) (*WorkItemLease, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemLeaseUpdateOne) SaveX(ctx context.Context) *WorkItemLease {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkItemLeaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemLeaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkItemLeaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workitemlease.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemLeaseUpdateOne) check() error {
	if v, ok := _u.mutation.WorkItemType(); ok {
		if err := workitemlease.WorkItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "work_item_type", err: fmt.Errorf(`ent: validator failed for field "WorkItemLease.work_item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkItemLeaseUpdateOne) sqlSave(ctx context.Context) (_node *WorkItemLease, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitemlease.Table, workitemlease.Columns, sqlgraph.NewFieldSpec(workitemlease.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkItemLease.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workitemlease.FieldID)
		for _, f := range fields {
			if !workitemlease.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workitemlease.FieldID {
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
		_spec.SetField(workitemlease.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkItemType(); ok {
		_spec.SetField(workitemlease.FieldWorkItemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(workitemlease.FieldWorkItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(workitemlease.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(workitemlease.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(workitemlease.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(workitemlease.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workitemlease.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workitemlease.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkItemLease{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitemlease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
