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
	"github.com/missionloop/groundcontrol/ent/deadletter"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// DeadLetterUpdate is the builder for updating DeadLetter entities.
type DeadLetterUpdate struct {
	config
	hooks    []Hook
	mutation *DeadLetterMutation
}

// Where appends a list predicates to the DeadLetterUpdate builder.
func (_u *DeadLetterUpdate) Where(ps ...predicate.DeadLetter) *DeadLetterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *DeadLetterUpdate) SetWorkspaceID(v string) *DeadLetterUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableWorkspaceID(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *DeadLetterUpdate) SetEventID(v string) *DeadLetterUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableEventID(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetProjector sets the "projector" field.
func (_u *DeadLetterUpdate) SetProjector(v string) *DeadLetterUpdate {
	_u.mutation.SetProjector(v)
	return _u
}

// SetNillableProjector sets the "projector" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableProjector(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetProjector(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *DeadLetterUpdate) SetError(v string) *DeadLetterUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableError(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DeadLetterUpdate) SetAttempts(v int) *DeadLetterUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableAttempts(v *int) *DeadLetterUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DeadLetterUpdate) AddAttempts(v int) *DeadLetterUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeadLetterUpdate) SetCreatedAt(v time.Time) *DeadLetterUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableCreatedAt(v *time.Time) *DeadLetterUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DeadLetterUpdate) SetResolvedAt(v time.Time) *DeadLetterUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableResolvedAt(v *time.Time) *DeadLetterUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DeadLetterUpdate) ClearResolvedAt() *DeadLetterUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_u *DeadLetterUpdate) Mutation() *DeadLetterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeadLetterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeadLetterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeadLetterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(deadletter.Table, deadletter.Columns, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(deadletter.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(deadletter.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Projector(); ok {
		_spec.SetField(deadletter.FieldProjector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(deadletter.FieldError, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(deadletter.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(deadletter.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deadletter.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(deadletter.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(deadletter.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deadletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeadLetterUpdateOne is the builder for updating a single DeadLetter entity.
type DeadLetterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeadLetterMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *DeadLetterUpdateOne) SetWorkspaceID(v string) *DeadLetterUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableWorkspaceID(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *DeadLetterUpdateOne) SetEventID(v string) *DeadLetterUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableEventID(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetProjector sets the "projector" field.
func (_u *DeadLetterUpdateOne) SetProjector(v string) *DeadLetterUpdateOne {
	_u.mutation.SetProjector(v)
	return _u
}

// SetNillableProjector sets the "projector" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableProjector(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetProjector(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *DeadLetterUpdateOne) SetError(v string) *DeadLetterUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableError(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DeadLetterUpdateOne) SetAttempts(v int) *DeadLetterUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableAttempts(v *int) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DeadLetterUpdateOne) AddAttempts(v int) *DeadLetterUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeadLetterUpdateOne) SetCreatedAt(v time.Time) *DeadLetterUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableCreatedAt(v *time.Time) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DeadLetterUpdateOne) SetResolvedAt(v time.Time) *DeadLetterUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableResolvedAt(v *time.Time) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DeadLetterUpdateOne) ClearResolvedAt() *DeadLetterUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_u *DeadLetterUpdateOne) Mutation() *DeadLetterMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeadLetterUpdate builder.
func (_u *DeadLetterUpdateOne) Where(ps ...predicate.DeadLetter) *DeadLetterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeadLetterUpdateOne) Select(field string, fields ...string) *DeadLetterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeadLetter entity.
func (_u *DeadLetterUpdateOne) Save(ctx context.Context) (*DeadLetter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterUpdateOne) SaveX(ctx context.Context) *DeadLetter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeadLetterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeadLetterUpdateOne) sqlSave(ctx context.Context) (_node *DeadLetter, err error) {
	_spec := sqlgraph.NewUpdateSpec(deadletter.Table, deadletter.Columns, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeadLetter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deadletter.FieldID)
		for _, f := range fields {
			if !deadletter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deadletter.FieldID {
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
		_spec.SetField(deadletter.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(deadletter.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Projector(); ok {
		_spec.SetField(deadletter.FieldProjector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(deadletter.FieldError, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(deadletter.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(deadletter.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deadletter.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(deadletter.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(deadletter.FieldResolvedAt, field.TypeTime)
	}
	_node = &DeadLetter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deadletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
