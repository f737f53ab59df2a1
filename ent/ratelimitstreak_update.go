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
	"github.com/missionloop/groundcontrol/ent/ratelimitstreak"
)

// RateLimitStreakUpdate is the builder for updating RateLimitStreak entities.
type RateLimitStreakUpdate struct {
	config
	hooks    []Hook
	mutation *RateLimitStreakMutation
}

// Where appends a list predicates to the RateLimitStreakUpdate builder.
func (_u *RateLimitStreakUpdate) Where(ps ...predicate.RateLimitStreak) *RateLimitStreakUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *RateLimitStreakUpdate) SetWorkspaceID(v string) *RateLimitStreakUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *RateLimitStreakUpdate) SetNillableWorkspaceID(v *string) *RateLimitStreakUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *RateLimitStreakUpdate) SetAgentID(v string) *RateLimitStreakUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *RateLimitStreakUpdate) SetNillableAgentID(v *string) *RateLimitStreakUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *RateLimitStreakUpdate) SetScope(v string) *RateLimitStreakUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *RateLimitStreakUpdate) SetNillableScope(v *string) *RateLimitStreakUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetConsecutive429 sets the "consecutive_429" field.
func (_u *RateLimitStreakUpdate) SetConsecutive429(v int) *RateLimitStreakUpdate {
	_u.mutation.ResetConsecutive429()
	_u.mutation.SetConsecutive429(v)
	return _u
}

// SetNillableConsecutive429 sets the "consecutive_429" field if the given value is not nil.
func (_u *RateLimitStreakUpdate) SetNillableConsecutive429(v *int) *RateLimitStreakUpdate {
	if v != nil {
		_u.SetConsecutive429(*v)
	}
	return _u
}

// AddConsecutive429 adds value to the "consecutive_429" field.
func (_u *RateLimitStreakUpdate) AddConsecutive429(v int) *RateLimitStreakUpdate {
	_u.mutation.AddConsecutive429(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RateLimitStreakUpdate) SetUpdatedAt(v time.Time) *RateLimitStreakUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RateLimitStreakMutation object of the builder.
func (_u *RateLimitStreakUpdate) Mutation() *RateLimitStreakMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RateLimitStreakUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitStreakUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RateLimitStreakUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitStreakUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RateLimitStreakUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ratelimitstreak.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RateLimitStreakUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitstreak.Table, ratelimitstreak.Columns, sqlgraph.NewFieldSpec(ratelimitstreak.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(ratelimitstreak.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(ratelimitstreak.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(ratelimitstreak.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Consecutive429(); ok {
		_spec.SetField(ratelimitstreak.FieldConsecutive429, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutive429(); ok {
		_spec.AddField(ratelimitstreak.FieldConsecutive429, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ratelimitstreak.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitstreak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RateLimitStreakUpdateOne is the builder for updating a single RateLimitStreak entity.
type RateLimitStreakUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RateLimitStreakMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *RateLimitStreakUpdateOne) SetWorkspaceID(v string) *RateLimitStreakUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *RateLimitStreakUpdateOne) SetNillableWorkspaceID(v *string) *RateLimitStreakUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *RateLimitStreakUpdateOne) SetAgentID(v string) *RateLimitStreakUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *RateLimitStreakUpdateOne) SetNillableAgentID(v *string) *RateLimitStreakUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *RateLimitStreakUpdateOne) SetScope(v string) *RateLimitStreakUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *RateLimitStreakUpdateOne) SetNillableScope(v *string) *RateLimitStreakUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetConsecutive429 sets the "consecutive_429" field.
func (_u *RateLimitStreakUpdateOne) SetConsecutive429(v int) *RateLimitStreakUpdateOne {
	_u.mutation.ResetConsecutive429()
	_u.mutation.SetConsecutive429(v)
	return _u
}

// SetNillableConsecutive429 sets the "consecutive_429" field if the given value is not nil.
func (_u *RateLimitStreakUpdateOne) SetNillableConsecutive429(v *int) *RateLimitStreakUpdateOne {
	if v != nil {
		_u.SetConsecutive429(*v)
	}
	return _u
}

// AddConsecutive429 adds value to the "consecutive_429" field.
func (_u *RateLimitStreakUpdateOne) AddConsecutive429(v int) *RateLimitStreakUpdateOne {
	_u.mutation.AddConsecutive429(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RateLimitStreakUpdateOne) SetUpdatedAt(v time.Time) *RateLimitStreakUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RateLimitStreakMutation object of the builder.
func (_u *RateLimitStreakUpdateOne) Mutation() *RateLimitStreakMutation {
	return _u.mutation
}

// Where appends a list predicates to the RateLimitStreakUpdate builder.
func (_u *RateLimitStreakUpdateOne) Where(ps ...predicate.RateLimitStreak) *RateLimitStreakUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RateLimitStreakUpdateOne) Select(field string, fields ...string) *RateLimitStreakUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RateLimitStreak entity.
func (_u *RateLimitStreakUpdateOne) Save(ctx context.Context) (*RateLimitStreak, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitStreakUpdateOne) SaveX(ctx context.Context) *RateLimitStreak {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RateLimitStreakUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitStreakUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RateLimitStreakUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ratelimitstreak.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RateLimitStreakUpdateOne) sqlSave(ctx context.Context) (_node *RateLimitStreak, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitstreak.Table, ratelimitstreak.Columns, sqlgraph.NewFieldSpec(ratelimitstreak.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RateLimitStreak.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratelimitstreak.FieldID)
		for _, f := range fields {
			if !ratelimitstreak.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratelimitstreak.FieldID {
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
		_spec.SetField(ratelimitstreak.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(ratelimitstreak.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(ratelimitstreak.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Consecutive429(); ok {
		_spec.SetField(ratelimitstreak.FieldConsecutive429, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutive429(); ok {
		_spec.AddField(ratelimitstreak.FieldConsecutive429, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ratelimitstreak.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RateLimitStreak{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitstreak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
