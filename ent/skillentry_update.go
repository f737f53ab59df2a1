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
	"github.com/missionloop/groundcontrol/ent/skillentry"
)

// SkillEntryUpdate is the builder for updating SkillEntry entities.
type SkillEntryUpdate struct {
	config
	hooks    []Hook
	mutation *SkillEntryMutation
}

// Where appends a list predicates to the SkillEntryUpdate builder.
func (_u *SkillEntryUpdate) Where(ps ...predicate.SkillEntry) *SkillEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *SkillEntryUpdate) SetWorkspaceID(v string) *SkillEntryUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *SkillEntryUpdate) SetNillableWorkspaceID(v *string) *SkillEntryUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *SkillEntryUpdate) SetAgentID(v string) *SkillEntryUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *SkillEntryUpdate) SetNillableAgentID(v *string) *SkillEntryUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *SkillEntryUpdate) SetSkillName(v string) *SkillEntryUpdate {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *SkillEntryUpdate) SetNillableSkillName(v *string) *SkillEntryUpdate {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SkillEntryUpdate) SetAttempts(v int64) *SkillEntryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SkillEntryUpdate) SetNillableAttempts(v *int64) *SkillEntryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SkillEntryUpdate) AddAttempts(v int64) *SkillEntryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *SkillEntryUpdate) SetSuccesses(v int64) *SkillEntryUpdate {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *SkillEntryUpdate) SetNillableSuccesses(v *int64) *SkillEntryUpdate {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *SkillEntryUpdate) AddSuccesses(v int64) *SkillEntryUpdate {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetSurvivalScore sets the "survival_score" field.
func (_u *SkillEntryUpdate) SetSurvivalScore(v float64) *SkillEntryUpdate {
	_u.mutation.ResetSurvivalScore()
	_u.mutation.SetSurvivalScore(v)
	return _u
}

// SetNillableSurvivalScore sets the "survival_score" field if the given value is not nil.
func (_u *SkillEntryUpdate) SetNillableSurvivalScore(v *float64) *SkillEntryUpdate {
	if v != nil {
		_u.SetSurvivalScore(*v)
	}
	return _u
}

// AddSurvivalScore adds value to the "survival_score" field.
func (_u *SkillEntryUpdate) AddSurvivalScore(v float64) *SkillEntryUpdate {
	_u.mutation.AddSurvivalScore(v)
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *SkillEntryUpdate) SetLastEventID(v string) *SkillEntryUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *SkillEntryUpdate) SetNillableLastEventID(v *string) *SkillEntryUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillEntryUpdate) SetUpdatedAt(v time.Time) *SkillEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillEntryMutation object of the builder.
func (_u *SkillEntryUpdate) Mutation() *SkillEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillentry.Table, skillentry.Columns, sqlgraph.NewFieldSpec(skillentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(skillentry.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(skillentry.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(skillentry.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(skillentry.FieldAttempts, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(skillentry.FieldAttempts, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(skillentry.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(skillentry.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SurvivalScore(); ok {
		_spec.SetField(skillentry.FieldSurvivalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSurvivalScore(); ok {
		_spec.AddField(skillentry.FieldSurvivalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(skillentry.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillEntryUpdateOne is the builder for updating a single SkillEntry entity.
type SkillEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillEntryMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *SkillEntryUpdateOne) SetWorkspaceID(v string) *SkillEntryUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *SkillEntryUpdateOne) SetNillableWorkspaceID(v *string) *SkillEntryUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *SkillEntryUpdateOne) SetAgentID(v string) *SkillEntryUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *SkillEntryUpdateOne) SetNillableAgentID(v *string) *SkillEntryUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *SkillEntryUpdateOne) SetSkillName(v string) *SkillEntryUpdateOne {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *SkillEntryUpdateOne) SetNillableSkillName(v *string) *SkillEntryUpdateOne {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SkillEntryUpdateOne) SetAttempts(v int64) *SkillEntryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SkillEntryUpdateOne) SetNillableAttempts(v *int64) *SkillEntryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SkillEntryUpdateOne) AddAttempts(v int64) *SkillEntryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *SkillEntryUpdateOne) SetSuccesses(v int64) *SkillEntryUpdateOne {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *SkillEntryUpdateOne) SetNillableSuccesses(v *int64) *SkillEntryUpdateOne {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *SkillEntryUpdateOne) AddSuccesses(v int64) *SkillEntryUpdateOne {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetSurvivalScore sets the "survival_score" field.
func (_u *SkillEntryUpdateOne) SetSurvivalScore(v float64) *SkillEntryUpdateOne {
	_u.mutation.ResetSurvivalScore()
	_u.mutation.SetSurvivalScore(v)
	return _u
}

// SetNillableSurvivalScore sets the "survival_score" field if the given value is not nil.
func (_u *SkillEntryUpdateOne) SetNillableSurvivalScore(v *float64) *SkillEntryUpdateOne {
	if v != nil {
		_u.SetSurvivalScore(*v)
	}
	return _u
}

// AddSurvivalScore adds value to the "survival_score" field.
func (_u *SkillEntryUpdateOne) AddSurvivalScore(v float64) *SkillEntryUpdateOne {
	_u.mutation.AddSurvivalScore(v)
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *SkillEntryUpdateOne) SetLastEventID(v string) *SkillEntryUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *SkillEntryUpdateOne) SetNillableLastEventID(v *string) *SkillEntryUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillEntryUpdateOne) SetUpdatedAt(v time.Time) *SkillEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillEntryMutation object of the builder.
func (_u *SkillEntryUpdateOne) Mutation() *SkillEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillEntryUpdate builder.
func (_u *SkillEntryUpdateOne) Where(ps ...predicate.SkillEntry) *SkillEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillEntryUpdateOne) Select(field string, fields ...string) *SkillEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillEntry entity.
func (_u *SkillEntryUpdateOne) Save(ctx context.Context) (*SkillEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillEntryUpdateOne) SaveX(ctx context.Context) *SkillEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillEntryUpdateOne) sqlSave(ctx context.Context) (_node *SkillEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillentry.Table, skillentry.Columns, sqlgraph.NewFieldSpec(skillentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillentry.FieldID)
		for _, f := range fields {
			if !skillentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillentry.FieldID {
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
		_spec.SetField(skillentry.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(skillentry.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(skillentry.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(skillentry.FieldAttempts, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(skillentry.FieldAttempts, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(skillentry.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(skillentry.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SurvivalScore(); ok {
		_spec.SetField(skillentry.FieldSurvivalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSurvivalScore(); ok {
		_spec.AddField(skillentry.FieldSurvivalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(skillentry.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SkillEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
