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
	"github.com/missionloop/groundcontrol/ent/incidentlearning"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// IncidentLearningUpdate is the builder for updating IncidentLearning entities.
type IncidentLearningUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentLearningMutation
}

// Where appends a list predicates to the IncidentLearningUpdate builder.
func (_u *IncidentLearningUpdate) Where(ps ...predicate.IncidentLearning) *IncidentLearningUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *IncidentLearningUpdate) SetWorkspaceID(v string) *IncidentLearningUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *IncidentLearningUpdate) SetNillableWorkspaceID(v *string) *IncidentLearningUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *IncidentLearningUpdate) SetIncidentID(v string) *IncidentLearningUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *IncidentLearningUpdate) SetNillableIncidentID(v *string) *IncidentLearningUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *IncidentLearningUpdate) SetSummary(v string) *IncidentLearningUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *IncidentLearningUpdate) SetNillableSummary(v *string) *IncidentLearningUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetLoggedBy sets the "logged_by" field.
func (_u *IncidentLearningUpdate) SetLoggedBy(v string) *IncidentLearningUpdate {
	_u.mutation.SetLoggedBy(v)
	return _u
}

// SetNillableLoggedBy sets the "logged_by" field if the given value is not nil.
func (_u *IncidentLearningUpdate) SetNillableLoggedBy(v *string) *IncidentLearningUpdate {
	if v != nil {
		_u.SetLoggedBy(*v)
	}
	return _u
}

// ClearLoggedBy clears the value of the "logged_by" field.
func (_u *IncidentLearningUpdate) ClearLoggedBy() *IncidentLearningUpdate {
	_u.mutation.ClearLoggedBy()
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *IncidentLearningUpdate) SetLastEventID(v string) *IncidentLearningUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *IncidentLearningUpdate) SetNillableLastEventID(v *string) *IncidentLearningUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IncidentLearningUpdate) SetCreatedAt(v time.Time) *IncidentLearningUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IncidentLearningUpdate) SetNillableCreatedAt(v *time.Time) *IncidentLearningUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the IncidentLearningMutation object of the builder.
func (_u *IncidentLearningUpdate) Mutation() *IncidentLearningMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentLearningUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentLearningUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentLearningUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentLearningUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IncidentLearningUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(incidentlearning.Table, incidentlearning.Columns, sqlgraph.NewFieldSpec(incidentlearning.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(incidentlearning.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(incidentlearning.FieldIncidentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(incidentlearning.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoggedBy(); ok {
		_spec.SetField(incidentlearning.FieldLoggedBy, field.TypeString, value)
	}
	if _u.mutation.LoggedByCleared() {
		_spec.ClearField(incidentlearning.FieldLoggedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(incidentlearning.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(incidentlearning.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentlearning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentLearningUpdateOne is the builder for updating a single IncidentLearning entity.
type IncidentLearningUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentLearningMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *IncidentLearningUpdateOne) SetWorkspaceID(v string) *IncidentLearningUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *IncidentLearningUpdateOne) SetNillableWorkspaceID(v *string) *IncidentLearningUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *IncidentLearningUpdateOne) SetIncidentID(v string) *IncidentLearningUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *IncidentLearningUpdateOne) SetNillableIncidentID(v *string) *IncidentLearningUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *IncidentLearningUpdateOne) SetSummary(v string) *IncidentLearningUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *IncidentLearningUpdateOne) SetNillableSummary(v *string) *IncidentLearningUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetLoggedBy sets the "logged_by" field.
func (_u *IncidentLearningUpdateOne) SetLoggedBy(v string) *IncidentLearningUpdateOne {
	_u.mutation.SetLoggedBy(v)
	return _u
}

// SetNillableLoggedBy sets the "logged_by" field if the given value is not nil.
func (_u *IncidentLearningUpdateOne) SetNillableLoggedBy(v *string) *IncidentLearningUpdateOne {
	if v != nil {
		_u.SetLoggedBy(*v)
	}
	return _u
}

// ClearLoggedBy clears the value of the "logged_by" field.
func (_u *IncidentLearningUpdateOne) ClearLoggedBy() *IncidentLearningUpdateOne {
	_u.mutation.ClearLoggedBy()
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *IncidentLearningUpdateOne) SetLastEventID(v string) *IncidentLearningUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *IncidentLearningUpdateOne) SetNillableLastEventID(v *string) *IncidentLearningUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IncidentLearningUpdateOne) SetCreatedAt(v time.Time) *IncidentLearningUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IncidentLearningUpdateOne) SetNillableCreatedAt(v *time.Time) *IncidentLearningUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the IncidentLearningMutation object of the builder.
func (_u *IncidentLearningUpdateOne) Mutation() *IncidentLearningMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncidentLearningUpdate builder.
func (_u *IncidentLearningUpdateOne) Where(ps ...predicate.IncidentLearning) *IncidentLearningUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentLearningUpdateOne) Select(field string, fields ...string) *IncidentLearningUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IncidentLearning entity.
func (_u *IncidentLearningUpdateOne) Save(ctx context.Context) (*IncidentLearning, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentLearningUpdateOne) SaveX(ctx context.Context) *IncidentLearning {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentLearningUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentLearningUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IncidentLearningUpdateOne) sqlSave(ctx context.Context) (_node *IncidentLearning, err error) {
	_spec := sqlgraph.NewUpdateSpec(incidentlearning.Table, incidentlearning.Columns, sqlgraph.NewFieldSpec(incidentlearning.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IncidentLearning.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incidentlearning.FieldID)
		for _, f := range fields {
			if !incidentlearning.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incidentlearning.FieldID {
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
		_spec.SetField(incidentlearning.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(incidentlearning.FieldIncidentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(incidentlearning.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoggedBy(); ok {
		_spec.SetField(incidentlearning.FieldLoggedBy, field.TypeString, value)
	}
	if _u.mutation.LoggedByCleared() {
		_spec.ClearField(incidentlearning.FieldLoggedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(incidentlearning.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(incidentlearning.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &IncidentLearning{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentlearning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
