// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/incidentlearning"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// IncidentLearningDelete is the builder for deleting a IncidentLearning entity.
type IncidentLearningDelete struct {
	config
	hooks    []Hook
	mutation *IncidentLearningMutation
}

// Where appends a list predicates to the IncidentLearningDelete builder.
func (_d *IncidentLearningDelete) Where(ps ...predicate.IncidentLearning) *IncidentLearningDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *IncidentLearningDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IncidentLearningDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *IncidentLearningDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(incidentlearning.Table, sqlgraph.NewFieldSpec(incidentlearning.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// IncidentLearningDeleteOne is the builder for deleting a single IncidentLearning entity.
type IncidentLearningDeleteOne struct {
	_d *IncidentLearningDelete
}

// Where appends a list predicates to the IncidentLearningDelete builder.
func (_d *IncidentLearningDeleteOne) Where(ps ...predicate.IncidentLearning) *IncidentLearningDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *IncidentLearningDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{incidentlearning.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IncidentLearningDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
