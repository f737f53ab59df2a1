// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/delegationedge"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// DelegationEdgeDelete is the builder for deleting a DelegationEdge entity.
type DelegationEdgeDelete struct {
	config
	hooks    []Hook
	mutation *DelegationEdgeMutation
}

// Where appends a list predicates to the DelegationEdgeDelete builder.
func (_d *DelegationEdgeDelete) Where(ps ...predicate.DelegationEdge) *DelegationEdgeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DelegationEdgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DelegationEdgeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DelegationEdgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(delegationedge.Table, sqlgraph.NewFieldSpec(delegationedge.FieldID, field.TypeString))
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

// DelegationEdgeDeleteOne is the builder for deleting a single DelegationEdge entity.
type DelegationEdgeDeleteOne struct {
	_d *DelegationEdgeDelete
}

// Where appends a list predicates to the DelegationEdgeDelete builder.
func (_d *DelegationEdgeDeleteOne) Where(ps ...predicate.DelegationEdge) *DelegationEdgeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DelegationEdgeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{delegationedge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DelegationEdgeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
