// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/capabilitytoken"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// CapabilityTokenDelete is the builder for deleting a CapabilityToken entity.
type CapabilityTokenDelete struct {
	config
	hooks    []Hook
	mutation *CapabilityTokenMutation
}

// Where appends a list predicates to the CapabilityTokenDelete builder.
func (_d *CapabilityTokenDelete) Where(ps ...predicate.CapabilityToken) *CapabilityTokenDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CapabilityTokenDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CapabilityTokenDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CapabilityTokenDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(capabilitytoken.Table, sqlgraph.NewFieldSpec(capabilitytoken.FieldID, field.TypeString))
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

// CapabilityTokenDeleteOne is the builder for deleting a single CapabilityToken entity.
type CapabilityTokenDeleteOne struct {
	_d *CapabilityTokenDelete
}

// Where appends a list predicates to the CapabilityTokenDelete builder.
func (_d *CapabilityTokenDeleteOne) Where(ps ...predicate.CapabilityToken) *CapabilityTokenDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CapabilityTokenDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{capabilitytoken.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CapabilityTokenDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
