// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/predicate"
	"github.com/missionloop/groundcontrol/ent/ratelimitstreak"
)

// RateLimitStreakDelete is the builder for deleting a RateLimitStreak entity.
type RateLimitStreakDelete struct {
	config
	hooks    []Hook
	mutation *RateLimitStreakMutation
}

// Where appends a list predicates to the RateLimitStreakDelete builder.
func (_d *RateLimitStreakDelete) Where(ps ...predicate.RateLimitStreak) *RateLimitStreakDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RateLimitStreakDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RateLimitStreakDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RateLimitStreakDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ratelimitstreak.Table, sqlgraph.NewFieldSpec(ratelimitstreak.FieldID, field.TypeString))
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

// RateLimitStreakDeleteOne is the builder for deleting a single RateLimitStreak entity.
type RateLimitStreakDeleteOne struct {
	_d *RateLimitStreakDelete
}

// Where appends a list predicates to the RateLimitStreakDelete builder.
func (_d *RateLimitStreakDeleteOne) Where(ps ...predicate.RateLimitStreak) *RateLimitStreakDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RateLimitStreakDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ratelimitstreak.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RateLimitStreakDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
