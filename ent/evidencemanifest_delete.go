// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/evidencemanifest"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// EvidenceManifestDelete is the builder for deleting a EvidenceManifest entity.
type EvidenceManifestDelete struct {
	config
	hooks    []Hook
	mutation *EvidenceManifestMutation
}

// Where appends a list predicates to the EvidenceManifestDelete builder.
func (_d *EvidenceManifestDelete) Where(ps ...predicate.EvidenceManifest) *EvidenceManifestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EvidenceManifestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvidenceManifestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EvidenceManifestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(evidencemanifest.Table, sqlgraph.NewFieldSpec(evidencemanifest.FieldID, field.TypeString))
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

// EvidenceManifestDeleteOne is the builder for deleting a single EvidenceManifest entity.
type EvidenceManifestDeleteOne struct {
	_d *EvidenceManifestDelete
}

// Where appends a list predicates to the EvidenceManifestDelete builder.
func (_d *EvidenceManifestDeleteOne) Where(ps ...predicate.EvidenceManifest) *EvidenceManifestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EvidenceManifestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{evidencemanifest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvidenceManifestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
