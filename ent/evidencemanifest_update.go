// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/evidencemanifest"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// EvidenceManifestUpdate is the builder for updating EvidenceManifest entities.
type EvidenceManifestUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceManifestMutation
}

// Where appends a list predicates to the EvidenceManifestUpdate builder.
func (_u *EvidenceManifestUpdate) Where(ps ...predicate.EvidenceManifest) *EvidenceManifestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *EvidenceManifestUpdate) SetWorkspaceID(v string) *EvidenceManifestUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *EvidenceManifestUpdate) SetNillableWorkspaceID(v *string) *EvidenceManifestUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *EvidenceManifestUpdate) SetRunID(v string) *EvidenceManifestUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *EvidenceManifestUpdate) SetNillableRunID(v *string) *EvidenceManifestUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetArtifactIds sets the "artifact_ids" field.
func (_u *EvidenceManifestUpdate) SetArtifactIds(v []string) *EvidenceManifestUpdate {
	_u.mutation.SetArtifactIds(v)
	return _u
}

// AppendArtifactIds appends value to the "artifact_ids" field.
func (_u *EvidenceManifestUpdate) AppendArtifactIds(v []string) *EvidenceManifestUpdate {
	_u.mutation.AppendArtifactIds(v)
	return _u
}

// SetManifestHash sets the "manifest_hash" field.
func (_u *EvidenceManifestUpdate) SetManifestHash(v string) *EvidenceManifestUpdate {
	_u.mutation.SetManifestHash(v)
	return _u
}

// SetNillableManifestHash sets the "manifest_hash" field if the given value is not nil.
func (_u *EvidenceManifestUpdate) SetNillableManifestHash(v *string) *EvidenceManifestUpdate {
	if v != nil {
		_u.SetManifestHash(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *EvidenceManifestUpdate) SetLastEventID(v string) *EvidenceManifestUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *EvidenceManifestUpdate) SetNillableLastEventID(v *string) *EvidenceManifestUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvidenceManifestUpdate) SetCreatedAt(v time.Time) *EvidenceManifestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvidenceManifestUpdate) SetNillableCreatedAt(v *time.Time) *EvidenceManifestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvidenceManifestUpdate) SetUpdatedAt(v time.Time) *EvidenceManifestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EvidenceManifestMutation object of the builder.
func (_u *EvidenceManifestUpdate) Mutation() *EvidenceManifestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceManifestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceManifestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceManifestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceManifestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvidenceManifestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evidencemanifest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *EvidenceManifestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(evidencemanifest.Table, evidencemanifest.Columns, sqlgraph.NewFieldSpec(evidencemanifest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(evidencemanifest.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(evidencemanifest.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactIds(); ok {
		_spec.SetField(evidencemanifest.FieldArtifactIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifactIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidencemanifest.FieldArtifactIds, value)
		})
	}
	if value, ok := _u.mutation.ManifestHash(); ok {
		_spec.SetField(evidencemanifest.FieldManifestHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(evidencemanifest.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evidencemanifest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evidencemanifest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidencemanifest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceManifestUpdateOne is the builder for updating a single EvidenceManifest entity.
type EvidenceManifestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceManifestMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *EvidenceManifestUpdateOne) SetWorkspaceID(v string) *EvidenceManifestUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *EvidenceManifestUpdateOne) SetNillableWorkspaceID(v *string) *EvidenceManifestUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *EvidenceManifestUpdateOne) SetRunID(v string) *EvidenceManifestUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *EvidenceManifestUpdateOne) SetNillableRunID(v *string) *EvidenceManifestUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetArtifactIds sets the "artifact_ids" field.
func (_u *EvidenceManifestUpdateOne) SetArtifactIds(v []string) *EvidenceManifestUpdateOne {
	_u.mutation.SetArtifactIds(v)
	return _u
}

// AppendArtifactIds appends value to the "artifact_ids" field.
func (_u *EvidenceManifestUpdateOne) AppendArtifactIds(v []string) *EvidenceManifestUpdateOne {
	_u.mutation.AppendArtifactIds(v)
	return _u
}

// SetManifestHash sets the "manifest_hash" field.
func (_u *EvidenceManifestUpdateOne) SetManifestHash(v string) *EvidenceManifestUpdateOne {
	_u.mutation.SetManifestHash(v)
	return _u
}

// SetNillableManifestHash sets the "manifest_hash" field if the given value is not nil.
func (_u *EvidenceManifestUpdateOne) SetNillableManifestHash(v *string) *EvidenceManifestUpdateOne {
	if v != nil {
		_u.SetManifestHash(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *EvidenceManifestUpdateOne) SetLastEventID(v string) *EvidenceManifestUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *EvidenceManifestUpdateOne) SetNillableLastEventID(v *string) *EvidenceManifestUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvidenceManifestUpdateOne) SetCreatedAt(v time.Time) *EvidenceManifestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvidenceManifestUpdateOne) SetNillableCreatedAt(v *time.Time) *EvidenceManifestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvidenceManifestUpdateOne) SetUpdatedAt(v time.Time) *EvidenceManifestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EvidenceManifestMutation object of the builder.
func (_u *EvidenceManifestUpdateOne) Mutation() *EvidenceManifestMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvidenceManifestUpdate builder.
func (_u *EvidenceManifestUpdateOne) Where(ps ...predicate.EvidenceManifest) *EvidenceManifestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceManifestUpdateOne) Select(field string, fields ...string) *EvidenceManifestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvidenceManifest entity.
func (_u *EvidenceManifestUpdateOne) Save(ctx context.Context) (*EvidenceManifest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceManifestUpdateOne) SaveX(ctx context.Context) *EvidenceManifest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceManifestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceManifestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvidenceManifestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evidencemanifest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *EvidenceManifestUpdateOne) sqlSave(ctx context.Context) (_node *EvidenceManifest, err error) {
	_spec := sqlgraph.NewUpdateSpec(evidencemanifest.Table, evidencemanifest.Columns, sqlgraph.NewFieldSpec(evidencemanifest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvidenceManifest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidencemanifest.FieldID)
		for _, f := range fields {
			if !evidencemanifest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidencemanifest.FieldID {
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
		_spec.SetField(evidencemanifest.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(evidencemanifest.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactIds(); ok {
		_spec.SetField(evidencemanifest.FieldArtifactIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifactIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidencemanifest.FieldArtifactIds, value)
		})
	}
	if value, ok := _u.mutation.ManifestHash(); ok {
		_spec.SetField(evidencemanifest.FieldManifestHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(evidencemanifest.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evidencemanifest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evidencemanifest.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EvidenceManifest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidencemanifest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
