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
	"github.com/missionloop/groundcontrol/ent/owner"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// OwnerUpdate is the builder for updating Owner entities.
type OwnerUpdate struct {
	config
	hooks    []Hook
	mutation *OwnerMutation
}

// Where appends a list predicates to the OwnerUpdate builder.
func (_u *OwnerUpdate) Where(ps ...predicate.Owner) *OwnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *OwnerUpdate) SetWorkspaceID(v string) *OwnerUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *OwnerUpdate) SetNillableWorkspaceID(v *string) *OwnerUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *OwnerUpdate) SetEmail(v string) *OwnerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *OwnerUpdate) SetNillableEmail(v *string) *OwnerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPrincipalID sets the "principal_id" field.
func (_u *OwnerUpdate) SetPrincipalID(v string) *OwnerUpdate {
	_u.mutation.SetPrincipalID(v)
	return _u
}

// SetNillablePrincipalID sets the "principal_id" field if the given value is not nil.
func (_u *OwnerUpdate) SetNillablePrincipalID(v *string) *OwnerUpdate {
	if v != nil {
		_u.SetPrincipalID(*v)
	}
	return _u
}

// SetPassphraseHash sets the "passphrase_hash" field.
func (_u *OwnerUpdate) SetPassphraseHash(v string) *OwnerUpdate {
	_u.mutation.SetPassphraseHash(v)
	return _u
}

// SetNillablePassphraseHash sets the "passphrase_hash" field if the given value is not nil.
func (_u *OwnerUpdate) SetNillablePassphraseHash(v *string) *OwnerUpdate {
	if v != nil {
		_u.SetPassphraseHash(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OwnerUpdate) SetCreatedAt(v time.Time) *OwnerUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OwnerUpdate) SetNillableCreatedAt(v *time.Time) *OwnerUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the OwnerMutation object of the builder.
func (_u *OwnerUpdate) Mutation() *OwnerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OwnerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OwnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OwnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OwnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OwnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(owner.Table, owner.Columns, sqlgraph.NewFieldSpec(owner.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(owner.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(owner.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrincipalID(); ok {
		_spec.SetField(owner.FieldPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassphraseHash(); ok {
		_spec.SetField(owner.FieldPassphraseHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(owner.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{owner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OwnerUpdateOne is the builder for updating a single Owner entity.
type OwnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OwnerMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *OwnerUpdateOne) SetWorkspaceID(v string) *OwnerUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *OwnerUpdateOne) SetNillableWorkspaceID(v *string) *OwnerUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *OwnerUpdateOne) SetEmail(v string) *OwnerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *OwnerUpdateOne) SetNillableEmail(v *string) *OwnerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPrincipalID sets the "principal_id" field.
func (_u *OwnerUpdateOne) SetPrincipalID(v string) *OwnerUpdateOne {
	_u.mutation.SetPrincipalID(v)
	return _u
}

// SetNillablePrincipalID sets the "principal_id" field if the given value is not nil.
func (_u *OwnerUpdateOne) SetNillablePrincipalID(v *string) *OwnerUpdateOne {
	if v != nil {
		_u.SetPrincipalID(*v)
	}
	return _u
}

// SetPassphraseHash sets the "passphrase_hash" field.
func (_u *OwnerUpdateOne) SetPassphraseHash(v string) *OwnerUpdateOne {
	_u.mutation.SetPassphraseHash(v)
	return _u
}

// SetNillablePassphraseHash sets the "passphrase_hash" field if the given value is not nil.
func (_u *OwnerUpdateOne) SetNillablePassphraseHash(v *string) *OwnerUpdateOne {
	if v != nil {
		_u.SetPassphraseHash(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OwnerUpdateOne) SetCreatedAt(v time.Time) *OwnerUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OwnerUpdateOne) SetNillableCreatedAt(v *time.Time) *OwnerUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the OwnerMutation object of the builder.
func (_u *OwnerUpdateOne) Mutation() *OwnerMutation {
	return _u.mutation
}

// Where appends a list predicates to the OwnerUpdate builder.
func (_u *OwnerUpdateOne) Where(ps ...predicate.Owner) *OwnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OwnerUpdateOne) Select(field string, fields ...string) *OwnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Owner entity.
func (_u *OwnerUpdateOne) Save(ctx context.Context) (*Owner, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OwnerUpdateOne) SaveX(ctx context.Context) *Owner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OwnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OwnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OwnerUpdateOne) sqlSave(ctx context.Context) (_node *Owner, err error) {
	_spec := sqlgraph.NewUpdateSpec(owner.Table, owner.Columns, sqlgraph.NewFieldSpec(owner.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Owner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, owner.FieldID)
		for _, f := range fields {
			if !owner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != owner.FieldID {
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
		_spec.SetField(owner.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(owner.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrincipalID(); ok {
		_spec.SetField(owner.FieldPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassphraseHash(); ok {
		_spec.SetField(owner.FieldPassphraseHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(owner.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Owner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{owner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
