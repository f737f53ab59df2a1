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
	"github.com/missionloop/groundcontrol/ent/secret"
)

// SecretUpdate is the builder for updating Secret entities.
type SecretUpdate struct {
	config
	hooks    []Hook
	mutation *SecretMutation
}

// Where appends a list predicates to the SecretUpdate builder.
func (_u *SecretUpdate) Where(ps ...predicate.Secret) *SecretUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *SecretUpdate) SetWorkspaceID(v string) *SecretUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableWorkspaceID(v *string) *SecretUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetSecretName sets the "secret_name" field.
func (_u *SecretUpdate) SetSecretName(v string) *SecretUpdate {
	_u.mutation.SetSecretName(v)
	return _u
}

// SetNillableSecretName sets the "secret_name" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableSecretName(v *string) *SecretUpdate {
	if v != nil {
		_u.SetSecretName(*v)
	}
	return _u
}

// SetAlgorithm sets the "algorithm" field.
func (_u *SecretUpdate) SetAlgorithm(v string) *SecretUpdate {
	_u.mutation.SetAlgorithm(v)
	return _u
}

// SetNillableAlgorithm sets the "algorithm" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableAlgorithm(v *string) *SecretUpdate {
	if v != nil {
		_u.SetAlgorithm(*v)
	}
	return _u
}

// SetCiphertext sets the "ciphertext" field.
func (_u *SecretUpdate) SetCiphertext(v []byte) *SecretUpdate {
	_u.mutation.SetCiphertext(v)
	return _u
}

// SetNonce sets the "nonce" field.
func (_u *SecretUpdate) SetNonce(v []byte) *SecretUpdate {
	_u.mutation.SetNonce(v)
	return _u
}

// SetCreatedByPrincipalID sets the "created_by_principal_id" field.
func (_u *SecretUpdate) SetCreatedByPrincipalID(v string) *SecretUpdate {
	_u.mutation.SetCreatedByPrincipalID(v)
	return _u
}

// SetNillableCreatedByPrincipalID sets the "created_by_principal_id" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableCreatedByPrincipalID(v *string) *SecretUpdate {
	if v != nil {
		_u.SetCreatedByPrincipalID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SecretUpdate) SetCreatedAt(v time.Time) *SecretUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableCreatedAt(v *time.Time) *SecretUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *SecretUpdate) SetLastAccessedAt(v time.Time) *SecretUpdate {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableLastAccessedAt(v *time.Time) *SecretUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *SecretUpdate) ClearLastAccessedAt() *SecretUpdate {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// Mutation returns the SecretMutation object of the builder.
func (_u *SecretUpdate) Mutation() *SecretMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SecretUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecretUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SecretUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecretUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SecretUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(secret.Table, secret.Columns, sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(secret.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecretName(); ok {
		_spec.SetField(secret.FieldSecretName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Algorithm(); ok {
		_spec.SetField(secret.FieldAlgorithm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(secret.FieldCiphertext, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Nonce(); ok {
		_spec.SetField(secret.FieldNonce, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.CreatedByPrincipalID(); ok {
		_spec.SetField(secret.FieldCreatedByPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(secret.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(secret.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(secret.FieldLastAccessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{secret.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SecretUpdateOne is the builder for updating a single Secret entity.
type SecretUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SecretMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *SecretUpdateOne) SetWorkspaceID(v string) *SecretUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableWorkspaceID(v *string) *SecretUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetSecretName sets the "secret_name" field.
func (_u *SecretUpdateOne) SetSecretName(v string) *SecretUpdateOne {
	_u.mutation.SetSecretName(v)
	return _u
}

// SetNillableSecretName sets the "secret_name" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableSecretName(v *string) *SecretUpdateOne {
	if v != nil {
		_u.SetSecretName(*v)
	}
	return _u
}

// SetAlgorithm sets the "algorithm" field.
func (_u *SecretUpdateOne) SetAlgorithm(v string) *SecretUpdateOne {
	_u.mutation.SetAlgorithm(v)
	return _u
}

// SetNillableAlgorithm sets the "algorithm" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableAlgorithm(v *string) *SecretUpdateOne {
	if v != nil {
		_u.SetAlgorithm(*v)
	}
	return _u
}

// SetCiphertext sets the "ciphertext" field.
func (_u *SecretUpdateOne) SetCiphertext(v []byte) *SecretUpdateOne {
	_u.mutation.SetCiphertext(v)
	return _u
}

// SetNonce sets the "nonce" field.
func (_u *SecretUpdateOne) SetNonce(v []byte) *SecretUpdateOne {
	_u.mutation.SetNonce(v)
	return _u
}

// SetCreatedByPrincipalID sets the "created_by_principal_id" field.
func (_u *SecretUpdateOne) SetCreatedByPrincipalID(v string) *SecretUpdateOne {
	_u.mutation.SetCreatedByPrincipalID(v)
	return _u
}

// SetNillableCreatedByPrincipalID sets the "created_by_principal_id" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableCreatedByPrincipalID(v *string) *SecretUpdateOne {
	if v != nil {
		_u.SetCreatedByPrincipalID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SecretUpdateOne) SetCreatedAt(v time.Time) *SecretUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableCreatedAt(v *time.Time) *SecretUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *SecretUpdateOne) SetLastAccessedAt(v time.Time) *SecretUpdateOne {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableLastAccessedAt(v *time.Time) *SecretUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *SecretUpdateOne) ClearLastAccessedAt() *SecretUpdateOne {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// Mutation returns the SecretMutation object of the builder.
func (_u *SecretUpdateOne) Mutation() *SecretMutation {
	return _u.mutation
}

// Where appends a list predicates to the SecretUpdate builder.
func (_u *SecretUpdateOne) Where(ps ...predicate.Secret) *SecretUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SecretUpdateOne) Select(field string, fields ...string) *SecretUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Secret entity.
func (_u *SecretUpdateOne) Save(ctx context.Context) (*Secret, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecretUpdateOne) SaveX(ctx context.Context) *Secret {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SecretUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecretUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SecretUpdateOne) sqlSave(ctx context.Context) (_node *Secret, err error) {
	_spec := sqlgraph.NewUpdateSpec(secret.Table, secret.Columns, sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Secret.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, secret.FieldID)
		for _, f := range fields {
			if !secret.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != secret.FieldID {
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
		_spec.SetField(secret.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecretName(); ok {
		_spec.SetField(secret.FieldSecretName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Algorithm(); ok {
		_spec.SetField(secret.FieldAlgorithm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(secret.FieldCiphertext, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Nonce(); ok {
		_spec.SetField(secret.FieldNonce, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.CreatedByPrincipalID(); ok {
		_spec.SetField(secret.FieldCreatedByPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(secret.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(secret.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(secret.FieldLastAccessedAt, field.TypeTime)
	}
	_node = &Secret{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{secret.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
