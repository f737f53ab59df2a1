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
	"github.com/missionloop/groundcontrol/ent/authsession"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// AuthSessionUpdate is the builder for updating AuthSession entities.
type AuthSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AuthSessionMutation
}

// Where appends a list predicates to the AuthSessionUpdate builder.
func (_u *AuthSessionUpdate) Where(ps ...predicate.AuthSession) *AuthSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AuthSessionUpdate) SetOwnerID(v string) *AuthSessionUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableOwnerID(v *string) *AuthSessionUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AuthSessionUpdate) SetWorkspaceID(v string) *AuthSessionUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableWorkspaceID(v *string) *AuthSessionUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (_u *AuthSessionUpdate) SetRefreshTokenHash(v string) *AuthSessionUpdate {
	_u.mutation.SetRefreshTokenHash(v)
	return _u
}

// SetNillableRefreshTokenHash sets the "refresh_token_hash" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableRefreshTokenHash(v *string) *AuthSessionUpdate {
	if v != nil {
		_u.SetRefreshTokenHash(*v)
	}
	return _u
}

// SetAccessExpiresAt sets the "access_expires_at" field.
func (_u *AuthSessionUpdate) SetAccessExpiresAt(v time.Time) *AuthSessionUpdate {
	_u.mutation.SetAccessExpiresAt(v)
	return _u
}

// SetNillableAccessExpiresAt sets the "access_expires_at" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableAccessExpiresAt(v *time.Time) *AuthSessionUpdate {
	if v != nil {
		_u.SetAccessExpiresAt(*v)
	}
	return _u
}

// SetRefreshExpiresAt sets the "refresh_expires_at" field.
func (_u *AuthSessionUpdate) SetRefreshExpiresAt(v time.Time) *AuthSessionUpdate {
	_u.mutation.SetRefreshExpiresAt(v)
	return _u
}

// SetNillableRefreshExpiresAt sets the "refresh_expires_at" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableRefreshExpiresAt(v *time.Time) *AuthSessionUpdate {
	if v != nil {
		_u.SetRefreshExpiresAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuthSessionUpdate) SetCreatedAt(v time.Time) *AuthSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableCreatedAt(v *time.Time) *AuthSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *AuthSessionUpdate) SetRevokedAt(v time.Time) *AuthSessionUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableRevokedAt(v *time.Time) *AuthSessionUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *AuthSessionUpdate) ClearRevokedAt() *AuthSessionUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the AuthSessionMutation object of the builder.
func (_u *AuthSessionUpdate) Mutation() *AuthSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuthSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuthSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuthSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(authsession.Table, authsession.Columns, sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(authsession.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(authsession.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshTokenHash(); ok {
		_spec.SetField(authsession.FieldRefreshTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessExpiresAt(); ok {
		_spec.SetField(authsession.FieldAccessExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RefreshExpiresAt(); ok {
		_spec.SetField(authsession.FieldRefreshExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(authsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(authsession.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(authsession.FieldRevokedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuthSessionUpdateOne is the builder for updating a single AuthSession entity.
type AuthSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuthSessionMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *AuthSessionUpdateOne) SetOwnerID(v string) *AuthSessionUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableOwnerID(v *string) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AuthSessionUpdateOne) SetWorkspaceID(v string) *AuthSessionUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableWorkspaceID(v *string) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (_u *AuthSessionUpdateOne) SetRefreshTokenHash(v string) *AuthSessionUpdateOne {
	_u.mutation.SetRefreshTokenHash(v)
	return _u
}

// SetNillableRefreshTokenHash sets the "refresh_token_hash" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableRefreshTokenHash(v *string) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetRefreshTokenHash(*v)
	}
	return _u
}

// SetAccessExpiresAt sets the "access_expires_at" field.
func (_u *AuthSessionUpdateOne) SetAccessExpiresAt(v time.Time) *AuthSessionUpdateOne {
	_u.mutation.SetAccessExpiresAt(v)
	return _u
}

// SetNillableAccessExpiresAt sets the "access_expires_at" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableAccessExpiresAt(v *time.Time) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetAccessExpiresAt(*v)
	}
	return _u
}

// SetRefreshExpiresAt sets the "refresh_expires_at" field.
func (_u *AuthSessionUpdateOne) SetRefreshExpiresAt(v time.Time) *AuthSessionUpdateOne {
	_u.mutation.SetRefreshExpiresAt(v)
	return _u
}

// SetNillableRefreshExpiresAt sets the "refresh_expires_at" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableRefreshExpiresAt(v *time.Time) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetRefreshExpiresAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuthSessionUpdateOne) SetCreatedAt(v time.Time) *AuthSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *AuthSessionUpdateOne) SetRevokedAt(v time.Time) *AuthSessionUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableRevokedAt(v *time.Time) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *AuthSessionUpdateOne) ClearRevokedAt() *AuthSessionUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the AuthSessionMutation object of the builder.
func (_u *AuthSessionUpdateOne) Mutation() *AuthSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuthSessionUpdate builder.
func (_u *AuthSessionUpdateOne) Where(ps ...predicate.AuthSession) *AuthSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuthSessionUpdateOne) Select(field string, fields ...string) *AuthSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuthSession entity.
func (_u *AuthSessionUpdateOne) Save(ctx context.Context) (*AuthSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthSessionUpdateOne) SaveX(ctx context.Context) *AuthSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuthSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuthSessionUpdateOne) sqlSave(ctx context.Context) (_node *AuthSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(authsession.Table, authsession.Columns, sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuthSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, authsession.FieldID)
		for _, f := range fields {
			if !authsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != authsession.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(authsession.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(authsession.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshTokenHash(); ok {
		_spec.SetField(authsession.FieldRefreshTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessExpiresAt(); ok {
		_spec.SetField(authsession.FieldAccessExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RefreshExpiresAt(); ok {
		_spec.SetField(authsession.FieldRefreshExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(authsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(authsession.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(authsession.FieldRevokedAt, field.TypeTime)
	}
	_node = &AuthSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
