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
	"github.com/missionloop/groundcontrol/ent/capabilitytoken"
	"github.com/missionloop/groundcontrol/ent/predicate"
	"github.com/missionloop/groundcontrol/pkg/models"
)

// CapabilityTokenUpdate is the builder for updating CapabilityToken entities.
type CapabilityTokenUpdate struct {
	config
	hooks    []Hook
	mutation *CapabilityTokenMutation
}

// Where appends a list predicates to the CapabilityTokenUpdate builder.
func (_u *CapabilityTokenUpdate) Where(ps ...predicate.CapabilityToken) *CapabilityTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *CapabilityTokenUpdate) SetWorkspaceID(v string) *CapabilityTokenUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *CapabilityTokenUpdate) SetNillableWorkspaceID(v *string) *CapabilityTokenUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (_u *CapabilityTokenUpdate) SetIssuedToPrincipalID(v string) *CapabilityTokenUpdate {
	_u.mutation.SetIssuedToPrincipalID(v)
	return _u
}

// SetNillableIssuedToPrincipalID sets the "issued_to_principal_id" field if the given value is not nil.
func (_u *CapabilityTokenUpdate) SetNillableIssuedToPrincipalID(v *string) *CapabilityTokenUpdate {
	if v != nil {
		_u.SetIssuedToPrincipalID(*v)
	}
	return _u
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (_u *CapabilityTokenUpdate) SetGrantedByPrincipalID(v string) *CapabilityTokenUpdate {
	_u.mutation.SetGrantedByPrincipalID(v)
	return _u
}

// SetNillableGrantedByPrincipalID sets the "granted_by_principal_id" field if the given value is not nil.
func (_u *CapabilityTokenUpdate) SetNillableGrantedByPrincipalID(v *string) *CapabilityTokenUpdate {
	if v != nil {
		_u.SetGrantedByPrincipalID(*v)
	}
	return _u
}

// SetParentTokenID sets the "parent_token_id" field.
func (_u *CapabilityTokenUpdate) SetParentTokenID(v string) *CapabilityTokenUpdate {
	_u.mutation.SetParentTokenID(v)
	return _u
}

// SetNillableParentTokenID sets the "parent_token_id" field if the given value is not nil.
func (_u *CapabilityTokenUpdate) SetNillableParentTokenID(v *string) *CapabilityTokenUpdate {
	if v != nil {
		_u.SetParentTokenID(*v)
	}
	return _u
}

// ClearParentTokenID clears the value of the "parent_token_id" field.
func (_u *CapabilityTokenUpdate) ClearParentTokenID() *CapabilityTokenUpdate {
	_u.mutation.ClearParentTokenID()
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *CapabilityTokenUpdate) SetScopes(v models.ScopeSet) *CapabilityTokenUpdate {
	_u.mutation.SetScopes(v)
	return _u
}

// SetNillableScopes sets the "scopes" field if the given value is not nil.
func (_u *CapabilityTokenUpdate) SetNillableScopes(v *models.ScopeSet) *CapabilityTokenUpdate {
	if v != nil {
		_u.SetScopes(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *CapabilityTokenUpdate) SetValidUntil(v time.Time) *CapabilityTokenUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *CapabilityTokenUpdate) SetNillableValidUntil(v *time.Time) *CapabilityTokenUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *CapabilityTokenUpdate) ClearValidUntil() *CapabilityTokenUpdate {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CapabilityTokenUpdate) SetCreatedAt(v time.Time) *CapabilityTokenUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CapabilityTokenUpdate) SetNillableCreatedAt(v *time.Time) *CapabilityTokenUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *CapabilityTokenUpdate) SetRevokedAt(v time.Time) *CapabilityTokenUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *CapabilityTokenUpdate) SetNillableRevokedAt(v *time.Time) *CapabilityTokenUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *CapabilityTokenUpdate) ClearRevokedAt() *CapabilityTokenUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the CapabilityTokenMutation object of the builder.
func (_u *CapabilityTokenUpdate) Mutation() *CapabilityTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CapabilityTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CapabilityTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CapabilityTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CapabilityTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CapabilityTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(capabilitytoken.Table, capabilitytoken.Columns, sqlgraph.NewFieldSpec(capabilitytoken.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(capabilitytoken.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuedToPrincipalID(); ok {
		_spec.SetField(capabilitytoken.FieldIssuedToPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrantedByPrincipalID(); ok {
		_spec.SetField(capabilitytoken.FieldGrantedByPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentTokenID(); ok {
		_spec.SetField(capabilitytoken.FieldParentTokenID, field.TypeString, value)
	}
	if _u.mutation.ParentTokenIDCleared() {
		_spec.ClearField(capabilitytoken.FieldParentTokenID, field.TypeString)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(capabilitytoken.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(capabilitytoken.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(capabilitytoken.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(capabilitytoken.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(capabilitytoken.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(capabilitytoken.FieldRevokedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capabilitytoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CapabilityTokenUpdateOne is the builder for updating a single CapabilityToken entity.
type CapabilityTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CapabilityTokenMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *CapabilityTokenUpdateOne) SetWorkspaceID(v string) *CapabilityTokenUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *CapabilityTokenUpdateOne) SetNillableWorkspaceID(v *string) *CapabilityTokenUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (_u *CapabilityTokenUpdateOne) SetIssuedToPrincipalID(v string) *CapabilityTokenUpdateOne {
	_u.mutation.SetIssuedToPrincipalID(v)
	return _u
}

// SetNillableIssuedToPrincipalID sets the "issued_to_principal_id" field if the given value is not nil.
func (_u *CapabilityTokenUpdateOne) SetNillableIssuedToPrincipalID(v *string) *CapabilityTokenUpdateOne {
	if v != nil {
		_u.SetIssuedToPrincipalID(*v)
	}
	return _u
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (_u *CapabilityTokenUpdateOne) SetGrantedByPrincipalID(v string) *CapabilityTokenUpdateOne {
	_u.mutation.SetGrantedByPrincipalID(v)
	return _u
}

// SetNillableGrantedByPrincipalID sets the "granted_by_principal_id" field if the given value is not nil.
func (_u *CapabilityTokenUpdateOne) SetNillableGrantedByPrincipalID(v *string) *CapabilityTokenUpdateOne {
	if v != nil {
		_u.SetGrantedByPrincipalID(*v)
	}
	return _u
}

// SetParentTokenID sets the "parent_token_id" field.
func (_u *CapabilityTokenUpdateOne) SetParentTokenID(v string) *CapabilityTokenUpdateOne {
	_u.mutation.SetParentTokenID(v)
	return _u
}

// SetNillableParentTokenID sets the "parent_token_id" field if the given value is not nil.
func (_u *CapabilityTokenUpdateOne) SetNillableParentTokenID(v *string) *CapabilityTokenUpdateOne {
	if v != nil {
		_u.SetParentTokenID(*v)
	}
	return _u
}

// ClearParentTokenID clears the value of the "parent_token_id" field.
func (_u *CapabilityTokenUpdateOne) ClearParentTokenID() *CapabilityTokenUpdateOne {
	_u.mutation.ClearParentTokenID()
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *CapabilityTokenUpdateOne) SetScopes(v models.ScopeSet) *CapabilityTokenUpdateOne {
	_u.mutation.SetScopes(v)
	return _u
}

// SetNillableScopes sets the "scopes" field if the given value is not nil.
func (_u *CapabilityTokenUpdateOne) SetNillableScopes(v *models.ScopeSet) *CapabilityTokenUpdateOne {
	if v != nil {
		_u.SetScopes(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *CapabilityTokenUpdateOne) SetValidUntil(v time.Time) *CapabilityTokenUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *CapabilityTokenUpdateOne) SetNillableValidUntil(v *time.Time) *CapabilityTokenUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *CapabilityTokenUpdateOne) ClearValidUntil() *CapabilityTokenUpdateOne {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CapabilityTokenUpdateOne) SetCreatedAt(v time.Time) *CapabilityTokenUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CapabilityTokenUpdateOne) SetNillableCreatedAt(v *time.Time) *CapabilityTokenUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *CapabilityTokenUpdateOne) SetRevokedAt(v time.Time) *CapabilityTokenUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *CapabilityTokenUpdateOne) SetNillableRevokedAt(v *time.Time) *CapabilityTokenUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *CapabilityTokenUpdateOne) ClearRevokedAt() *CapabilityTokenUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the CapabilityTokenMutation object of the builder.
func (_u *CapabilityTokenUpdateOne) Mutation() *CapabilityTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the CapabilityTokenUpdate builder.
func (_u *CapabilityTokenUpdateOne) Where(ps ...predicate.CapabilityToken) *CapabilityTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CapabilityTokenUpdateOne) Select(field string, fields ...string) *CapabilityTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CapabilityToken entity.
func (_u *CapabilityTokenUpdateOne) Save(ctx context.Context) (*CapabilityToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CapabilityTokenUpdateOne) SaveX(ctx context.Context) *CapabilityToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CapabilityTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CapabilityTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CapabilityTokenUpdateOne) sqlSave(ctx context.Context) (_node *CapabilityToken, err error) {
	_spec := sqlgraph.NewUpdateSpec(capabilitytoken.Table, capabilitytoken.Columns, sqlgraph.NewFieldSpec(capabilitytoken.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CapabilityToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, capabilitytoken.FieldID)
		for _, f := range fields {
			if !capabilitytoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != capabilitytoken.FieldID {
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
		_spec.SetField(capabilitytoken.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuedToPrincipalID(); ok {
		_spec.SetField(capabilitytoken.FieldIssuedToPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrantedByPrincipalID(); ok {
		_spec.SetField(capabilitytoken.FieldGrantedByPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentTokenID(); ok {
		_spec.SetField(capabilitytoken.FieldParentTokenID, field.TypeString, value)
	}
	if _u.mutation.ParentTokenIDCleared() {
		_spec.ClearField(capabilitytoken.FieldParentTokenID, field.TypeString)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(capabilitytoken.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(capabilitytoken.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(capabilitytoken.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(capabilitytoken.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(capabilitytoken.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(capabilitytoken.FieldRevokedAt, field.TypeTime)
	}
	_node = &CapabilityToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capabilitytoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
