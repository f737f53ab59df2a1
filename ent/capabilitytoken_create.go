// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/capabilitytoken"
	"github.com/missionloop/groundcontrol/pkg/models"
)

// CapabilityTokenCreate is the builder for creating a CapabilityToken entity.
type CapabilityTokenCreate struct {
	config
	mutation *CapabilityTokenMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *CapabilityTokenCreate) SetWorkspaceID(v string) *CapabilityTokenCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (_c *CapabilityTokenCreate) SetIssuedToPrincipalID(v string) *CapabilityTokenCreate {
	_c.mutation.SetIssuedToPrincipalID(v)
	return _c
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (_c *CapabilityTokenCreate) SetGrantedByPrincipalID(v string) *CapabilityTokenCreate {
	_c.mutation.SetGrantedByPrincipalID(v)
	return _c
}

// SetParentTokenID sets the "parent_token_id" field.
func (_c *CapabilityTokenCreate) SetParentTokenID(v string) *CapabilityTokenCreate {
	_c.mutation.SetParentTokenID(v)
	return _c
}

// SetNillableParentTokenID sets the "parent_token_id" field if the given value is not nil.
func (_c *CapabilityTokenCreate) SetNillableParentTokenID(v *string) *CapabilityTokenCreate {
	if v != nil {
		_c.SetParentTokenID(*v)
	}
	return _c
}

// SetScopes sets the "scopes" field.
func (_c *CapabilityTokenCreate) SetScopes(v models.ScopeSet) *CapabilityTokenCreate {
	_c.mutation.SetScopes(v)
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *CapabilityTokenCreate) SetValidUntil(v time.Time) *CapabilityTokenCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_c *CapabilityTokenCreate) SetNillableValidUntil(v *time.Time) *CapabilityTokenCreate {
	if v != nil {
		_c.SetValidUntil(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CapabilityTokenCreate) SetCreatedAt(v time.Time) *CapabilityTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CapabilityTokenCreate) SetNillableCreatedAt(v *time.Time) *CapabilityTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *CapabilityTokenCreate) SetRevokedAt(v time.Time) *CapabilityTokenCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *CapabilityTokenCreate) SetNillableRevokedAt(v *time.Time) *CapabilityTokenCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CapabilityTokenCreate) SetID(v string) *CapabilityTokenCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CapabilityTokenMutation object of the builder.
func (_c *CapabilityTokenCreate) Mutation() *CapabilityTokenMutation {
	return _c.mutation
}

// Save creates the CapabilityToken in the database.
func (_c *CapabilityTokenCreate) Save(ctx context.Context) (*CapabilityToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CapabilityTokenCreate) SaveX(ctx context.Context) *CapabilityToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CapabilityTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CapabilityTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CapabilityTokenCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := capabilitytoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CapabilityTokenCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "CapabilityToken.workspace_id"`)}
	}
	if _, ok := _c.mutation.IssuedToPrincipalID(); !ok {
		return &ValidationError{Name: "issued_to_principal_id", err: errors.New(`ent: missing required field "CapabilityToken.issued_to_principal_id"`)}
	}
	if _, ok := _c.mutation.GrantedByPrincipalID(); !ok {
		return &ValidationError{Name: "granted_by_principal_id", err: errors.New(`ent: missing required field "CapabilityToken.granted_by_principal_id"`)}
	}
	if _, ok := _c.mutation.Scopes(); !ok {
		return &ValidationError{Name: "scopes", err: errors.New(`ent: missing required field "CapabilityToken.scopes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CapabilityToken.created_at"`)}
	}
	return nil
}

func (_c *CapabilityTokenCreate) sqlSave(ctx context.Context) (*CapabilityToken, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CapabilityToken.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CapabilityTokenCreate) createSpec() (*CapabilityToken, *sqlgraph.CreateSpec) {
	var (
		_node = &CapabilityToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(capabilitytoken.Table, sqlgraph.NewFieldSpec(capabilitytoken.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(capabilitytoken.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.IssuedToPrincipalID(); ok {
		_spec.SetField(capabilitytoken.FieldIssuedToPrincipalID, field.TypeString, value)
		_node.IssuedToPrincipalID = value
	}
	if value, ok := _c.mutation.GrantedByPrincipalID(); ok {
		_spec.SetField(capabilitytoken.FieldGrantedByPrincipalID, field.TypeString, value)
		_node.GrantedByPrincipalID = value
	}
	if value, ok := _c.mutation.ParentTokenID(); ok {
		_spec.SetField(capabilitytoken.FieldParentTokenID, field.TypeString, value)
		_node.ParentTokenID = &value
	}
	if value, ok := _c.mutation.Scopes(); ok {
		_spec.SetField(capabilitytoken.FieldScopes, field.TypeJSON, value)
		_node.Scopes = value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(capabilitytoken.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(capabilitytoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(capabilitytoken.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CapabilityToken.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CapabilityTokenUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *CapabilityTokenCreate) OnConflict(opts ...sql.ConflictOption) *CapabilityTokenUpsertOne {
	_c.conflict = opts
	return &CapabilityTokenUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CapabilityToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CapabilityTokenCreate) OnConflictColumns(columns ...string) *CapabilityTokenUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CapabilityTokenUpsertOne{
		create: _c,
	}
}

type (
	// CapabilityTokenUpsertOne is the builder for "upsert"-ing
	//  one CapabilityToken node.
	CapabilityTokenUpsertOne struct {
		create *CapabilityTokenCreate
	}

	// CapabilityTokenUpsert is the "OnConflict" setter.
	CapabilityTokenUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *CapabilityTokenUpsert) SetWorkspaceID(v string) *CapabilityTokenUpsert {
	u.Set(capabilitytoken.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsert) UpdateWorkspaceID() *CapabilityTokenUpsert {
	u.SetExcluded(capabilitytoken.FieldWorkspaceID)
	return u
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (u *CapabilityTokenUpsert) SetIssuedToPrincipalID(v string) *CapabilityTokenUpsert {
	u.Set(capabilitytoken.FieldIssuedToPrincipalID, v)
	return u
}

// UpdateIssuedToPrincipalID sets the "issued_to_principal_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsert) UpdateIssuedToPrincipalID() *CapabilityTokenUpsert {
	u.SetExcluded(capabilitytoken.FieldIssuedToPrincipalID)
	return u
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (u *CapabilityTokenUpsert) SetGrantedByPrincipalID(v string) *CapabilityTokenUpsert {
	u.Set(capabilitytoken.FieldGrantedByPrincipalID, v)
	return u
}

// UpdateGrantedByPrincipalID sets the "granted_by_principal_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsert) UpdateGrantedByPrincipalID() *CapabilityTokenUpsert {
	u.SetExcluded(capabilitytoken.FieldGrantedByPrincipalID)
	return u
}

// SetParentTokenID sets the "parent_token_id" field.
func (u *CapabilityTokenUpsert) SetParentTokenID(v string) *CapabilityTokenUpsert {
	u.Set(capabilitytoken.FieldParentTokenID, v)
	return u
}

// UpdateParentTokenID sets the "parent_token_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsert) UpdateParentTokenID() *CapabilityTokenUpsert {
	u.SetExcluded(capabilitytoken.FieldParentTokenID)
	return u
}

// ClearParentTokenID clears the value of the "parent_token_id" field.
func (u *CapabilityTokenUpsert) ClearParentTokenID() *CapabilityTokenUpsert {
	u.SetNull(capabilitytoken.FieldParentTokenID)
	return u
}

// SetScopes sets the "scopes" field.
func (u *CapabilityTokenUpsert) SetScopes(v models.ScopeSet) *CapabilityTokenUpsert {
	u.Set(capabilitytoken.FieldScopes, v)
	return u
}

// UpdateScopes sets the "scopes" field to the value that was provided on create.
func (u *CapabilityTokenUpsert) UpdateScopes() *CapabilityTokenUpsert {
	u.SetExcluded(capabilitytoken.FieldScopes)
	return u
}

// SetValidUntil sets the "valid_until" field.
func (u *CapabilityTokenUpsert) SetValidUntil(v time.Time) *CapabilityTokenUpsert {
	u.Set(capabilitytoken.FieldValidUntil, v)
	return u
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *CapabilityTokenUpsert) UpdateValidUntil() *CapabilityTokenUpsert {
	u.SetExcluded(capabilitytoken.FieldValidUntil)
	return u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (u *CapabilityTokenUpsert) ClearValidUntil() *CapabilityTokenUpsert {
	u.SetNull(capabilitytoken.FieldValidUntil)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CapabilityTokenUpsert) SetCreatedAt(v time.Time) *CapabilityTokenUpsert {
	u.Set(capabilitytoken.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CapabilityTokenUpsert) UpdateCreatedAt() *CapabilityTokenUpsert {
	u.SetExcluded(capabilitytoken.FieldCreatedAt)
	return u
}

// SetRevokedAt sets the "revoked_at" field.
func (u *CapabilityTokenUpsert) SetRevokedAt(v time.Time) *CapabilityTokenUpsert {
	u.Set(capabilitytoken.FieldRevokedAt, v)
	return u
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *CapabilityTokenUpsert) UpdateRevokedAt() *CapabilityTokenUpsert {
	u.SetExcluded(capabilitytoken.FieldRevokedAt)
	return u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *CapabilityTokenUpsert) ClearRevokedAt() *CapabilityTokenUpsert {
	u.SetNull(capabilitytoken.FieldRevokedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CapabilityToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(capabilitytoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CapabilityTokenUpsertOne) UpdateNewValues() *CapabilityTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(capabilitytoken.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CapabilityToken.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CapabilityTokenUpsertOne) Ignore() *CapabilityTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CapabilityTokenUpsertOne) DoNothing() *CapabilityTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CapabilityTokenCreate.OnConflict
// documentation for more info.
func (u *CapabilityTokenUpsertOne) Update(set func(*CapabilityTokenUpsert)) *CapabilityTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CapabilityTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *CapabilityTokenUpsertOne) SetWorkspaceID(v string) *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsertOne) UpdateWorkspaceID() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (u *CapabilityTokenUpsertOne) SetIssuedToPrincipalID(v string) *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetIssuedToPrincipalID(v)
	})
}

// UpdateIssuedToPrincipalID sets the "issued_to_principal_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsertOne) UpdateIssuedToPrincipalID() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateIssuedToPrincipalID()
	})
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (u *CapabilityTokenUpsertOne) SetGrantedByPrincipalID(v string) *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetGrantedByPrincipalID(v)
	})
}

// UpdateGrantedByPrincipalID sets the "granted_by_principal_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsertOne) UpdateGrantedByPrincipalID() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateGrantedByPrincipalID()
	})
}

// SetParentTokenID sets the "parent_token_id" field.
func (u *CapabilityTokenUpsertOne) SetParentTokenID(v string) *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetParentTokenID(v)
	})
}

// UpdateParentTokenID sets the "parent_token_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsertOne) UpdateParentTokenID() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateParentTokenID()
	})
}

// ClearParentTokenID clears the value of the "parent_token_id" field.
func (u *CapabilityTokenUpsertOne) ClearParentTokenID() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.ClearParentTokenID()
	})
}

// SetScopes sets the "scopes" field.
func (u *CapabilityTokenUpsertOne) SetScopes(v models.ScopeSet) *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetScopes(v)
	})
}

// UpdateScopes sets the "scopes" field to the value that was provided on create.
func (u *CapabilityTokenUpsertOne) UpdateScopes() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateScopes()
	})
}

// SetValidUntil sets the "valid_until" field.
func (u *CapabilityTokenUpsertOne) SetValidUntil(v time.Time) *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetValidUntil(v)
	})
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *CapabilityTokenUpsertOne) UpdateValidUntil() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateValidUntil()
	})
}

// ClearValidUntil clears the value of the "valid_until" field.
func (u *CapabilityTokenUpsertOne) ClearValidUntil() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.ClearValidUntil()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CapabilityTokenUpsertOne) SetCreatedAt(v time.Time) *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CapabilityTokenUpsertOne) UpdateCreatedAt() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *CapabilityTokenUpsertOne) SetRevokedAt(v time.Time) *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *CapabilityTokenUpsertOne) UpdateRevokedAt() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *CapabilityTokenUpsertOne) ClearRevokedAt() *CapabilityTokenUpsertOne {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *CapabilityTokenUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CapabilityTokenCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CapabilityTokenUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CapabilityTokenUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CapabilityTokenUpsertOne.ID is not supported by MySQL driver. Use CapabilityTokenUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CapabilityTokenUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CapabilityTokenCreateBulk is the builder for creating many CapabilityToken entities in bulk.
type CapabilityTokenCreateBulk struct {
	config
	err      error
	builders []*CapabilityTokenCreate
	conflict []sql.ConflictOption
}

// Save creates the CapabilityToken entities in the database.
func (_c *CapabilityTokenCreateBulk) Save(ctx context.Context) ([]*CapabilityToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CapabilityToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CapabilityTokenMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CapabilityTokenCreateBulk) SaveX(ctx context.Context) []*CapabilityToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CapabilityTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CapabilityTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CapabilityToken.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CapabilityTokenUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *CapabilityTokenCreateBulk) OnConflict(opts ...sql.ConflictOption) *CapabilityTokenUpsertBulk {
	_c.conflict = opts
	return &CapabilityTokenUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CapabilityToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CapabilityTokenCreateBulk) OnConflictColumns(columns ...string) *CapabilityTokenUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CapabilityTokenUpsertBulk{
		create: _c,
	}
}

// CapabilityTokenUpsertBulk is the builder for "upsert"-ing
// a bulk of CapabilityToken nodes.
type CapabilityTokenUpsertBulk struct {
	create *CapabilityTokenCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CapabilityToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(capabilitytoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CapabilityTokenUpsertBulk) UpdateNewValues() *CapabilityTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(capabilitytoken.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CapabilityToken.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CapabilityTokenUpsertBulk) Ignore() *CapabilityTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CapabilityTokenUpsertBulk) DoNothing() *CapabilityTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CapabilityTokenCreateBulk.OnConflict
// documentation for more info.
func (u *CapabilityTokenUpsertBulk) Update(set func(*CapabilityTokenUpsert)) *CapabilityTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CapabilityTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *CapabilityTokenUpsertBulk) SetWorkspaceID(v string) *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsertBulk) UpdateWorkspaceID() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (u *CapabilityTokenUpsertBulk) SetIssuedToPrincipalID(v string) *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetIssuedToPrincipalID(v)
	})
}

// UpdateIssuedToPrincipalID sets the "issued_to_principal_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsertBulk) UpdateIssuedToPrincipalID() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateIssuedToPrincipalID()
	})
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (u *CapabilityTokenUpsertBulk) SetGrantedByPrincipalID(v string) *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetGrantedByPrincipalID(v)
	})
}

// UpdateGrantedByPrincipalID sets the "granted_by_principal_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsertBulk) UpdateGrantedByPrincipalID() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateGrantedByPrincipalID()
	})
}

// SetParentTokenID sets the "parent_token_id" field.
func (u *CapabilityTokenUpsertBulk) SetParentTokenID(v string) *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetParentTokenID(v)
	})
}

// UpdateParentTokenID sets the "parent_token_id" field to the value that was provided on create.
func (u *CapabilityTokenUpsertBulk) UpdateParentTokenID() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateParentTokenID()
	})
}

// ClearParentTokenID clears the value of the "parent_token_id" field.
func (u *CapabilityTokenUpsertBulk) ClearParentTokenID() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.ClearParentTokenID()
	})
}

// SetScopes sets the "scopes" field.
func (u *CapabilityTokenUpsertBulk) SetScopes(v models.ScopeSet) *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetScopes(v)
	})
}

// UpdateScopes sets the "scopes" field to the value that was provided on create.
func (u *CapabilityTokenUpsertBulk) UpdateScopes() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateScopes()
	})
}

// SetValidUntil sets the "valid_until" field.
func (u *CapabilityTokenUpsertBulk) SetValidUntil(v time.Time) *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetValidUntil(v)
	})
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *CapabilityTokenUpsertBulk) UpdateValidUntil() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateValidUntil()
	})
}

// ClearValidUntil clears the value of the "valid_until" field.
func (u *CapabilityTokenUpsertBulk) ClearValidUntil() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.ClearValidUntil()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CapabilityTokenUpsertBulk) SetCreatedAt(v time.Time) *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CapabilityTokenUpsertBulk) UpdateCreatedAt() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *CapabilityTokenUpsertBulk) SetRevokedAt(v time.Time) *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *CapabilityTokenUpsertBulk) UpdateRevokedAt() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *CapabilityTokenUpsertBulk) ClearRevokedAt() *CapabilityTokenUpsertBulk {
	return u.Update(func(s *CapabilityTokenUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *CapabilityTokenUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CapabilityTokenCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CapabilityTokenCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CapabilityTokenUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
