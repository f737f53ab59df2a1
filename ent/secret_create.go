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
	"github.com/missionloop/groundcontrol/ent/secret"
)

// SecretCreate is the builder for creating a Secret entity.
type SecretCreate struct {
	config
	mutation *SecretMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *SecretCreate) SetWorkspaceID(v string) *SecretCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetSecretName sets the "secret_name" field.
func (_c *SecretCreate) SetSecretName(v string) *SecretCreate {
	_c.mutation.SetSecretName(v)
	return _c
}

// SetAlgorithm sets the "algorithm" field.
func (_c *SecretCreate) SetAlgorithm(v string) *SecretCreate {
	_c.mutation.SetAlgorithm(v)
	return _c
}

// SetNillableAlgorithm sets the "algorithm" field if the given value is not nil.
func (_c *SecretCreate) SetNillableAlgorithm(v *string) *SecretCreate {
	if v != nil {
		_c.SetAlgorithm(*v)
	}
	return _c
}

// SetCiphertext sets the "ciphertext" field.
func (_c *SecretCreate) SetCiphertext(v []byte) *SecretCreate {
	_c.mutation.SetCiphertext(v)
	return _c
}

// SetNonce sets the "nonce" field.
func (_c *SecretCreate) SetNonce(v []byte) *SecretCreate {
	_c.mutation.SetNonce(v)
	return _c
}

// SetCreatedByPrincipalID sets the "created_by_principal_id" field.
func (_c *SecretCreate) SetCreatedByPrincipalID(v string) *SecretCreate {
	_c.mutation.SetCreatedByPrincipalID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SecretCreate) SetCreatedAt(v time.Time) *SecretCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SecretCreate) SetNillableCreatedAt(v *time.Time) *SecretCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_c *SecretCreate) SetLastAccessedAt(v time.Time) *SecretCreate {
	_c.mutation.SetLastAccessedAt(v)
	return _c
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_c *SecretCreate) SetNillableLastAccessedAt(v *time.Time) *SecretCreate {
	if v != nil {
		_c.SetLastAccessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SecretCreate) SetID(v string) *SecretCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SecretMutation object of the builder.
func (_c *SecretCreate) Mutation() *SecretMutation {
	return _c.mutation
}

// Save creates the Secret in the database.
func (_c *SecretCreate) Save(ctx context.Context) (*Secret, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SecretCreate) SaveX(ctx context.Context) *Secret {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecretCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecretCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SecretCreate) defaults() {
	if _, ok := _c.mutation.Algorithm(); !ok {
		v := secret.DefaultAlgorithm
		_c.mutation.SetAlgorithm(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := secret.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SecretCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Secret.workspace_id"`)}
	}
	if _, ok := _c.mutation.SecretName(); !ok {
		return &ValidationError{Name: "secret_name", err: errors.New(`ent: missing required field "Secret.secret_name"`)}
	}
	if _, ok := _c.mutation.Algorithm(); !ok {
		return &ValidationError{Name: "algorithm", err: errors.New(`ent: missing required field "Secret.algorithm"`)}
	}
	if _, ok := _c.mutation.Ciphertext(); !ok {
		return &ValidationError{Name: "ciphertext", err: errors.New(`ent: missing required field "Secret.ciphertext"`)}
	}
	if _, ok := _c.mutation.Nonce(); !ok {
		return &ValidationError{Name: "nonce", err: errors.New(`ent: missing required field "Secret.nonce"`)}
	}
	if _, ok := _c.mutation.CreatedByPrincipalID(); !ok {
		return &ValidationError{Name: "created_by_principal_id", err: errors.New(`ent: missing required field "Secret.created_by_principal_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Secret.created_at"`)}
	}
	return nil
}

func (_c *SecretCreate) sqlSave(ctx context.Context) (*Secret, error) {
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
			return nil, fmt.Errorf("unexpected Secret.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SecretCreate) createSpec() (*Secret, *sqlgraph.CreateSpec) {
	var (
		_node = &Secret{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(secret.Table, sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(secret.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.SecretName(); ok {
		_spec.SetField(secret.FieldSecretName, field.TypeString, value)
		_node.SecretName = value
	}
	if value, ok := _c.mutation.Algorithm(); ok {
		_spec.SetField(secret.FieldAlgorithm, field.TypeString, value)
		_node.Algorithm = value
	}
	if value, ok := _c.mutation.Ciphertext(); ok {
		_spec.SetField(secret.FieldCiphertext, field.TypeBytes, value)
		_node.Ciphertext = value
	}
	if value, ok := _c.mutation.Nonce(); ok {
		_spec.SetField(secret.FieldNonce, field.TypeBytes, value)
		_node.Nonce = value
	}
	if value, ok := _c.mutation.CreatedByPrincipalID(); ok {
		_spec.SetField(secret.FieldCreatedByPrincipalID, field.TypeString, value)
		_node.CreatedByPrincipalID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(secret.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastAccessedAt(); ok {
		_spec.SetField(secret.FieldLastAccessedAt, field.TypeTime, value)
		_node.LastAccessedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Secret.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SecretUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SecretCreate) OnConflict(opts ...sql.ConflictOption) *SecretUpsertOne {
	_c.conflict = opts
	return &SecretUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Secret.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SecretCreate) OnConflictColumns(columns ...string) *SecretUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SecretUpsertOne{
		create: _c,
	}
}

type (
	// SecretUpsertOne is the builder for "upsert"-ing
	//  one Secret node.
	SecretUpsertOne struct {
		create *SecretCreate
	}

	// SecretUpsert is the "OnConflict" setter.
	SecretUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *SecretUpsert) SetWorkspaceID(v string) *SecretUpsert {
	u.Set(secret.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *SecretUpsert) UpdateWorkspaceID() *SecretUpsert {
	u.SetExcluded(secret.FieldWorkspaceID)
	return u
}

// SetSecretName sets the "secret_name" field.
func (u *SecretUpsert) SetSecretName(v string) *SecretUpsert {
	u.Set(secret.FieldSecretName, v)
	return u
}

// UpdateSecretName sets the "secret_name" field to the value that was provided on create.
func (u *SecretUpsert) UpdateSecretName() *SecretUpsert {
	u.SetExcluded(secret.FieldSecretName)
	return u
}

// SetAlgorithm sets the "algorithm" field.
func (u *SecretUpsert) SetAlgorithm(v string) *SecretUpsert {
	u.Set(secret.FieldAlgorithm, v)
	return u
}

// UpdateAlgorithm sets the "algorithm" field to the value that was provided on create.
func (u *SecretUpsert) UpdateAlgorithm() *SecretUpsert {
	u.SetExcluded(secret.FieldAlgorithm)
	return u
}

// SetCiphertext sets the "ciphertext" field.
func (u *SecretUpsert) SetCiphertext(v []byte) *SecretUpsert {
	u.Set(secret.FieldCiphertext, v)
	return u
}

// UpdateCiphertext sets the "ciphertext" field to the value that was provided on create.
func (u *SecretUpsert) UpdateCiphertext() *SecretUpsert {
	u.SetExcluded(secret.FieldCiphertext)
	return u
}

// SetNonce sets the "nonce" field.
func (u *SecretUpsert) SetNonce(v []byte) *SecretUpsert {
	u.Set(secret.FieldNonce, v)
	return u
}

// UpdateNonce sets the "nonce" field to the value that was provided on create.
func (u *SecretUpsert) UpdateNonce() *SecretUpsert {
	u.SetExcluded(secret.FieldNonce)
	return u
}

// SetCreatedByPrincipalID sets the "created_by_principal_id" field.
func (u *SecretUpsert) SetCreatedByPrincipalID(v string) *SecretUpsert {
	u.Set(secret.FieldCreatedByPrincipalID, v)
	return u
}

// UpdateCreatedByPrincipalID sets the "created_by_principal_id" field to the value that was provided on create.
func (u *SecretUpsert) UpdateCreatedByPrincipalID() *SecretUpsert {
	u.SetExcluded(secret.FieldCreatedByPrincipalID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *SecretUpsert) SetCreatedAt(v time.Time) *SecretUpsert {
	u.Set(secret.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SecretUpsert) UpdateCreatedAt() *SecretUpsert {
	u.SetExcluded(secret.FieldCreatedAt)
	return u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (u *SecretUpsert) SetLastAccessedAt(v time.Time) *SecretUpsert {
	u.Set(secret.FieldLastAccessedAt, v)
	return u
}

// UpdateLastAccessedAt sets the "last_accessed_at" field to the value that was provided on create.
func (u *SecretUpsert) UpdateLastAccessedAt() *SecretUpsert {
	u.SetExcluded(secret.FieldLastAccessedAt)
	return u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (u *SecretUpsert) ClearLastAccessedAt() *SecretUpsert {
	u.SetNull(secret.FieldLastAccessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Secret.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(secret.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SecretUpsertOne) UpdateNewValues() *SecretUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(secret.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Secret.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SecretUpsertOne) Ignore() *SecretUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SecretUpsertOne) DoNothing() *SecretUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SecretCreate.OnConflict
// documentation for more info.
func (u *SecretUpsertOne) Update(set func(*SecretUpsert)) *SecretUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SecretUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *SecretUpsertOne) SetWorkspaceID(v string) *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *SecretUpsertOne) UpdateWorkspaceID() *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetSecretName sets the "secret_name" field.
func (u *SecretUpsertOne) SetSecretName(v string) *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.SetSecretName(v)
	})
}

// UpdateSecretName sets the "secret_name" field to the value that was provided on create.
func (u *SecretUpsertOne) UpdateSecretName() *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateSecretName()
	})
}

// SetAlgorithm sets the "algorithm" field.
func (u *SecretUpsertOne) SetAlgorithm(v string) *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.SetAlgorithm(v)
	})
}

// UpdateAlgorithm sets the "algorithm" field to the value that was provided on create.
func (u *SecretUpsertOne) UpdateAlgorithm() *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateAlgorithm()
	})
}

// SetCiphertext sets the "ciphertext" field.
func (u *SecretUpsertOne) SetCiphertext(v []byte) *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.SetCiphertext(v)
	})
}

// UpdateCiphertext sets the "ciphertext" field to the value that was provided on create.
func (u *SecretUpsertOne) UpdateCiphertext() *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateCiphertext()
	})
}

// SetNonce sets the "nonce" field.
func (u *SecretUpsertOne) SetNonce(v []byte) *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.SetNonce(v)
	})
}

// UpdateNonce sets the "nonce" field to the value that was provided on create.
func (u *SecretUpsertOne) UpdateNonce() *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateNonce()
	})
}

// SetCreatedByPrincipalID sets the "created_by_principal_id" field.
func (u *SecretUpsertOne) SetCreatedByPrincipalID(v string) *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.SetCreatedByPrincipalID(v)
	})
}

// UpdateCreatedByPrincipalID sets the "created_by_principal_id" field to the value that was provided on create.
func (u *SecretUpsertOne) UpdateCreatedByPrincipalID() *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateCreatedByPrincipalID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SecretUpsertOne) SetCreatedAt(v time.Time) *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SecretUpsertOne) UpdateCreatedAt() *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (u *SecretUpsertOne) SetLastAccessedAt(v time.Time) *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.SetLastAccessedAt(v)
	})
}

// UpdateLastAccessedAt sets the "last_accessed_at" field to the value that was provided on create.
func (u *SecretUpsertOne) UpdateLastAccessedAt() *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateLastAccessedAt()
	})
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (u *SecretUpsertOne) ClearLastAccessedAt() *SecretUpsertOne {
	return u.Update(func(s *SecretUpsert) {
		s.ClearLastAccessedAt()
	})
}

// Exec executes the query.
func (u *SecretUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SecretCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SecretUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SecretUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SecretUpsertOne.ID is not supported by MySQL driver. Use SecretUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SecretUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SecretCreateBulk is the builder for creating many Secret entities in bulk.
type SecretCreateBulk struct {
	config
	err      error
	builders []*SecretCreate
	conflict []sql.ConflictOption
}

// Save creates the Secret entities in the database.
func (_c *SecretCreateBulk) Save(ctx context.Context) ([]*Secret, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Secret, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SecretMutation)
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
func (_c *SecretCreateBulk) SaveX(ctx context.Context) []*Secret {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecretCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecretCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Secret.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SecretUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SecretCreateBulk) OnConflict(opts ...sql.ConflictOption) *SecretUpsertBulk {
	_c.conflict = opts
	return &SecretUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Secret.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SecretCreateBulk) OnConflictColumns(columns ...string) *SecretUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SecretUpsertBulk{
		create: _c,
	}
}

// SecretUpsertBulk is the builder for "upsert"-ing
// a bulk of Secret nodes.
type SecretUpsertBulk struct {
	create *SecretCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Secret.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(secret.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SecretUpsertBulk) UpdateNewValues() *SecretUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(secret.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Secret.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SecretUpsertBulk) Ignore() *SecretUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SecretUpsertBulk) DoNothing() *SecretUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SecretCreateBulk.OnConflict
// documentation for more info.
func (u *SecretUpsertBulk) Update(set func(*SecretUpsert)) *SecretUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SecretUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *SecretUpsertBulk) SetWorkspaceID(v string) *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *SecretUpsertBulk) UpdateWorkspaceID() *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetSecretName sets the "secret_name" field.
func (u *SecretUpsertBulk) SetSecretName(v string) *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.SetSecretName(v)
	})
}

// UpdateSecretName sets the "secret_name" field to the value that was provided on create.
func (u *SecretUpsertBulk) UpdateSecretName() *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateSecretName()
	})
}

// SetAlgorithm sets the "algorithm" field.
func (u *SecretUpsertBulk) SetAlgorithm(v string) *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.SetAlgorithm(v)
	})
}

// UpdateAlgorithm sets the "algorithm" field to the value that was provided on create.
func (u *SecretUpsertBulk) UpdateAlgorithm() *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateAlgorithm()
	})
}

// SetCiphertext sets the "ciphertext" field.
func (u *SecretUpsertBulk) SetCiphertext(v []byte) *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.SetCiphertext(v)
	})
}

// UpdateCiphertext sets the "ciphertext" field to the value that was provided on create.
func (u *SecretUpsertBulk) UpdateCiphertext() *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateCiphertext()
	})
}

// SetNonce sets the "nonce" field.
func (u *SecretUpsertBulk) SetNonce(v []byte) *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.SetNonce(v)
	})
}

// UpdateNonce sets the "nonce" field to the value that was provided on create.
func (u *SecretUpsertBulk) UpdateNonce() *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateNonce()
	})
}

// SetCreatedByPrincipalID sets the "created_by_principal_id" field.
func (u *SecretUpsertBulk) SetCreatedByPrincipalID(v string) *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.SetCreatedByPrincipalID(v)
	})
}

// UpdateCreatedByPrincipalID sets the "created_by_principal_id" field to the value that was provided on create.
func (u *SecretUpsertBulk) UpdateCreatedByPrincipalID() *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateCreatedByPrincipalID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SecretUpsertBulk) SetCreatedAt(v time.Time) *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SecretUpsertBulk) UpdateCreatedAt() *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (u *SecretUpsertBulk) SetLastAccessedAt(v time.Time) *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.SetLastAccessedAt(v)
	})
}

// UpdateLastAccessedAt sets the "last_accessed_at" field to the value that was provided on create.
func (u *SecretUpsertBulk) UpdateLastAccessedAt() *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.UpdateLastAccessedAt()
	})
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (u *SecretUpsertBulk) ClearLastAccessedAt() *SecretUpsertBulk {
	return u.Update(func(s *SecretUpsert) {
		s.ClearLastAccessedAt()
	})
}

// Exec executes the query.
func (u *SecretUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SecretCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SecretCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SecretUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
