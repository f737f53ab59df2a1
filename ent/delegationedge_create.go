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
	"github.com/missionloop/groundcontrol/ent/delegationedge"
)

// DelegationEdgeCreate is the builder for creating a DelegationEdge entity.
type DelegationEdgeCreate struct {
	config
	mutation *DelegationEdgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *DelegationEdgeCreate) SetWorkspaceID(v string) *DelegationEdgeCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetParentTokenID sets the "parent_token_id" field.
func (_c *DelegationEdgeCreate) SetParentTokenID(v string) *DelegationEdgeCreate {
	_c.mutation.SetParentTokenID(v)
	return _c
}

// SetChildTokenID sets the "child_token_id" field.
func (_c *DelegationEdgeCreate) SetChildTokenID(v string) *DelegationEdgeCreate {
	_c.mutation.SetChildTokenID(v)
	return _c
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (_c *DelegationEdgeCreate) SetIssuedToPrincipalID(v string) *DelegationEdgeCreate {
	_c.mutation.SetIssuedToPrincipalID(v)
	return _c
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (_c *DelegationEdgeCreate) SetGrantedByPrincipalID(v string) *DelegationEdgeCreate {
	_c.mutation.SetGrantedByPrincipalID(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *DelegationEdgeCreate) SetDepth(v int) *DelegationEdgeCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DelegationEdgeCreate) SetCreatedAt(v time.Time) *DelegationEdgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DelegationEdgeCreate) SetNillableCreatedAt(v *time.Time) *DelegationEdgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DelegationEdgeCreate) SetID(v string) *DelegationEdgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DelegationEdgeMutation object of the builder.
func (_c *DelegationEdgeCreate) Mutation() *DelegationEdgeMutation {
	return _c.mutation
}

// Save creates the DelegationEdge in the database.
func (_c *DelegationEdgeCreate) Save(ctx context.Context) (*DelegationEdge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DelegationEdgeCreate) SaveX(ctx context.Context) *DelegationEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DelegationEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DelegationEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DelegationEdgeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := delegationedge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DelegationEdgeCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "DelegationEdge.workspace_id"`)}
	}
	if _, ok := _c.mutation.ParentTokenID(); !ok {
		return &ValidationError{Name: "parent_token_id", err: errors.New(`ent: missing required field "DelegationEdge.parent_token_id"`)}
	}
	if _, ok := _c.mutation.ChildTokenID(); !ok {
		return &ValidationError{Name: "child_token_id", err: errors.New(`ent: missing required field "DelegationEdge.child_token_id"`)}
	}
	if _, ok := _c.mutation.IssuedToPrincipalID(); !ok {
		return &ValidationError{Name: "issued_to_principal_id", err: errors.New(`ent: missing required field "DelegationEdge.issued_to_principal_id"`)}
	}
	if _, ok := _c.mutation.GrantedByPrincipalID(); !ok {
		return &ValidationError{Name: "granted_by_principal_id", err: errors.New(`ent: missing required field "DelegationEdge.granted_by_principal_id"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "DelegationEdge.depth"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DelegationEdge.created_at"`)}
	}
	return nil
}

func (_c *DelegationEdgeCreate) sqlSave(ctx context.Context) (*DelegationEdge, error) {
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
			return nil, fmt.Errorf("unexpected DelegationEdge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DelegationEdgeCreate) createSpec() (*DelegationEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &DelegationEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(delegationedge.Table, sqlgraph.NewFieldSpec(delegationedge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(delegationedge.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ParentTokenID(); ok {
		_spec.SetField(delegationedge.FieldParentTokenID, field.TypeString, value)
		_node.ParentTokenID = value
	}
	if value, ok := _c.mutation.ChildTokenID(); ok {
		_spec.SetField(delegationedge.FieldChildTokenID, field.TypeString, value)
		_node.ChildTokenID = value
	}
	if value, ok := _c.mutation.IssuedToPrincipalID(); ok {
		_spec.SetField(delegationedge.FieldIssuedToPrincipalID, field.TypeString, value)
		_node.IssuedToPrincipalID = value
	}
	if value, ok := _c.mutation.GrantedByPrincipalID(); ok {
		_spec.SetField(delegationedge.FieldGrantedByPrincipalID, field.TypeString, value)
		_node.GrantedByPrincipalID = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(delegationedge.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(delegationedge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DelegationEdge.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DelegationEdgeUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DelegationEdgeCreate) OnConflict(opts ...sql.ConflictOption) *DelegationEdgeUpsertOne {
	_c.conflict = opts
	return &DelegationEdgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DelegationEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DelegationEdgeCreate) OnConflictColumns(columns ...string) *DelegationEdgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DelegationEdgeUpsertOne{
		create: _c,
	}
}

type (
	// DelegationEdgeUpsertOne is the builder for "upsert"-ing
	//  one DelegationEdge node.
	DelegationEdgeUpsertOne struct {
		create *DelegationEdgeCreate
	}

	// DelegationEdgeUpsert is the "OnConflict" setter.
	DelegationEdgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *DelegationEdgeUpsert) SetWorkspaceID(v string) *DelegationEdgeUpsert {
	u.Set(delegationedge.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsert) UpdateWorkspaceID() *DelegationEdgeUpsert {
	u.SetExcluded(delegationedge.FieldWorkspaceID)
	return u
}

// SetParentTokenID sets the "parent_token_id" field.
func (u *DelegationEdgeUpsert) SetParentTokenID(v string) *DelegationEdgeUpsert {
	u.Set(delegationedge.FieldParentTokenID, v)
	return u
}

// UpdateParentTokenID sets the "parent_token_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsert) UpdateParentTokenID() *DelegationEdgeUpsert {
	u.SetExcluded(delegationedge.FieldParentTokenID)
	return u
}

// SetChildTokenID sets the "child_token_id" field.
func (u *DelegationEdgeUpsert) SetChildTokenID(v string) *DelegationEdgeUpsert {
	u.Set(delegationedge.FieldChildTokenID, v)
	return u
}

// UpdateChildTokenID sets the "child_token_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsert) UpdateChildTokenID() *DelegationEdgeUpsert {
	u.SetExcluded(delegationedge.FieldChildTokenID)
	return u
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (u *DelegationEdgeUpsert) SetIssuedToPrincipalID(v string) *DelegationEdgeUpsert {
	u.Set(delegationedge.FieldIssuedToPrincipalID, v)
	return u
}

// UpdateIssuedToPrincipalID sets the "issued_to_principal_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsert) UpdateIssuedToPrincipalID() *DelegationEdgeUpsert {
	u.SetExcluded(delegationedge.FieldIssuedToPrincipalID)
	return u
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (u *DelegationEdgeUpsert) SetGrantedByPrincipalID(v string) *DelegationEdgeUpsert {
	u.Set(delegationedge.FieldGrantedByPrincipalID, v)
	return u
}

// UpdateGrantedByPrincipalID sets the "granted_by_principal_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsert) UpdateGrantedByPrincipalID() *DelegationEdgeUpsert {
	u.SetExcluded(delegationedge.FieldGrantedByPrincipalID)
	return u
}

// SetDepth sets the "depth" field.
func (u *DelegationEdgeUpsert) SetDepth(v int) *DelegationEdgeUpsert {
	u.Set(delegationedge.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *DelegationEdgeUpsert) UpdateDepth() *DelegationEdgeUpsert {
	u.SetExcluded(delegationedge.FieldDepth)
	return u
}

// AddDepth adds v to the "depth" field.
func (u *DelegationEdgeUpsert) AddDepth(v int) *DelegationEdgeUpsert {
	u.Add(delegationedge.FieldDepth, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DelegationEdgeUpsert) SetCreatedAt(v time.Time) *DelegationEdgeUpsert {
	u.Set(delegationedge.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DelegationEdgeUpsert) UpdateCreatedAt() *DelegationEdgeUpsert {
	u.SetExcluded(delegationedge.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DelegationEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(delegationedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DelegationEdgeUpsertOne) UpdateNewValues() *DelegationEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(delegationedge.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DelegationEdge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DelegationEdgeUpsertOne) Ignore() *DelegationEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DelegationEdgeUpsertOne) DoNothing() *DelegationEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DelegationEdgeCreate.OnConflict
// documentation for more info.
func (u *DelegationEdgeUpsertOne) Update(set func(*DelegationEdgeUpsert)) *DelegationEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DelegationEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *DelegationEdgeUpsertOne) SetWorkspaceID(v string) *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertOne) UpdateWorkspaceID() *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetParentTokenID sets the "parent_token_id" field.
func (u *DelegationEdgeUpsertOne) SetParentTokenID(v string) *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetParentTokenID(v)
	})
}

// UpdateParentTokenID sets the "parent_token_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertOne) UpdateParentTokenID() *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateParentTokenID()
	})
}

// SetChildTokenID sets the "child_token_id" field.
func (u *DelegationEdgeUpsertOne) SetChildTokenID(v string) *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetChildTokenID(v)
	})
}

// UpdateChildTokenID sets the "child_token_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertOne) UpdateChildTokenID() *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateChildTokenID()
	})
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (u *DelegationEdgeUpsertOne) SetIssuedToPrincipalID(v string) *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetIssuedToPrincipalID(v)
	})
}

// UpdateIssuedToPrincipalID sets the "issued_to_principal_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertOne) UpdateIssuedToPrincipalID() *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateIssuedToPrincipalID()
	})
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (u *DelegationEdgeUpsertOne) SetGrantedByPrincipalID(v string) *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetGrantedByPrincipalID(v)
	})
}

// UpdateGrantedByPrincipalID sets the "granted_by_principal_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertOne) UpdateGrantedByPrincipalID() *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateGrantedByPrincipalID()
	})
}

// SetDepth sets the "depth" field.
func (u *DelegationEdgeUpsertOne) SetDepth(v int) *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *DelegationEdgeUpsertOne) AddDepth(v int) *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *DelegationEdgeUpsertOne) UpdateDepth() *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateDepth()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DelegationEdgeUpsertOne) SetCreatedAt(v time.Time) *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DelegationEdgeUpsertOne) UpdateCreatedAt() *DelegationEdgeUpsertOne {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DelegationEdgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DelegationEdgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DelegationEdgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DelegationEdgeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DelegationEdgeUpsertOne.ID is not supported by MySQL driver. Use DelegationEdgeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DelegationEdgeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DelegationEdgeCreateBulk is the builder for creating many DelegationEdge entities in bulk.
type DelegationEdgeCreateBulk struct {
	config
	err      error
	builders []*DelegationEdgeCreate
	conflict []sql.ConflictOption
}

// Save creates the DelegationEdge entities in the database.
func (_c *DelegationEdgeCreateBulk) Save(ctx context.Context) ([]*DelegationEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DelegationEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DelegationEdgeMutation)
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
func (_c *DelegationEdgeCreateBulk) SaveX(ctx context.Context) []*DelegationEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DelegationEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DelegationEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DelegationEdge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DelegationEdgeUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DelegationEdgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *DelegationEdgeUpsertBulk {
	_c.conflict = opts
	return &DelegationEdgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DelegationEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DelegationEdgeCreateBulk) OnConflictColumns(columns ...string) *DelegationEdgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DelegationEdgeUpsertBulk{
		create: _c,
	}
}

// DelegationEdgeUpsertBulk is the builder for "upsert"-ing
// a bulk of DelegationEdge nodes.
type DelegationEdgeUpsertBulk struct {
	create *DelegationEdgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DelegationEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(delegationedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DelegationEdgeUpsertBulk) UpdateNewValues() *DelegationEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(delegationedge.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DelegationEdge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DelegationEdgeUpsertBulk) Ignore() *DelegationEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DelegationEdgeUpsertBulk) DoNothing() *DelegationEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DelegationEdgeCreateBulk.OnConflict
// documentation for more info.
func (u *DelegationEdgeUpsertBulk) Update(set func(*DelegationEdgeUpsert)) *DelegationEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DelegationEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *DelegationEdgeUpsertBulk) SetWorkspaceID(v string) *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertBulk) UpdateWorkspaceID() *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetParentTokenID sets the "parent_token_id" field.
func (u *DelegationEdgeUpsertBulk) SetParentTokenID(v string) *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetParentTokenID(v)
	})
}

// UpdateParentTokenID sets the "parent_token_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertBulk) UpdateParentTokenID() *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateParentTokenID()
	})
}

// SetChildTokenID sets the "child_token_id" field.
func (u *DelegationEdgeUpsertBulk) SetChildTokenID(v string) *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetChildTokenID(v)
	})
}

// UpdateChildTokenID sets the "child_token_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertBulk) UpdateChildTokenID() *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateChildTokenID()
	})
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (u *DelegationEdgeUpsertBulk) SetIssuedToPrincipalID(v string) *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetIssuedToPrincipalID(v)
	})
}

// UpdateIssuedToPrincipalID sets the "issued_to_principal_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertBulk) UpdateIssuedToPrincipalID() *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateIssuedToPrincipalID()
	})
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (u *DelegationEdgeUpsertBulk) SetGrantedByPrincipalID(v string) *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetGrantedByPrincipalID(v)
	})
}

// UpdateGrantedByPrincipalID sets the "granted_by_principal_id" field to the value that was provided on create.
func (u *DelegationEdgeUpsertBulk) UpdateGrantedByPrincipalID() *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateGrantedByPrincipalID()
	})
}

// SetDepth sets the "depth" field.
func (u *DelegationEdgeUpsertBulk) SetDepth(v int) *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *DelegationEdgeUpsertBulk) AddDepth(v int) *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *DelegationEdgeUpsertBulk) UpdateDepth() *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateDepth()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DelegationEdgeUpsertBulk) SetCreatedAt(v time.Time) *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DelegationEdgeUpsertBulk) UpdateCreatedAt() *DelegationEdgeUpsertBulk {
	return u.Update(func(s *DelegationEdgeUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DelegationEdgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DelegationEdgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DelegationEdgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DelegationEdgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
