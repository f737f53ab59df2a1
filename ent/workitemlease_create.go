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
	"github.com/missionloop/groundcontrol/ent/workitemlease"
)

// WorkItemLeaseCreate is the builder for creating a WorkItemLease entity.
type WorkItemLeaseCreate struct {
	config
	mutation *WorkItemLeaseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *WorkItemLeaseCreate) SetWorkspaceID(v string) *WorkItemLeaseCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetWorkItemType sets the "work_item_type" field.
func (_c *WorkItemLeaseCreate) SetWorkItemType(v workitemlease.WorkItemType) *WorkItemLeaseCreate {
	_c.mutation.SetWorkItemType(v)
	return _c
}

// SetWorkItemID sets the "work_item_id" field.
func (_c *WorkItemLeaseCreate) SetWorkItemID(v string) *WorkItemLeaseCreate {
	_c.mutation.SetWorkItemID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *WorkItemLeaseCreate) SetAgentID(v string) *WorkItemLeaseCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *WorkItemLeaseCreate) SetExpiresAt(v time.Time) *WorkItemLeaseCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *WorkItemLeaseCreate) SetVersion(v int) *WorkItemLeaseCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *WorkItemLeaseCreate) SetNillableVersion(v *int) *WorkItemLeaseCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkItemLeaseCreate) SetCreatedAt(v time.Time) *WorkItemLeaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkItemLeaseCreate) SetNillableCreatedAt(v *time.Time) *WorkItemLeaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkItemLeaseCreate) SetUpdatedAt(v time.Time) *WorkItemLeaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkItemLeaseCreate) SetNillableUpdatedAt(v *time.Time) *WorkItemLeaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkItemLeaseCreate) SetID(v string) *WorkItemLeaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkItemLeaseMutation object of the builder.
func (_c *WorkItemLeaseCreate) Mutation() *WorkItemLeaseMutation {
	return _c.mutation
}

// Save creates the WorkItemLease in the database.
func (_c *WorkItemLeaseCreate) Save(ctx context.Context) (*WorkItemLease, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkItemLeaseCreate) SaveX(ctx context.Context) *WorkItemLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemLeaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemLeaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkItemLeaseCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := workitemlease.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workitemlease.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workitemlease.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkItemLeaseCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "WorkItemLease.workspace_id"`)}
	}
	if _, ok := _c.mutation.WorkItemType(); !ok {
		return &ValidationError{Name: "work_item_type", err: errors.New(`ent: missing required field "WorkItemLease.work_item_type"`)}
	}
	if v, ok := _c.mutation.WorkItemType(); ok {
		if err := workitemlease.WorkItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "work_item_type", err: fmt.Errorf(`ent: validator failed for field "WorkItemLease.work_item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkItemID(); !ok {
		return &ValidationError{Name: "work_item_id", err: errors.New(`ent: missing required field "WorkItemLease.work_item_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "WorkItemLease.agent_id"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "WorkItemLease.expires_at"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "WorkItemLease.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkItemLease.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkItemLease.updated_at"`)}
	}
	return nil
}

func (_c *WorkItemLeaseCreate) sqlSave(ctx context.Context) (*WorkItemLease, error) {
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
			return nil, fmt.Errorf("unexpected WorkItemLease.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkItemLeaseCreate) createSpec() (*WorkItemLease, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkItemLease{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workitemlease.Table, sqlgraph.NewFieldSpec(workitemlease.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(workitemlease.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.WorkItemType(); ok {
		_spec.SetField(workitemlease.FieldWorkItemType, field.TypeEnum, value)
		_node.WorkItemType = value
	}
	if value, ok := _c.mutation.WorkItemID(); ok {
		_spec.SetField(workitemlease.FieldWorkItemID, field.TypeString, value)
		_node.WorkItemID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(workitemlease.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(workitemlease.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(workitemlease.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workitemlease.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workitemlease.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkItemLease.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkItemLeaseUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkItemLeaseCreate) OnConflict(opts ...sql.ConflictOption) *WorkItemLeaseUpsertOne {
	_c.conflict = opts
	return &WorkItemLeaseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkItemLease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkItemLeaseCreate) OnConflictColumns(columns ...string) *WorkItemLeaseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkItemLeaseUpsertOne{
		create: _c,
	}
}

type (
	// WorkItemLeaseUpsertOne is the builder for "upsert"-ing
	//  one WorkItemLease node.
	WorkItemLeaseUpsertOne struct {
		create *WorkItemLeaseCreate
	}

	// WorkItemLeaseUpsert is the "OnConflict" setter.
	WorkItemLeaseUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *WorkItemLeaseUpsert) SetWorkspaceID(v string) *WorkItemLeaseUpsert {
	u.Set(workitemlease.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *WorkItemLeaseUpsert) UpdateWorkspaceID() *WorkItemLeaseUpsert {
	u.SetExcluded(workitemlease.FieldWorkspaceID)
	return u
}

// SetWorkItemType sets the "work_item_type" field.
func (u *WorkItemLeaseUpsert) SetWorkItemType(v workitemlease.WorkItemType) *WorkItemLeaseUpsert {
	u.Set(workitemlease.FieldWorkItemType, v)
	return u
}

// UpdateWorkItemType sets the "work_item_type" field to the value that was provided on create.
func (u *WorkItemLeaseUpsert) UpdateWorkItemType() *WorkItemLeaseUpsert {
	u.SetExcluded(workitemlease.FieldWorkItemType)
	return u
}

// SetWorkItemID sets the "work_item_id" field.
func (u *WorkItemLeaseUpsert) SetWorkItemID(v string) *WorkItemLeaseUpsert {
	u.Set(workitemlease.FieldWorkItemID, v)
	return u
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *WorkItemLeaseUpsert) UpdateWorkItemID() *WorkItemLeaseUpsert {
	u.SetExcluded(workitemlease.FieldWorkItemID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *WorkItemLeaseUpsert) SetAgentID(v string) *WorkItemLeaseUpsert {
	u.Set(workitemlease.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *WorkItemLeaseUpsert) UpdateAgentID() *WorkItemLeaseUpsert {
	u.SetExcluded(workitemlease.FieldAgentID)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *WorkItemLeaseUpsert) SetExpiresAt(v time.Time) *WorkItemLeaseUpsert {
	u.Set(workitemlease.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *WorkItemLeaseUpsert) UpdateExpiresAt() *WorkItemLeaseUpsert {
	u.SetExcluded(workitemlease.FieldExpiresAt)
	return u
}

// SetVersion sets the "version" field.
func (u *WorkItemLeaseUpsert) SetVersion(v int) *WorkItemLeaseUpsert {
	u.Set(workitemlease.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *WorkItemLeaseUpsert) UpdateVersion() *WorkItemLeaseUpsert {
	u.SetExcluded(workitemlease.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *WorkItemLeaseUpsert) AddVersion(v int) *WorkItemLeaseUpsert {
	u.Add(workitemlease.FieldVersion, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *WorkItemLeaseUpsert) SetCreatedAt(v time.Time) *WorkItemLeaseUpsert {
	u.Set(workitemlease.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WorkItemLeaseUpsert) UpdateCreatedAt() *WorkItemLeaseUpsert {
	u.SetExcluded(workitemlease.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkItemLeaseUpsert) SetUpdatedAt(v time.Time) *WorkItemLeaseUpsert {
	u.Set(workitemlease.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkItemLeaseUpsert) UpdateUpdatedAt() *WorkItemLeaseUpsert {
	u.SetExcluded(workitemlease.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkItemLease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workitemlease.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkItemLeaseUpsertOne) UpdateNewValues() *WorkItemLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workitemlease.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkItemLease.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkItemLeaseUpsertOne) Ignore() *WorkItemLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkItemLeaseUpsertOne) DoNothing() *WorkItemLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkItemLeaseCreate.OnConflict
// documentation for more info.
func (u *WorkItemLeaseUpsertOne) Update(set func(*WorkItemLeaseUpsert)) *WorkItemLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkItemLeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *WorkItemLeaseUpsertOne) SetWorkspaceID(v string) *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertOne) UpdateWorkspaceID() *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetWorkItemType sets the "work_item_type" field.
func (u *WorkItemLeaseUpsertOne) SetWorkItemType(v workitemlease.WorkItemType) *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetWorkItemType(v)
	})
}

// UpdateWorkItemType sets the "work_item_type" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertOne) UpdateWorkItemType() *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateWorkItemType()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *WorkItemLeaseUpsertOne) SetWorkItemID(v string) *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertOne) UpdateWorkItemID() *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateWorkItemID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *WorkItemLeaseUpsertOne) SetAgentID(v string) *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertOne) UpdateAgentID() *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateAgentID()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *WorkItemLeaseUpsertOne) SetExpiresAt(v time.Time) *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertOne) UpdateExpiresAt() *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetVersion sets the "version" field.
func (u *WorkItemLeaseUpsertOne) SetVersion(v int) *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *WorkItemLeaseUpsertOne) AddVersion(v int) *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertOne) UpdateVersion() *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WorkItemLeaseUpsertOne) SetCreatedAt(v time.Time) *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertOne) UpdateCreatedAt() *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkItemLeaseUpsertOne) SetUpdatedAt(v time.Time) *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertOne) UpdateUpdatedAt() *WorkItemLeaseUpsertOne {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkItemLeaseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkItemLeaseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkItemLeaseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkItemLeaseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkItemLeaseUpsertOne.ID is not supported by MySQL driver. Use WorkItemLeaseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkItemLeaseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkItemLeaseCreateBulk is the builder for creating many WorkItemLease entities in bulk.
type WorkItemLeaseCreateBulk struct {
	config
	err      error
	builders []*WorkItemLeaseCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkItemLease entities in the database.
func (_c *WorkItemLeaseCreateBulk) Save(ctx context.Context) ([]*WorkItemLease, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkItemLease, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkItemLeaseMutation)
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
func (_c *WorkItemLeaseCreateBulk) SaveX(ctx context.Context) []*WorkItemLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemLeaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemLeaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkItemLease.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkItemLeaseUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkItemLeaseCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkItemLeaseUpsertBulk {
	_c.conflict = opts
	return &WorkItemLeaseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkItemLease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkItemLeaseCreateBulk) OnConflictColumns(columns ...string) *WorkItemLeaseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkItemLeaseUpsertBulk{
		create: _c,
	}
}

// WorkItemLeaseUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkItemLease nodes.
type WorkItemLeaseUpsertBulk struct {
	create *WorkItemLeaseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkItemLease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workitemlease.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkItemLeaseUpsertBulk) UpdateNewValues() *WorkItemLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workitemlease.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkItemLease.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkItemLeaseUpsertBulk) Ignore() *WorkItemLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkItemLeaseUpsertBulk) DoNothing() *WorkItemLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkItemLeaseCreateBulk.OnConflict
// documentation for more info.
func (u *WorkItemLeaseUpsertBulk) Update(set func(*WorkItemLeaseUpsert)) *WorkItemLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkItemLeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *WorkItemLeaseUpsertBulk) SetWorkspaceID(v string) *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertBulk) UpdateWorkspaceID() *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetWorkItemType sets the "work_item_type" field.
func (u *WorkItemLeaseUpsertBulk) SetWorkItemType(v workitemlease.WorkItemType) *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetWorkItemType(v)
	})
}

// UpdateWorkItemType sets the "work_item_type" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertBulk) UpdateWorkItemType() *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateWorkItemType()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *WorkItemLeaseUpsertBulk) SetWorkItemID(v string) *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertBulk) UpdateWorkItemID() *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateWorkItemID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *WorkItemLeaseUpsertBulk) SetAgentID(v string) *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertBulk) UpdateAgentID() *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateAgentID()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *WorkItemLeaseUpsertBulk) SetExpiresAt(v time.Time) *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertBulk) UpdateExpiresAt() *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetVersion sets the "version" field.
func (u *WorkItemLeaseUpsertBulk) SetVersion(v int) *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *WorkItemLeaseUpsertBulk) AddVersion(v int) *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertBulk) UpdateVersion() *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WorkItemLeaseUpsertBulk) SetCreatedAt(v time.Time) *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertBulk) UpdateCreatedAt() *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkItemLeaseUpsertBulk) SetUpdatedAt(v time.Time) *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkItemLeaseUpsertBulk) UpdateUpdatedAt() *WorkItemLeaseUpsertBulk {
	return u.Update(func(s *WorkItemLeaseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkItemLeaseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkItemLeaseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkItemLeaseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkItemLeaseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
