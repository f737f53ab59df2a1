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
	"github.com/missionloop/groundcontrol/ent/ratelimitstreak"
)

// RateLimitStreakCreate is the builder for creating a RateLimitStreak entity.
type RateLimitStreakCreate struct {
	config
	mutation *RateLimitStreakMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *RateLimitStreakCreate) SetWorkspaceID(v string) *RateLimitStreakCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *RateLimitStreakCreate) SetAgentID(v string) *RateLimitStreakCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *RateLimitStreakCreate) SetScope(v string) *RateLimitStreakCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetConsecutive429 sets the "consecutive_429" field.
func (_c *RateLimitStreakCreate) SetConsecutive429(v int) *RateLimitStreakCreate {
	_c.mutation.SetConsecutive429(v)
	return _c
}

// SetNillableConsecutive429 sets the "consecutive_429" field if the given value is not nil.
func (_c *RateLimitStreakCreate) SetNillableConsecutive429(v *int) *RateLimitStreakCreate {
	if v != nil {
		_c.SetConsecutive429(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RateLimitStreakCreate) SetUpdatedAt(v time.Time) *RateLimitStreakCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RateLimitStreakCreate) SetNillableUpdatedAt(v *time.Time) *RateLimitStreakCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RateLimitStreakCreate) SetID(v string) *RateLimitStreakCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RateLimitStreakMutation object of the builder.
func (_c *RateLimitStreakCreate) Mutation() *RateLimitStreakMutation {
	return _c.mutation
}

// Save creates the RateLimitStreak in the database.
func (_c *RateLimitStreakCreate) Save(ctx context.Context) (*RateLimitStreak, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RateLimitStreakCreate) SaveX(ctx context.Context) *RateLimitStreak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitStreakCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitStreakCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RateLimitStreakCreate) defaults() {
	if _, ok := _c.mutation.Consecutive429(); !ok {
		v := ratelimitstreak.DefaultConsecutive429
		_c.mutation.SetConsecutive429(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ratelimitstreak.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RateLimitStreakCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "RateLimitStreak.workspace_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "RateLimitStreak.agent_id"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "RateLimitStreak.scope"`)}
	}
	if _, ok := _c.mutation.Consecutive429(); !ok {
		return &ValidationError{Name: "consecutive_429", err: errors.New(`ent: missing required field "RateLimitStreak.consecutive_429"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RateLimitStreak.updated_at"`)}
	}
	return nil
}

func (_c *RateLimitStreakCreate) sqlSave(ctx context.Context) (*RateLimitStreak, error) {
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
			return nil, fmt.Errorf("unexpected RateLimitStreak.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RateLimitStreakCreate) createSpec() (*RateLimitStreak, *sqlgraph.CreateSpec) {
	var (
		_node = &RateLimitStreak{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ratelimitstreak.Table, sqlgraph.NewFieldSpec(ratelimitstreak.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(ratelimitstreak.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(ratelimitstreak.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(ratelimitstreak.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Consecutive429(); ok {
		_spec.SetField(ratelimitstreak.FieldConsecutive429, field.TypeInt, value)
		_node.Consecutive429 = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ratelimitstreak.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitStreak.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitStreakUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitStreakCreate) OnConflict(opts ...sql.ConflictOption) *RateLimitStreakUpsertOne {
	_c.conflict = opts
	return &RateLimitStreakUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitStreak.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitStreakCreate) OnConflictColumns(columns ...string) *RateLimitStreakUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitStreakUpsertOne{
		create: _c,
	}
}

type (
	// RateLimitStreakUpsertOne is the builder for "upsert"-ing
	//  one RateLimitStreak node.
	RateLimitStreakUpsertOne struct {
		create *RateLimitStreakCreate
	}

	// RateLimitStreakUpsert is the "OnConflict" setter.
	RateLimitStreakUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *RateLimitStreakUpsert) SetWorkspaceID(v string) *RateLimitStreakUpsert {
	u.Set(ratelimitstreak.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *RateLimitStreakUpsert) UpdateWorkspaceID() *RateLimitStreakUpsert {
	u.SetExcluded(ratelimitstreak.FieldWorkspaceID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *RateLimitStreakUpsert) SetAgentID(v string) *RateLimitStreakUpsert {
	u.Set(ratelimitstreak.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *RateLimitStreakUpsert) UpdateAgentID() *RateLimitStreakUpsert {
	u.SetExcluded(ratelimitstreak.FieldAgentID)
	return u
}

// SetScope sets the "scope" field.
func (u *RateLimitStreakUpsert) SetScope(v string) *RateLimitStreakUpsert {
	u.Set(ratelimitstreak.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *RateLimitStreakUpsert) UpdateScope() *RateLimitStreakUpsert {
	u.SetExcluded(ratelimitstreak.FieldScope)
	return u
}

// SetConsecutive429 sets the "consecutive_429" field.
func (u *RateLimitStreakUpsert) SetConsecutive429(v int) *RateLimitStreakUpsert {
	u.Set(ratelimitstreak.FieldConsecutive429, v)
	return u
}

// UpdateConsecutive429 sets the "consecutive_429" field to the value that was provided on create.
func (u *RateLimitStreakUpsert) UpdateConsecutive429() *RateLimitStreakUpsert {
	u.SetExcluded(ratelimitstreak.FieldConsecutive429)
	return u
}

// AddConsecutive429 adds v to the "consecutive_429" field.
func (u *RateLimitStreakUpsert) AddConsecutive429(v int) *RateLimitStreakUpsert {
	u.Add(ratelimitstreak.FieldConsecutive429, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RateLimitStreakUpsert) SetUpdatedAt(v time.Time) *RateLimitStreakUpsert {
	u.Set(ratelimitstreak.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RateLimitStreakUpsert) UpdateUpdatedAt() *RateLimitStreakUpsert {
	u.SetExcluded(ratelimitstreak.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RateLimitStreak.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ratelimitstreak.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RateLimitStreakUpsertOne) UpdateNewValues() *RateLimitStreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ratelimitstreak.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitStreak.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RateLimitStreakUpsertOne) Ignore() *RateLimitStreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitStreakUpsertOne) DoNothing() *RateLimitStreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitStreakCreate.OnConflict
// documentation for more info.
func (u *RateLimitStreakUpsertOne) Update(set func(*RateLimitStreakUpsert)) *RateLimitStreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitStreakUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *RateLimitStreakUpsertOne) SetWorkspaceID(v string) *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *RateLimitStreakUpsertOne) UpdateWorkspaceID() *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *RateLimitStreakUpsertOne) SetAgentID(v string) *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *RateLimitStreakUpsertOne) UpdateAgentID() *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateAgentID()
	})
}

// SetScope sets the "scope" field.
func (u *RateLimitStreakUpsertOne) SetScope(v string) *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *RateLimitStreakUpsertOne) UpdateScope() *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateScope()
	})
}

// SetConsecutive429 sets the "consecutive_429" field.
func (u *RateLimitStreakUpsertOne) SetConsecutive429(v int) *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetConsecutive429(v)
	})
}

// AddConsecutive429 adds v to the "consecutive_429" field.
func (u *RateLimitStreakUpsertOne) AddConsecutive429(v int) *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.AddConsecutive429(v)
	})
}

// UpdateConsecutive429 sets the "consecutive_429" field to the value that was provided on create.
func (u *RateLimitStreakUpsertOne) UpdateConsecutive429() *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateConsecutive429()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RateLimitStreakUpsertOne) SetUpdatedAt(v time.Time) *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RateLimitStreakUpsertOne) UpdateUpdatedAt() *RateLimitStreakUpsertOne {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RateLimitStreakUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitStreakCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitStreakUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RateLimitStreakUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RateLimitStreakUpsertOne.ID is not supported by MySQL driver. Use RateLimitStreakUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RateLimitStreakUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RateLimitStreakCreateBulk is the builder for creating many RateLimitStreak entities in bulk.
type RateLimitStreakCreateBulk struct {
	config
	err      error
	builders []*RateLimitStreakCreate
	conflict []sql.ConflictOption
}

// Save creates the RateLimitStreak entities in the database.
func (_c *RateLimitStreakCreateBulk) Save(ctx context.Context) ([]*RateLimitStreak, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RateLimitStreak, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RateLimitStreakMutation)
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
func (_c *RateLimitStreakCreateBulk) SaveX(ctx context.Context) []*RateLimitStreak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitStreakCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitStreakCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitStreak.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitStreakUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitStreakCreateBulk) OnConflict(opts ...sql.ConflictOption) *RateLimitStreakUpsertBulk {
	_c.conflict = opts
	return &RateLimitStreakUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitStreak.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitStreakCreateBulk) OnConflictColumns(columns ...string) *RateLimitStreakUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitStreakUpsertBulk{
		create: _c,
	}
}

// RateLimitStreakUpsertBulk is the builder for "upsert"-ing
// a bulk of RateLimitStreak nodes.
type RateLimitStreakUpsertBulk struct {
	create *RateLimitStreakCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RateLimitStreak.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ratelimitstreak.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RateLimitStreakUpsertBulk) UpdateNewValues() *RateLimitStreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ratelimitstreak.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitStreak.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RateLimitStreakUpsertBulk) Ignore() *RateLimitStreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitStreakUpsertBulk) DoNothing() *RateLimitStreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitStreakCreateBulk.OnConflict
// documentation for more info.
func (u *RateLimitStreakUpsertBulk) Update(set func(*RateLimitStreakUpsert)) *RateLimitStreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitStreakUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *RateLimitStreakUpsertBulk) SetWorkspaceID(v string) *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *RateLimitStreakUpsertBulk) UpdateWorkspaceID() *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *RateLimitStreakUpsertBulk) SetAgentID(v string) *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *RateLimitStreakUpsertBulk) UpdateAgentID() *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateAgentID()
	})
}

// SetScope sets the "scope" field.
func (u *RateLimitStreakUpsertBulk) SetScope(v string) *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *RateLimitStreakUpsertBulk) UpdateScope() *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateScope()
	})
}

// SetConsecutive429 sets the "consecutive_429" field.
func (u *RateLimitStreakUpsertBulk) SetConsecutive429(v int) *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetConsecutive429(v)
	})
}

// AddConsecutive429 adds v to the "consecutive_429" field.
func (u *RateLimitStreakUpsertBulk) AddConsecutive429(v int) *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.AddConsecutive429(v)
	})
}

// UpdateConsecutive429 sets the "consecutive_429" field to the value that was provided on create.
func (u *RateLimitStreakUpsertBulk) UpdateConsecutive429() *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateConsecutive429()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RateLimitStreakUpsertBulk) SetUpdatedAt(v time.Time) *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RateLimitStreakUpsertBulk) UpdateUpdatedAt() *RateLimitStreakUpsertBulk {
	return u.Update(func(s *RateLimitStreakUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RateLimitStreakUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RateLimitStreakCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitStreakCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitStreakUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
