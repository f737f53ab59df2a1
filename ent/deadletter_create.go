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
	"github.com/missionloop/groundcontrol/ent/deadletter"
)

// DeadLetterCreate is the builder for creating a DeadLetter entity.
type DeadLetterCreate struct {
	config
	mutation *DeadLetterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *DeadLetterCreate) SetWorkspaceID(v string) *DeadLetterCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *DeadLetterCreate) SetEventID(v string) *DeadLetterCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetProjector sets the "projector" field.
func (_c *DeadLetterCreate) SetProjector(v string) *DeadLetterCreate {
	_c.mutation.SetProjector(v)
	return _c
}

// SetError sets the "error" field.
func (_c *DeadLetterCreate) SetError(v string) *DeadLetterCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *DeadLetterCreate) SetAttempts(v int) *DeadLetterCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableAttempts(v *int) *DeadLetterCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeadLetterCreate) SetCreatedAt(v time.Time) *DeadLetterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableCreatedAt(v *time.Time) *DeadLetterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *DeadLetterCreate) SetResolvedAt(v time.Time) *DeadLetterCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableResolvedAt(v *time.Time) *DeadLetterCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeadLetterCreate) SetID(v string) *DeadLetterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_c *DeadLetterCreate) Mutation() *DeadLetterMutation {
	return _c.mutation
}

// Save creates the DeadLetter in the database.
func (_c *DeadLetterCreate) Save(ctx context.Context) (*DeadLetter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeadLetterCreate) SaveX(ctx context.Context) *DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeadLetterCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := deadletter.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deadletter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeadLetterCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "DeadLetter.workspace_id"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "DeadLetter.event_id"`)}
	}
	if _, ok := _c.mutation.Projector(); !ok {
		return &ValidationError{Name: "projector", err: errors.New(`ent: missing required field "DeadLetter.projector"`)}
	}
	if _, ok := _c.mutation.Error(); !ok {
		return &ValidationError{Name: "error", err: errors.New(`ent: missing required field "DeadLetter.error"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "DeadLetter.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeadLetter.created_at"`)}
	}
	return nil
}

func (_c *DeadLetterCreate) sqlSave(ctx context.Context) (*DeadLetter, error) {
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
			return nil, fmt.Errorf("unexpected DeadLetter.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeadLetterCreate) createSpec() (*DeadLetter, *sqlgraph.CreateSpec) {
	var (
		_node = &DeadLetter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deadletter.Table, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(deadletter.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(deadletter.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Projector(); ok {
		_spec.SetField(deadletter.FieldProjector, field.TypeString, value)
		_node.Projector = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(deadletter.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(deadletter.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deadletter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(deadletter.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeadLetter.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeadLetterUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeadLetterCreate) OnConflict(opts ...sql.ConflictOption) *DeadLetterUpsertOne {
	_c.conflict = opts
	return &DeadLetterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeadLetterCreate) OnConflictColumns(columns ...string) *DeadLetterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeadLetterUpsertOne{
		create: _c,
	}
}

type (
	// DeadLetterUpsertOne is the builder for "upsert"-ing
	//  one DeadLetter node.
	DeadLetterUpsertOne struct {
		create *DeadLetterCreate
	}

	// DeadLetterUpsert is the "OnConflict" setter.
	DeadLetterUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *DeadLetterUpsert) SetWorkspaceID(v string) *DeadLetterUpsert {
	u.Set(deadletter.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateWorkspaceID() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldWorkspaceID)
	return u
}

// SetEventID sets the "event_id" field.
func (u *DeadLetterUpsert) SetEventID(v string) *DeadLetterUpsert {
	u.Set(deadletter.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateEventID() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldEventID)
	return u
}

// SetProjector sets the "projector" field.
func (u *DeadLetterUpsert) SetProjector(v string) *DeadLetterUpsert {
	u.Set(deadletter.FieldProjector, v)
	return u
}

// UpdateProjector sets the "projector" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateProjector() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldProjector)
	return u
}

// SetError sets the "error" field.
func (u *DeadLetterUpsert) SetError(v string) *DeadLetterUpsert {
	u.Set(deadletter.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateError() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldError)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *DeadLetterUpsert) SetAttempts(v int) *DeadLetterUpsert {
	u.Set(deadletter.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateAttempts() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *DeadLetterUpsert) AddAttempts(v int) *DeadLetterUpsert {
	u.Add(deadletter.FieldAttempts, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DeadLetterUpsert) SetCreatedAt(v time.Time) *DeadLetterUpsert {
	u.Set(deadletter.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateCreatedAt() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldCreatedAt)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *DeadLetterUpsert) SetResolvedAt(v time.Time) *DeadLetterUpsert {
	u.Set(deadletter.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateResolvedAt() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *DeadLetterUpsert) ClearResolvedAt() *DeadLetterUpsert {
	u.SetNull(deadletter.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deadletter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeadLetterUpsertOne) UpdateNewValues() *DeadLetterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(deadletter.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeadLetterUpsertOne) Ignore() *DeadLetterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeadLetterUpsertOne) DoNothing() *DeadLetterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeadLetterCreate.OnConflict
// documentation for more info.
func (u *DeadLetterUpsertOne) Update(set func(*DeadLetterUpsert)) *DeadLetterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeadLetterUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *DeadLetterUpsertOne) SetWorkspaceID(v string) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateWorkspaceID() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetEventID sets the "event_id" field.
func (u *DeadLetterUpsertOne) SetEventID(v string) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateEventID() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateEventID()
	})
}

// SetProjector sets the "projector" field.
func (u *DeadLetterUpsertOne) SetProjector(v string) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetProjector(v)
	})
}

// UpdateProjector sets the "projector" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateProjector() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateProjector()
	})
}

// SetError sets the "error" field.
func (u *DeadLetterUpsertOne) SetError(v string) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateError() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateError()
	})
}

// SetAttempts sets the "attempts" field.
func (u *DeadLetterUpsertOne) SetAttempts(v int) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *DeadLetterUpsertOne) AddAttempts(v int) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateAttempts() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateAttempts()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DeadLetterUpsertOne) SetCreatedAt(v time.Time) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateCreatedAt() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *DeadLetterUpsertOne) SetResolvedAt(v time.Time) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateResolvedAt() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *DeadLetterUpsertOne) ClearResolvedAt() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *DeadLetterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeadLetterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeadLetterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeadLetterUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DeadLetterUpsertOne.ID is not supported by MySQL driver. Use DeadLetterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeadLetterUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeadLetterCreateBulk is the builder for creating many DeadLetter entities in bulk.
type DeadLetterCreateBulk struct {
	config
	err      error
	builders []*DeadLetterCreate
	conflict []sql.ConflictOption
}

// Save creates the DeadLetter entities in the database.
func (_c *DeadLetterCreateBulk) Save(ctx context.Context) ([]*DeadLetter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeadLetter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeadLetterMutation)
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
func (_c *DeadLetterCreateBulk) SaveX(ctx context.Context) []*DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeadLetter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeadLetterUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeadLetterCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeadLetterUpsertBulk {
	_c.conflict = opts
	return &DeadLetterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeadLetterCreateBulk) OnConflictColumns(columns ...string) *DeadLetterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeadLetterUpsertBulk{
		create: _c,
	}
}

// DeadLetterUpsertBulk is the builder for "upsert"-ing
// a bulk of DeadLetter nodes.
type DeadLetterUpsertBulk struct {
	create *DeadLetterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deadletter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeadLetterUpsertBulk) UpdateNewValues() *DeadLetterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(deadletter.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeadLetterUpsertBulk) Ignore() *DeadLetterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeadLetterUpsertBulk) DoNothing() *DeadLetterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeadLetterCreateBulk.OnConflict
// documentation for more info.
func (u *DeadLetterUpsertBulk) Update(set func(*DeadLetterUpsert)) *DeadLetterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeadLetterUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *DeadLetterUpsertBulk) SetWorkspaceID(v string) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateWorkspaceID() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetEventID sets the "event_id" field.
func (u *DeadLetterUpsertBulk) SetEventID(v string) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateEventID() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateEventID()
	})
}

// SetProjector sets the "projector" field.
func (u *DeadLetterUpsertBulk) SetProjector(v string) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetProjector(v)
	})
}

// UpdateProjector sets the "projector" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateProjector() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateProjector()
	})
}

// SetError sets the "error" field.
func (u *DeadLetterUpsertBulk) SetError(v string) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateError() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateError()
	})
}

// SetAttempts sets the "attempts" field.
func (u *DeadLetterUpsertBulk) SetAttempts(v int) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *DeadLetterUpsertBulk) AddAttempts(v int) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateAttempts() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateAttempts()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DeadLetterUpsertBulk) SetCreatedAt(v time.Time) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateCreatedAt() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *DeadLetterUpsertBulk) SetResolvedAt(v time.Time) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateResolvedAt() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *DeadLetterUpsertBulk) ClearResolvedAt() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *DeadLetterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeadLetterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeadLetterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeadLetterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
