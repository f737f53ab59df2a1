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
	"github.com/missionloop/groundcontrol/ent/step"
)

// StepCreate is the builder for creating a Step entity.
type StepCreate struct {
	config
	mutation *StepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *StepCreate) SetWorkspaceID(v string) *StepCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *StepCreate) SetRunID(v string) *StepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *StepCreate) SetName(v string) *StepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *StepCreate) SetNillableName(v *string) *StepCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepCreate) SetStatus(v step.Status) *StepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepCreate) SetNillableStatus(v *step.Status) *StepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *StepCreate) SetCorrelationID(v string) *StepCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *StepCreate) SetLastEventID(v string) *StepCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepCreate) SetCreatedAt(v time.Time) *StepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCreatedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StepCreate) SetUpdatedAt(v time.Time) *StepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableUpdatedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepCreate) SetID(v string) *StepCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StepMutation object of the builder.
func (_c *StepCreate) Mutation() *StepMutation {
	return _c.mutation
}

// Save creates the Step in the database.
func (_c *StepCreate) Save(ctx context.Context) (*Step, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCreate) SaveX(ctx context.Context) *Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := step.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := step.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := step.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Step.workspace_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Step.run_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Step.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Step.correlation_id"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "Step.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Step.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Step.updated_at"`)}
	}
	return nil
}

func (_c *StepCreate) sqlSave(ctx context.Context) (*Step, error) {
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
			return nil, fmt.Errorf("unexpected Step.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepCreate) createSpec() (*Step, *sqlgraph.CreateSpec) {
	var (
		_node = &Step{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(step.Table, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(step.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(step.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(step.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(step.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(step.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(step.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(step.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Step.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreate) OnConflict(opts ...sql.ConflictOption) *StepUpsertOne {
	_c.conflict = opts
	return &StepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreate) OnConflictColumns(columns ...string) *StepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertOne{
		create: _c,
	}
}

type (
	// StepUpsertOne is the builder for "upsert"-ing
	//  one Step node.
	StepUpsertOne struct {
		create *StepCreate
	}

	// StepUpsert is the "OnConflict" setter.
	StepUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *StepUpsert) SetWorkspaceID(v string) *StepUpsert {
	u.Set(step.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *StepUpsert) UpdateWorkspaceID() *StepUpsert {
	u.SetExcluded(step.FieldWorkspaceID)
	return u
}

// SetRunID sets the "run_id" field.
func (u *StepUpsert) SetRunID(v string) *StepUpsert {
	u.Set(step.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *StepUpsert) UpdateRunID() *StepUpsert {
	u.SetExcluded(step.FieldRunID)
	return u
}

// SetName sets the "name" field.
func (u *StepUpsert) SetName(v string) *StepUpsert {
	u.Set(step.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StepUpsert) UpdateName() *StepUpsert {
	u.SetExcluded(step.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *StepUpsert) ClearName() *StepUpsert {
	u.SetNull(step.FieldName)
	return u
}

// SetStatus sets the "status" field.
func (u *StepUpsert) SetStatus(v step.Status) *StepUpsert {
	u.Set(step.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepUpsert) UpdateStatus() *StepUpsert {
	u.SetExcluded(step.FieldStatus)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *StepUpsert) SetCorrelationID(v string) *StepUpsert {
	u.Set(step.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *StepUpsert) UpdateCorrelationID() *StepUpsert {
	u.SetExcluded(step.FieldCorrelationID)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *StepUpsert) SetLastEventID(v string) *StepUpsert {
	u.Set(step.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *StepUpsert) UpdateLastEventID() *StepUpsert {
	u.SetExcluded(step.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *StepUpsert) SetCreatedAt(v time.Time) *StepUpsert {
	u.Set(step.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepUpsert) UpdateCreatedAt() *StepUpsert {
	u.SetExcluded(step.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StepUpsert) SetUpdatedAt(v time.Time) *StepUpsert {
	u.Set(step.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StepUpsert) UpdateUpdatedAt() *StepUpsert {
	u.SetExcluded(step.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertOne) UpdateNewValues() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(step.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepUpsertOne) Ignore() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertOne) DoNothing() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreate.OnConflict
// documentation for more info.
func (u *StepUpsertOne) Update(set func(*StepUpsert)) *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *StepUpsertOne) SetWorkspaceID(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateWorkspaceID() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *StepUpsertOne) SetRunID(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateRunID() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateRunID()
	})
}

// SetName sets the "name" field.
func (u *StepUpsertOne) SetName(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateName() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *StepUpsertOne) ClearName() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearName()
	})
}

// SetStatus sets the "status" field.
func (u *StepUpsertOne) SetStatus(v step.Status) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateStatus() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStatus()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *StepUpsertOne) SetCorrelationID(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateCorrelationID() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *StepUpsertOne) SetLastEventID(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateLastEventID() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StepUpsertOne) SetCreatedAt(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateCreatedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StepUpsertOne) SetUpdatedAt(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateUpdatedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StepUpsertOne.ID is not supported by MySQL driver. Use StepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepCreateBulk is the builder for creating many Step entities in bulk.
type StepCreateBulk struct {
	config
	err      error
	builders []*StepCreate
	conflict []sql.ConflictOption
}

// Save creates the Step entities in the database.
func (_c *StepCreateBulk) Save(ctx context.Context) ([]*Step, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Step, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepMutation)
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
func (_c *StepCreateBulk) SaveX(ctx context.Context) []*Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Step.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepUpsertBulk {
	_c.conflict = opts
	return &StepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflictColumns(columns ...string) *StepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertBulk{
		create: _c,
	}
}

// StepUpsertBulk is the builder for "upsert"-ing
// a bulk of Step nodes.
type StepUpsertBulk struct {
	create *StepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertBulk) UpdateNewValues() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(step.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepUpsertBulk) Ignore() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertBulk) DoNothing() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreateBulk.OnConflict
// documentation for more info.
func (u *StepUpsertBulk) Update(set func(*StepUpsert)) *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *StepUpsertBulk) SetWorkspaceID(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateWorkspaceID() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *StepUpsertBulk) SetRunID(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateRunID() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateRunID()
	})
}

// SetName sets the "name" field.
func (u *StepUpsertBulk) SetName(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateName() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *StepUpsertBulk) ClearName() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearName()
	})
}

// SetStatus sets the "status" field.
func (u *StepUpsertBulk) SetStatus(v step.Status) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateStatus() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStatus()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *StepUpsertBulk) SetCorrelationID(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateCorrelationID() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *StepUpsertBulk) SetLastEventID(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateLastEventID() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StepUpsertBulk) SetCreatedAt(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateCreatedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StepUpsertBulk) SetUpdatedAt(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateUpdatedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
