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
	"github.com/missionloop/groundcontrol/ent/incidentlearning"
)

// IncidentLearningCreate is the builder for creating a IncidentLearning entity.
type IncidentLearningCreate struct {
	config
	mutation *IncidentLearningMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *IncidentLearningCreate) SetWorkspaceID(v string) *IncidentLearningCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *IncidentLearningCreate) SetIncidentID(v string) *IncidentLearningCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *IncidentLearningCreate) SetSummary(v string) *IncidentLearningCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetLoggedBy sets the "logged_by" field.
func (_c *IncidentLearningCreate) SetLoggedBy(v string) *IncidentLearningCreate {
	_c.mutation.SetLoggedBy(v)
	return _c
}

// SetNillableLoggedBy sets the "logged_by" field if the given value is not nil.
func (_c *IncidentLearningCreate) SetNillableLoggedBy(v *string) *IncidentLearningCreate {
	if v != nil {
		_c.SetLoggedBy(*v)
	}
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *IncidentLearningCreate) SetLastEventID(v string) *IncidentLearningCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IncidentLearningCreate) SetCreatedAt(v time.Time) *IncidentLearningCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IncidentLearningCreate) SetNillableCreatedAt(v *time.Time) *IncidentLearningCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentLearningCreate) SetID(v string) *IncidentLearningCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IncidentLearningMutation object of the builder.
func (_c *IncidentLearningCreate) Mutation() *IncidentLearningMutation {
	return _c.mutation
}

// Save creates the IncidentLearning in the database.
func (_c *IncidentLearningCreate) Save(ctx context.Context) (*IncidentLearning, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentLearningCreate) SaveX(ctx context.Context) *IncidentLearning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentLearningCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentLearningCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentLearningCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := incidentlearning.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentLearningCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "IncidentLearning.workspace_id"`)}
	}
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "IncidentLearning.incident_id"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "IncidentLearning.summary"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "IncidentLearning.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IncidentLearning.created_at"`)}
	}
	return nil
}

func (_c *IncidentLearningCreate) sqlSave(ctx context.Context) (*IncidentLearning, error) {
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
			return nil, fmt.Errorf("unexpected IncidentLearning.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentLearningCreate) createSpec() (*IncidentLearning, *sqlgraph.CreateSpec) {
	var (
		_node = &IncidentLearning{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incidentlearning.Table, sqlgraph.NewFieldSpec(incidentlearning.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(incidentlearning.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(incidentlearning.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(incidentlearning.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.LoggedBy(); ok {
		_spec.SetField(incidentlearning.FieldLoggedBy, field.TypeString, value)
		_node.LoggedBy = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(incidentlearning.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(incidentlearning.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IncidentLearning.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IncidentLearningUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *IncidentLearningCreate) OnConflict(opts ...sql.ConflictOption) *IncidentLearningUpsertOne {
	_c.conflict = opts
	return &IncidentLearningUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IncidentLearning.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IncidentLearningCreate) OnConflictColumns(columns ...string) *IncidentLearningUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IncidentLearningUpsertOne{
		create: _c,
	}
}

type (
	// IncidentLearningUpsertOne is the builder for "upsert"-ing
	//  one IncidentLearning node.
	IncidentLearningUpsertOne struct {
		create *IncidentLearningCreate
	}

	// IncidentLearningUpsert is the "OnConflict" setter.
	IncidentLearningUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *IncidentLearningUpsert) SetWorkspaceID(v string) *IncidentLearningUpsert {
	u.Set(incidentlearning.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *IncidentLearningUpsert) UpdateWorkspaceID() *IncidentLearningUpsert {
	u.SetExcluded(incidentlearning.FieldWorkspaceID)
	return u
}

// SetIncidentID sets the "incident_id" field.
func (u *IncidentLearningUpsert) SetIncidentID(v string) *IncidentLearningUpsert {
	u.Set(incidentlearning.FieldIncidentID, v)
	return u
}

// UpdateIncidentID sets the "incident_id" field to the value that was provided on create.
func (u *IncidentLearningUpsert) UpdateIncidentID() *IncidentLearningUpsert {
	u.SetExcluded(incidentlearning.FieldIncidentID)
	return u
}

// SetSummary sets the "summary" field.
func (u *IncidentLearningUpsert) SetSummary(v string) *IncidentLearningUpsert {
	u.Set(incidentlearning.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *IncidentLearningUpsert) UpdateSummary() *IncidentLearningUpsert {
	u.SetExcluded(incidentlearning.FieldSummary)
	return u
}

// SetLoggedBy sets the "logged_by" field.
func (u *IncidentLearningUpsert) SetLoggedBy(v string) *IncidentLearningUpsert {
	u.Set(incidentlearning.FieldLoggedBy, v)
	return u
}

// UpdateLoggedBy sets the "logged_by" field to the value that was provided on create.
func (u *IncidentLearningUpsert) UpdateLoggedBy() *IncidentLearningUpsert {
	u.SetExcluded(incidentlearning.FieldLoggedBy)
	return u
}

// ClearLoggedBy clears the value of the "logged_by" field.
func (u *IncidentLearningUpsert) ClearLoggedBy() *IncidentLearningUpsert {
	u.SetNull(incidentlearning.FieldLoggedBy)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *IncidentLearningUpsert) SetLastEventID(v string) *IncidentLearningUpsert {
	u.Set(incidentlearning.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *IncidentLearningUpsert) UpdateLastEventID() *IncidentLearningUpsert {
	u.SetExcluded(incidentlearning.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *IncidentLearningUpsert) SetCreatedAt(v time.Time) *IncidentLearningUpsert {
	u.Set(incidentlearning.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *IncidentLearningUpsert) UpdateCreatedAt() *IncidentLearningUpsert {
	u.SetExcluded(incidentlearning.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.IncidentLearning.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(incidentlearning.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IncidentLearningUpsertOne) UpdateNewValues() *IncidentLearningUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(incidentlearning.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IncidentLearning.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IncidentLearningUpsertOne) Ignore() *IncidentLearningUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IncidentLearningUpsertOne) DoNothing() *IncidentLearningUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IncidentLearningCreate.OnConflict
// documentation for more info.
func (u *IncidentLearningUpsertOne) Update(set func(*IncidentLearningUpsert)) *IncidentLearningUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IncidentLearningUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *IncidentLearningUpsertOne) SetWorkspaceID(v string) *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *IncidentLearningUpsertOne) UpdateWorkspaceID() *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetIncidentID sets the "incident_id" field.
func (u *IncidentLearningUpsertOne) SetIncidentID(v string) *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetIncidentID(v)
	})
}

// UpdateIncidentID sets the "incident_id" field to the value that was provided on create.
func (u *IncidentLearningUpsertOne) UpdateIncidentID() *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateIncidentID()
	})
}

// SetSummary sets the "summary" field.
func (u *IncidentLearningUpsertOne) SetSummary(v string) *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *IncidentLearningUpsertOne) UpdateSummary() *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateSummary()
	})
}

// SetLoggedBy sets the "logged_by" field.
func (u *IncidentLearningUpsertOne) SetLoggedBy(v string) *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetLoggedBy(v)
	})
}

// UpdateLoggedBy sets the "logged_by" field to the value that was provided on create.
func (u *IncidentLearningUpsertOne) UpdateLoggedBy() *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateLoggedBy()
	})
}

// ClearLoggedBy clears the value of the "logged_by" field.
func (u *IncidentLearningUpsertOne) ClearLoggedBy() *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.ClearLoggedBy()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *IncidentLearningUpsertOne) SetLastEventID(v string) *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *IncidentLearningUpsertOne) UpdateLastEventID() *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *IncidentLearningUpsertOne) SetCreatedAt(v time.Time) *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *IncidentLearningUpsertOne) UpdateCreatedAt() *IncidentLearningUpsertOne {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *IncidentLearningUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IncidentLearningCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IncidentLearningUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IncidentLearningUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IncidentLearningUpsertOne.ID is not supported by MySQL driver. Use IncidentLearningUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IncidentLearningUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IncidentLearningCreateBulk is the builder for creating many IncidentLearning entities in bulk.
type IncidentLearningCreateBulk struct {
	config
	err      error
	builders []*IncidentLearningCreate
	conflict []sql.ConflictOption
}

// Save creates the IncidentLearning entities in the database.
func (_c *IncidentLearningCreateBulk) Save(ctx context.Context) ([]*IncidentLearning, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IncidentLearning, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentLearningMutation)
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
func (_c *IncidentLearningCreateBulk) SaveX(ctx context.Context) []*IncidentLearning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentLearningCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentLearningCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IncidentLearning.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IncidentLearningUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *IncidentLearningCreateBulk) OnConflict(opts ...sql.ConflictOption) *IncidentLearningUpsertBulk {
	_c.conflict = opts
	return &IncidentLearningUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IncidentLearning.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IncidentLearningCreateBulk) OnConflictColumns(columns ...string) *IncidentLearningUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IncidentLearningUpsertBulk{
		create: _c,
	}
}

// IncidentLearningUpsertBulk is the builder for "upsert"-ing
// a bulk of IncidentLearning nodes.
type IncidentLearningUpsertBulk struct {
	create *IncidentLearningCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IncidentLearning.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(incidentlearning.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IncidentLearningUpsertBulk) UpdateNewValues() *IncidentLearningUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(incidentlearning.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IncidentLearning.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IncidentLearningUpsertBulk) Ignore() *IncidentLearningUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IncidentLearningUpsertBulk) DoNothing() *IncidentLearningUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IncidentLearningCreateBulk.OnConflict
// documentation for more info.
func (u *IncidentLearningUpsertBulk) Update(set func(*IncidentLearningUpsert)) *IncidentLearningUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IncidentLearningUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *IncidentLearningUpsertBulk) SetWorkspaceID(v string) *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *IncidentLearningUpsertBulk) UpdateWorkspaceID() *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetIncidentID sets the "incident_id" field.
func (u *IncidentLearningUpsertBulk) SetIncidentID(v string) *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetIncidentID(v)
	})
}

// UpdateIncidentID sets the "incident_id" field to the value that was provided on create.
func (u *IncidentLearningUpsertBulk) UpdateIncidentID() *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateIncidentID()
	})
}

// SetSummary sets the "summary" field.
func (u *IncidentLearningUpsertBulk) SetSummary(v string) *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *IncidentLearningUpsertBulk) UpdateSummary() *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateSummary()
	})
}

// SetLoggedBy sets the "logged_by" field.
func (u *IncidentLearningUpsertBulk) SetLoggedBy(v string) *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetLoggedBy(v)
	})
}

// UpdateLoggedBy sets the "logged_by" field to the value that was provided on create.
func (u *IncidentLearningUpsertBulk) UpdateLoggedBy() *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateLoggedBy()
	})
}

// ClearLoggedBy clears the value of the "logged_by" field.
func (u *IncidentLearningUpsertBulk) ClearLoggedBy() *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.ClearLoggedBy()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *IncidentLearningUpsertBulk) SetLastEventID(v string) *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *IncidentLearningUpsertBulk) UpdateLastEventID() *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *IncidentLearningUpsertBulk) SetCreatedAt(v time.Time) *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *IncidentLearningUpsertBulk) UpdateCreatedAt() *IncidentLearningUpsertBulk {
	return u.Update(func(s *IncidentLearningUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *IncidentLearningUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IncidentLearningCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IncidentLearningCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IncidentLearningUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
