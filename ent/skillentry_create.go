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
	"github.com/missionloop/groundcontrol/ent/skillentry"
)

// SkillEntryCreate is the builder for creating a SkillEntry entity.
type SkillEntryCreate struct {
	config
	mutation *SkillEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *SkillEntryCreate) SetWorkspaceID(v string) *SkillEntryCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *SkillEntryCreate) SetAgentID(v string) *SkillEntryCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetSkillName sets the "skill_name" field.
func (_c *SkillEntryCreate) SetSkillName(v string) *SkillEntryCreate {
	_c.mutation.SetSkillName(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SkillEntryCreate) SetAttempts(v int64) *SkillEntryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *SkillEntryCreate) SetNillableAttempts(v *int64) *SkillEntryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetSuccesses sets the "successes" field.
func (_c *SkillEntryCreate) SetSuccesses(v int64) *SkillEntryCreate {
	_c.mutation.SetSuccesses(v)
	return _c
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_c *SkillEntryCreate) SetNillableSuccesses(v *int64) *SkillEntryCreate {
	if v != nil {
		_c.SetSuccesses(*v)
	}
	return _c
}

// SetSurvivalScore sets the "survival_score" field.
func (_c *SkillEntryCreate) SetSurvivalScore(v float64) *SkillEntryCreate {
	_c.mutation.SetSurvivalScore(v)
	return _c
}

// SetNillableSurvivalScore sets the "survival_score" field if the given value is not nil.
func (_c *SkillEntryCreate) SetNillableSurvivalScore(v *float64) *SkillEntryCreate {
	if v != nil {
		_c.SetSurvivalScore(*v)
	}
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *SkillEntryCreate) SetLastEventID(v string) *SkillEntryCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillEntryCreate) SetUpdatedAt(v time.Time) *SkillEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillEntryCreate) SetNillableUpdatedAt(v *time.Time) *SkillEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SkillEntryCreate) SetID(v string) *SkillEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SkillEntryMutation object of the builder.
func (_c *SkillEntryCreate) Mutation() *SkillEntryMutation {
	return _c.mutation
}

// Save creates the SkillEntry in the database.
func (_c *SkillEntryCreate) Save(ctx context.Context) (*SkillEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillEntryCreate) SaveX(ctx context.Context) *SkillEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillEntryCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := skillentry.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Successes(); !ok {
		v := skillentry.DefaultSuccesses
		_c.mutation.SetSuccesses(v)
	}
	if _, ok := _c.mutation.SurvivalScore(); !ok {
		v := skillentry.DefaultSurvivalScore
		_c.mutation.SetSurvivalScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skillentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillEntryCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "SkillEntry.workspace_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "SkillEntry.agent_id"`)}
	}
	if _, ok := _c.mutation.SkillName(); !ok {
		return &ValidationError{Name: "skill_name", err: errors.New(`ent: missing required field "SkillEntry.skill_name"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "SkillEntry.attempts"`)}
	}
	if _, ok := _c.mutation.Successes(); !ok {
		return &ValidationError{Name: "successes", err: errors.New(`ent: missing required field "SkillEntry.successes"`)}
	}
	if _, ok := _c.mutation.SurvivalScore(); !ok {
		return &ValidationError{Name: "survival_score", err: errors.New(`ent: missing required field "SkillEntry.survival_score"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "SkillEntry.last_event_id"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SkillEntry.updated_at"`)}
	}
	return nil
}

func (_c *SkillEntryCreate) sqlSave(ctx context.Context) (*SkillEntry, error) {
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
			return nil, fmt.Errorf("unexpected SkillEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillEntryCreate) createSpec() (*SkillEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillentry.Table, sqlgraph.NewFieldSpec(skillentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(skillentry.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(skillentry.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.SkillName(); ok {
		_spec.SetField(skillentry.FieldSkillName, field.TypeString, value)
		_node.SkillName = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(skillentry.FieldAttempts, field.TypeInt64, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Successes(); ok {
		_spec.SetField(skillentry.FieldSuccesses, field.TypeInt64, value)
		_node.Successes = value
	}
	if value, ok := _c.mutation.SurvivalScore(); ok {
		_spec.SetField(skillentry.FieldSurvivalScore, field.TypeFloat64, value)
		_node.SurvivalScore = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(skillentry.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skillentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SkillEntry.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillEntryUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillEntryCreate) OnConflict(opts ...sql.ConflictOption) *SkillEntryUpsertOne {
	_c.conflict = opts
	return &SkillEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SkillEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillEntryCreate) OnConflictColumns(columns ...string) *SkillEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillEntryUpsertOne{
		create: _c,
	}
}

type (
	// SkillEntryUpsertOne is the builder for "upsert"-ing
	//  one SkillEntry node.
	SkillEntryUpsertOne struct {
		create *SkillEntryCreate
	}

	// SkillEntryUpsert is the "OnConflict" setter.
	SkillEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *SkillEntryUpsert) SetWorkspaceID(v string) *SkillEntryUpsert {
	u.Set(skillentry.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *SkillEntryUpsert) UpdateWorkspaceID() *SkillEntryUpsert {
	u.SetExcluded(skillentry.FieldWorkspaceID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *SkillEntryUpsert) SetAgentID(v string) *SkillEntryUpsert {
	u.Set(skillentry.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *SkillEntryUpsert) UpdateAgentID() *SkillEntryUpsert {
	u.SetExcluded(skillentry.FieldAgentID)
	return u
}

// SetSkillName sets the "skill_name" field.
func (u *SkillEntryUpsert) SetSkillName(v string) *SkillEntryUpsert {
	u.Set(skillentry.FieldSkillName, v)
	return u
}

// UpdateSkillName sets the "skill_name" field to the value that was provided on create.
func (u *SkillEntryUpsert) UpdateSkillName() *SkillEntryUpsert {
	u.SetExcluded(skillentry.FieldSkillName)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *SkillEntryUpsert) SetAttempts(v int64) *SkillEntryUpsert {
	u.Set(skillentry.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SkillEntryUpsert) UpdateAttempts() *SkillEntryUpsert {
	u.SetExcluded(skillentry.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *SkillEntryUpsert) AddAttempts(v int64) *SkillEntryUpsert {
	u.Add(skillentry.FieldAttempts, v)
	return u
}

// SetSuccesses sets the "successes" field.
func (u *SkillEntryUpsert) SetSuccesses(v int64) *SkillEntryUpsert {
	u.Set(skillentry.FieldSuccesses, v)
	return u
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *SkillEntryUpsert) UpdateSuccesses() *SkillEntryUpsert {
	u.SetExcluded(skillentry.FieldSuccesses)
	return u
}

// AddSuccesses adds v to the "successes" field.
func (u *SkillEntryUpsert) AddSuccesses(v int64) *SkillEntryUpsert {
	u.Add(skillentry.FieldSuccesses, v)
	return u
}

// SetSurvivalScore sets the "survival_score" field.
func (u *SkillEntryUpsert) SetSurvivalScore(v float64) *SkillEntryUpsert {
	u.Set(skillentry.FieldSurvivalScore, v)
	return u
}

// UpdateSurvivalScore sets the "survival_score" field to the value that was provided on create.
func (u *SkillEntryUpsert) UpdateSurvivalScore() *SkillEntryUpsert {
	u.SetExcluded(skillentry.FieldSurvivalScore)
	return u
}

// AddSurvivalScore adds v to the "survival_score" field.
func (u *SkillEntryUpsert) AddSurvivalScore(v float64) *SkillEntryUpsert {
	u.Add(skillentry.FieldSurvivalScore, v)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *SkillEntryUpsert) SetLastEventID(v string) *SkillEntryUpsert {
	u.Set(skillentry.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *SkillEntryUpsert) UpdateLastEventID() *SkillEntryUpsert {
	u.SetExcluded(skillentry.FieldLastEventID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SkillEntryUpsert) SetUpdatedAt(v time.Time) *SkillEntryUpsert {
	u.Set(skillentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SkillEntryUpsert) UpdateUpdatedAt() *SkillEntryUpsert {
	u.SetExcluded(skillentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SkillEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(skillentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SkillEntryUpsertOne) UpdateNewValues() *SkillEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(skillentry.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SkillEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SkillEntryUpsertOne) Ignore() *SkillEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillEntryUpsertOne) DoNothing() *SkillEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillEntryCreate.OnConflict
// documentation for more info.
func (u *SkillEntryUpsertOne) Update(set func(*SkillEntryUpsert)) *SkillEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *SkillEntryUpsertOne) SetWorkspaceID(v string) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *SkillEntryUpsertOne) UpdateWorkspaceID() *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *SkillEntryUpsertOne) SetAgentID(v string) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *SkillEntryUpsertOne) UpdateAgentID() *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateAgentID()
	})
}

// SetSkillName sets the "skill_name" field.
func (u *SkillEntryUpsertOne) SetSkillName(v string) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetSkillName(v)
	})
}

// UpdateSkillName sets the "skill_name" field to the value that was provided on create.
func (u *SkillEntryUpsertOne) UpdateSkillName() *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateSkillName()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SkillEntryUpsertOne) SetAttempts(v int64) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *SkillEntryUpsertOne) AddAttempts(v int64) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SkillEntryUpsertOne) UpdateAttempts() *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateAttempts()
	})
}

// SetSuccesses sets the "successes" field.
func (u *SkillEntryUpsertOne) SetSuccesses(v int64) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetSuccesses(v)
	})
}

// AddSuccesses adds v to the "successes" field.
func (u *SkillEntryUpsertOne) AddSuccesses(v int64) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.AddSuccesses(v)
	})
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *SkillEntryUpsertOne) UpdateSuccesses() *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateSuccesses()
	})
}

// SetSurvivalScore sets the "survival_score" field.
func (u *SkillEntryUpsertOne) SetSurvivalScore(v float64) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetSurvivalScore(v)
	})
}

// AddSurvivalScore adds v to the "survival_score" field.
func (u *SkillEntryUpsertOne) AddSurvivalScore(v float64) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.AddSurvivalScore(v)
	})
}

// UpdateSurvivalScore sets the "survival_score" field to the value that was provided on create.
func (u *SkillEntryUpsertOne) UpdateSurvivalScore() *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateSurvivalScore()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *SkillEntryUpsertOne) SetLastEventID(v string) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *SkillEntryUpsertOne) UpdateLastEventID() *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateLastEventID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SkillEntryUpsertOne) SetUpdatedAt(v time.Time) *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SkillEntryUpsertOne) UpdateUpdatedAt() *SkillEntryUpsertOne {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SkillEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SkillEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SkillEntryUpsertOne.ID is not supported by MySQL driver. Use SkillEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SkillEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SkillEntryCreateBulk is the builder for creating many SkillEntry entities in bulk.
type SkillEntryCreateBulk struct {
	config
	err      error
	builders []*SkillEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the SkillEntry entities in the database.
func (_c *SkillEntryCreateBulk) Save(ctx context.Context) ([]*SkillEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillEntryMutation)
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
func (_c *SkillEntryCreateBulk) SaveX(ctx context.Context) []*SkillEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SkillEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillEntryUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SkillEntryUpsertBulk {
	_c.conflict = opts
	return &SkillEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SkillEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillEntryCreateBulk) OnConflictColumns(columns ...string) *SkillEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillEntryUpsertBulk{
		create: _c,
	}
}

// SkillEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of SkillEntry nodes.
type SkillEntryUpsertBulk struct {
	create *SkillEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SkillEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(skillentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SkillEntryUpsertBulk) UpdateNewValues() *SkillEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(skillentry.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SkillEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SkillEntryUpsertBulk) Ignore() *SkillEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillEntryUpsertBulk) DoNothing() *SkillEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillEntryCreateBulk.OnConflict
// documentation for more info.
func (u *SkillEntryUpsertBulk) Update(set func(*SkillEntryUpsert)) *SkillEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *SkillEntryUpsertBulk) SetWorkspaceID(v string) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *SkillEntryUpsertBulk) UpdateWorkspaceID() *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *SkillEntryUpsertBulk) SetAgentID(v string) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *SkillEntryUpsertBulk) UpdateAgentID() *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateAgentID()
	})
}

// SetSkillName sets the "skill_name" field.
func (u *SkillEntryUpsertBulk) SetSkillName(v string) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetSkillName(v)
	})
}

// UpdateSkillName sets the "skill_name" field to the value that was provided on create.
func (u *SkillEntryUpsertBulk) UpdateSkillName() *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateSkillName()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SkillEntryUpsertBulk) SetAttempts(v int64) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *SkillEntryUpsertBulk) AddAttempts(v int64) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SkillEntryUpsertBulk) UpdateAttempts() *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateAttempts()
	})
}

// SetSuccesses sets the "successes" field.
func (u *SkillEntryUpsertBulk) SetSuccesses(v int64) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetSuccesses(v)
	})
}

// AddSuccesses adds v to the "successes" field.
func (u *SkillEntryUpsertBulk) AddSuccesses(v int64) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.AddSuccesses(v)
	})
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *SkillEntryUpsertBulk) UpdateSuccesses() *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateSuccesses()
	})
}

// SetSurvivalScore sets the "survival_score" field.
func (u *SkillEntryUpsertBulk) SetSurvivalScore(v float64) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetSurvivalScore(v)
	})
}

// AddSurvivalScore adds v to the "survival_score" field.
func (u *SkillEntryUpsertBulk) AddSurvivalScore(v float64) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.AddSurvivalScore(v)
	})
}

// UpdateSurvivalScore sets the "survival_score" field to the value that was provided on create.
func (u *SkillEntryUpsertBulk) UpdateSurvivalScore() *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateSurvivalScore()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *SkillEntryUpsertBulk) SetLastEventID(v string) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *SkillEntryUpsertBulk) UpdateLastEventID() *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateLastEventID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SkillEntryUpsertBulk) SetUpdatedAt(v time.Time) *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SkillEntryUpsertBulk) UpdateUpdatedAt() *SkillEntryUpsertBulk {
	return u.Update(func(s *SkillEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SkillEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SkillEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
