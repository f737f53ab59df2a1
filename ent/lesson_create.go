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
	"github.com/missionloop/groundcontrol/ent/lesson"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *LessonCreate) SetWorkspaceID(v string) *LessonCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetScorecardID sets the "scorecard_id" field.
func (_c *LessonCreate) SetScorecardID(v string) *LessonCreate {
	_c.mutation.SetScorecardID(v)
	return _c
}

// SetNillableScorecardID sets the "scorecard_id" field if the given value is not nil.
func (_c *LessonCreate) SetNillableScorecardID(v *string) *LessonCreate {
	if v != nil {
		_c.SetScorecardID(*v)
	}
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *LessonCreate) SetIncidentID(v string) *LessonCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_c *LessonCreate) SetNillableIncidentID(v *string) *LessonCreate {
	if v != nil {
		_c.SetIncidentID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *LessonCreate) SetBody(v string) *LessonCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *LessonCreate) SetNillableBody(v *string) *LessonCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *LessonCreate) SetLastEventID(v string) *LessonCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonCreate) SetCreatedAt(v time.Time) *LessonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonCreate) SetNillableCreatedAt(v *time.Time) *LessonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonCreate) SetUpdatedAt(v time.Time) *LessonCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonCreate) SetNillableUpdatedAt(v *time.Time) *LessonCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCreate) SetID(v string) *LessonCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lesson.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lesson.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Lesson.workspace_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "Lesson.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lesson.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lesson.updated_at"`)}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
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
			return nil, fmt.Errorf("unexpected Lesson.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(lesson.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ScorecardID(); ok {
		_spec.SetField(lesson.FieldScorecardID, field.TypeString, value)
		_node.ScorecardID = &value
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(lesson.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(lesson.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(lesson.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lesson.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCreate) OnConflict(opts ...sql.ConflictOption) *LessonUpsertOne {
	_c.conflict = opts
	return &LessonUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCreate) OnConflictColumns(columns ...string) *LessonUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonUpsertOne{
		create: _c,
	}
}

type (
	// LessonUpsertOne is the builder for "upsert"-ing
	//  one Lesson node.
	LessonUpsertOne struct {
		create *LessonCreate
	}

	// LessonUpsert is the "OnConflict" setter.
	LessonUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *LessonUpsert) SetWorkspaceID(v string) *LessonUpsert {
	u.Set(lesson.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *LessonUpsert) UpdateWorkspaceID() *LessonUpsert {
	u.SetExcluded(lesson.FieldWorkspaceID)
	return u
}

// SetScorecardID sets the "scorecard_id" field.
func (u *LessonUpsert) SetScorecardID(v string) *LessonUpsert {
	u.Set(lesson.FieldScorecardID, v)
	return u
}

// UpdateScorecardID sets the "scorecard_id" field to the value that was provided on create.
func (u *LessonUpsert) UpdateScorecardID() *LessonUpsert {
	u.SetExcluded(lesson.FieldScorecardID)
	return u
}

// ClearScorecardID clears the value of the "scorecard_id" field.
func (u *LessonUpsert) ClearScorecardID() *LessonUpsert {
	u.SetNull(lesson.FieldScorecardID)
	return u
}

// SetIncidentID sets the "incident_id" field.
func (u *LessonUpsert) SetIncidentID(v string) *LessonUpsert {
	u.Set(lesson.FieldIncidentID, v)
	return u
}

// UpdateIncidentID sets the "incident_id" field to the value that was provided on create.
func (u *LessonUpsert) UpdateIncidentID() *LessonUpsert {
	u.SetExcluded(lesson.FieldIncidentID)
	return u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (u *LessonUpsert) ClearIncidentID() *LessonUpsert {
	u.SetNull(lesson.FieldIncidentID)
	return u
}

// SetTitle sets the "title" field.
func (u *LessonUpsert) SetTitle(v string) *LessonUpsert {
	u.Set(lesson.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsert) UpdateTitle() *LessonUpsert {
	u.SetExcluded(lesson.FieldTitle)
	return u
}

// SetBody sets the "body" field.
func (u *LessonUpsert) SetBody(v string) *LessonUpsert {
	u.Set(lesson.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *LessonUpsert) UpdateBody() *LessonUpsert {
	u.SetExcluded(lesson.FieldBody)
	return u
}

// ClearBody clears the value of the "body" field.
func (u *LessonUpsert) ClearBody() *LessonUpsert {
	u.SetNull(lesson.FieldBody)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *LessonUpsert) SetLastEventID(v string) *LessonUpsert {
	u.Set(lesson.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *LessonUpsert) UpdateLastEventID() *LessonUpsert {
	u.SetExcluded(lesson.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *LessonUpsert) SetCreatedAt(v time.Time) *LessonUpsert {
	u.Set(lesson.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *LessonUpsert) UpdateCreatedAt() *LessonUpsert {
	u.SetExcluded(lesson.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonUpsert) SetUpdatedAt(v time.Time) *LessonUpsert {
	u.Set(lesson.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonUpsert) UpdateUpdatedAt() *LessonUpsert {
	u.SetExcluded(lesson.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lesson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonUpsertOne) UpdateNewValues() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lesson.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonUpsertOne) Ignore() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonUpsertOne) DoNothing() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCreate.OnConflict
// documentation for more info.
func (u *LessonUpsertOne) Update(set func(*LessonUpsert)) *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *LessonUpsertOne) SetWorkspaceID(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateWorkspaceID() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetScorecardID sets the "scorecard_id" field.
func (u *LessonUpsertOne) SetScorecardID(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetScorecardID(v)
	})
}

// UpdateScorecardID sets the "scorecard_id" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateScorecardID() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateScorecardID()
	})
}

// ClearScorecardID clears the value of the "scorecard_id" field.
func (u *LessonUpsertOne) ClearScorecardID() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearScorecardID()
	})
}

// SetIncidentID sets the "incident_id" field.
func (u *LessonUpsertOne) SetIncidentID(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetIncidentID(v)
	})
}

// UpdateIncidentID sets the "incident_id" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateIncidentID() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateIncidentID()
	})
}

// ClearIncidentID clears the value of the "incident_id" field.
func (u *LessonUpsertOne) ClearIncidentID() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearIncidentID()
	})
}

// SetTitle sets the "title" field.
func (u *LessonUpsertOne) SetTitle(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateTitle() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *LessonUpsertOne) SetBody(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateBody() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateBody()
	})
}

// ClearBody clears the value of the "body" field.
func (u *LessonUpsertOne) ClearBody() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearBody()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *LessonUpsertOne) SetLastEventID(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateLastEventID() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *LessonUpsertOne) SetCreatedAt(v time.Time) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateCreatedAt() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonUpsertOne) SetUpdatedAt(v time.Time) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateUpdatedAt() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LessonUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LessonUpsertOne.ID is not supported by MySQL driver. Use LessonUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
	conflict []sql.ConflictOption
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
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
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lesson.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonUpsertBulk {
	_c.conflict = opts
	return &LessonUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCreateBulk) OnConflictColumns(columns ...string) *LessonUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonUpsertBulk{
		create: _c,
	}
}

// LessonUpsertBulk is the builder for "upsert"-ing
// a bulk of Lesson nodes.
type LessonUpsertBulk struct {
	create *LessonCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lesson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonUpsertBulk) UpdateNewValues() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lesson.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonUpsertBulk) Ignore() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonUpsertBulk) DoNothing() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCreateBulk.OnConflict
// documentation for more info.
func (u *LessonUpsertBulk) Update(set func(*LessonUpsert)) *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *LessonUpsertBulk) SetWorkspaceID(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateWorkspaceID() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetScorecardID sets the "scorecard_id" field.
func (u *LessonUpsertBulk) SetScorecardID(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetScorecardID(v)
	})
}

// UpdateScorecardID sets the "scorecard_id" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateScorecardID() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateScorecardID()
	})
}

// ClearScorecardID clears the value of the "scorecard_id" field.
func (u *LessonUpsertBulk) ClearScorecardID() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearScorecardID()
	})
}

// SetIncidentID sets the "incident_id" field.
func (u *LessonUpsertBulk) SetIncidentID(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetIncidentID(v)
	})
}

// UpdateIncidentID sets the "incident_id" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateIncidentID() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateIncidentID()
	})
}

// ClearIncidentID clears the value of the "incident_id" field.
func (u *LessonUpsertBulk) ClearIncidentID() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearIncidentID()
	})
}

// SetTitle sets the "title" field.
func (u *LessonUpsertBulk) SetTitle(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateTitle() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *LessonUpsertBulk) SetBody(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateBody() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateBody()
	})
}

// ClearBody clears the value of the "body" field.
func (u *LessonUpsertBulk) ClearBody() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearBody()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *LessonUpsertBulk) SetLastEventID(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateLastEventID() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *LessonUpsertBulk) SetCreatedAt(v time.Time) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateCreatedAt() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonUpsertBulk) SetUpdatedAt(v time.Time) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateUpdatedAt() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LessonUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
