// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/lesson"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *LessonUpdate) SetWorkspaceID(v string) *LessonUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableWorkspaceID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetScorecardID sets the "scorecard_id" field.
func (_u *LessonUpdate) SetScorecardID(v string) *LessonUpdate {
	_u.mutation.SetScorecardID(v)
	return _u
}

// SetNillableScorecardID sets the "scorecard_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableScorecardID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetScorecardID(*v)
	}
	return _u
}

// ClearScorecardID clears the value of the "scorecard_id" field.
func (_u *LessonUpdate) ClearScorecardID() *LessonUpdate {
	_u.mutation.ClearScorecardID()
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *LessonUpdate) SetIncidentID(v string) *LessonUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableIncidentID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *LessonUpdate) ClearIncidentID() *LessonUpdate {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *LessonUpdate) SetBody(v string) *LessonUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableBody(v *string) *LessonUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *LessonUpdate) ClearBody() *LessonUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *LessonUpdate) SetLastEventID(v string) *LessonUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLastEventID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LessonUpdate) SetCreatedAt(v time.Time) *LessonUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableCreatedAt(v *time.Time) *LessonUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdate) SetUpdatedAt(v time.Time) *LessonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(lesson.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorecardID(); ok {
		_spec.SetField(lesson.FieldScorecardID, field.TypeString, value)
	}
	if _u.mutation.ScorecardIDCleared() {
		_spec.ClearField(lesson.FieldScorecardID, field.TypeString)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(lesson.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(lesson.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(lesson.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(lesson.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(lesson.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *LessonUpdateOne) SetWorkspaceID(v string) *LessonUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableWorkspaceID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetScorecardID sets the "scorecard_id" field.
func (_u *LessonUpdateOne) SetScorecardID(v string) *LessonUpdateOne {
	_u.mutation.SetScorecardID(v)
	return _u
}

// SetNillableScorecardID sets the "scorecard_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableScorecardID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetScorecardID(*v)
	}
	return _u
}

// ClearScorecardID clears the value of the "scorecard_id" field.
func (_u *LessonUpdateOne) ClearScorecardID() *LessonUpdateOne {
	_u.mutation.ClearScorecardID()
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *LessonUpdateOne) SetIncidentID(v string) *LessonUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableIncidentID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *LessonUpdateOne) ClearIncidentID() *LessonUpdateOne {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *LessonUpdateOne) SetBody(v string) *LessonUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableBody(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *LessonUpdateOne) ClearBody() *LessonUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *LessonUpdateOne) SetLastEventID(v string) *LessonUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLastEventID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LessonUpdateOne) SetCreatedAt(v time.Time) *LessonUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableCreatedAt(v *time.Time) *LessonUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdateOne) SetUpdatedAt(v time.Time) *LessonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(lesson.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorecardID(); ok {
		_spec.SetField(lesson.FieldScorecardID, field.TypeString, value)
	}
	if _u.mutation.ScorecardIDCleared() {
		_spec.ClearField(lesson.FieldScorecardID, field.TypeString)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(lesson.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(lesson.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(lesson.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(lesson.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(lesson.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
