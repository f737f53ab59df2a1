// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/predicate"
	"github.com/missionloop/groundcontrol/ent/scorecard"
	"github.com/missionloop/groundcontrol/pkg/models"
)

// ScorecardUpdate is the builder for updating Scorecard entities.
type ScorecardUpdate struct {
	config
	hooks    []Hook
	mutation *ScorecardMutation
}

// Where appends a list predicates to the ScorecardUpdate builder.
func (_u *ScorecardUpdate) Where(ps ...predicate.Scorecard) *ScorecardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ScorecardUpdate) SetWorkspaceID(v string) *ScorecardUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ScorecardUpdate) SetNillableWorkspaceID(v *string) *ScorecardUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ScorecardUpdate) SetRunID(v string) *ScorecardUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ScorecardUpdate) SetNillableRunID(v *string) *ScorecardUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ScorecardUpdate) ClearRunID() *ScorecardUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ScorecardUpdate) SetSubject(v string) *ScorecardUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ScorecardUpdate) SetNillableSubject(v *string) *ScorecardUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ScorecardUpdate) ClearSubject() *ScorecardUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *ScorecardUpdate) SetMetrics(v []models.ScoreMetric) *ScorecardUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// AppendMetrics appends value to the "metrics" field.
func (_u *ScorecardUpdate) AppendMetrics(v []models.ScoreMetric) *ScorecardUpdate {
	_u.mutation.AppendMetrics(v)
	return _u
}

// SetMetricsHash sets the "metrics_hash" field.
func (_u *ScorecardUpdate) SetMetricsHash(v string) *ScorecardUpdate {
	_u.mutation.SetMetricsHash(v)
	return _u
}

// SetNillableMetricsHash sets the "metrics_hash" field if the given value is not nil.
func (_u *ScorecardUpdate) SetNillableMetricsHash(v *string) *ScorecardUpdate {
	if v != nil {
		_u.SetMetricsHash(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ScorecardUpdate) SetScore(v float64) *ScorecardUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScorecardUpdate) SetNillableScore(v *float64) *ScorecardUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScorecardUpdate) AddScore(v float64) *ScorecardUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ScorecardUpdate) SetDecision(v scorecard.Decision) *ScorecardUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ScorecardUpdate) SetNillableDecision(v *scorecard.Decision) *ScorecardUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *ScorecardUpdate) SetCorrelationID(v string) *ScorecardUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *ScorecardUpdate) SetNillableCorrelationID(v *string) *ScorecardUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *ScorecardUpdate) SetLastEventID(v string) *ScorecardUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *ScorecardUpdate) SetNillableLastEventID(v *string) *ScorecardUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ScorecardUpdate) SetCreatedAt(v time.Time) *ScorecardUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ScorecardUpdate) SetNillableCreatedAt(v *time.Time) *ScorecardUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScorecardUpdate) SetUpdatedAt(v time.Time) *ScorecardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScorecardMutation object of the builder.
func (_u *ScorecardUpdate) Mutation() *ScorecardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScorecardUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScorecardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScorecardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScorecardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScorecardUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scorecard.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScorecardUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := scorecard.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "Scorecard.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *ScorecardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scorecard.Table, scorecard.Columns, sqlgraph.NewFieldSpec(scorecard.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(scorecard.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(scorecard.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(scorecard.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(scorecard.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(scorecard.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(scorecard.FieldMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scorecard.FieldMetrics, value)
		})
	}
	if value, ok := _u.mutation.MetricsHash(); ok {
		_spec.SetField(scorecard.FieldMetricsHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scorecard.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scorecard.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(scorecard.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(scorecard.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(scorecard.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(scorecard.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scorecard.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scorecard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScorecardUpdateOne is the builder for updating a single Scorecard entity.
type ScorecardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScorecardMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ScorecardUpdateOne) SetWorkspaceID(v string) *ScorecardUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ScorecardUpdateOne) SetNillableWorkspaceID(v *string) *ScorecardUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ScorecardUpdateOne) SetRunID(v string) *ScorecardUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ScorecardUpdateOne) SetNillableRunID(v *string) *ScorecardUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ScorecardUpdateOne) ClearRunID() *ScorecardUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ScorecardUpdateOne) SetSubject(v string) *ScorecardUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ScorecardUpdateOne) SetNillableSubject(v *string) *ScorecardUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ScorecardUpdateOne) ClearSubject() *ScorecardUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *ScorecardUpdateOne) SetMetrics(v []models.ScoreMetric) *ScorecardUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// AppendMetrics appends value to the "metrics" field.
func (_u *ScorecardUpdateOne) AppendMetrics(v []models.ScoreMetric) *ScorecardUpdateOne {
	_u.mutation.AppendMetrics(v)
	return _u
}

// SetMetricsHash sets the "metrics_hash" field.
func (_u *ScorecardUpdateOne) SetMetricsHash(v string) *ScorecardUpdateOne {
	_u.mutation.SetMetricsHash(v)
	return _u
}

// SetNillableMetricsHash sets the "metrics_hash" field if the given value is not nil.
func (_u *ScorecardUpdateOne) SetNillableMetricsHash(v *string) *ScorecardUpdateOne {
	if v != nil {
		_u.SetMetricsHash(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ScorecardUpdateOne) SetScore(v float64) *ScorecardUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScorecardUpdateOne) SetNillableScore(v *float64) *ScorecardUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScorecardUpdateOne) AddScore(v float64) *ScorecardUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ScorecardUpdateOne) SetDecision(v scorecard.Decision) *ScorecardUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ScorecardUpdateOne) SetNillableDecision(v *scorecard.Decision) *ScorecardUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *ScorecardUpdateOne) SetCorrelationID(v string) *ScorecardUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *ScorecardUpdateOne) SetNillableCorrelationID(v *string) *ScorecardUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *ScorecardUpdateOne) SetLastEventID(v string) *ScorecardUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *ScorecardUpdateOne) SetNillableLastEventID(v *string) *ScorecardUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ScorecardUpdateOne) SetCreatedAt(v time.Time) *ScorecardUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ScorecardUpdateOne) SetNillableCreatedAt(v *time.Time) *ScorecardUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScorecardUpdateOne) SetUpdatedAt(v time.Time) *ScorecardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScorecardMutation object of the builder.
func (_u *ScorecardUpdateOne) Mutation() *ScorecardMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScorecardUpdate builder.
func (_u *ScorecardUpdateOne) Where(ps ...predicate.Scorecard) *ScorecardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScorecardUpdateOne) Select(field string, fields ...string) *ScorecardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Scorecard entity.
func (_u *ScorecardUpdateOne) Save(ctx context.Context) (*Scorecard, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScorecardUpdateOne) SaveX(ctx context.Context) *Scorecard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScorecardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScorecardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScorecardUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scorecard.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScorecardUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := scorecard.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "Scorecard.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *ScorecardUpdateOne) sqlSave(ctx context.Context) (_node *Scorecard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scorecard.Table, scorecard.Columns, sqlgraph.NewFieldSpec(scorecard.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Scorecard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scorecard.FieldID)
		for _, f := range fields {
			if !scorecard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scorecard.FieldID {
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
		_spec.SetField(scorecard.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(scorecard.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(scorecard.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(scorecard.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(scorecard.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(scorecard.FieldMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scorecard.FieldMetrics, value)
		})
	}
	if value, ok := _u.mutation.MetricsHash(); ok {
		_spec.SetField(scorecard.FieldMetricsHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scorecard.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scorecard.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(scorecard.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(scorecard.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(scorecard.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(scorecard.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scorecard.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Scorecard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scorecard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
