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
	"github.com/missionloop/groundcontrol/ent/scorecard"
	"github.com/missionloop/groundcontrol/pkg/models"
)

// ScorecardCreate is the builder for creating a Scorecard entity.
type ScorecardCreate struct {
	config
	mutation *ScorecardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ScorecardCreate) SetWorkspaceID(v string) *ScorecardCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ScorecardCreate) SetRunID(v string) *ScorecardCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *ScorecardCreate) SetNillableRunID(v *string) *ScorecardCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ScorecardCreate) SetSubject(v string) *ScorecardCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *ScorecardCreate) SetNillableSubject(v *string) *ScorecardCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *ScorecardCreate) SetMetrics(v []models.ScoreMetric) *ScorecardCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetMetricsHash sets the "metrics_hash" field.
func (_c *ScorecardCreate) SetMetricsHash(v string) *ScorecardCreate {
	_c.mutation.SetMetricsHash(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ScorecardCreate) SetScore(v float64) *ScorecardCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ScorecardCreate) SetDecision(v scorecard.Decision) *ScorecardCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *ScorecardCreate) SetCorrelationID(v string) *ScorecardCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *ScorecardCreate) SetLastEventID(v string) *ScorecardCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScorecardCreate) SetCreatedAt(v time.Time) *ScorecardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScorecardCreate) SetNillableCreatedAt(v *time.Time) *ScorecardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScorecardCreate) SetUpdatedAt(v time.Time) *ScorecardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScorecardCreate) SetNillableUpdatedAt(v *time.Time) *ScorecardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScorecardCreate) SetID(v string) *ScorecardCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScorecardMutation object of the builder.
func (_c *ScorecardCreate) Mutation() *ScorecardMutation {
	return _c.mutation
}

// Save creates the Scorecard in the database.
func (_c *ScorecardCreate) Save(ctx context.Context) (*Scorecard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScorecardCreate) SaveX(ctx context.Context) *Scorecard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScorecardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScorecardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScorecardCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scorecard.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scorecard.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScorecardCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Scorecard.workspace_id"`)}
	}
	if _, ok := _c.mutation.Metrics(); !ok {
		return &ValidationError{Name: "metrics", err: errors.New(`ent: missing required field "Scorecard.metrics"`)}
	}
	if _, ok := _c.mutation.MetricsHash(); !ok {
		return &ValidationError{Name: "metrics_hash", err: errors.New(`ent: missing required field "Scorecard.metrics_hash"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Scorecard.score"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "Scorecard.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := scorecard.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "Scorecard.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Scorecard.correlation_id"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "Scorecard.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Scorecard.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Scorecard.updated_at"`)}
	}
	return nil
}

func (_c *ScorecardCreate) sqlSave(ctx context.Context) (*Scorecard, error) {
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
			return nil, fmt.Errorf("unexpected Scorecard.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScorecardCreate) createSpec() (*Scorecard, *sqlgraph.CreateSpec) {
	var (
		_node = &Scorecard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scorecard.Table, sqlgraph.NewFieldSpec(scorecard.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(scorecard.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(scorecard.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(scorecard.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(scorecard.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.MetricsHash(); ok {
		_spec.SetField(scorecard.FieldMetricsHash, field.TypeString, value)
		_node.MetricsHash = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(scorecard.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(scorecard.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(scorecard.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(scorecard.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scorecard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scorecard.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Scorecard.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScorecardUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScorecardCreate) OnConflict(opts ...sql.ConflictOption) *ScorecardUpsertOne {
	_c.conflict = opts
	return &ScorecardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Scorecard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScorecardCreate) OnConflictColumns(columns ...string) *ScorecardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScorecardUpsertOne{
		create: _c,
	}
}

type (
	// ScorecardUpsertOne is the builder for "upsert"-ing
	//  one Scorecard node.
	ScorecardUpsertOne struct {
		create *ScorecardCreate
	}

	// ScorecardUpsert is the "OnConflict" setter.
	ScorecardUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *ScorecardUpsert) SetWorkspaceID(v string) *ScorecardUpsert {
	u.Set(scorecard.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateWorkspaceID() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldWorkspaceID)
	return u
}

// SetRunID sets the "run_id" field.
func (u *ScorecardUpsert) SetRunID(v string) *ScorecardUpsert {
	u.Set(scorecard.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateRunID() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldRunID)
	return u
}

// ClearRunID clears the value of the "run_id" field.
func (u *ScorecardUpsert) ClearRunID() *ScorecardUpsert {
	u.SetNull(scorecard.FieldRunID)
	return u
}

// SetSubject sets the "subject" field.
func (u *ScorecardUpsert) SetSubject(v string) *ScorecardUpsert {
	u.Set(scorecard.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateSubject() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldSubject)
	return u
}

// ClearSubject clears the value of the "subject" field.
func (u *ScorecardUpsert) ClearSubject() *ScorecardUpsert {
	u.SetNull(scorecard.FieldSubject)
	return u
}

// SetMetrics sets the "metrics" field.
func (u *ScorecardUpsert) SetMetrics(v []models.ScoreMetric) *ScorecardUpsert {
	u.Set(scorecard.FieldMetrics, v)
	return u
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateMetrics() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldMetrics)
	return u
}

// SetMetricsHash sets the "metrics_hash" field.
func (u *ScorecardUpsert) SetMetricsHash(v string) *ScorecardUpsert {
	u.Set(scorecard.FieldMetricsHash, v)
	return u
}

// UpdateMetricsHash sets the "metrics_hash" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateMetricsHash() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldMetricsHash)
	return u
}

// SetScore sets the "score" field.
func (u *ScorecardUpsert) SetScore(v float64) *ScorecardUpsert {
	u.Set(scorecard.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateScore() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *ScorecardUpsert) AddScore(v float64) *ScorecardUpsert {
	u.Add(scorecard.FieldScore, v)
	return u
}

// SetDecision sets the "decision" field.
func (u *ScorecardUpsert) SetDecision(v scorecard.Decision) *ScorecardUpsert {
	u.Set(scorecard.FieldDecision, v)
	return u
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateDecision() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldDecision)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ScorecardUpsert) SetCorrelationID(v string) *ScorecardUpsert {
	u.Set(scorecard.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateCorrelationID() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldCorrelationID)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *ScorecardUpsert) SetLastEventID(v string) *ScorecardUpsert {
	u.Set(scorecard.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateLastEventID() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ScorecardUpsert) SetCreatedAt(v time.Time) *ScorecardUpsert {
	u.Set(scorecard.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateCreatedAt() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScorecardUpsert) SetUpdatedAt(v time.Time) *ScorecardUpsert {
	u.Set(scorecard.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScorecardUpsert) UpdateUpdatedAt() *ScorecardUpsert {
	u.SetExcluded(scorecard.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Scorecard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scorecard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScorecardUpsertOne) UpdateNewValues() *ScorecardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scorecard.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Scorecard.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScorecardUpsertOne) Ignore() *ScorecardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScorecardUpsertOne) DoNothing() *ScorecardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScorecardCreate.OnConflict
// documentation for more info.
func (u *ScorecardUpsertOne) Update(set func(*ScorecardUpsert)) *ScorecardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScorecardUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ScorecardUpsertOne) SetWorkspaceID(v string) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateWorkspaceID() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *ScorecardUpsertOne) SetRunID(v string) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateRunID() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *ScorecardUpsertOne) ClearRunID() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.ClearRunID()
	})
}

// SetSubject sets the "subject" field.
func (u *ScorecardUpsertOne) SetSubject(v string) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateSubject() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *ScorecardUpsertOne) ClearSubject() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.ClearSubject()
	})
}

// SetMetrics sets the "metrics" field.
func (u *ScorecardUpsertOne) SetMetrics(v []models.ScoreMetric) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateMetrics() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateMetrics()
	})
}

// SetMetricsHash sets the "metrics_hash" field.
func (u *ScorecardUpsertOne) SetMetricsHash(v string) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetMetricsHash(v)
	})
}

// UpdateMetricsHash sets the "metrics_hash" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateMetricsHash() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateMetricsHash()
	})
}

// SetScore sets the "score" field.
func (u *ScorecardUpsertOne) SetScore(v float64) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ScorecardUpsertOne) AddScore(v float64) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateScore() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateScore()
	})
}

// SetDecision sets the "decision" field.
func (u *ScorecardUpsertOne) SetDecision(v scorecard.Decision) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateDecision() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateDecision()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ScorecardUpsertOne) SetCorrelationID(v string) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateCorrelationID() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ScorecardUpsertOne) SetLastEventID(v string) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateLastEventID() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ScorecardUpsertOne) SetCreatedAt(v time.Time) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateCreatedAt() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScorecardUpsertOne) SetUpdatedAt(v time.Time) *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScorecardUpsertOne) UpdateUpdatedAt() *ScorecardUpsertOne {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScorecardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScorecardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScorecardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScorecardUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScorecardUpsertOne.ID is not supported by MySQL driver. Use ScorecardUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScorecardUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScorecardCreateBulk is the builder for creating many Scorecard entities in bulk.
type ScorecardCreateBulk struct {
	config
	err      error
	builders []*ScorecardCreate
	conflict []sql.ConflictOption
}

// Save creates the Scorecard entities in the database.
func (_c *ScorecardCreateBulk) Save(ctx context.Context) ([]*Scorecard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Scorecard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScorecardMutation)
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
func (_c *ScorecardCreateBulk) SaveX(ctx context.Context) []*Scorecard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScorecardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScorecardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Scorecard.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScorecardUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScorecardCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScorecardUpsertBulk {
	_c.conflict = opts
	return &ScorecardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Scorecard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScorecardCreateBulk) OnConflictColumns(columns ...string) *ScorecardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScorecardUpsertBulk{
		create: _c,
	}
}

// ScorecardUpsertBulk is the builder for "upsert"-ing
// a bulk of Scorecard nodes.
type ScorecardUpsertBulk struct {
	create *ScorecardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Scorecard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scorecard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScorecardUpsertBulk) UpdateNewValues() *ScorecardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scorecard.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Scorecard.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScorecardUpsertBulk) Ignore() *ScorecardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScorecardUpsertBulk) DoNothing() *ScorecardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScorecardCreateBulk.OnConflict
// documentation for more info.
func (u *ScorecardUpsertBulk) Update(set func(*ScorecardUpsert)) *ScorecardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScorecardUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ScorecardUpsertBulk) SetWorkspaceID(v string) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateWorkspaceID() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *ScorecardUpsertBulk) SetRunID(v string) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateRunID() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *ScorecardUpsertBulk) ClearRunID() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.ClearRunID()
	})
}

// SetSubject sets the "subject" field.
func (u *ScorecardUpsertBulk) SetSubject(v string) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateSubject() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *ScorecardUpsertBulk) ClearSubject() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.ClearSubject()
	})
}

// SetMetrics sets the "metrics" field.
func (u *ScorecardUpsertBulk) SetMetrics(v []models.ScoreMetric) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateMetrics() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateMetrics()
	})
}

// SetMetricsHash sets the "metrics_hash" field.
func (u *ScorecardUpsertBulk) SetMetricsHash(v string) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetMetricsHash(v)
	})
}

// UpdateMetricsHash sets the "metrics_hash" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateMetricsHash() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateMetricsHash()
	})
}

// SetScore sets the "score" field.
func (u *ScorecardUpsertBulk) SetScore(v float64) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ScorecardUpsertBulk) AddScore(v float64) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateScore() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateScore()
	})
}

// SetDecision sets the "decision" field.
func (u *ScorecardUpsertBulk) SetDecision(v scorecard.Decision) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateDecision() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateDecision()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ScorecardUpsertBulk) SetCorrelationID(v string) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateCorrelationID() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ScorecardUpsertBulk) SetLastEventID(v string) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateLastEventID() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ScorecardUpsertBulk) SetCreatedAt(v time.Time) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateCreatedAt() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScorecardUpsertBulk) SetUpdatedAt(v time.Time) *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScorecardUpsertBulk) UpdateUpdatedAt() *ScorecardUpsertBulk {
	return u.Update(func(s *ScorecardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScorecardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScorecardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScorecardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScorecardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
