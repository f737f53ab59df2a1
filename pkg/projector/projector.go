// Package projector derives the proj_* read models from the event log. Each
// reducer subscribes to event types by name; the registry folds committed
// events through every subscriber, and failures land in proj_dead_letters
// instead of blocking the write path.
package projector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/deadletter"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/metrics"
)

// Projector is a single read-model reducer. Apply must be idempotent: the
// same envelope may be folded more than once (rebuilds, dead-letter
// retries), and reducers skip envelopes they have already absorbed.
type Projector interface {
	Name() string
	Events() []string
	Apply(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error
}

// Failure records a reducer that could not apply an envelope.
type Failure struct {
	Projector string
	EventID   string
	Workspace string
	Err       error
}

// Registry dispatches envelopes to subscribed projectors.
type Registry struct {
	db      *database.Client
	store   *eventlog.Store
	byType  map[string][]Projector
	all     []Projector
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewRegistry builds a registry with the full reducer set.
func NewRegistry(db *database.Client, store *eventlog.Store, logger *slog.Logger) *Registry {
	r := &Registry{
		db:     db,
		store:  store,
		byType: make(map[string][]Projector),
		logger: logger,
	}
	for _, p := range []Projector{
		&roomProjector{},
		&runProjector{logger: logger},
		&incidentProjector{},
		&toolCallProjector{},
		&artifactProjector{},
		&scorecardProjector{},
		&approvalProjector{logger: logger},
		&skillProjector{},
	} {
		r.register(p)
	}
	return r
}

// SetMetrics attaches the failure counter. Optional; a nil handle records
// nothing.
func (r *Registry) SetMetrics(m *metrics.Metrics) {
	r.metrics = m
}

func (r *Registry) register(p Projector) {
	r.all = append(r.all, p)
	for _, eventType := range p.Events() {
		r.byType[eventType] = append(r.byType[eventType], p)
	}
}

// Fold applies env through every subscribed projector inside the caller's
// transaction. Shape errors (bad payloads) are collected as failures so the
// surrounding append still commits; storage errors abort the fold because
// the transaction is poisoned anyway.
func (r *Registry) Fold(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) ([]Failure, error) {
	var failures []Failure
	for _, p := range r.byType[env.EventType] {
		if err := p.Apply(ctx, tx, env); err != nil {
			var shapeErr *payloadError
			if errors.As(err, &shapeErr) {
				failures = append(failures, Failure{
					Projector: p.Name(),
					EventID:   env.EventID,
					Workspace: env.WorkspaceID,
					Err:       err,
				})
				continue
			}
			return nil, fmt.Errorf("projector %s failed on %s: %w", p.Name(), env.EventID, err)
		}
	}
	return failures, nil
}

// Deposit records fold failures as dead letters. Called after the event's
// transaction commits, in its own transaction per row.
func (r *Registry) Deposit(ctx context.Context, failures []Failure) {
	for _, f := range failures {
		r.logger.Warn("projection dead-lettered",
			slog.String("projector", f.Projector),
			slog.String("event_id", f.EventID),
			slog.String("error", f.Err.Error()))
		r.metrics.RecordProjectorFailure(f.Projector)
		if err := r.db.DeadLetter.Create().
			SetID(ids.DeadLetter()).
			SetWorkspaceID(f.Workspace).
			SetEventID(f.EventID).
			SetProjector(f.Projector).
			SetError(f.Err.Error()).
			SetCreatedAt(time.Now().UTC()).
			Exec(ctx); err != nil {
			r.logger.Error("failed to record dead letter",
				slog.String("event_id", f.EventID),
				slog.String("error", err.Error()))
		}
	}
}

// RetryDeadLetters re-applies unresolved dead letters through their
// projectors. Success resolves the row; failure bumps attempts. The event
// log itself is never touched.
func (r *Registry) RetryDeadLetters(ctx context.Context, limit int) (resolved int, err error) {
	rows, err := r.db.DeadLetter.Query().
		Where(deadletter.ResolvedAtIsNil()).
		Order(ent.Asc(deadletter.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list dead letters: %w", err)
	}

	byName := make(map[string]Projector, len(r.all))
	for _, p := range r.all {
		byName[p.Name()] = p
	}

	for _, row := range rows {
		p, ok := byName[row.Projector]
		if !ok {
			// Projector renamed or removed; resolve so the row stops cycling.
			_ = r.db.DeadLetter.UpdateOneID(row.ID).
				SetResolvedAt(time.Now().UTC()).
				Exec(ctx)
			continue
		}
		env, err := r.store.ByID(ctx, row.EventID)
		if err != nil {
			r.logger.Error("dead letter references missing event",
				slog.String("event_id", row.EventID))
			continue
		}
		if err := r.applyOne(ctx, p, env); err != nil {
			_ = r.db.DeadLetter.UpdateOneID(row.ID).
				AddAttempts(1).
				Exec(ctx)
			continue
		}
		if err := r.db.DeadLetter.UpdateOneID(row.ID).
			SetResolvedAt(time.Now().UTC()).
			Exec(ctx); err != nil {
			return resolved, fmt.Errorf("failed to resolve dead letter: %w", err)
		}
		resolved++
	}
	return resolved, nil
}

// UnresolvedCount returns how many dead letters still await retry.
func (r *Registry) UnresolvedCount(ctx context.Context) (int, error) {
	return r.db.DeadLetter.Query().
		Where(deadletter.ResolvedAtIsNil()).
		Count(ctx)
}

func (r *Registry) applyOne(ctx context.Context, p Projector, env *eventlog.Envelope) error {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		return err
	}
	if err := p.Apply(ctx, tx, env); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// rebuildBatch bounds how many events one rebuild transaction replays.
const rebuildBatch = 500

// Rebuild truncates a workspace's projections and replays its events in
// (recorded_at, stream_seq) order. Dead letters are left in place as history.
func (r *Registry) Rebuild(ctx context.Context, workspaceID string) (int, error) {
	if err := r.truncate(ctx, workspaceID); err != nil {
		return 0, err
	}

	applied := 0
	for offset := 0; ; offset += rebuildBatch {
		envs, err := r.store.ByWorkspace(ctx, workspaceID, offset, rebuildBatch)
		if err != nil {
			return applied, fmt.Errorf("failed to page workspace events: %w", err)
		}
		if len(envs) == 0 {
			return applied, nil
		}

		tx, err := r.db.Tx(ctx)
		if err != nil {
			return applied, err
		}
		for _, env := range envs {
			failures, err := r.Fold(ctx, tx, env)
			if err != nil {
				_ = tx.Rollback()
				return applied, err
			}
			// Shape failures were already dead-lettered when the event first
			// arrived; during rebuild they are only logged.
			for _, f := range failures {
				r.logger.Warn("rebuild skipped unprojectable event",
					slog.String("projector", f.Projector),
					slog.String("event_id", f.EventID))
			}
			applied++
		}
		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("failed to commit rebuild batch: %w", err)
		}
	}
}

var projectionTables = []string{
	"proj_rooms", "proj_threads", "proj_runs", "proj_steps",
	"proj_incidents", "proj_incident_learning", "proj_tool_calls",
	"proj_artifacts", "proj_evidence_manifests", "proj_scorecards",
	"proj_lessons", "proj_approvals", "proj_skills_ledger",
}

func (r *Registry) truncate(ctx context.Context, workspaceID string) error {
	for _, table := range projectionTables {
		if _, err := r.db.DB().ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE workspace_id = $1", table),
			workspaceID); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}
