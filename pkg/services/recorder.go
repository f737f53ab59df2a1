package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/agentidentity"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/metrics"
	"github.com/missionloop/groundcontrol/pkg/projector"
)

// recorder is the shared append path of the act-recording services: one
// transaction carrying the event append and the projector fold, dead letters
// deposited after commit so a bad reducer never blocks the write.
type recorder struct {
	db      *database.Client
	store   *eventlog.Store
	reg     *projector.Registry
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newRecorder(db *database.Client, store *eventlog.Store, reg *projector.Registry, logger *slog.Logger) *recorder {
	return &recorder{db: db, store: store, reg: reg, logger: logger}
}

// SetMetrics attaches the append counter. Promoted to every service that
// embeds the recorder; a service left without metrics records nothing.
func (r *recorder) SetMetrics(m *metrics.Metrics) {
	r.metrics = m
}

// record appends the draft and folds it in a fresh transaction.
func (r *recorder) record(ctx context.Context, d eventlog.Draft) (*eventlog.Envelope, error) {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	env, failures, err := r.recordIn(ctx, tx, d)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	r.metrics.RecordAppend(env.EventType)
	r.reg.Deposit(ctx, failures)
	return env, nil
}

// recordIn appends and folds on the caller's transaction. The caller commits
// and must hand the returned failures to Deposit afterwards.
func (r *recorder) recordIn(ctx context.Context, tx *ent.Tx, d eventlog.Draft) (*eventlog.Envelope, []projector.Failure, error) {
	env, err := r.store.Append(ctx, tx, d)
	if err != nil {
		return nil, nil, err
	}
	failures, err := r.reg.Fold(ctx, tx, env)
	if err != nil {
		// A storage-level projector failure poisons the transaction, so
		// the write fails as a whole. Shape failures come back as dead
		// letters and do not block the append.
		return nil, nil, err
	}
	return env, failures, nil
}

// Actor is the envelope-level identity of a write: the acting entity plus
// the principal the request authenticated as.
type Actor struct {
	Type        string // user | service | agent
	ID          string
	PrincipalID string
	WorkspaceID string
}

// resolveActor maps a request identity to the envelope actor. Agent
// principals resolve through the agents table so the actor id is the agent
// id, not the principal id.
func (r *recorder) resolveActor(ctx context.Context, identity auth.Identity) (Actor, error) {
	actor := Actor{
		Type:        identity.PrincipalType,
		ID:          identity.PrincipalID,
		PrincipalID: identity.PrincipalID,
		WorkspaceID: identity.WorkspaceID,
	}
	switch identity.PrincipalType {
	case auth.PrincipalUser:
		if identity.OwnerID != "" {
			actor.ID = identity.OwnerID
		}
	case auth.PrincipalAgent:
		row, err := r.db.AgentIdentity.Query().
			Where(
				agentidentity.PrincipalID(identity.PrincipalID),
				agentidentity.WorkspaceID(identity.WorkspaceID),
				agentidentity.RevokedAtIsNil(),
			).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return Actor{}, Reason(ReasonUnknownAgent, "no agent registered for principal")
			}
			return Actor{}, fmt.Errorf("failed to resolve agent: %w", err)
		}
		actor.ID = row.ID
	}
	return actor, nil
}

// occurredOrNow defaults a client-supplied occurred_at to now, refusing
// timestamps from the far past or future (clock skew tolerance).
func occurredOrNow(occurredAt time.Time, skew time.Duration) (time.Time, error) {
	now := time.Now().UTC()
	if occurredAt.IsZero() {
		return now, nil
	}
	occurredAt = occurredAt.UTC()
	if occurredAt.Before(now.Add(-skew)) || occurredAt.After(now.Add(skew)) {
		return time.Time{}, Reason(ReasonMissingField, "occurred_at outside the accepted clock skew window").
			WithDetail("occurred_at", occurredAt.Format(eventlog.TimeLayout))
	}
	return occurredAt, nil
}
