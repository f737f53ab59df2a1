// Package eventlog implements the append-only, hash-chained event store and
// its audit verifier. Appends run inside the caller's transaction: the
// per-stream head row is locked FOR UPDATE, which makes sequence numbers
// dense and serializes the hash chain without table-wide locks.
package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/pkg/canonical"
	"github.com/missionloop/groundcontrol/pkg/ids"
)

// ExecQuerier is the raw SQL surface Append needs inside a transaction.
// *sql.DB, *sql.Tx, *ent.Client and *ent.Tx (execquery feature) all satisfy it.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// notifyLimit is PostgreSQL's NOTIFY payload ceiling with headroom; larger
// envelopes are replaced by an id-only wakeup and re-read from the table.
const notifyLimit = 7900

// Store appends to and reads from the event log.
type Store struct {
	client *ent.Client
}

// NewStore returns a Store reading through the given Ent client. Writes go
// through the ExecQuerier handed to Append so they join the caller's
// transaction.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Append assigns identity, sequence, and chain hashes to the draft, inserts
// the event row, advances the stream head, and queues pg_notify wakeups —
// all on tx. Nothing is visible to readers until the caller commits (NOTIFY
// is transactional and held until COMMIT).
//
// A unique violation on the idempotency index surfaces as
// ErrIdempotencyConflict; the transaction is poisoned at that point and the
// caller must roll back before re-probing.
func (s *Store) Append(ctx context.Context, tx ExecQuerier, d Draft) (*Envelope, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}

	env, err := s.seal(d)
	if err != nil {
		return nil, err
	}

	lastSeq, lastHash, err := lockStreamHead(ctx, tx, env.StreamType, env.StreamID)
	if err != nil {
		return nil, err
	}

	env.StreamSeq = lastSeq + 1
	env.PrevEventHash = lastHash
	env.EventHash, err = env.ComputeHash()
	if err != nil {
		return nil, fmt.Errorf("failed to compute event hash: %w", err)
	}

	if err := insertEvent(ctx, tx, env); err != nil {
		if isIdempotencyViolation(err) {
			return nil, fmt.Errorf("append %s: %w", env.EventType, ErrIdempotencyConflict)
		}
		return nil, fmt.Errorf("failed to persist event: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE evt_stream_heads SET last_seq = $1, last_event_hash = $2, updated_at = $3
		 WHERE stream_type = $4 AND stream_id = $5`,
		env.StreamSeq, env.EventHash, time.Now().UTC(), env.StreamType, env.StreamID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to advance stream head: %w", err)
	}

	if err := s.notify(ctx, tx, env); err != nil {
		return nil, err
	}

	return env, nil
}

// seal fills defaults, canonicalizes payload documents, and stamps identity
// and recorded_at. Sequence and hashes are assigned later under the head lock.
func (s *Store) seal(d Draft) (*Envelope, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	env := &Envelope{
		EventID:          ids.Event(),
		EventType:        d.EventType,
		EventVersion:     d.EventVersion,
		OccurredAt:       d.OccurredAt.UTC().Truncate(time.Millisecond),
		RecordedAt:       now,
		WorkspaceID:      d.WorkspaceID,
		MissionID:        d.MissionID,
		RoomID:           d.RoomID,
		ThreadID:         d.ThreadID,
		RunID:            d.RunID,
		StepID:           d.StepID,
		ActorType:        d.ActorType,
		ActorID:          d.ActorID,
		ActorPrincipalID: d.ActorPrincipalID,
		Zone:             d.Zone,
		StreamType:       d.StreamType,
		StreamID:         d.StreamID,
		CorrelationID:    d.CorrelationID,
		CausationID:      d.CausationID,
		RedactionLevel:   d.RedactionLevel,
		ContainsSecrets:  d.ContainsSecrets,
		IdempotencyKey:   d.IdempotencyKey,
	}
	if env.EventVersion == 0 {
		env.EventVersion = 1
	}
	if d.OccurredAt.IsZero() {
		env.OccurredAt = now
	}
	if env.Zone == "" {
		env.Zone = ZoneSandbox
	}
	if env.RedactionLevel == "" {
		env.RedactionLevel = RedactionNone
	}
	if env.CorrelationID == "" {
		env.CorrelationID = ids.Correlation()
	}

	// Payloads are stored in their canonical form so the audit verifier can
	// recompute hashes from the table alone.
	var err error
	if env.PolicyContext, err = canonicalOrNil(d.PolicyContext); err != nil {
		return nil, fmt.Errorf("invalid policy_context: %w", err)
	}
	if env.ModelContext, err = canonicalOrNil(d.ModelContext); err != nil {
		return nil, fmt.Errorf("invalid model_context: %w", err)
	}
	if env.Display, err = canonicalOrNil(d.Display); err != nil {
		return nil, fmt.Errorf("invalid display: %w", err)
	}
	if env.Data, err = canonicalOrNil(d.Data); err != nil {
		return nil, fmt.Errorf("invalid data: %w", err)
	}

	return env, nil
}

func validateDraft(d Draft) error {
	switch {
	case d.EventType == "":
		return fmt.Errorf("draft missing event_type")
	case d.WorkspaceID == "":
		return fmt.Errorf("draft missing workspace_id")
	case d.ActorType == "":
		return fmt.Errorf("draft missing actor_type")
	case d.ActorID == "":
		return fmt.Errorf("draft missing actor_id")
	case d.StreamType == "":
		return fmt.Errorf("draft missing stream_type")
	case d.StreamID == "":
		return fmt.Errorf("draft missing stream_id")
	}
	return nil
}

// lockStreamHead initializes the head row if absent, then locks it for the
// remainder of the transaction. Concurrent appenders to one stream queue up
// here; appenders to different streams do not contend.
func lockStreamHead(ctx context.Context, tx ExecQuerier, streamType, streamID string) (int64, string, error) {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO evt_stream_heads (head_id, stream_type, stream_id, last_seq, updated_at)
		 VALUES ($1, $2, $3, 0, $4)
		 ON CONFLICT (stream_type, stream_id) DO NOTHING`,
		ids.Event(), streamType, streamID, time.Now().UTC(),
	)
	if err != nil {
		return 0, "", fmt.Errorf("failed to initialize stream head: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT last_seq, last_event_hash FROM evt_stream_heads
		 WHERE stream_type = $1 AND stream_id = $2 FOR UPDATE`,
		streamType, streamID,
	)
	if err != nil {
		return 0, "", fmt.Errorf("failed to lock stream head: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, "", fmt.Errorf("failed to read stream head: %w", err)
		}
		return 0, "", fmt.Errorf("stream head vanished for %s/%s", streamType, streamID)
	}

	var lastSeq int64
	var lastHash sql.NullString
	if err := rows.Scan(&lastSeq, &lastHash); err != nil {
		return 0, "", fmt.Errorf("failed to scan stream head: %w", err)
	}
	return lastSeq, lastHash.String, rows.Err()
}

func insertEvent(ctx context.Context, tx ExecQuerier, env *Envelope) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO evt_events (
			event_id, event_type, event_version, occurred_at, recorded_at,
			workspace_id, mission_id, room_id, thread_id, run_id, step_id,
			actor_type, actor_id, actor_principal_id, zone,
			stream_type, stream_id, stream_seq, correlation_id, causation_id,
			redaction_level, contains_secrets,
			policy_context, model_context, display, data,
			idempotency_key, prev_event_hash, event_hash
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29
		)`,
		env.EventID, env.EventType, env.EventVersion, env.OccurredAt, env.RecordedAt,
		env.WorkspaceID, nullIfEmpty(env.MissionID), nullIfEmpty(env.RoomID),
		nullIfEmpty(env.ThreadID), nullIfEmpty(env.RunID), nullIfEmpty(env.StepID),
		env.ActorType, env.ActorID, nullIfEmpty(env.ActorPrincipalID), env.Zone,
		env.StreamType, env.StreamID, env.StreamSeq, env.CorrelationID, nullIfEmpty(env.CausationID),
		env.RedactionLevel, env.ContainsSecrets,
		rawOrNil(env.PolicyContext), rawOrNil(env.ModelContext), rawOrNil(env.Display), rawOrNil(env.Data),
		nullIfEmpty(env.IdempotencyKey), nullIfEmpty(env.PrevEventHash), env.EventHash,
	)
	return err
}

// notify queues transactional wakeups on the workspace channel and, for
// room-bound events, the room channel. Oversized payloads degrade to an
// id-only envelope that tells listeners to re-read from the table.
func (s *Store) notify(ctx context.Context, tx ExecQuerier, env *Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal notify payload: %w", err)
	}
	if len(payload) > notifyLimit {
		payload, err = json.Marshal(map[string]any{
			"event_id":     env.EventID,
			"event_type":   env.EventType,
			"workspace_id": env.WorkspaceID,
			"room_id":      env.RoomID,
			"stream_type":  env.StreamType,
			"stream_id":    env.StreamID,
			"stream_seq":   env.StreamSeq,
			"truncated":    true,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal truncated notify payload: %w", err)
		}
	}

	channels := []string{NotifyChannelWorkspace(env.WorkspaceID)}
	if env.RoomID != "" {
		channels = append(channels, NotifyChannelRoom(env.RoomID))
	}
	for _, ch := range channels {
		if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", ch, string(payload)); err != nil {
			return fmt.Errorf("pg_notify failed on %s: %w", ch, err)
		}
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func rawOrNil(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

func canonicalOrNil(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	return canonical.MarshalRaw(raw)
}
