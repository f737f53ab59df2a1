package eventlog

import (
	"context"
	"fmt"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/event"
)

// ByID fetches a single event.
func (s *Store) ByID(ctx context.Context, eventID string) (*Envelope, error) {
	row, err := s.client.Event.Query().
		Where(event.ID(eventID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load event %s: %w", eventID, err)
	}
	return FromEnt(row), nil
}

// Range reads events of one stream with stream_seq > fromSeq, ascending,
// at most limit rows. This is the read path shared by the SSE tailer, the
// WebSocket catchup query, and the room history endpoint.
func (s *Store) Range(ctx context.Context, streamType, streamID string, fromSeq int64, limit int) ([]*Envelope, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.StreamTypeEQ(event.StreamType(streamType)),
			event.StreamID(streamID),
			event.StreamSeqGT(fromSeq),
		).
		Order(ent.Asc(event.FieldStreamSeq)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream %s/%s: %w", streamType, streamID, err)
	}

	envelopes := make([]*Envelope, len(rows))
	for i, row := range rows {
		envelopes[i] = FromEnt(row)
	}
	return envelopes, nil
}

// ByWorkspace reads a workspace's events in (recorded_at, stream_seq) order,
// the replay order projection rebuilds use.
func (s *Store) ByWorkspace(ctx context.Context, workspaceID string, offset, limit int) ([]*Envelope, error) {
	rows, err := s.client.Event.Query().
		Where(event.WorkspaceID(workspaceID)).
		Order(ent.Asc(event.FieldRecordedAt), ent.Asc(event.FieldStreamSeq)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace events for %s: %w", workspaceID, err)
	}

	envelopes := make([]*Envelope, len(rows))
	for i, row := range rows {
		envelopes[i] = FromEnt(row)
	}
	return envelopes, nil
}

// FindIdempotent returns the committed event bearing the given idempotency
// key, or ErrNotFound. Used by the intake pre-probe and by the post-rollback
// probe after a unique violation.
func (s *Store) FindIdempotent(ctx context.Context, workspaceID, eventType, key string) (*Envelope, error) {
	row, err := s.client.Event.Query().
		Where(
			event.WorkspaceID(workspaceID),
			event.EventType(eventType),
			event.IdempotencyKey(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to probe idempotency key: %w", err)
	}
	return FromEnt(row), nil
}
