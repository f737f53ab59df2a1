package stream

import (
	"context"
	"fmt"

	"github.com/missionloop/groundcontrol/ent"
	entevent "github.com/missionloop/groundcontrol/ent/event"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// CatchupQuerier reads committed events from one stream, strictly after a
// sequence cursor, in ascending order.
type CatchupQuerier interface {
	Events(ctx context.Context, streamType, streamID string, afterSeq int64, limit int) ([]*eventlog.Envelope, error)
}

// LogSource implements CatchupQuerier directly over the event table.
type LogSource struct {
	db *database.Client
}

// NewLogSource creates a CatchupQuerier backed by the database.
func NewLogSource(db *database.Client) *LogSource {
	return &LogSource{db: db}
}

// Events returns up to limit committed events of the stream with
// stream_seq > afterSeq, ordered ascending.
func (s *LogSource) Events(ctx context.Context, streamType, streamID string, afterSeq int64, limit int) ([]*eventlog.Envelope, error) {
	rows, err := s.db.Event.Query().
		Where(
			entevent.StreamTypeEQ(entevent.StreamType(streamType)),
			entevent.StreamID(streamID),
			entevent.StreamSeqGT(afterSeq),
		).
		Order(ent.Asc(entevent.FieldStreamSeq)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s stream events: %w", streamType, err)
	}

	out := make([]*eventlog.Envelope, len(rows))
	for i, row := range rows {
		out[i] = eventlog.FromEnt(row)
	}
	return out, nil
}
