package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

const (
	// sseBatchLimit caps how many events one poll emits before flushing.
	sseBatchLimit = 100

	// ssePollInterval is the idle sleep between polls. NOTIFY wakeups cut
	// it short, so under live traffic delivery latency is one query, not
	// one interval.
	ssePollInterval = time.Second

	// sseHeartbeatEvery is how long a tail may stay silent before a
	// comment frame goes out to keep intermediaries from reaping it.
	sseHeartbeatEvery = 15 * time.Second
)

// Tailer serves the server-sent-events tail of a room stream. Each
// subscription is an ordered, exactly-once walk of committed rows: the
// cursor only moves forward past events actually written to the client,
// so a resumed tail picks up exactly where the last one ended.
type Tailer struct {
	source       CatchupQuerier
	manager      *ConnectionManager
	logger       *slog.Logger
	batchLimit   int
	pollInterval time.Duration
}

// NewTailer creates a Tailer. The manager provides NOTIFY wakeups; a nil
// manager degrades to pure interval polling.
func NewTailer(source CatchupQuerier, manager *ConnectionManager, logger *slog.Logger) *Tailer {
	return &Tailer{
		source:       source,
		manager:      manager,
		logger:       logger,
		batchLimit:   sseBatchLimit,
		pollInterval: ssePollInterval,
	}
}

// SetPolling overrides the idle poll cadence and per-poll batch size.
func (t *Tailer) SetPolling(interval time.Duration, batchLimit int) {
	if interval > 0 {
		t.pollInterval = interval
	}
	if batchLimit > 0 {
		t.batchLimit = batchLimit
	}
}

// TailRoom streams the room's events with stream_seq > fromSeq as SSE
// frames until ctx is cancelled (normally by client disconnect). Each
// event goes out redacted as one "data:" frame.
func (t *Tailer) TailRoom(ctx context.Context, w http.ResponseWriter, roomID string, fromSeq int64) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("response writer does not support streaming")
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache, no-transform")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	var wake <-chan struct{}
	if t.manager != nil {
		ch, cancel, err := t.manager.Watch(eventlog.NotifyChannelRoom(roomID))
		if err != nil {
			t.logger.Warn("stream wakeups unavailable, polling only",
				"room_id", roomID, "error", err)
		} else {
			wake = ch
			defer cancel()
		}
	}

	cursor := fromSeq
	lastWrite := time.Now()
	for {
		events, err := t.source.Events(ctx, eventlog.StreamRoom, roomID, cursor, t.batchLimit)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read room stream: %w", err)
		}

		for _, env := range events {
			payload, err := json.Marshal(Redact(env))
			if err != nil {
				return fmt.Errorf("failed to encode envelope %s: %w", env.EventID, err)
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return nil // client gone
			}
			cursor = env.StreamSeq
		}

		if len(events) > 0 {
			flusher.Flush()
			lastWrite = time.Now()
			if len(events) == t.batchLimit {
				continue // backlog; drain before sleeping
			}
		}

		if time.Since(lastWrite) >= sseHeartbeatEvery {
			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				return nil
			}
			flusher.Flush()
			lastWrite = time.Now()
		}

		// A nil wake channel blocks forever; the interval still fires.
		select {
		case <-ctx.Done():
			return nil
		case <-wake:
		case <-time.After(t.pollInterval):
		}
	}
}
