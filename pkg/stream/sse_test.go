package stream

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// tailServer serves one room's tail and returns a channel of decoded
// data-frame envelopes. Reading happens on a goroutine so tests assert
// with timeouts instead of blocking.
func tailServer(t *testing.T, tailer *Tailer, roomID string, fromSeq int64) (<-chan map[string]any, *http.Response) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := tailer.TailRoom(r.Context(), w, roomID, fromSeq); err != nil {
			t.Logf("tail error: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	frames := make(chan map[string]any, 64)
	go func() {
		defer close(frames)
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue // blank separators, ": ping" comments
			}
			var msg map[string]any
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &msg); err != nil {
				continue
			}
			frames <- msg
		}
	}()
	return frames, resp
}

func nextFrame(t *testing.T, frames <-chan map[string]any, within time.Duration) map[string]any {
	t.Helper()
	select {
	case msg, ok := <-frames:
		require.True(t, ok, "stream closed before expected frame")
		return msg
	case <-time.After(within):
		t.Fatal("timed out waiting for SSE frame")
		return nil
	}
}

func TestTailer_Headers(t *testing.T) {
	tailer := NewTailer(&mockSource{}, nil, slog.Default())
	_, resp := tailServer(t, tailer, "rm_hdr", 0)

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache, no-transform", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "no", resp.Header.Get("X-Accel-Buffering"))
}

func TestTailer_EmitsBacklogInOrder(t *testing.T) {
	source := &mockSource{}
	source.add(
		roomEnv("rm_sse", 1, eventlog.TypeRoomCreated),
		roomEnv("rm_sse", 2, eventlog.TypeMessageCreated),
		roomEnv("rm_sse", 3, eventlog.TypeMessageCreated),
	)

	tailer := NewTailer(source, nil, slog.Default())
	frames, _ := tailServer(t, tailer, "rm_sse", 0)

	for want := 1; want <= 3; want++ {
		msg := nextFrame(t, frames, 3*time.Second)
		assert.Equal(t, float64(want), msg["stream_seq"])
	}
}

func TestTailer_ResumesFromCursor(t *testing.T) {
	source := &mockSource{}
	source.add(
		roomEnv("rm_cur", 1, eventlog.TypeRoomCreated),
		roomEnv("rm_cur", 2, eventlog.TypeMessageCreated),
	)

	tailer := NewTailer(source, nil, slog.Default())
	frames, _ := tailServer(t, tailer, "rm_cur", 1)

	msg := nextFrame(t, frames, 3*time.Second)
	assert.Equal(t, float64(2), msg["stream_seq"])
}

func TestTailer_PicksUpLiveAppends(t *testing.T) {
	source := &mockSource{}
	source.add(roomEnv("rm_live", 1, eventlog.TypeRoomCreated))

	// The manager provides wakeups; a broadcast after the append cuts the
	// poll interval short.
	manager := NewConnectionManager(source, time.Second)
	tailer := NewTailer(source, manager, slog.Default())
	frames, _ := tailServer(t, tailer, "rm_live", 0)

	msg := nextFrame(t, frames, 3*time.Second)
	assert.Equal(t, float64(1), msg["stream_seq"])

	env := roomEnv("rm_live", 2, eventlog.TypeMessageCreated)
	source.add(env)
	payload, err := json.Marshal(env)
	require.NoError(t, err)
	manager.Broadcast(eventlog.NotifyChannelRoom("rm_live"), payload)

	msg = nextFrame(t, frames, 3*time.Second)
	assert.Equal(t, float64(2), msg["stream_seq"])
	assert.Equal(t, eventlog.TypeMessageCreated, msg["event_type"])
}

func TestTailer_RedactsBeforeEmission(t *testing.T) {
	source := &mockSource{}
	env := roomEnv("rm_red", 1, eventlog.TypeMessageCreated)
	env.RedactionLevel = eventlog.RedactionFull
	source.add(env)

	tailer := NewTailer(source, nil, slog.Default())
	frames, _ := tailServer(t, tailer, "rm_red", 0)

	msg := nextFrame(t, frames, 3*time.Second)
	assert.Equal(t, float64(1), msg["stream_seq"])
	assert.Equal(t, eventlog.RedactionFull, msg["redaction_level"])
	assert.NotContains(t, msg, "data")
}

func TestTailer_DrainsLargeBacklog(t *testing.T) {
	source := &mockSource{}
	total := sseBatchLimit + 20
	for i := 1; i <= total; i++ {
		source.add(roomEnv("rm_bulk", int64(i), eventlog.TypeMessageCreated))
	}

	tailer := NewTailer(source, nil, slog.Default())
	frames, _ := tailServer(t, tailer, "rm_bulk", 0)

	// The full backlog drains without waiting out a poll interval per batch.
	seen := make(map[string]bool, total)
	for i := 0; i < total; i++ {
		msg := nextFrame(t, frames, 5*time.Second)
		seen[strconv.Itoa(int(msg["stream_seq"].(float64)))] = true
	}
	assert.Len(t, seen, total, "each event appears exactly once")
}
