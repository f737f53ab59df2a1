package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// mockSource implements CatchupQuerier over an in-memory slice.
type mockSource struct {
	mu     sync.Mutex
	events []*eventlog.Envelope
	err    error
}

func (s *mockSource) Events(_ context.Context, streamType, streamID string, afterSeq int64, limit int) ([]*eventlog.Envelope, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*eventlog.Envelope
	for _, e := range s.events {
		if e.StreamType == streamType && e.StreamID == streamID && e.StreamSeq > afterSeq {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StreamSeq < out[j].StreamSeq })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *mockSource) add(events ...*eventlog.Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

func roomEnv(roomID string, seq int64, eventType string) *eventlog.Envelope {
	return &eventlog.Envelope{
		EventID:        fmt.Sprintf("ev_%s_%d", roomID, seq),
		EventType:      eventType,
		EventVersion:   1,
		WorkspaceID:    "ws_stream",
		RoomID:         roomID,
		ActorType:      eventlog.ActorUser,
		ActorID:        "own_1",
		Zone:           eventlog.ZoneSandbox,
		StreamType:     eventlog.StreamRoom,
		StreamID:       roomID,
		StreamSeq:      seq,
		CorrelationID:  "corr_1",
		RedactionLevel: eventlog.RedactionNone,
		Data:           json.RawMessage(`{"message_id":"msg_1"}`),
	}
}

func setupTestManager(t *testing.T, source CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(source, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeMsg(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockSource{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeUnsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, &mockSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "room:rm_1"})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "room:rm_1", msg["channel"])

	require.Eventually(t, func() bool {
		return manager.subscriberCount("room:rm_1") == 1
	}, 2*time.Second, 10*time.Millisecond)

	writeMsg(t, conn, ClientMessage{Action: "unsubscribe", Channel: "room:rm_1"})
	require.Eventually(t, func() bool {
		return manager.subscriberCount("room:rm_1") == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConnectionManager_RejectsUnknownChannel(t *testing.T) {
	_, server := setupTestManager(t, &mockSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.error", msg["type"])
	assert.Contains(t, msg["message"], "unknown channel")

	// Connection survives the rejection.
	writeMsg(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockSource{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	channel := "room:rm_bcast"
	writeMsg(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	writeMsg(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 2
	}, 2*time.Second, 10*time.Millisecond)

	payload, err := json.Marshal(roomEnv("rm_bcast", 1, eventlog.TypeMessageCreated))
	require.NoError(t, err)
	manager.Broadcast(channel, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)
	assert.Equal(t, eventlog.TypeMessageCreated, msg1["event_type"])
	assert.Equal(t, eventlog.TypeMessageCreated, msg2["event_type"])
}

func TestConnectionManager_BroadcastRedactsSecrets(t *testing.T) {
	manager, server := setupTestManager(t, &mockSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "room:rm_secret"
	writeMsg(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	env := roomEnv("rm_secret", 1, eventlog.TypeSecretAccessed)
	env.ContainsSecrets = true
	payload, err := json.Marshal(env)
	require.NoError(t, err)
	manager.Broadcast(channel, payload)

	msg := readJSON(t, conn)
	assert.Equal(t, eventlog.TypeSecretAccessed, msg["event_type"])
	assert.Equal(t, true, msg["contains_secrets"])
	assert.NotContains(t, msg, "data")
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t, &mockSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeMsg(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SubscribeCatchesUp(t *testing.T) {
	source := &mockSource{}
	source.add(
		roomEnv("rm_hist", 1, eventlog.TypeRoomCreated),
		roomEnv("rm_hist", 2, eventlog.TypeMessageCreated),
		roomEnv("rm_hist", 3, eventlog.TypeMessageCreated),
	)

	_, server := setupTestManager(t, source)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	// Resuming from seq 1 replays 2 and 3 in order after confirmation.
	fromSeq := int64(1)
	writeMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "room:rm_hist", LastEventID: &fromSeq})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])

	for want := int64(2); want <= 3; want++ {
		msg = readJSON(t, conn)
		assert.Equal(t, float64(want), msg["stream_seq"])
	}
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	source := &mockSource{}
	for i := 1; i <= catchupLimit+5; i++ {
		source.add(roomEnv("rm_big", int64(i), eventlog.TypeMessageCreated))
	}

	_, server := setupTestManager(t, source)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "room:rm_big"})
	readJSON(t, conn) // subscription.confirmed

	var lastSeq float64
	for i := 0; i < catchupLimit; i++ {
		msg := readJSON(t, conn)
		lastSeq = msg["stream_seq"].(float64)
	}
	assert.Equal(t, float64(catchupLimit), lastSeq)

	msg := readJSON(t, conn)
	assert.Equal(t, "catchup.overflow", msg["type"])
	assert.Equal(t, true, msg["has_more"])
	assert.Equal(t, float64(catchupLimit), msg["next_seq"])
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// A failing catchup query is logged, not fatal to the connection.
	_, server := setupTestManager(t, &mockSource{err: fmt.Errorf("database unreachable")})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "room:rm_err"})
	readJSON(t, conn) // subscription.confirmed

	writeMsg(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t, &mockSource{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	writeMsg(t, conn1, ClientMessage{Action: "subscribe", Channel: "room:rm_a"})
	readJSON(t, conn1) // subscription.confirmed
	writeMsg(t, conn2, ClientMessage{Action: "subscribe", Channel: "room:rm_b"})
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount("room:rm_a") == 1 && manager.subscriberCount("room:rm_b") == 1
	}, 2*time.Second, 10*time.Millisecond)

	payload, err := json.Marshal(roomEnv("rm_a", 1, eventlog.TypeMessageCreated))
	require.NoError(t, err)
	manager.Broadcast("room:rm_a", payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "rm_a", msg["room_id"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err = conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive room:rm_a broadcast")
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t, &mockSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeMsg(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	writeMsg(t, conn, ClientMessage{Action: "unsubscribe", Channel: ""})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])

	seq := int64(0)
	writeMsg(t, conn, ClientMessage{Action: "catchup", Channel: "", LastEventID: &seq})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])

	writeMsg(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_Watch(t *testing.T) {
	manager := NewConnectionManager(&mockSource{}, time.Second)

	wake, cancel, err := manager.Watch("room:rm_watch")
	require.NoError(t, err)

	payload, err := json.Marshal(roomEnv("rm_watch", 1, eventlog.TypeMessageCreated))
	require.NoError(t, err)
	manager.Broadcast("room:rm_watch", payload)

	select {
	case <-wake:
	case <-time.After(time.Second):
		t.Fatal("expected wakeup after broadcast")
	}

	// Repeated broadcasts collapse into one pending signal, never block.
	manager.Broadcast("room:rm_watch", payload)
	manager.Broadcast("room:rm_watch", payload)
	<-wake

	cancel()
	manager.channelMu.RLock()
	_, exists := manager.channels["room:rm_watch"]
	manager.channelMu.RUnlock()
	assert.False(t, exists, "channel state should be released after last watcher cancels")
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t, &mockSource{})

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: "room:rm_gone"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount("room:rm_gone") == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(roomEnv("rm_gone", 1, eventlog.TypeMessageCreated))
	assert.NotPanics(t, func() { manager.Broadcast("room:rm_gone", payload) })
}
