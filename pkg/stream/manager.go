package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// catchupLimit caps one catchup response. Clients further behind get a
// catchup.overflow message carrying the seq to resume from.
const catchupLimit = 200

// listenTimeout bounds how long establishing a PG LISTEN may block a
// subscriber. A stalled LISTEN connection must not wedge client read loops.
const listenTimeout = 10 * time.Second

// ConnectionManager fans committed events out to the WebSocket clients and
// SSE watchers of this process. One instance per process; cross-process
// distribution happens through the NotifyListener feeding Broadcast.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Per-PG-channel fan-out state. A channel entry exists while it has at
	// least one WebSocket subscriber or SSE watcher; its lifetime drives
	// LISTEN/UNLISTEN on the shared listener connection.
	channels  map[string]*channelState
	channelMu sync.RWMutex

	source CatchupQuerier

	// listener is set after construction, once the LISTEN connection exists.
	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// channelState tracks who gets woken when a channel fires.
type channelState struct {
	conns    map[string]bool            // WebSocket connection ids
	watchers map[chan struct{}]struct{} // SSE wakeup channels, 1-buffered
}

func (st *channelState) empty() bool {
	return len(st.conns) == 0 && len(st.watchers) == 0
}

// Connection is a single WebSocket client.
//
// subscriptions is accessed without a lock: every read and write happens on
// the goroutine that owns the connection (HandleConnection's read loop and
// its deferred cleanup). Mutating a Connection from elsewhere would require
// adding a mutex here.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a manager reading catchup history from source.
func NewConnectionManager(source CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]*channelState),
		source:       source,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN. Called
// once during startup after both sides exist.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection owns the lifecycle of one WebSocket client. Called by
// the HTTP handler after upgrade; blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast delivers a NOTIFY payload to every subscriber of the channel
// and wakes its SSE watchers. Envelope payloads are redacted before going
// out; non-envelope payloads (truncated wakeups) pass through untouched —
// they carry no payload documents to redact.
func (m *ConnectionManager) Broadcast(channel string, payload []byte) {
	payload = redactPayload(payload)

	m.channelMu.RLock()
	st, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(st.conns))
	for id := range st.conns {
		ids = append(ids, id)
	}
	for w := range st.watchers {
		select {
		case w <- struct{}{}:
		default: // wakeup already pending
		}
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers, then send without holding mu. Writes
	// can take up to writeTimeout each and must not stall register/
	// unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, payload); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// redactPayload re-marshals an envelope payload with its redaction applied.
// Payloads that are not envelopes, or need no redaction, are returned as-is.
func redactPayload(payload []byte) []byte {
	var env eventlog.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return payload
	}
	redacted := Redact(&env)
	if redacted == &env {
		return payload
	}
	out, err := json.Marshal(redacted)
	if err != nil {
		return payload
	}
	return out
}

// ActiveConnections returns the count of open WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// ActiveWatchers returns the count of registered SSE wakeup channels.
func (m *ConnectionManager) ActiveWatchers() int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	n := 0
	for _, st := range m.channels {
		n += len(st.watchers)
	}
	return n
}

// subscriberCount returns WebSocket subscribers of a channel. Used by tests
// to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	if st, ok := m.channels[channel]; ok {
		return len(st.conns)
	}
	return 0
}

// Watch registers an SSE wakeup channel for a PG channel and establishes
// LISTEN if this is its first consumer. The returned channel gets a
// non-blocking signal on every Broadcast; cancel releases the registration.
// On LISTEN failure the caller falls back to pure polling.
func (m *ConnectionManager) Watch(channel string) (<-chan struct{}, func(), error) {
	wake := make(chan struct{}, 1)

	m.channelMu.Lock()
	st, existed := m.channels[channel]
	if !existed {
		st = &channelState{conns: make(map[string]bool), watchers: make(map[chan struct{}]struct{})}
		m.channels[channel] = st
	}
	st.watchers[wake] = struct{}{}
	m.channelMu.Unlock()

	if !existed {
		if err := m.establishListen(channel); err != nil {
			m.channelMu.Lock()
			if st, ok := m.channels[channel]; ok {
				delete(st.watchers, wake)
				if st.empty() {
					delete(m.channels, channel)
				}
			}
			m.channelMu.Unlock()
			return nil, nil, err
		}
	}

	cancel := func() {
		m.channelMu.Lock()
		release := false
		if st, ok := m.channels[channel]; ok {
			delete(st.watchers, wake)
			if st.empty() {
				delete(m.channels, channel)
				release = true
			}
		}
		m.channelMu.Unlock()
		if release {
			m.releaseListen(channel)
		}
	}
	return wake, cancel, nil
}

// handleClientMessage dispatches one client protocol message.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if _, _, ok := channelStream(msg.Channel); !ok {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "unknown channel; expected room:<id> or workspace:<id>",
			})
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up so late subscribers see history before live events.
		// A client that already holds a position passes last_event_id.
		var fromSeq int64
		if msg.LastEventID != nil {
			fromSeq = *msg.LastEventID
		}
		m.handleCatchup(ctx, c, msg.Channel, fromSeq)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a connection for a channel, establishing LISTEN when
// the channel gains its first consumer. LISTEN is synchronous so it is
// active before the auto-catchup runs; events landing between catchup and
// LISTEN would otherwise be lost.
//
// Returns an error if LISTEN fails so the caller reports it instead of
// sending a false subscription.confirmed.
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	m.channelMu.Lock()
	st, existed := m.channels[channel]
	if !existed {
		st = &channelState{conns: make(map[string]bool), watchers: make(map[chan struct{}]struct{})}
		m.channels[channel] = st
	}
	st.conns[c.ID] = true
	m.channelMu.Unlock()

	if !existed {
		if err := m.establishListen(channel); err != nil {
			m.cleanupFailedChannel(c, channel)
			return err
		}
	}

	c.subscriptions[channel] = true
	return nil
}

// establishListen issues LISTEN for a channel on the shared listener
// connection. A nil listener (tests) succeeds trivially.
func (m *ConnectionManager) establishListen(channel string) error {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return nil
	}

	listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
	defer cancel()
	if err := l.Subscribe(listenCtx, channel); err != nil {
		slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
		return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
	}
	return nil
}

// cleanupFailedChannel removes every consumer from a channel after a LISTEN
// failure and tells affected WebSocket connections (other than the
// triggering one, which gets the error return) that their subscription is
// gone.
//
// Between the channel entry appearing in m.channels and LISTEN completing,
// other consumers may have joined; having seen the entry they skipped
// LISTEN and were confirmed. They are orphaned now — confirmed but with no
// underlying LISTEN. Clients must treat subscription.error as
// authoritative: discard received events for the channel and re-subscribe
// with backoff or fall back to polling. Orphaned SSE watchers keep their
// wakeup channel and simply degrade to pure polling.
func (m *ConnectionManager) cleanupFailedChannel(triggering *Connection, channel string) {
	m.channelMu.Lock()
	var affectedIDs []string
	if st, ok := m.channels[channel]; ok {
		for connID := range st.conns {
			if connID != triggering.ID {
				affectedIDs = append(affectedIDs, connID)
			}
		}
	}
	delete(m.channels, channel)
	m.channelMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", conn.ID, "channel", channel)
		m.sendJSON(conn, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes a connection from a channel, releasing LISTEN when
// the last consumer leaves.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	release := false
	if st, exists := m.channels[channel]; exists {
		delete(st.conns, c.ID)
		if st.empty() {
			delete(m.channels, channel)
			release = true
		}
	}
	m.channelMu.Unlock()

	if release {
		m.releaseListen(channel)
	}

	delete(c.subscriptions, channel)
}

// releaseListen issues UNLISTEN asynchronously after the last consumer
// leaves a channel. The goroutine re-checks m.channels first so a rapid
// unsubscribe/resubscribe cycle does not drop an active LISTEN:
//
//	subscribe   → LISTEN active
//	unsubscribe → UNLISTEN queued
//	resubscribe → channel re-added
//	goroutine   → sees resubscribed, skips UNLISTEN
func (m *ConnectionManager) releaseListen(channel string) {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		m.channelMu.RLock()
		_, resubscribed := m.channels[channel]
		m.channelMu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// handleCatchup streams committed events after fromSeq to the client, in
// order, redacted. If the client is further behind than one page, a
// catchup.overflow message carries the seq to resume from.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, fromSeq int64) {
	if m.source == nil {
		return
	}
	streamType, streamID, ok := channelStream(channel)
	if !ok {
		return
	}

	events, err := m.source.Events(ctx, streamType, streamID, fromSeq, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	lastSeq := fromSeq
	for _, env := range events {
		payload, err := json.Marshal(Redact(env))
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
		lastSeq = env.StreamSeq
	}

	if hasMore {
		m.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
			"next_seq": lastSeq,
		})
	}
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
