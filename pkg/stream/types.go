// Package stream delivers committed events to live subscribers over
// WebSocket and SSE. Wakeups travel through PostgreSQL NOTIFY on the
// same channels the event store publishes to ("workspace:<id>" and
// "room:<id>"), so every process sees appends from every other process.
//
// Both surfaces read committed rows only: the NOTIFY payload is a hint,
// never the source of truth, and oversized appends degrade to an id-only
// wakeup that forces a table re-read. Clients resume with the last
// stream_seq they saw; the sequence is dense per stream, so a resumed
// tail never skips or duplicates a committed event.
package stream

import (
	"strings"

	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// ClientMessage is the client → server WebSocket protocol.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "catchup", "ping"
	Channel string `json:"channel,omitempty"` // "room:<id>" or "workspace:<id>"
	// LastEventID is the stream_seq of the last event the client has seen;
	// catchup resumes strictly after it.
	LastEventID *int64 `json:"last_event_id,omitempty"`
}

// channelStream resolves a subscription channel name to the stream it
// tails. Catchup on a workspace channel covers the workspace stream;
// room-stream history is caught up on the room channel.
func channelStream(channel string) (streamType, streamID string, ok bool) {
	if id, found := strings.CutPrefix(channel, "room:"); found && id != "" {
		return eventlog.StreamRoom, id, true
	}
	if id, found := strings.CutPrefix(channel, "workspace:"); found && id != "" {
		return eventlog.StreamWorkspace, id, true
	}
	return "", "", false
}

// Redact returns the envelope as it may be shown to subscribers. Redaction
// strips payload documents, never identity or ordering fields, so clients
// can still track position and causality on redacted events.
//
//	partial          → data and model_context withheld
//	full             → all payload documents withheld
//	contains_secrets → data, model_context and policy_context withheld
//	                   regardless of level
//
// Envelopes needing no redaction are returned as-is.
func Redact(env *eventlog.Envelope) *eventlog.Envelope {
	if env.RedactionLevel == eventlog.RedactionNone && !env.ContainsSecrets {
		return env
	}
	out := *env
	switch env.RedactionLevel {
	case eventlog.RedactionPartial:
		out.Data = nil
		out.ModelContext = nil
	case eventlog.RedactionFull:
		out.Data = nil
		out.ModelContext = nil
		out.PolicyContext = nil
		out.Display = nil
	}
	if env.ContainsSecrets {
		out.Data = nil
		out.ModelContext = nil
		out.PolicyContext = nil
	}
	return &out
}
