package eventlog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/pkg/canonical"
)

// TimeLayout is the envelope timestamp format: RFC 3339 with millisecond
// precision, always UTC. Timestamps are truncated to this precision before
// hashing so the database round trip reproduces the hashed value exactly.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Envelope is the persisted event record. Optional string fields use ""
// for absent (stored as NULL); payload fields hold the canonical JSON text
// exactly as stored.
type Envelope struct {
	EventID          string          `json:"event_id"`
	EventType        string          `json:"event_type"`
	EventVersion     int             `json:"event_version"`
	OccurredAt       time.Time       `json:"occurred_at"`
	RecordedAt       time.Time       `json:"recorded_at"`
	WorkspaceID      string          `json:"workspace_id"`
	MissionID        string          `json:"mission_id,omitempty"`
	RoomID           string          `json:"room_id,omitempty"`
	ThreadID         string          `json:"thread_id,omitempty"`
	RunID            string          `json:"run_id,omitempty"`
	StepID           string          `json:"step_id,omitempty"`
	ActorType        string          `json:"actor_type"`
	ActorID          string          `json:"actor_id"`
	ActorPrincipalID string          `json:"actor_principal_id,omitempty"`
	Zone             string          `json:"zone"`
	StreamType       string          `json:"stream_type"`
	StreamID         string          `json:"stream_id"`
	StreamSeq        int64           `json:"stream_seq"`
	CorrelationID    string          `json:"correlation_id"`
	CausationID      string          `json:"causation_id,omitempty"`
	RedactionLevel   string          `json:"redaction_level"`
	ContainsSecrets  bool            `json:"contains_secrets"`
	PolicyContext    json.RawMessage `json:"policy_context,omitempty"`
	ModelContext     json.RawMessage `json:"model_context,omitempty"`
	Display          json.RawMessage `json:"display,omitempty"`
	Data             json.RawMessage `json:"data,omitempty"`
	IdempotencyKey   string          `json:"idempotency_key,omitempty"`
	PrevEventHash    string          `json:"prev_event_hash,omitempty"`
	EventHash        string          `json:"event_hash,omitempty"`
}

// Draft is what callers hand to Append. The store assigns event_id,
// recorded_at, stream_seq and the hash fields, canonicalizes the payload
// documents, and defaults zone, redaction level, version, and correlation.
type Draft struct {
	EventType        string
	EventVersion     int
	OccurredAt       time.Time
	WorkspaceID      string
	MissionID        string
	RoomID           string
	ThreadID         string
	RunID            string
	StepID           string
	ActorType        string
	ActorID          string
	ActorPrincipalID string
	Zone             string
	StreamType       string
	StreamID         string
	CorrelationID    string
	CausationID      string
	RedactionLevel   string
	ContainsSecrets  bool
	PolicyContext    json.RawMessage
	ModelContext     json.RawMessage
	Display          json.RawMessage
	Data             json.RawMessage
	IdempotencyKey   string
}

// HashablePayload returns the canonical bytes of the envelope excluding
// both hash fields. The append path and the audit verifier share this
// function; any drift between the two would poison verification.
func (e *Envelope) HashablePayload() ([]byte, error) {
	m := map[string]any{
		"event_id":         e.EventID,
		"event_type":       e.EventType,
		"event_version":    e.EventVersion,
		"occurred_at":      e.OccurredAt.UTC().Format(TimeLayout),
		"recorded_at":      e.RecordedAt.UTC().Format(TimeLayout),
		"workspace_id":     e.WorkspaceID,
		"actor_type":       e.ActorType,
		"actor_id":         e.ActorID,
		"zone":             e.Zone,
		"stream_type":      e.StreamType,
		"stream_id":        e.StreamID,
		"stream_seq":       e.StreamSeq,
		"correlation_id":   e.CorrelationID,
		"redaction_level":  e.RedactionLevel,
		"contains_secrets": e.ContainsSecrets,
	}
	addIfSet := func(key, val string) {
		if val != "" {
			m[key] = val
		}
	}
	addIfSet("mission_id", e.MissionID)
	addIfSet("room_id", e.RoomID)
	addIfSet("thread_id", e.ThreadID)
	addIfSet("run_id", e.RunID)
	addIfSet("step_id", e.StepID)
	addIfSet("actor_principal_id", e.ActorPrincipalID)
	addIfSet("causation_id", e.CausationID)
	addIfSet("idempotency_key", e.IdempotencyKey)
	if len(e.PolicyContext) > 0 {
		m["policy_context"] = e.PolicyContext
	}
	if len(e.ModelContext) > 0 {
		m["model_context"] = e.ModelContext
	}
	if len(e.Display) > 0 {
		m["display"] = e.Display
	}
	if len(e.Data) > 0 {
		m["data"] = e.Data
	}
	return canonical.Marshal(m)
}

// ComputeHash returns the envelope's chain hash: SHA-256 over the hashable
// payload concatenated with the previous event's hash (empty for the first
// event in a stream).
func (e *Envelope) ComputeHash() (string, error) {
	payload, err := e.HashablePayload()
	if err != nil {
		return "", err
	}
	return chainHash(payload, e.PrevEventHash), nil
}

func chainHash(canonicalEnvelope []byte, prevHash string) string {
	h := sha256.New()
	h.Write(canonicalEnvelope)
	if prevHash != "" {
		h.Write([]byte(prevHash))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// FromEnt converts a generated row into an Envelope.
func FromEnt(row *ent.Event) *Envelope {
	e := &Envelope{
		EventID:         row.ID,
		EventType:       row.EventType,
		EventVersion:    row.EventVersion,
		OccurredAt:      row.OccurredAt.UTC(),
		RecordedAt:      row.RecordedAt.UTC(),
		WorkspaceID:     row.WorkspaceID,
		ActorType:       string(row.ActorType),
		ActorID:         row.ActorID,
		Zone:            string(row.Zone),
		StreamType:      string(row.StreamType),
		StreamID:        row.StreamID,
		StreamSeq:       row.StreamSeq,
		CorrelationID:   row.CorrelationID,
		RedactionLevel:  string(row.RedactionLevel),
		ContainsSecrets: row.ContainsSecrets,
		PolicyContext:   row.PolicyContext,
		ModelContext:    row.ModelContext,
		Display:         row.Display,
		Data:            row.Data,
	}
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	e.MissionID = deref(row.MissionID)
	e.RoomID = deref(row.RoomID)
	e.ThreadID = deref(row.ThreadID)
	e.RunID = deref(row.RunID)
	e.StepID = deref(row.StepID)
	e.ActorPrincipalID = deref(row.ActorPrincipalID)
	e.CausationID = deref(row.CausationID)
	e.IdempotencyKey = deref(row.IdempotencyKey)
	e.PrevEventHash = deref(row.PrevEventHash)
	e.EventHash = deref(row.EventHash)
	return e
}
