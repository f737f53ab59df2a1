package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	entevent "github.com/missionloop/groundcontrol/ent/event"
	"github.com/missionloop/groundcontrol/ent/room"
	"github.com/missionloop/groundcontrol/ent/thread"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/canonical"
	"github.com/missionloop/groundcontrol/pkg/capability"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/projector"
	"github.com/missionloop/groundcontrol/pkg/ratelimit"
	"github.com/missionloop/groundcontrol/pkg/storage"
)

// Message intents.
const (
	IntentMessage   = "message"
	IntentHeartbeat = "heartbeat"
	IntentResolve   = "resolve"
	IntentReject    = "reject"
)

// maxPayloadBytes bounds the canonical form of an inline payload.
const maxPayloadBytes = 8 * 1024

// defaultClockSkew bounds how far a client-supplied occurred_at may drift
// from the server clock.
const defaultClockSkew = 48 * time.Hour

var supportedSchemaVersions = map[string]bool{"1": true}

// PayloadRef points a message at an object held in artifact storage.
type PayloadRef struct {
	ObjectKey string `json:"object_key"`
}

// WorkLinks binds a message to the work item it advances. At most one link
// may be set.
type WorkLinks struct {
	ApprovalID   string `json:"approval_id,omitempty"`
	ExperimentID string `json:"experiment_id,omitempty"`
	IncidentID   string `json:"incident_id,omitempty"`
	RunID        string `json:"run_id,omitempty"`
}

// itemType returns the lease work item type and id for the single set link.
// Run links return ItemType "" because runs are never leased.
func (w *WorkLinks) item() (itemType, itemID string) {
	switch {
	case w == nil:
		return "", ""
	case w.ApprovalID != "":
		return lease.ItemApproval, w.ApprovalID
	case w.ExperimentID != "":
		return lease.ItemExperiment, w.ExperimentID
	case w.IncidentID != "":
		return lease.ItemIncident, w.IncidentID
	case w.RunID != "":
		return "", w.RunID
	}
	return "", ""
}

func (w *WorkLinks) count() int {
	if w == nil {
		return 0
	}
	n := 0
	for _, id := range []string{w.ApprovalID, w.ExperimentID, w.IncidentID, w.RunID} {
		if id != "" {
			n++
		}
	}
	return n
}

// IntakeRequest is the body of POST /v1/messages.
type IntakeRequest struct {
	SchemaVersion  string          `json:"schema_version"`
	FromAgentID    string          `json:"from_agent_id"`
	RoomID         string          `json:"room_id,omitempty"`
	ThreadID       string          `json:"thread_id,omitempty"`
	CorrelationID  string          `json:"correlation_id,omitempty"`
	Intent         string          `json:"intent,omitempty"`
	IdempotencyKey string          `json:"idempotency_key"`
	OccurredAt     time.Time       `json:"occurred_at,omitempty"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	PayloadRef     *PayloadRef     `json:"payload_ref,omitempty"`
	WorkLinks      *WorkLinks      `json:"work_links,omitempty"`
	ExperimentID   string          `json:"experiment_id,omitempty"`
}

// IntakeResult is the success envelope of message intake.
type IntakeResult struct {
	MessageID        string    `json:"message_id"`
	EventID          string    `json:"event_id,omitempty"`
	StreamSeq        int64     `json:"stream_seq,omitempty"`
	RecordedAt       time.Time `json:"recorded_at,omitempty"`
	EventHash        string    `json:"event_hash,omitempty"`
	IdempotentReplay bool      `json:"idempotent_replay"`
	ReasonCode       string    `json:"reason_code,omitempty"`
	// LeaseWarning is surfaced as the X-Lease-Warning header, not in the body.
	LeaseWarning bool `json:"-"`
}

// MessageService runs the intake protocol for POST /v1/messages.
type MessageService struct {
	*recorder
	leases  *lease.Manager
	limiter *ratelimit.Limiter
	streaks *ratelimit.Streaks
	prober  *storage.Prober
	caps    *capability.Service
	skew    time.Duration
}

// SetClockSkew overrides the accepted occurred_at drift window.
func (s *MessageService) SetClockSkew(d time.Duration) {
	if d > 0 {
		s.skew = d
	}
}

// SetCapabilities turns on room-scope enforcement for capability-bearing
// agents.
func (s *MessageService) SetCapabilities(caps *capability.Service) {
	s.caps = caps
}

// NewMessageService wires the intake pipeline.
func NewMessageService(
	db *database.Client,
	store *eventlog.Store,
	reg *projector.Registry,
	leases *lease.Manager,
	limiter *ratelimit.Limiter,
	streaks *ratelimit.Streaks,
	prober *storage.Prober,
	logger *slog.Logger,
) *MessageService {
	return &MessageService{
		recorder: newRecorder(db, store, reg, logger),
		leases:   leases,
		limiter:  limiter,
		streaks:  streaks,
		prober:   prober,
		skew:     defaultClockSkew,
	}
}

// Intake validates, rate-limits, and records one agent message. The steps
// run in a fixed order and the first failure wins; every outcome maps to a
// stable reason code.
func (s *MessageService) Intake(ctx context.Context, identity auth.Identity, req IntakeRequest) (*IntakeResult, error) {
	// 1. Schema & shape.
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	// 2. Identity: the bearer principal must own from_agent_id in this
	// workspace.
	if err := s.checkAgent(ctx, identity, req.FromAgentID); err != nil {
		return nil, err
	}

	// 3. Cross-entity checks on room and thread.
	if err := s.checkEntities(ctx, identity.WorkspaceID, &req); err != nil {
		return nil, err
	}

	// 4. Room scope: a capability-bearing agent may only post into rooms
	// its token scopes cover.
	if err := s.checkRoomScope(ctx, identity, req.RoomID); err != nil {
		return nil, err
	}

	// 5. Artifact existence for by-reference payloads.
	if req.PayloadRef != nil {
		if err := s.probeArtifact(ctx, req.PayloadRef.ObjectKey); err != nil {
			return nil, err
		}
	}

	// 6. Pre-transaction idempotency probe.
	if res, err := s.probeIdempotency(ctx, identity.WorkspaceID, req.IdempotencyKey, req.FromAgentID); err != nil || res != nil {
		return res, err
	}

	// 7. Rate limit. Denials never consume the idempotency key — nothing
	// has been appended yet.
	scope := ratelimit.ScopeMessages
	if req.Intent == IntentHeartbeat {
		scope = ratelimit.ScopeHeartbeat
	}
	decision := s.limiter.Allow(identity.WorkspaceID, req.FromAgentID, scope, req.Intent, req.ExperimentID)
	if !decision.Allowed {
		streak, err := s.streaks.Increment(ctx, identity.WorkspaceID, req.FromAgentID, scope)
		if err != nil {
			s.logger.Error("failed to bump rate limit streak", slog.String("error", err.Error()))
		}
		code := ReasonRateLimited
		if req.Intent == IntentHeartbeat {
			code = ReasonHeartbeatRateLimited
		}
		return nil, Reason(code, "rate limit exceeded").
			WithDetail("retry_after_seconds", decision.RetryAfterSeconds).
			WithDetail("consecutive_429", streak)
	}

	// 8-11. Transactional phase.
	res, err := s.intakeTx(ctx, identity, req)
	if err != nil {
		if errors.Is(err, eventlog.ErrIdempotencyConflict) {
			// The unique index caught a concurrent insert; resolve by
			// re-probing in a fresh transaction.
			if res, err := s.probeIdempotency(ctx, identity.WorkspaceID, req.IdempotencyKey, req.FromAgentID); err != nil || res != nil {
				return res, err
			}
			return nil, Reason(ReasonIdempotencyConflict, "idempotency key already committed but not readable").
				WithDetail("idempotency_key", req.IdempotencyKey)
		}
		return nil, err
	}

	// Successful commit ends any denial streak.
	s.streaks.ResetAsync(identity.WorkspaceID, req.FromAgentID, scope)
	return res, nil
}

func (s *MessageService) validate(req *IntakeRequest) error {
	if !supportedSchemaVersions[req.SchemaVersion] {
		return Reason(ReasonUnsupportedVersion, "unsupported schema_version").
			WithDetail("schema_version", req.SchemaVersion)
	}
	if req.FromAgentID == "" {
		return Reason(ReasonMissingField, "from_agent_id is required").WithDetail("field", "from_agent_id")
	}
	if req.IdempotencyKey == "" {
		return Reason(ReasonMissingField, "idempotency_key is required").WithDetail("field", "idempotency_key")
	}
	occurredAt, err := occurredOrNow(req.OccurredAt, s.skew)
	if err != nil {
		return err
	}
	req.OccurredAt = occurredAt

	if req.Intent == "" {
		req.Intent = IntentMessage
	}
	switch req.Intent {
	case IntentMessage, IntentHeartbeat, IntentResolve, IntentReject:
	default:
		return Reason(ReasonInvalidIntentForType, "unknown intent").WithDetail("intent", req.Intent)
	}

	hasPayload := len(req.Payload) > 0
	hasRef := req.PayloadRef != nil
	if hasPayload == hasRef {
		return Reason(ReasonInvalidPayloadCombination, "exactly one of payload or payload_ref is required")
	}
	if hasRef && req.PayloadRef.ObjectKey == "" {
		return Reason(ReasonMissingField, "payload_ref.object_key is required").WithDetail("field", "payload_ref.object_key")
	}
	if hasPayload {
		compact, err := canonical.MarshalRaw(req.Payload)
		if err != nil {
			return Reason(ReasonInvalidPayloadCombination, "payload is not valid JSON")
		}
		if len(compact) > maxPayloadBytes {
			return Reason(ReasonPayloadTooLarge, "payload exceeds the inline limit").
				WithDetail("limit_bytes", maxPayloadBytes).
				WithDetail("payload_bytes", len(compact))
		}
		req.Payload = compact
	}

	links := req.WorkLinks.count()
	if links > 1 {
		return Reason(ReasonInvalidPayloadCombination, "at most one work link may be set")
	}
	switch req.Intent {
	case IntentResolve, IntentReject:
		if links == 0 {
			return Reason(ReasonMissingWorkLink, "resolve and reject require a work link")
		}
	case IntentHeartbeat:
		if links != 0 {
			return Reason(ReasonInvalidIntentForType, "heartbeat must not carry a work link")
		}
	}
	return nil
}

func (s *MessageService) checkAgent(ctx context.Context, identity auth.Identity, fromAgentID string) error {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return err
	}
	if identity.PrincipalType != auth.PrincipalAgent || actor.ID != fromAgentID {
		return Reason(ReasonUnknownAgent, "from_agent_id does not belong to the calling principal").
			WithDetail("from_agent_id", fromAgentID)
	}
	if identity.WorkspaceID == "" {
		return Reason(ReasonMissingWorkspaceHeader, "workspace header is required")
	}
	return nil
}

// checkEntities verifies the room and thread exist in the header workspace
// and agree with each other. A thread given without a room supplies the room.
func (s *MessageService) checkEntities(ctx context.Context, workspaceID string, req *IntakeRequest) error {
	if req.RoomID != "" {
		roomRow, err := s.db.Room.Query().Where(room.ID(req.RoomID)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return Reason(ReasonMissingField, "room not found").WithDetail("room_id", req.RoomID)
			}
			return fmt.Errorf("failed to load room: %w", err)
		}
		if roomRow.WorkspaceID != workspaceID {
			return Reason(ReasonUnauthorizedWorkspace, "room belongs to a different workspace").
				WithDetail("room_id", req.RoomID)
		}
	}
	if req.ThreadID != "" {
		threadRow, err := s.db.Thread.Query().Where(thread.ID(req.ThreadID)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return Reason(ReasonMissingField, "thread not found").WithDetail("thread_id", req.ThreadID)
			}
			return fmt.Errorf("failed to load thread: %w", err)
		}
		if threadRow.WorkspaceID != workspaceID {
			return Reason(ReasonUnauthorizedWorkspace, "thread belongs to a different workspace").
				WithDetail("thread_id", req.ThreadID)
		}
		if req.RoomID == "" {
			req.RoomID = threadRow.RoomID
		} else if threadRow.RoomID != req.RoomID {
			return Reason(ReasonInvalidPayloadCombination, "thread does not belong to the given room").
				WithDetail("thread_id", req.ThreadID).
				WithDetail("room_id", req.RoomID)
		}
	}
	return nil
}

// checkRoomScope enforces capability room scopes on the target room. Agents
// holding no capability tokens are unconstrained; once any live token
// exists, the room must be covered by one of them.
func (s *MessageService) checkRoomScope(ctx context.Context, identity auth.Identity, roomID string) error {
	if s.caps == nil || roomID == "" {
		return nil
	}
	_, err := s.caps.Resolve(ctx, identity.WorkspaceID, identity.PrincipalID, roomID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, capability.ErrTokenNotFound) {
		return fmt.Errorf("failed to resolve capability token: %w", err)
	}
	// Distinguish "no tokens at all" from "tokens exist but none cover
	// the room".
	_, err = s.caps.Resolve(ctx, identity.WorkspaceID, identity.PrincipalID, "")
	switch {
	case errors.Is(err, capability.ErrTokenNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to resolve capability token: %w", err)
	}
	return Reason(ReasonRoomScopeDenied, "no live capability token covers the room").
		WithDetail("room_id", roomID)
}

func (s *MessageService) probeArtifact(ctx context.Context, objectKey string) error {
	if s.prober == nil {
		// Probing disabled: accept the reference unverified.
		return nil
	}
	err := s.prober.Probe(ctx, objectKey)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrArtifactNotFound):
		return Reason(ReasonArtifactNotFound, "referenced object does not exist").
			WithDetail("object_key", objectKey)
	default:
		return Reason(ReasonStorageUnavailable, "artifact storage did not answer")
	}
}

// probeIdempotency looks for a committed message.created with the same
// (workspace, idempotency_key). A hit by the same agent is a replay; a hit
// by another agent is an unresolvable conflict.
func (s *MessageService) probeIdempotency(ctx context.Context, workspaceID, key, fromAgentID string) (*IntakeResult, error) {
	row, err := s.db.Event.Query().
		Where(
			entevent.WorkspaceID(workspaceID),
			entevent.EventTypeEQ(eventlog.TypeMessageCreated),
			entevent.IdempotencyKeyEQ(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to probe idempotency key: %w", err)
	}

	if row.ActorID != fromAgentID {
		return nil, Reason(ReasonIdempotencyConflict, "idempotency key already used by another agent").
			WithDetail("idempotency_key", key)
	}

	var data struct {
		MessageID string `json:"message_id"`
	}
	if len(row.Data) > 0 {
		_ = json.Unmarshal(row.Data, &data)
	}
	return &IntakeResult{
		MessageID:        data.MessageID,
		EventID:          row.ID,
		IdempotentReplay: true,
		ReasonCode:       ReasonDuplicateIdempotentReplay,
	}, nil
}

// intakeTx is steps 7-10: lease verify under NOWAIT, append, terminal lease
// delete, commit, projector fold.
func (s *MessageService) intakeTx(ctx context.Context, identity auth.Identity, req IntakeRequest) (*IntakeResult, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin intake transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// 8. Lease verify: only for leasable work items, and never for
	// heartbeats.
	itemType, itemID := req.WorkLinks.item()
	leaseRequired := itemType != "" && req.Intent != IntentHeartbeat
	leaseWarning := false
	if leaseRequired {
		_, err := s.leases.Verify(ctx, tx, identity.WorkspaceID, itemType, itemID, req.FromAgentID)
		switch {
		case err == nil:
		case errors.Is(err, lease.ErrAbsent):
			leaseWarning = true
		case errors.Is(err, lease.ErrHeldByOther), errors.Is(err, lease.ErrExpired):
			return nil, Reason(ReasonLeaseExpiredOrPreempted, "work item lease is not held by the caller").
				WithDetail("work_item_type", itemType).
				WithDetail("work_item_id", itemID)
		case errors.Is(err, lease.ErrLockUnavailable):
			// Documented temporary reuse: lock contention reports as the
			// heartbeat limit code until a dedicated code ships.
			return nil, Reason(ReasonHeartbeatRateLimited, "lease row is contended, retry").
				WithDetail("work_item_id", itemID)
		default:
			return nil, err
		}
	}

	// 9. Append message.created.
	messageID := ids.Message()
	payload := map[string]any{
		"message_id": messageID,
		"intent":     req.Intent,
	}
	if len(req.Payload) > 0 {
		payload["payload"] = req.Payload
	}
	if req.PayloadRef != nil {
		payload["payload_ref"] = map[string]any{"object_key": req.PayloadRef.ObjectKey}
	}
	if req.WorkLinks.count() > 0 {
		payload["work_links"] = req.WorkLinks
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message payload: %w", err)
	}

	draft := eventlog.Draft{
		EventType:        eventlog.TypeMessageCreated,
		OccurredAt:       req.OccurredAt,
		WorkspaceID:      identity.WorkspaceID,
		RoomID:           req.RoomID,
		ThreadID:         req.ThreadID,
		ActorType:        eventlog.ActorAgent,
		ActorID:          req.FromAgentID,
		ActorPrincipalID: identity.PrincipalID,
		StreamType:       eventlog.StreamWorkspace,
		StreamID:         identity.WorkspaceID,
		CorrelationID:    req.CorrelationID,
		Data:             data,
		IdempotencyKey:   req.IdempotencyKey,
	}
	if req.RoomID != "" {
		draft.StreamType = eventlog.StreamRoom
		draft.StreamID = req.RoomID
	}
	if req.WorkLinks != nil && req.WorkLinks.RunID != "" {
		draft.RunID = req.WorkLinks.RunID
	}

	env, failures, err := s.recordIn(ctx, tx, draft)
	if err != nil {
		return nil, err
	}

	// 10. Terminal intents on a held lease retire the lease row with the
	// same commit.
	if leaseRequired && !leaseWarning && (req.Intent == IntentResolve || req.Intent == IntentReject) {
		if err := s.leases.Delete(ctx, tx, identity.WorkspaceID, itemType, itemID); err != nil {
			return nil, err
		}
	}

	// 11. Commit.
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit intake: %w", err)
	}
	committed = true
	s.metrics.RecordAppend(env.EventType)
	s.reg.Deposit(ctx, failures)

	return &IntakeResult{
		MessageID:    messageID,
		EventID:      env.EventID,
		StreamSeq:    env.StreamSeq,
		RecordedAt:   env.RecordedAt,
		EventHash:    env.EventHash,
		LeaseWarning: leaseWarning,
	}, nil
}
