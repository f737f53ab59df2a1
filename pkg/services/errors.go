// Package services implements the write and read operations behind the HTTP
// surface: message intake with its idempotency and lease discipline, the
// act-recording appenders, and the pipeline and catchup views. Services
// return ReasonError values carrying stable wire reason codes; the API layer
// maps codes to HTTP statuses.
package services

import (
	"errors"
	"fmt"
)

// Wire reason codes. These are contract: clients branch on them.
const (
	ReasonUnsupportedVersion        = "unsupported_version"
	ReasonMissingWorkspaceHeader    = "missing_workspace_header"
	ReasonUnknownAgent              = "unknown_agent"
	ReasonUnauthorizedWorkspace     = "unauthorized_workspace"
	ReasonMissingField              = "missing_field"
	ReasonInvalidPayloadCombination = "invalid_payload_combination"
	ReasonMissingWorkLink           = "missing_work_link"
	ReasonInvalidIntentForType      = "invalid_intent_for_type"
	ReasonPayloadTooLarge           = "payload_too_large"
	ReasonArtifactNotFound          = "artifact_not_found"
	ReasonStorageUnavailable        = "storage_unavailable"
	ReasonRateLimited               = "rate_limited"
	ReasonHeartbeatRateLimited      = "heartbeat_rate_limited"
	ReasonLeaseExpiredOrPreempted   = "lease_expired_or_preempted"
	ReasonRoomScopeDenied           = "room_scope_denied"
	ReasonLeaseHeld                 = "lease_held"
	ReasonIdempotencyConflict       = "idempotency_conflict_unresolved"
	ReasonDuplicateIdempotentReplay = "duplicate_idempotent_replay"
	ReasonInvalidMetrics            = "invalid_metrics"
	ReasonInvalidRunTransition      = "invalid_run_transition"
	ReasonApprovalAlreadyDecided    = "approval_already_decided"
	ReasonIncidentRCARequired       = "incident_rca_required"
	ReasonIncidentLearningRequired  = "incident_learning_required"
	ReasonIncidentClosed            = "incident_closed"
	ReasonOwnerExists               = "owner_exists"
	ReasonSecretsVaultNotConfigured = "secrets_vault_not_configured"
	ReasonProjectionUnavailable     = "projection_unavailable"
	ReasonNotFound                  = "not_found"
	ReasonInternalError             = "internal_error"
)

// ReasonError is a failed operation with a stable wire reason code. Details
// carry actionable fields for the client; they never contain secrets or raw
// storage errors.
type ReasonError struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *ReasonError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Reason builds a ReasonError without details.
func Reason(code, message string) *ReasonError {
	return &ReasonError{Code: code, Message: message}
}

// Reasonf builds a ReasonError with a formatted message.
func Reasonf(code, format string, args ...any) *ReasonError {
	return &ReasonError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithDetail attaches a detail field and returns the error for chaining.
func (e *ReasonError) WithDetail(key string, value any) *ReasonError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// ReasonCode extracts the wire code from err, or internal_error for
// anything that is not a ReasonError.
func ReasonCode(err error) string {
	var re *ReasonError
	if errors.As(err, &re) {
		return re.Code
	}
	return ReasonInternalError
}

// AsReason returns the ReasonError inside err, if any.
func AsReason(err error) (*ReasonError, bool) {
	var re *ReasonError
	ok := errors.As(err, &re)
	return re, ok
}
