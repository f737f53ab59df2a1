package api

import (
	"errors"
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/capability"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/secrets"
	"github.com/missionloop/groundcontrol/pkg/services"
)

// errorBody is the wire error contract. Clients branch on reason_code.
type errorBody struct {
	Error      bool           `json:"error"`
	ReasonCode string         `json:"reason_code"`
	Reason     string         `json:"reason"`
	Details    map[string]any `json:"details,omitempty"`
}

// reasonStatus maps wire reason codes to HTTP statuses.
var reasonStatus = map[string]int{
	services.ReasonUnsupportedVersion:        http.StatusBadRequest,
	services.ReasonMissingWorkspaceHeader:    http.StatusUnauthorized,
	services.ReasonUnknownAgent:              http.StatusForbidden,
	services.ReasonUnauthorizedWorkspace:     http.StatusForbidden,
	services.ReasonMissingField:              http.StatusBadRequest,
	services.ReasonInvalidPayloadCombination: http.StatusBadRequest,
	services.ReasonMissingWorkLink:           http.StatusBadRequest,
	services.ReasonInvalidIntentForType:      http.StatusBadRequest,
	services.ReasonPayloadTooLarge:           http.StatusRequestEntityTooLarge,
	services.ReasonArtifactNotFound:          http.StatusUnprocessableEntity,
	services.ReasonStorageUnavailable:        http.StatusServiceUnavailable,
	services.ReasonRateLimited:               http.StatusTooManyRequests,
	services.ReasonHeartbeatRateLimited:      http.StatusTooManyRequests,
	services.ReasonLeaseExpiredOrPreempted:   http.StatusForbidden,
	services.ReasonRoomScopeDenied:           http.StatusForbidden,
	services.ReasonLeaseHeld:                 http.StatusConflict,
	services.ReasonIdempotencyConflict:       http.StatusConflict,
	services.ReasonInvalidMetrics:            http.StatusBadRequest,
	services.ReasonInvalidRunTransition:      http.StatusConflict,
	services.ReasonApprovalAlreadyDecided:    http.StatusConflict,
	services.ReasonIncidentRCARequired:       http.StatusConflict,
	services.ReasonIncidentLearningRequired:  http.StatusConflict,
	services.ReasonIncidentClosed:            http.StatusConflict,
	services.ReasonOwnerExists:               http.StatusConflict,
	services.ReasonSecretsVaultNotConfigured: http.StatusNotImplemented,
	services.ReasonProjectionUnavailable:     http.StatusServiceUnavailable,
	services.ReasonNotFound:                  http.StatusNotFound,
	services.ReasonInternalError:             http.StatusInternalServerError,

	// Supplemental codes produced by the API and security layers.
	reasonMissingBearerToken: http.StatusUnauthorized,
	reasonInvalidToken:       http.StatusUnauthorized,
	reasonInvalidCredentials: http.StatusUnauthorized,
	reasonBootstrapForbidden: http.StatusForbidden,
	reasonSecretNameExists:   http.StatusConflict,
	reasonVaultForbidden:     http.StatusForbidden,
	reasonAdminForbidden:     http.StatusForbidden,

	capability.DeniedParentNotFound:  http.StatusForbidden,
	capability.DeniedGrantorMismatch: http.StatusForbidden,
	capability.DeniedParentRevoked:   http.StatusForbidden,
	capability.DeniedParentExpired:   http.StatusForbidden,
	capability.DeniedDepthExceeded:   http.StatusForbidden,
	capability.DeniedCycle:           http.StatusForbidden,
}

// errStreamingUnavailable reports a server started without the stream
// plumbing (no LISTEN connection and no tailer).
var errStreamingUnavailable = services.Reason(services.ReasonProjectionUnavailable, "event streaming is not available")

// Reason codes minted at the API layer.
const (
	reasonMissingBearerToken = "missing_bearer_token"
	reasonInvalidToken       = "invalid_token"
	reasonInvalidCredentials = "invalid_credentials"
	reasonBootstrapForbidden = "bootstrap_forbidden"
	reasonSecretNameExists   = "secret_name_exists"
	reasonVaultForbidden     = "vault_forbidden"
	reasonAdminForbidden     = "admin_forbidden"
)

// respondReason writes the error contract for err: a ReasonError goes out
// as-is, known sentinels are translated, anything else is an opaque 500.
// Rate-limit and lease conflict counters are bumped here so every surface
// that produces those codes is counted once.
func (s *Server) respondReason(c *echo.Context, err error) error {
	re := translate(err)

	switch re.Code {
	case services.ReasonRateLimited:
		s.metrics.RecordRateLimitDenial("messages")
	case services.ReasonHeartbeatRateLimited:
		s.metrics.RecordRateLimitDenial("heartbeats")
	case services.ReasonLeaseHeld, services.ReasonLeaseExpiredOrPreempted:
		s.metrics.RecordLeaseConflict()
	}

	if retry, ok := re.Details["retry_after_seconds"]; ok {
		c.Response().Header().Set("Retry-After", fmt.Sprintf("%v", retry))
	}

	status, ok := reasonStatus[re.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status == http.StatusInternalServerError && re.Code == services.ReasonInternalError {
		s.logger.Error("unexpected service error", "error", err.Error())
	}

	return c.JSON(status, &errorBody{
		Error:      true,
		ReasonCode: re.Code,
		Reason:     re.Message,
		Details:    re.Details,
	})
}

// translate normalizes service-package sentinels into ReasonError values.
func translate(err error) *services.ReasonError {
	if re, ok := services.AsReason(err); ok {
		return re
	}

	var denial *capability.DenialError
	if errors.As(err, &denial) {
		return services.Reason(denial.Reason, "delegation denied")
	}

	switch {
	case errors.Is(err, capability.ErrTokenNotFound):
		return services.Reason(services.ReasonNotFound, "capability token not found")
	case errors.Is(err, lease.ErrHeldByOther):
		return services.Reason(services.ReasonLeaseHeld, "lease held by another agent")
	case errors.Is(err, lease.ErrExpired):
		return services.Reason(services.ReasonLeaseExpiredOrPreempted, "lease expired")
	case errors.Is(err, lease.ErrAbsent):
		return services.Reason(services.ReasonNotFound, "no lease for work item")
	case errors.Is(err, lease.ErrLockUnavailable):
		return services.Reason(services.ReasonHeartbeatRateLimited, "lease row lock unavailable, retry")
	case errors.Is(err, auth.ErrOwnerExists):
		return services.Reason(services.ReasonOwnerExists, "workspace already has an owner")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return services.Reason(reasonInvalidCredentials, "invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		return services.Reason(reasonInvalidToken, "invalid or expired token")
	case errors.Is(err, secrets.ErrVaultNotConfigured):
		return services.Reason(services.ReasonSecretsVaultNotConfigured, "secrets vault is not configured")
	case errors.Is(err, secrets.ErrAlreadyExists):
		return services.Reason(reasonSecretNameExists, "secret name already exists in workspace")
	case errors.Is(err, secrets.ErrNotFound):
		return services.Reason(services.ReasonNotFound, "secret not found")
	case errors.Is(err, secrets.ErrForbidden):
		return services.Reason(reasonVaultForbidden, "principal may not use the secrets vault")
	}

	return services.Reason(services.ReasonInternalError, "internal server error")
}

// leaseWarningHeader marks responses whose write proceeded without a
// verifiable lease.
func leaseWarningHeader(c *echo.Context) {
	c.Response().Header().Set("X-Lease-Warning", "missing_lease")
}
