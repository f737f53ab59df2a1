package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/capability"
	"github.com/missionloop/groundcontrol/pkg/models"
)

type grantCapabilityRequest struct {
	IssuedToPrincipalID string          `json:"issued_to_principal_id" validate:"required"`
	ParentTokenID       string          `json:"parent_token_id,omitempty"`
	Scopes              models.ScopeSet `json:"scopes"`
	ValidUntil          *time.Time      `json:"valid_until,omitempty"`
}

type revokeCapabilityRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// grantCapabilityHandler handles POST /v1/capabilities: a root issuance
// when parent_token_id is empty, a delegation otherwise. Denials come back
// as 403 with the denial reason as the wire code.
func (s *Server) grantCapabilityHandler(c *echo.Context) error {
	var req grantCapabilityRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	identity := identityFrom(c)
	token, err := s.caps.Grant(c.Request().Context(), identity, capability.GrantRequest{
		WorkspaceID:          identity.WorkspaceID,
		IssuedToPrincipalID:  req.IssuedToPrincipalID,
		GrantedByPrincipalID: identity.PrincipalID,
		ParentTokenID:        req.ParentTokenID,
		Scopes:               req.Scopes,
		ValidUntil:           req.ValidUntil,
	})
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, token)
}

// revokeCapabilityHandler handles POST /v1/capabilities/:id/revoke.
// Idempotent: re-revoking reports already_revoked without a second event.
func (s *Server) revokeCapabilityHandler(c *echo.Context) error {
	var req revokeCapabilityRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	identity := identityFrom(c)
	result, err := s.caps.Revoke(c.Request().Context(), identity, identity.WorkspaceID, c.Param("id"), req.Reason)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
