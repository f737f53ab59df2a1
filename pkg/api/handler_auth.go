package api

import (
	"crypto/subtle"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/services"
)

type bootstrapRequest struct {
	WorkspaceID string `json:"workspace_id" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Passphrase  string `json:"passphrase" validate:"required,min=12"`
}

type loginRequest struct {
	WorkspaceID string `json:"workspace_id" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Passphrase  string `json:"passphrase" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// bootstrapHandler handles POST /v1/auth/bootstrap. The endpoint is guarded
// by the bootstrap token header, or by a loopback source when configured;
// with neither satisfied the call is refused.
func (s *Server) bootstrapHandler(c *echo.Context) error {
	if !s.bootstrapAllowed(c) {
		return s.respondReason(c, services.Reason(reasonBootstrapForbidden, "bootstrap is not permitted for this caller"))
	}

	var req bootstrapRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	result, err := s.authSvc.Bootstrap(c.Request().Context(), req.WorkspaceID, req.Email, req.Passphrase)
	if err != nil {
		return s.respondReason(c, err)
	}

	s.logger.Info("workspace owner bootstrapped",
		"workspace_id", result.WorkspaceID, "owner_id", result.OwnerID)
	return c.JSON(http.StatusCreated, result)
}

// loginHandler handles POST /v1/auth/login.
func (s *Server) loginHandler(c *echo.Context) error {
	var req loginRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	session, err := s.authSvc.Login(c.Request().Context(), req.WorkspaceID, req.Email, req.Passphrase)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// refreshHandler handles POST /v1/auth/refresh. The presented refresh token
// is revoked and a rotated pair is returned.
func (s *Server) refreshHandler(c *echo.Context) error {
	var req refreshRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	session, err := s.authSvc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

func (s *Server) bootstrapAllowed(c *echo.Context) bool {
	if s.cfg.BootstrapToken != "" {
		presented := c.Request().Header.Get("x-bootstrap-token")
		if presented != "" && subtle.ConstantTimeCompare([]byte(presented), []byte(s.cfg.BootstrapToken)) == 1 {
			return true
		}
	}
	if s.cfg.BootstrapAllowLoopback {
		host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
		if err != nil {
			host = c.Request().RemoteAddr
		}
		if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
			return true
		}
	}
	return false
}
