package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/services"
)

// rebuildProjectionsHandler handles POST /v1/admin/projections/rebuild.
// Truncates the caller's workspace projections and replays its events
// through the registry. Owner-only: agents and services never rebuild.
func (s *Server) rebuildProjectionsHandler(c *echo.Context) error {
	identity := identityFrom(c)
	if identity.PrincipalType != auth.PrincipalUser {
		return s.respondReason(c, services.Reason(reasonAdminForbidden, "projection rebuild requires the workspace owner"))
	}
	if s.projectors == nil {
		return s.respondReason(c, services.Reason(services.ReasonProjectionUnavailable, "projection registry is not available"))
	}

	applied, err := s.projectors.Rebuild(c.Request().Context(), identity.WorkspaceID)
	if err != nil {
		return s.respondReason(c, err)
	}

	s.logger.Info("projections rebuilt",
		"workspace_id", identity.WorkspaceID,
		"events_applied", applied)
	return c.JSON(http.StatusOK, map[string]any{
		"workspace_id":   identity.WorkspaceID,
		"events_applied": applied,
	})
}
