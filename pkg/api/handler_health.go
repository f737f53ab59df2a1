package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/database"
)

// healthResponse is the GET /healthz body.
type healthResponse struct {
	Status   string                 `json:"status"`
	Database *database.HealthStatus `json:"database"`
}

// healthHandler handles GET /healthz. It checks only the database: this is
// the restart signal for the orchestrator, and external collaborators being
// down must not bounce the process.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &healthResponse{
			Status:   "unhealthy",
			Database: dbHealth,
		})
	}

	return c.JSON(http.StatusOK, &healthResponse{
		Status:   "healthy",
		Database: dbHealth,
	})
}
