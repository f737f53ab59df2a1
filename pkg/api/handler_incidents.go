package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

type openIncidentRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Severity      string `json:"severity" validate:"required,oneof=low medium high critical"`
	RunID         string `json:"run_id,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

type incidentRCARequest struct {
	Summary string `json:"summary" validate:"required"`
}

type incidentLearningRequest struct {
	Summary string `json:"summary" validate:"required"`
}

// openIncidentHandler handles POST /v1/incidents.
func (s *Server) openIncidentHandler(c *echo.Context) error {
	var req openIncidentRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.incidents.Open(c.Request().Context(), identityFrom(c), req.Title, req.Severity, req.RunID, req.CorrelationID)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// listIncidentsHandler handles GET /v1/incidents?status=&limit=.
func (s *Server) listIncidentsHandler(c *echo.Context) error {
	rows, err := s.incidents.List(
		c.Request().Context(),
		identityFrom(c).WorkspaceID,
		c.QueryParam("status"),
		queryInt(c, "limit", 0),
	)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"incidents": rows})
}

// incidentRCAHandler handles POST /v1/incidents/:id/rca.
func (s *Server) incidentRCAHandler(c *echo.Context) error {
	var req incidentRCARequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.incidents.UpdateRCA(c.Request().Context(), identityFrom(c), c.Param("id"), req.Summary)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// incidentLearningHandler handles POST /v1/incidents/:id/learnings.
func (s *Server) incidentLearningHandler(c *echo.Context) error {
	var req incidentLearningRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.incidents.LogLearning(c.Request().Context(), identityFrom(c), c.Param("id"), req.Summary)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// closeIncidentHandler handles POST /v1/incidents/:id/close. Closing
// requires a recorded RCA and at least one learning.
func (s *Server) closeIncidentHandler(c *echo.Context) error {
	row, err := s.incidents.Close(c.Request().Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, row)
}
