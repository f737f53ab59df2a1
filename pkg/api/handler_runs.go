package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/pkg/services"
)

type createRunRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	RoomID        string `json:"room_id,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

type runStatusRequest struct {
	Status string             `json:"status" validate:"required,oneof=running succeeded failed"`
	Error  *services.RunError `json:"error,omitempty"`
}

type createStepRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type stepStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed failed"`
}

// runDetail is the GET /v1/runs/:id response.
type runDetail struct {
	Run   *ent.Run    `json:"run"`
	Steps []*ent.Step `json:"steps"`
}

// createRunHandler handles POST /v1/runs.
func (s *Server) createRunHandler(c *echo.Context) error {
	var req createRunRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.runs.CreateRun(c.Request().Context(), identityFrom(c), req.Title, req.RoomID, req.CorrelationID)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// listRunsHandler handles GET /v1/runs?status=&limit=.
func (s *Server) listRunsHandler(c *echo.Context) error {
	rows, err := s.runs.ListRuns(
		c.Request().Context(),
		identityFrom(c).WorkspaceID,
		c.QueryParam("status"),
		queryInt(c, "limit", 0),
	)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"runs": rows})
}

// getRunHandler handles GET /v1/runs/:id.
func (s *Server) getRunHandler(c *echo.Context) error {
	run, steps, err := s.runs.GetRun(c.Request().Context(), identityFrom(c).WorkspaceID, c.Param("id"))
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, &runDetail{Run: run, Steps: steps})
}

// runStatusHandler handles POST /v1/runs/:id/status.
func (s *Server) runStatusHandler(c *echo.Context) error {
	var req runStatusRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.runs.UpdateRunStatus(c.Request().Context(), identityFrom(c), c.Param("id"), req.Status, req.Error)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// createStepHandler handles POST /v1/runs/:run_id/steps.
func (s *Server) createStepHandler(c *echo.Context) error {
	var req createStepRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.runs.CreateStep(c.Request().Context(), identityFrom(c), c.Param("run_id"), req.Name)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// stepStatusHandler handles POST /v1/steps/:id/status.
func (s *Server) stepStatusHandler(c *echo.Context) error {
	var req stepStatusRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.runs.SettleStep(c.Request().Context(), identityFrom(c), c.Param("id"), req.Status)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, row)
}
