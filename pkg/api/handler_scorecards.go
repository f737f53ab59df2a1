package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/models"
)

type recordScorecardRequest struct {
	Subject string               `json:"subject" validate:"required,max=200"`
	RunID   string               `json:"run_id,omitempty"`
	Metrics []models.ScoreMetric `json:"metrics" validate:"required,min=1,dive"`
}

type recordLessonRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Body        string `json:"body" validate:"required"`
	ScorecardID string `json:"scorecard_id,omitempty"`
	IncidentID  string `json:"incident_id,omitempty"`
}

type recordObservationRequest struct {
	SkillName string `json:"skill_name" validate:"required,max=200"`
	Outcome   string `json:"outcome" validate:"required,oneof=success failure"`
}

// recordScorecardHandler handles POST /v1/scorecards. Metric validation
// (value range, weight, unique keys) lives in the service.
func (s *Server) recordScorecardHandler(c *echo.Context) error {
	var req recordScorecardRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.scorecards.Record(c.Request().Context(), identityFrom(c), req.Subject, req.RunID, req.Metrics)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// listScorecardsHandler handles GET /v1/scorecards?run_id=&limit=.
func (s *Server) listScorecardsHandler(c *echo.Context) error {
	rows, err := s.scorecards.ListScorecards(
		c.Request().Context(),
		identityFrom(c).WorkspaceID,
		c.QueryParam("run_id"),
		queryInt(c, "limit", 0),
	)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"scorecards": rows})
}

// recordLessonHandler handles POST /v1/lessons.
func (s *Server) recordLessonHandler(c *echo.Context) error {
	var req recordLessonRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.scorecards.RecordLesson(c.Request().Context(), identityFrom(c), req.Title, req.Body, req.ScorecardID, req.IncidentID)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// recordObservationHandler handles POST /v1/skills/observations.
func (s *Server) recordObservationHandler(c *echo.Context) error {
	var req recordObservationRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.scorecards.RecordObservation(c.Request().Context(), identityFrom(c), req.SkillName, req.Outcome)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// listSkillsHandler handles GET /v1/skills?agent_id=.
func (s *Server) listSkillsHandler(c *echo.Context) error {
	rows, err := s.scorecards.ListSkills(
		c.Request().Context(),
		identityFrom(c).WorkspaceID,
		c.QueryParam("agent_id"),
	)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"skills": rows})
}
