package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

type startToolCallRequest struct {
	ToolName string `json:"tool_name" validate:"required,max=200"`
	RunID    string `json:"run_id,omitempty"`
	StepID   string `json:"step_id,omitempty"`
}

type toolCallResultRequest struct {
	Outcome   string `json:"outcome" validate:"required,oneof=succeeded failed"`
	ErrorCode string `json:"error_code,omitempty"`
}

// startToolCallHandler handles POST /v1/tool-calls.
func (s *Server) startToolCallHandler(c *echo.Context) error {
	var req startToolCallRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.toolCalls.Start(c.Request().Context(), identityFrom(c), req.ToolName, req.RunID, req.StepID)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// settleToolCallHandler handles POST /v1/tool-calls/:id/result.
func (s *Server) settleToolCallHandler(c *echo.Context) error {
	var req toolCallResultRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.toolCalls.Settle(c.Request().Context(), identityFrom(c), c.Param("id"), req.Outcome, req.ErrorCode)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, row)
}
