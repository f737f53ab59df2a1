package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

type requestApprovalRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	RoomID string `json:"room_id,omitempty"`
	RunID  string `json:"run_id,omitempty"`
}

type approvalDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject hold"`
}

// requestApprovalHandler handles POST /v1/approvals.
func (s *Server) requestApprovalHandler(c *echo.Context) error {
	var req requestApprovalRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.approvals.Request(c.Request().Context(), identityFrom(c), req.Title, req.RoomID, req.RunID)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// listApprovalsHandler handles GET /v1/approvals?status=&limit=.
func (s *Server) listApprovalsHandler(c *echo.Context) error {
	rows, err := s.approvals.List(
		c.Request().Context(),
		identityFrom(c).WorkspaceID,
		c.QueryParam("status"),
		queryInt(c, "limit", 0),
	)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"approvals": rows})
}

// decideApprovalHandler handles POST /v1/approvals/:id/decision. A decision
// recorded without a verifiable lease carries the X-Lease-Warning header.
func (s *Server) decideApprovalHandler(c *echo.Context) error {
	var req approvalDecisionRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	result, err := s.approvals.Decide(c.Request().Context(), identityFrom(c), c.Param("id"), req.Decision)
	if err != nil {
		return s.respondReason(c, err)
	}

	if result.LeaseWarning {
		leaseWarningHeader(c)
	}
	return c.JSON(http.StatusOK, result.Approval)
}
