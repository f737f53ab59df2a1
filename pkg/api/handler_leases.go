package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/services"
)

type acquireLeaseRequest struct {
	AgentID    string `json:"agent_id" validate:"required"`
	TTLSeconds int    `json:"ttl_seconds,omitempty" validate:"omitempty,min=1,max=3600"`
}

type releaseLeaseRequest struct {
	AgentID string `json:"agent_id" validate:"required"`
}

// acquireLeaseHandler handles POST /v1/work-items/:type/:id/lease. Acquire
// doubles as renew: the current holder extends its expiry and bumps the
// version.
func (s *Server) acquireLeaseHandler(c *echo.Context) error {
	itemType := c.Param("type")
	if !lease.ValidItemType(itemType) {
		return s.respondReason(c, services.Reasonf(services.ReasonMissingField, "unknown work item type %q", itemType).
			WithDetail("work_item_type", itemType))
	}

	var req acquireLeaseRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	ttl := s.cfg.LeaseTTL
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}

	row, err := s.leases.Acquire(
		c.Request().Context(),
		identityFrom(c).WorkspaceID,
		itemType,
		c.Param("id"),
		req.AgentID,
		ttl,
	)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// releaseLeaseHandler handles DELETE /v1/work-items/:type/:id/lease.
// Releasing an absent lease succeeds; only the holder may release.
func (s *Server) releaseLeaseHandler(c *echo.Context) error {
	itemType := c.Param("type")
	if !lease.ValidItemType(itemType) {
		return s.respondReason(c, services.Reasonf(services.ReasonMissingField, "unknown work item type %q", itemType).
			WithDetail("work_item_type", itemType))
	}

	var req releaseLeaseRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	if err := s.leases.Release(
		c.Request().Context(),
		identityFrom(c).WorkspaceID,
		itemType,
		c.Param("id"),
		req.AgentID,
	); err != nil {
		return s.respondReason(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
