package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/services"
)

// pipelineHandler handles GET /v1/pipeline?limit=. One consistent snapshot
// of the six board stages for the caller's workspace.
func (s *Server) pipelineHandler(c *echo.Context) error {
	board, err := s.pipeline.Board(
		c.Request().Context(),
		identityFrom(c).WorkspaceID,
		queryInt(c, "limit", 0),
	)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, board)
}

// auditVerifyHandler handles GET /v1/audit/verify?stream_type=&stream_id=&from_seq=&limit=.
// Workspace streams verify the caller's own workspace; room streams any
// room id the caller names (the verifier reads hashes, not payloads).
func (s *Server) auditVerifyHandler(c *echo.Context) error {
	identity := identityFrom(c)

	streamType := c.QueryParam("stream_type")
	if streamType == "" {
		streamType = eventlog.StreamWorkspace
	}
	streamID := c.QueryParam("stream_id")

	switch streamType {
	case eventlog.StreamWorkspace:
		if streamID == "" {
			streamID = identity.WorkspaceID
		}
		if streamID != identity.WorkspaceID {
			return s.respondReason(c, services.Reason(services.ReasonUnauthorizedWorkspace, "cannot verify another workspace's stream"))
		}
	case eventlog.StreamRoom:
		if streamID == "" {
			return s.respondReason(c, services.Reason(services.ReasonMissingField, "stream_id is required for room streams").
				WithDetail("field", "stream_id"))
		}
	default:
		return s.respondReason(c, services.Reasonf(services.ReasonMissingField, "unknown stream_type %q", streamType).
			WithDetail("stream_type", streamType))
	}

	result, err := s.store.Verify(
		c.Request().Context(),
		streamType,
		streamID,
		queryInt64(c, "from_seq", 0),
		queryInt(c, "limit", 0),
	)
	if err != nil {
		return s.respondReason(c, err)
	}

	if !result.Valid {
		s.metrics.RecordAuditVerifyFailure()
		s.logger.Warn("audit verification failed",
			"stream_type", streamType,
			"stream_id", streamID,
			"checked", result.Checked)
	}
	return c.JSON(http.StatusOK, result)
}
