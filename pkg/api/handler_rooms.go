package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/stream"
)

type createRoomRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// createRoomHandler handles POST /v1/rooms.
func (s *Server) createRoomHandler(c *echo.Context) error {
	var req createRoomRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.rooms.CreateRoom(c.Request().Context(), identityFrom(c), req.Title)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// createThreadHandler handles POST /v1/rooms/:id/threads.
func (s *Server) createThreadHandler(c *echo.Context) error {
	row, err := s.rooms.CreateThread(c.Request().Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// roomEventsHandler handles GET /v1/rooms/:id/events?from_seq=&limit=, the
// paged catchup read. Every envelope passes through redaction before it
// leaves the process.
func (s *Server) roomEventsHandler(c *echo.Context) error {
	identity := identityFrom(c)
	fromSeq := queryInt64(c, "from_seq", 0)
	limit := queryInt(c, "limit", 0)

	page, err := s.rooms.Catchup(c.Request().Context(), identity.WorkspaceID, c.Param("id"), fromSeq, limit)
	if err != nil {
		return s.respondReason(c, err)
	}

	redacted := make([]*eventlog.Envelope, len(page.Events))
	for i, env := range page.Events {
		redacted[i] = stream.Redact(env)
	}
	page.Events = redacted
	return c.JSON(http.StatusOK, page)
}

// roomStreamHandler handles GET /v1/rooms/:id/events/stream, the SSE tail.
// The handler blocks until the client hangs up.
func (s *Server) roomStreamHandler(c *echo.Context) error {
	if s.tailer == nil {
		return s.respondReason(c, errStreamingUnavailable)
	}

	identity := identityFrom(c)
	roomID := c.Param("id")
	fromSeq := queryInt64(c, "from_seq", 0)

	// The tailer reads straight from the log, so room existence and
	// workspace scoping are checked up front.
	if _, err := s.rooms.Catchup(c.Request().Context(), identity.WorkspaceID, roomID, 0, 1); err != nil {
		return s.respondReason(c, err)
	}

	return s.tailer.TailRoom(c.Request().Context(), c.Response(), roomID, fromSeq)
}
