package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/services"
)

// Intake outcomes for the intake_requests_total counter.
const (
	intakeOutcomeAccepted = "accepted"
	intakeOutcomeReplay   = "replay"
)

// intakeHandler handles POST /v1/messages, the agent write path. The
// service runs the full ordered protocol; the handler only decodes the
// body, surfaces the lease warning header, and counts outcomes.
func (s *Server) intakeHandler(c *echo.Context) error {
	var req services.IntakeRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.RecordIntake(services.ReasonMissingField)
		return s.respondReason(c, services.Reason(services.ReasonMissingField, "request body is not valid JSON"))
	}

	result, err := s.messages.Intake(c.Request().Context(), identityFrom(c), req)
	if err != nil {
		s.metrics.RecordIntake(services.ReasonCode(err))
		return s.respondReason(c, err)
	}

	if result.LeaseWarning {
		leaseWarningHeader(c)
	}

	if result.IdempotentReplay {
		s.metrics.RecordIntake(intakeOutcomeReplay)
		return c.JSON(http.StatusOK, result)
	}

	s.metrics.RecordIntake(intakeOutcomeAccepted)
	return c.JSON(http.StatusCreated, result)
}
