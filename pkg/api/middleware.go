package api

import (
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/services"
)

// identityKey stores the resolved auth.Identity in the echo context.
const identityKey = "identity"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// requestMetrics records the request counter and latency histogram keyed by
// the route template, never the concrete path.
func (s *Server) requestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := 0
			if resp, unwrapErr := echo.UnwrapResponse(c.Response()); unwrapErr == nil {
				status = resp.Status
			}
			s.metrics.RecordHTTPRequest(
				c.Request().Method,
				path,
				strconv.Itoa(status),
				time.Since(start),
			)
			return err
		}
	}
}

// requireIdentity resolves the bearer credential and checks it against the
// x-workspace-id header. The resolved identity lands in the context under
// identityKey.
func (s *Server) requireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		bearer, ok := bearerToken(c)
		if !ok {
			return s.respondReason(c, services.Reason(reasonMissingBearerToken, "authorization bearer token is required"))
		}

		identity, err := s.authSvc.ResolveBearer(c.Request().Context(), bearer)
		if err != nil {
			return s.respondReason(c, services.Reason(reasonInvalidToken, "bearer token is invalid or revoked"))
		}

		workspaceID := c.Request().Header.Get("x-workspace-id")
		if workspaceID == "" {
			return s.respondReason(c, services.Reason(services.ReasonMissingWorkspaceHeader, "x-workspace-id header is required"))
		}
		if workspaceID != identity.WorkspaceID {
			return s.respondReason(c, services.Reason(services.ReasonUnauthorizedWorkspace, "principal does not belong to the requested workspace"))
		}

		c.Set(identityKey, identity)
		return next(c)
	}
}

// identityFrom returns the identity resolved by requireIdentity. The zero
// value means the middleware did not run.
func identityFrom(c *echo.Context) auth.Identity {
	if id, ok := c.Get(identityKey).(auth.Identity); ok {
		return id
	}
	return auth.Identity{}
}

func bearerToken(c *echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
