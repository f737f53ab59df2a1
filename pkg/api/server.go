// Package api is the HTTP surface: request identity, DTO validation, the
// reason-code error contract, and thin handlers over the service layer.
package api

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/capability"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/metrics"
	"github.com/missionloop/groundcontrol/pkg/projector"
	"github.com/missionloop/groundcontrol/pkg/secrets"
	"github.com/missionloop/groundcontrol/pkg/services"
	"github.com/missionloop/groundcontrol/pkg/stream"
)

// Config carries the API-layer settings main resolves from the environment.
type Config struct {
	// BootstrapToken guards POST /v1/auth/bootstrap. Empty disables the
	// token check (loopback guard may still apply).
	BootstrapToken string
	// BootstrapAllowLoopback admits bootstrap calls from loopback sources
	// without the token.
	BootstrapAllowLoopback bool
	// LeaseTTL is the default work item lease lifetime for acquire calls
	// that do not name one.
	LeaseTTL time.Duration
}

// Deps wires the server's collaborators.
type Deps struct {
	DB          *database.Client
	Store       *eventlog.Store
	Auth        *auth.Service
	Messages    *services.MessageService
	Rooms       *services.RoomService
	Runs        *services.RunService
	ToolCalls   *services.ToolCallService
	Artifacts   *services.ArtifactService
	Scorecards  *services.ScorecardService
	Approvals   *services.ApprovalService
	Incidents   *services.IncidentService
	Pipeline    *services.PipelineService
	Caps        *capability.Service
	Leases      *lease.Manager
	Vault       *secrets.Vault
	Projectors  *projector.Registry
	ConnManager *stream.ConnectionManager
	Tailer      *stream.Tailer
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Logger      *slog.Logger
}

// Server holds the handler dependencies.
type Server struct {
	cfg         Config
	dbClient    *database.Client
	store       *eventlog.Store
	authSvc     *auth.Service
	messages    *services.MessageService
	rooms       *services.RoomService
	runs        *services.RunService
	toolCalls   *services.ToolCallService
	artifacts   *services.ArtifactService
	scorecards  *services.ScorecardService
	approvals   *services.ApprovalService
	incidents   *services.IncidentService
	pipeline    *services.PipelineService
	caps        *capability.Service
	leases      *lease.Manager
	vault       *secrets.Vault
	projectors  *projector.Registry
	connManager *stream.ConnectionManager
	tailer      *stream.Tailer
	metrics     *metrics.Metrics
	gatherer    prometheus.Gatherer
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewServer creates the API server.
func NewServer(cfg Config, deps Deps) *Server {
	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = 5 * time.Minute
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:         cfg,
		dbClient:    deps.DB,
		store:       deps.Store,
		authSvc:     deps.Auth,
		messages:    deps.Messages,
		rooms:       deps.Rooms,
		runs:        deps.Runs,
		toolCalls:   deps.ToolCalls,
		artifacts:   deps.Artifacts,
		scorecards:  deps.Scorecards,
		approvals:   deps.Approvals,
		incidents:   deps.Incidents,
		pipeline:    deps.Pipeline,
		caps:        deps.Caps,
		leases:      deps.Leases,
		vault:       deps.Vault,
		projectors:  deps.Projectors,
		connManager: deps.ConnManager,
		tailer:      deps.Tailer,
		metrics:     deps.Metrics,
		gatherer:    deps.Gatherer,
		validate:    validator.New(),
		logger:      logger.With("component", "api"),
	}
}

// Register mounts every route on e. Unauthenticated surface: health,
// metrics, and the owner auth endpoints. Everything else rides behind the
// bearer + workspace-header middleware.
func (s *Server) Register(e *echo.Echo) {
	e.Use(securityHeaders())
	e.Use(s.requestMetrics())

	e.GET("/healthz", s.healthHandler)
	if s.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	e.POST("/v1/auth/bootstrap", s.bootstrapHandler)
	e.POST("/v1/auth/login", s.loginHandler)
	e.POST("/v1/auth/refresh", s.refreshHandler)

	v1 := e.Group("/v1", s.requireIdentity)

	v1.POST("/messages", s.intakeHandler)

	v1.POST("/rooms", s.createRoomHandler)
	v1.POST("/rooms/:id/threads", s.createThreadHandler)
	v1.GET("/rooms/:id/events", s.roomEventsHandler)
	v1.GET("/rooms/:id/events/stream", s.roomStreamHandler)

	v1.POST("/runs", s.createRunHandler)
	v1.GET("/runs", s.listRunsHandler)
	v1.GET("/runs/:id", s.getRunHandler)
	v1.POST("/runs/:id/status", s.runStatusHandler)
	v1.POST("/runs/:run_id/steps", s.createStepHandler)
	v1.POST("/steps/:id/status", s.stepStatusHandler)

	v1.POST("/tool-calls", s.startToolCallHandler)
	v1.POST("/tool-calls/:id/result", s.settleToolCallHandler)

	v1.POST("/artifacts", s.createArtifactHandler)

	v1.POST("/scorecards", s.recordScorecardHandler)
	v1.GET("/scorecards", s.listScorecardsHandler)
	v1.POST("/lessons", s.recordLessonHandler)
	v1.POST("/skills/observations", s.recordObservationHandler)
	v1.GET("/skills", s.listSkillsHandler)

	v1.POST("/approvals", s.requestApprovalHandler)
	v1.GET("/approvals", s.listApprovalsHandler)
	v1.POST("/approvals/:id/decision", s.decideApprovalHandler)

	v1.POST("/incidents", s.openIncidentHandler)
	v1.GET("/incidents", s.listIncidentsHandler)
	v1.POST("/incidents/:id/rca", s.incidentRCAHandler)
	v1.POST("/incidents/:id/learnings", s.incidentLearningHandler)
	v1.POST("/incidents/:id/close", s.closeIncidentHandler)

	v1.POST("/capabilities", s.grantCapabilityHandler)
	v1.POST("/capabilities/:id/revoke", s.revokeCapabilityHandler)

	v1.POST("/work-items/:type/:id/lease", s.acquireLeaseHandler)
	v1.DELETE("/work-items/:type/:id/lease", s.releaseLeaseHandler)

	v1.POST("/secrets", s.createSecretHandler)
	v1.GET("/secrets", s.listSecretsHandler)
	v1.POST("/secrets/:id/access", s.accessSecretHandler)

	v1.GET("/pipeline", s.pipelineHandler)
	v1.GET("/audit/verify", s.auditVerifyHandler)
	v1.GET("/ws", s.wsHandler)

	v1.POST("/admin/projections/rebuild", s.rebuildProjectionsHandler)
}

// bindAndValidate decodes the JSON body into req and runs the struct tags.
func (s *Server) bindAndValidate(c *echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return services.Reason(services.ReasonMissingField, "request body is not valid JSON")
	}
	if err := s.validate.Struct(req); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return services.Reason(services.ReasonInternalError, "request validation failed")
		}
		return validationReason(err)
	}
	return nil
}

// validationReason converts validator field errors into the wire contract.
func validationReason(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return services.Reason(services.ReasonMissingField, "invalid request body")
	}
	fe := verrs[0]
	re := services.Reasonf(services.ReasonMissingField, "field %s failed %s validation", fe.Field(), fe.Tag())
	return re.WithDetail("field", fe.Field())
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage.
func queryInt(c *echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func queryInt64(c *echo.Context, name string, fallback int64) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
