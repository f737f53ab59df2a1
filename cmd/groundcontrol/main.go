// groundcontrol server — the event-sourced control plane for agent
// operations: message intake, capability delegation, projections, and the
// live stream surfaces.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/missionloop/groundcontrol/pkg/api"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/capability"
	"github.com/missionloop/groundcontrol/pkg/config"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/maintenance"
	"github.com/missionloop/groundcontrol/pkg/metrics"
	"github.com/missionloop/groundcontrol/pkg/projector"
	"github.com/missionloop/groundcontrol/pkg/ratelimit"
	"github.com/missionloop/groundcontrol/pkg/secrets"
	"github.com/missionloop/groundcontrol/pkg/services"
	"github.com/missionloop/groundcontrol/pkg/storage"
	"github.com/missionloop/groundcontrol/pkg/stream"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting groundcontrol",
		"http_port", cfg.HTTPPort,
		"pod_id", cfg.PodID)

	ctx := context.Background()

	// 1. Database (migrations run inside NewClient).
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Metrics.
	m := metrics.New(prometheus.DefaultRegisterer)

	// 3. Event log, projectors, and domain services.
	logger := slog.Default()
	store := eventlog.NewStore(dbClient.Client)
	reg := projector.NewRegistry(dbClient, store, logger)
	reg.SetMetrics(m)

	leases := lease.NewManager(dbClient)
	limiter := ratelimit.NewLimiter(cfg.RateLimits)
	defer limiter.Stop()
	streaks := ratelimit.NewStreaks(dbClient)

	var prober *storage.Prober
	if cfg.ArtifactHeadURL != "" {
		prober = storage.NewProber(cfg.ArtifactHeadURL, logger)
		m.RegisterProbeState(func() string { return prober.State().String() })
		slog.Info("Artifact prober enabled", "base_url", cfg.ArtifactHeadURL)
	} else {
		slog.Warn("ARTIFACT_STORAGE_HEAD_URL not set; artifact existence probing disabled")
	}

	authSvc := auth.NewService(dbClient, cfg.SessionSecret, logger)
	vault := secrets.NewVault(dbClient, store, cfg.SecretsMasterKey, logger)
	if !vault.Configured() {
		slog.Warn("SECRETS_MASTER_KEY not set; secrets vault disabled")
	}

	messageSvc := services.NewMessageService(dbClient, store, reg, leases, limiter, streaks, prober, logger)
	messageSvc.SetMetrics(m)
	messageSvc.SetClockSkew(cfg.ClockSkew)
	roomSvc := services.NewRoomService(dbClient, store, reg, logger)
	roomSvc.SetMetrics(m)
	runSvc := services.NewRunService(dbClient, store, reg, logger)
	runSvc.SetMetrics(m)
	toolCallSvc := services.NewToolCallService(dbClient, store, reg, logger)
	toolCallSvc.SetMetrics(m)
	artifactSvc := services.NewArtifactService(dbClient, store, reg, prober, logger)
	artifactSvc.SetMetrics(m)
	scorecardSvc := services.NewScorecardService(dbClient, store, reg, logger)
	scorecardSvc.SetMetrics(m)
	approvalSvc := services.NewApprovalService(dbClient, store, reg, leases, logger)
	approvalSvc.SetMetrics(m)
	incidentSvc := services.NewIncidentService(dbClient, store, reg, logger)
	incidentSvc.SetMetrics(m)
	pipelineSvc := services.NewPipelineService(dbClient)
	capSvc := capability.NewService(dbClient, store)
	messageSvc.SetCapabilities(capSvc)
	slog.Info("Services initialized")

	// 4. Streaming: connection manager, LISTEN connection, SSE tailer.
	source := stream.NewLogSource(dbClient)
	connManager := stream.NewConnectionManager(source, 10*time.Second)

	notifyListener := stream.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)

	tailer := stream.NewTailer(source, connManager, logger)
	tailer.SetPolling(cfg.StreamPollInterval, cfg.StreamBatchLimit)
	m.RegisterStreamSubscribers(connManager.ActiveConnections, connManager.ActiveWatchers)
	slog.Info("Streaming infrastructure initialized")

	// 5. Maintenance worker.
	worker := maintenance.NewWorker(cfg.Maintenance, leases, reg, limiter, authSvc, m, logger)
	worker.Start(ctx)
	defer worker.Stop()

	// 6. HTTP server.
	server := api.NewServer(api.Config{
		BootstrapToken:         cfg.BootstrapToken,
		BootstrapAllowLoopback: cfg.BootstrapAllowLoopback,
		LeaseTTL:               cfg.LeaseTTL,
	}, api.Deps{
		DB:          dbClient,
		Store:       store,
		Auth:        authSvc,
		Messages:    messageSvc,
		Rooms:       roomSvc,
		Runs:        runSvc,
		ToolCalls:   toolCallSvc,
		Artifacts:   artifactSvc,
		Scorecards:  scorecardSvc,
		Approvals:   approvalSvc,
		Incidents:   incidentSvc,
		Pipeline:    pipelineSvc,
		Caps:        capSvc,
		Leases:      leases,
		Vault:       vault,
		Projectors:  reg,
		ConnManager: connManager,
		Tailer:      tailer,
		Metrics:     m,
		Gatherer:    prometheus.DefaultGatherer,
		Logger:      logger,
	})

	e := echo.New()
	server.Register(e)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("groundcontrol started", "pod_id", cfg.PodID)

	// 7. Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: drain HTTP, then the deferred stops take down
	// the worker, the listener, the limiter, and the DB in reverse order.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
