// Package maintenance runs the periodic housekeeping sweeps: expired lease
// purge, dead-letter retry, rate-limit bucket sweep, and auth session
// pruning. All sweeps are idempotent and safe to run from multiple pods.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/metrics"
	"github.com/missionloop/groundcontrol/pkg/projector"
	"github.com/missionloop/groundcontrol/pkg/ratelimit"
)

// Config tunes the worker.
type Config struct {
	// Interval between sweep rounds.
	Interval time.Duration
	// LeaseGrace keeps expired leases visible for preemption audit before
	// the purge removes them.
	LeaseGrace time.Duration
	// DeadLetterBatch bounds one round of dead-letter retries.
	DeadLetterBatch int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Interval:        time.Minute,
		LeaseGrace:      time.Hour,
		DeadLetterBatch: 50,
	}
}

// Worker is the background housekeeping loop.
type Worker struct {
	cfg     Config
	leases  *lease.Manager
	reg     *projector.Registry
	limiter *ratelimit.Limiter
	authSvc *auth.Service
	metrics *metrics.Metrics
	logger  *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewWorker creates a worker over the given subsystems. authSvc and metrics
// may be nil; their sweeps are skipped.
func NewWorker(cfg Config, leases *lease.Manager, reg *projector.Registry, limiter *ratelimit.Limiter, authSvc *auth.Service, m *metrics.Metrics, logger *slog.Logger) *Worker {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.DeadLetterBatch <= 0 {
		cfg.DeadLetterBatch = 50
	}
	return &Worker{
		cfg:     cfg,
		leases:  leases,
		reg:     reg,
		limiter: limiter,
		authSvc: authSvc,
		metrics: m,
		logger:  logger,
	}
}

// Start launches the sweep loop. Idempotent.
func (w *Worker) Start(ctx context.Context) {
	if w.cancel != nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go w.run(ctx)

	w.logger.Info("maintenance worker started",
		slog.Duration("interval", w.cfg.Interval),
		slog.Duration("lease_grace", w.cfg.LeaseGrace))
}

// Stop signals the loop to exit and waits for it to finish.
func (w *Worker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
	w.logger.Info("maintenance worker stopped")
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)

	w.Sweep(ctx)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs one full housekeeping round. Exported so operators can force a
// round and tests can drive it without the ticker.
func (w *Worker) Sweep(ctx context.Context) {
	w.purgeLeases(ctx)
	w.retryDeadLetters(ctx)
	w.sweepBuckets()
	w.pruneSessions(ctx)
}

func (w *Worker) purgeLeases(ctx context.Context) {
	count, err := w.leases.PurgeExpired(ctx, w.cfg.LeaseGrace)
	if err != nil {
		w.logger.Error("maintenance: lease purge failed", slog.String("error", err.Error()))
		return
	}
	if count > 0 {
		w.logger.Info("maintenance: purged expired leases", slog.Int("count", count))
	}
}

func (w *Worker) retryDeadLetters(ctx context.Context) {
	resolved, err := w.reg.RetryDeadLetters(ctx, w.cfg.DeadLetterBatch)
	if err != nil {
		w.logger.Error("maintenance: dead-letter retry failed", slog.String("error", err.Error()))
	} else if resolved > 0 {
		w.logger.Info("maintenance: resolved dead letters", slog.Int("count", resolved))
	}

	unresolved, err := w.reg.UnresolvedCount(ctx)
	if err != nil {
		w.logger.Error("maintenance: dead-letter count failed", slog.String("error", err.Error()))
		return
	}
	w.metrics.SetDeadLettersUnresolved(unresolved)
}

func (w *Worker) sweepBuckets() {
	if count := w.limiter.Sweep(); count > 0 {
		w.logger.Debug("maintenance: swept idle rate-limit buckets", slog.Int("count", count))
	}
}

func (w *Worker) pruneSessions(ctx context.Context) {
	if w.authSvc == nil {
		return
	}
	count, err := w.authSvc.PruneSessions(ctx)
	if err != nil {
		w.logger.Error("maintenance: session prune failed", slog.String("error", err.Error()))
		return
	}
	if count > 0 {
		w.logger.Info("maintenance: pruned expired sessions", slog.Int("count", count))
	}
}
