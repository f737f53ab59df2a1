// Package ratelimit provides per-(workspace, agent, scope) token buckets
// and the persisted consecutive-429 streak counters behind them. Buckets
// are in-process; streaks live in the database so they survive restarts
// and feed operator dashboards.
package ratelimit

import (
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Scope names.
const (
	ScopeMessages  = "messages"
	ScopeHeartbeat = "heartbeat"
)

// Limit is one bucket configuration.
type Limit struct {
	PerMinute int
	Burst     int
}

// Config carries the bucket settings per scope.
type Config struct {
	Messages  Limit
	Heartbeat Limit
	// IdleEviction drops buckets not consumed from for this long.
	IdleEviction time.Duration
}

// DefaultConfig mirrors the documented environment defaults.
func DefaultConfig() Config {
	return Config{
		Messages:     Limit{PerMinute: 30, Burst: 10},
		Heartbeat:    Limit{PerMinute: 6, Burst: 2},
		IdleEviction: 10 * time.Minute,
	}
}

// Decision is the outcome of a bucket consumption attempt.
type Decision struct {
	Allowed           bool
	Scope             string
	RetryAfterSeconds int
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter is the in-process token bucket table. Keys combine workspace,
// agent, scope, and an optional secondary key (intent, experiment).
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	buckets map[string]*bucket

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket janitor.
func NewLimiter(cfg Config) *Limiter {
	if cfg.IdleEviction <= 0 {
		cfg.IdleEviction = 10 * time.Minute
	}
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		stopCh:  make(chan struct{}),
	}
	go l.janitor()
	return l
}

// Allow consumes one token from the bucket for the given key parts.
// The scope picks the configured rate; heartbeat gets the tighter bucket.
func (l *Limiter) Allow(workspaceID, agentID, scope string, secondary ...string) Decision {
	limit := l.cfg.Messages
	if scope == ScopeHeartbeat {
		limit = l.cfg.Heartbeat
	}

	key := strings.Join(append([]string{workspaceID, agentID, scope}, secondary...), "|")

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			limiter: rate.NewLimiter(rate.Limit(float64(limit.PerMinute)/60.0), limit.Burst),
		}
		l.buckets[key] = b
	}
	b.lastSeen = time.Now()
	limiter := b.limiter
	l.mu.Unlock()

	if limiter.Allow() {
		return Decision{Allowed: true, Scope: scope}
	}

	// Tokens refill at PerMinute/60 per second; one token is ready after
	// the reciprocal.
	retry := 1
	if limit.PerMinute > 0 {
		retry = int(math.Ceil(60.0 / float64(limit.PerMinute)))
	}
	return Decision{Allowed: false, Scope: scope, RetryAfterSeconds: retry}
}

// Sweep evicts buckets idle past the configured window and returns the
// count removed. The janitor calls this; the maintenance worker may too.
func (l *Limiter) Sweep() int {
	cutoff := time.Now().Add(-l.cfg.IdleEviction)
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Stop terminates the janitor goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *Limiter) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := l.Sweep(); n > 0 {
				slog.Debug("Evicted idle rate-limit buckets", "count", n)
			}
		case <-l.stopCh:
			return
		}
	}
}
