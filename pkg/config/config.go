// Package config loads the process configuration from environment
// variables. Database settings live in pkg/database and are loaded
// separately; everything else the binary needs is here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/missionloop/groundcontrol/pkg/maintenance"
	"github.com/missionloop/groundcontrol/pkg/ratelimit"
	"github.com/missionloop/groundcontrol/pkg/secrets"
)

// Config carries everything main needs to wire the service.
type Config struct {
	// HTTPPort is the listen port for the API server.
	HTTPPort int
	// PodID identifies this instance in heartbeats and logs. Defaults to
	// the hostname.
	PodID string

	// SessionSecret signs owner session tokens. Required.
	SessionSecret []byte
	// BootstrapToken, when set, enables the one-shot owner bootstrap
	// endpoint.
	BootstrapToken string
	// BootstrapAllowLoopback restricts bootstrap to loopback callers when
	// false.
	BootstrapAllowLoopback bool

	// SecretsMasterKey encrypts vault entries. Nil disables the vault.
	SecretsMasterKey []byte

	// ArtifactHeadURL is the base URL for artifact existence probes.
	// Empty disables probing.
	ArtifactHeadURL string

	// RateLimits are the per-agent intake bucket settings.
	RateLimits ratelimit.Config

	// ClockSkew bounds how far in the past or future a client-supplied
	// occurrence timestamp may sit.
	ClockSkew time.Duration
	// LeaseTTL is the default work item lease lifetime.
	LeaseTTL time.Duration

	// StreamPollInterval is the SSE fallback poll cadence.
	StreamPollInterval time.Duration
	// StreamBatchLimit bounds one catchup or poll batch.
	StreamBatchLimit int

	// Maintenance tunes the background housekeeping worker.
	Maintenance maintenance.Config
}

// Load reads the configuration from the environment. Missing optional
// values fall back to the documented defaults; a missing or malformed
// required value is an error.
func Load() (Config, error) {
	port, err := intEnv("HTTP_PORT", 8080)
	if err != nil {
		return Config{}, err
	}

	secret := os.Getenv("AUTH_SESSION_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("AUTH_SESSION_SECRET is required")
	}

	masterKey, err := secrets.ParseMasterKey(os.Getenv("SECRETS_MASTER_KEY"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SECRETS_MASTER_KEY: %w", err)
	}

	limits, err := loadRateLimits()
	if err != nil {
		return Config{}, err
	}

	skewHours, err := intEnv("CLOCK_SKEW_HOURS", 48)
	if err != nil {
		return Config{}, err
	}
	leaseTTL, err := intEnv("LEASE_DEFAULT_TTL_SECONDS", 300)
	if err != nil {
		return Config{}, err
	}
	pollMs, err := intEnv("STREAM_POLL_INTERVAL_MS", 1000)
	if err != nil {
		return Config{}, err
	}
	batchLimit, err := intEnv("STREAM_BATCH_LIMIT", 100)
	if err != nil {
		return Config{}, err
	}
	maintSecs, err := intEnv("MAINTENANCE_INTERVAL_SECONDS", 60)
	if err != nil {
		return Config{}, err
	}

	maint := maintenance.DefaultConfig()
	maint.Interval = time.Duration(maintSecs) * time.Second

	return Config{
		HTTPPort:               port,
		PodID:                  podID(),
		SessionSecret:          []byte(secret),
		BootstrapToken:         os.Getenv("AUTH_BOOTSTRAP_TOKEN"),
		BootstrapAllowLoopback: boolEnv("AUTH_BOOTSTRAP_ALLOW_LOOPBACK", false),
		SecretsMasterKey:       masterKey,
		ArtifactHeadURL:        os.Getenv("ARTIFACT_STORAGE_HEAD_URL"),
		RateLimits:             limits,
		ClockSkew:              time.Duration(skewHours) * time.Hour,
		LeaseTTL:               time.Duration(leaseTTL) * time.Second,
		StreamPollInterval:     time.Duration(pollMs) * time.Millisecond,
		StreamBatchLimit:       batchLimit,
		Maintenance:            maint,
	}, nil
}

func loadRateLimits() (ratelimit.Config, error) {
	cfg := ratelimit.DefaultConfig()
	for _, v := range []struct {
		key string
		dst *int
	}{
		{"RATE_MESSAGES_PER_MIN", &cfg.Messages.PerMinute},
		{"RATE_MESSAGES_BURST", &cfg.Messages.Burst},
		{"RATE_HEARTBEAT_PER_MIN", &cfg.Heartbeat.PerMinute},
		{"RATE_HEARTBEAT_BURST", &cfg.Heartbeat.Burst},
	} {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return ratelimit.Config{}, fmt.Errorf("invalid %s: %q", v.key, raw)
		}
		*v.dst = n
	}
	return cfg, nil
}

func podID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

func intEnv(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, defaultVal bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultVal
	}
	return b
}
