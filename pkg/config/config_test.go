package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_SESSION_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, []byte("test-secret"), cfg.SessionSecret)
	assert.Empty(t, cfg.BootstrapToken)
	assert.False(t, cfg.BootstrapAllowLoopback)
	assert.Nil(t, cfg.SecretsMasterKey)
	assert.Empty(t, cfg.ArtifactHeadURL)
	assert.Equal(t, 30, cfg.RateLimits.Messages.PerMinute)
	assert.Equal(t, 10, cfg.RateLimits.Messages.Burst)
	assert.Equal(t, 6, cfg.RateLimits.Heartbeat.PerMinute)
	assert.Equal(t, 2, cfg.RateLimits.Heartbeat.Burst)
	assert.Equal(t, 48*time.Hour, cfg.ClockSkew)
	assert.Equal(t, 5*time.Minute, cfg.LeaseTTL)
	assert.Equal(t, time.Second, cfg.StreamPollInterval)
	assert.Equal(t, 100, cfg.StreamBatchLimit)
	assert.Equal(t, time.Minute, cfg.Maintenance.Interval)
	assert.NotEmpty(t, cfg.PodID)
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("AUTH_SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SESSION_SECRET")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_SESSION_SECRET", "s")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("POD_ID", "pod-7")
	t.Setenv("AUTH_BOOTSTRAP_TOKEN", "boot")
	t.Setenv("AUTH_BOOTSTRAP_ALLOW_LOOPBACK", "true")
	t.Setenv("ARTIFACT_STORAGE_HEAD_URL", "http://storage:9000")
	t.Setenv("RATE_MESSAGES_PER_MIN", "60")
	t.Setenv("RATE_HEARTBEAT_BURST", "4")
	t.Setenv("CLOCK_SKEW_HOURS", "24")
	t.Setenv("LEASE_DEFAULT_TTL_SECONDS", "120")
	t.Setenv("STREAM_POLL_INTERVAL_MS", "250")
	t.Setenv("STREAM_BATCH_LIMIT", "50")
	t.Setenv("MAINTENANCE_INTERVAL_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "pod-7", cfg.PodID)
	assert.Equal(t, "boot", cfg.BootstrapToken)
	assert.True(t, cfg.BootstrapAllowLoopback)
	assert.Equal(t, "http://storage:9000", cfg.ArtifactHeadURL)
	assert.Equal(t, 60, cfg.RateLimits.Messages.PerMinute)
	assert.Equal(t, 10, cfg.RateLimits.Messages.Burst)
	assert.Equal(t, 4, cfg.RateLimits.Heartbeat.Burst)
	assert.Equal(t, 24*time.Hour, cfg.ClockSkew)
	assert.Equal(t, 2*time.Minute, cfg.LeaseTTL)
	assert.Equal(t, 250*time.Millisecond, cfg.StreamPollInterval)
	assert.Equal(t, 50, cfg.StreamBatchLimit)
	assert.Equal(t, 30*time.Second, cfg.Maintenance.Interval)
}

func TestLoadMasterKey(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	t.Setenv("AUTH_SESSION_SECRET", "s")
	t.Setenv("SECRETS_MASTER_KEY", base64.StdEncoding.EncodeToString(key))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, key, cfg.SecretsMasterKey)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "HTTP_PORT", "not-a-number"},
		{"bad master key", "SECRETS_MASTER_KEY", "!!!"},
		{"short master key", "SECRETS_MASTER_KEY", base64.StdEncoding.EncodeToString([]byte("short"))},
		{"zero rate", "RATE_MESSAGES_PER_MIN", "0"},
		{"bad rate", "RATE_HEARTBEAT_PER_MIN", "ten"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUTH_SESSION_SECRET", "s")
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
