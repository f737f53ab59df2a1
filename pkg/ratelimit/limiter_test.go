package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/missionloop/groundcontrol/test/database"
)

func testConfig() Config {
	return Config{
		Messages:     Limit{PerMinute: 60, Burst: 2},
		Heartbeat:    Limit{PerMinute: 60, Burst: 1},
		IdleEviction: time.Minute,
	}
}

func TestLimiterAllow(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	t.Run("burst, then deny with retry hint", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			d := l.Allow("ws1", "agent1", ScopeMessages)
			assert.True(t, d.Allowed, "request %d should pass", i)
		}
		d := l.Allow("ws1", "agent1", ScopeMessages)
		assert.False(t, d.Allowed)
		assert.Equal(t, 1, d.RetryAfterSeconds)
	})

	t.Run("keys are independent", func(t *testing.T) {
		d := l.Allow("ws1", "agent2", ScopeMessages)
		assert.True(t, d.Allowed)

		// Same agent, different secondary key.
		d = l.Allow("ws1", "agent1", ScopeMessages, "exp42")
		assert.True(t, d.Allowed)
	})

	t.Run("heartbeat uses the tighter bucket", func(t *testing.T) {
		d := l.Allow("ws1", "agent3", ScopeHeartbeat)
		assert.True(t, d.Allowed)
		d = l.Allow("ws1", "agent3", ScopeHeartbeat)
		assert.False(t, d.Allowed)
	})
}

func TestLimiterSweep(t *testing.T) {
	cfg := testConfig()
	cfg.IdleEviction = time.Nanosecond
	l := NewLimiter(cfg)
	defer l.Stop()

	l.Allow("ws1", "agent1", ScopeMessages)
	time.Sleep(time.Millisecond)
	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 0, l.Sweep())
}

func TestStreaks(t *testing.T) {
	client := testdb.NewTestClient(t)
	streaks := NewStreaks(client)
	ctx := context.Background()

	t.Run("increment creates then bumps", func(t *testing.T) {
		n, err := streaks.Increment(ctx, "ws1", "agent1", ScopeMessages)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = streaks.Increment(ctx, "ws1", "agent1", ScopeMessages)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("reset zeroes", func(t *testing.T) {
		require.NoError(t, streaks.Reset(ctx, "ws1", "agent1", ScopeMessages))
		n, err := streaks.Get(ctx, "ws1", "agent1", ScopeMessages)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("get on missing row is zero", func(t *testing.T) {
		n, err := streaks.Get(ctx, "ws1", "agent_absent", ScopeMessages)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("async reset lands", func(t *testing.T) {
		_, err := streaks.Increment(ctx, "ws1", "agent2", ScopeMessages)
		require.NoError(t, err)

		streaks.ResetAsync("ws1", "agent2", ScopeMessages)
		require.Eventually(t, func() bool {
			n, err := streaks.Get(ctx, "ws1", "agent2", ScopeMessages)
			return err == nil && n == 0
		}, 2*time.Second, 20*time.Millisecond)
	})
}
