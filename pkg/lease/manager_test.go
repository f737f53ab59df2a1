package lease

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/missionloop/groundcontrol/test/database"
)

const ws = "ws_lease"

func TestAcquire(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client)
	ctx := context.Background()

	t.Run("claims a fresh lease", func(t *testing.T) {
		l, err := mgr.Acquire(ctx, ws, ItemApproval, "ap1", "agent_a", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "agent_a", l.AgentID)
		assert.Equal(t, 1, l.Version)
		assert.True(t, l.ExpiresAt.After(time.Now()))
	})

	t.Run("holder renews with version bump", func(t *testing.T) {
		l, err := mgr.Acquire(ctx, ws, ItemApproval, "ap1", "agent_a", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 2, l.Version)
	})

	t.Run("live lease refuses another agent", func(t *testing.T) {
		_, err := mgr.Acquire(ctx, ws, ItemApproval, "ap1", "agent_b", time.Minute)
		assert.True(t, errors.Is(err, ErrHeldByOther))
	})

	t.Run("expired lease is stolen with version bump", func(t *testing.T) {
		_, err := mgr.Acquire(ctx, ws, ItemIncident, "inc1", "agent_a", -time.Second)
		require.NoError(t, err)

		stolen, err := mgr.Acquire(ctx, ws, ItemIncident, "inc1", "agent_b", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "agent_b", stolen.AgentID)
		assert.Equal(t, 2, stolen.Version)
	})

	t.Run("runs are not leasable", func(t *testing.T) {
		_, err := mgr.Acquire(ctx, ws, "run", "run1", "agent_a", time.Minute)
		assert.Error(t, err)
	})
}

func TestVerify(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client)
	ctx := context.Background()

	_, err := mgr.Acquire(ctx, ws, ItemApproval, "ap1", "agent_a", time.Minute)
	require.NoError(t, err)

	inTx := func(t *testing.T, fn func(tx Querier) error) error {
		t.Helper()
		tx, err := client.DB().BeginTx(ctx, nil)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()
		return fn(tx)
	}

	t.Run("holder verifies", func(t *testing.T) {
		err := inTx(t, func(tx Querier) error {
			l, err := mgr.Verify(ctx, tx, ws, ItemApproval, "ap1", "agent_a")
			if err != nil {
				return err
			}
			assert.Equal(t, "agent_a", l.AgentID)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("non-holder is refused", func(t *testing.T) {
		err := inTx(t, func(tx Querier) error {
			_, err := mgr.Verify(ctx, tx, ws, ItemApproval, "ap1", "agent_b")
			return err
		})
		assert.True(t, errors.Is(err, ErrHeldByOther))
	})

	t.Run("absent lease is reported", func(t *testing.T) {
		err := inTx(t, func(tx Querier) error {
			_, err := mgr.Verify(ctx, tx, ws, ItemApproval, "ap_missing", "agent_a")
			return err
		})
		assert.True(t, errors.Is(err, ErrAbsent))
	})

	t.Run("expired lease is reported", func(t *testing.T) {
		_, err := mgr.Acquire(ctx, ws, ItemExperiment, "exp1", "agent_a", -time.Second)
		require.NoError(t, err)

		err = inTx(t, func(tx Querier) error {
			_, err := mgr.Verify(ctx, tx, ws, ItemExperiment, "exp1", "agent_a")
			return err
		})
		assert.True(t, errors.Is(err, ErrExpired))
	})

	t.Run("NOWAIT contention surfaces ErrLockUnavailable", func(t *testing.T) {
		holder, err := client.DB().BeginTx(ctx, nil)
		require.NoError(t, err)
		defer func() { _ = holder.Rollback() }()
		_, err = mgr.Verify(ctx, holder, ws, ItemApproval, "ap1", "agent_a")
		require.NoError(t, err)

		contender, err := client.DB().BeginTx(ctx, nil)
		require.NoError(t, err)
		defer func() { _ = contender.Rollback() }()
		_, err = mgr.Verify(ctx, contender, ws, ItemApproval, "ap1", "agent_b")
		assert.True(t, errors.Is(err, ErrLockUnavailable))
	})
}

func TestReleaseAndPurge(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client)
	ctx := context.Background()

	_, err := mgr.Acquire(ctx, ws, ItemApproval, "ap1", "agent_a", time.Minute)
	require.NoError(t, err)

	t.Run("only the holder may release a live lease", func(t *testing.T) {
		err := mgr.Release(ctx, ws, ItemApproval, "ap1", "agent_b")
		assert.True(t, errors.Is(err, ErrHeldByOther))

		require.NoError(t, mgr.Release(ctx, ws, ItemApproval, "ap1", "agent_a"))
		_, err = mgr.Get(ctx, ws, ItemApproval, "ap1")
		assert.True(t, errors.Is(err, ErrAbsent))
	})

	t.Run("release of an absent lease is a no-op", func(t *testing.T) {
		assert.NoError(t, mgr.Release(ctx, ws, ItemApproval, "ap1", "agent_a"))
	})

	t.Run("purge removes leases past the grace window", func(t *testing.T) {
		_, err := mgr.Acquire(ctx, ws, ItemIncident, "inc_old", "agent_a", -2*time.Hour)
		require.NoError(t, err)
		_, err = mgr.Acquire(ctx, ws, ItemIncident, "inc_live", "agent_a", time.Hour)
		require.NoError(t, err)

		n, err := mgr.PurgeExpired(ctx, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = mgr.Get(ctx, ws, ItemIncident, "inc_live")
		assert.NoError(t, err)
	})
}
