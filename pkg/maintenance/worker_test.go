package maintenance

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/ent/workitemlease"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/metrics"
	"github.com/missionloop/groundcontrol/pkg/projector"
	"github.com/missionloop/groundcontrol/pkg/ratelimit"
	testdb "github.com/missionloop/groundcontrol/test/database"
)

func TestWorkerSweep(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	store := eventlog.NewStore(db.Client)
	logger := slog.Default()
	reg := projector.NewRegistry(db, store, logger)
	m := metrics.New(prometheus.NewRegistry())
	reg.SetMetrics(m)
	leases := lease.NewManager(db)
	limiter := ratelimit.NewLimiter(ratelimit.Config{
		Messages:  ratelimit.Limit{PerMinute: 60, Burst: 10},
		Heartbeat: ratelimit.Limit{PerMinute: 6, Burst: 2},
	})
	t.Cleanup(limiter.Stop)

	// One lease expired beyond the grace window, one still live.
	require.NoError(t, db.WorkItemLease.Create().
		SetID(ids.Lease()).
		SetWorkspaceID("ws_maint").
		SetWorkItemType(workitemlease.WorkItemTypeApproval).
		SetWorkItemID("apr_stale").
		SetAgentID("agt_1").
		SetExpiresAt(time.Now().Add(-2*time.Hour)).
		Exec(ctx))
	require.NoError(t, db.WorkItemLease.Create().
		SetID(ids.Lease()).
		SetWorkspaceID("ws_maint").
		SetWorkItemType(workitemlease.WorkItemTypeApproval).
		SetWorkItemID("apr_live").
		SetAgentID("agt_1").
		SetExpiresAt(time.Now().Add(time.Hour)).
		Exec(ctx))

	// A dead letter whose projector no longer exists resolves on retry so
	// it stops cycling.
	require.NoError(t, db.DeadLetter.Create().
		SetID(ids.DeadLetter()).
		SetWorkspaceID("ws_maint").
		SetEventID("ev_ghost").
		SetProjector("retired_projector").
		SetError("no such reducer").
		SetCreatedAt(time.Now().UTC()).
		Exec(ctx))

	w := NewWorker(Config{
		Interval:        time.Hour,
		LeaseGrace:      time.Minute,
		DeadLetterBatch: 10,
	}, leases, reg, limiter, nil, m, logger)

	w.Sweep(ctx)

	count, err := db.WorkItemLease.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the live lease survives the purge")

	unresolved, err := reg.UnresolvedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, unresolved)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.DeadLettersUnresolved))
}

func TestWorkerLifecycle(t *testing.T) {
	db := testdb.NewTestClient(t)
	store := eventlog.NewStore(db.Client)
	logger := slog.Default()
	reg := projector.NewRegistry(db, store, logger)
	leases := lease.NewManager(db)
	limiter := ratelimit.NewLimiter(ratelimit.Config{
		Messages:  ratelimit.Limit{PerMinute: 60, Burst: 10},
		Heartbeat: ratelimit.Limit{PerMinute: 6, Burst: 2},
	})
	t.Cleanup(limiter.Stop)

	w := NewWorker(DefaultConfig(), leases, reg, limiter, nil, nil, logger)
	w.Start(context.Background())
	w.Start(context.Background()) // second Start is a no-op
	w.Stop()
	w.Stop() // second Stop is a no-op
}
