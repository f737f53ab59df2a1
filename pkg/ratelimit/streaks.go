package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/ratelimitstreak"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/ids"
)

// Streaks persists consecutive-429 counters per (workspace, agent, scope).
// Increments run under a row lock; resets happen asynchronously after a
// successful commit and are last-write-wins.
type Streaks struct {
	db *database.Client
}

// NewStreaks creates the streak store.
func NewStreaks(db *database.Client) *Streaks {
	return &Streaks{db: db}
}

// Increment bumps the counter under a row lock and returns the new value.
func (s *Streaks) Increment(ctx context.Context, workspaceID, agentID, scope string) (int, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin streak transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	row, err := tx.RateLimitStreak.Query().
		Where(
			ratelimitstreak.WorkspaceID(workspaceID),
			ratelimitstreak.AgentID(agentID),
			ratelimitstreak.Scope(scope),
		).
		ForUpdate().
		Only(ctx)

	var count int
	switch {
	case err == nil:
		count = row.Consecutive429 + 1
		if _, err = tx.RateLimitStreak.UpdateOneID(row.ID).
			SetConsecutive429(count).
			Save(ctx); err != nil {
			return 0, fmt.Errorf("failed to bump streak: %w", err)
		}
	case ent.IsNotFound(err):
		count = 1
		if _, err = tx.RateLimitStreak.Create().
			SetID(ids.Streak()).
			SetWorkspaceID(workspaceID).
			SetAgentID(agentID).
			SetScope(scope).
			SetConsecutive429(count).
			Save(ctx); err != nil {
			return 0, fmt.Errorf("failed to create streak row: %w", err)
		}
	default:
		return 0, fmt.Errorf("failed to query streak: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit streak: %w", err)
	}
	return count, nil
}

// Reset zeroes the counter. No-op when no row exists.
func (s *Streaks) Reset(ctx context.Context, workspaceID, agentID, scope string) error {
	_, err := s.db.RateLimitStreak.Update().
		Where(
			ratelimitstreak.WorkspaceID(workspaceID),
			ratelimitstreak.AgentID(agentID),
			ratelimitstreak.Scope(scope),
			ratelimitstreak.Consecutive429GT(0),
		).
		SetConsecutive429(0).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset streak: %w", err)
	}
	return nil
}

// ResetAsync resets in a detached goroutine; intake calls this after commit
// so the happy path never waits on the streak table.
func (s *Streaks) ResetAsync(workspaceID, agentID, scope string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Reset(ctx, workspaceID, agentID, scope); err != nil {
			slog.Warn("Failed to reset rate-limit streak",
				"workspace_id", workspaceID, "agent_id", agentID, "scope", scope, "error", err)
		}
	}()
}

// Get returns the current counter (zero when no row exists).
func (s *Streaks) Get(ctx context.Context, workspaceID, agentID, scope string) (int, error) {
	row, err := s.db.RateLimitStreak.Query().
		Where(
			ratelimitstreak.WorkspaceID(workspaceID),
			ratelimitstreak.AgentID(agentID),
			ratelimitstreak.Scope(scope),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query streak: %w", err)
	}
	return row.Consecutive429, nil
}
