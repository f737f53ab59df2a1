// Package lease serializes agent turns on work items. A lease row is keyed
// (workspace, work_item_type, work_item_id); it is live while expires_at is
// in the future. Run-typed work items are never leased.
package lease

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/workitemlease"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/ids"
)

// Work item types that take leases.
const (
	ItemApproval   = "approval"
	ItemExperiment = "experiment"
	ItemIncident   = "incident"
)

var (
	// ErrHeldByOther reports a live lease owned by a different agent.
	ErrHeldByOther = errors.New("lease held by another agent")
	// ErrExpired reports a lease past its expiry.
	ErrExpired = errors.New("lease expired")
	// ErrAbsent reports that no lease row exists for the work item.
	ErrAbsent = errors.New("no lease for work item")
	// ErrLockUnavailable reports NOWAIT lock contention on the lease row.
	ErrLockUnavailable = errors.New("lease row lock unavailable")
)

// ValidItemType reports whether t is a leasable work item type.
func ValidItemType(t string) bool {
	switch t {
	case ItemApproval, ItemExperiment, ItemIncident:
		return true
	}
	return false
}

// Lease is the caller-facing view of a lease row.
type Lease struct {
	LeaseID      string    `json:"lease_id"`
	WorkspaceID  string    `json:"workspace_id"`
	WorkItemType string    `json:"work_item_type"`
	WorkItemID   string    `json:"work_item_id"`
	AgentID      string    `json:"agent_id"`
	ExpiresAt    time.Time `json:"expires_at"`
	Version      int       `json:"version"`
}

// Manager owns the work_item_leases table.
type Manager struct {
	db *database.Client
}

// NewManager creates a lease manager.
func NewManager(db *database.Client) *Manager {
	return &Manager{db: db}
}

// Acquire claims or renews the lease for an agent. An expired lease or one
// already held by the caller is re-claimed with version+1; a live lease held
// by another agent returns ErrHeldByOther.
func (m *Manager) Acquire(ctx context.Context, workspaceID, itemType, itemID, agentID string, ttl time.Duration) (*Lease, error) {
	if !ValidItemType(itemType) {
		return nil, fmt.Errorf("work item type %q is not leasable", itemType)
	}

	tx, err := m.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin lease transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	expires := now.Add(ttl)

	row, err := tx.WorkItemLease.Query().
		Where(
			workitemlease.WorkspaceID(workspaceID),
			workitemlease.WorkItemTypeEQ(workitemlease.WorkItemType(itemType)),
			workitemlease.WorkItemID(itemID),
		).
		ForUpdate().
		Only(ctx)
	switch {
	case err == nil:
		if row.AgentID != agentID && row.ExpiresAt.After(now) {
			err = ErrHeldByOther
			return nil, err
		}
		row, err = tx.WorkItemLease.UpdateOneID(row.ID).
			SetAgentID(agentID).
			SetExpiresAt(expires).
			SetVersion(row.Version + 1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to re-claim lease: %w", err)
		}
	case ent.IsNotFound(err):
		row, err = tx.WorkItemLease.Create().
			SetID(ids.Lease()).
			SetWorkspaceID(workspaceID).
			SetWorkItemType(workitemlease.WorkItemType(itemType)).
			SetWorkItemID(itemID).
			SetAgentID(agentID).
			SetExpiresAt(expires).
			Save(ctx)
		if err != nil {
			if database.IsUniqueViolation(err) {
				err = ErrHeldByOther
			}
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to query lease: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lease: %w", err)
	}
	return fromEnt(row), nil
}

// Verify locks the lease row FOR UPDATE NOWAIT inside the caller's
// transaction and checks the caller holds it live. Lock conflicts surface
// as ErrLockUnavailable immediately — the write path never waits on agent
// thrash.
func (m *Manager) Verify(ctx context.Context, tx Querier, workspaceID, itemType, itemID, agentID string) (*Lease, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT lease_id, agent_id, expires_at, version FROM work_item_leases
		 WHERE workspace_id = $1 AND work_item_type = $2 AND work_item_id = $3
		 FOR UPDATE NOWAIT`,
		workspaceID, itemType, itemID,
	)
	if err != nil {
		if database.IsLockNotAvailable(err) {
			return nil, ErrLockUnavailable
		}
		return nil, fmt.Errorf("failed to lock lease row: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		// The 55P03 refusal can surface here instead of at QueryContext,
		// depending on when the driver reads the command completion.
		if err := rows.Err(); err != nil {
			if database.IsLockNotAvailable(err) {
				return nil, ErrLockUnavailable
			}
			return nil, fmt.Errorf("failed to read lease row: %w", err)
		}
		return nil, ErrAbsent
	}

	lease := &Lease{WorkspaceID: workspaceID, WorkItemType: itemType, WorkItemID: itemID}
	if err := rows.Scan(&lease.LeaseID, &lease.AgentID, &lease.ExpiresAt, &lease.Version); err != nil {
		return nil, fmt.Errorf("failed to scan lease row: %w", err)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("failed to close lease rows: %w", err)
	}

	if lease.AgentID != agentID {
		return nil, ErrHeldByOther
	}
	if !lease.ExpiresAt.After(time.Now()) {
		return nil, ErrExpired
	}
	return lease, nil
}

// Delete removes the lease row inside the caller's transaction. Used when a
// terminal intent resolves the work item.
func (m *Manager) Delete(ctx context.Context, tx Querier, workspaceID, itemType, itemID string) error {
	_, err := tx.ExecContext(ctx,
		`DELETE FROM work_item_leases
		 WHERE workspace_id = $1 AND work_item_type = $2 AND work_item_id = $3`,
		workspaceID, itemType, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete lease: %w", err)
	}
	return nil
}

// Release removes the lease if the caller holds it. Releasing an absent
// lease is a no-op; releasing another agent's live lease is refused.
func (m *Manager) Release(ctx context.Context, workspaceID, itemType, itemID, agentID string) error {
	row, err := m.db.WorkItemLease.Query().
		Where(
			workitemlease.WorkspaceID(workspaceID),
			workitemlease.WorkItemTypeEQ(workitemlease.WorkItemType(itemType)),
			workitemlease.WorkItemID(itemID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to query lease: %w", err)
	}
	if row.AgentID != agentID && row.ExpiresAt.After(time.Now()) {
		return ErrHeldByOther
	}
	if err := m.db.WorkItemLease.DeleteOneID(row.ID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to release lease: %w", err)
	}
	return nil
}

// Get returns the current lease row for a work item, live or not.
func (m *Manager) Get(ctx context.Context, workspaceID, itemType, itemID string) (*Lease, error) {
	row, err := m.db.WorkItemLease.Query().
		Where(
			workitemlease.WorkspaceID(workspaceID),
			workitemlease.WorkItemTypeEQ(workitemlease.WorkItemType(itemType)),
			workitemlease.WorkItemID(itemID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrAbsent
		}
		return nil, fmt.Errorf("failed to query lease: %w", err)
	}
	return fromEnt(row), nil
}

// PurgeExpired deletes leases whose expiry predates the grace cutoff.
// Called by the maintenance worker.
func (m *Manager) PurgeExpired(ctx context.Context, grace time.Duration) (int, error) {
	cutoff := time.Now().Add(-grace)
	n, err := m.db.WorkItemLease.Delete().
		Where(workitemlease.ExpiresAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired leases: %w", err)
	}
	return n, nil
}

// Querier is the transactional surface Verify and Delete need. *sql.Tx and
// *ent.Tx (execquery feature) both satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func fromEnt(row *ent.WorkItemLease) *Lease {
	return &Lease{
		LeaseID:      row.ID,
		WorkspaceID:  row.WorkspaceID,
		WorkItemType: string(row.WorkItemType),
		WorkItemID:   row.WorkItemID,
		AgentID:      row.AgentID,
		ExpiresAt:    row.ExpiresAt,
		Version:      row.Version,
	}
}
