package projector

import (
	"context"
	"fmt"

	"github.com/missionloop/groundcontrol/ent"
	"github.com/missionloop/groundcontrol/ent/room"
	"github.com/missionloop/groundcontrol/ent/thread"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

// roomProjector maintains proj_rooms and proj_threads, including per-room
// and per-thread message counters.
type roomProjector struct{}

func (p *roomProjector) Name() string { return "rooms" }

func (p *roomProjector) Events() []string {
	return []string{
		eventlog.TypeRoomCreated,
		eventlog.TypeThreadCreated,
		eventlog.TypeMessageCreated,
	}
}

func (p *roomProjector) Apply(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	switch env.EventType {
	case eventlog.TypeRoomCreated:
		return p.applyRoomCreated(ctx, tx, env)
	case eventlog.TypeThreadCreated:
		return p.applyThreadCreated(ctx, tx, env)
	case eventlog.TypeMessageCreated:
		return p.applyMessageCreated(ctx, tx, env)
	}
	return nil
}

func (p *roomProjector) applyRoomCreated(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	if env.RoomID == "" {
		return badPayloadf(env.EventType, "missing room_id")
	}
	var data struct {
		Title string `json:"title"`
	}
	if len(env.Data) > 0 {
		_ = decodeData(env, &data)
	}
	err := tx.Room.Create().
		SetID(env.RoomID).
		SetWorkspaceID(env.WorkspaceID).
		SetTitle(data.Title).
		SetCorrelationID(env.CorrelationID).
		SetLastEventID(env.EventID).
		SetCreatedAt(env.RecordedAt).
		SetUpdatedAt(env.RecordedAt).
		OnConflictColumns(room.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert room: %w", err)
	}
	return nil
}

func (p *roomProjector) applyThreadCreated(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	if env.ThreadID == "" || env.RoomID == "" {
		return badPayloadf(env.EventType, "missing thread_id or room_id")
	}
	err := tx.Thread.Create().
		SetID(env.ThreadID).
		SetWorkspaceID(env.WorkspaceID).
		SetRoomID(env.RoomID).
		SetLastEventID(env.EventID).
		SetCreatedAt(env.RecordedAt).
		SetUpdatedAt(env.RecordedAt).
		OnConflictColumns(thread.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert thread: %w", err)
	}
	return nil
}

func (p *roomProjector) applyMessageCreated(ctx context.Context, tx *ent.Tx, env *eventlog.Envelope) error {
	if env.RoomID == "" {
		// Workspace-stream message; no room counter to bump.
		return nil
	}

	roomRow, err := tx.Room.Query().
		Where(room.ID(env.RoomID), room.WorkspaceID(env.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return badPayloadf(env.EventType, "room %s not projected", env.RoomID)
		}
		return fmt.Errorf("failed to load room: %w", err)
	}
	if roomRow.LastEventID == env.EventID {
		return nil // already absorbed
	}
	if err := tx.Room.UpdateOneID(env.RoomID).
		AddMessageCount(1).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to bump room counter: %w", err)
	}

	if env.ThreadID == "" {
		return nil
	}
	threadRow, err := tx.Thread.Query().
		Where(thread.ID(env.ThreadID), thread.WorkspaceID(env.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return badPayloadf(env.EventType, "thread %s not projected", env.ThreadID)
		}
		return fmt.Errorf("failed to load thread: %w", err)
	}
	if threadRow.LastEventID == env.EventID {
		return nil
	}
	if err := tx.Thread.UpdateOneID(env.ThreadID).
		AddMessageCount(1).
		SetLastEventID(env.EventID).
		SetUpdatedAt(env.RecordedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to bump thread counter: %w", err)
	}
	return nil
}
