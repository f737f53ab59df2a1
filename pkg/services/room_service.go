package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/missionloop/groundcontrol/ent"
	entevent "github.com/missionloop/groundcontrol/ent/event"
	"github.com/missionloop/groundcontrol/ent/room"
	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/database"
	"github.com/missionloop/groundcontrol/pkg/eventlog"
	"github.com/missionloop/groundcontrol/pkg/ids"
	"github.com/missionloop/groundcontrol/pkg/projector"
)

// RoomService records room and thread creation and serves the room catchup
// page.
type RoomService struct {
	*recorder
}

// NewRoomService creates the room act recorder.
func NewRoomService(db *database.Client, store *eventlog.Store, reg *projector.Registry, logger *slog.Logger) *RoomService {
	return &RoomService{recorder: newRecorder(db, store, reg, logger)}
}

// CreateRoom appends room.created and returns the projected room.
func (s *RoomService) CreateRoom(ctx context.Context, identity auth.Identity, title string) (*ent.Room, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}

	roomID := ids.Room()
	data, err := json.Marshal(map[string]any{"title": title})
	if err != nil {
		return nil, fmt.Errorf("failed to encode room payload: %w", err)
	}

	_, err = s.record(ctx, eventlog.Draft{
		EventType:        eventlog.TypeRoomCreated,
		WorkspaceID:      identity.WorkspaceID,
		RoomID:           roomID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamRoom,
		StreamID:         roomID,
		Data:             data,
	})
	if err != nil {
		return nil, err
	}

	row, err := s.db.Room.Get(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back room: %w", err)
	}
	return row, nil
}

// CreateThread appends thread.created under an existing room.
func (s *RoomService) CreateThread(ctx context.Context, identity auth.Identity, roomID string) (*ent.Thread, error) {
	actor, err := s.resolveActor(ctx, identity)
	if err != nil {
		return nil, err
	}

	roomRow, err := s.db.Room.Query().
		Where(room.ID(roomID), room.WorkspaceID(identity.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, Reason(ReasonNotFound, "room not found").WithDetail("room_id", roomID)
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	threadID := ids.Thread()
	_, err = s.record(ctx, eventlog.Draft{
		EventType:        eventlog.TypeThreadCreated,
		WorkspaceID:      identity.WorkspaceID,
		RoomID:           roomRow.ID,
		ThreadID:         threadID,
		ActorType:        actor.Type,
		ActorID:          actor.ID,
		ActorPrincipalID: actor.PrincipalID,
		StreamType:       eventlog.StreamRoom,
		StreamID:         roomRow.ID,
	})
	if err != nil {
		return nil, err
	}

	row, err := s.db.Thread.Get(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back thread: %w", err)
	}
	return row, nil
}

// CatchupPage is one page of a room's event history.
type CatchupPage struct {
	Events  []*eventlog.Envelope `json:"events"`
	NextSeq int64                `json:"next_seq"`
}

// Catchup returns the room's events after from_seq, capped at limit, for
// clients resuming a stream subscription.
func (s *RoomService) Catchup(ctx context.Context, workspaceID, roomID string, fromSeq int64, limit int) (*CatchupPage, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	exists, err := s.db.Room.Query().
		Where(room.ID(roomID), room.WorkspaceID(workspaceID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check room: %w", err)
	}
	if !exists {
		return nil, Reason(ReasonNotFound, "room not found").WithDetail("room_id", roomID)
	}

	rows, err := s.db.Event.Query().
		Where(
			entevent.StreamTypeEQ(entevent.StreamTypeRoom),
			entevent.StreamID(roomID),
			entevent.StreamSeqGT(fromSeq),
		).
		Order(ent.Asc(entevent.FieldStreamSeq)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load room events: %w", err)
	}

	page := &CatchupPage{Events: make([]*eventlog.Envelope, 0, len(rows)), NextSeq: fromSeq}
	for _, row := range rows {
		env := eventlog.FromEnt(row)
		page.Events = append(page.Events, env)
		page.NextSeq = env.StreamSeq
	}
	return page, nil
}
