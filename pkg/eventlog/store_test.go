package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/pkg/database"
	testdb "github.com/missionloop/groundcontrol/test/database"
)

// appendCommitted runs Append in its own transaction and commits.
func appendCommitted(t *testing.T, client *database.Client, store *Store, d Draft) (*Envelope, error) {
	t.Helper()
	ctx := context.Background()

	tx, err := client.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	env, err := store.Append(ctx, tx, d)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	require.NoError(t, tx.Commit())
	return env, nil
}

func messageDraft(workspace, room string) Draft {
	return Draft{
		EventType:   TypeMessageCreated,
		WorkspaceID: workspace,
		RoomID:      room,
		ActorType:   ActorAgent,
		ActorID:     "agent_1",
		StreamType:  StreamRoom,
		StreamID:    room,
		Data:        json.RawMessage(`{"text":"hello"}`),
	}
}

func TestStoreAppend(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	t.Run("assigns dense sequence and chains hashes", func(t *testing.T) {
		room := "room_chain"
		var prev string
		for i := 1; i <= 3; i++ {
			env, err := appendCommitted(t, client, store, messageDraft("ws_1", room))
			require.NoError(t, err)
			assert.Equal(t, int64(i), env.StreamSeq)
			assert.Equal(t, prev, env.PrevEventHash)
			assert.Len(t, env.EventHash, 64)

			recomputed, err := env.ComputeHash()
			require.NoError(t, err)
			assert.Equal(t, env.EventHash, recomputed)
			prev = env.EventHash
		}
	})

	t.Run("defaults version zone redaction and correlation", func(t *testing.T) {
		env, err := appendCommitted(t, client, store, messageDraft("ws_1", "room_defaults"))
		require.NoError(t, err)
		assert.Equal(t, 1, env.EventVersion)
		assert.Equal(t, ZoneSandbox, env.Zone)
		assert.Equal(t, RedactionNone, env.RedactionLevel)
		assert.NotEmpty(t, env.CorrelationID)
		assert.False(t, env.RecordedAt.IsZero())
	})

	t.Run("stores payload in canonical form", func(t *testing.T) {
		d := messageDraft("ws_1", "room_canonical")
		d.Data = json.RawMessage(`{"b": 2, "a": 1}`)
		env, err := appendCommitted(t, client, store, d)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1,"b":2}`, string(env.Data))

		stored, err := store.ByID(ctx, env.EventID)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1,"b":2}`, string(stored.Data))
	})

	t.Run("rejects drafts missing required fields", func(t *testing.T) {
		d := messageDraft("ws_1", "room_invalid")
		d.ActorID = ""
		_, err := appendCommitted(t, client, store, d)
		assert.Error(t, err)
	})

	t.Run("duplicate idempotency key surfaces ErrIdempotencyConflict", func(t *testing.T) {
		d := messageDraft("ws_1", "room_idem")
		d.IdempotencyKey = "K1"
		first, err := appendCommitted(t, client, store, d)
		require.NoError(t, err)

		_, err = appendCommitted(t, client, store, d)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIdempotencyConflict))

		found, err := store.FindIdempotent(ctx, "ws_1", TypeMessageCreated, "K1")
		require.NoError(t, err)
		assert.Equal(t, first.EventID, found.EventID)
	})

	t.Run("concurrent appends to one stream stay dense", func(t *testing.T) {
		room := "room_concurrent"
		const writers = 8

		var wg sync.WaitGroup
		errCh := make(chan error, writers)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := appendCommitted(t, client, store, messageDraft("ws_1", room))
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)
		for err := range errCh {
			require.NoError(t, err)
		}

		envelopes, err := store.Range(ctx, StreamRoom, room, 0, 100)
		require.NoError(t, err)
		require.Len(t, envelopes, writers)
		for i, env := range envelopes {
			assert.Equal(t, int64(i+1), env.StreamSeq)
			if i > 0 {
				assert.Equal(t, envelopes[i-1].EventHash, env.PrevEventHash)
			}
		}
	})

	t.Run("append-only guard blocks updates", func(t *testing.T) {
		env, err := appendCommitted(t, client, store, messageDraft("ws_1", "room_guard"))
		require.NoError(t, err)

		_, err = client.DB().ExecContext(ctx,
			`UPDATE evt_events SET data = '{"text":"tampered"}' WHERE event_id = $1`, env.EventID)
		assert.Error(t, err)
	})
}

func TestStoreReads(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := appendCommitted(t, client, store, messageDraft("ws_reads", "room_r"))
		require.NoError(t, err)
	}

	t.Run("range resumes from cursor", func(t *testing.T) {
		envelopes, err := store.Range(ctx, StreamRoom, "room_r", 2, 10)
		require.NoError(t, err)
		require.Len(t, envelopes, 3)
		assert.Equal(t, int64(3), envelopes[0].StreamSeq)
	})

	t.Run("range honors limit", func(t *testing.T) {
		envelopes, err := store.Range(ctx, StreamRoom, "room_r", 0, 2)
		require.NoError(t, err)
		assert.Len(t, envelopes, 2)
	})

	t.Run("by workspace replays in recorded order", func(t *testing.T) {
		envelopes, err := store.ByWorkspace(ctx, "ws_reads", 0, 100)
		require.NoError(t, err)
		require.Len(t, envelopes, 5)
		for i := 1; i < len(envelopes); i++ {
			assert.False(t, envelopes[i].RecordedAt.Before(envelopes[i-1].RecordedAt))
		}
	})

	t.Run("find idempotent misses cleanly", func(t *testing.T) {
		_, err := store.FindIdempotent(ctx, "ws_reads", TypeMessageCreated, "absent")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
