package eventlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionloop/groundcontrol/pkg/database"
	testdb "github.com/missionloop/groundcontrol/test/database"
)

// disableAppendOnlyGuard lets a test tamper with the log directly.
func disableAppendOnlyGuard(t *testing.T, client *database.Client) {
	t.Helper()
	_, err := client.DB().ExecContext(context.Background(),
		"ALTER TABLE evt_events DISABLE TRIGGER evt_events_append_only")
	require.NoError(t, err)
}

func TestVerify(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	seed := func(room string, n int) []*Envelope {
		t.Helper()
		out := make([]*Envelope, 0, n)
		for i := 0; i < n; i++ {
			env, err := appendCommitted(t, client, store, messageDraft("ws_v", room))
			require.NoError(t, err)
			out = append(out, env)
		}
		return out
	}

	t.Run("untampered log is valid", func(t *testing.T) {
		events := seed("room_ok", 3)

		result, err := store.Verify(ctx, StreamRoom, "room_ok", 0, 100)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Nil(t, result.FirstMismatch)
		assert.Equal(t, 3, result.Checked)
		assert.Equal(t, events[2].EventHash, result.LastEventHash)
	})

	t.Run("empty stream is valid", func(t *testing.T) {
		result, err := store.Verify(ctx, StreamRoom, "room_empty", 0, 100)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Zero(t, result.Checked)
	})

	t.Run("mutated data reports event_hash_mismatch", func(t *testing.T) {
		events := seed("room_tamper", 3)
		disableAppendOnlyGuard(t, client)

		_, err := client.DB().ExecContext(ctx,
			`UPDATE evt_events SET data = '{"text":"tampered"}' WHERE event_id = $1`,
			events[1].EventID)
		require.NoError(t, err)

		result, err := store.Verify(ctx, StreamRoom, "room_tamper", 0, 100)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		require.NotNil(t, result.FirstMismatch)
		assert.Equal(t, int64(2), result.FirstMismatch.StreamSeq)
		assert.Equal(t, MismatchEventHash, result.FirstMismatch.Kind)
		assert.Equal(t, 1, result.Checked)
	})

	t.Run("broken prev pointer reports prev_hash_mismatch", func(t *testing.T) {
		events := seed("room_prev", 2)
		disableAppendOnlyGuard(t, client)

		_, err := client.DB().ExecContext(ctx,
			`UPDATE evt_events SET prev_event_hash = 'bogus' WHERE event_id = $1`,
			events[1].EventID)
		require.NoError(t, err)

		result, err := store.Verify(ctx, StreamRoom, "room_prev", 0, 100)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		require.NotNil(t, result.FirstMismatch)
		assert.Equal(t, int64(2), result.FirstMismatch.StreamSeq)
		assert.Equal(t, MismatchPrevHash, result.FirstMismatch.Kind)
	})

	t.Run("null hash reports event_hash_missing", func(t *testing.T) {
		events := seed("room_null", 1)
		disableAppendOnlyGuard(t, client)

		_, err := client.DB().ExecContext(ctx,
			`UPDATE evt_events SET event_hash = NULL WHERE event_id = $1`,
			events[0].EventID)
		require.NoError(t, err)

		result, err := store.Verify(ctx, StreamRoom, "room_null", 0, 100)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		require.NotNil(t, result.FirstMismatch)
		assert.Equal(t, MismatchMissing, result.FirstMismatch.Kind)
	})

	t.Run("limit bounds the scan", func(t *testing.T) {
		seed("room_limit", 5)

		result, err := store.Verify(ctx, StreamRoom, "room_limit", 0, 2)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 2, result.Checked)
	})

	t.Run("resumes mid-stream from seq", func(t *testing.T) {
		seed("room_resume", 5)

		result, err := store.Verify(ctx, StreamRoom, "room_resume", 2, 100)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 3, result.Checked)
	})
}
