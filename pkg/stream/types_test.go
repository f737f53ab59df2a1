package stream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/missionloop/groundcontrol/pkg/eventlog"
)

func TestChannelStream(t *testing.T) {
	tests := []struct {
		channel    string
		streamType string
		streamID   string
		ok         bool
	}{
		{"room:rm_1", eventlog.StreamRoom, "rm_1", true},
		{"workspace:ws_1", eventlog.StreamWorkspace, "ws_1", true},
		{"room:", "", "", false},
		{"workspace:", "", "", false},
		{"thread:th_1", "", "", false},
		{"rm_1", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.channel, func(t *testing.T) {
			streamType, streamID, ok := channelStream(tt.channel)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.streamType, streamType)
			assert.Equal(t, tt.streamID, streamID)
		})
	}
}

func TestRedact(t *testing.T) {
	payload := json.RawMessage(`{"k":"v"}`)
	base := func() *eventlog.Envelope {
		return &eventlog.Envelope{
			EventID:        "ev_1",
			EventType:      eventlog.TypeMessageCreated,
			RedactionLevel: eventlog.RedactionNone,
			PolicyContext:  payload,
			ModelContext:   payload,
			Display:        payload,
			Data:           payload,
		}
	}

	t.Run("none passes through untouched", func(t *testing.T) {
		env := base()
		assert.Same(t, env, Redact(env))
	})

	t.Run("partial withholds data and model context", func(t *testing.T) {
		env := base()
		env.RedactionLevel = eventlog.RedactionPartial
		out := Redact(env)
		assert.Nil(t, out.Data)
		assert.Nil(t, out.ModelContext)
		assert.Equal(t, payload, out.PolicyContext)
		assert.Equal(t, payload, out.Display)
	})

	t.Run("full withholds all payload documents", func(t *testing.T) {
		env := base()
		env.RedactionLevel = eventlog.RedactionFull
		out := Redact(env)
		assert.Nil(t, out.Data)
		assert.Nil(t, out.ModelContext)
		assert.Nil(t, out.PolicyContext)
		assert.Nil(t, out.Display)
	})

	t.Run("contains_secrets withholds even at level none", func(t *testing.T) {
		env := base()
		env.ContainsSecrets = true
		out := Redact(env)
		assert.Nil(t, out.Data)
		assert.Nil(t, out.ModelContext)
		assert.Nil(t, out.PolicyContext)
		assert.Equal(t, payload, out.Display)
	})

	t.Run("identity and ordering fields survive", func(t *testing.T) {
		env := base()
		env.RedactionLevel = eventlog.RedactionFull
		env.StreamSeq = 7
		out := Redact(env)
		assert.Equal(t, "ev_1", out.EventID)
		assert.Equal(t, int64(7), out.StreamSeq)
		// The original envelope is never mutated.
		assert.Equal(t, payload, env.Data)
	})
}
