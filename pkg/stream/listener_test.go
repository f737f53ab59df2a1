package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&mockSource{}, time.Second)
	listener := NewNotifyListener("host=localhost dbname=test", manager)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=test", listener.connString)
	assert.NotNil(t, listener.active)
}

func TestNotifyListener_WithoutConnection(t *testing.T) {
	// Without Start() there is no connection; Subscribe fails loudly,
	// Unsubscribe of a never-subscribed channel is a no-op.
	manager := NewConnectionManager(&mockSource{}, time.Second)
	listener := NewNotifyListener("host=localhost dbname=test", manager)

	t.Run("subscribe returns error", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "workspace:ws_1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), "workspace:ws_1")
		assert.NoError(t, err)
	})
}
