package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("postgres://test@localhost/test", manager)

	assert.NotNil(t, listener)
	assert.Equal(t, "postgres://test@localhost/test", listener.dsn)
	assert.NotNil(t, listener.refs)
	assert.Equal(t, manager, listener.sink)
}

func TestNotifyListenerWithoutConnection(t *testing.T) {
	// Before Start() there is no connection; Listen must fail loudly and
	// Unlisten must stay a no-op.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("postgres://test@localhost/test", manager)

	t.Run("listen fails", func(t *testing.T) {
		err := listener.Listen(t.Context(), "test-channel")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
		assert.False(t, listener.isListening("test-channel"))
	})

	t.Run("unlisten is a no-op", func(t *testing.T) {
		err := listener.Unlisten(t.Context(), "test-channel")
		assert.NoError(t, err)
	})
}

func TestNotifyListenerRefcounting(t *testing.T) {
	// Refcount transitions drive the wire commands; intermediate references
	// never touch the ops channel. Exercised here by driving the refcounts
	// directly: with running unset, a 0->1 transition would error out, so a
	// nil error proves no wire command was attempted.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("postgres://test@localhost/test", manager)
	listener.running.Store(true)

	listener.refMu.Lock()
	listener.refs["busy-channel"] = 2
	listener.refMu.Unlock()

	// 2 -> 3 and 3 -> 2: reference bookkeeping only.
	require.NoError(t, listener.Listen(t.Context(), "busy-channel"))
	assert.True(t, listener.isListening("busy-channel"))
	require.NoError(t, listener.Unlisten(t.Context(), "busy-channel"))
	assert.True(t, listener.isListening("busy-channel"))

	listener.refMu.Lock()
	n := listener.refs["busy-channel"]
	listener.refMu.Unlock()
	assert.Equal(t, 2, n)
}
