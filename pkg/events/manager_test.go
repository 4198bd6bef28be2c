package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier serves canned rows for replay tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []CatchupEvent
	for _, evt := range m.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeChannelListener records LISTEN/UNLISTEN requests and can fail them.
type fakeChannelListener struct {
	mu        sync.Mutex
	listens   []string
	unlistens []string
	fail      map[string]error
}

func (f *fakeChannelListener) Listen(_ context.Context, channel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail[channel]; err != nil {
		return err
	}
	f.listens = append(f.listens, channel)
	return nil
}

func (f *fakeChannelListener) Unlisten(_ context.Context, channel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unlistens = append(f.unlistens, channel)
	return nil
}

func (f *fakeChannelListener) unlistened() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.unlistens...)
}

// wsEnv bundles a manager with an httptest WebSocket endpoint.
type wsEnv struct {
	manager *ConnectionManager
	server  *httptest.Server
}

func newWSEnv(t *testing.T, catchup CatchupQuerier) *wsEnv {
	t.Helper()
	manager := NewConnectionManager(catchup, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })
	return &wsEnv{manager: manager, server: server}
}

// dial opens a socket and consumes the connection.established frame.
func (e *wsEnv) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+e.server.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	frame := readFrame(t, conn)
	require.Equal(t, "connection.established", frame["type"])
	require.NotEmpty(t, frame["connection_id"])
	return conn
}

func sendMsg(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var frame map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

// expectSilence asserts no frame arrives within the grace window.
func expectSilence(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(ctx)
	assert.Error(t, err, "expected no frame")
}

// subscribe sends a subscribe message and consumes the confirmation. LISTEN
// completes before the confirmation is written, so no settling wait is
// needed after this returns.
func (e *wsEnv) subscribe(t *testing.T, conn *websocket.Conn, channel string) {
	t.Helper()
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	frame := readFrame(t, conn)
	require.Equal(t, "subscription.confirmed", frame["type"])
	require.Equal(t, channel, frame["channel"])
}

func TestManagerSubscribeAndBroadcast(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})

	conn1 := env.dial(t)
	conn2 := env.dial(t)
	env.subscribe(t, conn1, "session:fanout")
	env.subscribe(t, conn2, "session:fanout")
	assert.Equal(t, 2, env.manager.ActiveConnections())

	payload, _ := json.Marshal(map[string]string{"type": "test", "data": "hello"})
	env.manager.Broadcast("session:fanout", payload)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		frame := readFrame(t, conn)
		assert.Equal(t, "test", frame["type"])
		assert.Equal(t, "hello", frame["data"])
	}
}

func TestManagerBroadcastIsolation(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})

	connA := env.dial(t)
	connB := env.dial(t)
	env.subscribe(t, connA, "session:a")
	env.subscribe(t, connB, "session:b")

	payload, _ := json.Marshal(map[string]string{"type": "test", "target": "a"})
	env.manager.Broadcast("session:a", payload)

	frame := readFrame(t, connA)
	assert.Equal(t, "a", frame["target"])
	expectSilence(t, connB)
}

func TestManagerBroadcastWithoutSubscribers(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		env.manager.Broadcast("session:nobody-home", payload)
	})
}

func TestManagerConcurrentBroadcast(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	conn := env.dial(t)
	env.subscribe(t, conn, "session:storm")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{"type": "storm", "idx": idx})
			env.manager.Broadcast("session:storm", payload)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		frame := readFrame(t, conn)
		assert.Equal(t, "storm", frame["type"])
	}
}

func TestManagerMultipleChannelsPerConnection(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	conn := env.dial(t)
	env.subscribe(t, conn, "session:first")
	env.subscribe(t, conn, "session:second")

	payload1, _ := json.Marshal(map[string]string{"type": "test", "from": "first"})
	env.manager.Broadcast("session:first", payload1)
	assert.Equal(t, "first", readFrame(t, conn)["from"])

	payload2, _ := json.Marshal(map[string]string{"type": "test", "from": "second"})
	env.manager.Broadcast("session:second", payload2)
	assert.Equal(t, "second", readFrame(t, conn)["from"])
}

func TestManagerUnsubscribeStopsDelivery(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	conn := env.dial(t)
	env.subscribe(t, conn, "session:leaving")

	sendMsg(t, conn, ClientMessage{Action: "unsubscribe", Channel: "session:leaving"})
	require.Eventually(t, func() bool {
		return env.manager.subscriberCount("session:leaving") == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "should-not-arrive"})
	env.manager.Broadcast("session:leaving", payload)
	expectSilence(t, conn)
}

func TestManagerPingPong(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	conn := env.dial(t)

	sendMsg(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readFrame(t, conn)["type"])
}

func TestManagerChannelValidation(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	conn := env.dial(t)

	// Empty and malformed channel names are rejected on every channel op.
	for _, msg := range []ClientMessage{
		{Action: "subscribe", Channel: ""},
		{Action: "unsubscribe", Channel: ""},
		{Action: "catchup", Channel: ""},
		{Action: "subscribe", Channel: "session:"},
		{Action: "subscribe", Channel: "random-noise"},
	} {
		sendMsg(t, conn, msg)
		frame := readFrame(t, conn)
		assert.Equal(t, "error", frame["type"], "message %+v", msg)
	}

	// The global channels are always subscribable.
	for _, channel := range []string{GlobalSessionsChannel, GlobalAlertsChannel, GlobalApprovalsChannel} {
		env.subscribe(t, conn, channel)
	}

	// Validation failures leave the connection usable.
	sendMsg(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readFrame(t, conn)["type"])
}

func TestManagerUnknownAction(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	conn := env.dial(t)

	sendMsg(t, conn, ClientMessage{Action: "teleport", Channel: "session:x"})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Contains(t, frame["message"], "unknown action")
}

func TestManagerSubscribeReplaysHistory(t *testing.T) {
	rows := []CatchupEvent{
		{ID: 10, Payload: map[string]interface{}{"type": EventTypeAgentEvent, "seq": float64(1)}},
		{ID: 11, Payload: map[string]interface{}{"type": EventTypeAgentEvent, "seq": float64(2)}},
		{ID: 12, Payload: map[string]interface{}{"type": EventTypeSessionStatus, "seq": float64(3)}},
	}
	env := newWSEnv(t, &mockCatchupQuerier{events: rows})
	conn := env.dial(t)
	env.subscribe(t, conn, "session:history")

	// Auto-replay delivers everything in order with db_event_id injected.
	for i := 0; i < 3; i++ {
		frame := readFrame(t, conn)
		assert.Equal(t, float64(i+1), frame["seq"])
		assert.Equal(t, float64(rows[i].ID), frame["db_event_id"])
	}

	// An explicit catchup from the newest id finds nothing.
	last := 12
	sendMsg(t, conn, ClientMessage{Action: "catchup", Channel: "session:history", LastEventID: &last})
	expectSilence(t, conn)
}

func TestManagerCatchupRequiresLastEventID(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	conn := env.dial(t)

	sendMsg(t, conn, ClientMessage{Action: "catchup", Channel: "session:x"})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Contains(t, frame["message"], "last_event_id")
}

func TestManagerCatchupOverflow(t *testing.T) {
	rows := make([]CatchupEvent, catchupLimit+5)
	for i := range rows {
		rows[i] = CatchupEvent{
			ID:      i + 1,
			Payload: map[string]interface{}{"type": "test", "seq": i},
		}
	}
	env := newWSEnv(t, &mockCatchupQuerier{events: rows})
	conn := env.dial(t)
	env.subscribe(t, conn, "session:overflow")

	// Auto-replay stops at the limit and flags the overflow.
	var overflow bool
	for i := 0; i < catchupLimit+5; i++ {
		frame := readFrame(t, conn)
		if frame["type"] == "catchup.overflow" {
			overflow = true
			assert.Equal(t, true, frame["has_more"])
			break
		}
	}
	assert.True(t, overflow, "expected catchup.overflow frame")
}

func TestManagerCatchupQueryFailure(t *testing.T) {
	// A failing replay query is logged, not fatal: the subscription stands
	// and the connection stays usable.
	env := newWSEnv(t, &mockCatchupQuerier{err: fmt.Errorf("database unreachable")})
	conn := env.dial(t)
	env.subscribe(t, conn, "session:flaky")

	last := 0
	sendMsg(t, conn, ClientMessage{Action: "catchup", Channel: "session:flaky", LastEventID: &last})

	sendMsg(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readFrame(t, conn)["type"])
	assert.Equal(t, 1, env.manager.subscriberCount("session:flaky"))
}

func TestManagerListenFailureRejectsSubscription(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	listener := &fakeChannelListener{fail: map[string]error{
		"session:cursed": fmt.Errorf("connection lost"),
	}}
	env.manager.SetListener(listener)

	conn := env.dial(t)

	// The cursed channel fails before any confirmation; nothing is admitted.
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "session:cursed"})
	frame := readFrame(t, conn)
	assert.Equal(t, "subscription.error", frame["type"])
	assert.Equal(t, "session:cursed", frame["channel"])
	assert.Equal(t, 0, env.manager.subscriberCount("session:cursed"))

	// Other channels are unaffected.
	env.subscribe(t, conn, "session:fine")
	assert.Equal(t, 1, env.manager.subscriberCount("session:fine"))
}

func TestManagerLastSubscriberStopsListen(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	listener := &fakeChannelListener{}
	env.manager.SetListener(listener)

	conn1 := env.dial(t)
	conn2 := env.dial(t)
	env.subscribe(t, conn1, "session:shared")
	env.subscribe(t, conn2, "session:shared")

	// First leaver does not stop the LISTEN.
	sendMsg(t, conn1, ClientMessage{Action: "unsubscribe", Channel: "session:shared"})
	require.Eventually(t, func() bool {
		return env.manager.subscriberCount("session:shared") == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, listener.unlistened())

	// Second leaver does.
	sendMsg(t, conn2, ClientMessage{Action: "unsubscribe", Channel: "session:shared"})
	require.Eventually(t, func() bool {
		return len(listener.unlistened()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"session:shared"}, listener.unlistened())
}

func TestManagerDisconnectCleansUp(t *testing.T) {
	env := newWSEnv(t, &mockCatchupQuerier{})
	listener := &fakeChannelListener{}
	env.manager.SetListener(listener)

	conn := env.dial(t)
	env.subscribe(t, conn, "session:doomed")
	assert.Equal(t, 1, env.manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return env.manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return len(listener.unlistened()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		env.manager.Broadcast("session:doomed", payload)
	})
}
