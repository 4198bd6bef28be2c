package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps a single catchup replay. A client further behind than
// this gets a catchup.overflow frame and reloads the page over REST.
const catchupLimit = 200

// listenTimeout bounds the LISTEN round trip when a channel gains its first
// local subscriber.
const listenTimeout = 10 * time.Second

// CatchupEvent is one persisted event row replayed to a reconnecting client.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier loads persisted events for replay. Implemented by
// EventServiceAdapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// channelListener is the slice of NotifyListener the manager drives. Nil
// until SetListener; a manager without one delivers only local broadcasts.
type channelListener interface {
	Listen(ctx context.Context, channel string) error
	Unlisten(ctx context.Context, channel string) error
}

// channelState tracks one channel's local subscribers. LISTEN is issued
// under mu before the first subscriber is admitted, so a client never holds
// a confirmed subscription on a channel the process is not listening on.
// When the last subscriber leaves, the state is retired (dead=true) and
// removed from the manager's map; a concurrent subscriber that raced onto
// the retired state retries against a fresh one.
//
// fanout is an immutable snapshot of subs, refreshed on every membership
// change. Broadcast reads it without taking mu, which matters because the
// NOTIFY receive loop both executes LISTEN commands and broadcasts: if it
// needed mu it could wait behind a subscriber that holds mu while its
// LISTEN command waits on that same loop.
type channelState struct {
	mu        sync.Mutex
	subs      map[string]*client
	fanout    atomic.Pointer[[]*client]
	listening bool
	dead      bool
}

// refreshFanout rebuilds the broadcast snapshot. Caller holds mu.
func (st *channelState) refreshFanout() {
	targets := make([]*client, 0, len(st.subs))
	for _, c := range st.subs {
		targets = append(targets, c)
	}
	st.fanout.Store(&targets)
}

// client is one WebSocket consumer. joined is touched only by the read-loop
// goroutine that owns the connection.
type client struct {
	id     string
	sock   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	joined map[string]bool
}

// ConnectionManager fans NOTIFY traffic out to the WebSocket clients of one
// process. Cross-pod distribution happens in PostgreSQL; each pod's manager
// only tracks its own sockets.
type ConnectionManager struct {
	mu       sync.RWMutex // guards clients and channels
	clients  map[string]*client
	channels map[string]*channelState

	listenerMu sync.RWMutex
	listener   channelListener

	catchup      CatchupQuerier
	writeTimeout time.Duration
}

// NewConnectionManager creates a manager. The catchup querier may be nil in
// deployments without event persistence; subscribe then skips replay.
func NewConnectionManager(catchup CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		clients:      make(map[string]*client),
		channels:     make(map[string]*channelState),
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NOTIFY listener. Called once at startup, after both
// sides exist.
func (m *ConnectionManager) SetListener(l channelListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// validChannel reports whether clients may subscribe to the named channel:
// one of the global fan-out channels or a per-session channel.
func validChannel(name string) bool {
	switch name {
	case GlobalSessionsChannel, GlobalAlertsChannel, GlobalApprovalsChannel:
		return true
	}
	return strings.HasPrefix(name, "session:") && len(name) > len("session:")
}

// HandleConnection owns one WebSocket from upgrade to close. Called by the
// HTTP handler; blocks until the peer disconnects.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, sock *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &client{
		id:     uuid.New().String(),
		sock:   sock,
		ctx:    ctx,
		cancel: cancel,
		joined: make(map[string]bool),
	}

	m.admit(c)
	defer m.retire(c)

	m.sendFrame(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.id,
	})

	for {
		_, data, err := sock.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.id, "error", err)
			continue
		}
		m.dispatch(ctx, c, &msg)
	}
}

func (m *ConnectionManager) dispatch(ctx context.Context, c *client, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe", "unsubscribe", "catchup":
		if !validChannel(msg.Channel) {
			m.sendFrame(c, map[string]string{
				"type":    "error",
				"message": fmt.Sprintf("channel is required for %s and must be a session or global channel", msg.Action),
			})
			return
		}
	}

	switch msg.Action {
	case "subscribe":
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.sendFrame(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendFrame(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Replay everything so a late subscriber starts complete.
		m.replay(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.LastEventID == nil {
			m.sendFrame(c, map[string]string{
				"type":    "error",
				"message": "last_event_id is required for catchup",
			})
			return
		}
		m.replay(ctx, c, msg.Channel, *msg.LastEventID)

	case "ping":
		m.sendFrame(c, map[string]string{"type": "pong"})

	default:
		m.sendFrame(c, map[string]string{
			"type":    "error",
			"message": fmt.Sprintf("unknown action: %q", msg.Action),
		})
	}
}

// state returns the live channelState for a channel, creating it if absent.
func (m *ConnectionManager) state(channel string) *channelState {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.channels[channel]
	if !ok {
		st = &channelState{subs: make(map[string]*client)}
		m.channels[channel] = st
	}
	return st
}

// subscribe admits the client to a channel, issuing LISTEN first when the
// channel has no other local subscriber. Holding st.mu across the LISTEN
// round trip means concurrent subscribers to the same channel wait for it;
// none of them can observe subscription.confirmed without an active LISTEN.
func (m *ConnectionManager) subscribe(c *client, channel string) error {
	for {
		st := m.state(channel)
		st.mu.Lock()
		if st.dead {
			st.mu.Unlock()
			continue
		}

		if !st.listening {
			if err := m.startListen(channel); err != nil {
				empty := len(st.subs) == 0
				st.mu.Unlock()
				if empty {
					m.discardIfEmpty(channel, st)
				}
				slog.Error("Failed to listen on channel", "channel", channel, "error", err)
				return err
			}
			st.listening = true
		}

		st.subs[c.id] = c
		st.refreshFanout()
		st.mu.Unlock()
		c.joined[channel] = true
		return nil
	}
}

// unsubscribe drops the client from a channel and stops the LISTEN when the
// last local subscriber leaves. The emptied state is retired so concurrent
// subscribers re-create a fresh one and re-issue LISTEN; the NotifyListener
// refcounts channels, so an interleaved stop/start pair nets out correctly.
func (m *ConnectionManager) unsubscribe(c *client, channel string) {
	delete(c.joined, channel)

	m.mu.Lock()
	st, ok := m.channels[channel]
	if !ok {
		m.mu.Unlock()
		return
	}
	st.mu.Lock()
	delete(st.subs, c.id)
	st.refreshFanout()
	stopping := st.listening && len(st.subs) == 0
	if len(st.subs) == 0 {
		st.dead = true
		delete(m.channels, channel)
	}
	st.mu.Unlock()
	m.mu.Unlock()

	if stopping {
		m.stopListen(channel)
	}
}

// discardIfEmpty retires a state that never gained a subscriber, so a failed
// first LISTEN does not leave a permanent non-listening entry behind.
func (m *ConnectionManager) discardIfEmpty(channel string, st *channelState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.channels[channel] != st {
		return
	}
	st.mu.Lock()
	if len(st.subs) == 0 && !st.listening {
		st.dead = true
		delete(m.channels, channel)
	}
	st.mu.Unlock()
}

func (m *ConnectionManager) startListen(channel string) error {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
	defer cancel()
	return l.Listen(ctx, channel)
}

func (m *ConnectionManager) stopListen(channel string) {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	// Off the read loop; the listener's refcount keeps an interleaved
	// resubscribe safe regardless of when this lands.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
		defer cancel()
		if err := l.Unlisten(ctx, channel); err != nil {
			slog.Error("Failed to stop listening on channel", "channel", channel, "error", err)
		}
	}()
}

// Broadcast delivers an event payload to every local subscriber of a channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.mu.RLock()
	st := m.channels[channel]
	m.mu.RUnlock()
	if st == nil {
		return
	}

	ptr := st.fanout.Load()
	if ptr == nil {
		return
	}
	for _, c := range *ptr {
		if err := m.send(c, event); err != nil {
			slog.Warn("Dropping undeliverable event",
				"connection_id", c.id, "channel", channel, "error", err)
		}
	}
}

// ActiveConnections returns the number of open WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// subscriberCount returns a channel's local subscriber count. Unexported;
// tests poll it instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.mu.RLock()
	st := m.channels[channel]
	m.mu.RUnlock()
	if st == nil {
		return 0
	}
	ptr := st.fanout.Load()
	if ptr == nil {
		return 0
	}
	return len(*ptr)
}

// replay streams persisted events after sinceID to one client, injecting
// db_event_id from the row ID (the stored payload does not carry it; it is
// only added to the NOTIFY copy at publish time). When more than
// catchupLimit rows are behind, the client gets catchup.overflow and is
// expected to reload over REST instead of paginating.
func (m *ConnectionManager) replay(ctx context.Context, c *client, channel string, sinceID int) {
	if m.catchup == nil {
		return
	}

	rows, err := m.catchup.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	overflow := len(rows) > catchupLimit
	if overflow {
		rows = rows[:catchupLimit]
	}

	for _, row := range rows {
		row.Payload["db_event_id"] = row.ID
		payload, err := json.Marshal(row.Payload)
		if err != nil {
			continue
		}
		if err := m.send(c, payload); err != nil {
			slog.Warn("Failed to send catchup event", "connection_id", c.id, "error", err)
			return
		}
	}

	if overflow {
		m.sendFrame(c, map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

func (m *ConnectionManager) admit(c *client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[c.id] = c
}

// retire drops the client and all its subscriptions after its read loop ends.
func (m *ConnectionManager) retire(c *client) {
	for channel := range c.joined {
		m.unsubscribe(c, channel)
	}

	m.mu.Lock()
	delete(m.clients, c.id)
	m.mu.Unlock()

	c.cancel()
	_ = c.sock.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendFrame(c *client, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket frame", "connection_id", c.id, "error", err)
		return
	}
	if err := m.send(c, data); err != nil {
		slog.Warn("Failed to send WebSocket frame", "connection_id", c.id, "error", err)
	}
}

func (m *ConnectionManager) send(c *client, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.sock.Write(writeCtx, websocket.MessageText, data)
}
