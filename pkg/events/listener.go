package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// broadcaster receives decoded NOTIFY payloads. Implemented by
// ConnectionManager.
type broadcaster interface {
	Broadcast(channel string, event []byte)
}

// notifyOp is one LISTEN or UNLISTEN executed by the run loop, the only
// goroutine allowed to touch the pgx connection. done is buffered so a
// caller that gives up on the result does not strand the loop.
type notifyOp struct {
	verb    string // "LISTEN" or "UNLISTEN"
	channel string
	done    chan error
}

// NotifyListener holds one dedicated PostgreSQL connection on LISTEN and
// fans received notifications into the local broadcaster.
//
// Channels are refcounted: Listen and Unlisten from different managerial
// paths may interleave freely and the wire-level LISTEN is issued only on
// the 0->1 transition, UNLISTEN only on 1->0. Ops are enqueued while
// holding refMu, so the order of wire commands matches the order of
// refcount transitions.
type NotifyListener struct {
	dsn  string
	sink broadcaster

	connMu sync.Mutex
	conn   *pgx.Conn

	refMu sync.Mutex
	refs  map[string]int

	ops     chan notifyOp
	running atomic.Bool

	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewNotifyListener creates a listener. dsn must point at the database the
// publishers NOTIFY on; LISTEN is database-level, not schema-level.
func NewNotifyListener(dsn string, sink broadcaster) *NotifyListener {
	return &NotifyListener{
		dsn:  dsn,
		sink: sink,
		refs: make(map[string]int),
		ops:  make(chan notifyOp, 16),
	}
}

// Start opens the dedicated connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.run(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Listen raises the channel's refcount, issuing the wire LISTEN when this is
// the first reference. On wire failure the reference is released again.
func (l *NotifyListener) Listen(ctx context.Context, channel string) error {
	if !l.running.Load() {
		return fmt.Errorf("notify connection not established")
	}

	l.refMu.Lock()
	defer l.refMu.Unlock()

	l.refs[channel]++
	if l.refs[channel] > 1 {
		return nil
	}
	if err := l.request(ctx, "LISTEN", channel); err != nil {
		delete(l.refs, channel)
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}
	return nil
}

// Unlisten drops one reference, issuing the wire UNLISTEN when the last
// reference goes away. Unknown channels are a no-op.
func (l *NotifyListener) Unlisten(ctx context.Context, channel string) error {
	if !l.running.Load() {
		return nil
	}

	l.refMu.Lock()
	defer l.refMu.Unlock()

	switch n := l.refs[channel]; {
	case n == 0:
		return nil
	case n > 1:
		l.refs[channel] = n - 1
		return nil
	}
	delete(l.refs, channel)
	if err := l.request(ctx, "UNLISTEN", channel); err != nil {
		return fmt.Errorf("UNLISTEN %s: %w", channel, err)
	}
	return nil
}

// isListening reports whether the channel holds at least one reference.
// Unexported; tests poll it instead of sleeping.
func (l *NotifyListener) isListening(channel string) bool {
	l.refMu.Lock()
	defer l.refMu.Unlock()
	return l.refs[channel] > 0
}

// request hands an op to the run loop and waits for its result. Called with
// refMu held, which keeps wire-command order aligned with refcount order.
func (l *NotifyListener) request(ctx context.Context, verb, channel string) error {
	op := notifyOp{verb: verb, channel: channel, done: make(chan error, 1)}
	select {
	case l.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-op.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run owns the pgx connection: it alternates between applying queued
// LISTEN/UNLISTEN ops and waiting briefly for notifications. active is the
// loop-local set of channels LISTENed on the current connection, used to
// restore them after a redial; it deliberately lives outside refMu so the
// loop never takes a lock a waiting requester holds.
func (l *NotifyListener) run(ctx context.Context) {
	active := make(map[string]bool)
	for {
		if ctx.Err() != nil {
			return
		}

		l.applyOps(ctx, active)

		conn := l.connection()
		if conn == nil {
			if !l.redial(ctx, active) {
				return
			}
			continue
		}

		// Short wait so queued ops are picked up promptly.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive failed", "error", err)
			l.dropConnection(ctx)
			continue
		}

		l.sink.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// applyOps drains queued LISTEN/UNLISTEN ops onto the connection.
func (l *NotifyListener) applyOps(ctx context.Context, active map[string]bool) {
	for {
		select {
		case op := <-l.ops:
			conn := l.connection()
			if conn == nil {
				op.done <- fmt.Errorf("notify connection not established")
				continue
			}
			_, err := conn.Exec(ctx, op.verb+" "+pgx.Identifier{op.channel}.Sanitize())
			if err == nil {
				if op.verb == "LISTEN" {
					active[op.channel] = true
				} else {
					delete(active, op.channel)
				}
			}
			op.done <- err
		default:
			return
		}
	}
}

func (l *NotifyListener) connection() *pgx.Conn {
	l.connMu.Lock()
	defer l.connMu.Unlock()
	return l.conn
}

func (l *NotifyListener) dropConnection(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

// redial reconnects with exponential backoff and restores every channel that
// was active on the lost connection. Returns false when ctx ends first.
func (l *NotifyListener) redial(ctx context.Context, active map[string]bool) bool {
	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.dsn)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		for channel := range active {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", channel, "error", err)
			}
		}

		l.connMu.Lock()
		l.conn = conn
		l.connMu.Unlock()

		slog.Info("NotifyListener reconnected")
		return true
	}
}

// Stop shuts the receive loop down before closing the connection, so the
// close never races a WaitForNotification in flight.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.dropConnection(ctx)
}
