package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/nocforge/nocforge/pkg/database"
	"github.com/nocforge/nocforge/pkg/services"
	testdb "github.com/nocforge/nocforge/test/database"
	"github.com/nocforge/nocforge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventsTestEnv holds all wired-up components for an integration test.
type eventsTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	sessionID    string // Pre-created Session row
	channel      string // session:<sessionID>
}

// setupEventsTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupEventsTest(t *testing.T) *eventsTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create the session the published events belong to
	sessionID := uuid.New().String()
	_, err := dbClient.Session.Create().
		SetID(sessionID).
		SetAgentType("triage").
		SetTriggerType("alert").
		SetTriggerID("alert-integration").
		Save(ctx)
	require.NoError(t, err)

	channel := SessionChannel(sessionID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &eventsTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		sessionID:    sessionID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *eventsTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the given channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *eventsTestEnv) subscribeAndWait(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the async LISTEN goroutine to complete on the NotifyListener's
	// dedicated connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Publish first event (agent thought)
	err := env.publisher.PublishAgentEvent(ctx, env.sessionID, AgentEventPayload{
		Type:      EventTypeAgentEvent,
		SessionID: env.sessionID,
		EventType: "thought",
		Content:   "first event",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Publish second event (tool call)
	err = env.publisher.PublishAgentEvent(ctx, env.sessionID, AgentEventPayload{
		Type:      EventTypeAgentEvent,
		SessionID: env.sessionID,
		EventType: "tool_call",
		ToolName:  "get_device_status",
		ToolArgs:  map[string]any{"device": "edge-rtr-01"},
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.sessionID, events[0].SessionID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeAgentEvent, events[0].Payload["type"])
	assert.Equal(t, "thought", events[0].Payload["event_type"])
	assert.Equal(t, "first event", events[0].Payload["content"])

	assert.Equal(t, "tool_call", events[1].Payload["event_type"])
	assert.Equal(t, "get_device_status", events[1].Payload["tool_name"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Publish transient event (alert status fan-out)
	err := env.publisher.PublishAlertStatus(ctx, AlertStatusPayload{
		Type:      EventTypeAlertStatus,
		AlertID:   "alert-transient",
		Status:    "processing",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Query DB across both channels: nothing should be persisted
	events, err := env.eventService.GetEventsSince(ctx, GlobalAlertsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t, env.channel)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishAgentEvent(ctx, env.sessionID, AgentEventPayload{
		Type:      EventTypeAgentEvent,
		SessionID: env.sessionID,
		EventType: "thought",
		Content:   "hello from publisher",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Read from WebSocket: the event arrives via pg_notify, listener, manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeAgentEvent, msg["type"])
	assert.Equal(t, "hello from publisher", msg["content"])
	assert.Equal(t, env.sessionID, msg["session_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_TransientAlertStatusDelivery(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Subscribe to the global alerts channel, wait for LISTEN
	conn := env.subscribeAndWait(t, GlobalAlertsChannel)

	// Publish transient event (no DB persistence)
	err := env.publisher.PublishAlertStatus(ctx, AlertStatusPayload{
		Type:      EventTypeAlertStatus,
		AlertID:   "alert-ws-1",
		Status:    "triaged",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Should arrive via WebSocket
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeAlertStatus, msg["type"])
	assert.Equal(t, "alert-ws-1", msg["alert_id"])
	assert.Equal(t, "triaged", msg["status"])

	// Verify nothing was persisted
	events, err := env.eventService.GetEventsSince(ctx, GlobalAlertsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted")
}

func TestIntegration_SessionStatusDualDelivery(t *testing.T) {
	// session.status goes to both the session channel (persistent) and the
	// global sessions channel (transient). Subscribers on each see one copy.
	env := setupEventsTest(t)
	ctx := context.Background()

	sessionConn := env.subscribeAndWait(t, env.channel)
	globalConn := env.subscribeAndWait(t, GlobalSessionsChannel)

	err := env.publisher.PublishSessionStatus(ctx, env.sessionID, SessionStatusPayload{
		Type:      EventTypeSessionStatus,
		SessionID: env.sessionID,
		AgentType: "triage",
		Status:    "completed",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Session channel copy carries db_event_id (persisted)
	msg := readJSONTimeout(t, sessionConn, 5*time.Second)
	assert.Equal(t, EventTypeSessionStatus, msg["type"])
	assert.Equal(t, "completed", msg["status"])
	assert.NotNil(t, msg["db_event_id"])

	// Global channel copy is transient
	msg = readJSONTimeout(t, globalConn, 5*time.Second)
	assert.Equal(t, EventTypeSessionStatus, msg["type"])
	assert.Equal(t, env.sessionID, msg["session_id"])
	assert.Nil(t, msg["db_event_id"])

	// Only the session-channel copy is persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeSessionStatus, events[0].Payload["type"])

	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalSessionsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents)
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishAgentEvent(ctx, env.sessionID, AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: env.sessionID,
			EventType: "thought",
			Content:   fmt.Sprintf("event %d", i),
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := int(allEvents[0].ID)

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe: auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeAgentEvent, msg["type"])
		assert.Equal(t, fmt.Sprintf("event %d", i), msg["content"])
	}

	// Explicit catchup from the first event's ID: only events 2 and 3 return
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, fmt.Sprintf("event %d", i), msg["content"])
	}

	// No more messages: verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}

func TestIntegration_OversizedEventTruncatedButRecoverable(t *testing.T) {
	// A payload over the NOTIFY limit arrives as a truncation envelope; the
	// full row is still available via catchup using db_event_id.
	env := setupEventsTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, env.channel)

	longContent := make([]byte, 9000)
	for i := range longContent {
		longContent[i] = 'z'
	}
	err := env.publisher.PublishAgentEvent(ctx, env.sessionID, AgentEventPayload{
		Type:      EventTypeAgentEvent,
		SessionID: env.sessionID,
		EventType: "tool_result",
		Content:   string(longContent),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// The live delivery is the truncation envelope
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeAgentEvent, msg["type"])
	assert.Equal(t, true, msg["truncated"])
	assert.Equal(t, env.sessionID, msg["session_id"])
	require.NotNil(t, msg["db_event_id"])

	// The full content is recoverable from the events table
	dbEventID := int(msg["db_event_id"].(float64))
	events, err := env.eventService.GetEventsSince(ctx, env.channel, dbEventID-1, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(longContent), events[0].Payload["content"])
}
