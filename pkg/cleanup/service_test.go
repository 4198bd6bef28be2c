package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/ent/event"
	"github.com/nocforge/nocforge/pkg/config"
	"github.com/nocforge/nocforge/pkg/services"
	testdb "github.com/nocforge/nocforge/test/database"
)

func createEventAt(t *testing.T, client *ent.Client, id int64, sessionID string, createdAt time.Time) {
	t.Helper()
	err := client.Event.Create().
		SetID(id).
		SetSessionID(sessionID).
		SetChannel("session:" + sessionID).
		SetPayload(map[string]interface{}{"type": "agent.event"}).
		SetCreatedAt(createdAt).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestCleanupDeletesOnlyExpiredEvents(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	sessionID := uuid.NewString()
	_, err := dbClient.Session.Create().
		SetID(sessionID).
		SetAgentType("triage").
		Save(ctx)
	require.NoError(t, err)

	now := time.Now().UTC()
	createEventAt(t, dbClient.Client, 1, sessionID, now.Add(-48*time.Hour))
	createEventAt(t, dbClient.Client, 2, sessionID, now.Add(-25*time.Hour))
	createEventAt(t, dbClient.Client, 3, sessionID, now.Add(-time.Minute))

	svc := NewService(
		&config.RetentionConfig{EventTTL: 24 * time.Hour, CleanupInterval: time.Hour},
		services.NewEventService(dbClient.Client),
	)
	svc.Start(ctx)
	defer svc.Stop()

	// The first sweep runs immediately on Start.
	require.Eventually(t, func() bool {
		n, err := dbClient.Event.Query().Count(ctx)
		return err == nil && n == 1
	}, 10*time.Second, 50*time.Millisecond)

	remaining, err := dbClient.Event.Query().Where(event.IDEQ(3)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining, "fresh event survives the sweep")
}

func TestCleanupStartStopIdempotent(t *testing.T) {
	dbClient := testdb.NewTestClient(t)

	svc := NewService(
		&config.RetentionConfig{EventTTL: time.Hour, CleanupInterval: time.Hour},
		services.NewEventService(dbClient.Client),
	)

	svc.Start(context.Background())
	svc.Start(context.Background()) // no-op
	svc.Stop()
}
