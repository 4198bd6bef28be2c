package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/ent"
)

func createTestAlert(t *testing.T, client *ent.Client, title string) *ent.Alert {
	t.Helper()
	alert, err := NewAlertService(client).CreateAlert(context.Background(), &AlertInput{
		Title:       title,
		Severity:    "critical",
		Source:      "webhook",
		Device:      "r1",
		Description: "BGP neighbor 10.0.0.2 down",
	})
	require.NoError(t, err)
	return alert
}

func TestCreateAlertDefaults(t *testing.T) {
	client := setupClient(t)
	alert := createTestAlert(t, client, "bgp down")

	assert.Equal(t, "new", alert.Status.String())
	assert.False(t, alert.SkipAi)
	assert.Nil(t, alert.AcknowledgedAt)

	_, err := NewAlertService(client).CreateAlert(context.Background(), &AlertInput{Source: "webhook"})
	assert.True(t, IsValidationError(err), "title is mandatory")
}

func TestClaimNextNewAlert(t *testing.T) {
	client := setupClient(t)
	svc := NewAlertService(client)
	ctx := context.Background()

	first := createTestAlert(t, client, "first")
	createTestAlert(t, client, "second")

	claimed, err := svc.ClaimNextNewAlert(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID, "oldest alert claims first")
	assert.Equal(t, "processing", claimed.Status.String())
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-a", *claimed.PodID)

	// The claimed alert is invisible to other workers.
	second, err := svc.ClaimNextNewAlert(ctx, "pod-b")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = svc.ClaimNextNewAlert(ctx, "pod-c")
	assert.ErrorIs(t, err, ErrNotFound, "empty queue")
}

func TestRequeueStaleClaims(t *testing.T) {
	client := setupClient(t)
	svc := NewAlertService(client)
	ctx := context.Background()

	stale := createTestAlert(t, client, "stale claim")
	fresh := createTestAlert(t, client, "fresh claim")

	_, err := svc.ClaimNextNewAlert(ctx, "pod-dead")
	require.NoError(t, err)
	_, err = svc.ClaimNextNewAlert(ctx, "pod-alive")
	require.NoError(t, err)

	// Backdate the first claim so it looks abandoned.
	err = client.Alert.UpdateOneID(stale.ID).
		SetClaimedAt(time.Now().UTC().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := svc.RequeueStaleClaims(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	requeued, err := svc.GetAlert(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", requeued.Status.String())
	assert.Nil(t, requeued.PodID)
	assert.Nil(t, requeued.ClaimedAt)

	kept, err := svc.GetAlert(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, "processing", kept.Status.String())

	// Second sweep finds nothing.
	n, err = svc.RequeueStaleClaims(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRequeueStaleClaimsKeepsApprovalPausedAlerts(t *testing.T) {
	client := setupClient(t)
	svc := NewAlertService(client)
	sessions := NewSessionService(client)
	ctx := context.Background()

	paused := createTestAlert(t, client, "paused on approval")

	claimed, err := svc.ClaimNextNewAlert(ctx, "pod-1")
	require.NoError(t, err)
	require.Equal(t, paused.ID, claimed.ID)

	// Backdate the claim far past any session timeout; the pause on a human
	// decision still protects it.
	err = client.Alert.UpdateOneID(paused.ID).
		SetClaimedAt(time.Now().UTC().Add(-24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	sess, err := sessions.CreateSession(ctx, "bgp", "alert", paused.ID)
	require.NoError(t, err)
	require.NoError(t, sessions.SetSessionStatus(ctx, sess.ID, "awaiting_approval", ""))

	n, err := svc.RequeueStaleClaims(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)

	kept, err := svc.GetAlert(ctx, paused.ID)
	require.NoError(t, err)
	assert.Equal(t, "processing", kept.Status.String())

	// Once the session is no longer paused the alert becomes fair game.
	require.NoError(t, sessions.SetSessionStatus(ctx, sess.ID, "error", "worker died"))

	n, err = svc.RequeueStaleClaims(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClaimNextNewAlert_SkipsSkipAI(t *testing.T) {
	client := setupClient(t)
	svc := NewAlertService(client)
	ctx := context.Background()

	_, err := svc.CreateAlert(ctx, &AlertInput{
		Title:  "maintenance window",
		Source: "manual",
		SkipAI: true,
	})
	require.NoError(t, err)

	_, err = svc.ClaimNextNewAlert(ctx, "pod-a")
	assert.ErrorIs(t, err, ErrNotFound, "skip_ai alerts stay in the human queue")
}

func TestAlertLifecycleStamps(t *testing.T) {
	client := setupClient(t)
	svc := NewAlertService(client)
	ctx := context.Background()
	alert := createTestAlert(t, client, "ospf adjacency down")

	require.NoError(t, svc.UpdateAlertStatus(ctx, alert.ID, "escalated"))
	require.NoError(t, svc.AcknowledgeAlert(ctx, alert.ID))
	require.NoError(t, svc.LinkIncident(ctx, alert.ID, "inc-1"))

	got, err := svc.GetAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "escalated", got.Status.String())
	assert.NotNil(t, got.AcknowledgedAt)
	require.NotNil(t, got.IncidentID)
	assert.Equal(t, "inc-1", *got.IncidentID)

	require.NoError(t, svc.ResolveAlert(ctx, alert.ID))
	got, err = svc.GetAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "resolved", got.Status.String())
	assert.NotNil(t, got.ResolvedAt)
}

func TestListAlertsFilters(t *testing.T) {
	client := setupClient(t)
	svc := NewAlertService(client)
	ctx := context.Background()

	createTestAlert(t, client, "one")
	two := createTestAlert(t, client, "two")
	require.NoError(t, svc.UpdateAlertStatus(ctx, two.ID, "noise"))

	noise, total, err := svc.ListAlerts(ctx, AlertFilters{Status: "noise"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, noise, 1)
	assert.Equal(t, two.ID, noise[0].ID)

	_, total, err = svc.ListAlerts(ctx, AlertFilters{Device: "r1"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
