package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/agent"
)

func TestCreateAndGetSession(t *testing.T) {
	client := setupClient(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, agent.TypeTriage, "alert", "alert-1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, agent.TypeTriage, sess.AgentType)
	assert.Equal(t, "active", sess.Status.String())

	got, err := svc.GetSession(ctx, sess.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "alert", got.TriggerType)
	assert.Equal(t, "alert-1", got.TriggerID)
}

func TestCreateSessionRejectsUnknownAgentType(t *testing.T) {
	client := setupClient(t)
	svc := NewSessionService(client)

	_, err := svc.CreateSession(context.Background(), "quantum", "chat", "")
	assert.ErrorIs(t, err, agent.ErrUnknownAgentType)

	_, err = svc.CreateSession(context.Background(), "", "chat", "")
	assert.True(t, IsValidationError(err))
}

func TestGetSessionNotFound(t *testing.T) {
	client := setupClient(t)
	svc := NewSessionService(client)

	_, err := svc.GetSession(context.Background(), "missing", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetSessionStatusStampsTerminalFields(t *testing.T) {
	client := setupClient(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, agent.TypeBGP, "chat", "")
	require.NoError(t, err)

	require.NoError(t, svc.SetSessionStatus(ctx, sess.ID, "awaiting_approval", ""))
	got, err := svc.GetSession(ctx, sess.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "awaiting_approval", got.Status.String())
	assert.Nil(t, got.EndedAt, "non-terminal transition must not stamp ended_at")

	require.NoError(t, svc.SetSessionStatus(ctx, sess.ID, "completed", "final_response"))
	got, err = svc.GetSession(ctx, sess.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status.String())
	require.NotNil(t, got.EndedAt)
	require.NotNil(t, got.EndReason)
	assert.Equal(t, "final_response", *got.EndReason)
}

func TestListSessionsFilters(t *testing.T) {
	client := setupClient(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, agent.TypeTriage, "alert", "a1")
	require.NoError(t, err)
	bgp, err := svc.CreateSession(ctx, agent.TypeBGP, "handoff", "")
	require.NoError(t, err)
	require.NoError(t, svc.SetSessionStatus(ctx, bgp.ID, "completed", "final_response"))

	all, total, err := svc.ListSessions(ctx, SessionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	completed, total, err := svc.ListSessions(ctx, SessionFilters{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, completed, 1)
	assert.Equal(t, bgp.ID, completed[0].ID)

	triage, _, err := svc.ListSessions(ctx, SessionFilters{AgentType: agent.TypeTriage})
	require.NoError(t, err)
	assert.Len(t, triage, 1)
}
