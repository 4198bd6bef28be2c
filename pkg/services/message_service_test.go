package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/agent"
)

func TestAppendMessagesAssignsSequenceAfterTail(t *testing.T) {
	client := setupClient(t)
	sessions := NewSessionService(client)
	svc := NewMessageService(client)
	ctx := context.Background()

	sess, err := sessions.CreateSession(ctx, agent.TypeTriage, "alert", "a1")
	require.NoError(t, err)

	err = svc.AppendMessages(ctx, sess.ID, []MessageInput{
		{Role: "system", Content: "You are a triage agent."},
		{Role: "user", Content: "BGP neighbor down on r1"},
	})
	require.NoError(t, err)

	err = svc.AppendMessages(ctx, sess.ID, []MessageInput{
		{
			Role:    "assistant",
			Content: "Checking.",
			ToolCalls: []map[string]interface{}{
				{"id": "call_1", "name": "run_show_command", "arguments": map[string]interface{}{"device_name": "r1"}},
			},
		},
		{Role: "tool", Content: `{"success":true}`, ToolCallID: "call_1", ToolName: "run_show_command"},
	})
	require.NoError(t, err)

	msgs, err := svc.ListMessages(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	for i, msg := range msgs {
		assert.Equal(t, i, msg.SequenceNumber)
	}

	assistant := msgs[2]
	require.Len(t, assistant.ToolCalls, 1)
	assert.Equal(t, "call_1", assistant.ToolCalls[0]["id"])

	toolMsg := msgs[3]
	require.NotNil(t, toolMsg.ToolCallID)
	assert.Equal(t, "call_1", *toolMsg.ToolCallID)
	require.NotNil(t, toolMsg.ToolName)
	assert.Equal(t, "run_show_command", *toolMsg.ToolName)
}

func TestAppendMessagesEmptyBatchIsNoop(t *testing.T) {
	client := setupClient(t)
	svc := NewMessageService(client)

	assert.NoError(t, svc.AppendMessages(context.Background(), "any", nil))
}
