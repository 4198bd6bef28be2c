package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/pkg/agent"
	"github.com/nocforge/nocforge/pkg/agent/executor"
)

// eventsSocketHandler handles GET /ws: the subscribe/catchup event stream
// backed by the connection manager.
func (s *Server) eventsSocketHandler(c *gin.Context) {
	if s.manager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Warn("WebSocket accept failed", "error", err)
		return
	}

	s.manager.HandleConnection(c.Request.Context(), conn)
}

// chatCommand is one inbound frame on the chat socket.
type chatCommand struct {
	Command    string `json:"command"`
	AgentType  string `json:"agent_type,omitempty"`
	Message    string `json:"message,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	ApprovalID string `json:"approval_id,omitempty"`
	Approved   bool   `json:"approved"`
	Approver   string `json:"approver,omitempty"`
}

// chatFrame is one outbound frame on the chat socket. Agent events carry the
// executor event inline; control frames carry only type and session_id.
type chatFrame struct {
	Type      string               `json:"type"`
	SessionID string               `json:"session_id,omitempty"`
	Status    string               `json:"status,omitempty"`
	Error     string               `json:"error,omitempty"`
	Event     *executor.AgentEvent `json:"event,omitempty"`
}

// chatRunTimeout bounds a single agent turn driven over the chat socket.
const chatRunTimeout = 10 * time.Minute

// chatSocketHandler handles GET /ws/chat: a duplex bridge that accepts
// start_session, send_message, approve_action, resume_session and
// end_session commands and streams executor events back.
//
// Commands run one at a time per connection. A client that wants parallel
// sessions opens parallel sockets.
func (s *Server) chatSocketHandler(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Warn("WebSocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := c.Request.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var cmd chatCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			s.writeChatFrame(ctx, conn, chatFrame{Type: "error", Error: "invalid command frame"})
			continue
		}

		if err := s.dispatchChatCommand(ctx, conn, cmd); err != nil {
			s.writeChatFrame(ctx, conn, chatFrame{Type: "error", SessionID: cmd.SessionID, Error: err.Error()})
		}
	}
}

func (s *Server) dispatchChatCommand(ctx context.Context, conn *websocket.Conn, cmd chatCommand) error {
	switch cmd.Command {
	case "start_session":
		return s.chatStartSession(ctx, conn, cmd)
	case "send_message":
		return s.chatSendMessage(ctx, conn, cmd)
	case "approve_action":
		return s.chatApproveAction(ctx, conn, cmd)
	case "resume_session":
		return s.chatResumeSession(ctx, conn, cmd)
	case "end_session":
		return s.chatEndSession(ctx, conn, cmd)
	default:
		return fmt.Errorf("unknown command: %q", cmd.Command)
	}
}

// chatStartSession creates a chat-triggered session and runs the first turn.
// An empty agent_type routes through the keyword classifier.
func (s *Server) chatStartSession(ctx context.Context, conn *websocket.Conn, cmd chatCommand) error {
	agentType := cmd.AgentType
	if agentType == "" {
		cls := agent.ClassifyIssue(cmd.Message, "")
		agentType = cls.Category
	}
	if !agent.IsKnownType(agentType) {
		return agent.ErrUnknownAgentType
	}

	sess, err := s.sessions.CreateSession(ctx, agentType, "chat", "")
	if err != nil {
		return err
	}

	s.writeChatFrame(ctx, conn, chatFrame{Type: "session.started", SessionID: sess.ID})
	return s.chatRunTurn(ctx, conn, sess.ID, func(runCtx context.Context) (<-chan executor.AgentEvent, error) {
		return s.runner.Run(runCtx, sess.ID, cmd.Message, nil)
	})
}

// chatSendMessage runs another turn on an existing session.
func (s *Server) chatSendMessage(ctx context.Context, conn *websocket.Conn, cmd chatCommand) error {
	if _, err := s.sessions.GetSession(ctx, cmd.SessionID, false); err != nil {
		return err
	}

	return s.chatRunTurn(ctx, conn, cmd.SessionID, func(runCtx context.Context) (<-chan executor.AgentEvent, error) {
		return s.runner.Run(runCtx, cmd.SessionID, cmd.Message, nil)
	})
}

// chatApproveAction decides a pending approval from the chat surface and
// streams the resumed run.
func (s *Server) chatApproveAction(ctx context.Context, conn *websocket.Conn, cmd chatCommand) error {
	approver := cmd.Approver
	if approver == "" {
		approver = "chat"
	}

	var approval *ent.PendingApproval
	var err error
	if cmd.Approved {
		approval, err = s.approvals.Approve(ctx, cmd.ApprovalID, approver, "")
	} else {
		approval, err = s.approvals.Reject(ctx, cmd.ApprovalID, approver, "")
	}
	if err != nil {
		return err
	}

	// An approval belonging to an alert-triggered session is settled by the
	// workflow engine so the alert reaches a disposition; the chat client
	// follows along on the session's event channel.
	if s.resumer != nil {
		if sess, err := s.sessions.GetSession(ctx, approval.SessionID, false); err == nil && sess.TriggerType == "alert" {
			runCtx, cancel := context.WithTimeout(ctx, chatRunTimeout)
			defer cancel()
			result, err := s.resumer.ResumeAfterDecision(runCtx, cmd.ApprovalID, cmd.Approved, approver)
			if err != nil {
				return err
			}
			s.writeChatFrame(ctx, conn, chatFrame{Type: "workflow.settled", SessionID: approval.SessionID, Status: result.Outcome})
			return nil
		}
	}

	return s.chatRunTurn(ctx, conn, approval.SessionID, func(runCtx context.Context) (<-chan executor.AgentEvent, error) {
		return s.runner.ResumeWithApproval(runCtx, cmd.ApprovalID, cmd.Approved, approver)
	})
}

// chatResumeSession replays nothing; it confirms the session still exists
// and reports its status so a reconnecting client can decide what to do.
// Historical events are available over the /ws catchup stream.
func (s *Server) chatResumeSession(ctx context.Context, conn *websocket.Conn, cmd chatCommand) error {
	sess, err := s.sessions.GetSession(ctx, cmd.SessionID, false)
	if err != nil {
		return err
	}

	s.writeChatFrame(ctx, conn, chatFrame{Type: "session.resumed", SessionID: sess.ID, Status: string(sess.Status)})
	return nil
}

// chatEndSession marks the session completed.
func (s *Server) chatEndSession(ctx context.Context, conn *websocket.Conn, cmd chatCommand) error {
	if err := s.sessions.SetSessionStatus(ctx, cmd.SessionID, "completed", "user_ended"); err != nil {
		return err
	}

	s.writeChatFrame(ctx, conn, chatFrame{Type: "session.ended", SessionID: cmd.SessionID})
	return nil
}

// chatRunTurn starts a runner stream and forwards every event to the socket
// until the stream closes.
func (s *Server) chatRunTurn(ctx context.Context, conn *websocket.Conn, sessionID string, start func(context.Context) (<-chan executor.AgentEvent, error)) error {
	runCtx, cancel := context.WithTimeout(ctx, chatRunTimeout)
	defer cancel()

	ch, err := start(runCtx)
	if err != nil {
		return err
	}

	for ev := range ch {
		e := ev
		s.writeChatFrame(ctx, conn, chatFrame{Type: "agent.event", SessionID: sessionID, Event: &e})
	}
	return nil
}

func (s *Server) writeChatFrame(ctx context.Context, conn *websocket.Conn, frame chatFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		slog.Error("Failed to marshal chat frame", "error", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		slog.Warn("Failed to write chat frame", "error", err)
	}
}
