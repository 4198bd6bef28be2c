package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/pkg/events"
	"github.com/nocforge/nocforge/pkg/services"
)

// listApprovalsHandler handles GET /api/v1/approvals. With ?session_id= it
// returns that session's pending gates, otherwise all pending approvals.
func (s *Server) listApprovalsHandler(c *gin.Context) {
	approvals, err := s.approvals.ListPending(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approvals": approvals})
}

// createApprovalHandler handles POST /api/v1/approvals. The executor creates
// its own gates internally; this endpoint is for external systems that want
// a human decision tracked for an action of theirs.
func (s *Server) createApprovalHandler(c *gin.Context) {
	var req CreateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := s.sessions.GetSession(c.Request.Context(), req.SessionID, false); err != nil {
		abortServiceError(c, err)
		return
	}

	expires := req.ExpiresMinutes
	if expires <= 0 {
		expires = 60
	}
	riskLevel := req.RiskLevel
	if riskLevel == "" {
		riskLevel = "medium"
	}
	args := req.Args
	if req.Description != "" {
		if args == nil {
			args = map[string]any{}
		}
		args["description"] = req.Description
	}

	approval, err := s.approvals.CreateApproval(c.Request.Context(), &services.ApprovalInput{
		ID:        uuid.NewString(),
		SessionID: req.SessionID,
		ActionID:  req.ActionID,
		ToolName:  req.ActionType,
		Args:      args,
		RiskLevel: riskLevel,
		ExpiresAt: time.Now().UTC().Add(time.Duration(expires) * time.Minute),
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, approval)
}

// approveHandler handles POST /api/v1/approvals/:id/approve.
// The decision is recorded synchronously; the paused session resumes in the
// background and streams its events over the session's WebSocket channel.
func (s *Server) approveHandler(c *gin.Context) {
	s.decideHandler(c, true)
}

// rejectHandler handles POST /api/v1/approvals/:id/reject.
func (s *Server) rejectHandler(c *gin.Context) {
	s.decideHandler(c, false)
}

func (s *Server) decideHandler(c *gin.Context, approved bool) {
	id := c.Param("id")

	var req DecideApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var approval *ent.PendingApproval
	var err error
	if approved {
		approval, err = s.approvals.Approve(c.Request.Context(), id, req.DecidedBy, req.Reason)
	} else {
		approval, err = s.approvals.Reject(c.Request.Context(), id, req.DecidedBy, req.Reason)
	}
	if err != nil {
		abortServiceError(c, err)
		return
	}

	s.publishApprovalDecided(approval, req.DecidedBy)

	// Resume the paused session in the background. The decision is already
	// durable; a resume failure leaves the session resumable by a retry.
	go s.resumeAfterDecision(id, approved, req.DecidedBy)

	c.JSON(http.StatusOK, &ApprovalDecidedResponse{
		ApprovalID: approval.ID,
		SessionID:  approval.SessionID,
		Status:     string(approval.Status),
		Resuming:   true,
	})
}

func (s *Server) resumeAfterDecision(approvalID string, approved bool, approver string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// The engine settles alert workflows: disposition on the alert, audit
	// step, completed workflow log. Without an engine the session still
	// resumes, it just is not tied back to an alert.
	if s.resumer != nil {
		result, err := s.resumer.ResumeAfterDecision(ctx, approvalID, approved, approver)
		if err != nil {
			slog.Error("Failed to settle workflow after approval decision",
				"approval_id", approvalID, "approved", approved, "error", err)
			return
		}
		slog.Info("Approval decision settled",
			"approval_id", approvalID, "approved", approved, "outcome", result.Outcome)
		return
	}

	ch, err := s.runner.ResumeWithApproval(ctx, approvalID, approved, approver)
	if err != nil {
		slog.Error("Failed to resume session after approval decision",
			"approval_id", approvalID, "approved", approved, "error", err)
		return
	}

	// Drain: events reach clients through the publishing runner.
	for range ch {
	}
}

// expireOldHandler handles POST /api/v1/approvals/expire-old, the manual
// counterpart of the queue's periodic sweep.
func (s *Server) expireOldHandler(c *gin.Context) {
	n, err := s.approvals.ExpireOld(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expired": n})
}

// publishApprovalDecided broadcasts a transient approval.decided event.
func (s *Server) publishApprovalDecided(approval *ent.PendingApproval, decidedBy string) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.publisher.PublishApprovalDecided(ctx, events.ApprovalDecidedPayload{
		Type:       events.EventTypeApprovalDecided,
		ApprovalID: approval.ID,
		SessionID:  approval.SessionID,
		Status:     string(approval.Status),
		DecidedBy:  decidedBy,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	})
}
