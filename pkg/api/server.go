// Package api exposes the platform's HTTP surface: alert ingress, approval
// decisions, session inspection, incident listing and the WebSocket event
// stream.
package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nocforge/nocforge/pkg/database"
	"github.com/nocforge/nocforge/pkg/events"
	"github.com/nocforge/nocforge/pkg/services"
	"github.com/nocforge/nocforge/pkg/workflow"
)

// WorkflowResumer settles an alert's workflow after an approval decision.
// Implemented by workflow.Engine.
type WorkflowResumer interface {
	ResumeAfterDecision(ctx context.Context, approvalID string, approved bool, approver string) (*workflow.Result, error)
}

// Server wires the service layer to gin handlers.
type Server struct {
	db        *database.Client
	alerts    *services.AlertService
	sessions  *services.SessionService
	approvals *services.ApprovalService
	incidents *services.IncidentService
	workflows *services.WorkflowService

	runner    events.AgentRunner
	resumer   WorkflowResumer
	publisher *events.EventPublisher
	manager   *events.ConnectionManager
}

// Deps carries everything the server needs. All fields are required except
// Manager and Publisher, which may be nil in tests that skip WebSocket
// delivery, and Resumer, which may be nil when no workflow engine runs in
// the process (decisions then resume the session without settling alerts).
type Deps struct {
	DB        *database.Client
	Alerts    *services.AlertService
	Sessions  *services.SessionService
	Approvals *services.ApprovalService
	Incidents *services.IncidentService
	Workflows *services.WorkflowService
	Runner    events.AgentRunner
	Resumer   WorkflowResumer
	Publisher *events.EventPublisher
	Manager   *events.ConnectionManager
}

// NewServer creates a new API server.
func NewServer(deps Deps) *Server {
	return &Server{
		db:        deps.DB,
		alerts:    deps.Alerts,
		sessions:  deps.Sessions,
		approvals: deps.Approvals,
		incidents: deps.Incidents,
		workflows: deps.Workflows,
		runner:    deps.Runner,
		resumer:   deps.Resumer,
		publisher: deps.Publisher,
		manager:   deps.Manager,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/alerts", s.createAlertHandler)
		v1.GET("/alerts", s.listAlertsHandler)
		v1.GET("/alerts/:id", s.getAlertHandler)
		v1.POST("/alerts/:id/ack", s.ackAlertHandler)
		v1.POST("/alerts/:id/resolve", s.resolveAlertHandler)

		v1.GET("/approvals", s.listApprovalsHandler)
		v1.POST("/approvals", s.createApprovalHandler)
		v1.POST("/approvals/:id/approve", s.approveHandler)
		v1.POST("/approvals/:id/reject", s.rejectHandler)
		v1.POST("/approvals/expire-old", s.expireOldHandler)

		v1.GET("/sessions", s.listSessionsHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.GET("/agent-types", s.agentTypesHandler)

		v1.GET("/incidents", s.listIncidentsHandler)
		v1.GET("/incidents/:id", s.getIncidentHandler)

		v1.GET("/health", s.healthHandler)
	}

	r.GET("/ws", s.eventsSocketHandler)
	r.GET("/ws/chat", s.chatSocketHandler)

	return r
}
