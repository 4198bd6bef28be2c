package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nocforge/nocforge/pkg/agent"
	"github.com/nocforge/nocforge/pkg/services"
)

// listSessionsHandler handles GET /api/v1/sessions with status/agent_type
// filters and pagination.
func (s *Server) listSessionsHandler(c *gin.Context) {
	filters := services.SessionFilters{
		Status:    c.Query("status"),
		AgentType: c.Query("agent_type"),
		Limit:     queryInt(c, "limit", 0),
		Offset:    queryInt(c, "offset", 0),
	}

	sessions, total, err := s.sessions.ListSessions(c.Request.Context(), filters)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"total":    total,
	})
}

// getSessionHandler handles GET /api/v1/sessions/:id. The session is loaded
// with its messages and agent actions so the UI can render the full
// transcript in one call.
func (s *Server) getSessionHandler(c *gin.Context) {
	sess, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// agentTypesHandler handles GET /api/v1/agent-types.
func (s *Server) agentTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agent_types": agent.ListTypes()})
}
