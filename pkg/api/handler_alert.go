package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nocforge/nocforge/pkg/events"
	"github.com/nocforge/nocforge/pkg/services"
)

// createAlertHandler handles POST /api/v1/alerts.
// The alert is persisted in "new" status and returned immediately; the
// worker pool picks it up for workflow processing unless skip_ai is set.
func (s *Server) createAlertHandler(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := s.alerts.CreateAlert(c.Request.Context(), &services.AlertInput{
		Title:       req.Title,
		Severity:    req.Severity,
		Source:      req.Source,
		Device:      req.Device,
		Description: req.Description,
		SkipAI:      req.SkipAI,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}

	s.publishAlertStatus(alert.ID, string(alert.Status), "")

	c.JSON(http.StatusAccepted, &AlertAcceptedResponse{
		AlertID: alert.ID,
		Status:  string(alert.Status),
		Message: "Alert accepted for processing",
	})
}

// listAlertsHandler handles GET /api/v1/alerts with status/device filters.
func (s *Server) listAlertsHandler(c *gin.Context) {
	filters := services.AlertFilters{
		Status: c.Query("status"),
		Device: c.Query("device"),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}

	alerts, total, err := s.alerts.ListAlerts(c.Request.Context(), filters)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"total":  total,
	})
}

// getAlertHandler handles GET /api/v1/alerts/:id, including the alert's
// workflow history.
func (s *Server) getAlertHandler(c *gin.Context) {
	id := c.Param("id")

	alert, err := s.alerts.GetAlert(c.Request.Context(), id)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	workflows, err := s.workflows.GetWorkflowsForAlert(c.Request.Context(), id)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alert":     alert,
		"workflows": workflows,
	})
}

// ackAlertHandler handles POST /api/v1/alerts/:id/ack.
func (s *Server) ackAlertHandler(c *gin.Context) {
	id := c.Param("id")

	if err := s.alerts.AcknowledgeAlert(c.Request.Context(), id); err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alert_id": id, "acknowledged": true})
}

// resolveAlertHandler handles POST /api/v1/alerts/:id/resolve.
func (s *Server) resolveAlertHandler(c *gin.Context) {
	id := c.Param("id")

	if err := s.alerts.ResolveAlert(c.Request.Context(), id); err != nil {
		abortServiceError(c, err)
		return
	}

	s.publishAlertStatus(id, "resolved", "")

	c.JSON(http.StatusOK, gin.H{"alert_id": id, "status": "resolved"})
}

// publishAlertStatus broadcasts a transient alert.status event. Best effort:
// the queue page refetches over REST, so a lost notify is harmless.
func (s *Server) publishAlertStatus(alertID, status, incidentID string) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.publisher.PublishAlertStatus(ctx, events.AlertStatusPayload{
		Type:       events.EventTypeAlertStatus,
		AlertID:    alertID,
		Status:     status,
		IncidentID: incidentID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
