package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listIncidentsHandler handles GET /api/v1/incidents with an optional
// ?status= filter.
func (s *Server) listIncidentsHandler(c *gin.Context) {
	incidents, err := s.incidents.ListIncidents(c.Request.Context(), c.Query("status"), queryInt(c, "limit", 0))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incidents": incidents})
}

// getIncidentHandler handles GET /api/v1/incidents/:id.
func (s *Server) getIncidentHandler(c *gin.Context) {
	incident, err := s.incidents.GetIncident(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, incident)
}
