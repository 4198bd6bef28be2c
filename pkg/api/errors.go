package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nocforge/nocforge/pkg/agent"
	"github.com/nocforge/nocforge/pkg/services"
)

// abortServiceError maps service-layer errors to HTTP error responses.
func abortServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, agent.ErrUnknownAgentType) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyDecided) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "approval already decided"})
		return
	}
	if errors.Is(err, services.ErrExpired) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "approval expired"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
