package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/agent"
	"github.com/nocforge/nocforge/pkg/services"
)

func TestAbortServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("title", "required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "title",
		},
		{
			name:       "unknown agent type maps to 400",
			err:        fmt.Errorf("%w: %q", agent.ErrUnknownAgentType, "nope"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "unknown agent type",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already decided maps to 409",
			err:        services.ErrAlreadyDecided,
			expectCode: http.StatusConflict,
			expectMsg:  "approval already decided",
		},
		{
			name:       "expired maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrExpired),
			expectCode: http.StatusConflict,
			expectMsg:  "approval expired",
		},
		{
			name:       "already exists maps to 409",
			err:        services.ErrAlreadyExists,
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			abortServiceError(c, tt.err)

			assert.Equal(t, tt.expectCode, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.expectMsg)
		})
	}
}
