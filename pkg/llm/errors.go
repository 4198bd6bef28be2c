package llm

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrProviderNotFound indicates the configured active provider has no
	// definition or an unsupported kind. Raised before any network call.
	ErrProviderNotFound = errors.New("llm provider not found")

	// ErrAPIKeyMissing indicates the provider's API key environment variable
	// is unset or empty. Raised before any network call.
	ErrAPIKeyMissing = errors.New("llm api key missing")
)

// Error is the generic provider failure with the HTTP status embedded.
// Vendor-specific exception shapes are flattened into Message.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm error (status %d): %s", e.StatusCode, e.Message)
}

// RateLimitError indicates HTTP 429 from the provider.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("llm rate limited: %s", e.Message)
}

// errorFromStatus maps a non-2xx provider response to the closed taxonomy.
func errorFromStatus(statusCode int, body []byte) error {
	msg := string(body)
	if len(msg) > 512 {
		msg = msg[:512]
	}
	if statusCode == http.StatusTooManyRequests {
		return &RateLimitError{Message: msg}
	}
	return &Error{StatusCode: statusCode, Message: msg}
}
