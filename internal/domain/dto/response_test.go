package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeConflict, "transition not allowed")

	assert.Equal(t, ErrCodeConflict, resp.Error)
	assert.Equal(t, "transition not allowed", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Empty(t, resp.RequestID)
}

func TestErrorResponse_WithRequestID(t *testing.T) {
	resp := NewError(ErrCodeNotFound, "missing").WithRequestID("req-123")

	assert.Equal(t, "req-123", resp.RequestID)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ErrCodeFromStatus(tt.status), "status %d", tt.status)
	}
}
