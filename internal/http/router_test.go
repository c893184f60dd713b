package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dietHTTP "github.com/guttosm/diet-service/internal/http"
	"github.com/guttosm/diet-service/internal/service"
)

func TestRouter_APIKeyAuth(t *testing.T) {
	router := newTestRouter(t, func(cfg *dietHTTP.RouterConfig) {
		cfg.EnableAuth = true
		cfg.APIKeys = map[string]bool{"valid-key": true}
	})

	// No key
	w := doJSON(t, router, http.MethodGet, "/api/foodItems", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong key
	req := httptest.NewRequest(http.MethodGet, "/api/foodItems", nil)
	req.Header.Set("X-API-Key", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid key
	req = httptest.NewRequest(http.MethodGet, "/api/foodItems", nil)
	req.Header.Set("X-API-Key", "valid-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Health stays public
	w = doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_JWTAuth(t *testing.T) {
	hash, err := service.HashPassword("secret-password")
	require.NoError(t, err)
	authService := service.NewAuthService("test-signing-key", time.Hour, "dietitian", hash)

	router := newTestRouter(t, func(cfg *dietHTTP.RouterConfig) {
		cfg.EnableAuth = true
		cfg.AuthService = authService
	})

	// Collections require a token
	w := doJSON(t, router, http.MethodGet, "/api/foodItems", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Bad credentials
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "dietitian",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Login
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "dietitian",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)

	// Token grants access
	req := httptest.NewRequest(http.MethodGet, "/api/foodItems", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Garbage token does not
	req = httptest.NewRequest(http.MethodGet, "/api/foodItems", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/foodItems", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_RateLimit(t *testing.T) {
	router := newTestRouter(t, func(cfg *dietHTTP.RouterConfig) {
		cfg.RateLimit = 2
		cfg.RateWindow = time.Minute
	})

	w := doJSON(t, router, http.MethodGet, "/api/foodItems", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/foodItems", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/foodItems", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
