package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Empty(t, cfg.Server.SwaggerUser)

	assert.Equal(t, "data", cfg.Storage.Dir)

	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "admin", cfg.Auth.AdminUser)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "diet_service", cfg.Database.DatabaseName)
	assert.Equal(t, 30*24*time.Hour, cfg.Database.ActivityTTL)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "250")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("MONGODB_DATABASE", "diet_test")
	t.Setenv("FILE_STORE_DIR", "/tmp/diet")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", "key-a, key-b")
	t.Setenv("CORS_ORIGINS", "https://intranet.example.org")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 250, cfg.Server.RateLimit)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "diet_test", cfg.Database.DatabaseName)
	assert.Equal(t, "/tmp/diet", cfg.Storage.Dir)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, map[string]bool{"key-a": true, "key-b": true}, cfg.Auth.APIKeys)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://intranet.example.org")
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("MONGODB_ENABLED", "maybe")
	t.Setenv("RATE_WINDOW", "soon")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
}
