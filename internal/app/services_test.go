package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/diet-service/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Load()
	cfg.Storage.Dir = t.TempDir()
	return cfg
}

func TestInitializeServices_FileStoreFallback(t *testing.T) {
	cfg := testConfig(t)

	components, err := InitializeServices(cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, components)

	assert.NotNil(t, components.Store)
	assert.NotNil(t, components.Catalog)
	assert.NotNil(t, components.Packages)
	assert.NotNil(t, components.Requests)
	assert.NotNil(t, components.Orders)
	assert.NotNil(t, components.Canteen)
	assert.NotNil(t, components.Plans)
	assert.Nil(t, components.Auth)
}

func TestInitializeServices_AuthRequiresCredential(t *testing.T) {
	cfg := testConfig(t)
	cfg.Auth.Enabled = true
	cfg.Auth.AdminPasswordHash = ""

	components, err := InitializeServices(cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, components.Auth, "auth service should stay off without a configured credential")
}

func TestInitializeServices_AuthEnabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Auth.Enabled = true
	cfg.Auth.AdminUser = "dietitian"
	cfg.Auth.AdminPasswordHash = "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456"
	cfg.Auth.JWTSecretKey = "test-secret"
	cfg.Auth.TokenTTL = time.Hour

	components, err := InitializeServices(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, components.Auth)
}

func TestInitializeServices_BadStorageDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Dir = "/dev/null/not-a-dir"

	_, err := InitializeServices(cfg, nil)
	assert.Error(t, err)
}
