package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/diet-service/config"
)

func TestInitializeApp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("FILE_STORE_DIR", t.TempDir())
	t.Setenv("MONGODB_ENABLED", "false")

	router := InitializeApp(config.Load())
	require.NotNil(t, router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitializeApp_ServesCollections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("FILE_STORE_DIR", t.TempDir())
	t.Setenv("MONGODB_ENABLED", "false")

	router := InitializeApp(config.Load())

	for _, path := range []string{
		"/api/foodItems",
		"/api/dietPackages",
		"/api/dietRequests",
		"/api/dietOrders",
		"/api/canteenOrders",
		"/api/customPlans",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
