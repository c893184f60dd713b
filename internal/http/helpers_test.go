package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	dietHTTP "github.com/guttosm/diet-service/internal/http"
	"github.com/guttosm/diet-service/internal/repository"
	"github.com/guttosm/diet-service/internal/service"
)

// newTestRouter wires the full HTTP surface over a file store in a temp
// dir, with rate limiting off so tests never trip it.
func newTestRouter(t *testing.T, mutate ...func(*dietHTTP.RouterConfig)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)

	recorder := service.NewActivityRecorder(store.Activity, zerolog.Nop())
	handler := dietHTTP.NewHandler(
		service.NewCatalogService(store.FoodItems, recorder),
		service.NewPackageService(store.DietPackages, store.FoodItems, recorder),
		service.NewRequestService(store.DietRequests, recorder),
		service.NewOrderService(store, recorder),
		service.NewCanteenService(store.CanteenOrders, recorder),
		service.NewCustomPlanService(store.CustomPlans, store.FoodItems, recorder),
	)

	cfg := dietHTTP.RouterConfig{
		RateLimit: 0,
		Activity:  store.Activity,
	}
	for _, m := range mutate {
		m(&cfg)
	}

	return dietHTTP.NewRouter(handler, dietHTTP.NewHealthHandler(), cfg)
}

// doJSON performs a request with an optional JSON body and returns the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data envelope of a success response into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
