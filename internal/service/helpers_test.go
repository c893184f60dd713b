package service_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/diet-service/internal/repository"
	"github.com/guttosm/diet-service/internal/service"
)

// testEnv wires every service over a file store in a temp dir, so tests
// exercise the same repository contract the Mongo backend implements.
type testEnv struct {
	store    *repository.Store
	catalog  *service.CatalogService
	packages *service.PackageService
	requests *service.RequestService
	orders   *service.OrderService
	canteen  *service.CanteenService
	plans    *service.CustomPlanService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)

	recorder := service.NewActivityRecorder(store.Activity, zerolog.Nop())
	return &testEnv{
		store:    store,
		catalog:  service.NewCatalogService(store.FoodItems, recorder),
		packages: service.NewPackageService(store.DietPackages, store.FoodItems, recorder),
		requests: service.NewRequestService(store.DietRequests, recorder),
		orders:   service.NewOrderService(store, recorder),
		canteen:  service.NewCanteenService(store.CanteenOrders, recorder),
		plans:    service.NewCustomPlanService(store.CustomPlans, store.FoodItems, recorder),
	}
}
