// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/diet-service/config"
	"github.com/guttosm/diet-service/internal/repository"
	"github.com/guttosm/diet-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Store    *repository.Store
	Activity *service.ActivityRecorder
	Catalog  service.Catalog
	Packages service.Packages
	Requests service.Requests
	Orders   service.Orders
	Canteen  service.Canteen
	Plans    service.CustomPlans
	Auth     service.Auth
}

// InitializeServices initializes business logic services over whichever
// store is available: the MongoDB store when dbComponents is non-nil,
// otherwise the JSON file store.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) (*ServiceComponents, error) {
	var store *repository.Store
	if dbComponents != nil {
		store = dbComponents.Store
	} else {
		fileStore, err := repository.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		log.Info().Str("dir", cfg.Storage.Dir).Msg("Using JSON file store")
		store = fileStore
	}

	activity := service.NewActivityRecorder(store.Activity, log.Logger)

	components := &ServiceComponents{
		Store:    store,
		Activity: activity,
		Catalog:  service.NewCatalogService(store.FoodItems, activity),
		Packages: service.NewPackageService(store.DietPackages, store.FoodItems, activity),
		Requests: service.NewRequestService(store.DietRequests, activity),
		Orders:   service.NewOrderService(store, activity),
		Canteen:  service.NewCanteenService(store.CanteenOrders, activity),
		Plans:    service.NewCustomPlanService(store.CustomPlans, store.FoodItems, activity),
	}

	// JWT auth needs a configured credential; without one the service
	// stays on API keys (or open access) even when auth is enabled.
	if cfg.Auth.Enabled && cfg.Auth.AdminPasswordHash != "" {
		components.Auth = service.NewAuthService(
			cfg.Auth.JWTSecretKey,
			cfg.Auth.TokenTTL,
			cfg.Auth.AdminUser,
			cfg.Auth.AdminPasswordHash,
		)
	}

	return components, nil
}
