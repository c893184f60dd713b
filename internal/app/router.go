// Package app provides router configuration.
package app

import (
	"github.com/guttosm/diet-service/config"
	"github.com/guttosm/diet-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(
		services.Catalog,
		services.Packages,
		services.Requests,
		services.Orders,
		services.Canteen,
		services.Plans,
	)

	healthHandler := http.NewHealthHandler()

	// Register database health monitoring
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		if dbComponents.Breaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb", dbComponents.Breaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		EnableAuth:  cfg.Auth.Enabled,
		APIKeys:     cfg.Auth.APIKeys,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
		AuthService: services.Auth,
		Activity:    services.Store.Activity,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
