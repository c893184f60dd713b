// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/diet-service/config"
	"github.com/guttosm/diet-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB store and circuit breaker).
	// Nil when MongoDB is disabled or unreachable; services fall back to
	// the JSON file store.
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services on top of whichever store is available
	serviceComponents, err := InitializeServices(cfg, dbComponents)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
