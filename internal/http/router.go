package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/metrics"
	"github.com/guttosm/diet-service/internal/middleware"
	"github.com/guttosm/diet-service/internal/repository"
	"github.com/guttosm/diet-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit   int
	RateWindow  time.Duration
	APIKeys     map[string]bool
	EnableAuth  bool
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
	AuthService service.Auth
	Activity    repository.ActivityRepository
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
		EnableAuth: false,
	}
}

// NewRouter creates and configures the Gin router for the diet service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)
	registerAPIRoutes(api, handler, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.Activity),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	// API key authentication (when JWT auth is not enabled)
	if cfg.EnableAuth && cfg.AuthService == nil && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
}

// registerAPIRoutes mounts the resource collections and workflow actions.
// With JWT auth enabled, login stays public and everything else moves behind
// the token check.
func registerAPIRoutes(api *gin.RouterGroup, handler *Handler, cfg *RouterConfig) {
	if handler == nil {
		return
	}

	group := api
	if cfg.EnableAuth && cfg.AuthService != nil {
		authHandler := NewAuthHandler(cfg.AuthService)
		api.POST("/auth/login", authHandler.Login)

		group = api.Group("")
		group.Use(JWTAuth(cfg.AuthService))
	}

	registerResource[model.FoodItem](group, "foodItems", handler.Catalog)
	registerResource[model.DietPackage](group, "dietPackages", handler.Packages)
	registerResource[model.DietRequest](group, "dietRequests", handler.Requests)
	registerResource[model.DietOrder](group, "dietOrders", handler.Orders)
	registerResource[model.CanteenOrder](group, "canteenOrders", handler.Canteen)
	registerResource[model.CustomPlan](group, "customPlans", handler.Plans)

	group.POST("/dietRequests/:id/approve", handler.ApproveRequest)
	group.POST("/dietRequests/:id/reject", handler.RejectRequest)
	group.POST("/dietOrders/:id/approve", handler.ApproveOrder)
	group.POST("/dietOrders/:id/reject", handler.RejectOrder)
	group.POST("/dietOrders/:id/pause", handler.PauseOrder)
	group.POST("/dietOrders/:id/restart", handler.RestartOrder)
	group.POST("/canteenOrders/:id/status", handler.UpdateCanteenStatus)
	group.GET("/canteen/summary", handler.CanteenSummary)
	group.POST("/dietPackages/:id/recompute", handler.RecomputePackage)
	group.POST("/dietPackages/:id/refresh-snapshots", handler.RefreshPackageSnapshots)
}
