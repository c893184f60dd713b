// Package main is the entry point for the diet-service application.
//
// @title           Diet Service API
// @version         1.0.0
// @description     API for managing hospital diet plans, food catalogs, and canteen orders.
//
//	This service tracks diet requests through approval into active orders and
//	projects approved orders onto the canteen preparation queue.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/diet-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Diets
// @tag.description Diet package, request, and order operations
//
// @tag.name        Canteen
// @tag.description Canteen order preparation and aggregation endpoints
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/diet-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/guttosm/diet-service/config"
	"github.com/guttosm/diet-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
