// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/diet-service/config"
	"github.com/guttosm/diet-service/internal/circuitbreaker"
	"github.com/guttosm/diet-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB      *repository.MongoDB
	Store   *repository.Store
	Breaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and builds the
// repository store on top of it. Returns nil if the database is disabled
// or the connection fails, in which case the caller falls back to the
// JSON file store.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with file store")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for activity logs
	ttlDays := int(cfg.ActivityTTL.Hours() / 24)
	if err := db.SetActivityTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set activity TTL index (may already exist)")
	}

	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb",
	})

	return &DatabaseComponents{
		DB:      db,
		Store:   repository.NewMongoStore(db, breaker),
		Breaker: breaker,
	}
}

// mongoChecker adapts MongoDB's context-aware health check to the
// router's HealthChecker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.db.HealthCheck(ctx)
}
