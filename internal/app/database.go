// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/courier-portal/config"
	"github.com/guttosm/courier-portal/internal/circuitbreaker"
	"github.com/guttosm/courier-portal/internal/http"
	"github.com/guttosm/courier-portal/internal/metrics"
	"github.com/guttosm/courier-portal/internal/repository"
	"github.com/guttosm/courier-portal/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the activity log service.
// Returns nil if the database is disabled or the connection fails; the
// portal then runs without an activity log.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without activity log")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	logsCB := newCircuitBreaker("mongodb-logs", cfg.CircuitBreakerFailureThreshold, cfg.CircuitBreakerSuccessThreshold, cfg.CircuitBreakerTimeout, nil)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                 db,
		LoggingService:     service.NewLoggingService(logsRepo),
		LogsCircuitBreaker: logsCB,
	}
}

// Checker adapts the MongoDB ping to the readiness probe.
func (d *DatabaseComponents) Checker() http.HealthChecker {
	return mongoChecker{db: d.DB}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check() error {
	return m.db.HealthCheck(context.Background())
}

// newCircuitBreaker builds a breaker whose state is published as a metric and logged.
func newCircuitBreaker(name string, failures, successes int, timeout time.Duration, isFailure func(error) bool) *circuitbreaker.CircuitBreaker {
	cfg := circuitbreaker.DefaultConfig()
	cfg.Name = name
	if failures > 0 {
		cfg.FailureThreshold = failures
	}
	if successes > 0 {
		cfg.SuccessThreshold = successes
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	cfg.IsFailure = isFailure
	cfg.OnStateChange = func(breaker string, from, to circuitbreaker.State) {
		metrics.SetCircuitBreakerState(breaker, int(to))
		log.Warn().
			Str("circuit_breaker", breaker).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("Circuit breaker state changed")
	}

	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(cfg)
}
