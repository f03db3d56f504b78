// Package app provides database initialization and setup.
package app

import (
	"github.com/kooply/label-service/config"
	"github.com/kooply/label-service/internal/circuitbreaker"
	"github.com/kooply/label-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	LabelRepo             repository.LabelRepositoryInterface
	CounterRepo           repository.SerialCounterRepositoryInterface
	LabelsCircuitBreaker  *circuitbreaker.CircuitBreaker
	CounterCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the label
// and serial counter repositories behind circuit breakers.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	labelsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-labels",
	})

	counterCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-serial-counters",
	})

	labelRepo := repository.NewLabelRepositoryWithCircuitBreaker(repository.NewLabelRepository(db), labelsCB)
	counterRepo := repository.NewSerialCounterRepositoryWithCircuitBreaker(repository.NewSerialCounterRepository(db), counterCB)

	return &DatabaseComponents{
		DB:                    db,
		LabelRepo:             labelRepo,
		CounterRepo:           counterRepo,
		LabelsCircuitBreaker:  labelsCB,
		CounterCircuitBreaker: counterCB,
	}
}
