// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/kooply/label-service/config"
	"github.com/kooply/label-service/internal/http"
	"github.com/kooply/label-service/internal/repository"
)

// mongoChecker adapts MongoDB ping to the readiness probe.
type mongoChecker struct {
	db *repository.MongoDB
}

func (c mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.db.HealthCheck(ctx)
}

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.LabelHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewLabelHandler(services.Labels, services.Export)
	healthHandler := http.NewHealthHandler()

	// Register storage health and circuit breakers for readiness
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		if dbComponents.LabelsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_labels", dbComponents.LabelsCircuitBreaker)
		}
		if dbComponents.CounterCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_serial_counters", dbComponents.CounterCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		EnableAuth:  cfg.Auth.Enabled,
		APIKeys:     cfg.Auth.APIKeys,
		JWTSecret:   cfg.Auth.JWTSecretKey,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
