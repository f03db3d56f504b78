// Package app provides service initialization.
package app

import (
	"github.com/kooply/label-service/config"
	"github.com/kooply/label-service/internal/repository"
	"github.com/kooply/label-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Labels service.LabelService
	Export *service.ExportService
}

// InitializeServices initializes business logic services.
//
// Without a database the in-memory allocator backs generation; serials then
// restart at zero on every boot, which is only acceptable for local
// development and tests.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	var allocator service.SerialAllocator
	var labelRepo repository.LabelRepositoryInterface

	if dbComponents != nil {
		allocator = dbComponents.CounterRepo
		labelRepo = dbComponents.LabelRepo
	} else {
		allocator = service.NewMemoryAllocator()
		log.Warn().Msg("MongoDB disabled, using in-memory serial allocator")
	}

	var opts []service.LabelOption
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	return &ServiceComponents{
		Labels: service.NewLabelService(allocator, labelRepo, opts...),
		Export: service.NewExportService(cfg.Label.TrackingBaseURL),
	}
}
