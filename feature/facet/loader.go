package facet

import (
	"facet-reconciler/core/args"
	"facet-reconciler/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new facet feature.
func NewFeature(cfg Config, client storage.Client, bucket string, db *gorm.DB, defaultPlatform args.Platform, logger *zap.Logger) *Feature {
	svc := NewService(cfg, client, bucket, db, defaultPlatform, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "facet"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the SDK registry when a database is connected and registers
// the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.service.registry != nil {
		if err := f.service.Migrate(); err != nil {
			return err
		}
	} else {
		f.service.logger.Warn("No database connected, project reconciliation disabled")
	}
	f.handler.RegisterRoutes(app)
	return nil
}
