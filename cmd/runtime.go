package cmd

import (
	"fmt"

	"facet-reconciler/core/config"
	"facet-reconciler/core/database"
	"facet-reconciler/core/logger"
	"facet-reconciler/core/storage"
	"facet-reconciler/feature/facet"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what most commands need: configuration, logger, storage
// client and, when available, the registry database.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	db     *gorm.DB
}

// loadRuntime loads configuration and connects to storage and the database.
// A failed database connection is fatal only when requireDB is set.
func loadRuntime(requireDB bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: l, client: client}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		if requireDB {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		l.Warn("Optional database connection failed", zap.Error(err))
		return rt, nil
	}
	rt.db = db
	return rt, nil
}

// facetService builds the facet service from the runtime.
func (r *runtime) facetService() *facet.Service {
	return facet.NewService(r.cfg.Facet, r.client, r.cfg.Storage.Bucket, r.db, r.cfg.Server.Platform(), r.logger)
}
