package integrity

import (
	"context"

	"facet-reconciler/core/storage"
	"facet-reconciler/feature/facet/models"
	"facet-reconciler/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
		db:     db,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.prefix)
}

// CreateBucket creates the snapshot bucket.
func (s *Service) CreateBucket(ctx context.Context) error {
	return checks.CreateBucket(ctx, s.client, s.bucket, s.logger)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckServer compares the SDK registry tables with the facet models.
func (s *Service) CheckServer() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.Tables()...)
}
