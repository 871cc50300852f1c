package facet

import (
	"context"
	"errors"
	"fmt"

	"facet-reconciler/core/args"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/core/storage"
	"facet-reconciler/feature/facet/adapter"
	"facet-reconciler/feature/facet/models"
	"facet-reconciler/feature/facet/registry"
	"facet-reconciler/feature/facet/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrRegistryUnavailable is returned by project operations when no
	// database is connected.
	ErrRegistryUnavailable = errors.New("sdk registry unavailable")
	// ErrInvalidRequest is returned for malformed request bodies.
	ErrInvalidRequest = errors.New("invalid request")
)

// Service handles facet reconciliation.
type Service struct {
	cfg             Config
	engine          *reconcile.Engine
	store           *store.SnapshotStore
	registry        *registry.SdkRegistry
	defaultPlatform args.Platform
	logger          *zap.Logger
}

// NewService creates a new facet service. db may be nil, in which case only
// inline reconciliation and field listing are available.
func NewService(cfg Config, client storage.Client, bucket string, db *gorm.DB, defaultPlatform args.Platform, logger *zap.Logger) *Service {
	s := &Service{
		cfg:             cfg,
		engine:          cfg.Engine(),
		store:           store.New(client, bucket, cfg.Prefix),
		defaultPlatform: defaultPlatform,
		logger:          logger,
	}
	if db != nil {
		s.registry = registry.New(db)
	}
	return s
}

// Store returns the snapshot store.
func (s *Service) Store() *store.SnapshotStore {
	return s.store
}

// Registry returns the SDK registry, or nil without a database.
func (s *Service) Registry() *registry.SdkRegistry {
	return s.registry
}

// Migrate creates the registry tables.
func (s *Service) Migrate() error {
	if s.registry == nil {
		return ErrRegistryUnavailable
	}
	return s.registry.Migrate()
}

// Spec returns the reconcile spec of a project.
func (s *Service) Spec(project string) (*reconcile.Spec, error) {
	if s.registry == nil {
		return nil, ErrRegistryUnavailable
	}
	return &reconcile.Spec{
		Project:  project,
		Source:   adapter.New(s.store, s.registry, s.cfg.Workers),
		Engine:   s.engine,
		CacheTTL: s.cfg.CacheTTL(),
	}, nil
}

// Reconcile reconciles a single module supplied inline.
func (s *Service) Reconcile(req models.ReconcileRequest) (*reconcile.Result, error) {
	platform := s.defaultPlatform
	if req.Platform != "" {
		p, err := args.ParsePlatform(req.Platform)
		if err != nil {
			return nil, err
		}
		platform = p
	}

	current, defaults := req.Current, req.Defaults
	if current == nil {
		current = args.NewBucket()
	}
	if defaults == nil {
		defaults = args.NewBucket()
	}

	module := reconcile.Module{
		Name:            req.Module,
		Platform:        platform,
		Current:         current,
		Settings:        reconcile.Settings{PluginOptions: req.PluginOptions},
		ExternalSdk:     req.ExternalSdk,
		PlatformManaged: req.PlatformManaged,
	}

	env := reconcile.Environment{}
	if req.Sdk != nil {
		env.SdkEnvironment = *req.Sdk
		env.Siblings = req.Siblings
		env.ResolveSdk = true
	}
	return s.engine.Reconcile(module, defaults, env)
}

// Plan builds the reconcile plan of a project without applying it.
func (s *Service) Plan(ctx context.Context, project string, skipSdk bool) (*reconcile.ReconcilePlan, error) {
	spec, err := s.Spec(project)
	if err != nil {
		return nil, err
	}
	return reconcile.ReconcileWithPlan(ctx, spec, reconcile.ReconcileOptions{SkipSdk: skipSdk})
}

// Apply plans a project and applies the plan when confirmed and not a dry run.
func (s *Service) Apply(ctx context.Context, project string, opts reconcile.ReconcileOptions) (*models.ApplyReport, error) {
	spec, err := s.Spec(project)
	if err != nil {
		return nil, err
	}

	plan, executed, err := reconcile.ReconcileAndApply(ctx, spec, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Facet plan applied",
		zap.String("project", project),
		zap.Int("actions", len(plan.Actions)),
		zap.Int("executed", executed),
		zap.Bool("dry_run", opts.DryRun),
	)
	return &models.ApplyReport{
		Plan:     plan,
		Executed: executed,
		DryRun:   opts.DryRun || !opts.Confirmed,
	}, nil
}

// PutModule stores a module snapshot after validating its arguments.
func (s *Service) PutModule(ctx context.Context, project string, snap models.ModuleSnapshot) error {
	if snap.Name == "" {
		return fmt.Errorf("%w: module name is required", ErrInvalidRequest)
	}
	if !snap.Platform.IsValid() {
		return fmt.Errorf("module %s: %w: %q", snap.Name, args.ErrUnknownPlatform, snap.Platform)
	}
	if snap.Arguments != nil {
		if err := snap.Arguments.Validate(snap.Platform); err != nil {
			return fmt.Errorf("module %s: %w", snap.Name, err)
		}
	}
	return s.store.PutModule(ctx, project, snap)
}

// PutDefaults stores the default bucket of a platform and drops the cached
// copy.
func (s *Service) PutDefaults(ctx context.Context, project string, platform string, defaults *args.Bucket) error {
	p, err := args.ParsePlatform(platform)
	if err != nil {
		return err
	}
	if defaults == nil {
		defaults = args.NewBucket()
	}
	if err := defaults.Validate(p); err != nil {
		return fmt.Errorf("%s defaults: %w", p, err)
	}
	if err := s.store.PutDefaults(ctx, project, p, defaults); err != nil {
		return err
	}

	if spec, err := s.Spec(project); err == nil {
		reconcile.InvalidateCache(spec)
	}
	return nil
}

// DeleteModule removes a module's snapshot, settings and SDK binding.
func (s *Service) DeleteModule(ctx context.Context, project, module string) error {
	if err := s.store.DeleteModule(ctx, project, module); err != nil {
		return err
	}
	if s.registry != nil {
		return s.registry.Unbind(ctx, project, module)
	}
	return nil
}

// DeleteProject removes every stored object and SDK binding of a project.
func (s *Service) DeleteProject(ctx context.Context, project string) (*models.DeleteReport, error) {
	count, err := s.store.DeleteProject(ctx, project)
	if err != nil {
		return nil, err
	}
	if s.registry != nil {
		if err := s.registry.ForgetProject(ctx, project); err != nil {
			return nil, err
		}
		if spec, err := s.Spec(project); err == nil {
			reconcile.InvalidateCache(spec)
		}
	}
	s.logger.Info("Project deleted", zap.String("project", project), zap.Int("objects", count))
	return &models.DeleteReport{Project: project, Objects: count}, nil
}

// Fields lists the schema of a platform with the class of every field.
func (s *Service) Fields(platform string) (*models.FieldsReport, error) {
	p, err := args.ParsePlatform(platform)
	if err != nil {
		return nil, err
	}

	reg := s.engine.Registry()
	report := &models.FieldsReport{
		Platform:      p,
		SchemaVersion: args.SchemaVersion,
		Fields:        []models.FieldInfo{},
	}
	for _, spec := range args.AllFields() {
		if !p.Accepts(spec.ID) {
			continue
		}
		report.Fields = append(report.Fields, models.FieldInfo{
			ID:    spec.ID,
			Kind:  spec.Kind.String(),
			Path:  spec.Path,
			Class: reg.Classify(p, spec.ID),
		})
	}
	return report, nil
}

// IsInvalidInput reports whether err is caused by the caller's input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, args.ErrUnknownField) ||
		errors.Is(err, args.ErrKindMismatch) ||
		errors.Is(err, args.ErrUnknownPlatform) ||
		errors.Is(err, registry.ErrSdkNotFound) ||
		errors.Is(err, ErrInvalidRequest)
}
