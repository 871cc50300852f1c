package registry

import (
	"context"
	"errors"
	"fmt"

	"facet-reconciler/core/database"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/core/sdk"
	"facet-reconciler/feature/facet/models"

	"gorm.io/gorm"
)

// ErrSdkNotFound is returned when an SDK id is not registered.
var ErrSdkNotFound = errors.New("sdk not found")

// KotlinSdkID is the id under which EnsureKotlinSdk registers the Kotlin SDK.
const KotlinSdkID = "kotlin-sdk"

// SdkRegistry stores SDKs and module bindings in a SQL database.
type SdkRegistry struct {
	db *gorm.DB
}

// New creates a registry on db.
func New(db *gorm.DB) *SdkRegistry {
	return &SdkRegistry{db: db}
}

// Migrate creates the registry tables.
func (r *SdkRegistry) Migrate() error {
	return database.Migrate(r.db, models.Tables()...)
}

// List returns every SDK in candidate order.
func (r *SdkRegistry) List(ctx context.Context) ([]models.Sdk, error) {
	var rows []models.Sdk
	if err := r.db.WithContext(ctx).Order("position, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sdks: %w", err)
	}
	return rows, nil
}

// Get returns one SDK.
func (r *SdkRegistry) Get(ctx context.Context, id string) (*models.Sdk, error) {
	var row models.Sdk
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSdkNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sdk %s: %w", id, err)
	}
	return &row, nil
}

// Add registers an SDK. A zero position appends it after the existing ones.
func (r *SdkRegistry) Add(ctx context.Context, s models.Sdk) (*models.Sdk, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("sdk id is required")
	}
	switch sdk.Kind(s.Kind) {
	case sdk.KindJava, sdk.KindKotlin:
	default:
		return nil, fmt.Errorf("unknown sdk kind %q", s.Kind)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.Position == 0 {
			var last int
			if err := tx.Model(&models.Sdk{}).Select("COALESCE(MAX(position), 0)").Row().Scan(&last); err != nil {
				return err
			}
			s.Position = last + 1
		}
		return tx.Create(&s).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add sdk %s: %w", s.ID, err)
	}
	return &s, nil
}

// ProjectSdk returns the default SDK of a project, or nil when unset.
func (r *SdkRegistry) ProjectSdk(ctx context.Context, project string) (*sdk.Candidate, error) {
	var row models.ProjectSdk
	err := r.db.WithContext(ctx).Where("project = ?", project).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project sdk of %s: %w", project, err)
	}

	s, err := r.Get(ctx, row.SdkID)
	if errors.Is(err, ErrSdkNotFound) {
		// A dangling project sdk behaves like none.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := s.ToCandidate()
	return &c, nil
}

// SetProjectSdk sets the default SDK of a project.
func (r *SdkRegistry) SetProjectSdk(ctx context.Context, project, sdkID string) error {
	if _, err := r.Get(ctx, sdkID); err != nil {
		return err
	}
	row := models.ProjectSdk{Project: project}
	err := r.db.WithContext(ctx).
		Where(models.ProjectSdk{Project: project}).
		Assign(map[string]any{"sdk_id": sdkID}).
		FirstOrCreate(&row).Error
	if err != nil {
		return fmt.Errorf("failed to set project sdk of %s: %w", project, err)
	}
	return nil
}

// Environment returns the project SDK and every candidate.
func (r *SdkRegistry) Environment(ctx context.Context, project string) (reconcile.SdkEnvironment, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return reconcile.SdkEnvironment{}, err
	}
	projectSdk, err := r.ProjectSdk(ctx, project)
	if err != nil {
		return reconcile.SdkEnvironment{}, err
	}

	env := reconcile.SdkEnvironment{
		ProjectSdk: projectSdk,
		Available:  make([]sdk.Candidate, 0, len(rows)),
	}
	for _, row := range rows {
		env.Available = append(env.Available, row.ToCandidate())
	}
	return env, nil
}

// Bindings returns the stored SDK binding of every module of a project.
func (r *SdkRegistry) Bindings(ctx context.Context, project string) (map[string]reconcile.Binding, error) {
	var rows []models.ModuleSdk
	if err := r.db.WithContext(ctx).Where("project = ?", project).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list module sdks of %s: %w", project, err)
	}
	out := make(map[string]reconcile.Binding, len(rows))
	for _, row := range rows {
		out[row.Module] = reconcile.Binding{SdkID: row.SdkID, Inherit: row.Inherit}
	}
	return out, nil
}

// Assign binds a module to an explicit SDK.
func (r *SdkRegistry) Assign(ctx context.Context, project, module, sdkID string) error {
	if _, err := r.Get(ctx, sdkID); err != nil {
		return err
	}
	return r.bind(ctx, project, module, sdkID, false)
}

// Inherit marks a module as using the project SDK.
func (r *SdkRegistry) Inherit(ctx context.Context, project, module string) error {
	return r.bind(ctx, project, module, "", true)
}

func (r *SdkRegistry) bind(ctx context.Context, project, module, sdkID string, inherit bool) error {
	row := models.ModuleSdk{Project: project, Module: module}
	err := r.db.WithContext(ctx).
		Where(models.ModuleSdk{Project: project, Module: module}).
		Assign(map[string]any{"sdk_id": sdkID, "inherit": inherit}).
		FirstOrCreate(&row).Error
	if err != nil {
		return fmt.Errorf("failed to bind sdk of %s/%s: %w", project, module, err)
	}
	return nil
}

// Unbind removes the stored binding of a module.
func (r *SdkRegistry) Unbind(ctx context.Context, project, module string) error {
	err := r.db.WithContext(ctx).
		Where("project = ? AND module = ?", project, module).
		Delete(&models.ModuleSdk{}).Error
	if err != nil {
		return fmt.Errorf("failed to unbind sdk of %s/%s: %w", project, module, err)
	}
	return nil
}

// ForgetProject removes the project SDK and every module binding of a project.
func (r *SdkRegistry) ForgetProject(ctx context.Context, project string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project = ?", project).Delete(&models.ModuleSdk{}).Error; err != nil {
			return fmt.Errorf("failed to delete module sdks of %s: %w", project, err)
		}
		if err := tx.Where("project = ?", project).Delete(&models.ProjectSdk{}).Error; err != nil {
			return fmt.Errorf("failed to delete project sdk of %s: %w", project, err)
		}
		return nil
	})
}

// EnsureKotlinSdk returns the first registered Kotlin SDK, registering one
// when there is none. created reports whether a row was added.
func (r *SdkRegistry) EnsureKotlinSdk(ctx context.Context) (c *sdk.Candidate, created bool, err error) {
	var row models.Sdk
	err = r.db.WithContext(ctx).
		Where("kind = ?", string(sdk.KindKotlin)).
		Order("position, id").
		Take(&row).Error
	if err == nil {
		found := row.ToCandidate()
		return &found, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up kotlin sdk: %w", err)
	}

	added, err := r.Add(ctx, models.Sdk{
		ID:   KotlinSdkID,
		Name: "Kotlin SDK",
		Kind: string(sdk.KindKotlin),
	})
	if err != nil {
		return nil, false, err
	}
	fresh := added.ToCandidate()
	return &fresh, true, nil
}
