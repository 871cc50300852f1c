package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"facet-reconciler/core/args"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/feature/facet/models"

	"golang.org/x/sync/errgroup"
)

// Snapshots is the module and settings storage the adapter reads and writes.
type Snapshots interface {
	ListModules(ctx context.Context, project string) ([]models.ModuleSnapshot, error)
	GetDefaults(ctx context.Context, project string, platform args.Platform) (*args.Bucket, error)
	GetSettings(ctx context.Context, project, module string) (reconcile.Settings, error)
	PutSettings(ctx context.Context, project, module string, settings reconcile.Settings) error
}

// Sdks is the SDK table and module binding storage.
type Sdks interface {
	Environment(ctx context.Context, project string) (reconcile.SdkEnvironment, error)
	Bindings(ctx context.Context, project string) (map[string]reconcile.Binding, error)
	Assign(ctx context.Context, project, module, sdkID string) error
	Inherit(ctx context.Context, project, module string) error
}

// DefaultWorkers bounds concurrent object reads and writes.
const DefaultWorkers = 16

// FacetAdapter implements reconcile.Source and reconcile.Mutator on top of the
// snapshot store and the SDK registry.
type FacetAdapter struct {
	snapshots Snapshots
	sdks      Sdks
	workers   int
}

// New creates an adapter. A non-positive workers value uses DefaultWorkers.
func New(snapshots Snapshots, sdks Sdks, workers int) *FacetAdapter {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &FacetAdapter{snapshots: snapshots, sdks: sdks, workers: workers}
}

// Name returns the unique name of this adapter.
func (a *FacetAdapter) Name() string {
	return "facet"
}

// LoadModules reads the module snapshots of a project along with their
// persisted settings and SDK bindings.
func (a *FacetAdapter) LoadModules(ctx context.Context, project string) ([]reconcile.Module, error) {
	snapshots, err := a.snapshots.ListModules(ctx, project)
	if err != nil {
		return nil, err
	}
	bindings, err := a.sdks.Bindings(ctx, project)
	if err != nil {
		return nil, err
	}

	modules := make([]reconcile.Module, len(snapshots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, snap := range snapshots {
		i, snap := i, snap
		modules[i] = snap.ToModule()
		modules[i].Binding = bindings[snap.Name]
		g.Go(func() error {
			settings, err := a.snapshots.GetSettings(gctx, project, snap.Name)
			if err != nil {
				return fmt.Errorf("failed to load settings of %s: %w", snap.Name, err)
			}
			modules[i].Settings = settings
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return modules, nil
}

// LoadDefaults returns the stored default bucket of a platform.
func (a *FacetAdapter) LoadDefaults(ctx context.Context, project string, platform args.Platform) (*args.Bucket, error) {
	return a.snapshots.GetDefaults(ctx, project, platform)
}

// LoadSdkEnvironment returns the project's SDK table.
func (a *FacetAdapter) LoadSdkEnvironment(ctx context.Context, project string) (reconcile.SdkEnvironment, error) {
	return a.sdks.Environment(ctx, project)
}

// SaveSettings persists the settings of one module.
func (a *FacetAdapter) SaveSettings(ctx context.Context, project, module string, settings reconcile.Settings) error {
	return a.snapshots.PutSettings(ctx, project, module, settings)
}

// AssignSdk binds a module to an explicit SDK.
func (a *FacetAdapter) AssignSdk(ctx context.Context, project, module, sdkID string) error {
	return a.sdks.Assign(ctx, project, module, sdkID)
}

// InheritSdk marks a module as inheriting the project SDK.
func (a *FacetAdapter) InheritSdk(ctx context.Context, project, module string) error {
	return a.sdks.Inherit(ctx, project, module)
}

// SaveSettingsBatch writes the settings of many modules concurrently using a
// worker pool. Each action targets a distinct object.
func (a *FacetAdapter) SaveSettingsBatch(ctx context.Context, project string, actions []reconcile.Action) error {
	if len(actions) == 0 {
		return nil
	}

	actionsCh := make(chan reconcile.Action, len(actions))
	errorCh := make(chan error, len(actions))
	for _, action := range actions {
		actionsCh <- action
	}
	close(actionsCh)

	workers := a.workers
	if workers > len(actions) {
		workers = len(actions)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for action := range actionsCh {
				if action.Settings == nil {
					errorCh <- fmt.Errorf("save failed for %s: no settings", action.Module)
					continue
				}
				if err := a.SaveSettings(ctx, project, action.Module, *action.Settings); err != nil {
					errorCh <- fmt.Errorf("save failed for %s: %w", action.Module, err)
				}
			}
		}()
	}

	wg.Wait()
	close(errorCh)

	var errs []string
	for err := range errorCh {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("batch save had %d errors: %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}
