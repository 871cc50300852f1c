package reconcile

import (
	"context"

	"facet-reconciler/core/args"
)

// Source supplies the inputs of a project reconciliation. Implementations
// typically read module snapshots from object storage and the SDK table from
// a database.
type Source interface {
	// Name returns the unique name of this source (used in cache keys).
	Name() string

	// LoadModules returns the project's modules in a stable order. The order
	// matters: it is the sibling order used by the SDK fallback search.
	LoadModules(ctx context.Context, project string) ([]Module, error)

	// LoadDefaults returns the default bucket the compiler produces for a
	// platform with no overrides. A missing default is an empty bucket.
	LoadDefaults(ctx context.Context, project string, platform args.Platform) (*args.Bucket, error)

	// LoadSdkEnvironment returns the project SDK and every known SDK.
	LoadSdkEnvironment(ctx context.Context, project string) (SdkEnvironment, error)
}

// Mutator applies planned actions to the host's module state.
type Mutator interface {
	// SaveSettings persists the facet settings of a module.
	SaveSettings(ctx context.Context, project, module string, settings Settings) error

	// AssignSdk binds a module to an explicit SDK.
	AssignSdk(ctx context.Context, project, module, sdkID string) error

	// InheritSdk marks a module as inheriting the project SDK.
	InheritSdk(ctx context.Context, project, module string) error
}
