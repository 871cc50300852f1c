package reconcile

import (
	"fmt"

	"facet-reconciler/core/args"
	"facet-reconciler/core/classify"
	"facet-reconciler/core/pluginopts"
	"facet-reconciler/core/sdk"
)

// Engine reconciles single modules. It holds only immutable collaborators and
// is safe for concurrent use.
type Engine struct {
	registry   *classify.Registry
	normalizer args.Normalizer
	resolver   *sdk.Resolver
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRegistry replaces the default classification registry.
func WithRegistry(r *classify.Registry) EngineOption {
	return func(e *Engine) { e.registry = r }
}

// WithNormalizer replaces the default path normalizer.
func WithNormalizer(n args.Normalizer) EngineOption {
	return func(e *Engine) { e.normalizer = n }
}

// WithResolver replaces the default SDK resolver.
func WithResolver(r *sdk.Resolver) EngineOption {
	return func(e *Engine) { e.resolver = r }
}

// NewEngine returns an engine using the default registry, a normalizer that
// does not touch the filesystem and the default resolver. The resolver always
// compares SDK homes through the engine's normalizer.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		registry: classify.Default(),
		resolver: sdk.NewResolver(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resolver = e.resolver.Normalizing(e.normalizer)
	return e
}

// Registry returns the classification registry in use.
func (e *Engine) Registry() *classify.Registry {
	return e.registry
}

// Reconcile computes the settings of one module against the platform default.
// Neither module.Current nor defaults is modified.
func (e *Engine) Reconcile(module Module, defaults *args.Bucket, env Environment) (*Result, error) {
	if !module.Platform.IsValid() {
		return nil, fmt.Errorf("module %s: %w: %q", module.Name, args.ErrUnknownPlatform, module.Platform)
	}
	if err := defaults.Validate(module.Platform); err != nil {
		return nil, fmt.Errorf("module %s defaults: %w", module.Name, err)
	}
	if err := module.Current.Validate(module.Platform); err != nil {
		return nil, fmt.Errorf("module %s: %w", module.Name, err)
	}

	normalizedDefaults := e.normalizer.Bucket(defaults)

	pluginSpec := args.MustLookup(args.PluginOptions)
	current := module.Current.Clone()
	merged := pluginopts.Merge(module.Settings.PluginOptions, current.Multi(pluginSpec))
	if len(merged) > 0 {
		current.MustSet(args.PluginOptions, args.Multi(merged...))
	}
	current = e.normalizer.Bucket(current)

	decision := sdk.Decision{Action: sdk.ActionSkip}
	if env.ResolveSdk {
		decision = e.resolver.Resolve(sdk.Request{
			Module: sdk.Module{
				Name:            module.Name,
				ExternalSdk:     module.ExternalSdk,
				PlatformManaged: module.PlatformManaged,
			},
			Platform:   module.Platform,
			Bucket:     current,
			ProjectSdk: env.ProjectSdk,
			Available:  env.Available,
			Siblings:   env.Siblings,
		})
	}

	additional, err := AdditionalArguments(e.registry, current, normalizedDefaults, module.Platform)
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", module.Name, err)
	}

	return &Result{
		Module:              module.Name,
		Platform:            module.Platform,
		AdditionalArguments: additional,
		PluginOptions:       merged,
		Sdk:                 decision,
	}, nil
}
