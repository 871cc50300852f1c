package reconcile

import (
	"time"

	"facet-reconciler/core/args"
	"facet-reconciler/core/sdk"
)

// Settings is the persisted facet configuration of a module: the additional
// arguments that deviate from the platform default and the plugin options.
type Settings struct {
	// AdditionalArguments lists non-primary fields whose value differs from
	// the default, in bucket order.
	AdditionalArguments []args.Argument `json:"additional_arguments"`

	// PluginOptions is the merged plugin option list.
	PluginOptions []string `json:"plugin_options"`
}

// Equal reports whether both settings hold the same arguments and options in
// the same order.
func (s Settings) Equal(o Settings) bool {
	if len(s.AdditionalArguments) != len(o.AdditionalArguments) || len(s.PluginOptions) != len(o.PluginOptions) {
		return false
	}
	for i, a := range s.AdditionalArguments {
		b := o.AdditionalArguments[i]
		if a.Field != b.Field || !a.Value.Equal(b.Value) {
			return false
		}
	}
	for i := range s.PluginOptions {
		if s.PluginOptions[i] != o.PluginOptions[i] {
			return false
		}
	}
	return true
}

// Binding is the SDK setting currently stored for a module.
type Binding struct {
	// SdkID is the explicitly assigned SDK, empty when inheriting.
	SdkID string `json:"sdk_id,omitempty"`

	// Inherit is true when the module uses the project SDK.
	Inherit bool `json:"inherit"`
}

// Module is one module to reconcile, as supplied by a Source.
type Module struct {
	// Name is the unique module name within the project.
	Name string `json:"name"`

	// Platform is the module's target platform.
	Platform args.Platform `json:"platform"`

	// Current is the module's current argument bucket.
	Current *args.Bucket `json:"current"`

	// Settings are the facet settings persisted by the previous reconciliation.
	Settings Settings `json:"settings"`

	// Binding is the module's current SDK binding.
	Binding Binding `json:"binding"`

	// ExternalSdk marks an SDK configured by an external build system.
	ExternalSdk bool `json:"external_sdk"`

	// PlatformManaged marks an SDK set up by a platform plugin.
	PlatformManaged bool `json:"platform_managed"`
}

// SdkEnvironment is the project's SDK table as seen by the resolver.
type SdkEnvironment struct {
	// ProjectSdk is the project default SDK, if any.
	ProjectSdk *sdk.Candidate `json:"project_sdk,omitempty"`

	// Available lists every known SDK in registry order.
	Available []sdk.Candidate `json:"available"`
}

// Environment is the per-call SDK context of a reconciliation.
type Environment struct {
	SdkEnvironment

	// Siblings are the project's modules with their resolved SDKs, in order.
	Siblings []sdk.Sibling

	// ResolveSdk enables SDK resolution. When false the decision is skip.
	ResolveSdk bool
}

// Result is the reconciliation output for a single module.
type Result struct {
	// Module is the module name.
	Module string `json:"module"`

	// Platform is the module's platform.
	Platform args.Platform `json:"platform"`

	// AdditionalArguments lists the fields that need explicit persistence.
	AdditionalArguments []args.Argument `json:"additional_arguments"`

	// PluginOptions is the merged plugin option list.
	PluginOptions []string `json:"plugin_options"`

	// Sdk is the SDK decision the caller must apply.
	Sdk sdk.Decision `json:"sdk"`
}

// Settings returns the settings to persist for this result.
func (r *Result) Settings() Settings {
	return Settings{
		AdditionalArguments: r.AdditionalArguments,
		PluginOptions:       r.PluginOptions,
	}
}

// Spec defines the configuration for a project reconciliation.
type Spec struct {
	// Project is the project whose modules are reconciled.
	Project string

	// Source provides modules, defaults and the SDK environment. If it also
	// implements Mutator, plans can be applied.
	Source Source

	// Engine performs the per-module reconciliation. Nil uses NewEngine().
	Engine *Engine

	// CacheTTL is the time-to-live for cached default buckets.
	// If zero, caching is disabled.
	CacheTTL time.Duration
}

// CacheKey returns a unique key for caching the defaults of one platform.
func (s *Spec) CacheKey(platform args.Platform) string {
	return s.Source.Name() + "|" + s.Project + "|" + string(platform)
}

func (s *Spec) engine() *Engine {
	if s.Engine == nil {
		return NewEngine()
	}
	return s.Engine
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionSaveSettings persists new facet settings for a module.
	ActionSaveSettings ActionType = "save_settings"
	// ActionAssignSdk binds a module to an explicit SDK.
	ActionAssignSdk ActionType = "assign_sdk"
	// ActionInheritSdk marks a module as inheriting the project SDK.
	ActionInheritSdk ActionType = "inherit_sdk"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Module is the module name.
	Module string `json:"module"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Settings holds the settings to save. Only populated for ActionSaveSettings.
	Settings *Settings `json:"settings,omitempty"`

	// SdkID is the SDK to assign. Only populated for ActionAssignSdk.
	SdkID string `json:"sdk_id,omitempty"`
}

// ReconcilePlan contains reconciliation results and planned actions.
type ReconcilePlan struct {
	// Project is the reconciled project.
	Project string `json:"project"`

	// Results contains per-module reconciliation data, in module order.
	Results []Result `json:"results"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalModules is the number of reconciled modules.
	TotalModules int `json:"total_modules"`

	// WithAdditionalArguments counts modules with at least one additional argument.
	WithAdditionalArguments int `json:"with_additional_arguments"`

	// SettingsChanges counts planned settings saves.
	SettingsChanges int `json:"settings_changes"`

	// SdkAssignments counts planned explicit SDK assignments.
	SdkAssignments int `json:"sdk_assignments"`

	// SdkInherits counts planned switches to the project SDK.
	SdkInherits int `json:"sdk_inherits"`

	// SdkSkipped counts modules whose SDK is owned externally.
	SdkSkipped int `json:"sdk_skipped"`
}

// ReconcileOptions controls plan and apply behavior.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates user has confirmed the mutations.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool

	// SkipSdk disables SDK resolution; only settings are planned.
	SkipSdk bool
}
