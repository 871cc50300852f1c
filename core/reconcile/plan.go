package reconcile

import (
	"context"
	"fmt"

	"facet-reconciler/core/sdk"
)

// ReconcileWithPlan reconciles every module of the project and returns a plan
// with results and actions. It does NOT execute actions; use ApplyPlan for that.
//
// Modules are processed in the order the source returns them. SDK decisions
// are simulated as the plan is built so that later modules see the SDKs
// chosen for earlier siblings.
func ReconcileWithPlan(ctx context.Context, spec *Spec, opts ReconcileOptions) (*ReconcilePlan, error) {
	modules, err := spec.Source.LoadModules(ctx, spec.Project)
	if err != nil {
		return nil, fmt.Errorf("failed to load modules of %s: %w", spec.Project, err)
	}

	var sdkEnv SdkEnvironment
	if !opts.SkipSdk {
		sdkEnv, err = spec.Source.LoadSdkEnvironment(ctx, spec.Project)
		if err != nil {
			return nil, fmt.Errorf("failed to load sdk environment of %s: %w", spec.Project, err)
		}
	}

	engine := spec.engine()
	siblings := initialSiblings(modules, sdkEnv)
	plan := &ReconcilePlan{
		Project: spec.Project,
		Results: make([]Result, 0, len(modules)),
		Actions: []Action{},
	}

	for i, module := range modules {
		defaults, err := GetOrLoadDefaults(ctx, spec, module.Platform)
		if err != nil {
			return nil, err
		}

		env := Environment{
			SdkEnvironment: sdkEnv,
			Siblings:       siblingsExcept(siblings, i),
			ResolveSdk:     !opts.SkipSdk,
		}
		result, err := engine.Reconcile(module, defaults, env)
		if err != nil {
			return nil, err
		}

		switch result.Sdk.Action {
		case sdk.ActionAssign:
			siblings[i].Sdk = result.Sdk.Sdk
		case sdk.ActionInherit:
			siblings[i].Sdk = sdkEnv.ProjectSdk
		}

		plan.Results = append(plan.Results, *result)
		plan.Actions = append(plan.Actions, planActions(module, result)...)
	}

	plan.Summary = summarize(plan.Results, plan.Actions)
	return plan, nil
}

// ApplyPlan executes the actions in a reconcile plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, spec *Spec, plan *ReconcilePlan, opts ReconcileOptions) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	mutator, ok := spec.Source.(Mutator)
	if !ok {
		return 0, fmt.Errorf("source %s does not implement Mutator interface", spec.Source.Name())
	}

	var (
		saves    []Action
		bindings []Action
	)
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionSaveSettings:
			saves = append(saves, action)
		case ActionAssignSdk, ActionInheritSdk:
			bindings = append(bindings, action)
		}
	}

	if len(saves) > 0 {
		type SettingsBatchSaver interface {
			SaveSettingsBatch(ctx context.Context, project string, actions []Action) error
		}
		if batchSaver, ok := mutator.(SettingsBatchSaver); ok {
			if err := batchSaver.SaveSettingsBatch(ctx, plan.Project, saves); err != nil {
				return executed, fmt.Errorf("failed to batch save settings: %w", err)
			}
			executed += len(saves)
		} else {
			for _, action := range saves {
				if err := mutator.SaveSettings(ctx, plan.Project, action.Module, *action.Settings); err != nil {
					return executed, fmt.Errorf("failed to save settings of %s: %w", action.Module, err)
				}
				executed++
			}
		}
	}

	for _, action := range bindings {
		if action.Type == ActionAssignSdk {
			err = mutator.AssignSdk(ctx, plan.Project, action.Module, action.SdkID)
		} else {
			err = mutator.InheritSdk(ctx, plan.Project, action.Module)
		}
		if err != nil {
			return executed, fmt.Errorf("failed to %s for %s: %w", action.Type, action.Module, err)
		}
		executed++
	}

	return executed, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
// It returns the plan, number of actions executed, and any error.
func ReconcileAndApply(ctx context.Context, spec *Spec, opts ReconcileOptions) (*ReconcilePlan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, spec, plan, opts)
	return plan, executed, err
}

// initialSiblings derives each module's SDK from its stored binding.
func initialSiblings(modules []Module, env SdkEnvironment) []sdk.Sibling {
	byID := make(map[string]*sdk.Candidate, len(env.Available))
	for i := range env.Available {
		byID[env.Available[i].ID] = &env.Available[i]
	}

	siblings := make([]sdk.Sibling, len(modules))
	for i, m := range modules {
		siblings[i].Name = m.Name
		switch {
		case m.Binding.Inherit:
			siblings[i].Sdk = env.ProjectSdk
		case m.Binding.SdkID != "":
			siblings[i].Sdk = byID[m.Binding.SdkID]
		}
	}
	return siblings
}

func siblingsExcept(siblings []sdk.Sibling, skip int) []sdk.Sibling {
	out := make([]sdk.Sibling, 0, len(siblings))
	for i, s := range siblings {
		if i != skip {
			out = append(out, s)
		}
	}
	return out
}

// planActions lists the mutations that bring the module's stored state in
// line with the result.
func planActions(module Module, result *Result) []Action {
	var actions []Action

	settings := result.Settings()
	if !settings.Equal(module.Settings) {
		actions = append(actions, Action{
			Type:     ActionSaveSettings,
			Module:   module.Name,
			Reason:   fmt.Sprintf("%d additional arguments, %d plugin options", len(settings.AdditionalArguments), len(settings.PluginOptions)),
			Settings: &settings,
		})
	}

	switch result.Sdk.Action {
	case sdk.ActionAssign:
		if module.Binding.Inherit || module.Binding.SdkID != result.Sdk.Sdk.ID {
			actions = append(actions, Action{
				Type:   ActionAssignSdk,
				Module: module.Name,
				Reason: "resolved by " + result.Sdk.Strategy,
				SdkID:  result.Sdk.Sdk.ID,
			})
		}
	case sdk.ActionInherit:
		if !module.Binding.Inherit {
			reason := "no matching sdk"
			if result.Sdk.Strategy != "" {
				reason = "resolved by " + result.Sdk.Strategy
			}
			actions = append(actions, Action{
				Type:   ActionInheritSdk,
				Module: module.Name,
				Reason: reason,
			})
		}
	}

	return actions
}

func summarize(results []Result, actions []Action) PlanSummary {
	summary := PlanSummary{TotalModules: len(results)}
	for _, r := range results {
		if len(r.AdditionalArguments) > 0 {
			summary.WithAdditionalArguments++
		}
		if r.Sdk.Action == sdk.ActionSkip {
			summary.SdkSkipped++
		}
	}
	for _, a := range actions {
		switch a.Type {
		case ActionSaveSettings:
			summary.SettingsChanges++
		case ActionAssignSdk:
			summary.SdkAssignments++
		case ActionInheritSdk:
			summary.SdkInherits++
		}
	}
	return summary
}
