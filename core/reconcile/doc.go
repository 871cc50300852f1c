// Package reconcile decides which compiler arguments of a module need to be
// persisted explicitly and which SDK the module binds to.
//
// A module's current argument bucket is compared against the default bucket
// of its platform. Fields the build tool exposes directly (primary), fields it
// manages internally (hidden) and fields it ignores are never persisted. Every
// other field whose value deviates from the default becomes an additional
// argument. Plugin options persisted earlier are merged with the current ones
// by (plugin, key).
//
// # Architecture
//
// 1. Engine: stateless per-module reconciliation (normalize, merge plugin
//    options, resolve the SDK, compute additional arguments).
//
// 2. Source and Mutator: host-specific access to modules, defaults, the SDK
//    table and the persisted module state.
//
// 3. Plan and apply: project-wide reconciliation in module order producing a
//    list of actions that only run when confirmed.
//
// 4. Cache: TTL-based cache of default buckets with stampede protection.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Project:  "shop",
//	    Source:   facet.NewAdapter(store, registry),
//	    CacheTTL: 5 * time.Minute,
//	}
//
//	plan, err := reconcile.ReconcileWithPlan(ctx, spec, reconcile.ReconcileOptions{})
//
//	// Single module
//	result, err := reconcile.NewEngine().Reconcile(module, defaults, reconcile.Environment{})
package reconcile
