package sdk

import (
	"runtime"

	"facet-reconciler/core/args"
)

// Resolver chooses the SDK of a module. It never fails: when no candidate is
// found the module inherits the project SDK.
type Resolver struct {
	jvm             []Strategy
	nonJVM          []Strategy
	normalizer      args.Normalizer
	caseInsensitive bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithJVMStrategies replaces the JVM resolution chain.
func WithJVMStrategies(s ...Strategy) Option {
	return func(r *Resolver) { r.jvm = s }
}

// WithNonJVMStrategies replaces the non-JVM resolution chain.
func WithNonJVMStrategies(s ...Strategy) Option {
	return func(r *Resolver) { r.nonJVM = s }
}

// WithCaseInsensitivePaths controls how jdkHome overrides are matched
// against candidate homes.
func WithCaseInsensitivePaths(insensitive bool) Option {
	return func(r *Resolver) { r.caseInsensitive = insensitive }
}

// WithNormalizer sets the normalizer applied to both the jdkHome override
// and candidate homes before they are compared.
func WithNormalizer(n args.Normalizer) Option {
	return func(r *Resolver) { r.normalizer = n }
}

// NewResolver returns a resolver with the default chains. Paths compare
// case-insensitively on Windows and macOS.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		jvm:             JVMStrategies(),
		nonJVM:          NonJVMStrategies(),
		caseInsensitive: runtime.GOOS == "windows" || runtime.GOOS == "darwin",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalizing returns a copy of r that compares paths through n.
func (r *Resolver) Normalizing(n args.Normalizer) *Resolver {
	c := *r
	c.normalizer = n
	return &c
}

// Strategies returns the chain used for a platform.
func (r *Resolver) Strategies(p args.Platform) []Strategy {
	if p.IsJVM() {
		return r.jvm
	}
	return r.nonJVM
}

// Resolve runs the precondition check and then the platform's strategy chain.
func (r *Resolver) Resolve(req Request) Decision {
	if ExternallyOwned(req) {
		return Decision{Action: ActionSkip}
	}

	var (
		selected *Candidate
		strategy string
	)
	paths := ComparePaths(r.normalizer, r.caseInsensitive)
	for _, s := range r.Strategies(req.Platform) {
		c, decided := s.Resolve(req, paths)
		if decided {
			selected, strategy = c, s.Name
			break
		}
	}

	if selected == nil || Same(selected, req.ProjectSdk) {
		return Decision{Action: ActionInherit, Sdk: selected, Strategy: strategy}
	}
	return Decision{Action: ActionAssign, Sdk: selected, Strategy: strategy}
}

// ExternallyOwned reports whether the module's SDK belongs to someone else:
// a platform plugin, or an external build system that is not overridden by an
// explicit jdkHome on the JVM.
func ExternallyOwned(req Request) bool {
	if req.Module.PlatformManaged {
		return true
	}
	if !req.Module.ExternalSdk {
		return false
	}
	return !req.Platform.IsJVM() || jdkHome(req.Bucket) == nil
}
