package facet

import (
	"runtime"
	"time"

	"facet-reconciler/core/args"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/core/sdk"
)

// Config holds configuration for the facet feature.
type Config struct {
	// Prefix is the object prefix holding project data inside the bucket.
	Prefix string `mapstructure:"prefix" default:"projects"`
	// CacheTTLSeconds is how long default buckets are cached. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// ResolveSymlinks resolves local symbolic links before comparing paths.
	ResolveSymlinks bool `mapstructure:"resolve_symlinks" default:"false"`
	// PathCase selects SDK home path comparison: auto, sensitive or insensitive.
	PathCase string `mapstructure:"path_case" default:"auto"`
	// Workers bounds concurrent storage reads and writes.
	Workers int `mapstructure:"workers" default:"16"`
}

const (
	PathCaseAuto        = "auto"
	PathCaseSensitive   = "sensitive"
	PathCaseInsensitive = "insensitive"
)

// CacheTTL returns the defaults cache TTL.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// CaseInsensitivePaths reports whether SDK home paths compare without case.
// Auto follows the host filesystem convention.
func (c Config) CaseInsensitivePaths() bool {
	switch c.PathCase {
	case PathCaseSensitive:
		return false
	case PathCaseInsensitive:
		return true
	default:
		return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
	}
}

// Engine builds a reconcile engine from the configuration.
func (c Config) Engine() *reconcile.Engine {
	return reconcile.NewEngine(
		reconcile.WithNormalizer(args.Normalizer{ResolveSymlinks: c.ResolveSymlinks}),
		reconcile.WithResolver(sdk.NewResolver(sdk.WithCaseInsensitivePaths(c.CaseInsensitivePaths()))),
	)
}
