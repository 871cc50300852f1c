package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"facet-reconciler/core/args"

	"golang.org/x/sync/singleflight"
)

// DefaultsCache holds a loaded default bucket of one project platform.
type DefaultsCache struct {
	// Defaults is the bucket as returned by the source.
	Defaults *args.Bucket

	// Built is the timestamp when this entry was loaded.
	Built time.Time

	// TTL is the time-to-live for this entry.
	TTL time.Duration
}

// IsExpired returns true if this entry has expired based on its TTL.
func (c *DefaultsCache) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// cacheStore holds all default buckets keyed by spec cache key.
type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*DefaultsCache
	sf     singleflight.Group
}

// globalCacheStore is the singleton cache store for all reconcile operations.
var globalCacheStore = &cacheStore{
	caches: make(map[string]*DefaultsCache),
}

// LoadDefaults reads the default bucket of a platform from the source without
// touching the cache. A nil bucket from the source is treated as empty.
func LoadDefaults(ctx context.Context, spec *Spec, platform args.Platform) (*DefaultsCache, error) {
	defaults, err := spec.Source.LoadDefaults(ctx, spec.Project, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s defaults of %s: %w", platform, spec.Project, err)
	}
	if defaults == nil {
		defaults = args.NewBucket()
	}
	return &DefaultsCache{
		Defaults: defaults,
		Built:    time.Now(),
		TTL:      spec.CacheTTL,
	}, nil
}

// GetOrLoadDefaults returns the default bucket of a platform from the store,
// or loads it if it doesn't exist or has expired.
// Uses singleflight to prevent cache stampedes.
func GetOrLoadDefaults(ctx context.Context, spec *Spec, platform args.Platform) (*args.Bucket, error) {
	if spec.CacheTTL <= 0 {
		entry, err := LoadDefaults(ctx, spec, platform)
		if err != nil {
			return nil, err
		}
		return entry.Defaults, nil
	}

	cacheKey := spec.CacheKey(platform)

	// Fast path: check if cache exists and is fresh
	globalCacheStore.mu.RLock()
	entry, exists := globalCacheStore.caches[cacheKey]
	globalCacheStore.mu.RUnlock()

	if exists && !entry.IsExpired() {
		return entry.Defaults, nil
	}

	result, err, _ := globalCacheStore.sf.Do(cacheKey, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		globalCacheStore.mu.RLock()
		entry, exists := globalCacheStore.caches[cacheKey]
		globalCacheStore.mu.RUnlock()

		if exists && !entry.IsExpired() {
			return entry, nil
		}

		newEntry, err := LoadDefaults(ctx, spec, platform)
		if err != nil {
			return nil, err
		}

		globalCacheStore.mu.Lock()
		globalCacheStore.caches[cacheKey] = newEntry
		globalCacheStore.mu.Unlock()

		return newEntry, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*DefaultsCache).Defaults, nil
}

// InvalidateCache removes every cached default bucket of the spec's project.
// This is useful for testing or after defaults were rewritten.
func InvalidateCache(spec *Spec) {
	globalCacheStore.mu.Lock()
	for _, p := range args.Platforms {
		delete(globalCacheStore.caches, spec.CacheKey(p))
	}
	globalCacheStore.mu.Unlock()
}
