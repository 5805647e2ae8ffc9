package identity

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedResolver wraps a Resolver with an LRU read-through cache.
// Profiles are read-only from this service's perspective, so a short-lived
// in-process cache is safe; stale names at worst lag a profile rename.
type CachedResolver struct {
	inner Resolver
	cache *lru.Cache[string, *Profile]
}

// NewCachedResolver creates a caching decorator around inner.
// size is the maximum number of cached profiles.
func NewCachedResolver(inner Resolver, size int) (*CachedResolver, error) {
	cache, err := lru.New[string, *Profile](size)
	if err != nil {
		return nil, err
	}
	return &CachedResolver{inner: inner, cache: cache}, nil
}

// Resolve serves cached profiles and batches the misses through the
// underlying resolver. Ids the inner resolver omits stay uncached, so a
// user created after a miss becomes visible on the next lookup.
func (r *CachedResolver) Resolve(ctx context.Context, ids []string) (map[string]*Profile, error) {
	result := make(map[string]*Profile, len(ids))
	var misses []string

	for _, id := range ids {
		if profile, ok := r.cache.Get(id); ok {
			result[id] = profile
		} else {
			misses = append(misses, id)
		}
	}

	if len(misses) == 0 {
		return result, nil
	}

	resolved, err := r.inner.Resolve(ctx, misses)
	if err != nil {
		return nil, err
	}

	for id, profile := range resolved {
		r.cache.Add(id, profile)
		result[id] = profile
	}

	return result, nil
}
