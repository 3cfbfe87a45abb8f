// Package cache implements the client-side request cache: a memory-only
// store of query results keyed by the [family, kind, param] taxonomy,
// with in-flight de-duplication and family-wide invalidation. It is
// rebuilt from the network on every process start.
package cache

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads a value for a key from the backend.
type FetchFunc func(ctx context.Context) (interface{}, error)

// Cache is the shared request cache. The cache owns derived copies of
// server state only; it is never write-through: every mutation must
// round-trip before it becomes authoritative again, and writes talk to
// the cache solely through Invalidate.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
	group   singleflight.Group
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]interface{})}
}

// Fetch returns the cached value for key, or runs fn once and caches its
// result. Concurrent fetches for the same key share a single call;
// fetches for different keys are unordered with respect to each other.
// Failed fetches cache nothing.
func (c *Cache) Fetch(ctx context.Context, key Key, fn FetchFunc) (interface{}, error) {
	ks := key.String()

	c.mu.RLock()
	v, ok := c.entries[ks]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err, _ := c.group.Do(ks, func() (interface{}, error) {
		// Re-check under the flight: another caller may have filled the
		// entry between the fast path and joining the group.
		c.mu.RLock()
		v, ok := c.entries[ks]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[ks] = v
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Get returns the cached value for key without fetching.
func (c *Cache) Get(key Key) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key.String()]
	return v, ok
}

// Invalidate drops every entry of the named families: list, all and
// detail keys alike. Family-wide invalidation trades redundant refetches
// for correctness of cross-entity derived fields.
func (c *Cache) Invalidate(families ...Family) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range families {
		prefix := string(f) + "/"
		for k := range c.entries {
			if strings.HasPrefix(k, prefix) {
				delete(c.entries, k)
			}
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
