// Package memory provides an in-process cache.Cache backend: an LRU list
// plus TTL expiry, adapted from the teacher's L1Cache to store the full
// four-state cache.Entry (including marked/deduced absence) rather than
// bare present values.
package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/stadust/gdcf/cache"
)

type space uint8

const (
	spaceID space = iota
	spaceRequest
)

type cacheKey struct {
	space space
	id    uint64
}

type lruEntry struct {
	key     cacheKey
	entry   cache.Entry
	element *list.Element
}

// L1Cache is a thread-safe in-memory cache.Cache backend with LRU eviction
// and lazy TTL expiration. Grounded directly on the teacher's L1Cache
// (cache-manager/cache.go): same map-plus-list structure, global RWMutex —
// acceptable for the single-process request volumes gdcf targets, matching
// the teacher's own documented trade-off.
type L1Cache struct {
	mu         sync.RWMutex
	entries    map[cacheKey]*lruEntry
	lruList    *list.List
	maxEntries int
}

// NewL1Cache creates an L1 cache holding at most maxEntries items across
// both the id-keyed and request-keyed namespaces combined.
func NewL1Cache(maxEntries int) *L1Cache {
	return &L1Cache{
		entries:    make(map[cacheKey]*lruEntry, maxEntries),
		lruList:    list.New(),
		maxEntries: maxEntries,
	}
}

var _ cache.Cache = (*L1Cache)(nil)

func (c *L1Cache) Lookup(ctx context.Context, id uint64) (cache.Entry, error) {
	return c.get(cacheKey{spaceID, id})
}

func (c *L1Cache) LookupRequest(ctx context.Context, fingerprint uint64) (cache.Entry, error) {
	return c.get(cacheKey{spaceRequest, fingerprint})
}

func (c *L1Cache) Store(ctx context.Context, id uint64, value any, ttl time.Duration) error {
	c.set(cacheKey{spaceID, id}, cache.Cached(value, cache.Meta{CachedAt: time.Now(), TTL: ttl}))
	return nil
}

func (c *L1Cache) StoreRequest(ctx context.Context, fingerprint uint64, value any, ttl time.Duration) error {
	c.set(cacheKey{spaceRequest, fingerprint}, cache.Cached(value, cache.Meta{CachedAt: time.Now(), TTL: ttl}))
	return nil
}

func (c *L1Cache) MarkAbsent(ctx context.Context, id uint64, ttl time.Duration) error {
	c.set(cacheKey{spaceID, id}, cache.MarkedAbsentEntry(cache.Meta{CachedAt: time.Now(), TTL: ttl}))
	return nil
}

func (c *L1Cache) MarkRequestAbsent(ctx context.Context, fingerprint uint64, ttl time.Duration) error {
	c.set(cacheKey{spaceRequest, fingerprint}, cache.MarkedAbsentEntry(cache.Meta{CachedAt: time.Now(), TTL: ttl}))
	return nil
}

func (c *L1Cache) Delete(ctx context.Context, id uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteUnsafe(cacheKey{spaceID, id})
	c.deleteUnsafe(cacheKey{spaceRequest, id})
	return nil
}

func (c *L1Cache) get(key cacheKey) (cache.Entry, error) {
	c.mu.RLock()
	le, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return cache.MissingEntry, nil
	}

	if le.entry.Meta.Expired(time.Now()) {
		c.mu.Lock()
		c.deleteUnsafe(key)
		c.mu.Unlock()
		return cache.MissingEntry, nil
	}

	c.mu.Lock()
	c.lruList.MoveToFront(le.element)
	c.mu.Unlock()

	return le.entry, nil
}

func (c *L1Cache) set(key cacheKey, entry cache.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if le, exists := c.entries[key]; exists {
		le.entry = entry
		c.lruList.MoveToFront(le.element)
		return
	}

	if c.maxEntries > 0 && c.lruList.Len() >= c.maxEntries {
		c.evictLRUUnsafe()
	}

	le := &lruEntry{key: key, entry: entry}
	le.element = c.lruList.PushFront(le)
	c.entries[key] = le
}

func (c *L1Cache) deleteUnsafe(key cacheKey) bool {
	le, exists := c.entries[key]
	if !exists {
		return false
	}
	c.lruList.Remove(le.element)
	delete(c.entries, key)
	return true
}

func (c *L1Cache) evictLRUUnsafe() {
	oldest := c.lruList.Back()
	if oldest == nil {
		return
	}
	le := oldest.Value.(*lruEntry)
	c.lruList.Remove(oldest)
	delete(c.entries, le.key)
}

// CleanupExpired removes all expired entries, returning the count removed.
// Intended to be run periodically from a background goroutine.
func (c *L1Cache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	var expired []cacheKey
	for key, le := range c.entries {
		if le.entry.Meta.Expired(now) {
			expired = append(expired, key)
		}
	}
	for _, key := range expired {
		c.deleteUnsafe(key)
	}
	return len(expired)
}

// Size returns the current number of entries held across both namespaces.
func (c *L1Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes every entry.
func (c *L1Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*lruEntry, c.maxEntries)
	c.lruList = list.New()
}
