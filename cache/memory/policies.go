package memory

import (
	"time"

	"github.com/stadust/gdcf/cache"
)

// EvictionPolicy decides whether a cache.Meta has gone stale enough to
// evict outright, independent of whatever TTL-on-read the Entry itself
// enforces. Adapted from the teacher's EvictionPolicy, retyped to operate
// on cache.Meta instead of a concrete *CacheEntry.
type EvictionPolicy interface {
	ShouldEvict(meta cache.Meta, now time.Time) bool
}

// TTLPolicy evicts once an entry's TTL has elapsed.
type TTLPolicy struct{}

func NewTTLPolicy() *TTLPolicy { return &TTLPolicy{} }

func (p *TTLPolicy) ShouldEvict(meta cache.Meta, now time.Time) bool {
	return meta.Expired(now)
}

// LRUPolicy defers entirely to L1Cache's own list ordering; it exists so
// PolicyEngine can compose a uniform EvictionPolicy regardless of which
// concern actually drives eviction.
type LRUPolicy struct{}

func NewLRUPolicy() *LRUPolicy { return &LRUPolicy{} }

func (p *LRUPolicy) ShouldEvict(meta cache.Meta, now time.Time) bool { return false }

// CombinedPolicy evicts if TTL has expired; LRU capacity eviction is
// handled separately by L1Cache itself.
type CombinedPolicy struct {
	ttl *TTLPolicy
	lru *LRUPolicy
}

func NewCombinedPolicy() *CombinedPolicy {
	return &CombinedPolicy{ttl: NewTTLPolicy(), lru: NewLRUPolicy()}
}

func (p *CombinedPolicy) ShouldEvict(meta cache.Meta, now time.Time) bool {
	return p.ttl.ShouldEvict(meta, now) || p.lru.ShouldEvict(meta, now)
}

// PolicyEngine applies an EvictionPolicy during CleanupExpired-style sweeps.
type PolicyEngine struct {
	policy EvictionPolicy
}

func NewPolicyEngine(policy EvictionPolicy) *PolicyEngine {
	return &PolicyEngine{policy: policy}
}

func DefaultPolicyEngine() *PolicyEngine {
	return &PolicyEngine{policy: NewCombinedPolicy()}
}

func (e *PolicyEngine) ShouldEvict(meta cache.Meta) bool {
	return e.policy.ShouldEvict(meta, time.Now())
}
