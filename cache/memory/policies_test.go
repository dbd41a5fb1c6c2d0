package memory

import (
	"testing"
	"time"

	"github.com/stadust/gdcf/cache"
)

func TestTTLPolicyEviction(t *testing.T) {
	p := NewTTLPolicy()
	now := time.Now()

	fresh := cache.Meta{CachedAt: now, TTL: time.Hour}
	if p.ShouldEvict(fresh, now.Add(time.Minute)) {
		t.Fatalf("expected fresh entry not to be evicted")
	}

	stale := cache.Meta{CachedAt: now, TTL: time.Millisecond}
	if !p.ShouldEvict(stale, now.Add(time.Hour)) {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestLRUPolicyNeverEvictsDirectly(t *testing.T) {
	p := NewLRUPolicy()
	meta := cache.Meta{CachedAt: time.Now().Add(-24 * time.Hour), TTL: time.Minute}
	if p.ShouldEvict(meta, time.Now()) {
		t.Fatalf("expected LRUPolicy to never evict on its own, eviction is list-order driven")
	}
}

func TestCombinedPolicyDefersToTTL(t *testing.T) {
	p := NewCombinedPolicy()
	now := time.Now()
	stale := cache.Meta{CachedAt: now.Add(-time.Hour), TTL: time.Minute}
	if !p.ShouldEvict(stale, now) {
		t.Fatalf("expected combined policy to evict an expired entry")
	}
}

func TestDefaultPolicyEngine(t *testing.T) {
	e := DefaultPolicyEngine()
	stale := cache.Meta{CachedAt: time.Now().Add(-time.Hour), TTL: time.Minute}
	if !e.ShouldEvict(stale) {
		t.Fatalf("expected default policy engine to evict a long-expired entry")
	}
}
