package future

import (
	"context"
	"testing"
	"time"

	"github.com/stadust/gdcf/cache"
	"github.com/stadust/gdcf/cache/memory"
	"github.com/stadust/gdcf/response"
)

type noResultErr struct{}

func (noResultErr) Error() string    { return "no result" }
func (noResultErr) IsNoResult() bool { return true }

func TestProcessFetchesOnceOnCacheMiss(t *testing.T) {
	c := memory.NewL1Cache(10)
	calls := 0
	fetch := func(ctx context.Context) (response.Response[string], error) {
		calls++
		return response.Response[string]{Result: "fetched"}, nil
	}

	f := Process[string](context.Background(), c, fetch, 1, time.Minute, false)
	entry, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if entry.Kind != cache.KindCached || entry.Value != "fetched" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one fetch, got %d", calls)
	}
}

func TestProcessServesFreshCacheWithoutFetching(t *testing.T) {
	c := memory.NewL1Cache(10)
	c.StoreRequest(context.Background(), 1, "cached", time.Minute)

	calls := 0
	fetch := func(ctx context.Context) (response.Response[string], error) {
		calls++
		return response.Response[string]{Result: "fetched"}, nil
	}

	f := Process[string](context.Background(), c, fetch, 1, time.Minute, false)
	entry, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if entry.Value != "cached" {
		t.Fatalf("expected cached value to win, got %v", entry.Value)
	}
	if calls != 0 {
		t.Fatalf("expected zero fetches for a fresh cache hit, got %d", calls)
	}
}

func TestProcessForceRefreshBypassesCache(t *testing.T) {
	c := memory.NewL1Cache(10)
	c.StoreRequest(context.Background(), 1, "stale", time.Minute)

	calls := 0
	fetch := func(ctx context.Context) (response.Response[string], error) {
		calls++
		return response.Response[string]{Result: "fresh"}, nil
	}

	f := Process[string](context.Background(), c, fetch, 1, time.Minute, true)
	entry, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if entry.Value != "fresh" || calls != 1 {
		t.Fatalf("expected forced refresh to fetch, got value=%v calls=%d", entry.Value, calls)
	}
}

func TestProcessMarksAbsentOnNoResult(t *testing.T) {
	c := memory.NewL1Cache(10)
	fetch := func(ctx context.Context) (response.Response[string], error) {
		return response.Response[string]{}, noResultErr{}
	}

	f := Process[string](context.Background(), c, fetch, 1, time.Minute, false)
	entry, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if entry.Kind != cache.KindMarkedAbsent {
		t.Fatalf("expected KindMarkedAbsent, got %v", entry.Kind)
	}

	again, err := c.LookupRequest(context.Background(), 1)
	if err != nil {
		t.Fatalf("LookupRequest: %v", err)
	}
	if again.Kind != cache.KindMarkedAbsent {
		t.Fatalf("expected absence to persist in cache, got %v", again.Kind)
	}
}

func TestProcessServesFreshMarkedAbsentWithoutFetching(t *testing.T) {
	c := memory.NewL1Cache(10)
	if err := c.MarkRequestAbsent(context.Background(), 1, time.Minute); err != nil {
		t.Fatalf("MarkRequestAbsent: %v", err)
	}

	calls := 0
	fetch := func(ctx context.Context) (response.Response[string], error) {
		calls++
		return response.Response[string]{Result: "fetched"}, nil
	}

	f := Process[string](context.Background(), c, fetch, 1, time.Minute, false)
	entry, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if entry.Kind != cache.KindMarkedAbsent {
		t.Fatalf("expected KindMarkedAbsent, got %v", entry.Kind)
	}
	if f.Status() != StatusUpToDate {
		t.Fatalf("expected StatusUpToDate for a fresh absence marker, got %v", f.Status())
	}
	if calls != 0 {
		t.Fatalf("expected zero fetches for a fresh absence marker, got %d", calls)
	}
}

func TestProcessRefreshesExpiredMarkedAbsent(t *testing.T) {
	c := memory.NewL1Cache(10)
	if err := c.MarkRequestAbsent(context.Background(), 1, time.Nanosecond); err != nil {
		t.Fatalf("MarkRequestAbsent: %v", err)
	}
	time.Sleep(time.Millisecond)

	calls := 0
	fetch := func(ctx context.Context) (response.Response[string], error) {
		calls++
		return response.Response[string]{Result: "fetched"}, nil
	}

	f := Process[string](context.Background(), c, fetch, 1, time.Minute, false)
	entry, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if entry.Kind != cache.KindCached || entry.Value != "fetched" {
		t.Fatalf("expected an expired absence marker to trigger a refresh, got %+v", entry)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one fetch once the absence marker expired, got %d", calls)
	}
}

// deducedAbsentCache is a minimal cache.Cache stub whose LookupRequest
// always reports a deduced absence, used because a real L1Cache never
// stores KindDeducedAbsent itself (it's synthesized on the fly by the
// upgrade pipeline, not persisted through the Cache interface).
type deducedAbsentCache struct{ *memory.L1Cache }

func (c deducedAbsentCache) LookupRequest(ctx context.Context, fingerprint uint64) (cache.Entry, error) {
	return cache.DeducedAbsentEntry(), nil
}

func TestProcessAlwaysRefreshesDeducedAbsent(t *testing.T) {
	c := deducedAbsentCache{memory.NewL1Cache(10)}

	calls := 0
	fetch := func(ctx context.Context) (response.Response[string], error) {
		calls++
		return response.Response[string]{Result: "fetched"}, nil
	}

	f := Process[string](context.Background(), c, fetch, 1, time.Minute, false)
	entry, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if f.Status() != StatusUncached {
		t.Fatalf("expected StatusUncached for a deduced absence, got %v", f.Status())
	}
	if entry.Kind != cache.KindCached || calls != 1 {
		t.Fatalf("expected a deduced absence to always trigger a refresh, got entry=%+v calls=%d", entry, calls)
	}
}

func TestProcessDrainsSecondariesBeforePrimary(t *testing.T) {
	c := memory.NewL1Cache(10)
	fetch := func(ctx context.Context) (response.Response[string], error) {
		return response.Response[string]{
			Result: "primary",
			Secondaries: []response.Secondary{
				response.NewSecondary(100, "secondary"),
			},
		}, nil
	}

	f := Process[string](context.Background(), c, fetch, 1, time.Minute, false)
	if _, err := f.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	secEntry, err := c.Lookup(context.Background(), 100)
	if err != nil {
		t.Fatalf("Lookup secondary: %v", err)
	}
	if secEntry.Kind != cache.KindCached || secEntry.Value != "secondary" {
		t.Fatalf("expected secondary to be stored, got %+v", secEntry)
	}
}
