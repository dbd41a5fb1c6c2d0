package coalesce

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stadust/gdcf/response"
)

func TestWrapCoalescesConcurrentCallsForSameFingerprint(t *testing.T) {
	g := NewGroup()
	var calls atomic.Int64
	release := make(chan struct{})

	fetch := Wrap[int](g, 1, func(ctx context.Context) (response.Response[int], error) {
		calls.Add(1)
		<-release
		return response.Response[int]{Result: 7}, nil
	})

	var wg sync.WaitGroup
	results := make([]int, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := fetch(context.Background())
			if err != nil {
				t.Errorf("fetch: %v", err)
				return
			}
			results[i] = r.Result
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("expected exactly one underlying call for coalesced fingerprint, got %d", calls.Load())
	}
	for i, r := range results {
		if r != 7 {
			t.Fatalf("result %d: expected 7, got %d", i, r)
		}
	}
}

func TestWrapDoesNotCoalesceDifferentFingerprints(t *testing.T) {
	g := NewGroup()
	var calls atomic.Int64

	fetchA := Wrap[int](g, 1, func(ctx context.Context) (response.Response[int], error) {
		calls.Add(1)
		return response.Response[int]{Result: 1}, nil
	})
	fetchB := Wrap[int](g, 2, func(ctx context.Context) (response.Response[int], error) {
		calls.Add(1)
		return response.Response[int]{Result: 2}, nil
	})

	if _, err := fetchA(context.Background()); err != nil {
		t.Fatalf("fetchA: %v", err)
	}
	if _, err := fetchB(context.Background()); err != nil {
		t.Fatalf("fetchB: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected two distinct calls for two fingerprints, got %d", calls.Load())
	}
}
