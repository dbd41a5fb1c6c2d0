package future

import (
	"context"
	"time"

	"github.com/stadust/gdcf/cache"
	"github.com/stadust/gdcf/client"
	"github.com/stadust/gdcf/response"
)

// Fetch is a single client call bound to one request — a thin closure over
// a client.Client method, letting RefreshCacheFuture stay request-shape
// agnostic.
type Fetch[R any] func(ctx context.Context) (response.Response[R], error)

// RefreshCacheFuture performs a fetch, drains secondaries, stores the
// primary result, and resolves to the final cache.Entry — or to a
// MarkedAbsent entry if the client reports no result. Grounded on the
// teacher's singleflight.call (goroutine + wait-group resolution) and the
// snapshot-consistency requirement that secondaries land before the
// primary.
type RefreshCacheFuture[R any] struct {
	done  chan struct{}
	entry cache.Entry
	err   error
}

// Refresh starts a fetch in the background and returns immediately.
func Refresh[R any](ctx context.Context, c cache.Cache, fetch Fetch[R], fingerprint uint64, ttl time.Duration) *RefreshCacheFuture[R] {
	f := &RefreshCacheFuture[R]{done: make(chan struct{})}
	go f.run(ctx, c, fetch, fingerprint, ttl)
	return f
}

func (f *RefreshCacheFuture[R]) run(ctx context.Context, c cache.Cache, fetch Fetch[R], fingerprint uint64, ttl time.Duration) {
	defer close(f.done)

	resp, err := fetch(ctx)
	if err != nil {
		if apiErr, ok := err.(client.ApiError); ok && apiErr.IsNoResult() {
			if serr := c.MarkRequestAbsent(ctx, fingerprint, ttl); serr != nil {
				f.err = &cache.Error{Backend: serr}
				return
			}
			f.entry = cache.MarkedAbsentEntry(cache.Meta{CachedAt: time.Now(), TTL: ttl})
			return
		}
		f.err = err
		return
	}

	if err := cache.DrainSecondaries(ctx, c, resp.Secondaries, ttl); err != nil {
		f.err = &cache.Error{Backend: err}
		return
	}
	if err := c.StoreRequest(ctx, fingerprint, resp.Result, ttl); err != nil {
		f.err = &cache.Error{Backend: err}
		return
	}
	f.entry = cache.Cached(resp.Result, cache.Meta{CachedAt: time.Now(), TTL: ttl})
}

// Wait blocks until the refresh completes or ctx is done.
func (f *RefreshCacheFuture[R]) Wait(ctx context.Context) (cache.Entry, error) {
	select {
	case <-f.done:
		return f.entry, f.err
	case <-ctx.Done():
		return cache.Entry{}, ctx.Err()
	}
}

// CachedEntry returns the resolved entry without blocking, if it's ready.
func (f *RefreshCacheFuture[R]) CachedEntry() (cache.Entry, bool) {
	select {
	case <-f.done:
		return f.entry, f.err == nil
	default:
		return cache.Entry{}, false
	}
}
