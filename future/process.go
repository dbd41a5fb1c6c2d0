package future

import (
	"context"
	"time"

	"github.com/stadust/gdcf/cache"
)

// ProcessRequestFuture resolves a single request: consult the cache by
// fingerprint, classify the result as up-to-date/outdated/uncached, and
// fall back to a RefreshCacheFuture when network data is needed. Grounded
// on the cache-state dispatch table in spec (originally
// gdcf/src/future/process.rs) and the teacher's service.Get dispatch shape.
type ProcessRequestFuture[R any] struct {
	done   chan struct{}
	status Status
	entry  cache.Entry
	err    error
}

// Process starts resolving req's cached/fetched value and returns
// immediately; use Wait to block for the result.
func Process[R any](ctx context.Context, c cache.Cache, fetch Fetch[R], fingerprint uint64, ttl time.Duration, forceRefresh bool) *ProcessRequestFuture[R] {
	f := &ProcessRequestFuture[R]{done: make(chan struct{})}
	go f.run(ctx, c, fetch, fingerprint, ttl, forceRefresh)
	return f
}

func (f *ProcessRequestFuture[R]) run(ctx context.Context, c cache.Cache, fetch Fetch[R], fingerprint uint64, ttl time.Duration, forceRefresh bool) {
	defer close(f.done)

	if !forceRefresh {
		entry, err := c.LookupRequest(ctx, fingerprint)
		if err != nil {
			f.err = &cache.Error{Backend: err}
			return
		}
		switch entry.Kind {
		case cache.KindCached:
			if !entry.Meta.Expired(time.Now()) {
				f.status = StatusUpToDate
				f.entry = entry
				return
			}
			f.status = StatusOutdated
		case cache.KindMarkedAbsent:
			if !entry.Meta.Expired(time.Now()) {
				f.status = StatusUpToDate
				f.entry = entry
				return
			}
			f.status = StatusOutdated
		case cache.KindDeducedAbsent:
			f.status = StatusUncached
		default:
			f.status = StatusUncached
		}
	} else {
		f.status = StatusUncached
		if entry, err := c.LookupRequest(ctx, fingerprint); err == nil &&
			(entry.Kind == cache.KindCached || entry.Kind == cache.KindMarkedAbsent) {
			f.status = StatusOutdated
		}
	}

	refresh := Refresh[R](ctx, c, fetch, fingerprint, ttl)
	entry, err := refresh.Wait(ctx)
	if err != nil {
		f.err = err
		return
	}
	f.entry = entry
}

// Wait blocks until the request resolves to its final cache.Entry.
func (f *ProcessRequestFuture[R]) Wait(ctx context.Context) (cache.Entry, error) {
	select {
	case <-f.done:
		return f.entry, f.err
	case <-ctx.Done():
		return cache.Entry{}, ctx.Err()
	}
}

// CachedEntry returns the resolved entry without blocking, if it's ready.
func (f *ProcessRequestFuture[R]) CachedEntry() (cache.Entry, bool) {
	select {
	case <-f.done:
		return f.entry, f.err == nil
	default:
		return cache.Entry{}, false
	}
}

// Status reports the cache-state classification this future observed
// before any refresh; only meaningful once Wait/CachedEntry report ready.
func (f *ProcessRequestFuture[R]) Status() Status { return f.status }
