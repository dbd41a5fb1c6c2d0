package future

import (
	"context"
	"errors"
	"time"

	"github.com/stadust/gdcf/cache"
	"github.com/stadust/gdcf/client"
	"github.com/stadust/gdcf/request"
)

// PageFetch starts resolving one page of a paginated request, returning the
// ProcessRequestFuture for that page.
type PageFetch[R any] func(ctx context.Context, req request.Request) (*ProcessRequestFuture[R], error)

// GdcfStream is a pull-based iterator over a paginated request's pages,
// adapted from the teacher's channel-driven worker-pool consumption loop
// into a simple Next(ctx) call: the network/cache concurrency already lives
// inside each page's ProcessRequestFuture, so the stream itself needs no
// internal goroutine.
type GdcfStream[R any] struct {
	base   request.Paginatable
	fetch  PageFetch[R]
	ttl    time.Duration
	c      cache.Cache
	page   uint32
	done   bool
}

// NewStream builds a stream starting at base's current page.
func NewStream[R any](c cache.Cache, base request.Paginatable, ttl time.Duration, fetch PageFetch[R]) *GdcfStream[R] {
	return &GdcfStream[R]{base: base, fetch: fetch, ttl: ttl, c: c, page: base.Page()}
}

// Next fetches (or serves from cache) the next page. It returns
// (result, true, nil) for a page with data, (zero, false, nil) once the
// stream is exhausted (the API reported no-result for the next page), and
// (zero, false, err) on a genuine failure.
func (s *GdcfStream[R]) Next(ctx context.Context) (R, bool, error) {
	var zero R
	if s.done {
		return zero, false, nil
	}

	req := s.base.WithPage(s.page)
	pf, err := s.fetch(ctx, req)
	if err != nil {
		return zero, false, err
	}

	entry, err := pf.Wait(ctx)
	if err != nil {
		var apiErr client.ApiError
		if errors.As(err, &apiErr) && apiErr.IsNoResult() {
			s.done = true
			return zero, false, nil
		}
		return zero, false, err
	}

	if entry.Kind != cache.KindCached {
		s.done = true
		return zero, false, nil
	}

	result, ok := cache.As[R](entry)
	if !ok {
		return zero, false, errors.New("gdcf: stream page result type mismatch")
	}

	s.page++
	return result, true, nil
}
