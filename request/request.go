// Package request defines the fixed set of requests GDCF knows how to cache
// and refresh: the fields that make up each request's identity, and the
// fingerprinting that turns a request into the cache key its result is
// stored under.
package request

// Request is implemented by every request variant GDCF caches. Fingerprint
// must be stable across calls with the same meaningful (non-mutable) field
// values: two Requests that only differ by ForceRefresh or similar
// execution-only flags must fingerprint identically.
type Request interface {
	// Fingerprint is the cache key this request's result is stored and
	// looked up under.
	Fingerprint() uint64
	// Forced reports whether the caller asked to bypass a fresh cache entry
	// and hit the client regardless.
	Forced() bool
}

// Base is embedded by every concrete request to carry the force-refresh
// flag uniformly; it is never part of a request's fingerprint.
type Base struct {
	ForceRefresh bool
}

// Forced implements part of Request for embedders.
func (b Base) Forced() bool { return b.ForceRefresh }

// Paginatable is implemented by requests that can be pointed at a given
// page via WithPage (LevelsRequest, LevelCommentsRequest,
// ProfileCommentsRequest).
type Paginatable interface {
	Request
	// WithPage returns a copy of the request advanced to the given page
	// number. Page numbers are zero-based, matching the underlying API.
	WithPage(page uint32) Request
	Page() uint32
}
