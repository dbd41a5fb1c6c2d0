// Package response defines the shape of a client call's result: a primary
// value plus zero or more secondary objects (songs, creators) harvested
// from the same payload, which must be stored before the primary per the
// snapshot-consistency invariant.
package response

// SecondaryKind distinguishes a secondary that carries a value to store
// from one that only synthesizes a missing-id marker.
type SecondaryKind uint8

const (
	// SecondaryPresent means Value holds the object to store under Key.
	SecondaryPresent SecondaryKind = iota
	// SecondaryMissing means Key was referenced by the primary result but
	// the response carries no object for it — e.g. a level's custom song
	// id that doesn't resolve to a Newgrounds song. Key must be marked
	// absent rather than stored, so a later lookup of that id doesn't
	// trigger a needless network call.
	SecondaryMissing
)

// Secondary is a secondary object drained from a response alongside its
// primary result — a song or creator referenced by a level, for instance.
// Key is the cache key (natural id) it must be stored under, or marked
// absent under, depending on Kind.
type Secondary struct {
	Key   uint64
	Value any
	Kind  SecondaryKind
}

// NewSecondary builds a present secondary: Value stored under Key.
func NewSecondary(key uint64, value any) Secondary {
	return Secondary{Key: key, Value: value, Kind: SecondaryPresent}
}

// MissingSecondary builds a synthesized missing-id secondary: Key marked
// absent rather than stored, mirroring the original's
// Secondary::MissingCreator/MissingNewgroundsSong variants.
func MissingSecondary(key uint64) Secondary {
	return Secondary{Key: key, Kind: SecondaryMissing}
}

// Response is the result of a single client call: the request's primary
// result plus any secondaries harvested from the same payload.
type Response[R any] struct {
	Result      R
	Secondaries []Secondary
}

// NoResult is returned by a Client implementation when the server
// responded successfully but reports no matching data (e.g. an empty
// search result, or a level id that doesn't exist). It is distinct from a
// transport-level ApiError: gdcf stores it as MarkedAbsent rather than
// surfacing it as an error to the caller.
type NoResult struct{}

func (NoResult) Error() string { return "no result" }

// IsNoResult reports true, which is what the refresh path checks for.
func (NoResult) IsNoResult() bool { return true }
