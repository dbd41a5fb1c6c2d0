package request

// LevelRequest fetches a single level's full data (including object data)
// by id.
type LevelRequest struct {
	Base
	LevelID uint64
}

// NewLevelRequest builds a LevelRequest for the given level id.
func NewLevelRequest(levelID uint64) LevelRequest {
	return LevelRequest{LevelID: levelID}
}

// WithForceRefresh returns a copy of the request with ForceRefresh set,
// bypassing a fresh cache entry on the next Process call.
func (r LevelRequest) WithForceRefresh() LevelRequest {
	r.ForceRefresh = true
	return r
}

func (r LevelRequest) Fingerprint() uint64 {
	return fingerprint("LevelRequest", r.LevelID)
}
