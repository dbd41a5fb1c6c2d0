package request

// LevelSearchType selects the kind of level search to run, mirroring the
// game client's search-tab options.
type LevelSearchType uint8

const (
	SearchMostRecent LevelSearchType = iota
	SearchMostDownloaded
	SearchMostLiked
	SearchTrending
	SearchFeatured
	SearchByUser
	SearchByIDs
)

// LevelsFilters narrows a level search. CustomSongID is also used
// internally by the LevelSong upgrade to resolve a level's custom song by
// filtering a search down to levels using that exact song.
type LevelsFilters struct {
	SearchType LevelSearchType
	Query      string
	UserID     *uint64
	LevelIDs   []uint64
	CustomSongID *uint64
	Completed    bool
	Rated        bool
	Uncompleted  bool
	Uncommented  bool
	NoStar       bool
}

// LevelsRequest fetches a page of PartialLevel search results.
type LevelsRequest struct {
	Base
	Filters LevelsFilters
	page    uint32
}

// NewLevelsRequest builds a LevelsRequest with the given filters, starting
// at page 0.
func NewLevelsRequest(filters LevelsFilters) LevelsRequest {
	return LevelsRequest{Filters: filters}
}

func (r LevelsRequest) WithForceRefresh() LevelsRequest {
	r.ForceRefresh = true
	return r
}

func (r LevelsRequest) Page() uint32 { return r.page }

func (r LevelsRequest) WithPage(page uint32) Request {
	r.page = page
	return r
}

func (r LevelsRequest) Fingerprint() uint64 {
	return fingerprint("LevelsRequest",
		r.Filters.SearchType, r.Filters.Query, deref(r.Filters.UserID),
		r.Filters.LevelIDs, deref(r.Filters.CustomSongID),
		r.Filters.Completed, r.Filters.Rated, r.Filters.Uncompleted,
		r.Filters.Uncommented, r.Filters.NoStar, r.page)
}

func deref[T any](p *T) any {
	if p == nil {
		return "<nil>"
	}
	return *p
}
