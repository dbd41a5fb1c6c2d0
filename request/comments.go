package request

// CommentSortOrder selects chronological vs most-liked comment ordering.
type CommentSortOrder uint8

const (
	SortRecent CommentSortOrder = iota
	SortMostLiked
)

// LevelCommentsRequest fetches a page of comments left on a level.
type LevelCommentsRequest struct {
	Base
	LevelID uint64
	Sort    CommentSortOrder
	page    uint32
}

// NewLevelCommentsRequest builds a LevelCommentsRequest for the given level.
func NewLevelCommentsRequest(levelID uint64, sort CommentSortOrder) LevelCommentsRequest {
	return LevelCommentsRequest{LevelID: levelID, Sort: sort}
}

func (r LevelCommentsRequest) WithForceRefresh() LevelCommentsRequest {
	r.ForceRefresh = true
	return r
}

func (r LevelCommentsRequest) Page() uint32 { return r.page }

func (r LevelCommentsRequest) WithPage(page uint32) Request {
	r.page = page
	return r
}

func (r LevelCommentsRequest) Fingerprint() uint64 {
	return fingerprint("LevelCommentsRequest", r.LevelID, r.Sort, r.page)
}

// ProfileCommentsRequest fetches a page of comments left on a user's
// profile. Recovered from the original source's comment request (dropped by
// the distilled request taxonomy, but exercised by the same comment-drain
// pipeline as LevelCommentsRequest).
type ProfileCommentsRequest struct {
	Base
	AccountID uint64
	page      uint32
}

// NewProfileCommentsRequest builds a ProfileCommentsRequest for the given
// account.
func NewProfileCommentsRequest(accountID uint64) ProfileCommentsRequest {
	return ProfileCommentsRequest{AccountID: accountID}
}

func (r ProfileCommentsRequest) WithForceRefresh() ProfileCommentsRequest {
	r.ForceRefresh = true
	return r
}

func (r ProfileCommentsRequest) Page() uint32 { return r.page }

func (r ProfileCommentsRequest) WithPage(page uint32) Request {
	r.page = page
	return r
}

func (r ProfileCommentsRequest) Fingerprint() uint64 {
	return fingerprint("ProfileCommentsRequest", r.AccountID, r.page)
}
