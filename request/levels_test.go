package request

import "testing"

func TestLevelsRequestFingerprintDiffersByFilters(t *testing.T) {
	base := NewLevelsRequest(LevelsFilters{SearchType: SearchMostRecent})
	byUser := NewLevelsRequest(LevelsFilters{SearchType: SearchByUser, UserID: ptrU64(42)})

	if base.Fingerprint() == byUser.Fingerprint() {
		t.Fatalf("expected different filters to produce different fingerprints")
	}
}

func TestLevelsRequestFingerprintStableAcrossForceRefresh(t *testing.T) {
	r := NewLevelsRequest(LevelsFilters{SearchType: SearchFeatured})
	forced := r.WithForceRefresh()

	if r.Fingerprint() != forced.Fingerprint() {
		t.Fatalf("expected ForceRefresh to not affect fingerprint")
	}
}

func TestLevelsRequestWithPageIsImmutable(t *testing.T) {
	r := NewLevelsRequest(LevelsFilters{SearchType: SearchMostLiked})
	next := r.WithPage(3).(LevelsRequest)

	if r.Page() != 0 {
		t.Fatalf("expected original request to be unmodified, got page %d", r.Page())
	}
	if next.Page() != 3 {
		t.Fatalf("expected new request to carry page 3, got %d", next.Page())
	}
}

func ptrU64(v uint64) *uint64 { return &v }
