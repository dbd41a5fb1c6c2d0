package request

import "testing"

func TestLevelRequestFingerprintStableAcrossForceRefresh(t *testing.T) {
	a := NewLevelRequest(42)
	b := NewLevelRequest(42).WithForceRefresh()

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("expected ForceRefresh to not affect fingerprint: %d != %d", a.Fingerprint(), b.Fingerprint())
	}
	if !b.Forced() {
		t.Fatalf("expected WithForceRefresh to set Forced()")
	}
}

func TestLevelRequestFingerprintDiffersByID(t *testing.T) {
	a := NewLevelRequest(1)
	b := NewLevelRequest(2)
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("expected different level ids to fingerprint differently")
	}
}

func TestLevelsRequestFingerprintDiffersByPage(t *testing.T) {
	base := NewLevelsRequest(LevelsFilters{SearchType: SearchMostRecent})
	page0 := base.Fingerprint()
	page1 := base.WithPage(1).Fingerprint()

	if page0 == page1 {
		t.Fatalf("expected different pages to fingerprint differently")
	}
}

func TestRequestTypesDoNotCollide(t *testing.T) {
	level := NewLevelRequest(7)
	user := NewUserRequest(7)
	if level.Fingerprint() == user.Fingerprint() {
		t.Fatalf("expected LevelRequest and UserRequest sharing a numeric id to fingerprint differently")
	}
}
