package model

import "testing"

func TestLookupMainSongKnown(t *testing.T) {
	s := LookupMainSong(6)
	if s.Name != "Jumper" {
		t.Fatalf("expected id 6 to be Jumper, got %q", s.Name)
	}
}

func TestLookupMainSongUnknown(t *testing.T) {
	s := LookupMainSong(9999)
	if s != UnknownMainSong {
		t.Fatalf("expected unrecognized id to return UnknownMainSong, got %+v", s)
	}
}
