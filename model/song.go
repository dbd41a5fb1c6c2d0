package model

// NewgroundsSong is a custom song hosted on Newgrounds, as resolved by the
// LevelSong upgrade.
type NewgroundsSong struct {
	SongID     uint64
	Name       string
	ArtistID   uint64
	Artist     string
	Filesize   float64
	AltArtist  string
	IsBanned   bool
	DownloadURL string
}

// MainSong is one of the built-in songs shipped with the game client,
// selected via PartialLevel.MainSongID.
type MainSong struct {
	ID     uint32
	Name   string
	Artist string
}

// UnknownMainSong is returned for a main-song id the table below doesn't
// recognize (the game occasionally ships new built-ins before this table is
// updated).
var UnknownMainSong = MainSong{ID: 0, Name: "unknown", Artist: "unknown"}

// MainSongs is the fixed table of built-in songs, indexed by id. Geometry
// Dash's built-in song list is small and changes rarely enough that a
// package-level table is simpler than a generated/lazy one.
var MainSongs = []MainSong{
	{ID: 0, Name: "Stereo Madness", Artist: "ForeverBound"},
	{ID: 1, Name: "Back On Track", Artist: "DJVI"},
	{ID: 2, Name: "Polargeist", Artist: "Step"},
	{ID: 3, Name: "Dry Out", Artist: "DJVI"},
	{ID: 4, Name: "Base After Base", Artist: "DJVI"},
	{ID: 5, Name: "Cant Let Go", Artist: "DJVI"},
	{ID: 6, Name: "Jumper", Artist: "Waterflame"},
	{ID: 7, Name: "Time Machine", Artist: "Waterflame"},
	{ID: 8, Name: "Cycles", Artist: "DJVI"},
	{ID: 9, Name: "xStep", Artist: "DJVI"},
	{ID: 10, Name: "Clutterfunk", Artist: "Waterflame"},
	{ID: 11, Name: "Theory of Everything", Artist: "DJ-Nate"},
	{ID: 12, Name: "Electroman Adventures", Artist: "Waterflame"},
	{ID: 13, Name: "Clubstep", Artist: "DJ-Nate"},
	{ID: 14, Name: "Electrodynamix", Artist: "DJ-Nate"},
	{ID: 15, Name: "Hexagon Force", Artist: "Waterflame"},
	{ID: 16, Name: "Blast Processing", Artist: "Waterflame"},
	{ID: 17, Name: "Theory of Everything 2", Artist: "DJ-Nate"},
	{ID: 18, Name: "Geometrical Dominator", Artist: "Waterflame"},
	{ID: 19, Name: "Deadlocked", Artist: "F-777"},
	{ID: 20, Name: "Fingerdash", Artist: "MDK"},
}

// LookupMainSong returns the built-in song for the given id, or
// UnknownMainSong if the id isn't recognized.
func LookupMainSong(id uint32) MainSong {
	for _, s := range MainSongs {
		if s.ID == id {
			return s
		}
	}
	return UnknownMainSong
}
