// Package model holds the value types GDCF caches and returns: levels,
// songs, creators and users, and the comment types. Every exported type here
// is a plain value — no network or cache concern leaks into this package.
package model

import "fmt"

// GameVersion is a Geometry Dash client version, e.g. 2.11 encoded as (2, 11).
type GameVersion struct {
	Major uint8
	Minor uint8
}

func (v GameVersion) String() string {
	if v.Major == 0 && v.Minor == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// LevelLength is the coarse length bucket the game assigns a level.
type LevelLength uint8

const (
	LengthTiny LevelLength = iota
	LengthShort
	LengthMedium
	LengthLong
	LengthXL
)

func (l LevelLength) String() string {
	switch l {
	case LengthTiny:
		return "tiny"
	case LengthShort:
		return "short"
	case LengthMedium:
		return "medium"
	case LengthLong:
		return "long"
	case LengthXL:
		return "XL"
	default:
		return "unknown"
	}
}

// LevelRating is the difficulty rating of a level.
type LevelRating struct {
	// Numeric is the raw difficulty value reported by the API; -1 for "auto",
	// -2 for "demon" (see Demon for the demon sub-rating in that case).
	Numeric int32
	Demon   DemonRating
	IsDemon bool
}

// DemonRating distinguishes the five demon difficulty tiers.
type DemonRating uint8

const (
	DemonUnspecified DemonRating = iota
	DemonEasy
	DemonMedium
	DemonHard
	DemonInsane
	DemonExtreme
)

// DemonRatingFromValue maps the API's raw demon-difficulty integer onto a
// DemonRating, mirroring the fixed small table the game client uses.
func DemonRatingFromValue(v int32) DemonRating {
	switch v {
	case 3:
		return DemonEasy
	case 4:
		return DemonMedium
	case 0:
		return DemonHard
	case 5:
		return DemonInsane
	case 6:
		return DemonExtreme
	default:
		return DemonUnspecified
	}
}

// PartialLevel is the level record returned by level-search endpoints: it
// carries metadata but not the level's object data.
//
// Song and Creator are generic over the level's upgrade state: raw values
// are bare ids (uint64), upgraded values are the corresponding full model
// objects. See the upgrade package for the transitions between these
// states.
type PartialLevel[Song, Creator any] struct {
	LevelID     uint64
	Name        string
	Description string
	Version     uint32

	Difficulty LevelRating
	Downloads  uint32
	Likes      uint32
	Stars      uint8

	// MainSongID is set when the level uses one of the game's built-in
	// songs; mutually exclusive with CustomSongID.
	MainSongID *uint32
	// CustomSongID is set when the level uses a custom Newgrounds song.
	// Song only carries meaningful data when this is non-nil.
	CustomSongID *uint64
	Song         Song

	CreatorID uint64
	Creator   Creator

	GDVersion      GameVersion
	Length         LevelLength
	IsDemon        bool
	FeaturedWeight uint32
	IsAuto         bool
	IsEpic         bool
	CopyOf         *uint64
	CoinCount      uint8
	ObjectCount    uint32
}

// Level is a PartialLevel plus the fields only present once the level's full
// object data has been downloaded.
type Level[Song, Creator any] struct {
	PartialLevel[Song, Creator]

	// Data holds the level's (still gzip+base64+xor encoded) object string,
	// deliberately left undecoded: parsing the object format is out of scope
	// for the cache layer.
	Data     string
	Password string

	UploadedAgo string
	UpdatedAgo  string
}

// RawPartialLevel and RawLevel are the as-fetched forms, before any upgrade
// has resolved the song or creator fields.
type (
	RawPartialLevel = PartialLevel[uint64, uint64]
	RawLevel        = Level[uint64, uint64]
)
