package upgrade

import (
	"context"

	"github.com/stadust/gdcf/cache"
	"github.com/stadust/gdcf/model"
	"github.com/stadust/gdcf/request"
)

// LevelSong upgrades a level's CustomSongID into the full NewgroundsSong
// record, leaving the Creator field untouched. Grounded on the original
// source's level-song upgrade (gdcf/src/upgrade/level.rs): the upgrade
// request is a LevelsRequest filtered down to the song id purely to
// populate the cache as a side effect, but the payload itself is always
// read back from the cache by the song's own natural id (it was harvested
// as a secondary of whatever response first mentioned this song).
type LevelSong[Creator any] struct{}

func (LevelSong[Creator]) UpgradeRequest(obj model.PartialLevel[uint64, Creator]) (request.Request, bool) {
	if obj.CustomSongID == nil {
		return nil, false
	}
	return request.NewLevelsRequest(request.LevelsFilters{
		SearchType:   request.SearchByIDs,
		CustomSongID: obj.CustomSongID,
	}), true
}

func (LevelSong[Creator]) DefaultUpgrade() (model.NewgroundsSong, bool) {
	return model.NewgroundsSong{}, true
}

func (LevelSong[Creator]) LookupUpgrade(ctx context.Context, obj model.PartialLevel[uint64, Creator], c cache.Cache) (cache.Entry, error) {
	if obj.CustomSongID == nil {
		return cache.DeducedAbsentEntry(), nil
	}
	return c.Lookup(ctx, *obj.CustomSongID)
}

func (LevelSong[Creator]) Upgrade(obj model.PartialLevel[uint64, Creator], song model.NewgroundsSong) (model.PartialLevel[model.NewgroundsSong, Creator], model.PartialLevel[uint64, Creator]) {
	into := model.PartialLevel[model.NewgroundsSong, Creator]{
		LevelID: obj.LevelID, Name: obj.Name, Description: obj.Description, Version: obj.Version,
		Difficulty: obj.Difficulty, Downloads: obj.Downloads, Likes: obj.Likes, Stars: obj.Stars,
		MainSongID: obj.MainSongID, CustomSongID: obj.CustomSongID, Song: song,
		CreatorID: obj.CreatorID, Creator: obj.Creator,
		GDVersion: obj.GDVersion, Length: obj.Length, IsDemon: obj.IsDemon,
		FeaturedWeight: obj.FeaturedWeight, IsAuto: obj.IsAuto, IsEpic: obj.IsEpic,
		CopyOf: obj.CopyOf, CoinCount: obj.CoinCount, ObjectCount: obj.ObjectCount,
	}
	return into, obj
}

func (LevelSong[Creator]) Downgrade(into model.PartialLevel[model.NewgroundsSong, Creator], residue model.PartialLevel[uint64, Creator]) (model.PartialLevel[uint64, Creator], model.NewgroundsSong) {
	return residue, into.Song
}

// LevelCreator upgrades a level's CreatorID into the full Creator record,
// leaving the Song field untouched. Grounded on the same source file's
// level-creator upgrade: same direct-cache-lookup-by-id shape as LevelSong.
type LevelCreator[Song any] struct{}

func (LevelCreator[Song]) UpgradeRequest(obj model.PartialLevel[Song, uint64]) (request.Request, bool) {
	return request.NewLevelsRequest(request.LevelsFilters{
		SearchType: request.SearchByUser,
		UserID:     &obj.CreatorID,
	}), true
}

func (LevelCreator[Song]) DefaultUpgrade() (model.Creator, bool) {
	return model.DeletedCreator, true
}

func (LevelCreator[Song]) LookupUpgrade(ctx context.Context, obj model.PartialLevel[Song, uint64], c cache.Cache) (cache.Entry, error) {
	return c.Lookup(ctx, obj.CreatorID)
}

func (LevelCreator[Song]) Upgrade(obj model.PartialLevel[Song, uint64], creator model.Creator) (model.PartialLevel[Song, model.Creator], model.PartialLevel[Song, uint64]) {
	into := model.PartialLevel[Song, model.Creator]{
		LevelID: obj.LevelID, Name: obj.Name, Description: obj.Description, Version: obj.Version,
		Difficulty: obj.Difficulty, Downloads: obj.Downloads, Likes: obj.Likes, Stars: obj.Stars,
		MainSongID: obj.MainSongID, CustomSongID: obj.CustomSongID, Song: obj.Song,
		CreatorID: obj.CreatorID, Creator: creator,
		GDVersion: obj.GDVersion, Length: obj.Length, IsDemon: obj.IsDemon,
		FeaturedWeight: obj.FeaturedWeight, IsAuto: obj.IsAuto, IsEpic: obj.IsEpic,
		CopyOf: obj.CopyOf, CoinCount: obj.CoinCount, ObjectCount: obj.ObjectCount,
	}
	return into, obj
}

func (LevelCreator[Song]) Downgrade(into model.PartialLevel[Song, model.Creator], residue model.PartialLevel[Song, uint64]) (model.PartialLevel[Song, uint64], model.Creator) {
	return residue, into.Creator
}
