package gdcf

import (
	"context"
	"time"

	"github.com/stadust/gdcf/cache"
	"github.com/stadust/gdcf/model"
	"github.com/stadust/gdcf/upgrade"
)

// These are free functions rather than Gdcf methods because Go methods
// cannot introduce their own type parameters — only the generic upgrade
// package's functions can be parameterized over the Creator/Song axis a
// given upgrade leaves untouched.

// UpgradeSong resolves every level's custom song, leaving Creator untouched.
func UpgradeSong[Creator any](ctx context.Context, g *Gdcf, levels []model.PartialLevel[uint64, Creator]) ([]model.PartialLevel[model.NewgroundsSong, Creator], error) {
	meta := cache.Meta{CachedAt: time.Now()}
	return upgrade.Multi[model.PartialLevel[uint64, Creator], model.PartialLevel[model.NewgroundsSong, Creator], model.NewgroundsSong](
		ctx, g, g.cache, levels, meta, upgrade.LevelSong[Creator]{})
}

// UpgradeCreator resolves every level's creator, leaving Song untouched.
func UpgradeCreator[Song any](ctx context.Context, g *Gdcf, levels []model.PartialLevel[Song, uint64]) ([]model.PartialLevel[Song, model.Creator], error) {
	meta := cache.Meta{CachedAt: time.Now()}
	return upgrade.Multi[model.PartialLevel[Song, uint64], model.PartialLevel[Song, model.Creator], model.Creator](
		ctx, g, g.cache, levels, meta, upgrade.LevelCreator[Song]{})
}

// UpgradeUser resolves every creator's full user profile.
func UpgradeUser(ctx context.Context, g *Gdcf, creators []model.Creator) ([]model.User, error) {
	meta := cache.Meta{CachedAt: time.Now()}
	return upgrade.Multi[model.Creator, model.User, model.User](
		ctx, g, g.cache, creators, meta, upgrade.CreatorUser{})
}

// UpgradeSongOne resolves a single level's custom song.
func UpgradeSongOne[Creator any](ctx context.Context, g *Gdcf, level model.PartialLevel[uint64, Creator]) (model.PartialLevel[model.NewgroundsSong, Creator], error) {
	src := upgrade.Just[model.PartialLevel[uint64, Creator]](level, cache.Meta{CachedAt: time.Now()})
	f := upgrade.New[model.PartialLevel[uint64, Creator], model.PartialLevel[model.NewgroundsSong, Creator], model.NewgroundsSong](
		ctx, g, g.cache, src, upgrade.LevelSong[Creator]{})
	entry, err := f.Wait(ctx)
	if err != nil {
		var zero model.PartialLevel[model.NewgroundsSong, Creator]
		return zero, err
	}
	out, _ := cache.As[model.PartialLevel[model.NewgroundsSong, Creator]](entry)
	return out, nil
}

// UpgradeCreatorOne resolves a single level's creator.
func UpgradeCreatorOne[Song any](ctx context.Context, g *Gdcf, level model.PartialLevel[Song, uint64]) (model.PartialLevel[Song, model.Creator], error) {
	src := upgrade.Just[model.PartialLevel[Song, uint64]](level, cache.Meta{CachedAt: time.Now()})
	f := upgrade.New[model.PartialLevel[Song, uint64], model.PartialLevel[Song, model.Creator], model.Creator](
		ctx, g, g.cache, src, upgrade.LevelCreator[Song]{})
	entry, err := f.Wait(ctx)
	if err != nil {
		var zero model.PartialLevel[Song, model.Creator]
		return zero, err
	}
	out, _ := cache.As[model.PartialLevel[Song, model.Creator]](entry)
	return out, nil
}

// UpgradeUserOne resolves a single creator's full user profile.
func UpgradeUserOne(ctx context.Context, g *Gdcf, creator model.Creator) (model.User, error) {
	src := upgrade.Just[model.Creator](creator, cache.Meta{CachedAt: time.Now()})
	f := upgrade.New[model.Creator, model.User, model.User](ctx, g, g.cache, src, upgrade.CreatorUser{})
	entry, err := f.Wait(ctx)
	if err != nil {
		return model.User{}, err
	}
	out, _ := cache.As[model.User](entry)
	return out, nil
}
