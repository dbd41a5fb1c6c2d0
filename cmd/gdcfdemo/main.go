// Command gdcfdemo wires a fake client and an in-memory cache into the gdcf
// facade and exercises the full pipeline end to end: fetch a level, stream
// a search, and upgrade its song and creator. The warming service is wired
// up and driven once on startup to show the proactive-refresh path
// alongside the on-demand one.
package main

import (
	"context"
	"log"
	"time"

	"github.com/stadust/gdcf"
	"github.com/stadust/gdcf/cache/memory"
	"github.com/stadust/gdcf/client/fake"
	"github.com/stadust/gdcf/internal/config"
	"github.com/stadust/gdcf/model"
	"github.com/stadust/gdcf/request"
	"github.com/stadust/gdcf/response"
	"github.com/stadust/gdcf/warming"
)

// hotLevels is the fixed set of level ids the scheduled warmup keeps fresh.
var hotLevels = []uint64{1, 2, 3}

func newDemoClient() *fake.Client {
	c := &fake.Client{}
	c.LevelFunc = func(ctx context.Context, req request.LevelRequest) (response.Response[model.RawLevel], error) {
		return response.Response[model.RawLevel]{
			Result: model.RawLevel{
				PartialLevel: model.RawPartialLevel{
					LevelID:      req.LevelID,
					Name:         "Demo Level",
					CustomSongID: ptr(uint64(771277)),
					CreatorID:    1234,
				},
			},
			Secondaries: []response.Secondary{
				response.NewSecondary(771277, model.NewgroundsSong{SongID: 771277, Name: "Demo Song", Artist: "Demo Artist"}),
				response.NewSecondary(1234, model.Creator{UserID: 1234, Name: "DemoCreator", AccountID: 5678}),
			},
		}, nil
	}
	c.LevelsFunc = func(ctx context.Context, req request.LevelsRequest) (response.Response[[]model.RawPartialLevel], error) {
		if req.Page() > 0 {
			return response.Response[[]model.RawPartialLevel]{}, fake.NoResultError{Msg: "no more pages"}
		}
		return response.Response[[]model.RawPartialLevel]{
			Result: []model.RawPartialLevel{{LevelID: 1, Name: "Demo Level", CreatorID: 1234}},
		}, nil
	}
	c.UserFunc = func(ctx context.Context, req request.UserRequest) (response.Response[model.User], error) {
		return response.Response[model.User]{Result: model.User{Name: "DemoCreator", AccountID: req.AccountID}}, nil
	}
	c.LevelCommentsFunc = func(ctx context.Context, req request.LevelCommentsRequest) (response.Response[[]model.LevelComment], error) {
		return response.Response[[]model.LevelComment]{}, fake.NoResultError{Msg: "no comments"}
	}
	c.ProfileCommentsFunc = func(ctx context.Context, req request.ProfileCommentsRequest) (response.Response[[]model.ProfileComment], error) {
		return response.Response[[]model.ProfileComment]{}, fake.NoResultError{Msg: "no comments"}
	}
	return c
}

func ptr[T any](v T) *T { return &v }

func main() {
	cfg := config.FromEnv()
	l1 := memory.NewL1Cache(cfg.L1MaxEntries)
	g := gdcf.New(l1, newDemoClient(), cfg)

	warmSvc := warming.NewService(g, warming.DefaultConfig())
	warming.Init(warmSvc)
	defer warmSvc.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if queued, err := warmSvc.WarmLevels(ctx, hotLevels, 90, "priority"); err != nil {
		log.Printf("gdcfdemo: warmup failed: %v", err)
	} else {
		log.Printf("warming: queued %d hot levels", queued)
	}

	level, err := g.Level(ctx, request.NewLevelRequest(1)).Wait(ctx)
	if err != nil {
		log.Fatalf("gdcfdemo: level fetch failed: %v", err)
	}
	raw, _ := level.Value.(model.RawLevel)
	log.Printf("fetched level %q (id=%d)", raw.Name, raw.LevelID)

	withSong, err := gdcf.UpgradeSongOne[uint64](ctx, g, raw.PartialLevel)
	if err != nil {
		log.Fatalf("gdcfdemo: song upgrade failed: %v", err)
	}
	log.Printf("song: %q by %s", withSong.Song.Name, withSong.Song.Artist)

	withCreator, err := gdcf.UpgradeCreatorOne[model.NewgroundsSong](ctx, g, withSong)
	if err != nil {
		log.Fatalf("gdcfdemo: creator upgrade failed: %v", err)
	}
	log.Printf("creator: %s (account=%d)", withCreator.Creator.Name, withCreator.Creator.AccountID)

	user, err := gdcf.UpgradeUserOne(ctx, g, withCreator.Creator)
	if err != nil {
		log.Fatalf("gdcfdemo: user upgrade failed: %v", err)
	}
	log.Printf("user profile: %s", user.Name)

	stream := g.LevelsStream(ctx, request.NewLevelsRequest(request.LevelsFilters{SearchType: request.SearchMostRecent}))
	for {
		page, ok, err := stream.Next(ctx)
		if err != nil {
			log.Fatalf("gdcfdemo: stream failed: %v", err)
		}
		if !ok {
			break
		}
		log.Printf("search page: %d levels", len(page))
	}
}
