package gdcf

import (
	"context"
	"testing"
	"time"

	"github.com/stadust/gdcf/cache/memory"
	"github.com/stadust/gdcf/client/fake"
	"github.com/stadust/gdcf/internal/config"
	"github.com/stadust/gdcf/model"
	"github.com/stadust/gdcf/request"
	"github.com/stadust/gdcf/response"
)

func newTestGdcf() (*Gdcf, *fake.Client) {
	c := &fake.Client{}
	g := New(memory.NewL1Cache(1000), c, config.DefaultConfig())
	return g, c
}

func TestLevelFetchAndCacheHit(t *testing.T) {
	g, c := newTestGdcf()
	c.LevelFunc = func(ctx context.Context, req request.LevelRequest) (response.Response[model.RawLevel], error) {
		return response.Response[model.RawLevel]{
			Result: model.RawLevel{PartialLevel: model.RawPartialLevel{LevelID: req.LevelID, Name: "Test"}},
		}, nil
	}

	ctx := context.Background()
	req := request.NewLevelRequest(1)

	entry, err := g.Level(ctx, req).Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	lvl, ok := entry.Value.(model.RawLevel)
	if !ok || lvl.Name != "Test" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	if _, err := g.Level(ctx, req).Wait(ctx); err != nil {
		t.Fatalf("second Wait: %v", err)
	}
	if calls := c.CallCounts()["Level"]; calls != 1 {
		t.Fatalf("expected exactly one client call across two identical requests, got %d", calls)
	}
}

func TestProcessAnyDispatchesByRequestType(t *testing.T) {
	g, c := newTestGdcf()
	c.UserFunc = func(ctx context.Context, req request.UserRequest) (response.Response[model.User], error) {
		return response.Response[model.User]{Result: model.User{Name: "dispatched", AccountID: req.AccountID}}, nil
	}

	entry, err := g.ProcessAny(context.Background(), request.NewUserRequest(42))
	if err != nil {
		t.Fatalf("ProcessAny: %v", err)
	}
	user, ok := entry.Value.(model.User)
	if !ok || user.Name != "dispatched" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestUpgradeSongOneEndToEnd(t *testing.T) {
	g, _ := newTestGdcf()
	g.cache.Store(context.Background(), 7, model.NewgroundsSong{SongID: 7, Name: "Song Seven"}, time.Minute)

	level := model.PartialLevel[uint64, uint64]{LevelID: 1, CustomSongID: ptr(uint64(7))}
	out, err := UpgradeSongOne[uint64](context.Background(), g, level)
	if err != nil {
		t.Fatalf("UpgradeSongOne: %v", err)
	}
	if out.Song.Name != "Song Seven" {
		t.Fatalf("expected song to resolve, got %+v", out.Song)
	}
}

func ptr[T any](v T) *T { return &v }
