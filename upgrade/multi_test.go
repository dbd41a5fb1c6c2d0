package upgrade

import (
	"context"
	"testing"
	"time"

	"github.com/stadust/gdcf/cache"
	"github.com/stadust/gdcf/cache/memory"
	"github.com/stadust/gdcf/model"
)

func TestMultiPreservesInputOrder(t *testing.T) {
	c := memory.NewL1Cache(10)
	c.Store(context.Background(), 1, model.NewgroundsSong{SongID: 1, Name: "one"}, time.Minute)
	c.Store(context.Background(), 2, model.NewgroundsSong{SongID: 2, Name: "two"}, time.Minute)
	c.Store(context.Background(), 3, model.NewgroundsSong{SongID: 3, Name: "three"}, time.Minute)

	levels := []model.PartialLevel[uint64, uint64]{
		{LevelID: 10, CustomSongID: ptrU64(3)},
		{LevelID: 11, CustomSongID: ptrU64(1)},
		{LevelID: 12, CustomSongID: ptrU64(2)},
	}

	proc := &fakeProcessor{}
	out, err := Multi[model.PartialLevel[uint64, uint64], model.PartialLevel[model.NewgroundsSong, uint64], model.NewgroundsSong](
		context.Background(), proc, c, levels, cache.Meta{CachedAt: time.Now()}, LevelSong[uint64]{})
	if err != nil {
		t.Fatalf("Multi: %v", err)
	}

	wantNames := []string{"three", "one", "two"}
	for i, want := range wantNames {
		if out[i].Song.Name != want {
			t.Fatalf("index %d: expected song %q, got %q", i, want, out[i].Song.Name)
		}
	}
}

func TestMultiEmptyInput(t *testing.T) {
	c := memory.NewL1Cache(10)
	proc := &fakeProcessor{}
	out, err := Multi[model.PartialLevel[uint64, uint64], model.PartialLevel[model.NewgroundsSong, uint64], model.NewgroundsSong](
		context.Background(), proc, c, nil, cache.Meta{CachedAt: time.Now()}, LevelSong[uint64]{})
	if err != nil {
		t.Fatalf("Multi: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result for empty input, got %d", len(out))
	}
}
