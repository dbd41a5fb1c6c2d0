package upgrade

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stadust/gdcf/cache"
)

// singleValueSource adapts an already-resolved object into a Source, so
// Multi can drive each element through the same Future machinery as a
// single-object upgrade.
type singleValueSource[T any] struct {
	entry cache.Entry
}

func (s singleValueSource[T]) Wait(ctx context.Context) (cache.Entry, error) { return s.entry, nil }
func (s singleValueSource[T]) CachedEntry() (cache.Entry, bool)              { return s.entry, true }

// Just wraps an already-resolved value as a Source, for upgrading a single
// object that didn't come from a ProcessRequestFuture (e.g. one element
// plucked out of a slice the caller already has).
func Just[T any](value T, meta cache.Meta) Source[T] {
	return singleValueSource[T]{entry: cache.Cached(value, meta)}
}

// Multi upgrades every element of items concurrently, preserving input
// order in the result slice. If any single element fails to upgrade (a
// cache backend error, or an unexpectedly-absent target with no default),
// the whole call fails — no partial list is ever returned, matching
// MultiUpgradeFuture's all-or-nothing contract.
func Multi[Obj, Into, U any](ctx context.Context, proc Processor, c cache.Cache, items []Obj, meta cache.Meta, upgrader Upgradable[Obj, Into, U]) ([]Into, error) {
	results := make([]Into, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			src := singleValueSource[Obj]{entry: cache.Cached(item, meta)}
			f := New[Obj, Into, U](gctx, proc, c, src, upgrader)
			entry, err := f.Wait(gctx)
			if err != nil {
				return err
			}
			into, ok := cache.As[Into](entry)
			if !ok {
				return ErrUnexpectedlyAbsent
			}
			results[i] = into
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
