package upgrade

import (
	"context"
	"errors"

	"github.com/stadust/gdcf/cache"
)

// ErrUnexpectedlyAbsent is returned when an upgrade target is provably
// absent and the Upgradable has no default to splice in instead — a
// consistency violation rather than an ordinary absence.
var ErrUnexpectedlyAbsent = errors.New("gdcf: upgrade target unexpectedly absent")

// Future resolves a single object's upgrade from Obj to Into, consulting
// the cache directly before ever issuing a network request, matching the
// original source's lookup_upgrade behavior for id-referenced secondaries
// (LevelSong, LevelCreator): the request issued by UpgradeRequest exists
// only to populate the cache as a side effect, the payload itself always
// comes back through LookupUpgrade.
type Future[Obj, Into, U any] struct {
	done  chan struct{}
	entry cache.Entry
	err   error
}

// New starts resolving src's upgrade through upgrader and returns
// immediately.
func New[Obj, Into, U any](ctx context.Context, proc Processor, c cache.Cache, src Source[Obj], upgrader Upgradable[Obj, Into, U]) *Future[Obj, Into, U] {
	f := &Future[Obj, Into, U]{done: make(chan struct{})}
	go f.run(ctx, proc, c, src, upgrader)
	return f
}

func (f *Future[Obj, Into, U]) run(ctx context.Context, proc Processor, c cache.Cache, src Source[Obj], upgrader Upgradable[Obj, Into, U]) {
	defer close(f.done)

	inner, err := src.Wait(ctx)
	if err != nil {
		f.err = err
		return
	}

	switch inner.Kind {
	case cache.KindMarkedAbsent, cache.KindDeducedAbsent:
		// Short-circuit: the source object itself is absent, so there is
		// nothing to upgrade. Propagate the absence unchanged.
		f.entry = inner
		return
	case cache.KindMissing:
		f.err = errors.New("gdcf: upgrade source resolved to Missing, which should be unreachable after Wait")
		return
	}

	obj, ok := cache.As[Obj](inner)
	if !ok {
		f.err = errors.New("gdcf: upgrade source entry type mismatch")
		return
	}

	into, resolveErr := f.resolve(ctx, proc, c, obj, upgrader)
	if resolveErr != nil {
		f.err = resolveErr
		return
	}
	f.entry = cache.Cached(into, inner.Meta)
}

func (f *Future[Obj, Into, U]) resolve(ctx context.Context, proc Processor, c cache.Cache, obj Obj, upgrader Upgradable[Obj, Into, U]) (Into, error) {
	var zero Into

	req, hasReq := upgrader.UpgradeRequest(obj)
	if !hasReq {
		def, ok := upgrader.DefaultUpgrade()
		if !ok {
			return zero, ErrUnexpectedlyAbsent
		}
		into, _ := upgrader.Upgrade(obj, def)
		return into, nil
	}

	lookup, err := upgrader.LookupUpgrade(ctx, obj, c)
	if err != nil {
		return zero, err
	}

	if lookup.Kind == cache.KindMissing {
		if _, err := proc.ProcessAny(ctx, req); err != nil {
			return zero, err
		}
		lookup, err = upgrader.LookupUpgrade(ctx, obj, c)
		if err != nil {
			return zero, err
		}
	}

	switch lookup.Kind {
	case cache.KindCached:
		u, ok := cache.As[U](lookup)
		if !ok {
			return zero, errors.New("gdcf: upgrade payload type mismatch")
		}
		into, _ := upgrader.Upgrade(obj, u)
		return into, nil
	default:
		def, ok := upgrader.DefaultUpgrade()
		if !ok {
			return zero, ErrUnexpectedlyAbsent
		}
		into, _ := upgrader.Upgrade(obj, def)
		return into, nil
	}
}

// Wait blocks until the upgrade resolves.
func (f *Future[Obj, Into, U]) Wait(ctx context.Context) (cache.Entry, error) {
	select {
	case <-f.done:
		return f.entry, f.err
	case <-ctx.Done():
		return cache.Entry{}, ctx.Err()
	}
}

// CachedEntry returns the resolved entry without blocking, if ready —
// satisfying Source[Into] so upgrade chains can nest.
func (f *Future[Obj, Into, U]) CachedEntry() (cache.Entry, bool) {
	select {
	case <-f.done:
		return f.entry, f.err == nil
	default:
		return cache.Entry{}, false
	}
}
