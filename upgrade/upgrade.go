// Package upgrade implements gdcf's upgrade pipeline: turning a raw object
// (a level with a bare creator id) into a richer one (a level with a full
// Creator record) by resolving referenced ids against the cache, issuing a
// network request only when the cache genuinely doesn't know the answer.
package upgrade

import (
	"context"

	"github.com/stadust/gdcf/cache"
	"github.com/stadust/gdcf/request"
)

// Upgradable describes one upgrade step from Obj to Into, with U the
// type of the resolved payload spliced into Obj to produce Into.
//
// Grounded on the original source's Upgrade<C, Into> trait
// (gdcf/src/upgrade/mod.rs): UpgradeRequest/DefaultUpgrade mirror
// upgrade_request/default_upgrade, LookupUpgrade mirrors lookup_upgrade,
// and Upgrade/Downgrade mirror the trait's upgrade/downgrade pair used for
// the round-trip invertibility property.
type Upgradable[Obj, Into, U any] interface {
	// UpgradeRequest returns the request to issue if the cache doesn't
	// already know U for obj. ok is false when no upgrade applies at all
	// (e.g. a level using a built-in song has no custom song to resolve) —
	// DefaultUpgrade is used directly in that case, with no cache lookup.
	UpgradeRequest(obj Obj) (req request.Request, ok bool)

	// DefaultUpgrade is spliced in when the upgrade target is provably
	// absent (no request applies, or the request/lookup resolved to
	// absence). ok is false only for upgrades that have no sensible
	// default, in which case absence is a hard failure.
	DefaultUpgrade() (u U, ok bool)

	// LookupUpgrade resolves the upgrade payload directly from the cache,
	// without ever issuing a network call itself. Its result's Kind tells
	// the caller whether the answer is final (Cached / MarkedAbsent /
	// DeducedAbsent) or a refresh is required (Missing).
	LookupUpgrade(ctx context.Context, obj Obj, c cache.Cache) (cache.Entry, error)

	// Upgrade splices u into obj, producing the upgraded value plus a
	// residue of obj sufficient to reconstruct it via Downgrade.
	Upgrade(obj Obj, u U) (into Into, residue Obj)

	// Downgrade inverts Upgrade given the residue it produced.
	Downgrade(into Into, residue Obj) (obj Obj, u U)
}

// Processor resolves an arbitrary request.Request to its cached/fetched
// result, without the caller needing to know the request's concrete result
// type. The gdcf facade implements this by type-switching over the request
// and delegating to the matching typed future.Process call.
type Processor interface {
	ProcessAny(ctx context.Context, req request.Request) (cache.Entry, error)
}

// Source is satisfied by anything that resolves to a cache.Entry for an
// object of type T — notably future.ProcessRequestFuture[T] and
// upgrade.Future[_, T, _], letting upgrade chains nest arbitrarily deep.
type Source[T any] interface {
	Wait(ctx context.Context) (cache.Entry, error)
	CachedEntry() (cache.Entry, bool)
}
