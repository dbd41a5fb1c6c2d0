package upgrade

import (
	"context"

	"github.com/stadust/gdcf/cache"
	"github.com/stadust/gdcf/model"
	"github.com/stadust/gdcf/request"
)

// UnknownUser is spliced in by CreatorUser when a creator has no usable
// account id to resolve against.
var UnknownUser = model.User{Name: "-"}

// CreatorUser upgrades a Creator into the full User profile via its
// account id. Grounded on the original source's CreatorUser upgrade
// (gdcf/src/upgrade/user.rs): unlike LevelSong/LevelCreator, the upgrade
// request's own result IS the upgrade payload — there's no separate
// id-keyed secondary to read back, so LookupUpgrade simply re-reads the
// UserRequest's own cache slot, which ProcessAny will have populated.
//
// Per the account-id-only decision: a creator with no account id (account
// id 0, e.g. a DeletedCreator or a creator whose account was never linked)
// has no request to issue at all; UnknownUser is spliced in directly with
// no network call.
type CreatorUser struct{}

func (CreatorUser) UpgradeRequest(obj model.Creator) (request.Request, bool) {
	if obj.AccountID == 0 {
		return nil, false
	}
	return request.NewUserRequest(obj.AccountID), true
}

func (CreatorUser) DefaultUpgrade() (model.User, bool) {
	return UnknownUser, true
}

func (CreatorUser) LookupUpgrade(ctx context.Context, obj model.Creator, c cache.Cache) (cache.Entry, error) {
	if obj.AccountID == 0 {
		return cache.DeducedAbsentEntry(), nil
	}
	req := request.NewUserRequest(obj.AccountID)
	return c.LookupRequest(ctx, req.Fingerprint())
}

func (CreatorUser) Upgrade(obj model.Creator, user model.User) (model.User, model.Creator) {
	return user, obj
}

func (CreatorUser) Downgrade(into model.User, residue model.Creator) (model.Creator, model.User) {
	return residue, into
}
