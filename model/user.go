package model

// Creator is the lightweight level-author record attached to a level once
// its creator id has been upgraded: a name and the account id needed to
// look up the full User profile.
type Creator struct {
	UserID    uint64
	Name      string
	AccountID uint64
}

// DeletedCreator is spliced in for a level whose creator account no longer
// exists. It carries the placeholder name "-" and no user or account id.
var DeletedCreator = Creator{UserID: 0, Name: "-", AccountID: 0}

// User is a full player profile, as resolved by the CreatorUser upgrade.
type User struct {
	Name      string
	UserID    uint64
	AccountID uint64

	Stars        uint32
	Demons       uint32
	CreatorPoints uint32
	Rank         uint32

	SecretCoins uint32
	UserCoins   uint32

	YoutubeURL string
	TwitterURL string
	TwitchURL  string

	IconDisplayGamemode string
}
