package model

import "time"

// LevelComment is a single comment left on a level's comment section.
type LevelComment struct {
	CommentID uint64
	LevelID   uint64
	AuthorID  uint64
	Author    string
	Content   string
	Likes     int32
	PostedAgo string
	PostedAt  time.Time
}

// ProfileComment is a comment left on a user's profile (as opposed to a
// level's comment section).
type ProfileComment struct {
	CommentID uint64
	AccountID uint64
	Content   string
	Likes     int32
	PostedAgo string
	PostedAt  time.Time
}
