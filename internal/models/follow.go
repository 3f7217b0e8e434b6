package models

import "time"

// Follow is a directed follower -> author relationship used to compose the
// follow feed. The pair is unique at the store level; the handler layer
// additionally rejects self-follows. Rows are hard-deleted so unfollow and
// re-follow round-trips cleanly.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follows_follower_author" json:"follower_id"`
	Follower   User      `gorm:"foreignKey:FollowerID" json:"-"`
	AuthorID   uint      `gorm:"not null;index;uniqueIndex:idx_follows_follower_author" json:"author_id"`
	Author     User      `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
