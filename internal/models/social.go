package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow records that FollowerID follows UserID. No unfollow is exposed.
type Follow struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey;column:follower_id" json:"follower_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// BlockedUser records that BlockerID blocked BlockedID. No unblock is
// exposed.
type BlockedUser struct {
	BlockerID uuid.UUID `gorm:"type:uuid;primaryKey;column:blocker_id" json:"blocker_id"`
	BlockedID uuid.UUID `gorm:"type:uuid;primaryKey;column:blocked_id" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}
