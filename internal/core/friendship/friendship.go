package friendship

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"

	"chirp/internal/core/account"
)

// ErrSelfReference is returned when an account tries to follow or
// unfollow itself.
var ErrSelfReference = errors.New("cannot follow yourself")

// Friendship is a directed follow edge: Follower follows Following.
// The (follower_id, following_id) pair is unique at the storage level;
// edges are hard-deleted so the pair can be re-created after an unfollow.
type Friendship struct {
	ID          uuid.UUID       `gorm:"primary_key;type:char(36)"`
	FollowerID  uuid.UUID       `gorm:"type:char(36);not null;uniqueIndex:uniq_friendship"`
	Follower    account.Account `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	FollowingID uuid.UUID       `gorm:"type:char(36);not null;uniqueIndex:uniq_friendship"`
	Following   account.Account `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
