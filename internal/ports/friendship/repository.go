package friendship

import (
	"context"

	"chirp/internal/core/friendship"
)

// FriendshipRepository is the outbound port for follow edges.
// Create surfaces a storage-level uniqueness violation as
// gorm.ErrDuplicatedKey; Delete of an absent edge is a no-op.
type FriendshipRepository interface {
	Create(ctx context.Context, f *friendship.Friendship) (*friendship.Friendship, error)
	Delete(ctx context.Context, followerID, followingID string) error
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	CountFollowers(ctx context.Context, accountID string) (int64, error)
	CountFollowing(ctx context.Context, accountID string) (int64, error)
	FindFollowers(ctx context.Context, accountID string) ([]*friendship.Friendship, error)
	FindFollowing(ctx context.Context, accountID string) ([]*friendship.Friendship, error)
}

type FriendshipDTO struct {
	ID          string `json:"id"`
	FollowerID  string `json:"followerId"`
	FollowingID string `json:"followingId"`
	CreatedAt   string `json:"createdAt"`
}
