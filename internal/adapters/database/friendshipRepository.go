package database

import (
	"context"

	"gorm.io/gorm"

	"chirp/internal/core/friendship"
)

// FriendshipRepositoryDatabase implements FriendshipRepository over gorm.
// Duplicate edges surface as gorm.ErrDuplicatedKey through the driver's
// error translation.
type FriendshipRepositoryDatabase struct {
	db *gorm.DB
}

func NewFriendshipRepositoryDatabase(db *gorm.DB) *FriendshipRepositoryDatabase {
	return &FriendshipRepositoryDatabase{db: db}
}

func (repo *FriendshipRepositoryDatabase) Create(ctx context.Context, f *friendship.Friendship) (*friendship.Friendship, error) {
	if err := repo.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (repo *FriendshipRepositoryDatabase) Delete(ctx context.Context, followerID, followingID string) error {
	return repo.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&friendship.Friendship{}).Error
}

func (repo *FriendshipRepositoryDatabase) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&friendship.Friendship{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FriendshipRepositoryDatabase) CountFollowers(ctx context.Context, accountID string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&friendship.Friendship{}).
		Where("following_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *FriendshipRepositoryDatabase) CountFollowing(ctx context.Context, accountID string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&friendship.Friendship{}).
		Where("follower_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *FriendshipRepositoryDatabase) FindFollowers(ctx context.Context, accountID string) ([]*friendship.Friendship, error) {
	var edges []*friendship.Friendship
	if err := repo.db.WithContext(ctx).
		Where("following_id = ?", accountID).
		Order("created_at ASC, id ASC").
		Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

func (repo *FriendshipRepositoryDatabase) FindFollowing(ctx context.Context, accountID string) ([]*friendship.Friendship, error) {
	var edges []*friendship.Friendship
	if err := repo.db.WithContext(ctx).
		Where("follower_id = ?", accountID).
		Order("created_at ASC, id ASC").
		Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}
