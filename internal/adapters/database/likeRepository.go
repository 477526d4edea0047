package database

import (
	"context"

	"gorm.io/gorm"

	"chirp/internal/core/like"
)

// LikeRepositoryDatabase implements LikeRepository over gorm. Duplicate
// edges surface as gorm.ErrDuplicatedKey through the driver's error
// translation.
type LikeRepositoryDatabase struct {
	db *gorm.DB
}

func NewLikeRepositoryDatabase(db *gorm.DB) *LikeRepositoryDatabase {
	return &LikeRepositoryDatabase{db: db}
}

func (repo *LikeRepositoryDatabase) Create(ctx context.Context, l *like.Like) (*like.Like, error) {
	if err := repo.db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (repo *LikeRepositoryDatabase) Delete(ctx context.Context, postID, accountID string) error {
	return repo.db.WithContext(ctx).
		Where("post_id = ? AND account_id = ?", postID, accountID).
		Delete(&like.Like{}).Error
}

func (repo *LikeRepositoryDatabase) Exists(ctx context.Context, postID, accountID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&like.Like{}).
		Where("post_id = ? AND account_id = ?", postID, accountID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *LikeRepositoryDatabase) CountByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&like.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *LikeRepositoryDatabase) FindPostIDsByAccountID(ctx context.Context, accountID string) ([]string, error) {
	var postIDs []string
	if err := repo.db.WithContext(ctx).Model(&like.Like{}).
		Where("account_id = ?", accountID).
		Pluck("post_id", &postIDs).Error; err != nil {
		return nil, err
	}
	return postIDs, nil
}
