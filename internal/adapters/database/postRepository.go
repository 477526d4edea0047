package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chirp/internal/core/post"
)

// PostRepositoryDatabase implements PostRepository over gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).Preload("Account").Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, post.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll returns every post newest first; id breaks timestamp ties so
// the order stays deterministic.
func (repo *PostRepositoryDatabase) FindAll(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.db.WithContext(ctx).Preload("Account").
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByAccountID(ctx context.Context, accountID string) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.db.WithContext(ctx).Preload("Account").
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return post.ErrNotFound
	}
	return nil
}
