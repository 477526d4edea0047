package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chirp/internal/core/account"
)

// AccountRepositoryDatabase implements AccountRepository over gorm.
type AccountRepositoryDatabase struct {
	db *gorm.DB
}

func NewAccountRepositoryDatabase(db *gorm.DB) *AccountRepositoryDatabase {
	return &AccountRepositoryDatabase{db: db}
}

func (repo *AccountRepositoryDatabase) Create(ctx context.Context, a *account.Account) (*account.Account, error) {
	if err := repo.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (repo *AccountRepositoryDatabase) FindByID(ctx context.Context, id string) (*account.Account, error) {
	var a account.Account
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (repo *AccountRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	var a account.Account
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
