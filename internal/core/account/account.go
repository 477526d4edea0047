package account

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Account struct {
	ID           uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Username     string     `gorm:"unique;not null"`
	Email        string     `gorm:"not null"`
	PasswordHash string     `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `gorm:"index"`
}
