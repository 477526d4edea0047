package post

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"

	"chirp/internal/core/account"
)

// MaxContentLength bounds post content, counted in runes.
const MaxContentLength = 255

var (
	ErrNotFound       = errors.New("post not found")
	ErrContentEmpty   = errors.New("post content must not be empty")
	ErrContentTooLong = errors.New("post content exceeds 255 characters")
	ErrNotAuthor      = errors.New("only the author can delete a post")
)

type Post struct {
	ID        uuid.UUID       `gorm:"primary_key;type:char(36)"`
	Content   string          `gorm:"type:varchar(255);not null"`
	AccountID uuid.UUID       `gorm:"type:char(36);not null;index"`
	Account   account.Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
