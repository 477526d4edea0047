package like

import (
	"time"

	"github.com/gofrs/uuid"

	"chirp/internal/core/account"
	"chirp/internal/core/post"
)

// Like is an edge between an account and a post. The (post_id, account_id)
// pair is unique at the storage level; rows are hard-deleted so a post can
// be liked again after an unlike.
type Like struct {
	ID        uuid.UUID       `gorm:"primary_key;type:char(36)"`
	PostID    uuid.UUID       `gorm:"type:char(36);not null;uniqueIndex:uniq_like"`
	Post      post.Post       `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AccountID uuid.UUID       `gorm:"type:char(36);not null;uniqueIndex:uniq_like"`
	Account   account.Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
