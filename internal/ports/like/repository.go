package like

import (
	"context"

	"chirp/internal/core/like"
)

// LikeRepository is the outbound port for like edges. Create surfaces a
// storage-level uniqueness violation as gorm.ErrDuplicatedKey; Delete of
// an absent edge is a no-op.
type LikeRepository interface {
	Create(ctx context.Context, l *like.Like) (*like.Like, error)
	Delete(ctx context.Context, postID, accountID string) error
	Exists(ctx context.Context, postID, accountID string) (bool, error)
	CountByPostID(ctx context.Context, postID string) (int64, error)
	FindPostIDsByAccountID(ctx context.Context, accountID string) ([]string, error)
}
