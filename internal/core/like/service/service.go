package likeapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	likeEntity "chirp/internal/core/like"
	likePort "chirp/internal/ports/like"
	postPort "chirp/internal/ports/post"
)

// LikeService manages like edges between accounts and posts.
type LikeService struct {
	LikeRepository likePort.LikeRepository
	PostRepository postPort.PostRepository
	logger         *zap.Logger
}

func NewLikeService(repo likePort.LikeRepository, posts postPort.PostRepository, logger *zap.Logger) *LikeService {
	return &LikeService{
		LikeRepository: repo,
		PostRepository: posts,
		logger:         logger,
	}
}

// Like creates the (post, account) edge. Liking an already-liked post is
// a no-op; a duplicate-key failure from a concurrent Like of the same
// pair is folded into the same idempotent success.
func (s *LikeService) Like(ctx context.Context, accountID, postID string) error {
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return err
	}

	exists, err := s.LikeRepository.Exists(ctx, postID, accountID)
	if err != nil {
		return fmt.Errorf("check like state: %w", err)
	}
	if exists {
		return nil
	}

	l := &likeEntity.Like{
		ID:        uuid.Must(uuid.NewV4()),
		PostID:    uuid.FromStringOrNil(postID),
		AccountID: uuid.FromStringOrNil(accountID),
	}
	if _, err := s.LikeRepository.Create(ctx, l); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("create like edge: %w", err)
	}

	s.logger.Info("post liked", zap.String("postID", postID), zap.String("accountID", accountID))
	return nil
}

// Unlike removes the (post, account) edge. Removing an absent edge is a
// no-op, but the post itself must exist.
func (s *LikeService) Unlike(ctx context.Context, accountID, postID string) error {
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return err
	}
	if err := s.LikeRepository.Delete(ctx, postID, accountID); err != nil {
		return fmt.Errorf("delete like edge: %w", err)
	}
	return nil
}

func (s *LikeService) Count(ctx context.Context, postID string) (int64, error) {
	return s.LikeRepository.CountByPostID(ctx, postID)
}

func (s *LikeService) IsLikedBy(ctx context.Context, postID, accountID string) (bool, error) {
	return s.LikeRepository.Exists(ctx, postID, accountID)
}
