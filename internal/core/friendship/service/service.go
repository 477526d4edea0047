package friendshipapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	friendshipEntity "chirp/internal/core/friendship"
	accountPort "chirp/internal/ports/account"
	friendshipPort "chirp/internal/ports/friendship"
)

// FriendshipService manages the follow graph.
type FriendshipService struct {
	FriendshipRepository friendshipPort.FriendshipRepository
	AccountRepository    accountPort.AccountRepository
	logger               *zap.Logger
}

func NewFriendshipService(repo friendshipPort.FriendshipRepository, accounts accountPort.AccountRepository, logger *zap.Logger) *FriendshipService {
	return &FriendshipService{
		FriendshipRepository: repo,
		AccountRepository:    accounts,
		logger:               logger,
	}
}

// Follow creates the follower->target edge. The self-reference check runs
// before the target lookup. The returned bool reports whether the edge was
// newly created; false means it already existed, which is a success, not
// an error. A duplicate-key failure from a concurrent Follow of the same
// pair is folded into that same outcome — the unique index on
// (follower_id, following_id) is the correctness authority.
func (s *FriendshipService) Follow(ctx context.Context, followerID, targetID string) (bool, error) {
	if followerID == targetID {
		s.logger.Warn("attempted self-follow", zap.String("accountID", followerID))
		return false, friendshipEntity.ErrSelfReference
	}

	if _, err := s.AccountRepository.FindByID(ctx, targetID); err != nil {
		return false, err
	}

	exists, err := s.FriendshipRepository.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		return false, fmt.Errorf("check follow state: %w", err)
	}
	if exists {
		return false, nil
	}

	f := &friendshipEntity.Friendship{
		ID:          uuid.Must(uuid.NewV4()),
		FollowerID:  uuid.FromStringOrNil(followerID),
		FollowingID: uuid.FromStringOrNil(targetID),
	}
	if _, err := s.FriendshipRepository.Create(ctx, f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race against an identical Follow; edge exists
			return false, nil
		}
		return false, fmt.Errorf("create follow edge: %w", err)
	}

	return true, nil
}

// Unfollow removes the follower->target edge. Removing an absent edge is
// a no-op.
func (s *FriendshipService) Unfollow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return friendshipEntity.ErrSelfReference
	}

	if _, err := s.AccountRepository.FindByID(ctx, targetID); err != nil {
		return err
	}

	if err := s.FriendshipRepository.Delete(ctx, followerID, targetID); err != nil {
		return fmt.Errorf("delete follow edge: %w", err)
	}
	return nil
}

func (s *FriendshipService) IsFollowing(ctx context.Context, followerID, targetID string) (bool, error) {
	return s.FriendshipRepository.IsFollowing(ctx, followerID, targetID)
}

func (s *FriendshipService) FollowerCount(ctx context.Context, accountID string) (int64, error) {
	return s.FriendshipRepository.CountFollowers(ctx, accountID)
}

func (s *FriendshipService) FollowingCount(ctx context.Context, accountID string) (int64, error) {
	return s.FriendshipRepository.CountFollowing(ctx, accountID)
}

// ListFollowers returns the edges pointing at the account, oldest first.
func (s *FriendshipService) ListFollowers(ctx context.Context, accountID string) ([]*friendshipPort.FriendshipDTO, error) {
	edges, err := s.FriendshipRepository.FindFollowers(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return toDTOs(edges), nil
}

// ListFollowing returns the edges originating from the account, oldest first.
func (s *FriendshipService) ListFollowing(ctx context.Context, accountID string) ([]*friendshipPort.FriendshipDTO, error) {
	edges, err := s.FriendshipRepository.FindFollowing(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return toDTOs(edges), nil
}

func toDTOs(edges []*friendshipEntity.Friendship) []*friendshipPort.FriendshipDTO {
	dtos := make([]*friendshipPort.FriendshipDTO, 0, len(edges))
	for _, f := range edges {
		dtos = append(dtos, &friendshipPort.FriendshipDTO{
			ID:          f.ID.String(),
			FollowerID:  f.FollowerID.String(),
			FollowingID: f.FollowingID.String(),
			CreatedAt:   f.CreatedAt.Format(time.RFC3339),
		})
	}
	return dtos
}
