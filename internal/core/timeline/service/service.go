package timelineapp

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	postEntity "chirp/internal/core/post"
	accountPort "chirp/internal/ports/account"
	friendshipPort "chirp/internal/ports/friendship"
	likePort "chirp/internal/ports/like"
	postPort "chirp/internal/ports/post"
	timelinePort "chirp/internal/ports/timeline"
)

// TimelineService composes the other repositories into view-ready,
// viewer-relative projections. All methods are read-only.
type TimelineService struct {
	AccountRepository    accountPort.AccountRepository
	PostRepository       postPort.PostRepository
	FriendshipRepository friendshipPort.FriendshipRepository
	LikeRepository       likePort.LikeRepository
}

func NewTimelineService(
	accounts accountPort.AccountRepository,
	posts postPort.PostRepository,
	friendships friendshipPort.FriendshipRepository,
	likes likePort.LikeRepository,
) *TimelineService {
	return &TimelineService{
		AccountRepository:    accounts,
		PostRepository:       posts,
		FriendshipRepository: friendships,
		LikeRepository:       likes,
	}
}

// Profile returns the target account's posts (newest first), its follow
// counts and whether the viewer follows it.
func (s *TimelineService) Profile(ctx context.Context, targetID, viewerID string) (*timelinePort.ProfileView, error) {
	target, err := s.AccountRepository.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	posts, err := s.PostRepository.FindByAccountID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("list profile posts: %w", err)
	}

	followerCount, err := s.FriendshipRepository.CountFollowers(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	followingCount, err := s.FriendshipRepository.CountFollowing(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	isFollowing, err := s.FriendshipRepository.IsFollowing(ctx, viewerID, targetID)
	if err != nil {
		return nil, fmt.Errorf("check follow state: %w", err)
	}

	return &timelinePort.ProfileView{
		Account: &accountPort.AccountDTO{
			ID:       target.ID.String(),
			Username: target.Username,
			Email:    target.Email,
		},
		Posts:             toPostDTOs(posts),
		FollowerCount:     followerCount,
		FollowingCount:    followingCount,
		IsViewerFollowing: isFollowing,
	}, nil
}

// Home returns every post, newest first, together with the set of post
// ids the viewer has liked. The liked set lets the presentation layer
// render per-post liked state without one query per post.
func (s *TimelineService) Home(ctx context.Context, viewerID string) (*timelinePort.FeedView, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feed posts: %w", err)
	}

	likedIDs, err := s.LikeRepository.FindPostIDsByAccountID(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list liked posts: %w", err)
	}
	if likedIDs == nil {
		likedIDs = []string{}
	}

	return &timelinePort.FeedView{
		Posts:        toPostDTOs(posts),
		LikedPostIDs: likedIDs,
	}, nil
}

// PostDetail returns one post with its like count and whether the viewer
// has liked it.
func (s *TimelineService) PostDetail(ctx context.Context, postID, viewerID string) (*timelinePort.PostDetailView, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	likeCount, err := s.LikeRepository.CountByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	isLiked, err := s.LikeRepository.Exists(ctx, postID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("check like state: %w", err)
	}

	return &timelinePort.PostDetailView{
		Post:            toPostDTO(p),
		LikeCount:       likeCount,
		IsLikedByViewer: isLiked,
	}, nil
}

func toPostDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:        p.ID.String(),
		Content:   p.Content,
		AccountID: p.AccountID.String(),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Account.ID != uuid.Nil {
		dto.Author = &accountPort.AccountDTO{
			ID:       p.Account.ID.String(),
			Username: p.Account.Username,
			Email:    p.Account.Email,
		}
	}
	return dto
}

func toPostDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toPostDTO(p))
	}
	return dtos
}
