package postapp

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	postEntity "chirp/internal/core/post"
	accountPort "chirp/internal/ports/account"
	postPort "chirp/internal/ports/post"
)

// PostService manages post creation, deletion and listings.
type PostService struct {
	PostRepository postPort.PostRepository
	logger         *zap.Logger
}

func NewPostService(repo postPort.PostRepository, logger *zap.Logger) *PostService {
	return &PostService{
		PostRepository: repo,
		logger:         logger,
	}
}

// Create validates the content (non-empty, at most 255 characters) and
// persists the post with a server-side creation timestamp.
func (s *PostService) Create(ctx context.Context, content, accountID string) (*postPort.PostDTO, error) {
	if content == "" {
		return nil, postEntity.ErrContentEmpty
	}
	if utf8.RuneCountInString(content) > postEntity.MaxContentLength {
		return nil, postEntity.ErrContentTooLong
	}

	aid, err := uuid.FromString(accountID)
	if err != nil {
		return nil, fmt.Errorf("invalid account id: %w", err)
	}

	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Content:   content,
		AccountID: aid,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info("post created", zap.String("postID", created.ID.String()), zap.String("accountID", accountID))
	return toDTO(created), nil
}

// Delete removes a post. Only its author may delete it.
func (s *PostService) Delete(ctx context.Context, postID, requestingAccountID string) error {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if p.AccountID.String() != requestingAccountID {
		s.logger.Warn("delete refused: not the author",
			zap.String("postID", postID), zap.String("accountID", requestingAccountID))
		return postEntity.ErrNotAuthor
	}
	if err := s.PostRepository.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *PostService) Get(ctx context.Context, postID string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// ListAll returns every post, newest first. This is the feed ordering.
func (s *PostService) ListAll(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(posts), nil
}

// ListByAccount returns one author's posts, newest first.
func (s *PostService) ListByAccount(ctx context.Context, accountID string) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return toDTOs(posts), nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
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

func toDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}
	return dtos
}
