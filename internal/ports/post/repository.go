package post

import (
	"context"

	"chirp/internal/core/post"
	accountPort "chirp/internal/ports/account"
)

// PostRepository is the outbound port for storing and listing posts.
// FindAll and FindByAccountID return posts newest first; FindByID and
// Delete return post.ErrNotFound when no row matches.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	FindByAccountID(ctx context.Context, accountID string) ([]*post.Post, error)
	Delete(ctx context.Context, id string) error
}

type PostDTO struct {
	ID        string                  `json:"id"`
	Content   string                  `json:"content"`
	AccountID string                  `json:"account_id"`
	Author    *accountPort.AccountDTO `json:"author,omitempty"`
	CreatedAt string                  `json:"created_at"`
}
