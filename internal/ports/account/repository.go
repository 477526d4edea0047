package account

import (
	"context"

	"chirp/internal/core/account"
)

// AccountRepository is the outbound port for storing and loading accounts.
// Lookups return account.ErrNotFound when no row matches.
type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) (*account.Account, error)
	FindByID(ctx context.Context, id string) (*account.Account, error)
	FindByUsername(ctx context.Context, username string) (*account.Account, error)
}

type AccountDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
