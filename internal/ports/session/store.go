package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Store is the outbound port for the session provider. A session maps a
// server-issued session id to an account id; deleting it revokes every
// token that references it.
type Store interface {
	Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
