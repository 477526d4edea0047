package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	sessionPort "chirp/internal/ports/session"
)

const sessionKeyPrefix = "session:"

// SessionRepositoryRedis implements the session Store over Redis. The
// record expires with the token TTL; deleting it revokes the session.
type SessionRepositoryRedis struct {
	Client *redis.Client
}

func NewSessionRepositoryRedis(client *redis.Client) *SessionRepositoryRedis {
	return &SessionRepositoryRedis{
		Client: client,
	}
}

func (r *SessionRepositoryRedis) Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error {
	return r.Client.Set(ctx, sessionKeyPrefix+sessionID, accountID, ttl).Err()
}

func (r *SessionRepositoryRedis) Get(ctx context.Context, sessionID string) (string, error) {
	accountID, err := r.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", sessionPort.ErrNotFound
		}
		return "", err
	}
	return accountID, nil
}

func (r *SessionRepositoryRedis) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
