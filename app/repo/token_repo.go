package repo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

func blacklistKey(token string) string { return "auth:blacklist:" + token }

// TokenStore revokes bearer tokens. A blacklisted token lives in Redis
// until its natural expiry, after which the key lapses on its own.
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

func (s *TokenStore) Blacklist(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

func (s *TokenStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	err := s.rdb.Get(ctx, blacklistKey(token)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
