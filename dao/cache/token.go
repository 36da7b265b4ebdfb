package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache is the refresh-token allowlist. A refresh token is only
// accepted while its exact value is present here, so logout or rotation
// invalidates older tokens immediately.
type TokenCache struct {
	Rds *redis.Client
}

func NewTokenCache(rds *redis.Client) *TokenCache {
	return &TokenCache{Rds: rds}
}

func (c *TokenCache) key(userID int64) string {
	return fmt.Sprintf("auth:refresh:%d", userID)
}

func (c *TokenCache) StoreRefreshToken(ctx context.Context, userID int64, token string, ttl time.Duration) error {
	return c.Rds.Set(ctx, c.key(userID), token, ttl).Err()
}

func (c *TokenCache) ValidateRefreshToken(ctx context.Context, userID int64, token string) (bool, error) {
	val, err := c.Rds.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == token, nil
}

func (c *TokenCache) DeleteRefreshToken(ctx context.Context, userID int64) error {
	return c.Rds.Del(ctx, c.key(userID)).Err()
}
