package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
)

// TokenRevocationRepository keeps revoked token ids in Redis until the
// tokens would have expired anyway.
type TokenRevocationRepository struct {
	client *redis.Client
}

func NewTokenRevocationRepository(client *redis.Client) *TokenRevocationRepository {
	return &TokenRevocationRepository{client: client}
}

func revokedKey(tokenID string) string {
	return "revoked_token:" + tokenID
}

// Revoke marks the token id as revoked for ttl. A non-positive ttl is a no-op
// since the token has already expired.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := revokedKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token id has been revoked.
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedKey(tokenID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", n,
		"error", err,
	)

	return n > 0, err
}
