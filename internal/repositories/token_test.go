package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRevocationRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	repo := NewTokenRevocationRepository(rdb)

	t.Run("unknown token is not revoked", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "jti-unknown")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("revoke until expiry", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-1", time.Minute))

		revoked, err := repo.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
		assert.Equal(t, time.Minute, mr.TTL("revoked_token:jti-1"))

		mr.FastForward(2 * time.Minute)

		revoked, err = repo.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("non-positive ttl is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-2", 0))
		require.NoError(t, repo.Revoke(ctx, "jti-3", -time.Second))
		assert.False(t, mr.Exists("revoked_token:jti-2"))
		assert.False(t, mr.Exists("revoked_token:jti-3"))
	})

	t.Run("redis down", func(t *testing.T) {
		mr.Close()
		_, err := repo.IsRevoked(ctx, "jti-1")
		assert.Error(t, err)
		assert.Error(t, repo.Revoke(ctx, "jti-4", time.Minute))
	})
}
