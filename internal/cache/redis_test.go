package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/account-service/internal/config"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache, mr
}

func TestAcquireOnce(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	acquired, err := cache.AcquireOnce(ctx, "reset-request:user@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	// Повторный захват того же ключа внутри ttl должен быть отклонён
	acquired, err = cache.AcquireOnce(ctx, "reset-request:user@example.com", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	// Другой ключ захватывается независимо
	acquired, err = cache.AcquireOnce(ctx, "reset-request:other@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestAcquireOnce_TTLExpires(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	acquired, err := cache.AcquireOnce(ctx, "reset-request:user@example.com", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	mr.FastForward(2 * time.Minute)

	acquired, err = cache.AcquireOnce(ctx, "reset-request:user@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRelease(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	acquired, err := cache.AcquireOnce(ctx, "key", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, cache.Release(ctx, "key"))

	acquired, err = cache.AcquireOnce(ctx, "key", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}
