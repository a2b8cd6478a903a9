// Package cache реализует вспомогательное redis-хранилище.
// В сервисе аккаунтов используется для троттлинга повторных
// запросов сброса пароля по одному адресу.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/account-service/internal/config"
)

type Cache struct {
	Db *redis.Client
}

func InitServer(ctx context.Context, cfg config.RedisConnection) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{Db: db}, nil
}

// AcquireOnce атомарно занимает ключ на время ttl.
// Возвращает false, если ключ уже занят (повторный запрос внутри кулдауна).
func (c *Cache) AcquireOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	const op = "cache.AcquireOnce"
	ok, err := c.Db.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}

// Release освобождает ключ раньше истечения ttl.
func (c *Cache) Release(ctx context.Context, key string) error {
	return c.Db.Del(ctx, key).Err()
}
