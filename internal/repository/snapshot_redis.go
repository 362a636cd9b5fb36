package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_sector_dispatch/internal/service"
)

type RedisSnapshotRepository struct {
	redisClient *redis.Client
}

func NewRedisSnapshotRepository(redisClient *redis.Client) service.SnapshotRepository {
	return &RedisSnapshotRepository{
		redisClient: redisClient,
	}
}

// Get читает снимок из Redis
func (r *RedisSnapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.redisClient.Get(ctx, snapshotKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot from redis: %w", err)
	}
	return val, nil
}

// Set сохраняет снимок без срока жизни: удалением записей ядро не занимается
func (r *RedisSnapshotRepository) Set(ctx context.Context, key string, blob []byte) error {
	if err := r.redisClient.Set(ctx, snapshotKey(key), blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in redis: %w", err)
	}
	return nil
}

func snapshotKey(key string) string {
	return fmt.Sprintf("snapshot:%s", key)
}
