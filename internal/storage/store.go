package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/maria/internal/config"
)

const connectTimeout = 3 * time.Second

// Store 对局记录与排行榜
type Store struct {
	*RedisStore
	*LeaderboardManager
}

// New 基于同一个 Redis 连接创建存储
func New(client *redis.Client) *Store {
	return &Store{
		RedisStore:         NewRedisStore(client),
		LeaderboardManager: NewLeaderboardManager(client),
	}
}

// Connect 按配置连接 Redis 并检查连通性
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("连接 Redis %s 失败: %w", cfg.Addr, err)
	}
	return client, nil
}
