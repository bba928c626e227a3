package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	matchKeyPrefix = "maria:match:"
	recentMatchKey = "maria:match:recent"

	// 对局记录过期时间
	matchExpiration = 7 * 24 * time.Hour
	// 最近对局列表长度
	recentMatchLimit = 100
)

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveMatch 保存对局到 Redis，并加入最近对局列表
func (rs *RedisStore) SaveMatch(ctx context.Context, match *MatchRecord) error {
	if match == nil {
		return nil
	}

	jsonData, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("序列化对局数据失败: %w", err)
	}

	pipe := rs.client.TxPipeline()
	pipe.Set(ctx, matchKeyPrefix+match.ID, jsonData, matchExpiration)
	pipe.LPush(ctx, recentMatchKey, match.ID)
	pipe.LTrim(ctx, recentMatchKey, 0, recentMatchLimit-1)
	_, err = pipe.Exec(ctx)
	return err
}

// LoadMatch 从 Redis 加载对局，不存在时返回 nil
func (rs *RedisStore) LoadMatch(ctx context.Context, id string) (*MatchRecord, error) {
	data, err := rs.client.Get(ctx, matchKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var match MatchRecord
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, fmt.Errorf("反序列化对局数据失败: %w", err)
	}
	return &match, nil
}

// DeleteMatch 删除对局
func (rs *RedisStore) DeleteMatch(ctx context.Context, id string) error {
	pipe := rs.client.TxPipeline()
	pipe.Del(ctx, matchKeyPrefix+id)
	pipe.LRem(ctx, recentMatchKey, 0, id)
	_, err := pipe.Exec(ctx)
	return err
}

// RecentMatchIDs 最近保存的对局，新的在前
func (rs *RedisStore) RecentMatchIDs(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	return rs.client.LRange(ctx, recentMatchKey, 0, int64(limit-1)).Result()
}
