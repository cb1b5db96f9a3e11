package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bmi-calculator/internal/health"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "bmi:history:"

// RedisStore keeps each session's history in a Redis list. New records are
// pushed to the head, so LRANGE already yields most recent first. Every write
// refreshes the key TTL, which bounds the session lifetime.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redisURL and verifies the connection.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisStoreWithClient(client, ttl), nil
}

func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, rec health.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	key := redisKeyPrefix + sessionID
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	observeOp("redis", "append", err)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, sessionID string) ([]health.Record, error) {
	raw, err := s.client.LRange(ctx, redisKeyPrefix+sessionID, 0, -1).Result()
	observeOp("redis", "list", err)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	records := make([]health.Record, 0, len(raw))
	for _, item := range raw {
		var rec health.Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *RedisStore) Reset(ctx context.Context, sessionID string) error {
	err := s.client.Del(ctx, redisKeyPrefix+sessionID).Err()
	observeOp("redis", "reset", err)
	if err != nil {
		return fmt.Errorf("reset history: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
