package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, sessionId string) (uuid.UUID, bool, error) {
	val, err := s.rdb.Get(ctx, redisKeyPrefix+sessionId).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	userId, err := uuid.Parse(val)
	if err != nil {
		// Corrupt value, treat as logged out.
		return uuid.Nil, false, nil
	}
	return userId, true, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionId string, userId uuid.UUID) error {
	return s.rdb.Set(ctx, redisKeyPrefix+sessionId, userId.String(), s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionId string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+sessionId).Err()
}
