package store

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "booked:"

// RedisStore keeps the booked set in Redis. SETNX gives the per-key
// claim atomicity across processes, which the memory backend cannot.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(serviceID, slotID string) string {
	return redisKeyPrefix + Key(serviceID, slotID)
}

func (s *RedisStore) IsBooked(ctx context.Context, serviceID, slotID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(serviceID, slotID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) MarkBooked(ctx context.Context, serviceID, slotID string) error {
	return s.client.Set(ctx, s.key(serviceID, slotID), "1", 0).Err()
}

func (s *RedisStore) TryClaim(ctx context.Context, serviceID, slotID string) (bool, error) {
	return s.client.SetNX(ctx, s.key(serviceID, slotID), "1", 0).Result()
}
