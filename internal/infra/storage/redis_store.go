package storage

import (
	"context"

	"nosh/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the agent's keys inside a shared redis instance.
const keyPrefix = "nosh:"

// redisStore backs the key-value store with redis, for kiosk fleets that
// keep device state on a shared box instead of local disk.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an established redis client as a KVStore.
func NewRedisStore(client *redis.Client) repository.KVStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "failed to get key %q", key)
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	// Device state has no TTL; keys live until explicitly cleared.
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set key %q", key)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete key %q", key)
	}

	return nil
}
