package stores

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps revoked tokens in Redis with a TTL matching the
// token's remaining lifetime.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func revokedKey(token string) string { return "revoked:" + token }

func (s *RedisSessionStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKey(token), "1", ttl).Err()
}

func (s *RedisSessionStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := s.client.Get(ctx, revokedKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
