package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
)

const keyPrefix = "session:"

// RedisStore keeps session records in Redis; expiry is enforced by the
// key TTL, so an expired token is indistinguishable from an unknown one.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, token string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+token, value, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) ([]byte, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, pkgErrors.ErrSessionNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "get session")
	}

	return payload, nil
}

func (s *RedisStore) Del(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
