// Package verdict_redis shares transform-support verdicts through Redis so
// every instance probes a URL once.
package verdict_redis

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zeebo/blake3"
)

const (
	keyPrefix   = "divemedia:transform_verdict:"
	supported   = "1"
	unsupported = "0"
)

// RedisVerdictStore implements transform_port.VerdictStorePort.
type RedisVerdictStore struct {
	client *redis.Client
}

// NewRedisVerdictStoreWithURL creates a store from a redis:// URL.
func NewRedisVerdictStoreWithURL(url string) (*RedisVerdictStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisVerdictStore{client: redis.NewClient(opts)}, nil
}

// NewRedisVerdictStore wraps an existing client.
func NewRedisVerdictStore(client *redis.Client) *RedisVerdictStore {
	return &RedisVerdictStore{client: client}
}

// Ping checks connectivity.
func (s *RedisVerdictStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisVerdictStore) Close() error {
	return s.client.Close()
}

// GetVerdict returns found=false on a miss.
func (s *RedisVerdictStore) GetVerdict(ctx context.Context, transformURL string) (bool, bool, error) {
	val, err := s.client.Get(ctx, Key(transformURL)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return val == supported, true, nil
}

// SetVerdict stores a verdict. ttl<=0 keeps it forever.
func (s *RedisVerdictStore) SetVerdict(ctx context.Context, transformURL string, ok bool, ttl time.Duration) error {
	val := unsupported
	if ok {
		val = supported
	}
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, Key(transformURL), val, ttl).Err()
}

// DeleteVerdict removes a stored verdict. Deleting a missing key is not an error.
func (s *RedisVerdictStore) DeleteVerdict(ctx context.Context, transformURL string) error {
	return s.client.Del(ctx, Key(transformURL)).Err()
}

// Key hashes the transform URL so keys stay short and uniform.
func Key(transformURL string) string {
	sum := blake3.Sum256([]byte(transformURL))
	return keyPrefix + hex.EncodeToString(sum[:])
}
