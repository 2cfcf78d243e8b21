package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	viewKeyPrefix    = "tripbud:view:"
	pendingKeyPrefix = "tripbud:pending:"
)

// releaseScript deletes the pending key only when it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore keeps views and pending markers in Redis so several web
// instances can share sessions.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (View, error) {
	raw, err := s.rdb.Get(ctx, viewKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewView(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get view: %w", err)
	}
	return decodeView(raw)
}

// Save writes the view and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, v View) error {
	raw, err := encodeView(v)
	if err != nil {
		return fmt.Errorf("encode view: %w", err)
	}
	if err := s.rdb.Set(ctx, viewKeyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set view: %w", err)
	}
	return nil
}

func (s *RedisStore) AcquirePending(ctx context.Context, sessionID, token string, ttl time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, pendingKeyPrefix+sessionID, token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis acquire pending: %w", err)
	}
	return ok, nil
}

func (s *RedisStore) ReleasePending(ctx context.Context, sessionID, token string) error {
	if err := releaseScript.Run(ctx, s.rdb, []string{pendingKeyPrefix + sessionID}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis release pending: %w", err)
	}
	return nil
}

func (s *RedisStore) Pending(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, pendingKeyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("redis pending: %w", err)
	}
	return n > 0, nil
}
