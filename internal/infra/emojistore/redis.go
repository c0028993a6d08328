package emojistore

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "userrate:emoji"

// RedisStore keeps the emoji mapping in a redis hash so several instances
// can share one refresh job. Replace rewrites the hash in a transaction, so
// readers observe either the old or the new mapping.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, key: defaultRedisKey}
}

func (s *RedisStore) Replace(ctx context.Context, emojis map[string]string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(emojis) > 0 {
			flat := make([]any, 0, len(emojis)*2)
			for name, url := range emojis {
				flat = append(flat, name, url)
			}
			pipe.HSet(ctx, s.key, flat...)
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to store emoji mapping in redis")
	}
	return nil
}

// Lookup treats any redis failure as a miss so a flaky cache never breaks
// page rendering.
func (s *RedisStore) Lookup(ctx context.Context, name string) (string, bool) {
	url, err := s.rdb.HGet(ctx, s.key, name).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("emoji lookup failed",
				slog.String("name", name),
				slog.String("error", err.Error()),
			)
		}
		return "", false
	}
	return url, true
}
