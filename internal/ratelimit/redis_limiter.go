package ratelimit

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter is a fixed-window counter shared across instances.
// Each window is a Redis key that expires when the window closes.
type RedisLimiter struct {
	client rueidis.Client
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client rueidis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) error {
	redisKey := "ratelimit:" + key

	count, err := r.client.Do(
		ctx,
		r.client.B().Incr().Key(redisKey).Build(),
	).AsInt64()
	if err != nil {
		return err
	}

	if count == 1 {
		if err := r.client.Do(
			ctx,
			r.client.B().Expire().Key(redisKey).Seconds(int64(r.window.Seconds())).Build(),
		).Error(); err != nil {
			return err
		}
	}

	if count > r.limit {
		return ErrLimitExceeded
	}

	return nil
}
