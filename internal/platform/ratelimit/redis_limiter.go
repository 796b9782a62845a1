package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter はRedisのINCR/EXPIRE NXによる固定ウィンドウのLimiterです。
// 複数インスタンス間でカウントを共有します。
type RedisLimiter struct {
	client   *redis.Client
	prefix   string
	limit    int
	interval time.Duration
}

// NewRedisLimiter creates a RedisLimiter storing counters under prefix.
func NewRedisLimiter(client *redis.Client, prefix string, limit int, interval time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		prefix:   prefix,
		limit:    limit,
		interval: interval,
	}
}

func (l *RedisLimiter) key(k string) string {
	return fmt.Sprintf("%s:%s", l.prefix, k)
}

// Allow increments the counter for key. INCR and EXPIRE NX run in one
// MULTI block, so a counter left without a TTL gets one on its next hit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rk := l.key(key)
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, rk)
		pipe.ExpireNX(ctx, rk, l.interval)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", rk, err)
	}
	return incr.Val() <= int64(l.limit), nil
}
