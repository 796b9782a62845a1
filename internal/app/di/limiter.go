// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"blog_backend/internal/platform/ratelimit"
)

// loginLimiterPrefix namespaces the login throttle counters in Redis.
const loginLimiterPrefix = "ratelimit:login"

// NewLoginLimiter creates the login throttle.
// If Redis is available, it returns a Redis-backed implementation shared by
// every instance. Otherwise, it falls back to an in-process limiter.
func NewLoginLimiter(rdb *redis.Client, cfg ratelimit.Config) ratelimit.Limiter {
	if rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, loginLimiterPrefix, cfg.Limit, cfg.Interval)
	}
	return ratelimit.NewMemoryLimiter(cfg.Limit, cfg.Interval)
}
