package ratelimit

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
)

// KeyFunc derives the rate limit key of a request.
type KeyFunc func(c *gin.Context) string

// ClientIPKey keys requests by client IP.
func ClientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// Middleware rejects requests over the limit with 429.
// Limiter failures are logged and the request is let through.
func Middleware(l Limiter, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		ok, err := l.Allow(c.Request.Context(), k)
		if err != nil {
			slog.Error("rate limiter unavailable", "error", err, "key", k)
			c.Next()
			return
		}
		if !ok {
			slog.Warn("rate limit exceeded", "key", k, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{
				Code:  api.CodeTooManyRequests,
				Error: "too many requests",
			})
			return
		}
		c.Next()
	}
}
