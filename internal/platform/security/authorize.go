package security

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
)

// Authorize returns a Gin middleware that enforces p before any handler runs.
// Requests to authenticated routes without an identity are rejected with 401.
func Authorize(p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p.Evaluate(c.Request.Method, c.Request.URL.Path) == Public {
			c.Next()
			return
		}
		if _, ok := CurrentIdentity(c); ok {
			c.Next()
			return
		}
		slog.Warn("unauthenticated request rejected",
			"method", c.Request.Method, "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{
			Code:  api.CodeAuthenticationFailed,
			Error: "authentication required",
		})
	}
}
