package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/platform/security"
)

const bearerPrefix = "Bearer "

// Authenticator resolves a bearer token into the caller's identity.
// A rejected token must yield an error wrapping security.ErrUnauthenticated;
// any other error is treated as an internal failure.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type Authenticator interface {
	AuthenticateToken(ctx context.Context, token string) (*security.Identity, error)
}

// BearerToken extracts the token from an Authorization header value.
// It reports false when the header is absent or not bearer-shaped.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", false
	}
	return token, true
}

// Authenticate returns a Gin middleware that establishes the request identity.
//
// It never rejects a request itself:
//   - no bearer token: the request continues anonymously
//   - invalid token or unknown subject: the failure is logged and the request
//     continues anonymously, so only routes that require authentication fail
//   - any other authenticator error (storage outage): 500
//   - valid token: the identity is attached to the request context
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		id, err := auth.AuthenticateToken(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, security.ErrUnauthenticated) {
				slog.Error("failed to authenticate bearer token", "error", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{
					Code:  api.CodeInternal,
					Error: "internal server error",
				})
				return
			}
			slog.Warn("bearer token rejected", "error", err, "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(security.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}
