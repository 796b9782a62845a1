// Package security holds the request-scoped identity and the route
// authorization policy.
package security

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthorityUser is granted to every authenticated user.
const AuthorityUser = "ROLE_USER"

// ErrUnauthenticated marks a credential that was checked and rejected.
// Authenticators wrap it so callers can tell a rejection from an outage.
var ErrUnauthenticated = errors.New("unauthenticated")

// Identity is the authenticated caller of a single request.
// It is derived from a validated token and never outlives the request.
type Identity struct {
	UserID      uuid.UUID
	Email       string
	Name        string
	Authorities []string
}

// HasAuthority reports whether the identity was granted authority a.
func (i *Identity) HasAuthority(a string) bool {
	for _, g := range i.Authorities {
		if g == a {
			return true
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored in ctx, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}

// CurrentIdentity returns the identity attached to the request handled by c.
func CurrentIdentity(c *gin.Context) (*Identity, bool) {
	return IdentityFromContext(c.Request.Context())
}
