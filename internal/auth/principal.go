package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eduhire/placement-be/internal/models"
)

// Principal is the authenticated identity reconstructed from a verified
// token. It lives for a single request and is never persisted.
type Principal struct {
	UserID    uuid.UUID
	Role      models.Role
	Email     string
	ExpiresAt time.Time
}

type principalKey struct{}

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the Principal attached by the authentication
// middleware, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
