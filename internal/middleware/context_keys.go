package middleware

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

const authUserCtxKey = contextKey("authUser")

// WithAuthUser returns a context carrying the authenticated admin identity.
// The auth middleware uses it; tests use it to simulate a session.
func WithAuthUser(ctx context.Context, user *domain.AuthUser) context.Context {
	return context.WithValue(ctx, authUserCtxKey, user)
}

// GetAuthUserFromCtx retrieves the authenticated admin from the context.
// The second return reports whether a session was resolved.
func GetAuthUserFromCtx(ctx context.Context) (*domain.AuthUser, bool) {
	user, ok := ctx.Value(authUserCtxKey).(*domain.AuthUser)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
