// Package context provides request-scoped values extraction.
package context

import (
	"context"

	"stockgate/internal/core/roles"
)

// SessionContext contains the authenticated operator's session information.
// It is rebuilt from the bearer token on every request rather than cached,
// so a role change upstream takes effect on the next action.
type SessionContext struct {
	UserID string
	Email  string
	Role   roles.StoreRole
	// Token is the upstream-issued bearer token, forwarded verbatim on
	// every upstream call made on behalf of this session.
	Token string
}

type sessionContextKey struct{}

// WithSession adds SessionContext to context.
func WithSession(ctx context.Context, session *SessionContext) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// GetSession returns SessionContext from context.
func GetSession(ctx context.Context) *SessionContext {
	if v, ok := ctx.Value(sessionContextKey{}).(*SessionContext); ok {
		return v
	}
	return nil
}

// GetUserID returns the session user ID or empty string.
func GetUserID(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.UserID
	}
	return ""
}

// GetRole returns the session store role or empty role.
func GetRole(ctx context.Context) roles.StoreRole {
	if s := GetSession(ctx); s != nil {
		return s.Role
	}
	return ""
}

// GetToken returns the upstream bearer token or empty string.
func GetToken(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.Token
	}
	return ""
}
