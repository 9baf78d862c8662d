package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"stockgate/internal/core/apperror"
	appctx "stockgate/internal/core/context"
	"stockgate/internal/core/roles"
)

// sessionClaims are the claims the inventory backend embeds in its tokens.
type sessionClaims struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	SubRole string `json:"subRole"`
	jwt.RegisteredClaims
}

// Session middleware builds the operator's session from the bearer token on
// every request. The token is issued and verified by the inventory backend;
// the gateway only reads its claims and forwards the token verbatim, so the
// role is re-resolved per request and a role change upstream takes effect on
// the next action.
func Session() gin.HandlerFunc {
	parser := jwt.NewParser()

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		// Accept both "Bearer <token>" and a raw token header.
		tokenString := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			tokenString = parts[1]
		}

		claims := &sessionClaims{}
		if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		role, err := resolveRole(claims)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		session := &appctx.SessionContext{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   role,
			Token:  authHeader,
		}

		ctx := appctx.WithSession(c.Request.Context(), session)
		c.Request = c.Request.WithContext(ctx)

		// Store in gin context for easy access
		c.Set("user_id", session.UserID)
		c.Set("role", string(role))

		c.Next()
	}
}

// resolveRole maps the token's role claims to a store role. Accounts whose
// sub-role has a console mapping use that; otherwise the bare role claim must
// itself be a store role.
func resolveRole(claims *sessionClaims) (roles.StoreRole, error) {
	if claims.SubRole != "" {
		if role, ok := roles.FromSubRole(claims.SubRole); ok {
			return role, nil
		}
		return "", apperror.NewForbidden("account role has no warehouse access").
			WithDetail("subRole", claims.SubRole)
	}

	role, err := roles.Parse(claims.Role)
	if err != nil {
		return "", apperror.NewForbidden("account role has no warehouse access").
			WithDetail("role", claims.Role)
	}
	return role, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
