package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/lumen-academy/academy-api/internal/session"
	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
	"github.com/lumen-academy/academy-api/pkg/response"
)

// ContextAdminKey is the gin context key storing the logged-in admin username.
const ContextAdminKey = "currentAdmin"

// ContextTokenKey is the gin context key storing the raw session token.
const ContextTokenKey = "sessionToken"

// RequireSession protects routes by requiring a valid session cookie. The
// protected handler never runs when the check fails.
func RequireSession(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		username, ok, err := store.Lookup(c.Request.Context(), token)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Internal Server Error during authentication."))
			c.Abort()
			return
		}
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, username)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// AdminFromContext returns the authenticated admin username, if any.
func AdminFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(ContextAdminKey); exists {
		if username, ok := v.(string); ok {
			return username, true
		}
	}
	return "", false
}

// TokenFromContext returns the session token attached by RequireSession.
func TokenFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(ContextTokenKey); exists {
		if token, ok := v.(string); ok {
			return token, true
		}
	}
	return "", false
}
