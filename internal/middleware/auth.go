package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cliprewards/internal/domain"
	jwtsvc "cliprewards/internal/pkg/jwt"
	"cliprewards/internal/pkg/response"
)

// UserLoader resolves the local user record behind a provider id. The role on
// that record, not anything inside the token, decides admin access.
type UserLoader interface {
	GetByProviderID(ctx context.Context, providerID string) (*domain.User, error)
}

// RequireAuth validates the bearer session token and stores the provider user
// id and local role in the gin context. A user the webhook has not synced yet
// is still authenticated, just roleless.
func RequireAuth(jwt *jwtsvc.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		providerID, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", providerID)

		if u, err := users.GetByProviderID(c.Request.Context(), providerID); err == nil {
			c.Set("role", string(u.Role))
		}

		c.Next()
	}
}

// CurrentUserID returns the provider user id set by RequireAuth.
func CurrentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
