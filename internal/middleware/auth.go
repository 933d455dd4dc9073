package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bloodlifesaver/api/internal/models"
	"bloodlifesaver/api/internal/respond"
	"bloodlifesaver/api/internal/security"
)

const (
	ContextUserKey   = "current_user"
	ContextClaimsKey = "access_claims"
)

type UserGetter interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

// Auth verifies the bearer token and loads the account it names. Handlers
// behind it can rely on current_user and access_claims being set.
func Auth(secret string, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseAccessToken(tokenStr, secret)
		if err != nil {
			respond.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			respond.Abort(c, http.StatusUnauthorized, "User not found")
			return
		}

		c.Set(ContextClaimsKey, *claims)
		c.Set(ContextUserKey, user)

		c.Next()
	}
}

// CurrentUser returns the account the Auth middleware attached.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get(ContextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}
