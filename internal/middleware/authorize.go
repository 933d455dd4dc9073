package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloodlifesaver/api/internal/models"
	"bloodlifesaver/api/internal/respond"
)

// RequireRoles allows only the listed roles past. Must run after Auth.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	roleSet := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			respond.Abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if _, ok := roleSet[user.Role]; !ok {
			respond.Abort(c, http.StatusForbidden, "Access denied for this role")
			return
		}

		c.Next()
	}
}
