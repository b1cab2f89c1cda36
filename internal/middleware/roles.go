package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// RequireRoles gates a route to the given roles. It must run after
// AuthCookieMiddleware; requests without a resolved session are rejected with
// 401 and authenticated but under-privileged requests with 403.
func RequireRoles(allowed ...domain.UserRole) gin.HandlerFunc {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		user, ok := GetAuthUserFromCtx(c.Request.Context())
		if !ok {
			logger.Warn("Role gate reached without authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if _, ok := allowedSet[user.Role]; !ok {
			logger.Warn("Insufficient role for route",
				slog.String("role", string(user.Role)),
				slog.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Next()
	}
}

// RequirePrivileged gates a route to the privileged roles (SUPER_ADMIN, ADMIN).
func RequirePrivileged() gin.HandlerFunc {
	return RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin)
}
