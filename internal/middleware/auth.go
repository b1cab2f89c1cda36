package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	"github.com/shantodev/temple_donation_app/internal/utils"
)

// AuthCookieMiddleware validates the session token carried in the HTTP-only
// cookie and stores the resolved admin identity in the request context.
// Requests without a valid token are rejected with 401.
func AuthCookieMiddleware(jwtSecret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			logger.Warn("Session cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := utils.ParseSessionToken(tokenString, jwtSecret)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			logger.Warn("Session token rejected", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		authUser := &domain.AuthUser{
			UserID: claims.Subject,
			Name:   claims.Name,
			Email:  claims.Email,
			Role:   claims.Role,
		}

		ctx := WithAuthUser(c.Request.Context(), authUser)
		enrichedLogger := logger.With(slog.String("user_id", authUser.UserID))
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
