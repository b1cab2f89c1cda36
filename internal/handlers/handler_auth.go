package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/shantodev/temple_donation_app/internal/apperrors"
	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/middleware"
	"github.com/shantodev/temple_donation_app/internal/utils"
	"github.com/shantodev/temple_donation_app/pkg/config"
)

// authHandler handles session login, logout and profile lookup.
type authHandler struct {
	userService     portssvc.UserSvcFacade
	activityService portssvc.ActivitySvcFacade
	cfg             *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, as portssvc.ActivitySvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:     us,
		activityService: as,
		cfg:             cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.Activity, cfg)

	// Rate limit: 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/me", middleware.AuthCookieMiddleware(cfg.JWTSecret, cfg.AuthCookieName), h.me)
	}
}

// login godoc
// @Summary Staff login
// @Description Authenticates a staff account and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login rejected", slog.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	tokenString, err := utils.GenerateSessionToken(user, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.setSessionCookie(c, tokenString, int(h.cfg.JWTExpiryDuration/time.Second))

	// Audit with the freshly authenticated identity; the middleware has not
	// run on this route so the context carries no session yet.
	ctx := middleware.WithAuthUser(c.Request.Context(), &domain.AuthUser{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	h.activityService.Record(ctx, domain.ActionLogin, "auth", user.Name+" logged in")

	logger.Info("Staff logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{User: dto.ToAdminResponse(user)})
}

// logout godoc
// @Summary Staff logout
// @Description Clears the session cookie and records the logout.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	// Resolve the session if present so the logout is attributed; an expired
	// or missing cookie still clears cleanly.
	if tokenString, err := c.Cookie(h.cfg.AuthCookieName); err == nil && tokenString != "" {
		if claims, err := utils.ParseSessionToken(tokenString, h.cfg.JWTSecret); err == nil {
			ctx := middleware.WithAuthUser(c.Request.Context(), &domain.AuthUser{
				UserID: claims.Subject,
				Name:   claims.Name,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			h.activityService.Record(ctx, domain.ActionLogout, "auth", claims.Name+" logged out")
		}
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// me godoc
// @Summary Current staff profile
// @Description Returns the profile of the authenticated staff account.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AdminResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	authUser, ok := middleware.GetAuthUserFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), authUser.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Account deleted while the session was still live.
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		logger.Error("Failed to load profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminResponse(user))
}

func (h *authHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AuthCookieName, value, maxAge, "/", "", h.cfg.IsProduction, true)
}
