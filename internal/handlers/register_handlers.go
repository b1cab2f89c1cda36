package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shantodev/temple_donation_app/cmd/docs"
	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/middleware"
	"github.com/shantodev/temple_donation_app/pkg/config"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public landing routes and authentication
	registerPublicRoutes(r, services)
	registerAuthRoutes(r, cfg, services)

	// Admin routes behind the session cookie
	setupAdminRoutes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAdminRoutes configures the /admin group and delegates to specific entity
// route registrations.
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply the cookie auth middleware to the entire admin group
	admin := r.Group("/admin", middleware.AuthCookieMiddleware(cfg.JWTSecret, cfg.AuthCookieName))

	registerDonorRoutes(admin, services.Donor)
	registerDonationRoutes(admin, services.Donation)
	registerPaymentMethodRoutes(admin, services.PaymentMethod)
	registerAdminUserRoutes(admin, services.User)
	registerActivityLogRoutes(admin, services.Activity)
	registerDashboardRoutes(admin, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerCustomValidators adds domain-specific rules to gin's binding validator.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("paymenttype", func(fl validator.FieldLevel) bool {
		return domain.PaymentMethodType(fl.Field().String()).IsValid()
	})
}
