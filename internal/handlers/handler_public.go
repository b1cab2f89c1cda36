package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/middleware"
)

const publicDonationFeedSize = 10

// publicHandler serves the unauthenticated landing page data.
type publicHandler struct {
	donationService      portssvc.DonationSvcFacade
	paymentMethodService portssvc.PaymentMethodSvcFacade
}

func newPublicHandler(ds portssvc.DonationSvcFacade, pms portssvc.PaymentMethodSvcFacade) *publicHandler {
	return &publicHandler{
		donationService:      ds,
		paymentMethodService: pms,
	}
}

// registerPublicRoutes registers the routes that require no session.
func registerPublicRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newPublicHandler(services.Donation, services.PaymentMethod)

	r.GET("/payment-methods", h.listActivePaymentMethods)
	r.GET("/public/donations", h.listRecentDonations)
}

// listActivePaymentMethods godoc
// @Summary List active payment methods
// @Description Returns the active payment channels shown on the landing page.
// @Tags public
// @Produce json
// @Success 200 {array} dto.PublicPaymentMethodResponse
// @Failure 500 {object} ErrorResponse
// @Router /payment-methods [get]
func (h *publicHandler) listActivePaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	methods, err := h.paymentMethodService.ListActivePaymentMethods(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list active payment methods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payment methods"})
		return
	}

	responses := make([]dto.PublicPaymentMethodResponse, len(methods))
	for i, m := range methods {
		responses[i] = dto.ToPublicPaymentMethodResponse(&m)
	}

	c.JSON(http.StatusOK, responses)
}

// listRecentDonations godoc
// @Summary Recent donations feed
// @Description Returns the latest donations with donor names masked.
// @Tags public
// @Produce json
// @Success 200 {array} dto.PublicDonationResponse
// @Failure 500 {object} ErrorResponse
// @Router /public/donations [get]
func (h *publicHandler) listRecentDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	donations, err := h.donationService.ListRecentDonations(c.Request.Context(), publicDonationFeedSize)
	if err != nil {
		logger.Error("Failed to list recent donations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list donations"})
		return
	}

	responses := make([]dto.PublicDonationResponse, len(donations))
	for i, d := range donations {
		responses[i] = dto.ToPublicDonationResponse(&d)
	}

	c.JSON(http.StatusOK, responses)
}
