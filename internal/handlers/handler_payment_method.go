package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shantodev/temple_donation_app/internal/apperrors"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/middleware"
)

// paymentMethodHandler handles HTTP requests related to payment methods.
type paymentMethodHandler struct {
	paymentMethodService portssvc.PaymentMethodSvcFacade
}

func newPaymentMethodHandler(pms portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{paymentMethodService: pms}
}

// registerPaymentMethodRoutes registers routes related to payment methods.
func registerPaymentMethodRoutes(rg *gin.RouterGroup, paymentMethodService portssvc.PaymentMethodSvcFacade) {
	h := newPaymentMethodHandler(paymentMethodService)

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/:id", h.getPaymentMethodByID)
		methods.PUT("/:id", h.updatePaymentMethod)
		methods.DELETE("/:id", h.deletePaymentMethod)
	}
}

// createPaymentMethod godoc
// @Summary Add a payment method
// @Description Adds a payment channel. Type defaults to Mobile Banking, active by default.
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param method body dto.CreatePaymentMethodRequest true "Payment method details"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/payment-methods [post]
func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.paymentMethodService.CreatePaymentMethod(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create payment method", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create payment method"})
		}
		return
	}

	logger.Info("Payment method created", slog.String("payment_method_id", method.PaymentMethodID))
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Description Returns all payment methods including inactive ones.
// @Tags payment-methods
// @Produce json
// @Success 200 {array} dto.PaymentMethodResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	methods, err := h.paymentMethodService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payment methods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payment methods"})
		return
	}

	responses := make([]dto.PaymentMethodResponse, len(methods))
	for i, m := range methods {
		responses[i] = dto.ToPaymentMethodResponse(&m)
	}

	c.JSON(http.StatusOK, responses)
}

// getPaymentMethodByID godoc
// @Summary Get a payment method
// @Description Retrieves a single payment method by id.
// @Tags payment-methods
// @Produce json
// @Param id path string true "Payment Method ID"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/payment-methods/{id} [get]
func (h *paymentMethodHandler) getPaymentMethodByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("id")

	method, err := h.paymentMethodService.GetPaymentMethodByID(c.Request.Context(), methodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment method not found"})
		} else {
			logger.Error("Failed to get payment method", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payment method"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// updatePaymentMethod godoc
// @Summary Update a payment method
// @Description Applies a partial update, including toggling active status.
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param id path string true "Payment Method ID"
// @Param method body dto.UpdatePaymentMethodRequest true "Fields to update"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/payment-methods/{id} [put]
func (h *paymentMethodHandler) updatePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("id")

	var req dto.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.paymentMethodService.UpdatePaymentMethod(c.Request.Context(), methodID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment method not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update payment method", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update payment method"})
		}
		return
	}

	logger.Info("Payment method updated", slog.String("payment_method_id", methodID))
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// deletePaymentMethod godoc
// @Summary Delete a payment method
// @Description Removes a payment method. Existing donations keep their reference.
// @Tags payment-methods
// @Produce json
// @Param id path string true "Payment Method ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/payment-methods/{id} [delete]
func (h *paymentMethodHandler) deletePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("id")

	if err := h.paymentMethodService.DeletePaymentMethod(c.Request.Context(), methodID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment method not found"})
		} else {
			logger.Error("Failed to delete payment method", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete payment method"})
		}
		return
	}

	logger.Info("Payment method deleted", slog.String("payment_method_id", methodID))
	c.Status(http.StatusNoContent)
}
