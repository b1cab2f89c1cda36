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

// donationHandler handles HTTP requests related to donation records.
type donationHandler struct {
	donationService portssvc.DonationSvcFacade
}

func newDonationHandler(ds portssvc.DonationSvcFacade) *donationHandler {
	return &donationHandler{donationService: ds}
}

// registerDonationRoutes registers routes related to donations.
func registerDonationRoutes(rg *gin.RouterGroup, donationService portssvc.DonationSvcFacade) {
	h := newDonationHandler(donationService)

	donations := rg.Group("/donations")
	{
		donations.POST("", h.createDonation)
		donations.GET("", h.listDonations)
		donations.GET("/:id", h.getDonationByID)
		donations.PUT("/:id", h.updateDonation)
		donations.DELETE("/:id", middleware.RequirePrivileged(), h.deleteDonation)
	}
}

// createDonation godoc
// @Summary Record a donation
// @Description Records a donation and updates the donor's running total atomically.
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Donor or payment method not found"
// @Failure 500 {object} ErrorResponse
// @Router /admin/donations [post]
func (h *donationHandler) createDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	donation, err := h.donationService.CreateDonation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Donor or payment method not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record donation"})
		}
		return
	}

	logger.Info("Donation recorded",
		slog.String("donation_id", donation.DonationID),
		slog.String("donor_id", donation.DonorID))
	c.JSON(http.StatusCreated, dto.ToDonationResponse(donation))
}

// listDonations godoc
// @Summary List donations
// @Description Returns a paginated donation listing, newest first, with donor and payment method expanded.
// @Tags donations
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListDonationsResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/donations [get]
func (h *donationHandler) listDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDonationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	donations, total, err := h.donationService.ListDonations(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		logger.Error("Failed to list donations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list donations"})
		return
	}

	responses := make([]dto.DonationResponse, len(donations))
	for i, d := range donations {
		responses[i] = dto.ToDonationResponse(&d)
	}

	c.JSON(http.StatusOK, dto.ListDonationsResponse{
		Donations:  responses,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	})
}

// getDonationByID godoc
// @Summary Get a donation
// @Description Retrieves a single donation by id, with references expanded.
// @Tags donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} dto.DonationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/donations/{id} [get]
func (h *donationHandler) getDonationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donationID := c.Param("id")

	donation, err := h.donationService.GetDonationByID(c.Request.Context(), donationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Donation not found"})
		} else {
			logger.Error("Failed to get donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve donation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// updateDonation godoc
// @Summary Update a donation
// @Description Edits a donation; donor totals are reconciled atomically, including re-attribution between donors.
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Donation ID"
// @Param donation body dto.UpdateDonationRequest true "Donation details"
// @Success 200 {object} dto.DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/donations/{id} [put]
func (h *donationHandler) updateDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donationID := c.Param("id")

	var req dto.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	donation, err := h.donationService.UpdateDonation(c.Request.Context(), donationID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Donation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update donation"})
		}
		return
	}

	logger.Info("Donation updated", slog.String("donation_id", donationID))
	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// deleteDonation godoc
// @Summary Delete a donation
// @Description Deletes a donation and subtracts its amount from the donor's total. Privileged roles only.
// @Tags donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/donations/{id} [delete]
func (h *donationHandler) deleteDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donationID := c.Param("id")

	if err := h.donationService.DeleteDonation(c.Request.Context(), donationID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		} else if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Donation not found"})
		} else {
			logger.Error("Failed to delete donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete donation"})
		}
		return
	}

	logger.Info("Donation deleted", slog.String("donation_id", donationID))
	c.Status(http.StatusNoContent)
}
