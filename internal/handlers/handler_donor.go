package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shantodev/temple_donation_app/internal/apperrors"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/middleware"
)

// donorHandler handles HTTP requests related to donors.
type donorHandler struct {
	donorService portssvc.DonorSvcFacade
}

func newDonorHandler(ds portssvc.DonorSvcFacade) *donorHandler {
	return &donorHandler{donorService: ds}
}

// registerDonorRoutes registers routes related to donors.
func registerDonorRoutes(rg *gin.RouterGroup, donorService portssvc.DonorSvcFacade) {
	h := newDonorHandler(donorService)

	donors := rg.Group("/donors")
	{
		donors.POST("", h.createDonor)
		donors.GET("", h.listDonors)
		donors.GET("/all", h.listAllDonors)
		donors.GET("/:id", h.getDonorByID)
		donors.PUT("/:id", h.updateDonor)
		donors.DELETE("/:id", middleware.RequirePrivileged(), h.deleteDonor)
	}
}

// createDonor godoc
// @Summary Register a donor
// @Description Registers a new donor with a zero donation total.
// @Tags donors
// @Accept json
// @Produce json
// @Param donor body dto.CreateDonorRequest true "Donor details"
// @Success 201 {object} dto.DonorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Phone or email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /admin/donors [post]
func (h *donorHandler) createDonor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	donor, err := h.donorService.CreateDonor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to register duplicate donor", slog.String("phone", req.Phone))
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A donor with this phone or email already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create donor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create donor"})
		}
		return
	}

	logger.Info("Donor created", slog.String("donor_id", donor.DonorID))
	c.JSON(http.StatusCreated, dto.ToDonorResponse(donor))
}

// listDonors godoc
// @Summary List donors
// @Description Returns a paginated donor listing, optionally filtered by a search term.
// @Tags donors
// @Produce json
// @Param search query string false "Match against name, phone or email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListDonorsResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/donors [get]
func (h *donorHandler) listDonors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDonorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	donors, total, err := h.donorService.ListDonors(c.Request.Context(), params.Search, params.Page, params.Limit)
	if err != nil {
		logger.Error("Failed to list donors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list donors"})
		return
	}

	responses := make([]dto.DonorResponse, len(donors))
	for i, d := range donors {
		responses[i] = dto.ToDonorResponse(&d)
	}

	c.JSON(http.StatusOK, dto.ListDonorsResponse{
		Donors:     responses,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	})
}

// listAllDonors godoc
// @Summary List all donors
// @Description Returns every donor with identity fields only, for dropdowns.
// @Tags donors
// @Produce json
// @Success 200 {array} dto.DonorSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/donors/all [get]
func (h *donorHandler) listAllDonors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	donors, err := h.donorService.ListAllDonors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list all donors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list donors"})
		return
	}

	responses := make([]dto.DonorSummaryResponse, len(donors))
	for i, d := range donors {
		responses[i] = dto.ToDonorSummaryResponse(&d)
	}

	c.JSON(http.StatusOK, responses)
}

// getDonorByID godoc
// @Summary Get a donor
// @Description Retrieves a single donor by id.
// @Tags donors
// @Produce json
// @Param id path string true "Donor ID"
// @Success 200 {object} dto.DonorResponse
// @Failure 400 {object} ErrorResponse "Malformed donor id"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/donors/{id} [get]
func (h *donorHandler) getDonorByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	donorID := c.Param("id")
	if _, err := uuid.Parse(donorID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid donor id"})
		return
	}

	donor, err := h.donorService.GetDonorByID(c.Request.Context(), donorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Donor not found"})
		} else {
			logger.Error("Failed to get donor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve donor"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDonorResponse(donor))
}

// updateDonor godoc
// @Summary Update a donor
// @Description Applies a partial update to a donor's identity fields. Donation totals are never editable.
// @Tags donors
// @Accept json
// @Produce json
// @Param id path string true "Donor ID"
// @Param donor body dto.UpdateDonorRequest true "Fields to update"
// @Success 200 {object} dto.DonorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/donors/{id} [put]
func (h *donorHandler) updateDonor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donorID := c.Param("id")

	var req dto.UpdateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	donor, err := h.donorService.UpdateDonor(c.Request.Context(), donorID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Donor not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A donor with this phone or email already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update donor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update donor"})
		}
		return
	}

	logger.Info("Donor updated", slog.String("donor_id", donorID))
	c.JSON(http.StatusOK, dto.ToDonorResponse(donor))
}

// deleteDonor godoc
// @Summary Delete a donor
// @Description Deletes a donor record. Privileged roles only.
// @Tags donors
// @Produce json
// @Param id path string true "Donor ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/donors/{id} [delete]
func (h *donorHandler) deleteDonor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donorID := c.Param("id")

	if err := h.donorService.DeleteDonor(c.Request.Context(), donorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Donor not found"})
		} else {
			logger.Error("Failed to delete donor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete donor"})
		}
		return
	}

	logger.Info("Donor deleted", slog.String("donor_id", donorID))
	c.Status(http.StatusNoContent)
}
