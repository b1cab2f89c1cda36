package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shantodev/temple_donation_app/internal/apperrors"
	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/middleware"
)

// adminUserHandler handles HTTP requests related to staff accounts.
type adminUserHandler struct {
	userService portssvc.UserSvcFacade
}

func newAdminUserHandler(us portssvc.UserSvcFacade) *adminUserHandler {
	return &adminUserHandler{userService: us}
}

// registerAdminUserRoutes registers routes related to staff accounts.
// Mutations are additionally gated to SUPER_ADMIN at the route level; the
// service enforces the same restriction.
func registerAdminUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newAdminUserHandler(userService)
	superOnly := middleware.RequireRoles(domain.RoleSuperAdmin)

	admins := rg.Group("/admins")
	{
		admins.GET("", h.listStaff)
		admins.POST("", superOnly, h.createStaff)
		admins.GET("/:id", h.getStaffByID)
		admins.PUT("/:id", superOnly, h.updateStaff)
		admins.DELETE("/:id", superOnly, h.deleteStaff)
	}
}

// createStaff godoc
// @Summary Create a staff account
// @Description Creates a staff account with a bcrypt-hashed password. SUPER_ADMIN only.
// @Tags admins
// @Accept json
// @Produce json
// @Param admin body dto.CreateAdminRequest true "Account details"
// @Success 201 {object} dto.AdminResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /admin/admins [post]
func (h *adminUserHandler) createStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateStaff(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "An account with this email already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create staff account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create account"})
		}
		return
	}

	logger.Info("Staff account created", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToAdminResponse(user))
}

// listStaff godoc
// @Summary List staff accounts
// @Description Returns staff accounts excluding SUPER_ADMIN, optionally filtered by name or email.
// @Tags admins
// @Produce json
// @Param search query string false "Match against name or email"
// @Success 200 {array} dto.AdminResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/admins [get]
func (h *adminUserHandler) listStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAdminsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListStaff(c.Request.Context(), params.Search)
	if err != nil {
		logger.Error("Failed to list staff accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list accounts"})
		return
	}

	responses := make([]dto.AdminResponse, len(users))
	for i, u := range users {
		responses[i] = dto.ToAdminResponse(&u)
	}

	c.JSON(http.StatusOK, responses)
}

// getStaffByID godoc
// @Summary Get a staff account
// @Description Retrieves a single staff account by id.
// @Tags admins
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.AdminResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/admins/{id} [get]
func (h *adminUserHandler) getStaffByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
		} else {
			logger.Error("Failed to get staff account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminResponse(user))
}

// updateStaff godoc
// @Summary Update a staff account
// @Description Updates a staff account; the password is re-hashed only when a new one is supplied. SUPER_ADMIN only.
// @Tags admins
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param admin body dto.UpdateAdminRequest true "Account details"
// @Success 200 {object} dto.AdminResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/admins/{id} [put]
func (h *adminUserHandler) updateStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	var req dto.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateStaff(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "An account with this email already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update staff account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update account"})
		}
		return
	}

	logger.Info("Staff account updated", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.ToAdminResponse(user))
}

// deleteStaff godoc
// @Summary Delete a staff account
// @Description Deletes a staff account. The SUPER_ADMIN account can never be deleted. SUPER_ADMIN only.
// @Tags admins
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/admins/{id} [delete]
func (h *adminUserHandler) deleteStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	if err := h.userService.DeleteStaff(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
		} else {
			logger.Error("Failed to delete staff account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete account"})
		}
		return
	}

	logger.Info("Staff account deleted", slog.String("user_id", userID))
	c.Status(http.StatusNoContent)
}
