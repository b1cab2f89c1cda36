package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/middleware"
)

// activityLogHandler handles HTTP requests for the audit trail.
type activityLogHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityLogHandler(as portssvc.ActivitySvcFacade) *activityLogHandler {
	return &activityLogHandler{activityService: as}
}

// registerActivityLogRoutes registers the audit trail listing for privileged roles.
func registerActivityLogRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityLogHandler(activityService)

	rg.GET("/activity-logs", middleware.RequirePrivileged(), h.listActivityLogs)
}

// listActivityLogs godoc
// @Summary List audit trail entries
// @Description Returns audit entries newest first, optionally filtered by a search term. Privileged roles only.
// @Tags activity-logs
// @Produce json
// @Param search query string false "Match against action, target, details or admin name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListActivityLogsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/activity-logs [get]
func (h *activityLogHandler) listActivityLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListActivityLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	logs, total, err := h.activityService.ListLogs(c.Request.Context(), params.Search, params.Page, params.Limit)
	if err != nil {
		logger.Error("Failed to list activity logs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list activity logs"})
		return
	}

	responses := make([]dto.ActivityLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = dto.ToActivityLogResponse(&l)
	}

	c.JSON(http.StatusOK, dto.ListActivityLogsResponse{
		Logs:       responses,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	})
}
