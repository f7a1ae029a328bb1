package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/services"
	"github.com/lernify-road/roadmap-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      NewBaseHandler(logger),
		dashboardService: dashboardService,
	}
}

// GetOverview returns a user's full assessment history and per-domain progress
// @Summary Get dashboard overview
// @Tags dashboard
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} services.DashboardOverview
// @Failure 400 {object} models.ErrorResponse
// @Router /dashboard/{userId} [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	userID := h.parseUserIDParam(c, "userId")
	if userID == "" {
		return
	}

	overview, err := h.dashboardService.GetOverview(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// Export streams the user's dashboard as an xlsx workbook
// @Summary Export dashboard workbook
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param userId path string true "User ID"
// @Success 200 {file} binary
// @Failure 400 {object} models.ErrorResponse
// @Router /dashboard/{userId}/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	userID := h.parseUserIDParam(c, "userId")
	if userID == "" {
		return
	}

	workbook, err := h.dashboardService.ExportWorkbook(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("dashboard_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := workbook.Write(c.Writer); err != nil {
		h.logger.Error("failed to stream workbook", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to export dashboard"})
	}
}
