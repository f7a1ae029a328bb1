package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernify-road/roadmap-service/internal/services"
	"github.com/lernify-road/roadmap-service/internal/utils"
)

type ProgressHandler struct {
	BaseHandler
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService, logger utils.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     NewBaseHandler(logger),
		progressService: progressService,
	}
}

// GetProgress returns a user's progress in one domain, creating an empty
// record on first read.
// @Summary Get progress for a user and domain
// @Tags progress
// @Produce json
// @Param userId path string true "User ID"
// @Param domain path string true "Roadmap domain"
// @Success 200 {object} models.Progress
// @Failure 400 {object} models.ErrorResponse
// @Router /progress/{userId}/{domain} [get]
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID := h.parseUserIDParam(c, "userId")
	if userID == "" {
		return
	}
	domain := c.Param("domain")

	progress, err := h.progressService.GetOrCreate(c.Request.Context(), userID, domain)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
