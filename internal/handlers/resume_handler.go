package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/services"
	"github.com/lernify-road/roadmap-service/internal/utils"
)

type ResumeHandler struct {
	BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(resumeService services.ResumeService, logger utils.Logger) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   NewBaseHandler(logger),
		resumeService: resumeService,
	}
}

// Upsert creates or fully replaces a user's resume document
// @Summary Save resume
// @Tags resume
// @Accept json
// @Produce json
// @Param resume body services.ResumeUpsertRequest true "Resume data"
// @Success 200 {object} models.Resume
// @Failure 400 {object} models.ErrorResponse
// @Router /resume [post]
func (h *ResumeHandler) Upsert(c *gin.Context) {
	var req services.ResumeUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resume, err := h.resumeService.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resume": resume})
}

// Get fetches a user's stored resume
// @Summary Get resume
// @Tags resume
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.Resume
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /resume/{userId} [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	userID := h.parseUserIDParam(c, "userId")
	if userID == "" {
		return
	}

	resume, err := h.resumeService.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resume": resume})
}
