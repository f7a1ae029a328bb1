package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/services"
	"github.com/lernify-road/roadmap-service/internal/utils"
)

type AssessmentHandler struct {
	BaseHandler
	gradingService services.GradingService
}

func NewAssessmentHandler(gradingService services.GradingService, logger utils.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler:    NewBaseHandler(logger),
		gradingService: gradingService,
	}
}

// Submit grades a quiz submission for one roadmap step.
// A result row is recorded whether the attempt passes or fails; progress
// only advances on a pass.
// @Summary Submit step assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param submission body services.SubmitAssessmentRequest true "Submission data"
// @Success 200 {object} services.SubmissionResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /assessments/submit [post]
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var req services.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.gradingService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
