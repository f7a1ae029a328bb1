package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/services"
	"github.com/lernify-road/roadmap-service/internal/utils"
)

// BaseHandler carries the pieces every handler shares.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest writes one structured log line for a handler entry point.
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c.Request.Context(), h.logger).Info(msg, args...)
}

// parseUserIDParam validates the path parameter as a UUID. On failure it
// writes a 400 response and returns an empty string.
func (h *BaseHandler) parseUserIDParam(c *gin.Context, name string) string {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid user id",
		})
		return ""
	}
	return raw
}

// handleServiceError maps service errors onto HTTP statuses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: services.ErrInvalidCredentials.Error(),
		})
	case errors.Is(err, services.ErrQualificationNotAllowed):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Message: services.ErrQualificationNotAllowed.Error(),
		})
	case errors.Is(err, services.ErrStepLocked):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Message: services.ErrStepLocked.Error(),
		})
	case errors.Is(err, services.ErrEmailExists):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Message: services.ErrEmailExists.Error(),
		})
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRoadmapNotFound),
		errors.Is(err, services.ErrStepNotFound),
		errors.Is(err, services.ErrResumeNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: err.Error(),
		})
	default:
		utils.LoggerFromContext(c.Request.Context(), h.logger).Error("internal error",
			"path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Internal server error",
		})
	}
}
