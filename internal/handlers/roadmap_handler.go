package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernify-road/roadmap-service/internal/services"
	"github.com/lernify-road/roadmap-service/internal/utils"
)

type RoadmapHandler struct {
	BaseHandler
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(roadmapService services.RoadmapService, logger utils.Logger) *RoadmapHandler {
	return &RoadmapHandler{
		BaseHandler:    NewBaseHandler(logger),
		roadmapService: roadmapService,
	}
}

// ListDomains returns the catalog of available roadmap domains
// @Summary List roadmap domains
// @Tags roadmaps
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /roadmaps [get]
func (h *RoadmapHandler) ListDomains(c *gin.Context) {
	domains, err := h.roadmapService.ListDomains(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"domains": domains})
}

// GetSteps returns the ordered steps of one roadmap.
// Answer keys are stripped from the quiz questions before leaving the service.
// @Summary Get roadmap steps
// @Tags roadmaps
// @Produce json
// @Param domain path string true "Roadmap domain"
// @Success 200 {object} services.RoadmapResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /roadmaps/{domain} [get]
func (h *RoadmapHandler) GetSteps(c *gin.Context) {
	domain := c.Param("domain")

	roadmap, err := h.roadmapService.GetSteps(c.Request.Context(), domain)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, roadmap)
}
