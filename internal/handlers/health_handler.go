package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lernify-road/roadmap-service/internal/repositories"
	"github.com/lernify-road/roadmap-service/internal/utils"
)

type HealthHandler struct {
	BaseHandler
	repo repositories.Repository
}

func NewHealthHandler(repo repositories.Repository, logger utils.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: NewBaseHandler(logger),
		repo:        repo,
	}
}

// Liveness answers the root probe
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "roadmap-service",
	})
}

// Diagnostics reports database connectivity, visible tables and whether the
// required environment variables are present. Values are never echoed back.
// @Summary Service diagnostics
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *HealthHandler) Diagnostics(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "ok"
	if err := h.repo.Ping(ctx); err != nil {
		h.logger.Error("database ping failed", "error", err)
		dbStatus = "unreachable"
	}

	tables, err := h.repo.Tables(ctx)
	if err != nil {
		h.logger.Error("failed to list tables", "error", err)
		tables = []string{}
	}

	env := gin.H{}
	for _, key := range []string{"DATABASE_URL", "DATABASE_NAME", "PORT"} {
		env[key] = os.Getenv(key) != ""
	}

	c.JSON(http.StatusOK, gin.H{
		"database": dbStatus,
		"tables":   tables,
		"env":      env,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
