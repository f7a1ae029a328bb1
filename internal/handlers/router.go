package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lernify-road/roadmap-service/internal/repositories"
	"github.com/lernify-road/roadmap-service/internal/services"
	"github.com/lernify-road/roadmap-service/internal/utils"
)

type HandlerManager struct {
	healthHandler     *HealthHandler
	userHandler       *UserHandler
	roadmapHandler    *RoadmapHandler
	progressHandler   *ProgressHandler
	assessmentHandler *AssessmentHandler
	dashboardHandler  *DashboardHandler
	resumeHandler     *ResumeHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	repo repositories.Repository,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		healthHandler:     NewHealthHandler(repo, logger),
		userHandler:       NewUserHandler(serviceManager.User(), logger),
		roadmapHandler:    NewRoadmapHandler(serviceManager.Roadmap(), logger),
		progressHandler:   NewProgressHandler(serviceManager.Progress(), logger),
		assessmentHandler: NewAssessmentHandler(serviceManager.Grading(), logger),
		dashboardHandler:  NewDashboardHandler(serviceManager.Dashboard(), logger),
		resumeHandler:     NewResumeHandler(serviceManager.Resume(), logger),
	}
}

// SetupRoutes sets up all API routes. Callers identify themselves by user id
// path parameters; there is no session or token layer.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/", hm.healthHandler.Liveness)
	router.GET("/test", hm.healthHandler.Diagnostics)

	auth := router.Group("/auth")
	{
		auth.POST("/register", hm.userHandler.Register)
		auth.POST("/login", hm.userHandler.Login)
		auth.POST("/change-password", hm.userHandler.ChangePassword)
	}

	profile := router.Group("/profile")
	{
		profile.GET("/:userId", hm.userHandler.GetProfile)
		profile.PUT("/:userId", hm.userHandler.UpdateProfile)
	}

	roadmaps := router.Group("/roadmaps")
	{
		roadmaps.GET("", hm.roadmapHandler.ListDomains)
		roadmaps.GET("/:domain", hm.roadmapHandler.GetSteps)
	}

	router.GET("/progress/:userId/:domain", hm.progressHandler.GetProgress)

	router.POST("/assessments/submit", hm.assessmentHandler.Submit)

	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/:userId", hm.dashboardHandler.GetOverview)
		dashboard.GET("/:userId/export", hm.dashboardHandler.Export)
	}

	resume := router.Group("/resume")
	{
		resume.POST("", hm.resumeHandler.Upsert)
		resume.GET("/:userId", hm.resumeHandler.Get)
	}
}
