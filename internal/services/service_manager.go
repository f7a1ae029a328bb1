package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lernify-road/roadmap-service/internal/repositories"
	"github.com/lernify-road/roadmap-service/internal/validator"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator

	userService      UserService
	roadmapService   RoadmapService
	progressService  ProgressService
	gradingService   GradingService
	dashboardService DashboardService
	resumeService    ResumeService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates the service aggregate with all dependencies.
func NewServiceManager(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ServiceManager {
	return &serviceManager{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// Initialize builds the service instances and seeds the roadmap catalog.
// It must complete before the service accepts traffic.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.repo == nil {
		return fmt.Errorf("repository is required")
	}

	sm.userService = NewUserService(sm.repo, sm.logger, sm.validator)
	sm.roadmapService = NewRoadmapService(sm.repo, sm.logger)
	sm.progressService = NewProgressService(sm.repo, sm.logger)
	sm.gradingService = NewGradingService(sm.repo, sm.logger, sm.validator)
	sm.dashboardService = NewDashboardService(sm.repo, sm.logger)
	sm.resumeService = NewResumeService(sm.repo, sm.logger, sm.validator)

	if err := sm.roadmapService.SeedIfAbsent(ctx, SeedRoadmaps()); err != nil {
		return fmt.Errorf("failed to seed roadmaps: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("services initialized")
	return nil
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.userService
}

func (sm *serviceManager) Roadmap() RoadmapService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.roadmapService
}

func (sm *serviceManager) Progress() ProgressService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.progressService
}

func (sm *serviceManager) Grading() GradingService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.gradingService
}

func (sm *serviceManager) Dashboard() DashboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.dashboardService
}

func (sm *serviceManager) Resume() ResumeService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.resumeService
}

// HealthCheck verifies the persistence gateway is reachable.
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("services not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("services are shut down")
	}
	return sm.repo.Ping(ctx)
}

// Shutdown marks the services stopped. Connection teardown belongs to the
// repository manager.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}
	sm.shutdown = true
	sm.logger.Info("services shut down")
	return nil
}
