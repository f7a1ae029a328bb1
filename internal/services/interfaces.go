package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest
type ChangePasswordRequest = validator.ChangePasswordRequest
type UpdateProfileRequest = validator.UpdateProfileRequest
type SubmitAssessmentRequest = validator.SubmitAssessmentRequest
type ResumeUpsertRequest = validator.ResumeUpsertRequest

// SubmissionResult is returned for every graded submission, pass or fail.
type SubmissionResult struct {
	Result  *models.AssessmentResult `json:"result"`
	Message string                   `json:"message"`
}

// RoadmapResponse is the outbound view of one domain's roadmap with the
// answer keys stripped.
type RoadmapResponse struct {
	Domain string              `json:"domain"`
	Steps  []models.PublicStep `json:"steps"`
}

// DashboardOverview aggregates everything recorded for one user.
type DashboardOverview struct {
	Assessments []*models.AssessmentResult `json:"assessments"`
	Progress    []*models.Progress         `json:"progress"`
}

// ===== SERVICE INTERFACES =====

type UserService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *LoginRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req *ChangePasswordRequest) error
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error)
}

type RoadmapService interface {
	// SeedIfAbsent inserts each seed roadmap unless its domain already has
	// one. Safe to run on every startup; existing roadmaps are never
	// overwritten.
	SeedIfAbsent(ctx context.Context, seeds map[string][]models.RoadmapStep) error
	ListDomains(ctx context.Context) ([]string, error)
	GetSteps(ctx context.Context, domain string) (*RoadmapResponse, error)
}

type ProgressService interface {
	// GetOrCreate returns the progress record for (user, domain), creating
	// an empty one on first read.
	GetOrCreate(ctx context.Context, userID, domain string) (*models.Progress, error)

	// IsStepUnlocked reports whether stepOrder may be attempted given the
	// completed set: step 1 is always open, step N needs N-1 completed.
	IsStepUnlocked(progress *models.Progress, stepOrder int) bool

	// RecordPass marks stepOrder completed with its score. Only passing
	// submissions reach this.
	RecordPass(ctx context.Context, userID, domain string, stepOrder, score int) error
}

type GradingService interface {
	// Submit grades one step submission: gate check, positional score
	// tally, pass threshold, append-only result log, and progress update
	// on pass.
	Submit(ctx context.Context, req *SubmitAssessmentRequest) (*SubmissionResult, error)
}

type DashboardService interface {
	GetOverview(ctx context.Context, userID string) (*DashboardOverview, error)

	// ExportWorkbook renders the user's assessment history and per-domain
	// progress as a spreadsheet.
	ExportWorkbook(ctx context.Context, userID string) (*excelize.File, error)
}

type ResumeService interface {
	Upsert(ctx context.Context, req *ResumeUpsertRequest) (*models.Resume, error)
	Get(ctx context.Context, userID string) (*models.Resume, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	User() UserService
	Roadmap() RoadmapService
	Progress() ProgressService
	Grading() GradingService
	Dashboard() DashboardService
	Resume() ResumeService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
