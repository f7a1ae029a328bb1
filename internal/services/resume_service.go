package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
	"github.com/lernify-road/roadmap-service/internal/validator"
)

type resumeService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewResumeService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ResumeService {
	return &resumeService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// Upsert stores the user's resume, fully replacing any existing field
// values. Repeated identical input is idempotent.
func (s *resumeService) Upsert(ctx context.Context, req *ResumeUpsertRequest) (*models.Resume, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	resume := &models.Resume{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Summary:    req.Summary,
		Skills:     datatypes.NewJSONType(req.Skills),
		Education:  datatypes.NewJSONType(req.Education),
		Experience: datatypes.NewJSONType(req.Experience),
		Projects:   datatypes.NewJSONType(req.Projects),
		Contact:    datatypes.NewJSONType(req.Contact),
	}

	if err := s.repo.Resume().Upsert(ctx, resume); err != nil {
		return nil, fmt.Errorf("failed to upsert resume: %w", err)
	}

	// Read back the stored record: on replace the original row id wins.
	stored, err := s.repo.Resume().GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back resume: %w", err)
	}

	s.logger.Info("resume upserted", "user_id", req.UserID)

	return stored, nil
}

func (s *resumeService) Get(ctx context.Context, userID string) (*models.Resume, error) {
	resume, err := s.repo.Resume().GetByUserID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}
