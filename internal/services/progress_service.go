package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
)

type progressService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewProgressService(repo repositories.Repository, logger *slog.Logger) ProgressService {
	return &progressService{
		repo:   repo,
		logger: logger,
	}
}

// GetOrCreate returns the (user, domain) progress record, creating an empty
// one on first read. The insert is conflict-safe, so a concurrent first read
// finds the row the other request created.
func (s *progressService) GetOrCreate(ctx context.Context, userID, domain string) (*models.Progress, error) {
	progress, err := s.repo.Progress().GetByUserDomain(ctx, userID, domain)
	if err == nil {
		return progress, nil
	}
	if !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	fresh := &models.Progress{
		ID:             uuid.NewString(),
		UserID:         userID,
		Domain:         domain,
		CompletedSteps: datatypes.NewJSONType([]int{}),
		Scores:         datatypes.NewJSONType(map[int]int{}),
	}
	if err := s.repo.Progress().CreateIfAbsent(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}

	// Re-read: a conflicting insert may have won.
	progress, err = s.repo.Progress().GetByUserDomain(ctx, userID, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to read back progress: %w", err)
	}
	return progress, nil
}

// IsStepUnlocked reports whether stepOrder may be attempted: step 1 is
// always open, step N needs step N-1 in the completed set.
func (s *progressService) IsStepUnlocked(progress *models.Progress, stepOrder int) bool {
	if stepOrder <= 1 {
		return true
	}
	return progress.HasCompleted(stepOrder - 1)
}

// RecordPass adds the step to the completed set and records its score. The
// storage layer performs this as one atomic conditional upsert.
func (s *progressService) RecordPass(ctx context.Context, userID, domain string, stepOrder, score int) error {
	if err := s.repo.Progress().RecordPass(ctx, userID, domain, stepOrder, score); err != nil {
		return fmt.Errorf("failed to record pass: %w", err)
	}

	s.logger.Info("step completed",
		"user_id", userID,
		"domain", domain,
		"step_order", stepOrder,
		"score", score)

	return nil
}
