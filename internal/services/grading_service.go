package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
	"github.com/lernify-road/roadmap-service/internal/validator"
)

type gradingService struct {
	repo            repositories.Repository
	logger          *slog.Logger
	validator       *validator.Validator
	progressService ProgressService
}

func NewGradingService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) GradingService {
	return &gradingService{
		repo:            repo,
		logger:          logger,
		validator:       validator,
		progressService: NewProgressService(repo, logger),
	}
}

// Submit grades one quiz submission for a roadmap step.
//
// The gate check runs before any grading: step N > 1 requires step N-1 in
// the user's completed set. Every graded submission appends one
// AssessmentResult, pass or fail; only a pass touches Progress, so a failed
// step can be retried indefinitely.
func (s *gradingService) Submit(ctx context.Context, req *SubmitAssessmentRequest) (*SubmissionResult, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	roadmap, err := s.repo.Roadmap().GetByDomain(ctx, req.Domain)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrRoadmapNotFound
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}

	step := findStep(roadmap.Steps.Data(), req.StepOrder)
	if step == nil {
		return nil, ErrStepNotFound
	}

	progress, err := s.progressService.GetOrCreate(ctx, req.UserID, req.Domain)
	if err != nil {
		return nil, err
	}
	if !s.progressService.IsStepUnlocked(progress, req.StepOrder) {
		return nil, ErrStepLocked
	}

	score, total := scoreAnswers(step.Questions, req.Answers)
	passed := score >= passThreshold(total)

	result := &models.AssessmentResult{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Domain:    req.Domain,
		StepOrder: req.StepOrder,
		Score:     score,
		Total:     total,
		Passed:    passed,
	}
	if err := s.repo.AssessmentResult().Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	if passed {
		if err := s.progressService.RecordPass(ctx, req.UserID, req.Domain, req.StepOrder, score); err != nil {
			return nil, err
		}
	}

	s.logger.Info("submission graded",
		"user_id", req.UserID,
		"domain", req.Domain,
		"step_order", req.StepOrder,
		"score", score,
		"total", total,
		"passed", passed)

	message := "Failed"
	if passed {
		message = "Passed"
	}
	return &SubmissionResult{Result: result, Message: message}, nil
}

func findStep(steps []models.RoadmapStep, order int) *models.RoadmapStep {
	for i := range steps {
		if steps[i].Order == order {
			return &steps[i]
		}
	}
	return nil
}

// scoreAnswers tallies positional matches between submitted answer indices
// and the questions' correct indices. Extra answers beyond the question
// count are ignored; missing answers score nothing at their positions.
func scoreAnswers(questions []models.Question, answers []int) (score, total int) {
	total = len(questions)
	for i, answer := range answers {
		if i >= total {
			break
		}
		if answer == questions[i].AnswerIndex {
			score++
		}
	}
	return score, total
}

// passThreshold is 60% of the question count, rounded down, but never less
// than one correct answer.
func passThreshold(total int) int {
	threshold := (total * 6) / 10
	if threshold < 1 {
		return 1
	}
	return threshold
}
