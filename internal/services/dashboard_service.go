package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
)

type dashboardService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewDashboardService(repo repositories.Repository, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
	}
}

// GetOverview aggregates every assessment result and every per-domain
// progress record for one user.
func (s *dashboardService) GetOverview(ctx context.Context, userID string) (*DashboardOverview, error) {
	results, err := s.repo.AssessmentResult().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessment results: %w", err)
	}

	progress, err := s.repo.Progress().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	if results == nil {
		results = []*models.AssessmentResult{}
	}
	if progress == nil {
		progress = []*models.Progress{}
	}

	return &DashboardOverview{Assessments: results, Progress: progress}, nil
}

// ExportWorkbook renders the user's dashboard as a two-sheet spreadsheet:
// the full assessment history and one row per domain's progress.
func (s *dashboardService) ExportWorkbook(ctx context.Context, userID string) (*excelize.File, error) {
	overview, err := s.GetOverview(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	const assessmentsSheet = "Assessments"
	f.SetSheetName("Sheet1", assessmentsSheet)

	headers := []interface{}{"Domain", "Step", "Score", "Total", "Result", "Submitted At"}
	if err := f.SetSheetRow(assessmentsSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, result := range overview.Assessments {
		label := "Failed"
		if result.Passed {
			label = "Passed"
		}
		row := []interface{}{
			result.Domain,
			result.StepOrder,
			result.Score,
			result.Total,
			label,
			result.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(assessmentsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	const progressSheet = "Progress"
	if _, err := f.NewSheet(progressSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	progressHeaders := []interface{}{"Domain", "Completed Steps", "Scores"}
	if err := f.SetSheetRow(progressSheet, "A1", &progressHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, progress := range overview.Progress {
		row := []interface{}{
			progress.Domain,
			formatCompletedSteps(progress.CompletedSteps.Data()),
			formatScores(progress.Scores.Data()),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(progressSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	s.logger.Info("dashboard exported",
		"user_id", userID,
		"assessments", len(overview.Assessments),
		"domains", len(overview.Progress))

	return f, nil
}

func formatCompletedSteps(steps []int) string {
	sorted := append([]int(nil), steps...)
	sort.Ints(sorted)

	out := ""
	for i, step := range sorted {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", step)
	}
	return out
}

func formatScores(scores map[int]int) string {
	orders := make([]int, 0, len(scores))
	for order := range scores {
		orders = append(orders, order)
	}
	sort.Ints(orders)

	out := ""
	for i, order := range orders {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("step %d: %d", order, scores[order])
	}
	return out
}
