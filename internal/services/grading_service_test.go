package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/datatypes"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/validator"
)

func seedTestRoadmap(t *testing.T, repo *fakeRepository) {
	t.Helper()
	steps := []models.RoadmapStep{
		{
			Order: 1,
			Title: "Basics",
			Questions: []models.Question{
				{Prompt: "q1", Options: []string{"a", "b", "c"}, AnswerIndex: 0},
				{Prompt: "q2", Options: []string{"a", "b", "c"}, AnswerIndex: 1},
				{Prompt: "q3", Options: []string{"a", "b", "c"}, AnswerIndex: 1},
				{Prompt: "q4", Options: []string{"a", "b", "c"}, AnswerIndex: 2},
			},
		},
		{
			Order: 2,
			Title: "Advanced",
			Questions: []models.Question{
				{Prompt: "q1", Options: []string{"a", "b"}, AnswerIndex: 1},
			},
		},
	}
	err := repo.Roadmap().Create(context.Background(), &models.Roadmap{
		ID:     "rm-1",
		Domain: "frontend",
		Steps:  datatypes.NewJSONType(steps),
	})
	if err != nil {
		t.Fatalf("seed roadmap: %v", err)
	}
}

func TestScoreAnswers(t *testing.T) {
	questions := []models.Question{
		{AnswerIndex: 0},
		{AnswerIndex: 1},
		{AnswerIndex: 1},
		{AnswerIndex: 2},
	}

	tests := []struct {
		name      string
		answers   []int
		wantScore int
		wantTotal int
	}{
		{name: "all correct", answers: []int{0, 1, 1, 2}, wantScore: 4, wantTotal: 4},
		{name: "one wrong", answers: []int{0, 1, 0, 2}, wantScore: 3, wantTotal: 4},
		{name: "all wrong", answers: []int{2, 0, 0, 1}, wantScore: 0, wantTotal: 4},
		{name: "missing answers score nothing", answers: []int{0, 1}, wantScore: 2, wantTotal: 4},
		{name: "extra answers ignored", answers: []int{0, 1, 1, 2, 0, 0}, wantScore: 4, wantTotal: 4},
		{name: "no answers", answers: nil, wantScore: 0, wantTotal: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, total := scoreAnswers(questions, tt.answers)
			if score != tt.wantScore || total != tt.wantTotal {
				t.Errorf("scoreAnswers() = (%d, %d), want (%d, %d)", score, total, tt.wantScore, tt.wantTotal)
			}
		})
	}
}

func TestPassThreshold(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{total: 0, want: 1},
		{total: 1, want: 1},
		{total: 2, want: 1},
		{total: 3, want: 1},
		{total: 4, want: 2},
		{total: 5, want: 3},
		{total: 10, want: 6},
	}
	for _, tt := range tests {
		if got := passThreshold(tt.total); got != tt.want {
			t.Errorf("passThreshold(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestGradingService_Submit(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*fakeRepository, GradingService) {
		repo := newFakeRepository()
		seedTestRoadmap(t, repo)
		return repo, NewGradingService(repo, testLogger(), validator.New())
	}

	t.Run("passing submission advances progress", func(t *testing.T) {
		repo, svc := newService(t)

		result, err := svc.Submit(ctx, &SubmitAssessmentRequest{
			UserID:    "user-1",
			Domain:    "frontend",
			StepOrder: 1,
			Answers:   []int{0, 1, 0, 2},
		})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if !result.Result.Passed {
			t.Errorf("expected 3/4 to pass a threshold of 2")
		}
		if result.Result.Score != 3 || result.Result.Total != 4 {
			t.Errorf("got score %d/%d, want 3/4", result.Result.Score, result.Result.Total)
		}
		if result.Message != "Passed" {
			t.Errorf("got message %q, want %q", result.Message, "Passed")
		}

		progress, err := repo.Progress().GetByUserDomain(ctx, "user-1", "frontend")
		if err != nil {
			t.Fatalf("progress missing after pass: %v", err)
		}
		if !progress.HasCompleted(1) {
			t.Errorf("step 1 not in completed set: %v", progress.CompletedSteps.Data())
		}
		if got := progress.Scores.Data()[1]; got != 3 {
			t.Errorf("recorded score = %d, want 3", got)
		}
	})

	t.Run("failing submission records a result but not progress", func(t *testing.T) {
		repo, svc := newService(t)

		result, err := svc.Submit(ctx, &SubmitAssessmentRequest{
			UserID:    "user-1",
			Domain:    "frontend",
			StepOrder: 1,
			Answers:   []int{2, 0, 0, 1},
		})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if result.Result.Passed {
			t.Errorf("expected 0/4 to fail")
		}
		if result.Message != "Failed" {
			t.Errorf("got message %q, want %q", result.Message, "Failed")
		}

		results, _ := repo.AssessmentResult().ListByUser(ctx, "user-1")
		if len(results) != 1 {
			t.Fatalf("got %d results, want 1", len(results))
		}

		progress, err := repo.Progress().GetByUserDomain(ctx, "user-1", "frontend")
		if err != nil {
			t.Fatalf("progress row should exist after first submission: %v", err)
		}
		if len(progress.CompletedSteps.Data()) != 0 {
			t.Errorf("failed attempt must not complete steps: %v", progress.CompletedSteps.Data())
		}
	})

	t.Run("step two is locked before step one passes", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.Submit(ctx, &SubmitAssessmentRequest{
			UserID:    "user-1",
			Domain:    "frontend",
			StepOrder: 2,
			Answers:   []int{1},
		})
		if !errors.Is(err, ErrStepLocked) {
			t.Fatalf("Submit() error = %v, want ErrStepLocked", err)
		}
	})

	t.Run("step two unlocks after step one passes", func(t *testing.T) {
		_, svc := newService(t)

		if _, err := svc.Submit(ctx, &SubmitAssessmentRequest{
			UserID:    "user-1",
			Domain:    "frontend",
			StepOrder: 1,
			Answers:   []int{0, 1, 1, 2},
		}); err != nil {
			t.Fatalf("step 1 submit: %v", err)
		}

		result, err := svc.Submit(ctx, &SubmitAssessmentRequest{
			UserID:    "user-1",
			Domain:    "frontend",
			StepOrder: 2,
			Answers:   []int{1},
		})
		if err != nil {
			t.Fatalf("step 2 submit: %v", err)
		}
		if !result.Result.Passed {
			t.Errorf("expected 1/1 to pass the single-question threshold of 1")
		}
	})

	t.Run("single question boundary requires one correct", func(t *testing.T) {
		_, svc := newService(t)

		if _, err := svc.Submit(ctx, &SubmitAssessmentRequest{
			UserID:    "user-1",
			Domain:    "frontend",
			StepOrder: 1,
			Answers:   []int{0, 1, 1, 2},
		}); err != nil {
			t.Fatalf("step 1 submit: %v", err)
		}

		result, err := svc.Submit(ctx, &SubmitAssessmentRequest{
			UserID:    "user-1",
			Domain:    "frontend",
			StepOrder: 2,
			Answers:   []int{0},
		})
		if err != nil {
			t.Fatalf("step 2 submit: %v", err)
		}
		if result.Result.Passed {
			t.Errorf("0/1 must fail despite (1*6)/10 flooring to zero")
		}
	})

	t.Run("repeat pass does not duplicate completed steps", func(t *testing.T) {
		repo, svc := newService(t)

		for i := 0; i < 2; i++ {
			if _, err := svc.Submit(ctx, &SubmitAssessmentRequest{
				UserID:    "user-1",
				Domain:    "frontend",
				StepOrder: 1,
				Answers:   []int{0, 1, 1, 2},
			}); err != nil {
				t.Fatalf("submit %d: %v", i, err)
			}
		}

		progress, _ := repo.Progress().GetByUserDomain(ctx, "user-1", "frontend")
		if got := len(progress.CompletedSteps.Data()); got != 1 {
			t.Errorf("completed set has %d entries, want 1", got)
		}

		results, _ := repo.AssessmentResult().ListByUser(ctx, "user-1")
		if len(results) != 2 {
			t.Errorf("got %d result rows, want 2 (history is append-only)", len(results))
		}
	})

	t.Run("unknown domain", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.Submit(ctx, &SubmitAssessmentRequest{
			UserID:    "user-1",
			Domain:    "devops",
			StepOrder: 1,
			Answers:   []int{0},
		})
		if !errors.Is(err, ErrRoadmapNotFound) {
			t.Fatalf("Submit() error = %v, want ErrRoadmapNotFound", err)
		}
	})

	t.Run("unknown step order", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.Submit(ctx, &SubmitAssessmentRequest{
			UserID:    "user-1",
			Domain:    "frontend",
			StepOrder: 9,
			Answers:   []int{0},
		})
		if !errors.Is(err, ErrStepNotFound) {
			t.Fatalf("Submit() error = %v, want ErrStepNotFound", err)
		}
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.Submit(ctx, &SubmitAssessmentRequest{Domain: "frontend", StepOrder: 1})
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("Submit() error = %v, want ValidationErrors", err)
		}
	})
}
