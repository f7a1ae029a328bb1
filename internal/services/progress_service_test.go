package services

import (
	"context"
	"testing"

	"gorm.io/datatypes"

	"github.com/lernify-road/roadmap-service/internal/models"
)

func TestProgressService_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewProgressService(repo, testLogger())

	first, err := svc.GetOrCreate(ctx, "user-1", "frontend")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if first.UserID != "user-1" || first.Domain != "frontend" {
		t.Errorf("got (%q, %q), want (user-1, frontend)", first.UserID, first.Domain)
	}
	if len(first.CompletedSteps.Data()) != 0 {
		t.Errorf("fresh progress has completed steps: %v", first.CompletedSteps.Data())
	}

	second, err := svc.GetOrCreate(ctx, "user-1", "frontend")
	if err != nil {
		t.Fatalf("second GetOrCreate() error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("repeated reads created a second row")
	}

	other, err := svc.GetOrCreate(ctx, "user-1", "backend")
	if err != nil {
		t.Fatalf("GetOrCreate() other domain error = %v", err)
	}
	if other.ID == first.ID {
		t.Errorf("domains must not share progress rows")
	}
}

func TestProgressService_IsStepUnlocked(t *testing.T) {
	svc := NewProgressService(newFakeRepository(), testLogger())

	progress := &models.Progress{
		CompletedSteps: datatypes.NewJSONType([]int{1, 2}),
	}
	empty := &models.Progress{
		CompletedSteps: datatypes.NewJSONType([]int{}),
	}

	tests := []struct {
		name      string
		progress  *models.Progress
		stepOrder int
		want      bool
	}{
		{name: "step one always open", progress: empty, stepOrder: 1, want: true},
		{name: "step two locked initially", progress: empty, stepOrder: 2, want: false},
		{name: "step two open after step one", progress: progress, stepOrder: 2, want: true},
		{name: "step three open after step two", progress: progress, stepOrder: 3, want: true},
		{name: "step four needs step three", progress: progress, stepOrder: 4, want: false},
		{name: "zero treated as open", progress: empty, stepOrder: 0, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.IsStepUnlocked(tt.progress, tt.stepOrder); got != tt.want {
				t.Errorf("IsStepUnlocked(%d) = %v, want %v", tt.stepOrder, got, tt.want)
			}
		})
	}
}

func TestProgressService_RecordPass(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewProgressService(repo, testLogger())

	// RecordPass creates the row when no prior read happened.
	if err := svc.RecordPass(ctx, "user-1", "frontend", 1, 3); err != nil {
		t.Fatalf("RecordPass() error = %v", err)
	}

	progress, err := repo.Progress().GetByUserDomain(ctx, "user-1", "frontend")
	if err != nil {
		t.Fatalf("progress missing: %v", err)
	}
	if !progress.HasCompleted(1) {
		t.Errorf("step 1 not completed")
	}

	// A retake overwrites the score without duplicating the step.
	if err := svc.RecordPass(ctx, "user-1", "frontend", 1, 4); err != nil {
		t.Fatalf("second RecordPass() error = %v", err)
	}
	progress, _ = repo.Progress().GetByUserDomain(ctx, "user-1", "frontend")
	if got := len(progress.CompletedSteps.Data()); got != 1 {
		t.Errorf("completed set has %d entries, want 1", got)
	}
	if got := progress.Scores.Data()[1]; got != 4 {
		t.Errorf("score = %d, want 4", got)
	}
}
