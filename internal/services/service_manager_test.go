package services

import (
	"context"
	"testing"

	"github.com/lernify-road/roadmap-service/internal/validator"
)

func TestServiceManager_Initialize(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	manager := NewServiceManager(repo, testLogger(), validator.New())

	if err := manager.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	for name, svc := range map[string]interface{}{
		"user":      manager.User(),
		"roadmap":   manager.Roadmap(),
		"progress":  manager.Progress(),
		"grading":   manager.Grading(),
		"dashboard": manager.Dashboard(),
		"resume":    manager.Resume(),
	} {
		if svc == nil {
			t.Errorf("%s service is nil after Initialize", name)
		}
	}

	// Initialize seeds the built-in roadmaps.
	domains, err := manager.Roadmap().ListDomains(ctx)
	if err != nil {
		t.Fatalf("ListDomains() error = %v", err)
	}
	if len(domains) != len(SeedRoadmaps()) {
		t.Errorf("got %d seeded domains, want %d", len(domains), len(SeedRoadmaps()))
	}

	if err := manager.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	if err := manager.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
