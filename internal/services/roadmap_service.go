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

type roadmapService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewRoadmapService(repo repositories.Repository, logger *slog.Logger) RoadmapService {
	return &roadmapService{
		repo:   repo,
		logger: logger,
	}
}

// SeedIfAbsent inserts each seed domain's roadmap only when no record for
// that domain exists yet, so startup seeding never clobbers an existing,
// possibly admin-edited roadmap.
func (s *roadmapService) SeedIfAbsent(ctx context.Context, seeds map[string][]models.RoadmapStep) error {
	for domain, steps := range seeds {
		exists, err := s.repo.Roadmap().ExistsByDomain(ctx, domain)
		if err != nil {
			return fmt.Errorf("failed to check roadmap %q: %w", domain, err)
		}
		if exists {
			continue
		}

		roadmap := &models.Roadmap{
			ID:     uuid.NewString(),
			Domain: domain,
			Steps:  datatypes.NewJSONType(steps),
		}
		if err := s.repo.Roadmap().Create(ctx, roadmap); err != nil {
			return fmt.Errorf("failed to seed roadmap %q: %w", domain, err)
		}

		s.logger.Info("roadmap seeded", "domain", domain, "steps", len(steps))
	}
	return nil
}

func (s *roadmapService) ListDomains(ctx context.Context) ([]string, error) {
	domains, err := s.repo.Roadmap().ListDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	return domains, nil
}

// GetSteps returns the domain's ordered steps with answer keys stripped.
func (s *roadmapService) GetSteps(ctx context.Context, domain string) (*RoadmapResponse, error) {
	roadmap, err := s.repo.Roadmap().GetByDomain(ctx, domain)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrRoadmapNotFound
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}

	steps := roadmap.Steps.Data()
	public := make([]models.PublicStep, 0, len(steps))
	for _, step := range steps {
		public = append(public, step.Public())
	}

	return &RoadmapResponse{Domain: roadmap.Domain, Steps: public}, nil
}
