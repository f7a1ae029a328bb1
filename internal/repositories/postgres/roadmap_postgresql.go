package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
)

type RoadmapPostgreSQL struct {
	db *gorm.DB
}

func NewRoadmapPostgreSQL(db *gorm.DB) repositories.RoadmapRepository {
	return &RoadmapPostgreSQL{db: db}
}

func (r *RoadmapPostgreSQL) Create(ctx context.Context, roadmap *models.Roadmap) error {
	return r.db.WithContext(ctx).Create(roadmap).Error
}

func (r *RoadmapPostgreSQL) GetByDomain(ctx context.Context, domain string) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	if err := r.db.WithContext(ctx).Where("domain = ?", domain).First(&roadmap).Error; err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (r *RoadmapPostgreSQL) ExistsByDomain(ctx context.Context, domain string) (bool, error) {
	var roadmap models.Roadmap
	err := r.db.WithContext(ctx).Select("id").Where("domain = ?", domain).First(&roadmap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *RoadmapPostgreSQL) ListDomains(ctx context.Context) ([]string, error) {
	var domains []string
	if err := r.db.WithContext(ctx).Model(&models.Roadmap{}).Pluck("domain", &domains).Error; err != nil {
		return nil, err
	}
	return domains, nil
}
