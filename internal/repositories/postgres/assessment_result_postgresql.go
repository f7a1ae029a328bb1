package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
)

type AssessmentResultPostgreSQL struct {
	db *gorm.DB
}

func NewAssessmentResultPostgreSQL(db *gorm.DB) repositories.AssessmentResultRepository {
	return &AssessmentResultPostgreSQL{db: db}
}

func (a *AssessmentResultPostgreSQL) Create(ctx context.Context, result *models.AssessmentResult) error {
	return a.db.WithContext(ctx).Create(result).Error
}

func (a *AssessmentResultPostgreSQL) ListByUser(ctx context.Context, userID string) ([]*models.AssessmentResult, error) {
	var results []*models.AssessmentResult
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
