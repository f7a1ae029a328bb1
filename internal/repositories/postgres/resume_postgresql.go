package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
)

type ResumePostgreSQL struct {
	db *gorm.DB
}

func NewResumePostgreSQL(db *gorm.DB) repositories.ResumeRepository {
	return &ResumePostgreSQL{db: db}
}

func (r *ResumePostgreSQL) GetByUserID(ctx context.Context, userID string) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

// Upsert replaces all stored field values for the user's resume, inserting
// the record when none exists yet.
func (r *ResumePostgreSQL) Upsert(ctx context.Context, resume *models.Resume) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"summary", "skills", "education", "experience", "projects", "contact", "updated_at",
			}),
		}).
		Create(resume).Error
}
