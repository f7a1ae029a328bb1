package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
)

type ProgressPostgreSQL struct {
	db *gorm.DB
}

func NewProgressPostgreSQL(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressPostgreSQL{db: db}
}

func (p *ProgressPostgreSQL) CreateIfAbsent(ctx context.Context, progress *models.Progress) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "domain"}},
			DoNothing: true,
		}).
		Create(progress).Error
}

func (p *ProgressPostgreSQL) GetByUserDomain(ctx context.Context, userID, domain string) (*models.Progress, error) {
	var progress models.Progress
	err := p.db.WithContext(ctx).
		Where("user_id = ? AND domain = ?", userID, domain).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (p *ProgressPostgreSQL) ListByUser(ctx context.Context, userID string) ([]*models.Progress, error) {
	var progress []*models.Progress
	if err := p.db.WithContext(ctx).Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// RecordPass is a single conditional upsert: the completed set only grows
// when it does not already contain the step, and the score map always takes
// the new score. Running it as one statement keeps concurrent submissions
// for the same step from duplicating entries.
func (p *ProgressPostgreSQL) RecordPass(ctx context.Context, userID, domain string, stepOrder, score int) error {
	stepJSON, err := json.Marshal([]int{stepOrder})
	if err != nil {
		return fmt.Errorf("failed to encode step: %w", err)
	}
	scoreJSON, err := json.Marshal(map[int]int{stepOrder: score})
	if err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}

	now := time.Now()
	return p.db.WithContext(ctx).Exec(`
		INSERT INTO progress (id, user_id, domain, completed_steps, scores, created_at, updated_at)
		VALUES (?, ?, ?, ?::jsonb, ?::jsonb, ?, ?)
		ON CONFLICT (user_id, domain) DO UPDATE SET
			completed_steps = CASE
				WHEN progress.completed_steps @> excluded.completed_steps
				THEN progress.completed_steps
				ELSE progress.completed_steps || excluded.completed_steps
			END,
			scores = progress.scores || excluded.scores,
			updated_at = excluded.updated_at`,
		uuid.NewString(), userID, domain, string(stepJSON), string(scoreJSON), now, now,
	).Error
}
