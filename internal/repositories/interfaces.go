package repositories

import (
	"context"

	"github.com/lernify-road/roadmap-service/internal/models"
)

// UserRepository covers the user collection.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
}

// RoadmapRepository covers the roadmap collection. Roadmaps are written only
// by startup seeding; everything else is a read.
type RoadmapRepository interface {
	Create(ctx context.Context, roadmap *models.Roadmap) error
	GetByDomain(ctx context.Context, domain string) (*models.Roadmap, error)
	ExistsByDomain(ctx context.Context, domain string) (bool, error)
	ListDomains(ctx context.Context) ([]string, error)
}

// ProgressRepository covers the progress collection.
type ProgressRepository interface {
	// CreateIfAbsent inserts the record unless one already exists for its
	// (user, domain) pair; concurrent first reads converge on one row.
	CreateIfAbsent(ctx context.Context, progress *models.Progress) error
	GetByUserDomain(ctx context.Context, userID, domain string) (*models.Progress, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Progress, error)

	// RecordPass adds stepOrder to the completed set and records its score
	// in one atomic conditional upsert, creating the row when missing.
	RecordPass(ctx context.Context, userID, domain string, stepOrder, score int) error
}

// AssessmentResultRepository covers the append-only assessment result log.
type AssessmentResultRepository interface {
	Create(ctx context.Context, result *models.AssessmentResult) error
	ListByUser(ctx context.Context, userID string) ([]*models.AssessmentResult, error)
}

// ResumeRepository covers the resume collection.
type ResumeRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Resume, error)

	// Upsert fully replaces the stored resume for its user, creating the
	// record on first write.
	Upsert(ctx context.Context, resume *models.Resume) error
}
