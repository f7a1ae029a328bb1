package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository aggregates the collection-scoped repositories behind one
// gateway. All durable state flows through it.
type Repository interface {
	User() UserRepository
	Roadmap() RoadmapRepository
	Progress() ProgressRepository
	AssessmentResult() AssessmentResultRepository
	Resume() ResumeRepository

	// WithTransaction executes fn against a repository bound to a single
	// database transaction.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Ping checks the health of the underlying store.
	Ping(ctx context.Context) error

	// Tables lists the persisted table names, used by diagnostics.
	Tables(ctx context.Context) ([]string, error)

	// Close releases the underlying connections.
	Close() error
}

// RepositoryManager owns repository lifecycle: connect, hand out, shut down.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// IsNotFoundError reports whether err means the requested record is absent.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
