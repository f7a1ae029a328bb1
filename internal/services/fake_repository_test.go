package services

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
)

// fakeRepository is an in-memory Repository for service tests. It mirrors
// the conflict semantics of the real store: unique emails, unique domains,
// one progress row per (user, domain), one resume per user.
type fakeRepository struct {
	mu       sync.Mutex
	users    map[string]*models.User
	roadmaps map[string]*models.Roadmap
	progress map[string]*models.Progress
	results  []*models.AssessmentResult
	resumes  map[string]*models.Resume
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:    make(map[string]*models.User),
		roadmaps: make(map[string]*models.Roadmap),
		progress: make(map[string]*models.Progress),
		resumes:  make(map[string]*models.Resume),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func progressKey(userID, domain string) string {
	return userID + "/" + domain
}

func (f *fakeRepository) User() repositories.UserRepository                         { return (*fakeUserRepo)(f) }
func (f *fakeRepository) Roadmap() repositories.RoadmapRepository                   { return (*fakeRoadmapRepo)(f) }
func (f *fakeRepository) Progress() repositories.ProgressRepository                 { return (*fakeProgressRepo)(f) }
func (f *fakeRepository) AssessmentResult() repositories.AssessmentResultRepository {
	return (*fakeResultRepo)(f)
}
func (f *fakeRepository) Resume() repositories.ResumeRepository { return (*fakeResumeRepo)(f) }

func (f *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(f)
}
func (f *fakeRepository) Ping(ctx context.Context) error { return nil }
func (f *fakeRepository) Tables(ctx context.Context) ([]string, error) {
	return []string{"users", "roadmaps", "progress", "assessment_results", "resumes"}, nil
}
func (f *fakeRepository) Close() error { return nil }

type fakeUserRepo fakeRepository

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeRoadmapRepo fakeRepository

func (r *fakeRoadmapRepo) Create(ctx context.Context, roadmap *models.Roadmap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *roadmap
	r.roadmaps[roadmap.Domain] = &copied
	return nil
}

func (r *fakeRoadmapRepo) GetByDomain(ctx context.Context, domain string) (*models.Roadmap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	roadmap, ok := r.roadmaps[domain]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *roadmap
	return &copied, nil
}

func (r *fakeRoadmapRepo) ExistsByDomain(ctx context.Context, domain string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.roadmaps[domain]
	return ok, nil
}

func (r *fakeRoadmapRepo) ListDomains(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	domains := make([]string, 0, len(r.roadmaps))
	for domain := range r.roadmaps {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains, nil
}

type fakeProgressRepo fakeRepository

func (r *fakeProgressRepo) CreateIfAbsent(ctx context.Context, progress *models.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := progressKey(progress.UserID, progress.Domain)
	if _, ok := r.progress[key]; ok {
		return nil
	}
	copied := *progress
	r.progress[key] = &copied
	return nil
}

func (r *fakeProgressRepo) GetByUserDomain(ctx context.Context, userID, domain string) (*models.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	progress, ok := r.progress[progressKey(userID, domain)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *progress
	return &copied, nil
}

func (r *fakeProgressRepo) ListByUser(ctx context.Context, userID string) ([]*models.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Progress
	for _, progress := range r.progress {
		if progress.UserID == userID {
			copied := *progress
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out, nil
}

func (r *fakeProgressRepo) RecordPass(ctx context.Context, userID, domain string, stepOrder, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := progressKey(userID, domain)
	progress, ok := r.progress[key]
	if !ok {
		progress = &models.Progress{
			ID:             key,
			UserID:         userID,
			Domain:         domain,
			CompletedSteps: datatypes.NewJSONType([]int{}),
			Scores:         datatypes.NewJSONType(map[int]int{}),
		}
		r.progress[key] = progress
	}

	steps := progress.CompletedSteps.Data()
	found := false
	for _, done := range steps {
		if done == stepOrder {
			found = true
			break
		}
	}
	if !found {
		steps = append(steps, stepOrder)
	}

	scores := progress.Scores.Data()
	if scores == nil {
		scores = map[int]int{}
	}
	scores[stepOrder] = score

	progress.CompletedSteps = datatypes.NewJSONType(steps)
	progress.Scores = datatypes.NewJSONType(scores)
	progress.UpdatedAt = time.Now()
	return nil
}

type fakeResultRepo fakeRepository

func (r *fakeResultRepo) Create(ctx context.Context, result *models.AssessmentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *result
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	r.results = append(r.results, &copied)
	return nil
}

func (r *fakeResultRepo) ListByUser(ctx context.Context, userID string) ([]*models.AssessmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.AssessmentResult
	for _, result := range r.results {
		if result.UserID == userID {
			copied := *result
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeResumeRepo fakeRepository

func (r *fakeResumeRepo) GetByUserID(ctx context.Context, userID string) (*models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *resume
	return &copied, nil
}

func (r *fakeResumeRepo) Upsert(ctx context.Context, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.resumes[resume.UserID]; ok {
		// Replace the fields but keep the original row id.
		updated := *resume
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt
		r.resumes[resume.UserID] = &updated
		return nil
	}
	copied := *resume
	r.resumes[resume.UserID] = &copied
	return nil
}
