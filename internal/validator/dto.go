package validator

import (
	"github.com/lernify-road/roadmap-service/internal/models"
)

// RegisterRequest carries the fields needed to create a user account.
type RegisterRequest struct {
	FirstName     string  `json:"first_name" validate:"required,min=2,max=100"`
	LastName      string  `json:"last_name" validate:"required,min=2,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required,len=10,numeric"`
	Qualification string  `json:"qualification" validate:"required"`
	Password      string  `json:"password" validate:"required,min=6"`
	AvatarURL     *string `json:"avatar_url" validate:"omitempty,max=500"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type ChangePasswordRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	OldPassword string `json:"old_password" validate:"required,min=6"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UpdateProfileRequest replaces the mutable profile fields. The
// qualification must stay inside the allow-list.
type UpdateProfileRequest struct {
	FirstName     string  `json:"first_name" validate:"required,min=2,max=100"`
	LastName      string  `json:"last_name" validate:"required,min=2,max=100"`
	Phone         string  `json:"phone" validate:"required,len=10,numeric"`
	Qualification string  `json:"qualification" validate:"required,qualification"`
	AvatarURL     *string `json:"avatar_url" validate:"omitempty,max=500"`
}

// SubmitAssessmentRequest is one quiz submission for a roadmap step.
// Answers are positional option indices; extras beyond the question count
// are ignored and gaps count as incorrect.
type SubmitAssessmentRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	Domain    string `json:"domain" validate:"required"`
	StepOrder int    `json:"step_order" validate:"required,min=1"`
	Answers   []int  `json:"answers" validate:"dive,min=0"`
}

// ResumeUpsertRequest fully replaces the stored resume for a user.
type ResumeUpsertRequest struct {
	UserID     string                   `json:"user_id" validate:"required"`
	Summary    string                   `json:"summary" validate:"required,min=20"`
	Skills     []string                 `json:"skills" validate:"required,dive,min=2"`
	Education  []models.EducationEntry  `json:"education" validate:"required"`
	Experience []models.ExperienceEntry `json:"experience" validate:"required"`
	Projects   []models.ProjectEntry    `json:"projects" validate:"required"`
	Contact    map[string]string        `json:"contact" validate:"required"`
}
