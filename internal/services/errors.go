package services

import (
	"errors"

	"github.com/lernify-road/roadmap-service/internal/validator"
)

// ValidationErrors re-exports the validator error list so handlers can
// match it with errors.As.
type ValidationErrors = validator.ValidationErrors

var (
	// Identity
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrQualificationNotAllowed = errors.New("only IT-related students can register")

	// Roadmap
	ErrRoadmapNotFound = errors.New("roadmap not found")
	ErrStepNotFound    = errors.New("step not found")

	// Progression
	ErrStepLocked = errors.New("complete previous step first")

	// Resume
	ErrResumeNotFound = errors.New("resume not found")
)
