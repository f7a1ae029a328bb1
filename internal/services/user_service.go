package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lernify-road/roadmap-service/internal/models"
	"github.com/lernify-road/roadmap-service/internal/repositories"
	"github.com/lernify-road/roadmap-service/internal/utils"
	"github.com/lernify-road/roadmap-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// Register creates a user account. The qualification must belong to the
// allow-list and the email must be unused.
func (s *userService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}
	if !models.IsAllowedQualification(req.Qualification) {
		return nil, ErrQualificationNotAllowed
	}

	exists, err := s.repo.User().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	user := &models.User{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Qualification: req.Qualification,
		Role:          models.RoleStudent,
		AvatarURL:     req.AvatarURL,
		PasswordHash:  utils.HashPassword(req.Password),
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "qualification", user.Qualification)

	return sanitize(user), nil
}

// Login authenticates by email and password digest. The failure reason is
// never distinguished so accounts cannot be enumerated.
func (s *userService) Login(ctx context.Context, req *LoginRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.PasswordHash != utils.HashPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return sanitize(user), nil
}

// ChangePassword rotates the stored digest after verifying the old password.
func (s *userService) ChangePassword(ctx context.Context, req *ChangePasswordRequest) error {
	if errs := s.validator.Validate(req); errs != nil {
		return errs
	}

	user, err := s.repo.User().GetByID(ctx, req.UserID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if user.PasswordHash != utils.HashPassword(req.OldPassword) {
		return ErrInvalidCredentials
	}

	user.PasswordHash = utils.HashPassword(req.NewPassword)
	if err := s.repo.User().Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password changed", "user_id", user.ID)

	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return sanitize(user), nil
}

// UpdateProfile replaces the mutable profile fields. The password digest is
// untouched.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	user.Qualification = req.Qualification
	user.AvatarURL = req.AvatarURL

	if err := s.repo.User().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("profile updated", "user_id", user.ID)

	return sanitize(user), nil
}

// sanitize clears the digest before the record leaves the service, on top
// of the json:"-" tag on the model.
func sanitize(user *models.User) *models.User {
	clean := *user
	clean.PasswordHash = ""
	return &clean
}
