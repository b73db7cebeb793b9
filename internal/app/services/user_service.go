package services

import (
	"context"
	"fmt"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
	"github.com/yigit/alumnibridge/internal/pkg/email"
	"github.com/yigit/alumnibridge/internal/pkg/logger"
)

// UserService handles profile reads and admin account moderation
type UserService struct {
	userRepo     UserRepository
	notifier     Notifier
	emailService email.EmailService
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserRepository, notifier Notifier, emailService email.EmailService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		notifier:     notifier,
		emailService: emailService,
	}
}

// GetByID returns a user with projects and education attached
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// List returns users filtered by role and/or status. Empty values match all.
func (s *UserService) List(ctx context.Context, role models.RoleType, status models.UserStatus) ([]*models.User, error) {
	if role != "" && !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, role)
	}
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, status)
	}

	return s.userRepo.List(ctx, role, status)
}

// UpdateProfile replaces the mutable profile fields of the user
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, user.ID)
}

// SetStatus moves an account through the approval lifecycle and tells
// the owner about it. Setting the current status again is a no-op.
func (s *UserService) SetStatus(ctx context.Context, userID int64, status models.UserStatus) (*models.User, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, status)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Status == status {
		return user, nil
	}

	if !models.CanTransitionUserStatus(user.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, user.Status, status)
	}

	if err := s.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return nil, err
	}
	user.Status = status

	severity := models.SeverityWarning
	if status == models.UserStatusApproved {
		severity = models.SeveritySuccess
	}
	message := fmt.Sprintf("Your account status has been updated to: %s", status)
	if err := s.notifier.Notify(ctx, userID, message, severity); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create status notification")
	}

	if err := s.emailService.SendStatusEmail(user.Email, user.Name, string(status)); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send status email")
	}

	return user, nil
}
