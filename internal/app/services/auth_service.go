package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/models/dto"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
	"github.com/yigit/alumnibridge/internal/pkg/auth"
	"github.com/yigit/alumnibridge/internal/pkg/email"
	"github.com/yigit/alumnibridge/internal/pkg/logger"
)

// welcomeMessage greets every new account
const welcomeMessage = "Welcome to AlumniBridge! Complete your profile to get started."

// AuthService handles registration and login
type AuthService struct {
	userRepo     UserRepository
	jwtService   *auth.JWTService
	notifier     Notifier
	emailService email.EmailService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService, notifier Notifier, emailService email.EmailService) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		notifier:     notifier,
		emailService: emailService,
	}
}

// Register creates a new account. Students are approved immediately,
// alumni and admin accounts start pending until an admin approves them.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	status := models.UserStatusPending
	if req.Role == models.RoleStudent {
		status = models.UserStatusApproved
	}

	user := &models.User{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    hashed,
		Role:        req.Role,
		Status:      status,
		Department:  req.Department,
		Batch:       req.Batch,
		Company:     req.Company,
		Designation: req.Designation,
		Location:    req.Location,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	if err := s.notifier.Notify(ctx, id, welcomeMessage, models.SeveritySuccess); err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Failed to create welcome notification")
	}

	// Email delivery is best effort, registration already succeeded
	if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
	}

	return s.buildAuthResponse(user)
}

// Login verifies credentials and issues a token.
// Pending accounts may log in, deactivated accounts are refused.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusInactive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.buildAuthResponse(user)
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: user,
	}, nil
}
