package services

import (
	"context"
	"fmt"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/repositories"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
	"github.com/yigit/alumnibridge/internal/pkg/logger"
)

// OpportunityService handles job and mentorship postings
type OpportunityService struct {
	opportunityRepo OpportunityRepository
	userRepo        UserRepository
	notifier        Notifier
}

// NewOpportunityService creates a new OpportunityService
func NewOpportunityService(opportunityRepo OpportunityRepository, userRepo UserRepository, notifier Notifier) *OpportunityService {
	return &OpportunityService{
		opportunityRepo: opportunityRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
}

// Create submits a posting for moderation. Every new posting starts
// pending regardless of the request, and every admin is told about it.
func (s *OpportunityService) Create(ctx context.Context, opportunity *models.Opportunity, creatorID int64) (*models.Opportunity, error) {
	if !opportunity.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown opportunity type %q", apperrors.ErrValidationFailed, opportunity.Type)
	}
	if opportunity.Title == "" || opportunity.Company == "" {
		return nil, fmt.Errorf("%w: title and company are required", apperrors.ErrValidationFailed)
	}

	creator, err := s.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	opportunity.CreatedBy = creator.ID
	opportunity.CreatorName = creator.Name
	opportunity.ApprovalStatus = models.ApprovalPending

	id, err := s.opportunityRepo.Create(ctx, opportunity)
	if err != nil {
		return nil, err
	}

	created, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifyAdmins(ctx, fmt.Sprintf("New %s posted: %s", created.Type, created.Title))

	return created, nil
}

// GetByID returns a single posting. Unapproved postings are only
// visible to admins and their creator, everyone else gets a not found.
func (s *OpportunityService) GetByID(ctx context.Context, id int64, role models.RoleType, viewerID int64) (*models.Opportunity, error) {
	opportunity, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if opportunity.ApprovalStatus != models.ApprovalApproved &&
		role != models.RoleAdmin && opportunity.CreatedBy != viewerID {
		return nil, apperrors.NewResourceNotFoundError("Opportunity not found")
	}

	return opportunity, nil
}

// List returns the postings the viewer is allowed to see.
// Admins see everything, alumni see only their own postings,
// everyone else sees approved postings.
func (s *OpportunityService) List(ctx context.Context, role models.RoleType, viewerID int64) ([]*models.Opportunity, error) {
	filter := repositories.OpportunityFilter{}
	switch role {
	case models.RoleAdmin:
	case models.RoleAlumni:
		filter.CreatedBy = viewerID
	default:
		filter.ApprovalStatus = models.ApprovalApproved
	}

	return s.opportunityRepo.List(ctx, filter)
}

// SetApprovalStatus records an admin moderation decision and tells the
// creator. Decisions are terminal, re-setting the same status is a no-op.
func (s *OpportunityService) SetApprovalStatus(ctx context.Context, id int64, status models.ApprovalStatus) (*models.Opportunity, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown approval status %q", apperrors.ErrValidationFailed, status)
	}

	opportunity, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if opportunity.ApprovalStatus == status {
		return opportunity, nil
	}

	if !models.CanTransitionApproval(opportunity.ApprovalStatus, status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, opportunity.ApprovalStatus, status)
	}

	if err := s.opportunityRepo.UpdateApprovalStatus(ctx, id, status); err != nil {
		return nil, err
	}
	opportunity.ApprovalStatus = status

	severity := models.SeverityError
	if status == models.ApprovalApproved {
		severity = models.SeveritySuccess
	}
	message := fmt.Sprintf("Your job posting %q was %s", opportunity.Title, status)
	if err := s.notifier.Notify(ctx, opportunity.CreatedBy, message, severity); err != nil {
		logger.Error().Err(err).Int64("opportunityID", id).Msg("Failed to notify opportunity creator")
	}

	return opportunity, nil
}

// Delete removes a posting and its applications
func (s *OpportunityService) Delete(ctx context.Context, id int64) error {
	return s.opportunityRepo.Delete(ctx, id)
}

// notifyAdmins fans out an informational message to every admin
func (s *OpportunityService) notifyAdmins(ctx context.Context, message string) {
	adminIDs, err := s.userRepo.ListAdminIDs(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list admins for notification")
		return
	}

	for _, adminID := range adminIDs {
		if err := s.notifier.Notify(ctx, adminID, message, models.SeverityInfo); err != nil {
			logger.Error().Err(err).Int64("adminID", adminID).Msg("Failed to notify admin")
		}
	}
}
