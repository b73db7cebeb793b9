package services

import (
	"context"
	"fmt"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/repositories"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
	"github.com/yigit/alumnibridge/internal/pkg/logger"
)

// EventService handles event proposals and registrations
type EventService struct {
	eventRepo EventRepository
	userRepo  UserRepository
	notifier  Notifier
}

// NewEventService creates a new EventService
func NewEventService(eventRepo EventRepository, userRepo UserRepository, notifier Notifier) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// Create submits an event proposal for moderation and tells every admin
func (s *EventService) Create(ctx context.Context, event *models.Event, creatorID int64) (*models.Event, error) {
	if event.Title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}
	if event.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event date is required", apperrors.ErrValidationFailed)
	}

	creator, err := s.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	event.CreatedBy = creator.ID
	event.CreatorName = creator.Name
	event.ApprovalStatus = models.ApprovalPending

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	created, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifyAdmins(ctx, fmt.Sprintf("New event proposed: %s", created.Title))

	return created, nil
}

// List returns the events the viewer is allowed to see, registrations
// attached. Admins see everything, alumni see approved events plus their
// own proposals, everyone else sees approved events.
func (s *EventService) List(ctx context.Context, role models.RoleType, viewerID int64) ([]*models.Event, error) {
	filter := repositories.EventFilter{}
	switch role {
	case models.RoleAdmin:
	case models.RoleAlumni:
		filter.ApprovalStatus = models.ApprovalApproved
		filter.IncludeCreatedBy = viewerID
	default:
		filter.ApprovalStatus = models.ApprovalApproved
	}

	return s.eventRepo.List(ctx, filter)
}

// SetApprovalStatus records an admin moderation decision and tells the
// proposer. Decisions are terminal, re-setting the same status is a no-op.
func (s *EventService) SetApprovalStatus(ctx context.Context, id int64, status models.ApprovalStatus) (*models.Event, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown approval status %q", apperrors.ErrValidationFailed, status)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.ApprovalStatus == status {
		return event, nil
	}

	if !models.CanTransitionApproval(event.ApprovalStatus, status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, event.ApprovalStatus, status)
	}

	if err := s.eventRepo.UpdateApprovalStatus(ctx, id, status); err != nil {
		return nil, err
	}
	event.ApprovalStatus = status

	severity := models.SeverityWarning
	if status == models.ApprovalApproved {
		severity = models.SeveritySuccess
	}
	message := fmt.Sprintf("Your event %q was %s", event.Title, status)
	if err := s.notifier.Notify(ctx, event.CreatedBy, message, severity); err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Failed to notify event creator")
	}

	return event, nil
}

// Register records a student attending an event. Registering twice for
// the same event fails and leaves the single existing registration alone.
func (s *EventService) Register(ctx context.Context, eventID, studentID int64) (*models.EventRegistration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	registration, err := s.eventRepo.AddRegistration(ctx, eventID, studentID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Registered successfully for event: %s", event.Title)
	if err := s.notifier.Notify(ctx, studentID, message, models.SeveritySuccess); err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Msg("Failed to notify registrant")
	}

	return registration, nil
}

// Registrations returns who signed up for an event. Only an admin or
// the event's creator may see the attendee list.
func (s *EventService) Registrations(ctx context.Context, eventID, viewerID int64, role models.RoleType) ([]models.EventRegistration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if role != models.RoleAdmin && event.CreatedBy != viewerID {
		return nil, apperrors.NewForbiddenError("Only the event creator can view registrations")
	}

	return s.eventRepo.ListRegistrations(ctx, eventID)
}

// notifyAdmins fans out an informational message to every admin
func (s *EventService) notifyAdmins(ctx context.Context, message string) {
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
