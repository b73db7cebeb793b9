package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/repositories"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
	"github.com/yigit/alumnibridge/internal/pkg/logger"
)

// ApplicationService handles the application pipeline from submission
// through alumni screening to the admin's final decision
type ApplicationService struct {
	applicationRepo ApplicationRepository
	opportunityRepo OpportunityRepository
	userRepo        UserRepository
	notifier        Notifier
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applicationRepo ApplicationRepository, opportunityRepo OpportunityRepository, userRepo UserRepository, notifier Notifier) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		opportunityRepo: opportunityRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
}

// Apply submits a student application. A student can apply to a given
// opportunity at most once. The posting creator is told about the applicant.
func (s *ApplicationService) Apply(ctx context.Context, opportunityID, studentID int64) (*models.Application, error) {
	opportunity, err := s.opportunityRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		OpportunityID:     opportunityID,
		StudentID:         studentID,
		StudentName:       student.Name,
		StudentDepartment: student.Department,
		Recommendation:    models.RecommendationNone,
		FinalStatus:       models.ApplicationApplied,
	}

	id, err := s.applicationRepo.Create(ctx, application)
	if err != nil {
		return nil, err
	}

	created, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("New applicant for %s: %s", opportunity.Title, student.Name)
	if err := s.notifier.Notify(ctx, opportunity.CreatedBy, message, models.SeverityInfo); err != nil {
		logger.Error().Err(err).Int64("opportunityID", opportunityID).Msg("Failed to notify opportunity creator")
	}

	return created, nil
}

// List returns applications filtered by opportunity and/or student
func (s *ApplicationService) List(ctx context.Context, filter repositories.ApplicationFilter) ([]*models.Application, error) {
	return s.applicationRepo.List(ctx, filter)
}

// Recommend records the posting alumni's screening verdict. The verdict
// and comment are overwritten on repeat calls and the final decision is
// never touched. Only the opportunity's creator may recommend.
func (s *ApplicationService) Recommend(ctx context.Context, applicationID, actorID int64, recommendation models.Recommendation, comment string) (*models.Application, error) {
	if !recommendation.IsValid() {
		return nil, fmt.Errorf("%w: unknown recommendation %q", apperrors.ErrValidationFailed, recommendation)
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	opportunity, err := s.opportunityRepo.GetByID(ctx, application.OpportunityID)
	if err != nil {
		return nil, err
	}

	if opportunity.CreatedBy != actorID {
		return nil, apperrors.NewForbiddenError("Only the posting creator can update the recommendation")
	}

	if err := s.applicationRepo.UpdateRecommendation(ctx, applicationID, recommendation, comment); err != nil {
		return nil, err
	}
	application.Recommendation = recommendation
	application.AlumniComment = comment

	return application, nil
}

// Finalize records the admin decision. Decisions only move forward:
// an application can be shortlisted and then decided, and a final
// decision is terminal. Re-setting the current status is a no-op.
func (s *ApplicationService) Finalize(ctx context.Context, applicationID int64, status models.ApplicationStatus) (*models.Application, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown application status %q", apperrors.ErrValidationFailed, status)
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if application.FinalStatus == status {
		return application, nil
	}

	if !models.CanTransitionApplication(application.FinalStatus, status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, application.FinalStatus, status)
	}

	if err := s.applicationRepo.UpdateFinalStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	application.FinalStatus = status

	opportunity, err := s.opportunityRepo.GetByID(ctx, application.OpportunityID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Update on your application for %s: %s",
		opportunity.Title, strings.TrimPrefix(string(status), "FINAL_"))
	severity := models.SeverityInfo
	if status == models.ApplicationFinalSelected {
		message = fmt.Sprintf("Congratulations! You have been selected for %s", opportunity.Title)
		severity = models.SeveritySuccess
	}
	if err := s.notifier.Notify(ctx, application.StudentID, message, severity); err != nil {
		logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Failed to notify applicant")
	}

	return application, nil
}
