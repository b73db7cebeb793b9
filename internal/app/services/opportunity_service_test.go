package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
)

func newOpportunityFixture() (*OpportunityService, *mockOpportunityRepo, *mockUserRepo, *mockNotificationRepo) {
	opportunityRepo := newMockOpportunityRepo()
	userRepo := newMockUserRepo()
	notifier, notificationRepo := newTestNotifier()
	service := NewOpportunityService(opportunityRepo, userRepo, notifier)
	return service, opportunityRepo, userRepo, notificationRepo
}

func TestCreateOpportunityStartsPendingAndNotifiesAdmins(t *testing.T) {
	service, _, userRepo, notificationRepo := newOpportunityFixture()
	admin := userRepo.mustAdd(models.User{Name: "Super Admin", Email: "admin@college.edu", Role: models.RoleAdmin, Status: models.UserStatusApproved})
	secondAdmin := userRepo.mustAdd(models.User{Name: "Second Admin", Email: "admin2@college.edu", Role: models.RoleAdmin, Status: models.UserStatusApproved})
	alumni := userRepo.mustAdd(models.User{Name: "John Doe", Email: "john@alumni.com", Role: models.RoleAlumni, Status: models.UserStatusApproved})

	created, err := service.Create(context.Background(), &models.Opportunity{
		Type:    models.OpportunityJob,
		Title:   "Frontend Engineer",
		Company: "Google",
		// Client-supplied approval state must be ignored
		ApprovalStatus: models.ApprovalApproved,
	}, alumni.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ApprovalStatus != models.ApprovalPending {
		t.Errorf("approval status = %s, want PENDING", created.ApprovalStatus)
	}
	if created.CreatorName != "John Doe" {
		t.Errorf("creator name = %q, want John Doe", created.CreatorName)
	}

	for _, adminID := range []int64{admin.ID, secondAdmin.ID} {
		notifications := notificationRepo.forUser(adminID)
		if len(notifications) != 1 {
			t.Fatalf("admin %d notifications = %d, want 1", adminID, len(notifications))
		}
		if notifications[0].Message != "New JOB posted: Frontend Engineer" {
			t.Errorf("unexpected admin message: %q", notifications[0].Message)
		}
		if notifications[0].Severity != models.SeverityInfo {
			t.Errorf("severity = %s, want INFO", notifications[0].Severity)
		}
	}
}

func TestCreateOpportunityValidation(t *testing.T) {
	service, _, userRepo, _ := newOpportunityFixture()
	alumni := userRepo.mustAdd(models.User{Name: "John Doe", Email: "john@alumni.com", Role: models.RoleAlumni, Status: models.UserStatusApproved})

	cases := []models.Opportunity{
		{Type: "INTERNSHIP", Title: "X", Company: "Y"},
		{Type: models.OpportunityJob, Company: "Y"},
		{Type: models.OpportunityJob, Title: "X"},
	}
	for i, opportunity := range cases {
		if _, err := service.Create(context.Background(), &opportunity, alumni.ID); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("case %d err = %v, want ErrValidationFailed", i, err)
		}
	}
}

func TestListOpportunitiesVisibility(t *testing.T) {
	service, opportunityRepo, userRepo, _ := newOpportunityFixture()
	alumni := userRepo.mustAdd(models.User{Name: "John Doe", Email: "john@alumni.com", Role: models.RoleAlumni, Status: models.UserStatusApproved})
	other := userRepo.mustAdd(models.User{Name: "Jane Roe", Email: "jane@alumni.com", Role: models.RoleAlumni, Status: models.UserStatusApproved})
	ctx := context.Background()

	seed := []models.Opportunity{
		{CreatedBy: alumni.ID, Type: models.OpportunityJob, Title: "Approved own", Company: "Google", ApprovalStatus: models.ApprovalApproved},
		{CreatedBy: alumni.ID, Type: models.OpportunityJob, Title: "Pending own", Company: "Google", ApprovalStatus: models.ApprovalPending},
		{CreatedBy: other.ID, Type: models.OpportunityJob, Title: "Approved other", Company: "Meta", ApprovalStatus: models.ApprovalApproved},
		{CreatedBy: other.ID, Type: models.OpportunityJob, Title: "Pending other", Company: "Meta", ApprovalStatus: models.ApprovalPending},
	}
	for i := range seed {
		if _, err := opportunityRepo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	adminView, err := service.List(ctx, models.RoleAdmin, 99)
	if err != nil {
		t.Fatalf("admin List: %v", err)
	}
	if len(adminView) != 4 {
		t.Errorf("admin sees %d postings, want 4", len(adminView))
	}

	alumniView, err := service.List(ctx, models.RoleAlumni, alumni.ID)
	if err != nil {
		t.Fatalf("alumni List: %v", err)
	}
	if len(alumniView) != 2 {
		t.Fatalf("alumni sees %d postings, want 2 (own only)", len(alumniView))
	}
	for _, opportunity := range alumniView {
		if opportunity.CreatedBy != alumni.ID {
			t.Errorf("alumni saw a posting by user %d", opportunity.CreatedBy)
		}
	}

	studentView, err := service.List(ctx, models.RoleStudent, 42)
	if err != nil {
		t.Fatalf("student List: %v", err)
	}
	if len(studentView) != 2 {
		t.Fatalf("student sees %d postings, want 2 (approved only)", len(studentView))
	}
	for _, opportunity := range studentView {
		if opportunity.ApprovalStatus != models.ApprovalApproved {
			t.Errorf("student saw a %s posting", opportunity.ApprovalStatus)
		}
	}
}

func TestGetOpportunityHidesUnapprovedFromOthers(t *testing.T) {
	service, opportunityRepo, userRepo, _ := newOpportunityFixture()
	alumni := userRepo.mustAdd(models.User{Name: "John Doe", Email: "john@alumni.com", Role: models.RoleAlumni, Status: models.UserStatusApproved})
	ctx := context.Background()

	id, err := opportunityRepo.Create(ctx, &models.Opportunity{
		CreatedBy: alumni.ID, Type: models.OpportunityJob, Title: "Frontend Engineer",
		Company: "Google", ApprovalStatus: models.ApprovalPending,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// A pending posting reads as missing for everyone but admins and its creator
	if _, err := service.GetByID(ctx, id, models.RoleStudent, 42); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("student GetByID err = %v, want ErrResourceNotFound", err)
	}
	if _, err := service.GetByID(ctx, id, models.RoleAlumni, alumni.ID); err != nil {
		t.Errorf("creator GetByID err = %v, want nil", err)
	}
	if _, err := service.GetByID(ctx, id, models.RoleAdmin, 99); err != nil {
		t.Errorf("admin GetByID err = %v, want nil", err)
	}

	if _, err := service.SetApprovalStatus(ctx, id, models.ApprovalApproved); err != nil {
		t.Fatalf("SetApprovalStatus: %v", err)
	}
	if _, err := service.GetByID(ctx, id, models.RoleStudent, 42); err != nil {
		t.Errorf("student GetByID after approval err = %v, want nil", err)
	}
}

func TestSetApprovalStatusNotifiesCreator(t *testing.T) {
	service, opportunityRepo, userRepo, notificationRepo := newOpportunityFixture()
	alumni := userRepo.mustAdd(models.User{Name: "John Doe", Email: "john@alumni.com", Role: models.RoleAlumni, Status: models.UserStatusApproved})
	ctx := context.Background()

	id, err := opportunityRepo.Create(ctx, &models.Opportunity{
		CreatedBy: alumni.ID, Type: models.OpportunityJob, Title: "Frontend Engineer",
		Company: "Google", ApprovalStatus: models.ApprovalPending,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated, err := service.SetApprovalStatus(ctx, id, models.ApprovalApproved)
	if err != nil {
		t.Fatalf("SetApprovalStatus: %v", err)
	}
	if updated.ApprovalStatus != models.ApprovalApproved {
		t.Errorf("status = %s, want APPROVED", updated.ApprovalStatus)
	}

	notifications := notificationRepo.forUser(alumni.ID)
	if len(notifications) != 1 {
		t.Fatalf("creator notifications = %d, want 1", len(notifications))
	}
	want := fmt.Sprintf("Your job posting %q was APPROVED", "Frontend Engineer")
	if notifications[0].Message != want {
		t.Errorf("message = %q, want %q", notifications[0].Message, want)
	}
	if notifications[0].Severity != models.SeveritySuccess {
		t.Errorf("severity = %s, want SUCCESS", notifications[0].Severity)
	}
}

func TestSetApprovalStatusRejectionUsesErrorSeverity(t *testing.T) {
	service, opportunityRepo, userRepo, notificationRepo := newOpportunityFixture()
	alumni := userRepo.mustAdd(models.User{Name: "John Doe", Email: "john@alumni.com", Role: models.RoleAlumni, Status: models.UserStatusApproved})
	ctx := context.Background()

	id, err := opportunityRepo.Create(ctx, &models.Opportunity{
		CreatedBy: alumni.ID, Type: models.OpportunityJob, Title: "Frontend Engineer",
		Company: "Google", ApprovalStatus: models.ApprovalPending,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := service.SetApprovalStatus(ctx, id, models.ApprovalRejected); err != nil {
		t.Fatalf("SetApprovalStatus: %v", err)
	}

	notifications := notificationRepo.forUser(alumni.ID)
	if len(notifications) != 1 {
		t.Fatalf("creator notifications = %d, want 1", len(notifications))
	}
	if notifications[0].Severity != models.SeverityError {
		t.Errorf("severity = %s, want ERROR", notifications[0].Severity)
	}
}

func TestSetApprovalStatusDecisionsAreTerminal(t *testing.T) {
	service, opportunityRepo, userRepo, notificationRepo := newOpportunityFixture()
	alumni := userRepo.mustAdd(models.User{Name: "John Doe", Email: "john@alumni.com", Role: models.RoleAlumni, Status: models.UserStatusApproved})
	ctx := context.Background()

	id, err := opportunityRepo.Create(ctx, &models.Opportunity{
		CreatedBy: alumni.ID, Type: models.OpportunityJob, Title: "Frontend Engineer",
		Company: "Google", ApprovalStatus: models.ApprovalApproved,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := service.SetApprovalStatus(ctx, id, models.ApprovalPending); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Errorf("APPROVED -> PENDING err = %v, want ErrInvalidTransition", err)
	}
	if _, err := service.SetApprovalStatus(ctx, id, models.ApprovalRejected); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Errorf("APPROVED -> REJECTED err = %v, want ErrInvalidTransition", err)
	}

	// Re-approving is a no-op, not an error, and stays silent
	if _, err := service.SetApprovalStatus(ctx, id, models.ApprovalApproved); err != nil {
		t.Errorf("same-status update err = %v, want nil", err)
	}
	if got := len(notificationRepo.forUser(alumni.ID)); got != 0 {
		t.Errorf("no-op produced %d notifications, want 0", got)
	}
}
