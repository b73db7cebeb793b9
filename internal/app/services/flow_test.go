package services

import (
	"context"
	"testing"
	"time"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/models/dto"
	"github.com/yigit/alumnibridge/internal/app/repositories"
)

// TestPlacementLifecycle walks the whole pipeline over the in-memory
// repositories: registration and account approval, posting moderation,
// application screening, the final selection, and an event on the side.
func TestPlacementLifecycle(t *testing.T) {
	userRepo := newMockUserRepo()
	opportunityRepo := newMockOpportunityRepo()
	eventRepo := newMockEventRepo()
	applicationRepo := newMockApplicationRepo()
	notifier, notificationRepo := newTestNotifier()
	emailService := &mockEmailService{}

	authService := NewAuthService(userRepo, newTestJWTService(), notifier, emailService)
	userService := NewUserService(userRepo, notifier, emailService)
	opportunityService := NewOpportunityService(opportunityRepo, userRepo, notifier)
	eventService := NewEventService(eventRepo, userRepo, notifier)
	applicationService := NewApplicationService(applicationRepo, opportunityRepo, userRepo, notifier)
	analyticsService := NewAnalyticsService(&mockAnalyticsRepo{
		users:         userRepo,
		opportunities: opportunityRepo,
		events:        eventRepo,
		applications:  applicationRepo,
	}, nil)

	ctx := context.Background()
	admin := userRepo.mustAdd(models.User{Name: "Super Admin", Email: "admin@college.edu", Role: models.RoleAdmin, Status: models.UserStatusApproved})

	// An alumni account registers and waits for approval
	alumniResp, err := authService.Register(ctx, &dto.RegisterRequest{
		Name: "John Doe", Email: "john@alumni.com", Password: "password123",
		Role: models.RoleAlumni, Company: "Google",
	})
	if err != nil {
		t.Fatalf("register alumni: %v", err)
	}
	if alumniResp.User.Status != models.UserStatusPending {
		t.Fatalf("alumni status = %s, want PENDING", alumniResp.User.Status)
	}
	alumniID := alumniResp.User.ID

	if _, err := userService.SetStatus(ctx, alumniID, models.UserStatusApproved); err != nil {
		t.Fatalf("approve alumni: %v", err)
	}

	// The approved alumni posts a job; it is pending until moderated
	posting, err := opportunityService.Create(ctx, &models.Opportunity{
		Type: models.OpportunityJob, Title: "Frontend Engineer", Company: "Google",
	}, alumniID)
	if err != nil {
		t.Fatalf("create opportunity: %v", err)
	}

	studentResp, err := authService.Register(ctx, &dto.RegisterRequest{
		Name: "Alice Smith", Email: "alice@student.com", Password: "password123",
		Role: models.RoleStudent, Department: "Computer Science",
	})
	if err != nil {
		t.Fatalf("register student: %v", err)
	}
	studentID := studentResp.User.ID

	studentView, err := opportunityService.List(ctx, models.RoleStudent, studentID)
	if err != nil {
		t.Fatalf("student list: %v", err)
	}
	if len(studentView) != 0 {
		t.Fatalf("student sees %d pending postings, want 0", len(studentView))
	}
	adminView, err := opportunityService.List(ctx, models.RoleAdmin, admin.ID)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(adminView) != 1 {
		t.Fatalf("admin sees %d postings, want 1", len(adminView))
	}

	if _, err := opportunityService.SetApprovalStatus(ctx, posting.ID, models.ApprovalApproved); err != nil {
		t.Fatalf("approve opportunity: %v", err)
	}

	studentView, err = opportunityService.List(ctx, models.RoleStudent, studentID)
	if err != nil {
		t.Fatalf("student list: %v", err)
	}
	if len(studentView) != 1 {
		t.Fatalf("student sees %d approved postings, want 1", len(studentView))
	}

	// The student applies, the alumni screens, the admin decides
	application, err := applicationService.Apply(ctx, posting.ID, studentID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := applicationService.Recommend(ctx, application.ID, alumniID, models.RecommendationRecommended, "Strong candidate"); err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if _, err := applicationService.Finalize(ctx, application.ID, models.ApplicationShortlisted); err != nil {
		t.Fatalf("shortlist: %v", err)
	}
	final, err := applicationService.Finalize(ctx, application.ID, models.ApplicationFinalSelected)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if final.FinalStatus != models.ApplicationFinalSelected || final.Recommendation != models.RecommendationRecommended {
		t.Errorf("final application = %+v", final)
	}

	// An event runs alongside the hiring pipeline
	event, err := eventService.Create(ctx, &models.Event{
		Title: "Tech Talk", EventDate: time.Now().AddDate(0, 0, 7),
	}, alumniID)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if _, err := eventService.SetApprovalStatus(ctx, event.ID, models.ApprovalApproved); err != nil {
		t.Fatalf("approve event: %v", err)
	}
	if _, err := eventService.Register(ctx, event.ID, studentID); err != nil {
		t.Fatalf("register for event: %v", err)
	}

	// The proposer can see who signed up
	registrations, err := eventService.Registrations(ctx, event.ID, alumniID, models.RoleAlumni)
	if err != nil {
		t.Fatalf("event registrations: %v", err)
	}
	if len(registrations) != 1 || registrations[0].StudentID != studentID {
		t.Errorf("registrations = %+v, want the single student signup", registrations)
	}

	// Every actor ended up with the notifications the pipeline promises
	adminMessages := messagesOf(notificationRepo.forUser(admin.ID))
	wantAdmin := []string{
		"New JOB posted: Frontend Engineer",
		"New event proposed: Tech Talk",
	}
	for _, want := range wantAdmin {
		if !contains(adminMessages, want) {
			t.Errorf("admin missing notification %q, got %v", want, adminMessages)
		}
	}

	alumniMessages := messagesOf(notificationRepo.forUser(alumniID))
	wantAlumni := []string{
		"Welcome to AlumniBridge! Complete your profile to get started.",
		"Your account status has been updated to: APPROVED",
		`Your job posting "Frontend Engineer" was APPROVED`,
		"New applicant for Frontend Engineer: Alice Smith",
		`Your event "Tech Talk" was APPROVED`,
	}
	for _, want := range wantAlumni {
		if !contains(alumniMessages, want) {
			t.Errorf("alumni missing notification %q, got %v", want, alumniMessages)
		}
	}

	studentMessages := messagesOf(notificationRepo.forUser(studentID))
	wantStudent := []string{
		"Update on your application for Frontend Engineer: SHORTLISTED",
		"Congratulations! You have been selected for Frontend Engineer",
		"Registered successfully for event: Tech Talk",
	}
	for _, want := range wantStudent {
		if !contains(studentMessages, want) {
			t.Errorf("student missing notification %q, got %v", want, studentMessages)
		}
	}

	// The applications listing reflects the selection for the admin view
	all, err := applicationService.List(ctx, repositories.ApplicationFilter{})
	if err != nil {
		t.Fatalf("list applications: %v", err)
	}
	if len(all) != 1 || all[0].StudentDepartment != "Computer Science" {
		t.Errorf("applications = %+v", all)
	}

	// The dashboard snapshot reflects everything the pipeline produced
	snapshot, err := analyticsService.Get(ctx)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if snapshot.SelectionsByDept["Computer Science"] != 1 {
		t.Errorf("Computer Science selections = %d, want 1", snapshot.SelectionsByDept["Computer Science"])
	}
	if snapshot.ApplicationsByStatus[string(models.ApplicationFinalSelected)] != 1 {
		t.Errorf("applications by status = %v", snapshot.ApplicationsByStatus)
	}
	if snapshot.TotalJobs != 1 || snapshot.ActiveJobs != 1 || snapshot.JobsByCompany["Google"] != 1 {
		t.Errorf("job figures = %d/%d %v", snapshot.TotalJobs, snapshot.ActiveJobs, snapshot.JobsByCompany)
	}
	if snapshot.TotalEvents != 1 || snapshot.ActiveUsers != 3 {
		t.Errorf("events/users = %d/%d, want 1/3", snapshot.TotalEvents, snapshot.ActiveUsers)
	}
}

func messagesOf(notifications []*models.Notification) []string {
	out := make([]string, 0, len(notifications))
	for _, notification := range notifications {
		out = append(out, notification.Message)
	}
	return out
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
