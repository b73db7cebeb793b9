package services

import (
	"context"
	"sort"
	"time"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/repositories"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
)

// In-memory repository doubles used across the service tests.

type mockUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	stored := *user
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	m.users[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) List(_ context.Context, role models.RoleType, status models.UserStatus) ([]*models.User, error) {
	var out []*models.User
	for _, user := range m.users {
		if role != "" && user.Role != role {
			continue
		}
		if status != "" && user.Status != status {
			continue
		}
		copied := *user
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockUserRepo) ListAdminIDs(_ context.Context) ([]int64, error) {
	var ids []int64
	for _, user := range m.users {
		if user.Role == models.RoleAdmin {
			ids = append(ids, user.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, user *models.User) error {
	stored, ok := m.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Department = user.Department
	stored.Batch = user.Batch
	stored.Company = user.Company
	stored.Designation = user.Designation
	stored.Location = user.Location
	stored.Bio = user.Bio
	stored.LinkedIn = user.LinkedIn
	stored.ResumeLink = user.ResumeLink
	stored.Skills = user.Skills
	return nil
}

func (m *mockUserRepo) UpdateStatus(_ context.Context, id int64, status models.UserStatus) error {
	stored, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	stored.Status = status
	return nil
}

func (m *mockUserRepo) mustAdd(user models.User) *models.User {
	m.nextID++
	user.ID = m.nextID
	m.users[user.ID] = &user
	return &user
}

type mockOpportunityRepo struct {
	opportunities map[int64]*models.Opportunity
	nextID        int64
}

func newMockOpportunityRepo() *mockOpportunityRepo {
	return &mockOpportunityRepo{opportunities: make(map[int64]*models.Opportunity)}
}

func (m *mockOpportunityRepo) Create(_ context.Context, opportunity *models.Opportunity) (int64, error) {
	m.nextID++
	stored := *opportunity
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	m.opportunities[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockOpportunityRepo) GetByID(_ context.Context, id int64) (*models.Opportunity, error) {
	opportunity, ok := m.opportunities[id]
	if !ok {
		return nil, apperrors.ErrOpportunityNotFound
	}
	copied := *opportunity
	return &copied, nil
}

func (m *mockOpportunityRepo) List(_ context.Context, filter repositories.OpportunityFilter) ([]*models.Opportunity, error) {
	var out []*models.Opportunity
	for _, opportunity := range m.opportunities {
		if filter.CreatedBy > 0 && opportunity.CreatedBy != filter.CreatedBy {
			continue
		}
		if filter.ApprovalStatus != "" && opportunity.ApprovalStatus != filter.ApprovalStatus {
			continue
		}
		copied := *opportunity
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockOpportunityRepo) UpdateApprovalStatus(_ context.Context, id int64, status models.ApprovalStatus) error {
	stored, ok := m.opportunities[id]
	if !ok {
		return apperrors.ErrOpportunityNotFound
	}
	stored.ApprovalStatus = status
	return nil
}

func (m *mockOpportunityRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.opportunities[id]; !ok {
		return apperrors.ErrOpportunityNotFound
	}
	delete(m.opportunities, id)
	return nil
}

type mockEventRepo struct {
	events        map[int64]*models.Event
	registrations []models.EventRegistration
	nextID        int64
	nextRegID     int64
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[int64]*models.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, event *models.Event) (int64, error) {
	m.nextID++
	stored := *event
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	m.events[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (m *mockEventRepo) List(_ context.Context, filter repositories.EventFilter) ([]*models.Event, error) {
	var out []*models.Event
	for _, event := range m.events {
		matches := filter.ApprovalStatus == "" || event.ApprovalStatus == filter.ApprovalStatus
		if filter.IncludeCreatedBy > 0 && event.CreatedBy == filter.IncludeCreatedBy {
			matches = true
		}
		if !matches {
			continue
		}
		copied := *event
		for _, registration := range m.registrations {
			if registration.EventID == event.ID {
				copied.Registrations = append(copied.Registrations, registration)
			}
		}
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockEventRepo) UpdateApprovalStatus(_ context.Context, id int64, status models.ApprovalStatus) error {
	stored, ok := m.events[id]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	stored.ApprovalStatus = status
	return nil
}

func (m *mockEventRepo) AddRegistration(_ context.Context, eventID, studentID int64) (*models.EventRegistration, error) {
	for _, registration := range m.registrations {
		if registration.EventID == eventID && registration.StudentID == studentID {
			return nil, apperrors.ErrAlreadyRegistered
		}
	}
	m.nextRegID++
	registration := models.EventRegistration{
		ID:           m.nextRegID,
		EventID:      eventID,
		StudentID:    studentID,
		RegisteredAt: time.Now(),
	}
	m.registrations = append(m.registrations, registration)
	return &registration, nil
}

func (m *mockEventRepo) ListRegistrations(_ context.Context, eventID int64) ([]models.EventRegistration, error) {
	var out []models.EventRegistration
	for _, registration := range m.registrations {
		if registration.EventID == eventID {
			out = append(out, registration)
		}
	}
	return out, nil
}

type mockApplicationRepo struct {
	applications map[int64]*models.Application
	nextID       int64
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{applications: make(map[int64]*models.Application)}
}

func (m *mockApplicationRepo) Create(_ context.Context, application *models.Application) (int64, error) {
	for _, existing := range m.applications {
		if existing.OpportunityID == application.OpportunityID && existing.StudentID == application.StudentID {
			return 0, apperrors.ErrDuplicateApplication
		}
	}
	m.nextID++
	stored := *application
	stored.ID = m.nextID
	stored.AppliedAt = time.Now()
	m.applications[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id int64) (*models.Application, error) {
	application, ok := m.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (m *mockApplicationRepo) List(_ context.Context, filter repositories.ApplicationFilter) ([]*models.Application, error) {
	var out []*models.Application
	for _, application := range m.applications {
		if filter.OpportunityID > 0 && application.OpportunityID != filter.OpportunityID {
			continue
		}
		if filter.StudentID > 0 && application.StudentID != filter.StudentID {
			continue
		}
		copied := *application
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockApplicationRepo) UpdateRecommendation(_ context.Context, id int64, recommendation models.Recommendation, comment string) error {
	stored, ok := m.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	stored.Recommendation = recommendation
	stored.AlumniComment = comment
	return nil
}

func (m *mockApplicationRepo) UpdateFinalStatus(_ context.Context, id int64, status models.ApplicationStatus) error {
	stored, ok := m.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	stored.FinalStatus = status
	return nil
}

type mockNotificationRepo struct {
	notifications []*models.Notification
	nextID        int64
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *models.Notification) (*models.Notification, error) {
	m.nextID++
	stored := *notification
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	m.notifications = append(m.notifications, &stored)
	return &stored, nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID int64) ([]*models.Notification, error) {
	var out []*models.Notification
	for i := len(m.notifications) - 1; i >= 0; i-- {
		if m.notifications[i].UserID == userID {
			copied := *m.notifications[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id int64) error {
	for _, notification := range m.notifications {
		if notification.ID == id {
			notification.Read = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) forUser(userID int64) []*models.Notification {
	var out []*models.Notification
	for _, notification := range m.notifications {
		if notification.UserID == userID {
			out = append(out, notification)
		}
	}
	return out
}

// mockAnalyticsRepo derives the snapshot from the other in-memory
// repositories the same way the SQL aggregation does
type mockAnalyticsRepo struct {
	users         *mockUserRepo
	opportunities *mockOpportunityRepo
	events        *mockEventRepo
	applications  *mockApplicationRepo
	collects      int
}

func (m *mockAnalyticsRepo) Collect(_ context.Context) (*models.AnalyticsData, error) {
	m.collects++
	data := &models.AnalyticsData{
		SelectionsByDept:     make(map[string]int),
		ApplicationsByStatus: make(map[string]int),
		JobsByCompany:        make(map[string]int),
	}

	data.ActiveUsers = len(m.users.users)
	data.TotalEvents = len(m.events.events)

	for _, opportunity := range m.opportunities.opportunities {
		data.TotalJobs++
		if opportunity.ApprovalStatus == models.ApprovalApproved {
			data.ActiveJobs++
		}
		data.JobsByCompany[opportunity.Company]++
	}

	for _, application := range m.applications.applications {
		data.TotalApplications++
		data.ApplicationsByStatus[string(application.FinalStatus)]++
		if application.FinalStatus == models.ApplicationFinalSelected {
			dept := application.StudentDepartment
			if dept == "" {
				dept = "Unknown"
			}
			data.SelectionsByDept[dept]++
		}
	}

	return data, nil
}

type mockEmailService struct {
	welcomes []string
	statuses []string
}

func (m *mockEmailService) SendWelcomeEmail(toEmail, _ string) error {
	m.welcomes = append(m.welcomes, toEmail)
	return nil
}

func (m *mockEmailService) SendStatusEmail(toEmail, _, status string) error {
	m.statuses = append(m.statuses, toEmail+":"+status)
	return nil
}

// newTestNotifier wires a real NotificationService over the in-memory
// repository so tests can assert on fan-out side effects.
func newTestNotifier() (*NotificationService, *mockNotificationRepo) {
	repo := newMockNotificationRepo()
	return NewNotificationService(repo, nil), repo
}
