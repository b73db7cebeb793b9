package services

import (
	"context"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/repositories"
	"github.com/yigit/alumnibridge/internal/db"
	"github.com/yigit/alumnibridge/internal/pkg/auth"
	"github.com/yigit/alumnibridge/internal/pkg/email"
	"github.com/yigit/alumnibridge/internal/pkg/sse"
)

// UserRepository is the persistence surface the services need for users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, role models.RoleType, status models.UserStatus) ([]*models.User, error)
	ListAdminIDs(ctx context.Context) ([]int64, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error
}

// OpportunityRepository is the persistence surface for opportunities
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *models.Opportunity) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Opportunity, error)
	List(ctx context.Context, filter repositories.OpportunityFilter) ([]*models.Opportunity, error)
	UpdateApprovalStatus(ctx context.Context, id int64, status models.ApprovalStatus) error
	Delete(ctx context.Context, id int64) error
}

// EventRepository is the persistence surface for events and registrations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context, filter repositories.EventFilter) ([]*models.Event, error)
	UpdateApprovalStatus(ctx context.Context, id int64, status models.ApprovalStatus) error
	AddRegistration(ctx context.Context, eventID, studentID int64) (*models.EventRegistration, error)
	ListRegistrations(ctx context.Context, eventID int64) ([]models.EventRegistration, error)
}

// ApplicationRepository is the persistence surface for applications
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	List(ctx context.Context, filter repositories.ApplicationFilter) ([]*models.Application, error)
	UpdateRecommendation(ctx context.Context, id int64, recommendation models.Recommendation, comment string) error
	UpdateFinalStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
}

// NotificationRepository is the persistence surface for notifications
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

// AnalyticsRepository computes the analytics snapshot
type AnalyticsRepository interface {
	Collect(ctx context.Context) (*models.AnalyticsData, error)
}

// Notifier delivers an in-app notification to one user
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string, severity models.Severity) error
}

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	UserService         *UserService
	OpportunityService  *OpportunityService
	EventService        *EventService
	ApplicationService  *ApplicationService
	NotificationService *NotificationService
	AnalyticsService    *AnalyticsService
}

// NewServices wires services over the concrete repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	broker *sse.Broker,
	cache *db.Redis,
) *Services {
	notificationService := NewNotificationService(repos.NotificationRepository, broker)

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, jwtService, notificationService, emailService),
		UserService:         NewUserService(repos.UserRepository, notificationService, emailService),
		OpportunityService:  NewOpportunityService(repos.OpportunityRepository, repos.UserRepository, notificationService),
		EventService:        NewEventService(repos.EventRepository, repos.UserRepository, notificationService),
		ApplicationService:  NewApplicationService(repos.ApplicationRepository, repos.OpportunityRepository, repos.UserRepository, notificationService),
		NotificationService: notificationService,
		AnalyticsService:    NewAnalyticsService(repos.AnalyticsRepository, cache),
	}
}
