package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	OpportunityRepository  *OpportunityRepository
	EventRepository        *EventRepository
	ApplicationRepository  *ApplicationRepository
	NotificationRepository *NotificationRepository
	AnalyticsRepository    *AnalyticsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		OpportunityRepository:  NewOpportunityRepository(db),
		EventRepository:        NewEventRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		AnalyticsRepository:    NewAnalyticsRepository(db),
	}
}
