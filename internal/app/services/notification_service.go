package services

import (
	"context"
	"fmt"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/pkg/metrics"
	"github.com/yigit/alumnibridge/internal/pkg/sse"
)

// NotificationService appends in-app notifications and pushes them to
// connected SSE subscribers. Polling the list endpoint remains the
// canonical delivery path.
type NotificationService struct {
	notificationRepo NotificationRepository
	broker           *sse.Broker
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo NotificationRepository, broker *sse.Broker) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		broker:           broker,
	}
}

// Notify appends an unread notification for the user
func (s *NotificationService) Notify(ctx context.Context, userID int64, message string, severity models.Severity) error {
	if !severity.IsValid() {
		severity = models.SeverityInfo
	}

	created, err := s.notificationRepo.Create(ctx, &models.Notification{
		UserID:   userID,
		Message:  message,
		Severity: severity,
	})
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	metrics.NotificationsCreated.WithLabelValues(string(severity)).Inc()

	if s.broker != nil {
		s.broker.Broadcast(sse.Event{
			Type:   "notification",
			Data:   created,
			UserID: userID,
		})
	}

	return nil
}

// ListFor returns the user's notifications, newest first
func (s *NotificationService) ListFor(ctx context.Context, userID int64) ([]*models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead marks a notification as read. Repeated or unknown ids are no-ops.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// Broker exposes the SSE broker for the streaming endpoint
func (s *NotificationService) Broker() *sse.Broker {
	return s.broker
}
