package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnibridge/internal/app/models"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a new unread notification and returns it
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, message, severity)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, message, read, severity, created_at`

	var created models.Notification
	err := r.db.QueryRow(ctx, query,
		notification.UserID,
		notification.Message,
		notification.Severity,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Message,
		&created.Read,
		&created.Severity,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating notification: %w", err)
	}

	return &created, nil
}

// ListByUser retrieves a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, message, read, severity, created_at
		FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var notification models.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Message,
			&notification.Read,
			&notification.Severity,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

// MarkRead marks a notification as read. Unknown ids are a no-op.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}

	return nil
}
