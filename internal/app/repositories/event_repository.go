package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
	"github.com/yigit/alumnibridge/internal/pkg/dberrors"
)

// EventFilter narrows event listings
type EventFilter struct {
	// ApprovalStatus limits results to a single approval state when set
	ApprovalStatus models.ApprovalStatus
	// IncludeCreatedBy additionally includes this creator's events regardless of status
	IncludeCreatedBy int64
}

// EventRepository handles database operations for events and registrations
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and returns its id
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := `
		INSERT INTO events (title, event_date, description, location, created_by,
			creator_name, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		event.Title,
		event.EventDate,
		event.Description,
		event.Location,
		event.CreatedBy,
		event.CreatorName,
		event.ApprovalStatus,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

// GetByID retrieves an event by id
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, title, event_date, description, location, created_by,
			creator_name, approval_status, created_at
		FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}

	return event, nil
}

// List retrieves events matching the filter, newest first, registrations attached
func (r *EventRepository) List(ctx context.Context, filter EventFilter) ([]*models.Event, error) {
	query := squirrel.Select(
		"id", "title", "event_date", "description", "location", "created_by",
		"creator_name", "approval_status", "created_at",
	).
		From("events").
		OrderBy("created_at DESC, id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ApprovalStatus != "" {
		if filter.IncludeCreatedBy > 0 {
			query = query.Where(squirrel.Or{
				squirrel.Eq{"approval_status": string(filter.ApprovalStatus)},
				squirrel.Eq{"created_by": filter.IncludeCreatedBy},
			})
		} else {
			query = query.Where("approval_status = ?", string(filter.ApprovalStatus))
		}
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}
	rows.Close()

	if err := r.attachRegistrations(ctx, events); err != nil {
		return nil, err
	}

	return events, nil
}

// UpdateApprovalStatus changes the moderation state of an event
func (r *EventRepository) UpdateApprovalStatus(ctx context.Context, id int64, status models.ApprovalStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE events SET approval_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating approval status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// AddRegistration records a student attending an event
func (r *EventRepository) AddRegistration(ctx context.Context, eventID, studentID int64) (*models.EventRegistration, error) {
	query := `
		INSERT INTO event_registrations (event_id, student_id)
		VALUES ($1, $2)
		RETURNING id, event_id, student_id, registered_at`

	var registration models.EventRegistration
	err := r.db.QueryRow(ctx, query, eventID, studentID).Scan(
		&registration.ID,
		&registration.EventID,
		&registration.StudentID,
		&registration.RegisteredAt,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "event_registrations_event_id_student_id_key") {
			return nil, apperrors.ErrAlreadyRegistered
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error creating registration: %w", err)
	}

	return &registration, nil
}

// ListRegistrations returns registrations for an event in registration order
func (r *EventRepository) ListRegistrations(ctx context.Context, eventID int64) ([]models.EventRegistration, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, event_id, student_id, registered_at
		FROM event_registrations WHERE event_id = $1
		ORDER BY registered_at, id`, eventID)
	if err != nil {
		return nil, fmt.Errorf("error listing registrations: %w", err)
	}
	defer rows.Close()

	var registrations []models.EventRegistration
	for rows.Next() {
		var registration models.EventRegistration
		if err := rows.Scan(&registration.ID, &registration.EventID, &registration.StudentID, &registration.RegisteredAt); err != nil {
			return nil, fmt.Errorf("error scanning registration: %w", err)
		}
		registrations = append(registrations, registration)
	}

	return registrations, nil
}

// attachRegistrations loads registrations for the listed events in one query
func (r *EventRepository) attachRegistrations(ctx context.Context, events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(events))
	byID := make(map[int64]*models.Event, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
		byID[event.ID] = event
	}

	query := squirrel.Select("id", "event_id", "student_id", "registered_at").
		From("event_registrations").
		Where(squirrel.Eq{"event_id": ids}).
		OrderBy("registered_at", "id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var registration models.EventRegistration
		if err := rows.Scan(&registration.ID, &registration.EventID, &registration.StudentID, &registration.RegisteredAt); err != nil {
			return fmt.Errorf("error scanning registration: %w", err)
		}
		if event, ok := byID[registration.EventID]; ok {
			event.Registrations = append(event.Registrations, registration)
		}
	}

	return nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.EventDate,
		&event.Description,
		&event.Location,
		&event.CreatedBy,
		&event.CreatorName,
		&event.ApprovalStatus,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
