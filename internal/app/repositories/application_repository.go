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

// ApplicationFilter narrows application listings
type ApplicationFilter struct {
	OpportunityID int64
	StudentID     int64
}

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application and returns it with server-side defaults
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) (int64, error) {
	query := `
		INSERT INTO applications (opportunity_id, student_id, student_name,
			student_department, alumni_recommendation, admin_final_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		application.OpportunityID,
		application.StudentID,
		application.StudentName,
		application.StudentDepartment,
		application.Recommendation,
		application.FinalStatus,
	).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_opportunity_id_student_id_key") {
			return 0, apperrors.ErrDuplicateApplication
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrOpportunityNotFound
		}
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

// GetByID retrieves an application by id
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT id, opportunity_id, student_id, student_name, student_department,
			alumni_recommendation, alumni_comment, admin_final_status, applied_at
		FROM applications WHERE id = $1`

	application, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error getting application: %w", err)
	}

	return application, nil
}

// List retrieves applications matching the filter, newest first
func (r *ApplicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]*models.Application, error) {
	query := squirrel.Select(
		"id", "opportunity_id", "student_id", "student_name", "student_department",
		"alumni_recommendation", "alumni_comment", "admin_final_status", "applied_at",
	).
		From("applications").
		OrderBy("applied_at DESC, id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.OpportunityID > 0 {
		query = query.Where("opportunity_id = ?", filter.OpportunityID)
	}
	if filter.StudentID > 0 {
		query = query.Where("student_id = ?", filter.StudentID)
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

	var applications []*models.Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		applications = append(applications, application)
	}

	return applications, nil
}

// UpdateRecommendation overwrites the alumni verdict and comment
func (r *ApplicationRepository) UpdateRecommendation(ctx context.Context, id int64, recommendation models.Recommendation, comment string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE applications SET alumni_recommendation = $1, alumni_comment = $2
		WHERE id = $3`, recommendation, comment, id)
	if err != nil {
		return fmt.Errorf("error updating recommendation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// UpdateFinalStatus changes the admin decision state
func (r *ApplicationRepository) UpdateFinalStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE applications SET admin_final_status = $1
		WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating final status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var application models.Application
	err := row.Scan(
		&application.ID,
		&application.OpportunityID,
		&application.StudentID,
		&application.StudentName,
		&application.StudentDepartment,
		&application.Recommendation,
		&application.AlumniComment,
		&application.FinalStatus,
		&application.AppliedAt,
	)
	if err != nil {
		return nil, err
	}
	return &application, nil
}
