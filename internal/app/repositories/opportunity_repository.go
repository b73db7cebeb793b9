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
)

// OpportunityFilter narrows opportunity listings
type OpportunityFilter struct {
	// CreatedBy limits results to a single creator when > 0
	CreatedBy int64
	// ApprovalStatus limits results to a single approval state when set
	ApprovalStatus models.ApprovalStatus
}

// OpportunityRepository handles database operations for opportunities
type OpportunityRepository struct {
	db *pgxpool.Pool
}

// NewOpportunityRepository creates a new OpportunityRepository
func NewOpportunityRepository(db *pgxpool.Pool) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

// Create inserts a new opportunity and returns its id
func (r *OpportunityRepository) Create(ctx context.Context, opportunity *models.Opportunity) (int64, error) {
	query := `
		INSERT INTO opportunities (created_by, creator_name, type, title, description,
			company, location, required_skills, deadline, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		opportunity.CreatedBy,
		opportunity.CreatorName,
		opportunity.Type,
		opportunity.Title,
		opportunity.Description,
		opportunity.Company,
		opportunity.Location,
		opportunity.RequiredSkills,
		opportunity.Deadline,
		opportunity.ApprovalStatus,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating opportunity: %w", err)
	}

	return id, nil
}

// GetByID retrieves an opportunity by id
func (r *OpportunityRepository) GetByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	query := `
		SELECT id, created_by, creator_name, type, title, description, company,
			location, required_skills, deadline, approval_status, created_at
		FROM opportunities WHERE id = $1`

	opportunity, err := scanOpportunity(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("error getting opportunity: %w", err)
	}

	return opportunity, nil
}

// List retrieves opportunities matching the filter, newest first
func (r *OpportunityRepository) List(ctx context.Context, filter OpportunityFilter) ([]*models.Opportunity, error) {
	query := squirrel.Select(
		"id", "created_by", "creator_name", "type", "title", "description",
		"company", "location", "required_skills", "deadline", "approval_status", "created_at",
	).
		From("opportunities").
		OrderBy("created_at DESC, id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.CreatedBy > 0 {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}
	if filter.ApprovalStatus != "" {
		query = query.Where("approval_status = ?", string(filter.ApprovalStatus))
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

	var opportunities []*models.Opportunity
	for rows.Next() {
		opportunity, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		opportunities = append(opportunities, opportunity)
	}

	return opportunities, nil
}

// UpdateApprovalStatus changes the moderation state of an opportunity
func (r *OpportunityRepository) UpdateApprovalStatus(ctx context.Context, id int64, status models.ApprovalStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE opportunities SET approval_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating approval status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOpportunityNotFound
	}

	return nil
}

// Delete removes an opportunity and its applications
func (r *OpportunityRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE opportunity_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting applications: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting opportunity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOpportunityNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func scanOpportunity(row pgx.Row) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	err := row.Scan(
		&opportunity.ID,
		&opportunity.CreatedBy,
		&opportunity.CreatorName,
		&opportunity.Type,
		&opportunity.Title,
		&opportunity.Description,
		&opportunity.Company,
		&opportunity.Location,
		&opportunity.RequiredSkills,
		&opportunity.Deadline,
		&opportunity.ApprovalStatus,
		&opportunity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &opportunity, nil
}
