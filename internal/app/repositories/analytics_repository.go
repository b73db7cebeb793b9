package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnibridge/internal/app/models"
)

// AnalyticsRepository aggregates placement figures straight from SQL
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Collect computes the full analytics snapshot
func (r *AnalyticsRepository) Collect(ctx context.Context) (*models.AnalyticsData, error) {
	data := &models.AnalyticsData{
		SelectionsByDept:     make(map[string]int),
		ApplicationsByStatus: make(map[string]int),
		JobsByCompany:        make(map[string]int),
	}

	counts := `
		SELECT
			(SELECT COUNT(*) FROM opportunities),
			(SELECT COUNT(*) FROM opportunities WHERE approval_status = 'APPROVED'),
			(SELECT COUNT(*) FROM applications),
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM users)`
	err := r.db.QueryRow(ctx, counts).Scan(
		&data.TotalJobs,
		&data.ActiveJobs,
		&data.TotalApplications,
		&data.TotalEvents,
		&data.ActiveUsers,
	)
	if err != nil {
		return nil, fmt.Errorf("error collecting counts: %w", err)
	}

	if err := r.groupCount(ctx, data.SelectionsByDept, `
		SELECT COALESCE(NULLIF(student_department, ''), 'Unknown'), COUNT(*)
		FROM applications WHERE admin_final_status = 'FINAL_SELECTED'
		GROUP BY 1`); err != nil {
		return nil, fmt.Errorf("error collecting selections by department: %w", err)
	}

	if err := r.groupCount(ctx, data.ApplicationsByStatus, `
		SELECT admin_final_status, COUNT(*)
		FROM applications
		GROUP BY 1`); err != nil {
		return nil, fmt.Errorf("error collecting applications by status: %w", err)
	}

	if err := r.groupCount(ctx, data.JobsByCompany, `
		SELECT company, COUNT(*)
		FROM opportunities
		GROUP BY 1`); err != nil {
		return nil, fmt.Errorf("error collecting jobs by company: %w", err)
	}

	return data, nil
}

// groupCount runs a two-column (key, count) query into the given map
func (r *AnalyticsRepository) groupCount(ctx context.Context, into map[string]int, query string) error {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		into[key] = count
	}

	return rows.Err()
}
