package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
	"github.com/yigit/alumnibridge/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password, role, status, department, batch, company,
	designation, location, bio, linkedin, resume_link, skills, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.Status,
		&user.Department,
		&user.Batch,
		&user.Company,
		&user.Designation,
		&user.Location,
		&user.Bio,
		&user.LinkedIn,
		&user.ResumeLink,
		&user.Skills,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and returns its id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (name, email, password, role, status, department, batch, company,
			designation, location, bio, linkedin, resume_link, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.Status,
		user.Department,
		user.Batch,
		user.Company,
		user.Designation,
		user.Location,
		user.Bio,
		user.LinkedIn,
		user.ResumeLink,
		user.Skills,
	).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by id including projects and education
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	if err := r.loadRelations(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// List retrieves users filtered by role and/or status, empty strings match all
func (r *UserRepository) List(ctx context.Context, role models.RoleType, status models.UserStatus) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users
		WHERE ($1 = '' OR role = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, id DESC`, userColumns)

	rows, err := r.db.Query(ctx, query, string(role), string(status))
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

// ListAdminIDs returns the ids of every admin account
func (r *UserRepository) ListAdminIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM users WHERE role = $1 ORDER BY id`, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("error listing admin ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning admin id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// UpdateProfile replaces the mutable profile fields and relation rows
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE users SET name = $1, department = $2, batch = $3, company = $4,
			designation = $5, location = $6, bio = $7, linkedin = $8,
			resume_link = $9, skills = $10, updated_at = NOW()
		WHERE id = $11`,
		user.Name,
		user.Department,
		user.Batch,
		user.Company,
		user.Designation,
		user.Location,
		user.Bio,
		user.LinkedIn,
		user.ResumeLink,
		user.Skills,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	// Relation rows are replaced wholesale on every profile save
	if _, err := tx.Exec(ctx, `DELETE FROM user_projects WHERE user_id = $1`, user.ID); err != nil {
		return fmt.Errorf("error clearing projects: %w", err)
	}
	for i, project := range user.Projects {
		_, err := tx.Exec(ctx, `
			INSERT INTO user_projects (user_id, title, description, link, position)
			VALUES ($1, $2, $3, $4, $5)`,
			user.ID, project.Title, project.Description, project.Link, i,
		)
		if err != nil {
			return fmt.Errorf("error inserting project: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM user_education WHERE user_id = $1`, user.ID); err != nil {
		return fmt.Errorf("error clearing education: %w", err)
	}
	for i, education := range user.Education {
		_, err := tx.Exec(ctx, `
			INSERT INTO user_education (user_id, institution, degree, major, year, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			user.ID, education.Institution, education.Degree, education.Major, education.Year, i,
		)
		if err != nil {
			return fmt.Errorf("error inserting education: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// UpdateStatus changes an account's approval status
func (r *UserRepository) UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// loadRelations attaches project and education rows to the user
func (r *UserRepository) loadRelations(ctx context.Context, user *models.User) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, description, link, position
		FROM user_projects WHERE user_id = $1 ORDER BY position`, user.ID)
	if err != nil {
		return fmt.Errorf("error loading projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var project models.Project
		if err := rows.Scan(&project.ID, &project.UserID, &project.Title, &project.Description, &project.Link, &project.Position); err != nil {
			return fmt.Errorf("error scanning project: %w", err)
		}
		user.Projects = append(user.Projects, project)
	}
	rows.Close()

	eduRows, err := r.db.Query(ctx, `
		SELECT id, user_id, institution, degree, major, year, position
		FROM user_education WHERE user_id = $1 ORDER BY position`, user.ID)
	if err != nil {
		return fmt.Errorf("error loading education: %w", err)
	}
	defer eduRows.Close()

	for eduRows.Next() {
		var education models.Education
		if err := eduRows.Scan(&education.ID, &education.UserID, &education.Institution, &education.Degree, &education.Major, &education.Year, &education.Position); err != nil {
			return fmt.Errorf("error scanning education: %w", err)
		}
		user.Education = append(user.Education, education)
	}

	return nil
}
