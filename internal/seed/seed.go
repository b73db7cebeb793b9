package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/alumnibridge/internal/app/models"
	appRepos "github.com/yigit/alumnibridge/internal/app/repositories"
	"github.com/yigit/alumnibridge/internal/pkg/auth"
)

// defaultPassword is shared by all demo accounts
const defaultPassword = "password123"

// CreateDefaultData seeds demo accounts, postings and an event on an
// empty database. A database that already has users is left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	opportunityRepo := appRepos.NewOpportunityRepository(dbPool)
	eventRepo := appRepos.NewEventRepository(dbPool)

	existing, err := userRepo.List(ctx, "", "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Msg("Database already seeded, skipping default data")
		return nil
	}

	lgr.Info().Msg("Seeding default data...")

	hashed, err := auth.HashPassword(defaultPassword)
	if err != nil {
		return err
	}

	adminID, err := userRepo.Create(ctx, &appModels.User{
		Name:     "Super Admin",
		Email:    "admin@college.edu",
		Password: hashed,
		Role:     appModels.RoleAdmin,
		Status:   appModels.UserStatusApproved,
	})
	if err != nil {
		return err
	}

	alumniID, err := userRepo.Create(ctx, &appModels.User{
		Name:        "John Doe",
		Email:       "john@alumni.com",
		Password:    hashed,
		Role:        appModels.RoleAlumni,
		Status:      appModels.UserStatusApproved,
		Company:     "Google",
		Designation: "Senior Engineer",
		Batch:       "2018",
	})
	if err != nil {
		return err
	}

	_, err = userRepo.Create(ctx, &appModels.User{
		Name:     "Sarah Connor",
		Email:    "sarah@alumni.com",
		Password: hashed,
		Role:     appModels.RoleAlumni,
		Status:   appModels.UserStatusPending,
		Company:  "Cyberdyne",
	})
	if err != nil {
		return err
	}

	_, err = userRepo.Create(ctx, &appModels.User{
		Name:       "Alice Smith",
		Email:      "alice@student.com",
		Password:   hashed,
		Role:       appModels.RoleStudent,
		Status:     appModels.UserStatusApproved,
		Department: "Computer Science",
		Batch:      "2025",
	})
	if err != nil {
		return err
	}

	deadline := time.Now().AddDate(0, 1, 0)
	approvedOpportunity := &appModels.Opportunity{
		CreatedBy:      alumniID,
		CreatorName:    "John Doe",
		Type:           appModels.OpportunityJob,
		Title:          "Frontend Engineer",
		Description:    "Build modern web interfaces with our platform team.",
		Company:        "Google",
		Location:       "Bangalore",
		RequiredSkills: []string{"React", "TypeScript"},
		Deadline:       &deadline,
		ApprovalStatus: appModels.ApprovalApproved,
	}
	if _, err := opportunityRepo.Create(ctx, approvedOpportunity); err != nil {
		return err
	}

	pendingOpportunity := &appModels.Opportunity{
		CreatedBy:      alumniID,
		CreatorName:    "John Doe",
		Type:           appModels.OpportunityMentorship,
		Title:          "Career Mentorship Program",
		Description:    "One-on-one guidance for final year students.",
		Company:        "Google",
		ApprovalStatus: appModels.ApprovalPending,
	}
	if _, err := opportunityRepo.Create(ctx, pendingOpportunity); err != nil {
		return err
	}

	event := &appModels.Event{
		Title:          "Tech Talk: Scaling Systems",
		EventDate:      time.Now().AddDate(0, 0, 14),
		Description:    "Alumni share lessons from building large scale systems.",
		Location:       "Main Auditorium",
		CreatedBy:      alumniID,
		CreatorName:    "John Doe",
		ApprovalStatus: appModels.ApprovalApproved,
	}
	if _, err := eventRepo.Create(ctx, event); err != nil {
		return err
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default data seeded")
	return nil
}
