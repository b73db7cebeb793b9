package models

import (
	"time"
)

// Application defines a student application based on the 'applications' table
type Application struct {
	ID                int64             `json:"id" db:"id"`
	OpportunityID     int64             `json:"opportunityId" db:"opportunity_id"`
	StudentID         int64             `json:"studentId" db:"student_id"`
	StudentName       string            `json:"studentName" db:"student_name"`             // Denormalized for review screens
	StudentDepartment string            `json:"studentDepartment" db:"student_department"` // Denormalized for analytics
	Recommendation    Recommendation    `json:"alumniRecommendation" db:"alumni_recommendation"`
	AlumniComment     string            `json:"alumniComment,omitempty" db:"alumni_comment"`
	FinalStatus       ApplicationStatus `json:"adminFinalStatus" db:"admin_final_status"`
	AppliedAt         time.Time         `json:"appliedAt" db:"applied_at"`
}
