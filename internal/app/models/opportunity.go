package models

import (
	"time"
)

// Opportunity defines a job or mentorship posting based on the 'opportunities' table
type Opportunity struct {
	ID             int64           `json:"id" db:"id"`
	CreatedBy      int64           `json:"createdBy" db:"created_by"`        // Posting alumni's user id
	CreatorName    string          `json:"creatorName" db:"creator_name"`    // Denormalized for listing
	Type           OpportunityType `json:"type" db:"type"`                   // JOB or MENTORSHIP
	Title          string          `json:"title" db:"title"`
	Description    string          `json:"description" db:"description"`
	Company        string          `json:"company" db:"company"`
	Location       string          `json:"location,omitempty" db:"location"`
	RequiredSkills []string        `json:"requiredSkills,omitempty" db:"required_skills"`
	Deadline       *time.Time      `json:"deadline,omitempty" db:"deadline"`
	ApprovalStatus ApprovalStatus  `json:"approvalStatus" db:"approval_status"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}
