package dto

import (
	"time"

	"github.com/yigit/alumnibridge/internal/app/models"
)

// CreateOpportunityRequest represents a new job or mentorship posting
type CreateOpportunityRequest struct {
	Type           models.OpportunityType `json:"type" binding:"required"`
	Title          string                 `json:"title" binding:"required"`
	Description    string                 `json:"description" binding:"required"`
	Company        string                 `json:"company" binding:"required"`
	Location       string                 `json:"location,omitempty"`
	RequiredSkills []string               `json:"requiredSkills,omitempty"`
	Deadline       *time.Time             `json:"deadline,omitempty"`
}

// UpdateApprovalStatusRequest moderates a posting or event
type UpdateApprovalStatusRequest struct {
	Status models.ApprovalStatus `json:"status" binding:"required"`
}
