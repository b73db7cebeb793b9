package dto

import "github.com/yigit/alumnibridge/internal/app/models"

// CreateApplicationRequest represents a student applying to an opportunity
type CreateApplicationRequest struct {
	OpportunityID int64 `json:"opportunityId" binding:"required,min=1"`
}

// RecommendRequest records the posting alumni's screening verdict
type RecommendRequest struct {
	Recommendation models.Recommendation `json:"recommendation" binding:"required"`
	Comment        string                `json:"comment,omitempty"`
}

// FinalizeRequest records the admin's final decision
type FinalizeRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

// ApplicationListQuery filters the application listing
type ApplicationListQuery struct {
	OpportunityID int64 `form:"opportunityId"`
	StudentID     int64 `form:"studentId"`
}
