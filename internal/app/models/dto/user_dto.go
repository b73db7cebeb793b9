package dto

import "github.com/yigit/alumnibridge/internal/app/models"

// UpdateProfileRequest represents a full profile replacement
type UpdateProfileRequest struct {
	Name        string             `json:"name" binding:"required"`
	Department  string             `json:"department,omitempty"`
	Batch       string             `json:"batch,omitempty"`
	Company     string             `json:"company,omitempty"`
	Designation string             `json:"designation,omitempty"`
	Location    string             `json:"location,omitempty"`
	Bio         string             `json:"bio,omitempty"`
	LinkedIn    string             `json:"linkedin,omitempty"`
	ResumeLink  string             `json:"resumeLink,omitempty"`
	Skills      []string           `json:"skills,omitempty"`
	Projects    []ProjectRequest   `json:"projects,omitempty"`
	Education   []EducationRequest `json:"education,omitempty"`
}

// ProjectRequest is a portfolio entry in a profile update
type ProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// EducationRequest is a study record in a profile update
type EducationRequest struct {
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree,omitempty"`
	Major       string `json:"major,omitempty"`
	Year        string `json:"year,omitempty"`
}

// UpdateUserStatusRequest changes an account's approval status
type UpdateUserStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required"`
}

// UserListQuery filters the admin user listing
type UserListQuery struct {
	Role   string `form:"role"`
	Status string `form:"status"`
}
