package models

import (
	"time"
)

// Event defines an alumni-proposed event based on the 'events' table
type Event struct {
	ID             int64          `json:"id" db:"id"`
	Title          string         `json:"title" db:"title"`
	EventDate      time.Time      `json:"eventDate" db:"event_date"`
	Description    string         `json:"description" db:"description"`
	Location       string         `json:"location,omitempty" db:"location"`
	CreatedBy      int64          `json:"createdBy" db:"created_by"`
	CreatorName    string         `json:"creatorName" db:"creator_name"` // Denormalized for listing
	ApprovalStatus ApprovalStatus `json:"approvalStatus" db:"approval_status"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`

	Registrations []EventRegistration `json:"registrations,omitempty"` // Relation, no db tag
}

// EventRegistration records a student attending an event
type EventRegistration struct {
	ID           int64     `json:"id" db:"id"`
	EventID      int64     `json:"eventId" db:"event_id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
}
