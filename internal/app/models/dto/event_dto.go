package dto

import "time"

// CreateEventRequest represents a new event proposal
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	EventDate   time.Time `json:"eventDate" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location,omitempty"`
}
