package models

import (
	"time"
)

// Notification defines an in-app message based on the 'notifications' table
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	Severity  Severity  `json:"severity" db:"severity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
