package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                          // Unique identifier for the user
	Name        string     `json:"name" db:"name" example:"John Doe"`               // Display name
	Email       string     `json:"email" db:"email" example:"john@college.edu"`     // User's email address
	Password    string     `json:"-" db:"password"`                                 // Hashed password (excluded from JSON)
	Role        RoleType   `json:"role" db:"role" example:"STUDENT"`                // STUDENT, ALUMNI or ADMIN
	Status      UserStatus `json:"status" db:"status" example:"APPROVED"`           // Account approval state
	Department  string     `json:"department,omitempty" db:"department"`            // Academic department (students)
	Batch       string     `json:"batch,omitempty" db:"batch"`                      // Graduation batch, e.g. "2025"
	Company     string     `json:"company,omitempty" db:"company"`                  // Current employer (alumni)
	Designation string     `json:"designation,omitempty" db:"designation"`          // Job title (alumni)
	Location    string     `json:"location,omitempty" db:"location"`                // City / remote
	Bio         string     `json:"bio,omitempty" db:"bio"`                          // Free-form profile text
	LinkedIn    string     `json:"linkedin,omitempty" db:"linkedin"`                // LinkedIn profile URL
	ResumeLink  string     `json:"resumeLink,omitempty" db:"resume_link"`           // External resume URL (students)
	Skills      []string   `json:"skills,omitempty" db:"skills"`                    // Skill tags
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`                       // Timestamp when the user was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`                       // Timestamp when the user was last updated

	Projects  []Project   `json:"projects,omitempty"`  // Relation, no db tag
	Education []Education `json:"education,omitempty"` // Relation, no db tag
}

// Project is a portfolio entry on a student profile
type Project struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"userId" db:"user_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description,omitempty" db:"description"`
	Link        string `json:"link,omitempty" db:"link"`
	Position    int    `json:"-" db:"position"`
}

// Education is a study record on a profile
type Education struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"userId" db:"user_id"`
	Institution string `json:"institution" db:"institution"`
	Degree      string `json:"degree,omitempty" db:"degree"`
	Major       string `json:"major,omitempty" db:"major"`
	Year        string `json:"year,omitempty" db:"year"`
	Position    int    `json:"-" db:"position"`
}
