package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobOpen   JobStatus = "Open"
	JobClosed JobStatus = "Closed"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	return s == JobOpen || s == JobClosed
}

// Job is a placement or internship posting.
type Job struct {
	ID             uuid.UUID `json:"id"`
	PostedBy       uuid.UUID `json:"posted_by"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Description    string    `json:"description"`
	MinCGPA        float64   `json:"min_cgpa"`
	RequiredSkills []string  `json:"required_skills"`
	Status         JobStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
