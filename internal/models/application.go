package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus tracks how far an application has progressed.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "Pending"
	ApplicationReviewed  ApplicationStatus = "Reviewed"
	ApplicationInterview ApplicationStatus = "Interview"
	ApplicationRejected  ApplicationStatus = "Rejected"
	ApplicationHired     ApplicationStatus = "Hired"
)

// Application links a student to a job posting.
type Application struct {
	ID        uuid.UUID         `json:"id"`
	StudentID uuid.UUID         `json:"student_id"`
	JobID     uuid.UUID         `json:"job_id"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"applied_at"`
}

// AppliedJob is the dashboard projection of an application joined with its
// posting's title and company.
type AppliedJob struct {
	Internship      string            `json:"internship"`
	Company         string            `json:"company"`
	Status          ApplicationStatus `json:"status"`
	ApplicationDate time.Time         `json:"applicationDate"`
}

// ApplicationAnalytics holds aggregate counts for the analytics board.
type ApplicationAnalytics struct {
	Total    int64                       `json:"total"`
	ByStatus map[ApplicationStatus]int64 `json:"byStatus"`
}
