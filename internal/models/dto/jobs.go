package dto

import "github.com/eduhire/placement-be/internal/models"

type CreateJobRequest struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	MinCGPA        float64  `json:"minCGPA"`
	RequiredSkills []string `json:"requiredSkills"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status"`
}

type AppliedRequest struct {
	Email string `json:"email"`
}

type AppliedResponse struct {
	Applications []models.AppliedJob `json:"applications"`
}

type CreateFeedbackRequest struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Topic       string `json:"topic"`
	Company     string `json:"company"`
	Rating      int    `json:"rating"`
	Comments    string `json:"comments"`
	Reviewer    string `json:"reviewer"`
}

type CreateLogRequest struct {
	UserID         string  `json:"userId"`
	TimeSpentHours float64 `json:"timeSpentHours"`
	Type           string  `json:"type"`
	TaskTicket     string  `json:"taskTicket"`
	Comment        string  `json:"comment"`
}
