package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackTopic is the closed set of feedback categories.
type FeedbackTopic string

const (
	TopicInterviewPerformance FeedbackTopic = "Interview Performance"
	TopicInternshipReview     FeedbackTopic = "Internship Review"
	TopicTechnicalAssessment  FeedbackTopic = "Technical Assessment"
	TopicSoftSkills           FeedbackTopic = "Soft Skills"
)

// Valid reports whether t is a known topic.
func (t FeedbackTopic) Valid() bool {
	switch t {
	case TopicInterviewPerformance, TopicInternshipReview, TopicTechnicalAssessment, TopicSoftSkills:
		return true
	}
	return false
}

// Feedback is a review left for a student by placement staff.
type Feedback struct {
	ID          uuid.UUID     `json:"id"`
	StudentID   uuid.UUID     `json:"student_id"`
	StudentName string        `json:"student_name"`
	Topic       FeedbackTopic `json:"topic"`
	Company     string        `json:"company"`
	Rating      int           `json:"rating"`
	Comments    string        `json:"comments"`
	Reviewer    string        `json:"reviewer"`
	CreatedAt   time.Time     `json:"created_at"`
}
