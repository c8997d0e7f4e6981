package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkLogType categorizes a time entry.
type WorkLogType string

const (
	LogWork     WorkLogType = "Work"
	LogMeeting  WorkLogType = "Meeting"
	LogResearch WorkLogType = "Research"
	LogReview   WorkLogType = "Review"
)

// Valid reports whether t is a known log type.
func (t WorkLogType) Valid() bool {
	switch t {
	case LogWork, LogMeeting, LogResearch, LogReview:
		return true
	}
	return false
}

// WorkLog records time spent on placement work. UserID is optional; anonymous
// entries are allowed.
type WorkLog struct {
	ID             uuid.UUID   `json:"id"`
	UserID         *uuid.UUID  `json:"userId,omitempty"`
	TimeSpentHours float64     `json:"timeSpentHours"`
	Type           WorkLogType `json:"type"`
	TaskTicket     string      `json:"taskTicket,omitempty"`
	Comment        string      `json:"comment,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}
