package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/eduhire/placement-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on email or username.
var ErrAlreadyExists = errors.New("record already exists")

// UserUpdate carries the profile fields to change. Nil means "leave as is".
// PasswordHash is set only when the caller received a new plaintext in the
// same request; stored hashes are never re-hashed.
type UserUpdate struct {
	Name         *string
	Phone        *string
	Bio          *string
	Skills       *[]string
	PasswordHash *string
}

// UserStore owns the User record. Uniqueness of email and username is
// enforced by the store itself so concurrent registrations cannot race.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, upd UserUpdate) (models.User, error)
}

// JobFilter narrows ListOpenJobs. MinCGPA keeps postings whose minimum CGPA
// does not exceed the given value; Skill keeps postings requiring the skill.
type JobFilter struct {
	MinCGPA *float64
	Skill   string
}

type JobStore interface {
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	GetJobByID(ctx context.Context, id uuid.UUID) (models.Job, error)
	ListOpenJobs(ctx context.Context, filter JobFilter) ([]models.Job, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (models.Job, error)
}

type ApplicationStore interface {
	ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.AppliedJob, error)
	ApplicationAnalytics(ctx context.Context) (models.ApplicationAnalytics, error)
}

type FeedbackStore interface {
	ListFeedback(ctx context.Context, limit int) ([]models.Feedback, error)
	CreateFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error)
}

type WorkLogStore interface {
	ListWorkLogs(ctx context.Context, userID *uuid.UUID, limit int) ([]models.WorkLog, error)
	CreateWorkLog(ctx context.Context, entry models.WorkLog) (models.WorkLog, error)
	DeleteWorkLog(ctx context.Context, id uuid.UUID) error
}

// Store is the full persistence surface the server wires up.
type Store interface {
	UserStore
	JobStore
	ApplicationStore
	FeedbackStore
	WorkLogStore
}
