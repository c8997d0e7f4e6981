// Package memory provides an in-process storage.Store used by tests. The
// mutex makes the duplicate-identity check and insert atomic, mirroring the
// database's unique constraints.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type Store struct {
	mu           sync.Mutex
	users        map[uuid.UUID]models.User
	jobs         map[uuid.UUID]models.Job
	applications []models.Application
	feedback     []models.Feedback
	workLogs     []models.WorkLog
}

func New() *Store {
	return &Store{
		users: map[uuid.UUID]models.User{},
		jobs:  map[uuid.UUID]models.Job{},
	}
}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) GetUserByID(_ context.Context, id uuid.UUID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) UpdateUser(_ context.Context, id uuid.UUID, upd storage.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.Skills != nil {
		user.Skills = append([]string(nil), (*upd.Skills)...)
	}
	if upd.PasswordHash != nil {
		user.PasswordHash = *upd.PasswordHash
	}
	user.UpdatedAt = time.Now()
	s.users[id] = user
	return user, nil
}

// DeleteUser exists so tests can exercise the "valid token, user gone" path.
func (s *Store) DeleteUser(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func (s *Store) CreateJob(_ context.Context, job models.Job) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = models.JobOpen
	}
	job.CreatedAt = time.Now()
	s.jobs[job.ID] = job
	return job, nil
}

func (s *Store) GetJobByID(_ context.Context, id uuid.UUID) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, storage.ErrNotFound
	}
	return job, nil
}

func (s *Store) ListOpenJobs(_ context.Context, filter storage.JobFilter) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := []models.Job{}
	for _, job := range s.jobs {
		if job.Status != models.JobOpen {
			continue
		}
		if filter.MinCGPA != nil && job.MinCGPA > *filter.MinCGPA {
			continue
		}
		if filter.Skill != "" && !contains(job.RequiredSkills, filter.Skill) {
			continue
		}
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

func (s *Store) UpdateJobStatus(_ context.Context, id uuid.UUID, status models.JobStatus) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, storage.ErrNotFound
	}
	job.Status = status
	s.jobs[id] = job
	return job, nil
}

// AddApplication seeds an application for tests.
func (s *Store) AddApplication(app models.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	if app.Status == "" {
		app.Status = models.ApplicationPending
	}
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}
	s.applications = append(s.applications, app)
}

func (s *Store) ListApplicationsByStudent(_ context.Context, studentID uuid.UUID) ([]models.AppliedJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := []models.AppliedJob{}
	for _, app := range s.applications {
		if app.StudentID != studentID {
			continue
		}
		entry := models.AppliedJob{Status: app.Status, ApplicationDate: app.AppliedAt}
		if job, ok := s.jobs[app.JobID]; ok {
			entry.Internship = job.Title
			entry.Company = job.Company
		}
		applied = append(applied, entry)
	}
	sort.Slice(applied, func(i, j int) bool {
		return applied[i].ApplicationDate.After(applied[j].ApplicationDate)
	})
	return applied, nil
}

func (s *Store) ApplicationAnalytics(_ context.Context) (models.ApplicationAnalytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := models.ApplicationAnalytics{ByStatus: map[models.ApplicationStatus]int64{}}
	for _, app := range s.applications {
		out.ByStatus[app.Status]++
		out.Total++
	}
	return out, nil
}

func (s *Store) ListFeedback(_ context.Context, limit int) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := append([]models.Feedback(nil), s.feedback...)
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) CreateFeedback(_ context.Context, fb models.Feedback) (models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	fb.CreatedAt = time.Now()
	s.feedback = append(s.feedback, fb)
	return fb, nil
}

func (s *Store) ListWorkLogs(_ context.Context, userID *uuid.UUID, limit int) ([]models.WorkLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := []models.WorkLog{}
	for _, l := range s.workLogs {
		if userID != nil && (l.UserID == nil || *l.UserID != *userID) {
			continue
		}
		logs = append(logs, l)
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (s *Store) CreateWorkLog(_ context.Context, entry models.WorkLog) (models.WorkLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	s.workLogs = append(s.workLogs, entry)
	return entry, nil
}

func (s *Store) DeleteWorkLog(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.workLogs {
		if l.ID == id {
			s.workLogs = append(s.workLogs[:i], s.workLogs[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
