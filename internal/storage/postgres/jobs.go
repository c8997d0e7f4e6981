package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/storage"
)

const jobColumns = "id, posted_by, title, company, description, min_cgpa, required_skills, status, created_at"

// CreateJob inserts a new posting.
func (s *Store) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	const query = `
		INSERT INTO jobs (id, posted_by, title, company, description, min_cgpa, required_skills, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + jobColumns + `;`

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = models.JobOpen
	}
	row := s.pool.QueryRow(ctx, query,
		job.ID, job.PostedBy, job.Title, job.Company, job.Description,
		job.MinCGPA, job.RequiredSkills, job.Status)
	return scanJob(row)
}

// GetJobByID fetches a posting by primary key.
func (s *Store) GetJobByID(ctx context.Context, id uuid.UUID) (models.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1;`
	return scanJob(s.pool.QueryRow(ctx, query, id))
}

// ListOpenJobs returns open postings, newest first, honoring the filter.
func (s *Store) ListOpenJobs(ctx context.Context, filter storage.JobFilter) ([]models.Job, error) {
	const query = `
		SELECT ` + jobColumns + ` FROM jobs
		WHERE status = 'Open'
		AND ($1::double precision IS NULL OR min_cgpa <= $1)
		AND ($2::text IS NULL OR $2 = ANY(required_skills))
		ORDER BY created_at DESC;`

	var skill *string
	if filter.Skill != "" {
		skill = &filter.Skill
	}
	rows, err := s.pool.Query(ctx, query, filter.MinCGPA, skill)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// UpdateJobStatus flips a posting between Open and Closed.
func (s *Store) UpdateJobStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (models.Job, error) {
	const query = `UPDATE jobs SET status = $2 WHERE id = $1 RETURNING ` + jobColumns + `;`
	return scanJob(s.pool.QueryRow(ctx, query, id, status))
}

func scanJob(row pgx.Row) (models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.PostedBy, &j.Title, &j.Company, &j.Description,
		&j.MinCGPA, &j.RequiredSkills, &j.Status, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Job{}, storage.ErrNotFound
		}
		return models.Job{}, err
	}
	return j, nil
}
