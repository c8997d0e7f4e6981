package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/eduhire/placement-be/internal/models"
)

// ListApplicationsByStudent joins applications with their postings for the
// student dashboard, newest first.
func (s *Store) ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.AppliedJob, error) {
	const query = `
		SELECT j.title, j.company, a.status, a.applied_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC;`

	rows, err := s.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := []models.AppliedJob{}
	for rows.Next() {
		var a models.AppliedJob
		if err := rows.Scan(&a.Internship, &a.Company, &a.Status, &a.ApplicationDate); err != nil {
			return nil, err
		}
		applied = append(applied, a)
	}
	return applied, rows.Err()
}

// ApplicationAnalytics aggregates total and per-status counts.
func (s *Store) ApplicationAnalytics(ctx context.Context) (models.ApplicationAnalytics, error) {
	const query = `SELECT status, COUNT(*) FROM applications GROUP BY status;`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return models.ApplicationAnalytics{}, err
	}
	defer rows.Close()

	out := models.ApplicationAnalytics{ByStatus: map[models.ApplicationStatus]int64{}}
	for rows.Next() {
		var status models.ApplicationStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return models.ApplicationAnalytics{}, err
		}
		out.ByStatus[status] = count
		out.Total += count
	}
	return out, rows.Err()
}
