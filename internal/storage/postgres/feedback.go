package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/eduhire/placement-be/internal/models"
)

const feedbackColumns = "id, student_id, student_name, topic, company, rating, comments, reviewer, created_at"

// ListFeedback returns the most recent entries, newest first.
func (s *Store) ListFeedback(ctx context.Context, limit int) ([]models.Feedback, error) {
	const query = `SELECT ` + feedbackColumns + ` FROM feedback ORDER BY created_at DESC LIMIT $1;`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.StudentID, &f.StudentName, &f.Topic,
			&f.Company, &f.Rating, &f.Comments, &f.Reviewer, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// CreateFeedback inserts a review.
func (s *Store) CreateFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	const query = `
		INSERT INTO feedback (id, student_id, student_name, topic, company, rating, comments, reviewer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + feedbackColumns + `;`

	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	row := s.pool.QueryRow(ctx, query,
		fb.ID, fb.StudentID, fb.StudentName, fb.Topic, fb.Company,
		fb.Rating, fb.Comments, fb.Reviewer)
	var out models.Feedback
	err := row.Scan(&out.ID, &out.StudentID, &out.StudentName, &out.Topic,
		&out.Company, &out.Rating, &out.Comments, &out.Reviewer, &out.CreatedAt)
	if err != nil {
		return models.Feedback{}, err
	}
	return out, nil
}
