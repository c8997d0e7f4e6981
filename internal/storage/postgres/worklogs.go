package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/storage"
)

const workLogColumns = "id, user_id, time_spent_hours, type, task_ticket, comment, created_at"

// ListWorkLogs returns recent entries, optionally filtered by user.
func (s *Store) ListWorkLogs(ctx context.Context, userID *uuid.UUID, limit int) ([]models.WorkLog, error) {
	const query = `
		SELECT ` + workLogColumns + ` FROM work_logs
		WHERE ($1::uuid IS NULL OR user_id = $1)
		ORDER BY created_at DESC LIMIT $2;`

	rows, err := s.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.WorkLog{}
	for rows.Next() {
		var l models.WorkLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.TimeSpentHours, &l.Type,
			&l.TaskTicket, &l.Comment, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// CreateWorkLog inserts a time entry.
func (s *Store) CreateWorkLog(ctx context.Context, entry models.WorkLog) (models.WorkLog, error) {
	const query = `
		INSERT INTO work_logs (id, user_id, time_spent_hours, type, task_ticket, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + workLogColumns + `;`

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	row := s.pool.QueryRow(ctx, query,
		entry.ID, entry.UserID, entry.TimeSpentHours, entry.Type,
		entry.TaskTicket, entry.Comment)
	var out models.WorkLog
	err := row.Scan(&out.ID, &out.UserID, &out.TimeSpentHours, &out.Type,
		&out.TaskTicket, &out.Comment, &out.CreatedAt)
	if err != nil {
		return models.WorkLog{}, err
	}
	return out, nil
}

// DeleteWorkLog removes an entry by id.
func (s *Store) DeleteWorkLog(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM work_logs WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
