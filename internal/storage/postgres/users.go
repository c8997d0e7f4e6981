package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/storage"
)

const userColumns = "id, name, username, email, password_hash, role, phone, bio, skills, created_at, updated_at"

// CreateUser inserts a new user row. The unique constraints on email and
// username make the existence check and the insert a single atomic step.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (id, name, username, email, password_hash, role, phone, bio, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns + `;`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	row := s.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.Username, user.Email, user.PasswordHash,
		user.Role, user.Phone, user.Bio, user.Skills)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// GetUserByID fetches a user by primary key.
func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// FindByEmail fetches a user by email address. Emails are stored lowercased.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(s.pool.QueryRow(ctx, query, email))
}

// UpdateUser applies the non-nil fields of upd and returns the updated row.
func (s *Store) UpdateUser(ctx context.Context, id uuid.UUID, upd storage.UserUpdate) (models.User, error) {
	const query = `
		UPDATE users SET
			name = COALESCE($2, name),
			phone = COALESCE($3, phone),
			bio = COALESCE($4, bio),
			skills = COALESCE($5, skills),
			password_hash = COALESCE($6, password_hash),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `;`

	row := s.pool.QueryRow(ctx, query, id, upd.Name, upd.Phone, upd.Bio, upd.Skills, upd.PasswordHash)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash,
		&u.Role, &u.Phone, &u.Bio, &u.Skills, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}
