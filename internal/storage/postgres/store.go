package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduhire/placement-be/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for the placement domain.
type Store struct {
	pool *pgxpool.Pool
}

// New connects a pool and runs migrations.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			skills TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY,
			posted_by UUID NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			description TEXT NOT NULL,
			min_cgpa DOUBLE PRECISION NOT NULL DEFAULT 0,
			required_skills TEXT[] NOT NULL DEFAULT '{}',
			status TEXT NOT NULL DEFAULT 'Open',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS applications (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES users(id),
			job_id UUID NOT NULL REFERENCES jobs(id),
			status TEXT NOT NULL DEFAULT 'Pending',
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES users(id),
			student_name TEXT NOT NULL,
			topic TEXT NOT NULL,
			company TEXT NOT NULL,
			rating INT NOT NULL,
			comments TEXT NOT NULL,
			reviewer TEXT NOT NULL DEFAULT 'Placement Officer',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS work_logs (
			id UUID PRIMARY KEY,
			user_id UUID REFERENCES users(id),
			time_spent_hours DOUBLE PRECISION NOT NULL,
			type TEXT NOT NULL,
			task_ticket TEXT NOT NULL DEFAULT '',
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS applications_student_idx ON applications (student_id);`,
		`CREATE INDEX IF NOT EXISTS jobs_status_idx ON jobs (status);`,
		`CREATE INDEX IF NOT EXISTS work_logs_user_idx ON work_logs (user_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
