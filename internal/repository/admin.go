package repository

import (
	"context"
	"errors"

	"github.com/clansite/api/internal/domain"
	"github.com/jackc/pgx/v5"
)

// PgAdminRepository implements AdminRepository using pgx.
type PgAdminRepository struct{}

// NewPgAdminRepository creates a new PgAdminRepository.
func NewPgAdminRepository() *PgAdminRepository {
	return &PgAdminRepository{}
}

// FindByUsername returns an admin by username, or nil if not found.
func (r *PgAdminRepository) FindByUsername(ctx context.Context, db DBTX, username string) (*domain.Admin, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM admins WHERE username = $1`, username)

	a := &domain.Admin{}
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new admin and returns the assigned id.
func (r *PgAdminRepository) Create(ctx context.Context, db DBTX, username, passwordHash string) (int64, error) {
	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO admins (username, password_hash) VALUES ($1, $2) RETURNING id`,
		username, passwordHash).Scan(&id)
	return id, err
}
