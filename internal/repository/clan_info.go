package repository

import (
	"context"

	"github.com/clansite/api/internal/domain"
)

// PgClanInfoRepository implements ClanInfoRepository using pgx.
type PgClanInfoRepository struct{}

// NewPgClanInfoRepository creates a new PgClanInfoRepository.
func NewPgClanInfoRepository() *PgClanInfoRepository {
	return &PgClanInfoRepository{}
}

// List returns all clan info sections in insertion order.
func (r *PgClanInfoRepository) List(ctx context.Context, db DBTX) ([]domain.ClanInfoSection, error) {
	rows, err := db.Query(ctx,
		`SELECT id, section, title, content, items FROM clan_info ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []domain.ClanInfoSection
	for rows.Next() {
		var s domain.ClanInfoSection
		if err := rows.Scan(&s.ID, &s.Section, &s.Title, &s.Content, &s.Items); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// Create inserts a section and returns the assigned id.
func (r *PgClanInfoRepository) Create(ctx context.Context, db DBTX, section *domain.ClanInfoSection) (int64, error) {
	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO clan_info (section, title, content, items)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		section.Section, section.Title, section.Content, section.Items).Scan(&id)
	return id, err
}

// Update overwrites title, content and items and touches updated_at. The
// section key is immutable after creation.
func (r *PgClanInfoRepository) Update(ctx context.Context, db DBTX, section *domain.ClanInfoSection) error {
	tag, err := db.Exec(ctx,
		`UPDATE clan_info
		 SET title = $1, content = $2, items = $3, updated_at = now()
		 WHERE id = $4`,
		section.Title, section.Content, section.Items, section.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("clan info section", section.ID)
	}
	return nil
}

// Delete removes the row with the given id.
func (r *PgClanInfoRepository) Delete(ctx context.Context, db DBTX, id int64) error {
	_, err := db.Exec(ctx, `DELETE FROM clan_info WHERE id = $1`, id)
	return err
}
