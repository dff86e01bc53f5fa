package repository

import (
	"context"

	"github.com/clansite/api/internal/domain"
)

// PgNewsRepository implements NewsRepository using pgx.
type PgNewsRepository struct{}

// NewPgNewsRepository creates a new PgNewsRepository.
func NewPgNewsRepository() *PgNewsRepository {
	return &PgNewsRepository{}
}

// List returns all news items, newest date first, ties broken by creation
// time.
func (r *PgNewsRepository) List(ctx context.Context, db DBTX) ([]domain.NewsItem, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, date, category, content, image_url, is_important, created_at, updated_at
		 FROM news
		 ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.NewsItem
	for rows.Next() {
		var n domain.NewsItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Date, &n.Category, &n.Content,
			&n.ImageURL, &n.IsImportant, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// Create inserts a news item and returns the assigned id.
func (r *PgNewsRepository) Create(ctx context.Context, db DBTX, item *domain.NewsItem) (int64, error) {
	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO news (title, date, category, content, image_url, is_important)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		item.Title, item.Date, item.Category, item.Content, item.ImageURL, item.IsImportant).Scan(&id)
	return id, err
}

// Update overwrites all mutable fields and touches updated_at.
func (r *PgNewsRepository) Update(ctx context.Context, db DBTX, item *domain.NewsItem) error {
	tag, err := db.Exec(ctx,
		`UPDATE news
		 SET title = $1, date = $2, category = $3, content = $4,
		     image_url = $5, is_important = $6, updated_at = now()
		 WHERE id = $7`,
		item.Title, item.Date, item.Category, item.Content, item.ImageURL, item.IsImportant, item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("news item", item.ID)
	}
	return nil
}

// Delete removes the row with the given id.
func (r *PgNewsRepository) Delete(ctx context.Context, db DBTX, id int64) error {
	_, err := db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	return err
}
