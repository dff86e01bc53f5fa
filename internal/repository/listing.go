package repository

import (
	"context"

	"github.com/clansite/api/internal/domain"
)

// PgListingRepository implements ListingRepository using pgx.
type PgListingRepository struct{}

// NewPgListingRepository creates a new PgListingRepository.
func NewPgListingRepository() *PgListingRepository {
	return &PgListingRepository{}
}

// ListByStatus returns listings with the given status, newest first.
func (r *PgListingRepository) ListByStatus(ctx context.Context, db DBTX, status string) ([]domain.Listing, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, game_mode, player_count, discord_tag,
		        image_url, status, created_at, updated_at
		 FROM listings
		 WHERE status = $1
		 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.GameMode, &l.PlayerCount,
			&l.DiscordTag, &l.ImageURL, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Create inserts a listing. Status is forced to pending server-side; any
// status on the input is ignored.
func (r *PgListingRepository) Create(ctx context.Context, db DBTX, listing *domain.Listing) (int64, error) {
	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO listings (title, description, game_mode, player_count, discord_tag, image_url, status)
		 VALUES ($1, $2, $3, $4, $5, $6, 'pending') RETURNING id`,
		listing.Title, listing.Description, listing.GameMode, listing.PlayerCount,
		listing.DiscordTag, listing.ImageURL).Scan(&id)
	return id, err
}

// UpdateStatus overwrites the listing status and touches updated_at.
func (r *PgListingRepository) UpdateStatus(ctx context.Context, db DBTX, id int64, status string) error {
	tag, err := db.Exec(ctx,
		`UPDATE listings SET status = $1, updated_at = now() WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("listing", id)
	}
	return nil
}

// Delete removes the row with the given id.
func (r *PgListingRepository) Delete(ctx context.Context, db DBTX, id int64) error {
	_, err := db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	return err
}
