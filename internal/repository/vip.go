package repository

import (
	"context"

	"github.com/clansite/api/internal/domain"
)

// PgVipTierRepository implements VipTierRepository using pgx.
type PgVipTierRepository struct{}

// NewPgVipTierRepository creates a new PgVipTierRepository.
func NewPgVipTierRepository() *PgVipTierRepository {
	return &PgVipTierRepository{}
}

// List returns all tiers in display order.
func (r *PgVipTierRepository) List(ctx context.Context, db DBTX) ([]domain.VipTier, error) {
	rows, err := db.Query(ctx,
		`SELECT id, tier_id, name, price, duration, color, is_popular, features, sort_order
		 FROM vip_tiers
		 ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.VipTier
	for rows.Next() {
		var t domain.VipTier
		if err := rows.Scan(&t.ID, &t.TierID, &t.Name, &t.Price, &t.Duration,
			&t.Color, &t.IsPopular, &t.Features, &t.SortOrder); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

// Create inserts a tier and returns the assigned id.
func (r *PgVipTierRepository) Create(ctx context.Context, db DBTX, tier *domain.VipTier) (int64, error) {
	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO vip_tiers (tier_id, name, price, duration, color, is_popular, features, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		tier.TierID, tier.Name, tier.Price, tier.Duration, tier.Color,
		tier.IsPopular, tier.Features, tier.SortOrder).Scan(&id)
	return id, err
}

// Update overwrites all mutable fields and touches updated_at. tier_id is
// immutable after creation.
func (r *PgVipTierRepository) Update(ctx context.Context, db DBTX, tier *domain.VipTier) error {
	tag, err := db.Exec(ctx,
		`UPDATE vip_tiers
		 SET name = $1, price = $2, duration = $3, color = $4,
		     is_popular = $5, features = $6, sort_order = $7, updated_at = now()
		 WHERE id = $8`,
		tier.Name, tier.Price, tier.Duration, tier.Color,
		tier.IsPopular, tier.Features, tier.SortOrder, tier.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("vip tier", tier.ID)
	}
	return nil
}

// Delete removes the row with the given id.
func (r *PgVipTierRepository) Delete(ctx context.Context, db DBTX, id int64) error {
	_, err := db.Exec(ctx, `DELETE FROM vip_tiers WHERE id = $1`, id)
	return err
}
