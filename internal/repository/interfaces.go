package repository

import (
	"context"

	"github.com/clansite/api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// AdminRepository provides access to admins.
type AdminRepository interface {
	// FindByUsername returns an admin by username, or nil if not found.
	FindByUsername(ctx context.Context, db DBTX, username string) (*domain.Admin, error)

	// Create inserts a new admin and returns the assigned id.
	Create(ctx context.Context, db DBTX, username, passwordHash string) (int64, error)
}

// NewsRepository provides access to news.
type NewsRepository interface {
	// List returns all news items ordered by date DESC, created_at DESC.
	List(ctx context.Context, db DBTX) ([]domain.NewsItem, error)

	// Create inserts a news item and returns the assigned id.
	Create(ctx context.Context, db DBTX, item *domain.NewsItem) (int64, error)

	// Update overwrites all mutable fields of the item and touches
	// updated_at. Returns domain.ErrNotFound if no row matched.
	Update(ctx context.Context, db DBTX, item *domain.NewsItem) error

	// Delete removes the row with the given id. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, db DBTX, id int64) error
}

// VipTierRepository provides access to vip_tiers.
type VipTierRepository interface {
	// List returns all tiers ordered by sort_order.
	List(ctx context.Context, db DBTX) ([]domain.VipTier, error)

	// Create inserts a tier and returns the assigned id.
	Create(ctx context.Context, db DBTX, tier *domain.VipTier) (int64, error)

	// Update overwrites all mutable fields of the tier and touches
	// updated_at. Returns domain.ErrNotFound if no row matched.
	Update(ctx context.Context, db DBTX, tier *domain.VipTier) error

	// Delete removes the row with the given id.
	Delete(ctx context.Context, db DBTX, id int64) error
}

// ClanInfoRepository provides access to clan_info.
type ClanInfoRepository interface {
	// List returns all clan info sections in insertion order.
	List(ctx context.Context, db DBTX) ([]domain.ClanInfoSection, error)

	// Create inserts a section and returns the assigned id.
	Create(ctx context.Context, db DBTX, section *domain.ClanInfoSection) (int64, error)

	// Update overwrites title, content and items and touches updated_at.
	// Returns domain.ErrNotFound if no row matched.
	Update(ctx context.Context, db DBTX, section *domain.ClanInfoSection) error

	// Delete removes the row with the given id.
	Delete(ctx context.Context, db DBTX, id int64) error
}

// ListingRepository provides access to listings.
type ListingRepository interface {
	// ListByStatus returns listings with the given status ordered by
	// created_at DESC.
	ListByStatus(ctx context.Context, db DBTX, status string) ([]domain.Listing, error)

	// Create inserts a listing with status pending and returns the
	// assigned id. Any status on the input is ignored.
	Create(ctx context.Context, db DBTX, listing *domain.Listing) (int64, error)

	// UpdateStatus overwrites the listing status and touches updated_at.
	// Returns domain.ErrNotFound if no row matched.
	UpdateStatus(ctx context.Context, db DBTX, id int64, status string) error

	// Delete removes the row with the given id. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, db DBTX, id int64) error
}
