package handler

import (
	"context"
	"time"

	"github.com/clansite/api/internal/domain"
	"github.com/clansite/api/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repository fakes. They ignore the DBTX argument, so handlers
// under test are constructed with a nil db.

type fakeAdminRepo struct {
	admins []domain.Admin
	nextID int64
}

func (f *fakeAdminRepo) FindByUsername(ctx context.Context, db repository.DBTX, username string) (*domain.Admin, error) {
	for i := range f.admins {
		if f.admins[i].Username == username {
			a := f.admins[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) Create(ctx context.Context, db repository.DBTX, username, passwordHash string) (int64, error) {
	for i := range f.admins {
		if f.admins[i].Username == username {
			return 0, &pgconn.PgError{Code: "23505", ConstraintName: "admins_username_key"}
		}
	}
	f.nextID++
	f.admins = append(f.admins, domain.Admin{
		ID:           f.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	})
	return f.nextID, nil
}

type fakeNewsRepo struct {
	items  []domain.NewsItem
	nextID int64
}

func (f *fakeNewsRepo) List(ctx context.Context, db repository.DBTX) ([]domain.NewsItem, error) {
	out := make([]domain.NewsItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeNewsRepo) Create(ctx context.Context, db repository.DBTX, item *domain.NewsItem) (int64, error) {
	f.nextID++
	stored := *item
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.items = append(f.items, stored)
	return f.nextID, nil
}

func (f *fakeNewsRepo) Update(ctx context.Context, db repository.DBTX, item *domain.NewsItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			stored := *item
			stored.CreatedAt = f.items[i].CreatedAt
			stored.UpdatedAt = time.Now()
			f.items[i] = stored
			return nil
		}
	}
	return domain.ErrNotFound("news item", item.ID)
}

func (f *fakeNewsRepo) Delete(ctx context.Context, db repository.DBTX, id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeVipRepo struct {
	tiers  []domain.VipTier
	nextID int64
}

func (f *fakeVipRepo) List(ctx context.Context, db repository.DBTX) ([]domain.VipTier, error) {
	out := make([]domain.VipTier, len(f.tiers))
	copy(out, f.tiers)
	return out, nil
}

func (f *fakeVipRepo) Create(ctx context.Context, db repository.DBTX, tier *domain.VipTier) (int64, error) {
	f.nextID++
	stored := *tier
	stored.ID = f.nextID
	f.tiers = append(f.tiers, stored)
	return f.nextID, nil
}

func (f *fakeVipRepo) Update(ctx context.Context, db repository.DBTX, tier *domain.VipTier) error {
	for i := range f.tiers {
		if f.tiers[i].ID == tier.ID {
			stored := *tier
			stored.TierID = f.tiers[i].TierID
			f.tiers[i] = stored
			return nil
		}
	}
	return domain.ErrNotFound("vip tier", tier.ID)
}

func (f *fakeVipRepo) Delete(ctx context.Context, db repository.DBTX, id int64) error {
	for i := range f.tiers {
		if f.tiers[i].ID == id {
			f.tiers = append(f.tiers[:i], f.tiers[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeClanRepo struct {
	sections []domain.ClanInfoSection
	nextID   int64
}

func (f *fakeClanRepo) List(ctx context.Context, db repository.DBTX) ([]domain.ClanInfoSection, error) {
	out := make([]domain.ClanInfoSection, len(f.sections))
	copy(out, f.sections)
	return out, nil
}

func (f *fakeClanRepo) Create(ctx context.Context, db repository.DBTX, section *domain.ClanInfoSection) (int64, error) {
	f.nextID++
	stored := *section
	stored.ID = f.nextID
	f.sections = append(f.sections, stored)
	return f.nextID, nil
}

func (f *fakeClanRepo) Update(ctx context.Context, db repository.DBTX, section *domain.ClanInfoSection) error {
	for i := range f.sections {
		if f.sections[i].ID == section.ID {
			stored := *section
			stored.Section = f.sections[i].Section
			f.sections[i] = stored
			return nil
		}
	}
	return domain.ErrNotFound("clan info section", section.ID)
}

func (f *fakeClanRepo) Delete(ctx context.Context, db repository.DBTX, id int64) error {
	for i := range f.sections {
		if f.sections[i].ID == id {
			f.sections = append(f.sections[:i], f.sections[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeListingRepo struct {
	listings []domain.Listing
	nextID   int64
}

func (f *fakeListingRepo) ListByStatus(ctx context.Context, db repository.DBTX, status string) ([]domain.Listing, error) {
	var out []domain.Listing
	for i := range f.listings {
		if f.listings[i].Status == status {
			out = append(out, f.listings[i])
		}
	}
	return out, nil
}

func (f *fakeListingRepo) Create(ctx context.Context, db repository.DBTX, listing *domain.Listing) (int64, error) {
	f.nextID++
	stored := *listing
	stored.ID = f.nextID
	stored.Status = domain.ListingPending
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.listings = append(f.listings, stored)
	return f.nextID, nil
}

func (f *fakeListingRepo) UpdateStatus(ctx context.Context, db repository.DBTX, id int64, status string) error {
	for i := range f.listings {
		if f.listings[i].ID == id {
			f.listings[i].Status = status
			f.listings[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound("listing", id)
}

func (f *fakeListingRepo) Delete(ctx context.Context, db repository.DBTX, id int64) error {
	for i := range f.listings {
		if f.listings[i].ID == id {
			f.listings = append(f.listings[:i], f.listings[i+1:]...)
			return nil
		}
	}
	return nil
}
