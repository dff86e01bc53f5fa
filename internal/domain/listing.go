package domain

import "time"

// Listing statuses. New listings always start as pending; moderators move
// them to approved or rejected.
const (
	ListingPending  = "pending"
	ListingApproved = "approved"
	ListingRejected = "rejected"
)

// ValidListingStatus reports whether s is one of the recognized statuses.
func ValidListingStatus(s string) bool {
	switch s {
	case ListingPending, ListingApproved, ListingRejected:
		return true
	}
	return false
}

// Listing represents a listings row: a teammate-search post awaiting or
// having received moderation.
type Listing struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GameMode    string    `json:"game_mode"`
	PlayerCount string    `json:"player_count"`
	DiscordTag  string    `json:"discord_tag"`
	ImageURL    *string   `json:"image_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
