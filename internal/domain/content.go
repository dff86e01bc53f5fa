package domain

import "time"

// NewsItem represents a news row.
type NewsItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	ImageURL    *string   `json:"image_url"`
	IsImportant bool      `json:"is_important"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VipTier represents a vip_tiers row. sort_order drives display order.
type VipTier struct {
	ID        int64    `json:"id"`
	TierID    string   `json:"tier_id"`
	Name      string   `json:"name"`
	Price     int      `json:"price"`
	Duration  string   `json:"duration"`
	Color     string   `json:"color"`
	IsPopular bool     `json:"is_popular"`
	Features  []string `json:"features"`
	SortOrder int      `json:"sort_order"`
}

// ClanInfoSection represents a clan_info row. A section key may have
// multiple rows.
type ClanInfoSection struct {
	ID      int64    `json:"id"`
	Section string   `json:"section"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Items   []string `json:"items"`
}
