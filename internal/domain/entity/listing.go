package entity

import (
	"time"
)

// Category is the closed set of listing categories. Values round-trip
// unchanged through storage.
type Category string

const (
	CategoryNFT     Category = "NFT"
	CategoryAccount Category = "Account"
	CategoryChat    Category = "Chat"
	CategoryChannel Category = "Channel"
	CategoryNumber  Category = "Number"
	CategoryOther   Category = "Other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryNFT,
		CategoryAccount,
		CategoryChat,
		CategoryChannel,
		CategoryNumber,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryNFT, CategoryAccount, CategoryChat, CategoryChannel, CategoryNumber, CategoryOther:
		return true
	}
	return false
}

// SortKey selects the listing query ordering.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortCheap     SortKey = "cheap"
	SortExpensive SortKey = "expensive"
	SortPopular   SortKey = "popular"
)

func (s SortKey) Valid() bool {
	switch s {
	case SortNewest, SortCheap, SortExpensive, SortPopular:
		return true
	}
	return false
}

type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`

	// Stars is the asking price in the star currency. Positive; enforced at
	// the publish entry point, not here.
	Stars   int    `json:"stars"`
	Contact string `json:"contact,omitempty"`

	SellerID   string `json:"seller_id"`
	SellerName string `json:"seller_name"`

	Views    int `json:"views"`
	Interest int `json:"interest"`

	IsActive bool `json:"is_active"`
	IsSold   bool `json:"is_sold"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the listing's advisory expiry has passed. The
// listing query excludes expired entries on read; nothing sweeps them.
func (l *Listing) Expired(now time.Time) bool {
	return !l.ExpiresAt.After(now)
}
