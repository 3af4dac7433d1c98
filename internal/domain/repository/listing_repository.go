package repository

import (
	"context"

	"starmarket/internal/domain/entity"
)

// ListingFilter predicates are ANDed together; zero values mean "no
// constraint", never "match empty".
type ListingFilter struct {
	Category entity.Category
	Search   string
	SellerID string
	MinStars int
	MaxStars int
	SortBy   entity.SortKey
}

type ListingRepository interface {
	// Create assigns a fresh id, zeroes counters, marks the listing active
	// and unsold, and stamps createdAt plus the fixed expiry window.
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	// List applies the filter, always narrowed to active, unsold and
	// unexpired listings, then sorts stably by the requested key.
	List(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)
	// IncrementViews adds 1 to the view counter and returns the new value,
	// or 0 when the id is unknown.
	IncrementViews(ctx context.Context, id string) (int, error)
	AddInterest(ctx context.Context, id string) (int, error)
}
