package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/internal/infrastructure/kvstore"
)

type kvListingRepository struct {
	store *kvstore.Store
	ttl   time.Duration
	now   func() time.Time
}

func NewKVListingRepository(store *kvstore.Store, ttl time.Duration) repository.ListingRepository {
	return &kvListingRepository{store: store, ttl: ttl, now: time.Now}
}

func (r *kvListingRepository) listings(ctx context.Context) ([]*entity.Listing, error) {
	var listings []*entity.Listing
	if _, err := r.store.Get(ctx, kvstore.KeyListings, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *kvListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	r.store.Lock()
	defer r.store.Unlock()

	now := r.now()
	listing.ID = "listing_" + uuid.NewString()
	listing.Views = 0
	listing.Interest = 0
	listing.IsActive = true
	listing.IsSold = false
	listing.CreatedAt = now
	listing.ExpiresAt = now.Add(r.ttl)

	listings, err := r.listings(ctx)
	if err != nil {
		return err
	}
	listings = append(listings, listing)
	return r.store.Put(ctx, kvstore.KeyListings, listings)
}

func (r *kvListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	listings, err := r.listings(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *kvListingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	listings, err := r.listings(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	result := make([]*entity.Listing, 0, len(listings))
	search := strings.ToLower(filter.Search)
	for _, l := range listings {
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Title), search) &&
			!strings.Contains(strings.ToLower(l.Description), search) {
			continue
		}
		if filter.SellerID != "" && l.SellerID != filter.SellerID {
			continue
		}
		if filter.MinStars > 0 && l.Stars < filter.MinStars {
			continue
		}
		if filter.MaxStars > 0 && l.Stars > filter.MaxStars {
			continue
		}
		// Sold, inactive and expired listings are unreachable through this
		// path regardless of the supplied filter.
		if !l.IsActive || l.IsSold || l.Expired(now) {
			continue
		}
		result = append(result, l)
	}

	// Ties keep their prior relative order.
	switch filter.SortBy {
	case entity.SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	case entity.SortCheap:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Stars < result[j].Stars
		})
	case entity.SortExpensive:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Stars > result[j].Stars
		})
	case entity.SortPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Views > result[j].Views
		})
	}

	return result, nil
}

func (r *kvListingRepository) IncrementViews(ctx context.Context, id string) (int, error) {
	return r.increment(ctx, id, func(l *entity.Listing) *int { return &l.Views })
}

func (r *kvListingRepository) AddInterest(ctx context.Context, id string) (int, error) {
	return r.increment(ctx, id, func(l *entity.Listing) *int { return &l.Interest })
}

func (r *kvListingRepository) increment(ctx context.Context, id string, counter func(*entity.Listing) *int) (int, error) {
	r.store.Lock()
	defer r.store.Unlock()

	listings, err := r.listings(ctx)
	if err != nil {
		return 0, err
	}
	for _, l := range listings {
		if l.ID == id {
			c := counter(l)
			*c++
			if err := r.store.Put(ctx, kvstore.KeyListings, listings); err != nil {
				return 0, err
			}
			return *c, nil
		}
	}
	return 0, nil
}
