package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
)

func newListing(title string, category entity.Category, stars int) *entity.Listing {
	return &entity.Listing{
		Title:       title,
		Description: title + " description",
		Category:    category,
		Stars:       stars,
		Contact:     "@seller",
		SellerID:    "user_seller",
		SellerName:  "seller",
	}
}

func TestListingCreateAssignsDefaults(t *testing.T) {
	store := openTestStore(t)
	repo := NewKVListingRepository(store, 7*24*time.Hour)
	ctx := context.Background()

	listing := newListing("Cosmic Sticker", entity.CategoryNFT, 50)
	listing.Views = 99
	listing.Interest = 99
	require.NoError(t, repo.Create(ctx, listing))

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, 0, listing.Views)
	assert.Equal(t, 0, listing.Interest)
	assert.True(t, listing.IsActive)
	assert.False(t, listing.IsSold)
	assert.Equal(t, listing.CreatedAt.Add(7*24*time.Hour), listing.ExpiresAt)

	got, err := repo.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Cosmic Sticker", got.Title)
}

func TestListingListFilters(t *testing.T) {
	store := openTestStore(t)
	repo := NewKVListingRepository(store, 7*24*time.Hour)
	ctx := context.Background()

	nft := newListing("Cosmic Warrior", entity.CategoryNFT, 500)
	require.NoError(t, repo.Create(ctx, nft))
	chat := newListing("Crypto Chat", entity.CategoryChat, 200)
	chat.SellerID = "user_other"
	require.NoError(t, repo.Create(ctx, chat))
	number := newListing("Golden Number", entity.CategoryNumber, 150)
	require.NoError(t, repo.Create(ctx, number))

	byCategory, err := repo.List(ctx, repository.ListingFilter{Category: entity.CategoryNFT})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Cosmic Warrior", byCategory[0].Title)

	// Search matches title or description, case-insensitively.
	bySearch, err := repo.List(ctx, repository.ListingFilter{Search: "cRyPto"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Crypto Chat", bySearch[0].Title)

	bySeller, err := repo.List(ctx, repository.ListingFilter{SellerID: "user_other"})
	require.NoError(t, err)
	require.Len(t, bySeller, 1)

	byPrice, err := repo.List(ctx, repository.ListingFilter{MinStars: 160, MaxStars: 400})
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, "Crypto Chat", byPrice[0].Title)

	combined, err := repo.List(ctx, repository.ListingFilter{Category: entity.CategoryChat, Search: "golden"})
	require.NoError(t, err)
	assert.Empty(t, combined)
}

func TestListingListSorting(t *testing.T) {
	store := openTestStore(t)
	repo := &kvListingRepository{store: store, ttl: 7 * 24 * time.Hour, now: time.Now}
	ctx := context.Background()

	base := time.Now()
	clock := base
	repo.now = func() time.Time { return clock }

	cheap := newListing("Cheap", entity.CategoryOther, 100)
	require.NoError(t, repo.Create(ctx, cheap))
	clock = base.Add(time.Minute)
	mid := newListing("Mid", entity.CategoryOther, 250)
	require.NoError(t, repo.Create(ctx, mid))
	clock = base.Add(2 * time.Minute)
	pricey := newListing("Pricey", entity.CategoryOther, 400)
	require.NoError(t, repo.Create(ctx, pricey))

	titles := func(listings []*entity.Listing) []string {
		out := make([]string, len(listings))
		for i, l := range listings {
			out[i] = l.Title
		}
		return out
	}

	newest, err := repo.List(ctx, repository.ListingFilter{SortBy: entity.SortNewest})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pricey", "Mid", "Cheap"}, titles(newest))

	ascending, err := repo.List(ctx, repository.ListingFilter{SortBy: entity.SortCheap})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cheap", "Mid", "Pricey"}, titles(ascending))

	descending, err := repo.List(ctx, repository.ListingFilter{SortBy: entity.SortExpensive})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pricey", "Mid", "Cheap"}, titles(descending))

	// Equal view counts: popularity sort keeps insertion order.
	popular, err := repo.List(ctx, repository.ListingFilter{SortBy: entity.SortPopular})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cheap", "Mid", "Pricey"}, titles(popular))
}

func TestListingCounters(t *testing.T) {
	store := openTestStore(t)
	repo := NewKVListingRepository(store, 7*24*time.Hour)
	ctx := context.Background()

	listing := newListing("Counted", entity.CategoryOther, 100)
	require.NoError(t, repo.Create(ctx, listing))

	for i := 1; i <= 10; i++ {
		views, err := repo.IncrementViews(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, i, views)
	}

	interest, err := repo.AddInterest(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, interest)

	got, err := repo.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Views)
	assert.Equal(t, 1, got.Interest)
}

func TestListingCountersMissingID(t *testing.T) {
	store := openTestStore(t)
	repo := NewKVListingRepository(store, 7*24*time.Hour)
	ctx := context.Background()

	listing := newListing("Untouched", entity.CategoryOther, 100)
	require.NoError(t, repo.Create(ctx, listing))

	views, err := repo.IncrementViews(ctx, "listing_unknown")
	require.NoError(t, err)
	assert.Equal(t, 0, views)

	interest, err := repo.AddInterest(ctx, "listing_unknown")
	require.NoError(t, err)
	assert.Equal(t, 0, interest)

	got, err := repo.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Views)
	assert.Equal(t, 0, got.Interest)
}

func TestListingExpirySweep(t *testing.T) {
	store := openTestStore(t)
	repo := &kvListingRepository{store: store, ttl: 7 * 24 * time.Hour, now: time.Now}
	ctx := context.Background()

	listing := newListing("Short-lived", entity.CategoryOther, 100)
	require.NoError(t, repo.Create(ctx, listing))

	visible, err := repo.List(ctx, repository.ListingFilter{})
	require.NoError(t, err)
	require.Len(t, visible, 1)

	// Jump past the TTL; the listing stays on disk but drops out of reads.
	repo.now = func() time.Time { return time.Now().Add(7*24*time.Hour + time.Second) }

	visible, err = repo.List(ctx, repository.ListingFilter{})
	require.NoError(t, err)
	assert.Empty(t, visible)

	stored, err := repo.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestSeedDemoListings(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	ttl := 7 * 24 * time.Hour

	require.NoError(t, SeedDemoListings(ctx, store, ttl))

	repo := NewKVListingRepository(store, ttl)
	listings, err := repo.List(ctx, repository.ListingFilter{})
	require.NoError(t, err)
	assert.Len(t, listings, 6)

	seen := map[entity.Category]bool{}
	for _, l := range listings {
		seen[l.Category] = true
	}
	assert.Len(t, seen, 6, "one demo listing per category")

	// Seeding again is a no-op.
	require.NoError(t, SeedDemoListings(ctx, store, ttl))
	listings, err = repo.List(ctx, repository.ListingFilter{})
	require.NoError(t, err)
	assert.Len(t, listings, 6)
}
