package repository

import (
	"context"
	"time"

	"starmarket/internal/domain/entity"
	"starmarket/internal/infrastructure/kvstore"
)

// SeedDemoListings populates the listings collection with six demonstration
// entries, one per category, when it is empty. Entries get fresh timestamps
// so the read-side expiry sweep does not hide them.
func SeedDemoListings(ctx context.Context, store *kvstore.Store, ttl time.Duration) error {
	store.Lock()
	defer store.Unlock()

	var listings []*entity.Listing
	if _, err := store.Get(ctx, kvstore.KeyListings, &listings); err != nil {
		return err
	}
	if len(listings) > 0 {
		return nil
	}

	now := time.Now()
	samples := []*entity.Listing{
		{
			ID:          "listing_demo_1",
			Title:       "NFT Cosmic Warrior",
			Description: "One-of-a-kind cosmic warrior NFT with animation and sound",
			Category:    entity.CategoryNFT,
			Stars:       500,
			Views:       128,
			Interest:    24,
			SellerID:    "demo_seller_1",
			SellerName:  "CosmicTrader",
		},
		{
			ID:          "listing_demo_2",
			Title:       "Premium Messenger Account",
			Description: "Account with premium status, a distinctive id and full history",
			Category:    entity.CategoryAccount,
			Stars:       350,
			Views:       89,
			Interest:    15,
			SellerID:    "demo_seller_2",
			SellerName:  "AccountMaster",
		},
		{
			ID:          "listing_demo_3",
			Title:       "Private Crypto Chat",
			Description: "Invite-only chat for crypto and investment discussion",
			Category:    entity.CategoryChat,
			Stars:       200,
			Views:       156,
			Interest:    32,
			SellerID:    "demo_seller_3",
			SellerName:  "CryptoExpert",
		},
		{
			ID:          "listing_demo_4",
			Title:       "Crypto News Channel",
			Description: "Channel with exclusive cryptocurrency news",
			Category:    entity.CategoryChannel,
			Stars:       450,
			Views:       210,
			Interest:    42,
			SellerID:    "demo_seller_4",
			SellerName:  "NewsHunter",
		},
		{
			ID:          "listing_demo_5",
			Title:       "Golden Phone Number",
			Description: "Beautiful phone number with a memorable digit pattern",
			Category:    entity.CategoryNumber,
			Stars:       150,
			Views:       67,
			Interest:    18,
			SellerID:    "demo_seller_5",
			SellerName:  "NumberDealer",
		},
		{
			ID:          "listing_demo_6",
			Title:       "Digital Space Art",
			Description: "Collectible digital art in a cosmic style",
			Category:    entity.CategoryOther,
			Stars:       100,
			Views:       93,
			Interest:    21,
			SellerID:    "demo_seller_6",
			SellerName:  "SpaceArtist",
		},
	}

	for i, l := range samples {
		// Stagger creation times so the newest sort has a defined order.
		l.CreatedAt = now.Add(time.Duration(i-len(samples)) * time.Hour)
		l.ExpiresAt = l.CreatedAt.Add(ttl)
		l.IsActive = true
		l.IsSold = false
	}

	return store.Put(ctx, kvstore.KeyListings, samples)
}
