package usecase

import (
	"context"
	"fmt"
	"time"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/pkg/config"
	"starmarket/pkg/errors"
	"starmarket/pkg/logger"
)

type ListingUseCase struct {
	listingRepo      repository.ListingRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	transactionRepo  repository.TransactionRepository
	cfg              *config.Config
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	transactionRepo repository.TransactionRepository,
	cfg *config.Config,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo:      listingRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		transactionRepo:  transactionRepo,
		cfg:              cfg,
	}
}

type PublishInput struct {
	Title       string
	Description string
	Category    entity.Category
	Stars       int
	Contact     string
}

func (uc *ListingUseCase) Publish(ctx context.Context, sellerID string, input PublishInput) (*entity.Listing, error) {
	if input.Title == "" || input.Description == "" || input.Category == "" || input.Contact == "" {
		return nil, errors.BadRequest("Fill in all fields", nil)
	}
	if !input.Category.Valid() {
		return nil, errors.BadRequest("Unknown category", nil)
	}
	if input.Stars < 1 {
		return nil, errors.BadRequest("Price must be greater than 0", nil)
	}

	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, errors.Internal("Failed to look up seller", err)
	}
	if seller == nil {
		return nil, errors.NotFound("Seller", nil)
	}

	// Soft anti-abuse cap, not an economic constraint.
	if input.Stars > seller.Stars*uc.cfg.PriceCapFactor {
		return nil, errors.BadRequest("Price is too high for your balance", nil)
	}

	listing := &entity.Listing{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Stars:       input.Stars,
		Contact:     input.Contact,
		SellerID:    seller.ID,
		SellerName:  seller.Nickname,
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, errors.Internal("Failed to create listing", err)
	}

	seller.Listings = append(seller.Listings, listing.ID)
	if _, err := uc.userRepo.Update(ctx, seller); err != nil {
		logger.Warn("Failed to record listing back-reference for user %s: %v", seller.ID, err)
	}

	tx := &entity.Transaction{
		UserID:      seller.ID,
		Type:        entity.TxListingCreated,
		Description: fmt.Sprintf("Published listing %q", input.Title),
		Amount:      0,
		ListingID:   listing.ID,
	}
	if err := uc.transactionRepo.Append(ctx, tx); err != nil {
		logger.Warn("Failed to append ledger entry for listing %s: %v", listing.ID, err)
	}

	return listing, nil
}

func (uc *ListingUseCase) Browse(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	if filter.SortBy != "" && !filter.SortBy.Valid() {
		return nil, errors.BadRequest("Unknown sort key", nil)
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, errors.BadRequest("Unknown category", nil)
	}
	listings, err := uc.listingRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Internal("Failed to list listings", err)
	}
	return listings, nil
}

// InterestResult is what the buyer sees after signaling interest: the new
// counters and the seller's contact string. No payment or transfer happens.
type InterestResult struct {
	Listing  *entity.Listing
	Views    int
	Interest int
	Contact  string
}

func (uc *ListingUseCase) ShowInterest(ctx context.Context, buyerID, listingID string) (*InterestResult, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, errors.Internal("Failed to look up listing", err)
	}
	// Sold, inactive and expired listings are as unreachable here as they
	// are through the listing query.
	if listing == nil || !listing.IsActive || listing.IsSold || listing.Expired(time.Now()) {
		return nil, errors.NotFound("Listing", nil)
	}
	if listing.SellerID == buyerID {
		return nil, errors.Forbidden("This is your own listing", nil)
	}

	views, err := uc.listingRepo.IncrementViews(ctx, listingID)
	if err != nil {
		return nil, errors.Internal("Failed to count view", err)
	}
	interest, err := uc.listingRepo.AddInterest(ctx, listingID)
	if err != nil {
		return nil, errors.Internal("Failed to count interest", err)
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, errors.Internal("Failed to look up buyer", err)
	}
	buyerName := "Someone"
	if buyer != nil {
		buyerName = buyer.Nickname
	}

	notification := &entity.Notification{
		UserID:  listing.SellerID,
		Type:    entity.NotificationInterest,
		Title:   "New interest in your listing!",
		Message: fmt.Sprintf("%s is interested in your listing %q", buyerName, listing.Title),
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Failed to notify seller %s: %v", listing.SellerID, err)
	}

	return &InterestResult{
		Listing:  listing,
		Views:    views,
		Interest: interest,
		Contact:  listing.Contact,
	}, nil
}

func (uc *ListingUseCase) MyListings(ctx context.Context, sellerID string) ([]*entity.Listing, error) {
	return uc.Browse(ctx, repository.ListingFilter{SellerID: sellerID})
}
