package entity

import (
	"time"
)

const (
	TxPurchase       = "purchase"
	TxSale           = "sale"
	TxBonus          = "bonus"
	TxListingCreated = "listing_created"
)

// Transaction is one entry of the append-only per-user ledger. Amount is
// signed: positive credits, negative debits, zero for non-monetary events.
// The ledger is informational; User.Stars stays the authoritative balance.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      int       `json:"amount"`
	ListingID   string    `json:"listing_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
