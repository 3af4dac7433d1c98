package repository

import (
	"context"

	"starmarket/internal/domain/entity"
)

type TransactionRepository interface {
	// Append adds one ledger entry. Entries are never updated or deleted.
	Append(ctx context.Context, tx *entity.Transaction) error
	// ListByUser returns the user's entries in insertion order. Callers that
	// want recency reverse and slice themselves.
	ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)
}
