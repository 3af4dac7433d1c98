package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/internal/infrastructure/kvstore"
)

type kvTransactionRepository struct {
	store *kvstore.Store
}

func NewKVTransactionRepository(store *kvstore.Store) repository.TransactionRepository {
	return &kvTransactionRepository{store: store}
}

func (r *kvTransactionRepository) Append(ctx context.Context, tx *entity.Transaction) error {
	r.store.Lock()
	defer r.store.Unlock()

	tx.ID = "tx_" + uuid.NewString()
	tx.CreatedAt = time.Now()

	var transactions []*entity.Transaction
	if _, err := r.store.Get(ctx, kvstore.KeyTransactions, &transactions); err != nil {
		return err
	}
	transactions = append(transactions, tx)
	return r.store.Put(ctx, kvstore.KeyTransactions, transactions)
}

func (r *kvTransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	var transactions []*entity.Transaction
	if _, err := r.store.Get(ctx, kvstore.KeyTransactions, &transactions); err != nil {
		return nil, err
	}
	result := make([]*entity.Transaction, 0)
	for _, tx := range transactions {
		if tx.UserID == userID {
			result = append(result, tx)
		}
	}
	return result, nil
}
