package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/pkg/config"
	"starmarket/pkg/errors"
)

// WalletUseCase owns the balance/ledger pair: every balance mutation and its
// ledger entry happen behind one call here.
type WalletUseCase struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	cfg             *config.Config
	now             func() time.Time
}

func NewWalletUseCase(userRepo repository.UserRepository, transactionRepo repository.TransactionRepository, cfg *config.Config) *WalletUseCase {
	return &WalletUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		cfg:             cfg,
		now:             time.Now,
	}
}

type BonusResult struct {
	Stars   int
	Energy  int
	Balance int
}

// ClaimBonus credits the periodic bonus once per cooldown window. A claim
// exactly at the window boundary succeeds.
func (uc *WalletUseCase) ClaimBonus(ctx context.Context, userID string) (*BonusResult, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}

	now := uc.now()
	if user.LastBonus != nil && now.Sub(*user.LastBonus) < uc.cfg.BonusCooldown {
		remaining := uc.cfg.BonusCooldown - now.Sub(*user.LastBonus)
		hours := int(math.Ceil(remaining.Hours()))
		return nil, errors.TooManyRequests(fmt.Sprintf("Bonus already claimed, next one in %d hours", hours))
	}

	user.Stars += uc.cfg.BonusStars
	user.Energy += uc.cfg.BonusEnergy
	user.LastBonus = &now

	ok, err := uc.userRepo.Update(ctx, user)
	if err != nil {
		return nil, errors.Internal("Failed to credit bonus", err)
	}
	if !ok {
		return nil, errors.NotFound("User", nil)
	}

	tx := &entity.Transaction{
		UserID:      user.ID,
		Type:        entity.TxBonus,
		Description: "Periodic bonus",
		Amount:      uc.cfg.BonusStars,
	}
	if err := uc.transactionRepo.Append(ctx, tx); err != nil {
		return nil, errors.Internal("Failed to append ledger entry", err)
	}

	return &BonusResult{
		Stars:   uc.cfg.BonusStars,
		Energy:  uc.cfg.BonusEnergy,
		Balance: user.Stars,
	}, nil
}

// RecentTransactions returns up to limit entries, newest first. A limit of 0
// means the full history.
func (uc *WalletUseCase) RecentTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	transactions, err := uc.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to read ledger", err)
	}

	// Insertion order on disk; reverse for recency here.
	reversed := make([]*entity.Transaction, 0, len(transactions))
	for i := len(transactions) - 1; i >= 0; i-- {
		reversed = append(reversed, transactions[i])
	}
	if limit > 0 && len(reversed) > limit {
		reversed = reversed[:limit]
	}
	return reversed, nil
}
