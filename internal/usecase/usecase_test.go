package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	kvrepo "starmarket/internal/adapter/repository"
	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/internal/infrastructure/kvstore"
	"starmarket/pkg/config"
)

// fixture wires the use cases against a throwaway in-memory store, the same
// stack the server runs minus HTTP.
type fixture struct {
	cfg              *config.Config
	store            *kvstore.Store
	userRepo         repository.UserRepository
	listingRepo      repository.ListingRepository
	notificationRepo repository.NotificationRepository
	transactionRepo  repository.TransactionRepository
	sessionRepo      repository.SessionRepository

	auth          *AuthUseCase
	users         *UserUseCase
	listings      *ListingUseCase
	wallet        *WalletUseCase
	notifications *NotificationUseCase
	identity      *IdentityUseCase
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:     "test",
		IdentitySecret:  "test-identity-secret",
		DefaultStars:    1000,
		DefaultEnergy:   10,
		DefaultLevel:    1,
		DefaultRating:   5.0,
		MinSecretLength: 6,
		PriceCapFactor:  10,
		BonusStars:      50,
		BonusEnergy:     2,
		BonusCooldown:   24 * time.Hour,
		ListingTTL:      7 * 24 * time.Hour,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := kvstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := testConfig()
	f := &fixture{
		cfg:              cfg,
		store:            store,
		userRepo:         kvrepo.NewKVUserRepository(store),
		listingRepo:      kvrepo.NewKVListingRepository(store, cfg.ListingTTL),
		notificationRepo: kvrepo.NewKVNotificationRepository(store),
		transactionRepo:  kvrepo.NewKVTransactionRepository(store),
		sessionRepo:      kvrepo.NewKVSessionRepository(store),
	}

	f.auth = NewAuthUseCase(f.userRepo, f.sessionRepo, cfg)
	f.users = NewUserUseCase(f.userRepo)
	f.listings = NewListingUseCase(f.listingRepo, f.userRepo, f.notificationRepo, f.transactionRepo, cfg)
	f.wallet = NewWalletUseCase(f.userRepo, f.transactionRepo, cfg)
	f.notifications = NewNotificationUseCase(f.notificationRepo)
	f.identity = NewIdentityUseCase(f.userRepo, f.sessionRepo, f.notificationRepo, cfg)

	return f
}

func (f *fixture) register(t *testing.T, nickname, email string) *entity.User {
	t.Helper()
	user, err := f.auth.Register(context.Background(), RegisterInput{
		Nickname:      nickname,
		Email:         email,
		Secret:        "abcdef",
		SecretConfirm: "abcdef",
	})
	require.NoError(t, err)
	return user
}
