package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"starmarket/internal/adapter/api"
	"starmarket/internal/adapter/api/handler"
	apimiddleware "starmarket/internal/adapter/api/middleware"
	"starmarket/internal/adapter/api/router"
	"starmarket/internal/adapter/repository"
	"starmarket/internal/infrastructure/kvstore"
	"starmarket/internal/infrastructure/ratelimit"
	"starmarket/internal/usecase"
	"starmarket/internal/view"
	"starmarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := kvstore.Open(cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to open store at %s: %v", cfg.StoragePath, err)
	}
	defer store.Close()

	if err := repository.SeedDemoListings(ctx, store, cfg.ListingTTL); err != nil {
		log.Fatalf("Failed to seed demo listings: %v", err)
	}

	userRepo := repository.NewKVUserRepository(store)
	listingRepo := repository.NewKVListingRepository(store, cfg.ListingTTL)
	notificationRepo := repository.NewKVNotificationRepository(store)
	transactionRepo := repository.NewKVTransactionRepository(store)
	sessionRepo := repository.NewKVSessionRepository(store)

	authUseCase := usecase.NewAuthUseCase(userRepo, sessionRepo, cfg)
	userUseCase := usecase.NewUserUseCase(userRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, userRepo, notificationRepo, transactionRepo, cfg)
	walletUseCase := usecase.NewWalletUseCase(userRepo, transactionRepo, cfg)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	identityUseCase := usecase.NewIdentityUseCase(userRepo, sessionRepo, notificationRepo, cfg)

	// The screen state starts on main when a session survived the last run.
	sessionUser, err := sessionRepo.Current(ctx)
	if err != nil {
		log.Fatalf("Failed to read session: %v", err)
	}
	controller := view.NewController(sessionUser != nil)

	handler.Setup(authUseCase, userUseCase, listingUseCase, walletUseCase, notificationUseCase, identityUseCase, controller)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewLimiter(5, 10)
	stop := make(chan struct{})
	defer close(stop)
	limiter.StartCleanup(time.Minute, 3*time.Minute, stop)

	sessionMiddleware := apimiddleware.NewSessionMiddleware(sessionRepo)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, sessionMiddleware, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
