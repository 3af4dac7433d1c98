package handler

import (
	"starmarket/internal/usecase"
	"starmarket/internal/view"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	listingHandler      *ListingHandler
	walletHandler       *WalletHandler
	notificationHandler *NotificationHandler
	viewHandler         *ViewHandler
	healthHandler       *HealthHandler
)

// Setup wires every handler once at startup; routers pick them up through
// the getters.
func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	listingUseCase *usecase.ListingUseCase,
	walletUseCase *usecase.WalletUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	identityUseCase *usecase.IdentityUseCase,
	controller *view.Controller,
) {
	authHandler = NewAuthHandler(authUseCase, identityUseCase, controller)
	userHandler = NewUserHandler(userUseCase)
	listingHandler = NewListingHandler(listingUseCase, controller)
	walletHandler = NewWalletHandler(walletUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	viewHandler = NewViewHandler(controller, listingUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler                 { return authHandler }
func GetUserHandler() *UserHandler                 { return userHandler }
func GetListingHandler() *ListingHandler           { return listingHandler }
func GetWalletHandler() *WalletHandler             { return walletHandler }
func GetNotificationHandler() *NotificationHandler { return notificationHandler }
func GetViewHandler() *ViewHandler                 { return viewHandler }
func GetHealthHandler() *HealthHandler             { return healthHandler }
