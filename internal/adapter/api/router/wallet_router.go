package router

import (
	"starmarket/internal/adapter/api/handler"
	"starmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupWalletRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	walletHandler := handler.GetWalletHandler()

	wallet := e.Group("/v1/wallet")
	wallet.Use(sessionMiddleware.RequireSession)

	wallet.POST("/bonus", walletHandler.ClaimBonus)
	wallet.GET("/transactions", walletHandler.Transactions)
}
