package router

import (
	"starmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e, sessionMiddleware, rateLimitMiddleware)
	SetupUserRouter(e, sessionMiddleware)
	SetupListingRouter(e, sessionMiddleware)
	SetupWalletRouter(e, sessionMiddleware)
	SetupNotificationRouter(e, sessionMiddleware)
	SetupViewRouter(e, sessionMiddleware)
	SetupHealthRouter(e)
}
