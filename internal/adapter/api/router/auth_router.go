package router

import (
	"starmarket/internal/adapter/api/handler"
	"starmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes, throttled per client address
	public := e.Group("/v1/auth")
	public.Use(rateLimitMiddleware.Limit)

	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.POST("/external", authHandler.External)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(sessionMiddleware.RequireSession)

	protected.POST("/logout", authHandler.Logout)
}
