package router

import (
	"starmarket/internal/adapter/api/handler"
	"starmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	listingHandler := handler.GetListingHandler()

	// Browsing is open; publishing and interest need a session.
	e.GET("/v1/listings", listingHandler.List)

	protected := e.Group("/v1/listings")
	protected.Use(sessionMiddleware.RequireSession)

	protected.POST("", listingHandler.Publish)
	protected.GET("/mine", listingHandler.Mine)
	protected.POST("/:id/interest", listingHandler.Interest)
}
