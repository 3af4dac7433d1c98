package router

import (
	"starmarket/internal/adapter/api/handler"
	"starmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupViewRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	viewHandler := handler.GetViewHandler()

	views := e.Group("/v1/view")
	views.Use(sessionMiddleware.RequireSession)

	views.GET("", viewHandler.Current)
	views.POST("/navigate", viewHandler.Navigate)
	views.POST("/category", viewHandler.Category)
	views.POST("/search", viewHandler.Search)
}
