package router

import (
	"starmarket/internal/adapter/api/handler"
	"starmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(sessionMiddleware.RequireSession)

	users.GET("/me", userHandler.Me)
	users.PATCH("/me", userHandler.UpdateProfile)
}
