package router

import (
	"starmarket/internal/adapter/api/handler"
	"starmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupNotificationRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notifications")
	notifications.Use(sessionMiddleware.RequireSession)

	notifications.GET("", notificationHandler.Unread)
	notifications.POST("/:id/read", notificationHandler.MarkRead)
}
