package handler

import (
	"github.com/labstack/echo/v4"

	"starmarket/internal/usecase"
	"starmarket/pkg/response"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUseCase: notificationUseCase}
}

func (h *NotificationHandler) Unread(c echo.Context) error {
	uid := c.Get("uid").(string)

	notifications, err := h.notificationUseCase.Unread(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, notifications)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id := c.Param("id")

	if err := h.notificationUseCase.MarkRead(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Notification marked as read",
	})
}
