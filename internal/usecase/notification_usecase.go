package usecase

import (
	"context"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/pkg/errors"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo}
}

func (uc *NotificationUseCase) Unread(ctx context.Context, userID string) ([]*entity.Notification, error) {
	notifications, err := uc.notificationRepo.ListUnread(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to read notifications", err)
	}
	return notifications, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	ok, err := uc.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		return errors.Internal("Failed to mark notification", err)
	}
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	return nil
}
