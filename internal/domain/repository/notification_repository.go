package repository

import (
	"context"

	"starmarket/internal/domain/entity"
)

type NotificationRepository interface {
	// Create assigns a fresh id, marks the notification unread and stamps
	// createdAt.
	Create(ctx context.Context, notification *entity.Notification) error
	// ListUnread returns only unread entries for the given user.
	ListUnread(ctx context.Context, userID string) ([]*entity.Notification, error)
	// MarkRead flips the read flag. Returns false when the id is unknown.
	MarkRead(ctx context.Context, id string) (bool, error)
}
