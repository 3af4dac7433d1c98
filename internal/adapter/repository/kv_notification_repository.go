package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/internal/infrastructure/kvstore"
)

type kvNotificationRepository struct {
	store *kvstore.Store
}

func NewKVNotificationRepository(store *kvstore.Store) repository.NotificationRepository {
	return &kvNotificationRepository{store: store}
}

func (r *kvNotificationRepository) notifications(ctx context.Context) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	if _, err := r.store.Get(ctx, kvstore.KeyNotifications, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *kvNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	r.store.Lock()
	defer r.store.Unlock()

	notification.ID = "notif_" + uuid.NewString()
	notification.IsRead = false
	notification.CreatedAt = time.Now()

	notifications, err := r.notifications(ctx)
	if err != nil {
		return err
	}
	notifications = append(notifications, notification)
	return r.store.Put(ctx, kvstore.KeyNotifications, notifications)
}

func (r *kvNotificationRepository) ListUnread(ctx context.Context, userID string) ([]*entity.Notification, error) {
	notifications, err := r.notifications(ctx)
	if err != nil {
		return nil, err
	}
	unread := make([]*entity.Notification, 0)
	for _, n := range notifications {
		if n.UserID == userID && !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (r *kvNotificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	r.store.Lock()
	defer r.store.Unlock()

	notifications, err := r.notifications(ctx)
	if err != nil {
		return false, err
	}
	for _, n := range notifications {
		if n.ID == id {
			n.IsRead = true
			if err := r.store.Put(ctx, kvstore.KeyNotifications, notifications); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
