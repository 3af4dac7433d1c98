package repository

import (
	"context"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/internal/infrastructure/kvstore"
)

type kvSessionRepository struct {
	store *kvstore.Store
}

func NewKVSessionRepository(store *kvstore.Store) repository.SessionRepository {
	return &kvSessionRepository{store: store}
}

func (r *kvSessionRepository) Current(ctx context.Context) (*entity.User, error) {
	var user *entity.User
	if _, err := r.store.Get(ctx, kvstore.KeyCurrentUser, &user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *kvSessionRepository) Set(ctx context.Context, user *entity.User) error {
	return r.store.Put(ctx, kvstore.KeyCurrentUser, user)
}

func (r *kvSessionRepository) Clear(ctx context.Context) error {
	return r.store.Put(ctx, kvstore.KeyCurrentUser, nil)
}
