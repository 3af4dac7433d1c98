package repository

import (
	"context"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/internal/infrastructure/kvstore"
	"starmarket/pkg/errors"
)

type kvUserRepository struct {
	store *kvstore.Store
}

func NewKVUserRepository(store *kvstore.Store) repository.UserRepository {
	return &kvUserRepository{store: store}
}

func (r *kvUserRepository) users(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if _, err := r.store.Get(ctx, kvstore.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *kvUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.Lock()
	defer r.store.Unlock()

	users, err := r.users(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Nickname == user.Nickname {
			return errors.DuplicateIdentity("Nickname is already taken")
		}
		if u.Email == user.Email {
			return errors.DuplicateIdentity("Email is already in use")
		}
	}

	users = append(users, user)
	return r.store.Put(ctx, kvstore.KeyUsers, users)
}

func (r *kvUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.find(ctx, func(u *entity.User) bool { return u.ID == id })
}

func (r *kvUserRepository) GetByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	return r.find(ctx, func(u *entity.User) bool { return u.Nickname == nickname })
}

func (r *kvUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(ctx, func(u *entity.User) bool { return u.Email == email })
}

func (r *kvUserRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	if externalID == "" {
		return nil, nil
	}
	return r.find(ctx, func(u *entity.User) bool { return u.ExternalID == externalID })
}

func (r *kvUserRepository) FindActiveByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	return r.find(ctx, func(u *entity.User) bool {
		return (u.Nickname == identifier || u.Email == identifier) && u.IsActive
	})
}

func (r *kvUserRepository) find(ctx context.Context, match func(*entity.User) bool) (*entity.User, error) {
	users, err := r.users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if match(u) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *kvUserRepository) Update(ctx context.Context, user *entity.User) (bool, error) {
	r.store.Lock()
	defer r.store.Unlock()

	users, err := r.users(ctx)
	if err != nil {
		return false, err
	}

	index := -1
	for i, u := range users {
		if u.ID == user.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return false, nil
	}

	users[index] = user
	if err := r.store.Put(ctx, kvstore.KeyUsers, users); err != nil {
		return false, err
	}

	// Keep the duplicated session pointer copy in sync.
	var current *entity.User
	if _, err := r.store.Get(ctx, kvstore.KeyCurrentUser, &current); err != nil {
		return false, err
	}
	if current != nil && current.ID == user.ID {
		if err := r.store.Put(ctx, kvstore.KeyCurrentUser, user); err != nil {
			return false, err
		}
	}

	return true, nil
}
