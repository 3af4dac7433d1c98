package repository

import (
	"context"

	"starmarket/internal/domain/entity"
)

// SessionRepository owns the single persisted current-user slot. The slot
// duplicates the full user record; UserRepository.Update keeps the copy in
// sync.
type SessionRepository interface {
	Current(ctx context.Context) (*entity.User, error)
	Set(ctx context.Context, user *entity.User) error
	Clear(ctx context.Context) error
}
