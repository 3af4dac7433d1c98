package repository

import (
	"context"

	"starmarket/internal/domain/entity"
)

// UserRepository scans a flat user collection. Missing records come back as
// (nil, nil) / (false, nil), never as errors; only the identity-uniqueness
// violation in Create is an error.
type UserRepository interface {
	// Create persists a new user. Fails with DuplicateIdentity when the
	// nickname or email is already taken (case-sensitive exact match).
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByNickname(ctx context.Context, nickname string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)
	// FindActiveByIdentifier matches nickname or email against active
	// accounts only. Secret comparison is the caller's job.
	FindActiveByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	// Update replaces the stored record at the matching id and refreshes the
	// session pointer copy when it references the same user. Returns false
	// without writing when the id is unknown.
	Update(ctx context.Context, user *entity.User) (bool, error)
}
