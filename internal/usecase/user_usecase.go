package usecase

import (
	"context"
	"strings"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

type UpdateProfileInput struct {
	Nickname       string
	Email          string
	ExternalHandle string
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("Failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

// UpdateProfile edits nickname, email and the external handle, revalidated
// the same way registration is, minus the secret.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	if input.Nickname == "" || input.Email == "" {
		return nil, errors.BadRequest("Fill in the required fields", nil)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, errors.BadRequest("Enter a valid email", nil)
	}

	user, err := uc.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Identity uniqueness holds across edits, not just registrations.
	if input.Nickname != user.Nickname {
		other, err := uc.userRepo.GetByNickname(ctx, input.Nickname)
		if err != nil {
			return nil, errors.Internal("Failed to check nickname", err)
		}
		if other != nil {
			return nil, errors.DuplicateIdentity("Nickname is already taken")
		}
	}
	if input.Email != user.Email {
		other, err := uc.userRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return nil, errors.Internal("Failed to check email", err)
		}
		if other != nil {
			return nil, errors.DuplicateIdentity("Email is already in use")
		}
	}

	user.Nickname = input.Nickname
	user.Email = input.Email
	user.ExternalHandle = input.ExternalHandle

	ok, err := uc.userRepo.Update(ctx, user)
	if err != nil {
		return nil, errors.Internal("Failed to update profile", err)
	}
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}
