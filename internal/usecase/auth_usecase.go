package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/pkg/config"
	"starmarket/pkg/errors"
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

type RegisterInput struct {
	Nickname      string
	Email         string
	Secret        string
	SecretConfirm string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if input.Nickname == "" || input.Email == "" || input.Secret == "" || input.SecretConfirm == "" {
		return nil, errors.BadRequest("Fill in all fields", nil)
	}
	if len(input.Secret) < uc.cfg.MinSecretLength {
		return nil, errors.BadRequest("Secret is too short", nil)
	}
	if input.Secret != input.SecretConfirm {
		return nil, errors.BadRequest("Secrets do not match", nil)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, errors.BadRequest("Enter a valid email", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to process secret", err)
	}

	user := newAccount(uc.cfg, input.Nickname, input.Email, string(hash))
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.sessionRepo.Set(ctx, user); err != nil {
		return nil, errors.Internal("Failed to start session", err)
	}
	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, identifier, secret string) (*entity.User, error) {
	if identifier == "" || secret == "" {
		return nil, errors.BadRequest("Fill in all fields", nil)
	}

	user, err := uc.userRepo.FindActiveByIdentifier(ctx, identifier)
	if err != nil {
		return nil, errors.Internal("Failed to look up account", err)
	}
	// Unknown identity and wrong secret are deliberately indistinguishable.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Secret), []byte(secret)) != nil {
		return nil, errors.Unauthorized("Invalid identifier or secret", nil)
	}

	user.LastLogin = time.Now()
	if _, err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update account", err)
	}
	if err := uc.sessionRepo.Set(ctx, user); err != nil {
		return nil, errors.Internal("Failed to start session", err)
	}
	return user, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.sessionRepo.Clear(ctx)
}

func (uc *AuthUseCase) Current(ctx context.Context) (*entity.User, error) {
	return uc.sessionRepo.Current(ctx)
}
