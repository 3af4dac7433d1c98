package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/pkg/config"
	"starmarket/pkg/errors"
	"starmarket/pkg/logger"
)

// ExternalIdentity is the assertion payload consumed from a federated login
// event.
type ExternalIdentity struct {
	ExternalID string `json:"external_id"`
	Handle     string `json:"handle,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

type identityClaims struct {
	ExternalIdentity
	jwt.RegisteredClaims
}

type IdentityUseCase struct {
	userRepo         repository.UserRepository
	sessionRepo      repository.SessionRepository
	notificationRepo repository.NotificationRepository
	cfg              *config.Config
}

func NewIdentityUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	notificationRepo repository.NotificationRepository,
	cfg *config.Config,
) *IdentityUseCase {
	return &IdentityUseCase{
		userRepo:         userRepo,
		sessionRepo:      sessionRepo,
		notificationRepo: notificationRepo,
		cfg:              cfg,
	}
}

// VerifyAssertion parses and verifies an HS256-signed identity assertion.
func (uc *IdentityUseCase) VerifyAssertion(tokenString string) (*ExternalIdentity, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.cfg.IdentitySecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Unauthorized("Invalid identity assertion", err)
	}
	if claims.ExternalID == "" {
		return nil, errors.Unauthorized("Assertion carries no external id", nil)
	}
	return &claims.ExternalIdentity, nil
}

// Resolve bridges an external identity into the local account set: an
// existing linked account gets its mutable profile fields overwritten, an
// unknown identity gets a provisioned account plus a one-time welcome
// notification. Any failure surfaces as nil; there is no partial-state
// rollback.
func (uc *IdentityUseCase) Resolve(ctx context.Context, ident *ExternalIdentity) *entity.User {
	if ident == nil || ident.ExternalID == "" {
		return nil
	}

	user, err := uc.userRepo.GetByExternalID(ctx, ident.ExternalID)
	if err != nil {
		logger.Error("Identity lookup failed for %s: %v", ident.ExternalID, err)
		return nil
	}

	if user != nil {
		user.ExternalHandle = handleOrEmpty(ident.Handle)
		user.FirstName = ident.FirstName
		user.LastName = ident.LastName
		if ident.AvatarURL != "" {
			user.Avatar = ident.AvatarURL
		}
		user.IsExternal = true
		touchLogin(user)

		if _, err := uc.userRepo.Update(ctx, user); err != nil {
			logger.Error("Identity update failed for %s: %v", ident.ExternalID, err)
			return nil
		}
		if err := uc.sessionRepo.Set(ctx, user); err != nil {
			logger.Error("Session set failed for %s: %v", ident.ExternalID, err)
			return nil
		}
		return user
	}

	nickname := ident.Handle
	if nickname == "" {
		nickname = "user_" + ident.ExternalID
	}
	email := fmt.Sprintf("external_%s@starmarket.local", ident.ExternalID)

	// The account is never meant to be logged into by secret; store a hash
	// of a random throwaway one.
	secret, err := randomSecret()
	if err != nil {
		logger.Error("Secret generation failed: %v", err)
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Secret hashing failed: %v", err)
		return nil
	}

	user = newAccount(uc.cfg, nickname, email, string(hash))
	user.ExternalID = ident.ExternalID
	user.ExternalHandle = handleOrEmpty(ident.Handle)
	user.FirstName = ident.FirstName
	user.LastName = ident.LastName
	user.Avatar = ident.AvatarURL
	user.IsExternal = true

	if err := uc.userRepo.Create(ctx, user); err != nil {
		logger.Error("Identity provisioning failed for %s: %v", ident.ExternalID, err)
		return nil
	}
	if err := uc.sessionRepo.Set(ctx, user); err != nil {
		logger.Error("Session set failed for %s: %v", ident.ExternalID, err)
		return nil
	}

	// First contact only. If this fails the user still exists without a
	// welcome message.
	notification := &entity.Notification{
		UserID:  user.ID,
		Type:    entity.NotificationWelcome,
		Title:   "Welcome to StarMarket!",
		Message: "You are signed in via your federated identity. Start exploring the marketplace!",
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Welcome notification failed for %s: %v", user.ID, err)
	}

	return user
}

func handleOrEmpty(handle string) string {
	if handle == "" {
		return ""
	}
	return "@" + handle
}

func randomSecret() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
