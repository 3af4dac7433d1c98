package usecase

import (
	"time"

	"github.com/google/uuid"

	"starmarket/internal/domain/entity"
	"starmarket/pkg/config"
)

func touchLogin(user *entity.User) {
	user.LastLogin = time.Now()
}

// newAccount builds a user record with the configured economy defaults. It
// is the only place new accounts are constructed; every permitted field is
// enumerated here.
func newAccount(cfg *config.Config, nickname, email, secretHash string) *entity.User {
	now := time.Now()
	return &entity.User{
		ID:           "user_" + uuid.NewString(),
		Nickname:     nickname,
		Email:        email,
		Secret:       secretHash,
		Stars:        cfg.DefaultStars,
		Energy:       cfg.DefaultEnergy,
		Level:        cfg.DefaultLevel,
		Rating:       cfg.DefaultRating,
		CreatedAt:    now,
		LastLogin:    now,
		Achievements: []string{},
		Listings:     []string{},
		Purchases:    []string{},
		IsActive:     true,
	}
}
