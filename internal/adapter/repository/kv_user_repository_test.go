package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starmarket/internal/domain/entity"
	"starmarket/internal/infrastructure/kvstore"
	"starmarket/pkg/errors"
)

func openTestStore(t *testing.T) *kvstore.Store {
	t.Helper()
	store, err := kvstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testUser(id, nickname, email string) *entity.User {
	return &entity.User{
		ID:        id,
		Nickname:  nickname,
		Email:     email,
		Secret:    "hash",
		Stars:     1000,
		Energy:    10,
		Level:     1,
		Rating:    5.0,
		CreatedAt: time.Now(),
		LastLogin: time.Now(),
		IsActive:  true,
	}
}

func TestUserCreateAndLookups(t *testing.T) {
	store := openTestStore(t)
	repo := NewKVUserRepository(store)
	ctx := context.Background()

	user := testUser("user_1", "nova", "nova@example.com")
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, "user_1")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "nova", byID.Nickname)

	byNickname, err := repo.GetByNickname(ctx, "nova")
	require.NoError(t, err)
	require.NotNil(t, byNickname)

	byEmail, err := repo.GetByEmail(ctx, "nova@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)

	missing, err := repo.GetByID(ctx, "user_unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserCreateRejectsDuplicates(t *testing.T) {
	store := openTestStore(t)
	repo := NewKVUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("user_1", "nova", "nova@example.com")))

	err := repo.Create(ctx, testUser("user_2", "nova", "other@example.com"))
	assert.True(t, errors.Is(err, "DUPLICATE_IDENTITY"))

	err = repo.Create(ctx, testUser("user_3", "other", "nova@example.com"))
	assert.True(t, errors.Is(err, "DUPLICATE_IDENTITY"))

	// A rejected create leaves the collection untouched.
	second, err := repo.GetByID(ctx, "user_2")
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestUserFindActiveByIdentifier(t *testing.T) {
	store := openTestStore(t)
	repo := NewKVUserRepository(store)
	ctx := context.Background()

	active := testUser("user_1", "nova", "nova@example.com")
	require.NoError(t, repo.Create(ctx, active))

	inactive := testUser("user_2", "ghost", "ghost@example.com")
	inactive.IsActive = false
	require.NoError(t, repo.Create(ctx, inactive))

	byNickname, err := repo.FindActiveByIdentifier(ctx, "nova")
	require.NoError(t, err)
	require.NotNil(t, byNickname)
	assert.Equal(t, "user_1", byNickname.ID)

	byEmail, err := repo.FindActiveByIdentifier(ctx, "nova@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)

	hidden, err := repo.FindActiveByIdentifier(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, hidden)
}

func TestUserUpdate(t *testing.T) {
	store := openTestStore(t)
	repo := NewKVUserRepository(store)
	ctx := context.Background()

	user := testUser("user_1", "nova", "nova@example.com")
	require.NoError(t, repo.Create(ctx, user))

	user.Stars = 1050
	ok, err := repo.Update(ctx, user)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 1050, got.Stars)

	ok, err = repo.Update(ctx, testUser("user_unknown", "x", "x@example.com"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserUpdateSyncsSessionCopy(t *testing.T) {
	store := openTestStore(t)
	userRepo := NewKVUserRepository(store)
	sessionRepo := NewKVSessionRepository(store)
	ctx := context.Background()

	user := testUser("user_1", "nova", "nova@example.com")
	require.NoError(t, userRepo.Create(ctx, user))
	require.NoError(t, sessionRepo.Set(ctx, user))

	user.Stars = 1050
	ok, err := userRepo.Update(ctx, user)
	require.NoError(t, err)
	require.True(t, ok)

	current, err := sessionRepo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 1050, current.Stars)
}

func TestSessionSetAndClear(t *testing.T) {
	store := openTestStore(t)
	sessionRepo := NewKVSessionRepository(store)
	ctx := context.Background()

	current, err := sessionRepo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user := testUser("user_1", "nova", "nova@example.com")
	require.NoError(t, sessionRepo.Set(ctx, user))

	current, err = sessionRepo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "user_1", current.ID)

	require.NoError(t, sessionRepo.Clear(ctx))

	current, err = sessionRepo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}
