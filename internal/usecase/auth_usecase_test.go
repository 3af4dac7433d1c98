package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starmarket/pkg/errors"
)

func TestRegisterAppliesDefaults(t *testing.T) {
	f := newFixture(t)

	user := f.register(t, "nova", "nova@example.com")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, 1000, user.Stars)
	assert.Equal(t, 10, user.Energy)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, 5.0, user.Rating)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "abcdef", user.Secret, "secret must be stored hashed")

	// Registration signs the new account in.
	current, err := f.sessionRepo.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"missing fields", RegisterInput{Nickname: "nova"}},
		{"short secret", RegisterInput{Nickname: "nova", Email: "nova@example.com", Secret: "abc", SecretConfirm: "abc"}},
		{"mismatched secrets", RegisterInput{Nickname: "nova", Email: "nova@example.com", Secret: "abcdef", SecretConfirm: "abcdeg"}},
		{"bad email", RegisterInput{Nickname: "nova", Email: "nova.example.com", Secret: "abcdef", SecretConfirm: "abcdef"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.auth.Register(ctx, tc.input)
			assert.True(t, errors.Is(err, "BAD_REQUEST"), "expected BAD_REQUEST, got %v", err)
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.register(t, "nova", "nova@example.com")

	_, err := f.auth.Register(ctx, RegisterInput{
		Nickname:      "nova",
		Email:         "other@example.com",
		Secret:        "abcdef",
		SecretConfirm: "abcdef",
	})
	assert.True(t, errors.Is(err, "DUPLICATE_IDENTITY"))
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	registered := f.register(t, "nova", "nova@example.com")
	require.NoError(t, f.auth.Logout(ctx))

	byNickname, err := f.auth.Login(ctx, "nova", "abcdef")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byNickname.ID)

	byEmail, err := f.auth.Login(ctx, "nova@example.com", "abcdef")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byEmail.ID)

	current, err := f.auth.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, registered.ID, current.ID)
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.register(t, "nova", "nova@example.com")

	_, wrongSecret := f.auth.Login(ctx, "nova", "wrong!")
	_, unknownUser := f.auth.Login(ctx, "nobody", "abcdef")

	require.Error(t, wrongSecret)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongSecret.Error(), unknownUser.Error())
	assert.True(t, errors.Is(wrongSecret, "UNAUTHORIZED"))
	assert.True(t, errors.Is(unknownUser, "UNAUTHORIZED"))
}

func TestLogoutClearsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.register(t, "nova", "nova@example.com")
	require.NoError(t, f.auth.Logout(ctx))

	current, err := f.auth.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}
