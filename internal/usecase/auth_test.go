//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"levelup-cart/internal/domain/user"
	"levelup-cart/internal/infra/repository"
	"levelup-cart/internal/pkg/clock"
	"levelup-cart/internal/pkg/jwt"
	"levelup-cart/internal/pkg/password"
	"levelup-cart/internal/usecase"
	"levelup-cart/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (usecase.AuthUseCase, *repository.UserRepository) {
	t.Helper()

	repo := repository.NewUserRepository()
	jwtService := jwt.NewService("test-secret-key", time.Hour)
	return usecase.NewAuthUseCase(repo, jwtService, clock.NewRealClock()), repo
}

func createAccount(t *testing.T, repo *repository.UserRepository, plainPassword string, mutate func(*builder.UserBuilder)) *user.User {
	t.Helper()

	hash, err := password.HashPassword(plainPassword)
	require.NoError(t, err)

	b := builder.NewUserBuilder().WithPasswordHash(hash)
	if mutate != nil {
		mutate(b)
	}
	account, err := b.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestAuthUseCaseLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a token and the user view", func(t *testing.T) {
		uc, repo := newAuthFixture(t)
		account := createAccount(t, repo, "password123", nil)

		creds, err := user.NewCredentials("test@example.com", "password123")
		require.NoError(t, err)

		token, view, err := uc.Login(ctx, creds)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, account.ID(), view.ID)
		assert.Equal(t, "customer", view.Role)
	})

	t.Run("unknown email returns ErrUserNotFound", func(t *testing.T) {
		uc, _ := newAuthFixture(t)

		creds, err := user.NewCredentials("nobody@example.com", "password123")
		require.NoError(t, err)

		_, _, err = uc.Login(ctx, creds)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("wrong password returns ErrInvalidCredentials", func(t *testing.T) {
		uc, repo := newAuthFixture(t)
		createAccount(t, repo, "password123", nil)

		creds, err := user.NewCredentials("test@example.com", "wrongpassword")
		require.NoError(t, err)

		_, _, err = uc.Login(ctx, creds)
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})
}

func TestAuthUseCaseRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer account", func(t *testing.T) {
		uc, repo := newAuthFixture(t)

		view, err := uc.Register(ctx, usecase.RegisterParams{
			Name:     "Nuevo Cliente",
			Email:    "nuevo@example.com",
			Rut:      "12345678-5",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, "customer", view.Role)
		assert.Equal(t, 0, view.Points)
		assert.False(t, view.HasDuocDiscount)

		stored, err := repo.FindByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "12345678-5", stored.Rut().Value())
		// Stored hash must verify against the plain password.
		assert.NoError(t, password.ComparePassword(stored.PasswordHash(), "password123"))
	})

	t.Run("duoc email gets the institutional discount", func(t *testing.T) {
		uc, _ := newAuthFixture(t)

		view, err := uc.Register(ctx, usecase.RegisterParams{
			Name:     "Alumno Duoc",
			Email:    "alumno@duocuc.cl",
			Rut:      "1234567-4",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.True(t, view.HasDuocDiscount)
	})

	t.Run("validation failures surface as ErrInvalidRegistration", func(t *testing.T) {
		uc, _ := newAuthFixture(t)

		cases := []struct {
			name   string
			params usecase.RegisterParams
		}{
			{name: "bad email", params: usecase.RegisterParams{Name: "X", Email: "bad", Rut: "12345678-5", Password: "password123"}},
			{name: "bad rut", params: usecase.RegisterParams{Name: "X", Email: "x@example.com", Rut: "12345678-9", Password: "password123"}},
			{name: "weak password", params: usecase.RegisterParams{Name: "X", Email: "x@example.com", Rut: "12345678-5", Password: "short"}},
			{name: "empty name", params: usecase.RegisterParams{Name: "", Email: "x@example.com", Rut: "12345678-5", Password: "password123"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Register(ctx, tc.params)
				assert.ErrorIs(t, err, usecase.ErrInvalidRegistration)
			})
		}
	})

	t.Run("duplicate email returns ErrDuplicateUser", func(t *testing.T) {
		uc, repo := newAuthFixture(t)
		createAccount(t, repo, "password123", nil)

		_, err := uc.Register(ctx, usecase.RegisterParams{
			Name:     "Doble",
			Email:    "test@example.com",
			Rut:      "1234567-4",
			Password: "password123",
		})
		assert.ErrorIs(t, err, usecase.ErrDuplicateUser)
	})
}

func TestAuthUseCaseGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the account view", func(t *testing.T) {
		uc, repo := newAuthFixture(t)
		account := createAccount(t, repo, "password123", nil)

		view, err := uc.GetCurrentUser(ctx, account.ID())
		require.NoError(t, err)
		assert.Equal(t, account.Email().Value(), view.Email)
	})

	t.Run("inactive account returns ErrUserInactive", func(t *testing.T) {
		uc, repo := newAuthFixture(t)
		account := createAccount(t, repo, "password123", func(b *builder.UserBuilder) {
			b.AsInactive()
		})

		_, err := uc.GetCurrentUser(ctx, account.ID())
		assert.ErrorIs(t, err, usecase.ErrUserInactive)
	})
}
