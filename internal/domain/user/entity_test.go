//go:build unit

package user_test

import (
	"testing"

	"levelup-cart/internal/domain/user"
	"levelup-cart/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, "12345678-5", actual.Rut().Value())
		assert.Equal(t, user.RoleCustomer, actual.Role())
		assert.Equal(t, 0, actual.Points())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.HasDuocDiscount())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "plain address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("someone@example.com") },
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("not-an-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("someone@") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("rut validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "dotted form",
				mutate: func(b *builder.UserBuilder) { b.WithRut("12.345.678-5") },
			},
			{
				name:   "wrong check digit",
				mutate: func(b *builder.UserBuilder) { b.WithRut("12345678-9") },
				errIs:  user.ErrInvalidRut,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "seller role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("seller") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("superuser") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("duoc email grants the institutional discount", func(t *testing.T) {
		account, err := builder.NewUserBuilder().WithEmail("alumno@duocuc.cl").BuildDomain()
		require.NoError(t, err)
		assert.True(t, account.HasDuocDiscount())

		account, err = builder.NewUserBuilder().WithEmail("profe@DUOC.cl").BuildDomain()
		require.NoError(t, err)
		assert.True(t, account.HasDuocDiscount())
	})
}

func TestPassword(t *testing.T) {
	t.Run("minimum length enforced", func(t *testing.T) {
		_, err := user.NewPassword("short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

		_, err = user.NewPassword("password")
		assert.NoError(t, err)
	})
}

func TestCredentials(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		creds, err := user.NewCredentials("test@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", creds.Email().Value())
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		_, err := user.NewCredentials("bad", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}
