//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"levelup-cart/internal/domain/user"
	"levelup-cart/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	userID := uuid.New()

	t.Run("generate then validate round trips the claims", func(t *testing.T) {
		svc := jwt.NewService("test-secret-key", time.Hour)

		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		svc := jwt.NewService("test-secret-key", -time.Minute)

		token, err := svc.GenerateToken(userID, user.RoleCustomer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with a different key is rejected", func(t *testing.T) {
		svc := jwt.NewService("test-secret-key", time.Hour)
		other := jwt.NewService("another-secret", time.Hour)

		token, err := other.GenerateToken(userID, user.RoleCustomer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage input is rejected", func(t *testing.T) {
		svc := jwt.NewService("test-secret-key", time.Hour)

		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
