//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"parkingpro/internal/domain/user"
	"parkingpro/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleStaff, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("secret")

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleUser, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other").GenerateToken(uuid.New(), user.RoleUser, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
