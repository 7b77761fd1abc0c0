//go:build unit

package jwt

import (
	"testing"
	"time"

	"escape-booking/internal/domain/account"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)
	p := account.Principal{UserID: uuid.New(), Role: account.RoleOwner}

	token, err := svc.GenerateToken(p)
	require.NoError(t, err)

	got, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	p := account.Principal{UserID: uuid.New(), Role: account.RoleGuest}
	svc := NewService("secret", time.Hour)

	t.Run("expired", func(t *testing.T) {
		token, err := NewService("secret", -time.Minute).GenerateToken(p)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateToken(p)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	sign := func(t *testing.T, claims Claims) string {
		t.Helper()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return token
	}

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.ValidateToken(sign(t, Claims{UserID: uuid.New(), Role: "superuser"}))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		_, err := svc.ValidateToken(sign(t, Claims{Role: "guest"}))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
