//go:build unit

package usecase

import (
	"errors"
	"testing"
	"time"

	"escape-booking/internal/domain/account"
	"escape-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	v := NewTokenValidator(svc)
	p := account.Principal{UserID: uuid.New(), Role: account.RoleAdmin}

	token, err := svc.GenerateToken(p)
	require.NoError(t, err)

	got, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = v.ValidateToken(token + "x")
	assert.True(t, errors.Is(err, ErrTokenValidation))
	assert.True(t, errors.Is(err, jwt.ErrInvalidToken))
}
