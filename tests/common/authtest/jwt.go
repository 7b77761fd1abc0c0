//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"escape-booking/internal/domain/account"
	"escape-booking/internal/pkg/config"
	"escape-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, p account.Principal) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(p)
	require.NoError(t, err)
	return token
}

// NewPrincipal returns a fresh identity together with a signed token for it.
func (h *JWTHelper) NewPrincipal(t *testing.T, role account.Role) (account.Principal, string) {
	t.Helper()
	p := account.Principal{UserID: uuid.New(), Role: role}
	return p, h.GenerateToken(t, p)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, p account.Principal) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(p)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
