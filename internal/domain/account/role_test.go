//go:build unit

package account_test

import (
	"testing"

	"escape-booking/internal/domain/account"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	tests := []struct {
		role account.Role
		min  account.Role
		want bool
	}{
		{account.RoleGuest, account.RoleGuest, true},
		{account.RoleGuest, account.RoleOwner, false},
		{account.RoleOwner, account.RoleOwner, true},
		{account.RoleAdmin, account.RoleOwner, true},
		{account.RoleOwner, account.RoleAdmin, false},
		{account.Role("root"), account.RoleGuest, false},
		{account.RoleAdmin, account.Role("root"), false},
	}
	for _, tt := range tests {
		t.Run(tt.role.String()+">="+tt.min.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}

	_, err := account.NewRole("superuser")
	assert.ErrorIs(t, err, account.ErrInvalidRole)
}

func TestPrincipal(t *testing.T) {
	holder := uuid.New()

	guest := account.Principal{UserID: holder, Role: account.RoleGuest}
	other := account.Principal{UserID: uuid.New(), Role: account.RoleGuest}
	owner := account.Principal{UserID: uuid.New(), Role: account.RoleOwner}

	assert.True(t, guest.CanAccess(holder))
	assert.False(t, other.CanAccess(holder))
	assert.True(t, owner.CanAccess(holder))

	assert.False(t, guest.IsStaff())
	assert.True(t, owner.IsStaff())
}
