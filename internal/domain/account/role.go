package account

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Role is the closed set of actors the API knows about.
type Role string

const (
	RoleGuest Role = "guest"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

var roleRank = map[Role]int{
	RoleGuest: 1,
	RoleOwner: 2,
	RoleAdmin: 3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	need, okMin := roleRank[min]
	return ok && okMin && have >= need
}

// Principal is the authenticated caller.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsStaff() bool {
	return p.Role.AtLeast(RoleOwner)
}

// CanAccess reports whether the caller may act on a booking held by guestID.
func (p Principal) CanAccess(guestID uuid.UUID) bool {
	return p.IsStaff() || p.UserID == guestID
}
