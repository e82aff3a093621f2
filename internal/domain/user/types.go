package user

import "walkies/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

// Role is the closed set of actor roles. An actor holds exactly one role
// for the lifetime of a session.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleWalker Role = "walker"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleWalker:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
