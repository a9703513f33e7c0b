package staff

import "errors"

var ErrInvalidRole = errors.New("invalid staff role")

type Role string

const (
	RoleHost  Role = "host"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

var roleHierarchy = map[Role]int{
	RoleHost:  1,
	RoleStaff: 2,
	RoleAdmin: 3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never do.
func (r Role) AtLeast(minRole Role) bool {
	level, ok := roleHierarchy[r]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
