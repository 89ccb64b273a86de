package models

// Role defines the user role type. Roles form a total order:
// user < researcher < moderator < admin.
type Role string

const (
	RoleUser       Role = "user"
	RoleResearcher Role = "researcher"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
)

// roleRanks maps each role to its position in the hierarchy. Unknown roles
// rank below every valid role.
var roleRanks = map[Role]int{
	RoleUser:       1,
	RoleResearcher: 2,
	RoleModerator:  3,
	RoleAdmin:      4,
}

// Roles lists every role in ascending hierarchy order.
var Roles = []Role{RoleUser, RoleResearcher, RoleModerator, RoleAdmin}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// AtLeast reports whether the role ranks at or above min in the hierarchy.
// This is the sole authorization primitive; there are no per-resource ACLs.
func (r Role) AtLeast(min Role) bool {
	return roleRanks[r] >= roleRanks[min]
}

// ParseRole converts a string to a Role, reporting whether it is valid.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}
