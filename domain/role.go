package domain

// Role is the cached classification of a user's standing in a chat.
type Role string

const (
	RoleNone   Role = "none"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a persisted string back into the closed enumeration.
// The store can outlive the code that wrote it; an unrecognized value
// degrades to RoleNone so a corrupted cache entry can never grant admin.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleNone, RoleMember, RoleAdmin:
		return Role(s), true
	}
	return RoleNone, false
}
