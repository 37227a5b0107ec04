package authdomain

// Role represents a caller's role for authorization purposes.
type Role string

const (
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// IsValid checks if the role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEditor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Satisfies reports whether r grants at least the access of required.
// An admin satisfies every role.
func (r Role) Satisfies(required Role) bool {
	return r == RoleAdmin || r == required
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
