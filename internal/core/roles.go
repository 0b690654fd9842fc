package core

// RoleAdmin is the administrator marker role attached by the backend.
const RoleAdmin = "ROLE_ADMIN"

// HasRole reports whether the user carries the given role tag.
// There is no role hierarchy; this is a plain membership check.
func HasRole(u *User, role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user carries the administrator role.
func IsAdmin(u *User) bool {
	return HasRole(u, RoleAdmin)
}
