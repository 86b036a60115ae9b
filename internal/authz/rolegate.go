package authz

import "fmt"

// RequireRole is the coarse-grained gate: allow iff the identity's role ID is
// in the given set. Used for resources that are role-exclusive regardless of
// the permission matrix (user management, pages, permissions, time slots).
func RequireRole(identity Identity, roleIDs ...uint) error {
	for _, id := range roleIDs {
		if identity.RoleID == id {
			return nil
		}
	}
	return fmt.Errorf("%w: role not permitted", ErrForbidden)
}
