package authz

import "go-lottery-admin/internal/model"

// Identity is the authenticated caller. The ID, name and email come from the
// bearer token; the role is re-read from the database on every request, so
// role changes take effect on the next request without token invalidation.
type Identity struct {
	ID     uint
	Name   string
	Email  string
	RoleID uint
	Role   string
}

// IsAdmin reports whether the identity holds the admin role. The comparison
// key is the role ID, never the role name string.
func (i Identity) IsAdmin() bool {
	return i.RoleID == model.RoleAdminID
}
