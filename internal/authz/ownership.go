package authz

import (
	"fmt"

	"go-lottery-admin/internal/repository"
)

// ScopeToOwner enforces row-level isolation on sale listings. Non-admin
// identities have the filter's UserID pinned to their own ID; any
// caller-supplied value is discarded, not merged. Admin filters pass through
// untouched.
func ScopeToOwner(identity Identity, filter *repository.SaleFilter) {
	if identity.IsAdmin() {
		return
	}
	owner := identity.ID
	filter.UserID = &owner
}

// CheckOwner gates single-row mutations: a non-admin identity may only touch
// rows it owns. The resulting ErrNotOwner is distinct from not-found.
func CheckOwner(identity Identity, ownerID uint) error {
	if identity.IsAdmin() || identity.ID == ownerID {
		return nil
	}
	return fmt.Errorf("%w: user %d", ErrNotOwner, identity.ID)
}
