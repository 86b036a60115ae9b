package authz

import (
	"errors"
	"fmt"

	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"

	"gorm.io/gorm"
)

// Evaluator decides whether an identity may perform an action on a page.
// Decisions are computed fresh from the database on every call; there is no
// permission cache, so matrix changes take effect on the next request.
type Evaluator struct {
	pages       repository.PageRepository
	permissions repository.PermissionRepository
}

func NewEvaluator(pages repository.PageRepository, permissions repository.PermissionRepository) *Evaluator {
	return &Evaluator{pages: pages, permissions: permissions}
}

// CanAccess returns nil to allow, ErrForbidden to deny, or
// ErrPageNotConfigured when the named page is missing from the registry.
//
// The admin branch is an explicit bypass: admin identities are granted
// without a matrix lookup, even for pages that have no permission row.
// For everyone else the matrix is fail-closed: no row means deny.
func (e *Evaluator) CanAccess(identity Identity, pageName string, action Action) error {
	if identity.IsAdmin() {
		return nil
	}

	page, err := e.pages.FindByName(pageName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %q", ErrPageNotConfigured, pageName)
		}
		return err
	}

	permission, err := e.permissions.FindByRoleAndPage(identity.RoleID, page.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no permissions configured for %s", ErrForbidden, pageName)
		}
		return err
	}

	if !granted(permission, action) {
		return fmt.Errorf("%w: no permission to %s %s", ErrForbidden, action, pageName)
	}
	return nil
}

// granted whitelists the four known actions; anything else is a deny.
func granted(p *model.Permission, action Action) bool {
	switch action {
	case ActionView:
		return p.View
	case ActionAdd:
		return p.Add
	case ActionEdit:
		return p.Edit
	case ActionDelete:
		return p.Del
	default:
		return false
	}
}
