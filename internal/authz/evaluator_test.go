package authz

import (
	"fmt"
	"strings"
	"testing"

	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Role{}, &model.Page{}, &model.Permission{},
		&model.User{}, &model.Category{}, &model.Product{},
		&model.TimeSlot{}, &model.Sale{},
	))
	return db
}

func newTestEvaluator(t *testing.T) (*Evaluator, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	pageRepo := repository.NewPageRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)
	require.NoError(t, pageRepo.SeedDefaults())
	return NewEvaluator(pageRepo, permissionRepo), db
}

func grant(t *testing.T, db *gorm.DB, roleID uint, pageName string, view, add, edit, del bool) {
	t.Helper()

	var page model.Page
	require.NoError(t, db.Where("page = ?", pageName).First(&page).Error)
	require.NoError(t, db.Create(&model.Permission{
		RoleID: roleID,
		PageID: page.ID,
		View:   view,
		Add:    add,
		Edit:   edit,
		Del:    del,
	}).Error)
}

func TestCanAccessAdminBypass(t *testing.T) {
	evaluator, _ := newTestEvaluator(t)
	admin := Identity{ID: 1, RoleID: model.RoleAdminID}

	// No permission rows exist at all, admin is still allowed everywhere
	for _, pageName := range model.DefaultPages {
		for _, action := range []Action{ActionView, ActionAdd, ActionEdit, ActionDelete} {
			require.NoError(t, evaluator.CanAccess(admin, pageName, action))
		}
	}
}

func TestCanAccessAdminBypassSkipsPageLookup(t *testing.T) {
	evaluator, _ := newTestEvaluator(t)
	admin := Identity{ID: 1, RoleID: model.RoleAdminID}

	// Even an unregistered page is allowed for admin; the bypass comes first
	require.NoError(t, evaluator.CanAccess(admin, "No Such Page", ActionView))
}

func TestCanAccessDeniesWithoutRow(t *testing.T) {
	evaluator, _ := newTestEvaluator(t)
	user := Identity{ID: 7, RoleID: model.RoleUserID}

	err := evaluator.CanAccess(user, model.PageSales, ActionView)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestCanAccessHonorsGrantColumns(t *testing.T) {
	evaluator, db := newTestEvaluator(t)
	user := Identity{ID: 7, RoleID: model.RoleUserID}

	grant(t, db, model.RoleUserID, model.PageSales, true, false, false, false)

	require.NoError(t, evaluator.CanAccess(user, model.PageSales, ActionView))
	require.ErrorIs(t, evaluator.CanAccess(user, model.PageSales, ActionAdd), ErrForbidden)
	require.ErrorIs(t, evaluator.CanAccess(user, model.PageSales, ActionEdit), ErrForbidden)
	require.ErrorIs(t, evaluator.CanAccess(user, model.PageSales, ActionDelete), ErrForbidden)
}

func TestCanAccessMixedGrants(t *testing.T) {
	evaluator, db := newTestEvaluator(t)
	user := Identity{ID: 7, RoleID: model.RoleUserID}

	grant(t, db, model.RoleUserID, model.PageProducts, true, true, false, false)

	require.NoError(t, evaluator.CanAccess(user, model.PageProducts, ActionView))
	require.NoError(t, evaluator.CanAccess(user, model.PageProducts, ActionAdd))
	require.ErrorIs(t, evaluator.CanAccess(user, model.PageProducts, ActionDelete), ErrForbidden)

	// The grant is scoped to one page, not the role as a whole
	require.ErrorIs(t, evaluator.CanAccess(user, model.PageSales, ActionView), ErrForbidden)
}

func TestCanAccessMissingPage(t *testing.T) {
	evaluator, _ := newTestEvaluator(t)
	user := Identity{ID: 7, RoleID: model.RoleUserID}

	err := evaluator.CanAccess(user, "Inventory", ActionView)
	require.ErrorIs(t, err, ErrPageNotConfigured)
	require.NotErrorIs(t, err, ErrForbidden)
}

func TestCanAccessOtherRoleUnaffected(t *testing.T) {
	evaluator, db := newTestEvaluator(t)

	grant(t, db, model.RoleUserID, model.PageSales, true, true, true, true)

	// A third role with no rows stays locked out
	other := Identity{ID: 9, RoleID: 3}
	require.ErrorIs(t, evaluator.CanAccess(other, model.PageSales, ActionView), ErrForbidden)
}

func TestGrantedUnknownAction(t *testing.T) {
	p := &model.Permission{View: true, Add: true, Edit: true, Del: true}
	require.False(t, granted(p, Action("archive")))
}
