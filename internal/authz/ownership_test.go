package authz

import (
	"testing"

	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestScopeToOwnerPinsNonAdmin(t *testing.T) {
	user := Identity{ID: 7, RoleID: model.RoleUserID}

	// A caller-supplied user_id is discarded, not merged
	requested := uint(3)
	filter := repository.SaleFilter{UserID: &requested}
	ScopeToOwner(user, &filter)

	require.NotNil(t, filter.UserID)
	require.Equal(t, uint(7), *filter.UserID)
}

func TestScopeToOwnerPinsEmptyFilter(t *testing.T) {
	user := Identity{ID: 7, RoleID: model.RoleUserID}

	filter := repository.SaleFilter{}
	ScopeToOwner(user, &filter)

	require.NotNil(t, filter.UserID)
	require.Equal(t, uint(7), *filter.UserID)
}

func TestScopeToOwnerAdminPassthrough(t *testing.T) {
	admin := Identity{ID: 1, RoleID: model.RoleAdminID}

	requested := uint(3)
	filter := repository.SaleFilter{UserID: &requested}
	ScopeToOwner(admin, &filter)

	require.Equal(t, uint(3), *filter.UserID)

	empty := repository.SaleFilter{}
	ScopeToOwner(admin, &empty)
	require.Nil(t, empty.UserID)
}

func TestCheckOwner(t *testing.T) {
	user := Identity{ID: 7, RoleID: model.RoleUserID}

	require.NoError(t, CheckOwner(user, 7))
	require.ErrorIs(t, CheckOwner(user, 9), ErrNotOwner)

	admin := Identity{ID: 1, RoleID: model.RoleAdminID}
	require.NoError(t, CheckOwner(admin, 9))
}

func TestRequireRole(t *testing.T) {
	user := Identity{ID: 7, RoleID: model.RoleUserID}
	admin := Identity{ID: 1, RoleID: model.RoleAdminID}

	require.NoError(t, RequireRole(admin, model.RoleAdminID))
	require.ErrorIs(t, RequireRole(user, model.RoleAdminID), ErrForbidden)
	require.NoError(t, RequireRole(user, model.RoleAdminID, model.RoleUserID))
}

func TestIsAdminComparesRoleID(t *testing.T) {
	// The role name string never participates in the decision
	impostor := Identity{ID: 7, RoleID: model.RoleUserID, Role: "admin"}
	require.False(t, impostor.IsAdmin())

	renamed := Identity{ID: 1, RoleID: model.RoleAdminID, Role: "superuser"}
	require.True(t, renamed.IsAdmin())
}
