package service

import (
	"testing"

	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"

	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) UserService {
	t.Helper()

	db := newTestDB(t)
	roleRepo := repository.NewRoleRepo(db)
	require.NoError(t, roleRepo.SeedDefaults())
	return NewUserService(repository.NewUserRepo(db), roleRepo)
}

func TestCreateUserDefaultsToUserRole(t *testing.T) {
	svc := newUserFixture(t)

	user, err := svc.CreateUser(&CreateUserRequest{
		Name:     "Alice",
		Email:    "Alice@Lottery.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, model.RoleUserID, user.RoleID)
	require.Equal(t, "alice@lottery.com", user.Email) // Stored lowercased
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newUserFixture(t)

	_, err := svc.CreateUser(&CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@lottery.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(&CreateUserRequest{
		Name:     "Impostor",
		Email:    "ALICE@lottery.com",
		Password: "secret2",
	})
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestCreateUserUnknownRole(t *testing.T) {
	svc := newUserFixture(t)

	_, err := svc.CreateUser(&CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@lottery.com",
		Password: "secret1",
		RoleID:   99,
	})
	require.ErrorIs(t, err, ErrRoleNotFound)
}

func TestCreateUserValidation(t *testing.T) {
	svc := newUserFixture(t)

	_, err := svc.CreateUser(&CreateUserRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "secret1",
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateUser(&CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@lottery.com",
		Password: "short",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateUserChangesRole(t *testing.T) {
	svc := newUserFixture(t)

	user, err := svc.CreateUser(&CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@lottery.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(user.ID, &UpdateUserRequest{
		Name:   "Alice",
		Email:  "alice@lottery.com",
		RoleID: model.RoleAdminID,
	})
	require.NoError(t, err)
	require.Equal(t, model.RoleAdminID, updated.RoleID)
}

func TestDeleteUserBlocksSelf(t *testing.T) {
	svc := newUserFixture(t)

	user, err := svc.CreateUser(&CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@lottery.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteUser(user.ID, user.ID), ErrCannotSelfWipe)
	require.NoError(t, svc.DeleteUser(user.ID, user.ID+1))
}
