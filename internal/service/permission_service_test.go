package service

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

func newPermissionFixture(t *testing.T) (PermissionService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	roleRepo := repository.NewRoleRepo(db)
	pageRepo := repository.NewPageRepo(db)
	require.NoError(t, roleRepo.SeedDefaults())
	require.NoError(t, pageRepo.SeedDefaults())

	return NewPermissionService(repository.NewPermissionRepo(db), roleRepo, pageRepo), db
}

func pageIDByName(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	var page model.Page
	require.NoError(t, db.Where("page = ?", name).First(&page).Error)
	return page.ID
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	svc, db := newPermissionFixture(t)
	pageID := pageIDByName(t, db, model.PageSales)

	permission, created, err := svc.Upsert(&UpsertPermissionRequest{
		RoleID: model.RoleUserID,
		PageID: pageID,
		View:   true,
	})
	require.NoError(t, err)
	require.True(t, created)
	require.True(t, permission.View)
	require.False(t, permission.Add)

	// Second upsert for the same cell updates in place
	permission, created, err = svc.Upsert(&UpsertPermissionRequest{
		RoleID: model.RoleUserID,
		PageID: pageID,
		View:   true,
		Add:    true,
	})
	require.NoError(t, err)
	require.False(t, created)
	require.True(t, permission.Add)

	var count int64
	require.NoError(t, db.Model(&model.Permission{}).
		Where("role_id = ? AND page_id = ?", model.RoleUserID, pageID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUpsertUnknownRoleOrPage(t *testing.T) {
	svc, db := newPermissionFixture(t)
	pageID := pageIDByName(t, db, model.PageSales)

	_, _, err := svc.Upsert(&UpsertPermissionRequest{RoleID: 99, PageID: pageID})
	require.ErrorIs(t, err, ErrRoleNotFound)

	_, _, err = svc.Upsert(&UpsertPermissionRequest{RoleID: model.RoleUserID, PageID: 99})
	require.ErrorIs(t, err, ErrPageNotFound)
}

func TestBulkUpsertIdempotent(t *testing.T) {
	svc, db := newPermissionFixture(t)

	req := &BulkUpsertRequest{RoleID: model.RoleUserID}
	for _, name := range model.DefaultPages {
		req.Permissions = append(req.Permissions, BulkPermissionInput{
			PageID: pageIDByName(t, db, name),
			View:   true,
		})
	}

	result, err := svc.BulkUpsert(req)
	require.NoError(t, err)
	require.Equal(t, len(model.DefaultPages), result.Updated)
	for _, outcome := range result.Results {
		require.Equal(t, "created", outcome.Status)
	}

	// Replaying the same batch updates every cell, creating nothing
	result, err = svc.BulkUpsert(req)
	require.NoError(t, err)
	require.Equal(t, len(model.DefaultPages), result.Updated)
	for _, outcome := range result.Results {
		require.Equal(t, "updated", outcome.Status)
	}

	var count int64
	require.NoError(t, db.Model(&model.Permission{}).
		Where("role_id = ?", model.RoleUserID).
		Count(&count).Error)
	require.EqualValues(t, len(model.DefaultPages), count)
}

func TestBulkUpsertSkipsUnknownPage(t *testing.T) {
	svc, db := newPermissionFixture(t)

	result, err := svc.BulkUpsert(&BulkUpsertRequest{
		RoleID: model.RoleUserID,
		Permissions: []BulkPermissionInput{
			{PageID: pageIDByName(t, db, model.PageSales), View: true},
			{PageID: 999, View: true},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Updated)
	require.Len(t, result.Results, 2)
	require.Equal(t, "created", result.Results[0].Status)
	require.Equal(t, "skipped", result.Results[1].Status)
	require.EqualValues(t, 999, result.Results[1].PageID)
}

func TestBulkUpsertUnknownRole(t *testing.T) {
	svc, db := newPermissionFixture(t)

	_, err := svc.BulkUpsert(&BulkUpsertRequest{
		RoleID: 42,
		Permissions: []BulkPermissionInput{
			{PageID: pageIDByName(t, db, model.PageSales), View: true},
		},
	})
	require.ErrorIs(t, err, ErrRoleNotFound)
}

func TestDeleteByRole(t *testing.T) {
	svc, db := newPermissionFixture(t)
	pageID := pageIDByName(t, db, model.PageSales)

	_, _, err := svc.Upsert(&UpsertPermissionRequest{
		RoleID: model.RoleUserID,
		PageID: pageID,
		View:   true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByRole(model.RoleUserID))

	rows, err := svc.GetByRole(model.RoleUserID)
	require.NoError(t, err)
	require.Empty(t, rows)

	require.ErrorIs(t, svc.DeleteByRole(42), ErrRoleNotFound)
}
