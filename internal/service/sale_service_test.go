package service

import (
	"testing"

	"go-lottery-admin/internal/authz"
	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type saleFixture struct {
	svc      SaleService
	saleRepo repository.SaleRepository
	db       *gorm.DB
	category model.Category

	admin authz.Identity
	alice authz.Identity
	bob   authz.Identity
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()

	db := newTestDB(t)
	require.NoError(t, repository.NewRoleRepo(db).SeedDefaults())

	category := model.Category{CategoryName: "Morning Draw", Status: 1}
	require.NoError(t, db.Create(&category).Error)

	users := []model.User{
		{Name: "Administrator", Email: "admin@lottery.com", Password: "x", RoleID: model.RoleAdminID},
		{Name: "Alice", Email: "alice@lottery.com", Password: "x", RoleID: model.RoleUserID},
		{Name: "Bob", Email: "bob@lottery.com", Password: "x", RoleID: model.RoleUserID},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}

	saleRepo := repository.NewSaleRepo(db)
	return &saleFixture{
		svc:      NewSaleService(saleRepo, repository.NewCategoryRepo(db), nil),
		saleRepo: saleRepo,
		db:       db,
		category: category,
		admin:    authz.Identity{ID: users[0].ID, Name: users[0].Name, RoleID: model.RoleAdminID},
		alice:    authz.Identity{ID: users[1].ID, Name: users[1].Name, RoleID: model.RoleUserID},
		bob:      authz.Identity{ID: users[2].ID, Name: users[2].Name, RoleID: model.RoleUserID},
	}
}

func (f *saleFixture) createSale(t *testing.T, identity authz.Identity, name string, qty int, price float64) *model.Sale {
	t.Helper()

	sale, err := f.svc.Create(identity, &CreateSaleRequest{
		Name:       name,
		Qty:        qty,
		Price:      price,
		CategoryID: f.category.ID,
	})
	require.NoError(t, err)
	return sale
}

func TestCreateSaleSetsOwner(t *testing.T) {
	f := newSaleFixture(t)

	sale := f.createSale(t, f.alice, "Ticket batch", 3, 10)
	require.Equal(t, f.alice.ID, sale.UserID)
	require.Equal(t, 3, sale.Qty)
}

func TestCreateSaleDefaultsQty(t *testing.T) {
	f := newSaleFixture(t)

	sale, err := f.svc.Create(f.alice, &CreateSaleRequest{
		Name:       "Single ticket",
		Price:      5,
		CategoryID: f.category.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 1, sale.Qty)
}

func TestCreateSaleUnknownCategory(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.Create(f.alice, &CreateSaleRequest{
		Name:       "Ticket batch",
		Price:      5,
		CategoryID: 999,
	})
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateSaleValidation(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.Create(f.alice, &CreateSaleRequest{CategoryID: f.category.ID})
	require.ErrorIs(t, err, ErrValidation)
}

func TestGetSaleMasksForeignRows(t *testing.T) {
	f := newSaleFixture(t)
	sale := f.createSale(t, f.bob, "Bob's sale", 1, 20)

	// Another user's row reads as not-found, not forbidden
	_, err := f.svc.GetByID(f.alice, sale.ID)
	require.ErrorIs(t, err, ErrSaleNotFound)

	got, err := f.svc.GetByID(f.bob, sale.ID)
	require.NoError(t, err)
	require.Equal(t, sale.ID, got.ID)

	got, err = f.svc.GetByID(f.admin, sale.ID)
	require.NoError(t, err)
	require.Equal(t, sale.ID, got.ID)
}

func TestUpdateSaleForeignRowDenied(t *testing.T) {
	f := newSaleFixture(t)
	sale := f.createSale(t, f.bob, "Bob's sale", 1, 20)

	name := "Hijacked"
	_, err := f.svc.Update(f.alice, sale.ID, &UpdateSaleRequest{Name: &name})
	require.ErrorIs(t, err, authz.ErrNotOwner)

	// The denied update left the row untouched
	unchanged, err := f.saleRepo.FindByID(sale.ID)
	require.NoError(t, err)
	require.Equal(t, "Bob's sale", unchanged.Name)
}

func TestUpdateSaleByOwnerAndAdmin(t *testing.T) {
	f := newSaleFixture(t)
	sale := f.createSale(t, f.bob, "Bob's sale", 1, 20)

	qty := 5
	updated, err := f.svc.Update(f.bob, sale.ID, &UpdateSaleRequest{Qty: &qty})
	require.NoError(t, err)
	require.Equal(t, 5, updated.Qty)

	price := 25.0
	updated, err = f.svc.Update(f.admin, sale.ID, &UpdateSaleRequest{Price: &price})
	require.NoError(t, err)
	require.Equal(t, 25.0, updated.Price)
}

func TestDeleteSaleForeignRowDenied(t *testing.T) {
	f := newSaleFixture(t)
	sale := f.createSale(t, f.bob, "Bob's sale", 1, 20)

	require.ErrorIs(t, f.svc.Delete(f.alice, sale.ID), authz.ErrNotOwner)
	require.NoError(t, f.svc.Delete(f.bob, sale.ID))

	require.ErrorIs(t, f.svc.Delete(f.bob, sale.ID), ErrSaleNotFound)
}

func TestListScopesToOwner(t *testing.T) {
	f := newSaleFixture(t)
	f.createSale(t, f.alice, "Alice 1", 1, 10)
	f.createSale(t, f.alice, "Alice 2", 1, 10)
	f.createSale(t, f.bob, "Bob 1", 1, 10)

	// A non-admin asking for another user's rows still gets only their own
	list, err := f.svc.List(f.alice, repository.SaleFilter{UserID: &f.bob.ID})
	require.NoError(t, err)
	require.EqualValues(t, 2, list.Total)
	for _, sale := range list.Sales {
		require.Equal(t, f.alice.ID, sale.UserID)
	}

	// Admin filters pass through untouched
	list, err = f.svc.List(f.admin, repository.SaleFilter{UserID: &f.bob.ID})
	require.NoError(t, err)
	require.EqualValues(t, 1, list.Total)

	list, err = f.svc.List(f.admin, repository.SaleFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 3, list.Total)
}

func TestReportSummary(t *testing.T) {
	f := newSaleFixture(t)
	f.createSale(t, f.alice, "Alice 1", 2, 10) // 20
	f.createSale(t, f.alice, "Alice 2", 1, 5)  // 5
	f.createSale(t, f.bob, "Bob 1", 4, 10)     // 40

	report, err := f.svc.Report(f.admin, repository.SaleFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 3, report.Summary.TotalSales)
	require.EqualValues(t, 7, report.Summary.TotalQty)
	require.EqualValues(t, 65, report.Summary.TotalRevenue)

	// Non-admin reports cover only their own rows
	report, err = f.svc.Report(f.bob, repository.SaleFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 1, report.Summary.TotalSales)
	require.EqualValues(t, 40, report.Summary.TotalRevenue)
}
