package handler

import (
	"errors"
	"time"

	"go-lottery-admin/internal/authz"
	"go-lottery-admin/internal/middleware"
	"go-lottery-admin/internal/repository"
	"go-lottery-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	saleService service.SaleService
}

func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

func saleFilterFromQuery(c *fiber.Ctx) repository.SaleFilter {
	return repository.SaleFilter{
		CategoryID: queryUint(c, "category_id"),
		UserID:     queryUint(c, "user_id"),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by", "created_at"),
		SortOrder:  c.Query("sort_order", "desc"),
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
	}
}

func saleError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return fail(c, 422, err.Error())
	case errors.Is(err, service.ErrSaleNotFound):
		return fail(c, 404, "Sale not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		return fail(c, 404, "Category not found")
	case errors.Is(err, authz.ErrNotOwner):
		return fail(c, 403, "You are not authorized to modify this sale")
	default:
		return fail(c, 500, fallback)
	}
}

// CreateSale records a sale owned by the caller
// POST /api/sales
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	sale, err := h.saleService.Create(middleware.Identity(c), &req)
	if err != nil {
		return saleError(c, err, "An error occurred while creating sale.")
	}
	return success(c, 201, "Sale created successfully", fiber.Map{"sale": sale})
}

// GetSales lists sales; non-admin callers only see their own rows
// GET /api/sales
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	list, err := h.saleService.List(middleware.Identity(c), saleFilterFromQuery(c))
	if err != nil {
		return fail(c, 500, "An error occurred while fetching sales.")
	}
	return success(c, 200, "Sales fetched successfully", list)
}

// GetMySales lists the caller's own sales
// GET /api/sales/my-sales
func (h *SaleHandler) GetMySales(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	filter := repository.SaleFilter{
		UserID: &identity.ID,
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}
	list, err := h.saleService.List(identity, filter)
	if err != nil {
		return fail(c, 500, "An error occurred while fetching your sales.")
	}
	return success(c, 200, "Your sales fetched successfully", list)
}

// GetSale fetches a single sale
// GET /api/sales/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid sale ID")
	}

	sale, err := h.saleService.GetByID(middleware.Identity(c), id)
	if err != nil {
		return saleError(c, err, "An error occurred while fetching sale.")
	}
	return success(c, 200, "Sale fetched successfully", fiber.Map{"sale": sale})
}

// UpdateSale updates a sale (owner or admin)
// PUT /api/sales/:id
func (h *SaleHandler) UpdateSale(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid sale ID")
	}

	var req service.UpdateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	sale, err := h.saleService.Update(middleware.Identity(c), id, &req)
	if err != nil {
		return saleError(c, err, "An error occurred while updating sale.")
	}
	return success(c, 200, "Sale updated successfully", fiber.Map{"sale": sale})
}

// DeleteSale removes a sale (owner or admin)
// DELETE /api/sales/:id
func (h *SaleHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid sale ID")
	}

	if err := h.saleService.Delete(middleware.Identity(c), id); err != nil {
		return saleError(c, err, "An error occurred while deleting sale.")
	}
	return success(c, 200, "Sale deleted successfully", nil)
}

// GetSalesReport returns a filtered report with summary totals
// GET /api/sales/report
func (h *SaleHandler) GetSalesReport(c *fiber.Ctx) error {
	filter := saleFilterFromQuery(c)
	filter.Limit = c.QueryInt("limit", 50)

	// Optional date/time window on created_at
	if startDate := c.Query("start_date"); startDate != "" {
		startTime := c.Query("start_time", "00:00:00")
		if at, err := time.Parse("2006-01-02T15:04:05", startDate+"T"+startTime); err == nil {
			filter.StartAt = &at
		} else {
			return fail(c, 422, "Invalid start date/time")
		}
	}
	if endDate := c.Query("end_date"); endDate != "" {
		endTime := c.Query("end_time", "23:59:59")
		if at, err := time.Parse("2006-01-02T15:04:05", endDate+"T"+endTime); err == nil {
			filter.EndAt = &at
		} else {
			return fail(c, 422, "Invalid end date/time")
		}
	}

	report, err := h.saleService.Report(middleware.Identity(c), filter)
	if err != nil {
		return fail(c, 500, "An error occurred while generating report.")
	}
	return success(c, 200, "Sales report generated successfully", report)
}
