package handler

import (
	"strings"

	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// PageHandler administers the page registry (admin only). Deleting a page
// cascades its permission rows.
type PageHandler struct {
	pageRepo repository.PageRepository
}

func NewPageHandler(pageRepo repository.PageRepository) *PageHandler {
	return &PageHandler{pageRepo: pageRepo}
}

type pageRequest struct {
	Page string `json:"page"`
}

// GET /api/pages
func (h *PageHandler) GetPages(c *fiber.Ctx) error {
	pages, err := h.pageRepo.FindAll()
	if err != nil {
		return fail(c, 500, "An error occurred while fetching pages.")
	}
	return success(c, 200, "Pages fetched successfully", fiber.Map{
		"count": len(pages),
		"pages": pages,
	})
}

// GET /api/pages/:id
func (h *PageHandler) GetPage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid page ID")
	}

	page, err := h.pageRepo.FindByID(id)
	if err != nil {
		return fail(c, 404, "Page not found")
	}
	return success(c, 200, "Page fetched successfully", fiber.Map{"page": page})
}

// POST /api/pages
func (h *PageHandler) CreatePage(c *fiber.Ctx) error {
	var req pageRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	name := strings.TrimSpace(req.Page)
	if name == "" {
		return fail(c, 422, "Page name is required")
	}

	if existing, _ := h.pageRepo.FindByName(name); existing != nil {
		return fail(c, 409, "Page already exists")
	}

	page := &model.Page{Name: name}
	if err := h.pageRepo.Create(page); err != nil {
		return fail(c, 500, "An error occurred while creating page.")
	}
	return success(c, 201, "Page created successfully", fiber.Map{"page": page})
}

// PUT /api/pages/:id
func (h *PageHandler) UpdatePage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid page ID")
	}

	var req pageRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	name := strings.TrimSpace(req.Page)
	if name == "" {
		return fail(c, 422, "Page name is required")
	}

	page, err := h.pageRepo.FindByID(id)
	if err != nil {
		return fail(c, 404, "Page not found")
	}

	if existing, _ := h.pageRepo.FindByName(name); existing != nil && existing.ID != page.ID {
		return fail(c, 409, "Page already exists")
	}

	page.Name = name
	if err := h.pageRepo.Update(page); err != nil {
		return fail(c, 500, "An error occurred while updating page.")
	}
	return success(c, 200, "Page updated successfully", fiber.Map{"page": page})
}

// DELETE /api/pages/:id
func (h *PageHandler) DeletePage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid page ID")
	}

	if _, err := h.pageRepo.FindByID(id); err != nil {
		return fail(c, 404, "Page not found")
	}

	if err := h.pageRepo.Delete(id); err != nil {
		return fail(c, 500, "An error occurred while deleting page.")
	}
	return success(c, 200, "Page deleted successfully", nil)
}
