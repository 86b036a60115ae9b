package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-lottery-admin/internal/middleware"
	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"
	"go-lottery-admin/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Image types accepted for category uploads
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const maxImageSize = 5 * 1024 * 1024 // 5MB

type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
	uploadDir    string
	hub          *ws.Hub
}

func NewCategoryHandler(categoryRepo repository.CategoryRepository, uploadDir string, hub *ws.Hub) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo, uploadDir: uploadDir, hub: hub}
}

func (h *CategoryHandler) publish(c *fiber.Ctx, action string, data interface{}) {
	if h.hub == nil {
		return
	}
	h.hub.Publish(ws.Event{
		Resource: "categories",
		Action:   action,
		Actor:    middleware.Identity(c).Name,
		Data:     data,
	})
}

// saveImage stores an uploaded category image under uploads/categories with
// a uuid filename and returns its public path.
func (h *CategoryHandler) saveImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("category_image")
	if err != nil {
		return "", nil // No image attached
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("only image files (JPEG, PNG, GIF, WEBP) are allowed")
	}
	if file.Size > maxImageSize {
		return "", fmt.Errorf("image must be smaller than 5MB")
	}

	dir := filepath.Join(h.uploadDir, "categories")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("category_%s%s", uuid.New().String(), ext)
	if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}

	return "/uploads/categories/" + filename, nil
}

// GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryRepo.FindAll()
	if err != nil {
		return fail(c, 500, "An error occurred while fetching categories.")
	}
	return success(c, 200, "Categories fetched successfully", fiber.Map{
		"count":      len(categories),
		"categories": categories,
	})
}

// GET /api/categories/active
func (h *CategoryHandler) GetActiveCategories(c *fiber.Ctx) error {
	categories, err := h.categoryRepo.FindActive()
	if err != nil {
		return fail(c, 500, "An error occurred while fetching categories.")
	}
	return success(c, 200, "Categories fetched successfully", fiber.Map{
		"count":      len(categories),
		"categories": categories,
	})
}

// GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid category ID")
	}

	category, err := h.categoryRepo.FindByID(id)
	if err != nil {
		return fail(c, 404, "Category not found")
	}
	return success(c, 200, "Category fetched successfully", fiber.Map{"category": category})
}

// POST /api/categories  (multipart: category_name, status, category_image)
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("category_name"))
	if name == "" {
		return fail(c, 422, "Category name is required")
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		return fail(c, 400, err.Error())
	}

	category := &model.Category{
		CategoryName:  name,
		CategoryImage: imagePath,
		Status:        1,
	}
	if status := c.FormValue("status"); status == "0" {
		category.Status = 0
	}

	if err := h.categoryRepo.Create(category); err != nil {
		return fail(c, 500, "An error occurred while creating category.")
	}

	h.publish(c, "created", category)
	return success(c, 201, "Category created successfully", fiber.Map{"category": category})
}

// PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid category ID")
	}

	category, err := h.categoryRepo.FindByID(id)
	if err != nil {
		return fail(c, 404, "Category not found")
	}

	if name := strings.TrimSpace(c.FormValue("category_name")); name != "" {
		category.CategoryName = name
	}
	if status := c.FormValue("status"); status != "" {
		if status == "0" {
			category.Status = 0
		} else {
			category.Status = 1
		}
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		return fail(c, 400, err.Error())
	}
	if imagePath != "" {
		category.CategoryImage = imagePath
	}

	if err := h.categoryRepo.Update(category); err != nil {
		return fail(c, 500, "An error occurred while updating category.")
	}

	h.publish(c, "updated", category)
	return success(c, 200, "Category updated successfully", fiber.Map{"category": category})
}

// DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid category ID")
	}

	if _, err := h.categoryRepo.FindByID(id); err != nil {
		return fail(c, 404, "Category not found")
	}

	// Refuse to orphan products or sales
	if n, err := h.categoryRepo.CountProducts(id); err != nil {
		return fail(c, 500, "An error occurred while deleting category.")
	} else if n > 0 {
		return fail(c, 409, "Category has products and cannot be deleted")
	}
	if n, err := h.categoryRepo.CountSales(id); err != nil {
		return fail(c, 500, "An error occurred while deleting category.")
	} else if n > 0 {
		return fail(c, 409, "Category has sales and cannot be deleted")
	}

	if err := h.categoryRepo.Delete(id); err != nil {
		return fail(c, 500, "An error occurred while deleting category.")
	}

	h.publish(c, "deleted", fiber.Map{"id": id})
	return success(c, 200, "Category deleted successfully", nil)
}
