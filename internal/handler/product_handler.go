package handler

import (
	"strings"

	"go-lottery-admin/internal/middleware"
	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"
	"go-lottery-admin/internal/ws"
	"go-lottery-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	hub          *ws.Hub
}

func NewProductHandler(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, hub *ws.Hub) *ProductHandler {
	return &ProductHandler{productRepo: productRepo, categoryRepo: categoryRepo, hub: hub}
}

func (h *ProductHandler) publish(c *fiber.Ctx, action string, data interface{}) {
	if h.hub == nil {
		return
	}
	h.hub.Publish(ws.Event{
		Resource: "products",
		Action:   action,
		Actor:    middleware.Identity(c).Name,
		Data:     data,
	})
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productRepo.FindAll()
	if err != nil {
		return fail(c, 500, "An error occurred while fetching products.")
	}
	return success(c, 200, "Products fetched successfully", fiber.Map{
		"count":    len(products),
		"products": products,
	})
}

// GET /api/products/active
func (h *ProductHandler) GetActiveProducts(c *fiber.Ctx) error {
	products, err := h.productRepo.FindActive()
	if err != nil {
		return fail(c, 500, "An error occurred while fetching products.")
	}
	return success(c, 200, "Products fetched successfully", fiber.Map{
		"count":    len(products),
		"products": products,
	})
}

// GET /api/products/category/:categoryId
func (h *ProductHandler) GetProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return fail(c, 400, "Invalid category ID")
	}

	products, err := h.productRepo.FindByCategory(categoryID)
	if err != nil {
		return fail(c, 500, "An error occurred while fetching products.")
	}
	return success(c, 200, "Products fetched successfully", fiber.Map{
		"count":    len(products),
		"products": products,
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	product, err := h.productRepo.FindByID(id)
	if err != nil {
		return fail(c, 404, "Product not found")
	}
	return success(c, 200, "Product fetched successfully", fiber.Map{"product": product})
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	product.ProductName = strings.TrimSpace(product.ProductName)
	product.ProductCode = strings.TrimSpace(product.ProductCode)
	if errs := validator.ValidateStruct(&product); len(errs) > 0 {
		return fail(c, 422, "Validation failed: field "+errs[0].FailedField+" failed on "+errs[0].Tag)
	}

	if _, err := h.categoryRepo.FindByID(product.CategoryID); err != nil {
		return fail(c, 404, "Category not found")
	}
	if existing, _ := h.productRepo.FindByCode(product.ProductCode); existing != nil {
		return fail(c, 409, "Product code already exists")
	}

	product.UserID = middleware.Identity(c).ID
	if product.Status != 0 && product.Status != 1 {
		product.Status = 1
	}

	if err := h.productRepo.Create(&product); err != nil {
		return fail(c, 500, "An error occurred while creating product.")
	}

	created, err := h.productRepo.FindByID(product.ID)
	if err != nil {
		return fail(c, 500, "An error occurred while creating product.")
	}

	h.publish(c, "created", created)
	return success(c, 201, "Product created successfully", fiber.Map{"product": created})
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	product, err := h.productRepo.FindByID(id)
	if err != nil {
		return fail(c, 404, "Product not found")
	}

	var req struct {
		CategoryID  *uint    `json:"category_id"`
		ProductName *string  `json:"product_name"`
		ProductCode *string  `json:"product_code"`
		Price       *float64 `json:"price"`
		Status      *int     `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	if req.CategoryID != nil {
		if _, err := h.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return fail(c, 404, "Category not found")
		}
		product.CategoryID = *req.CategoryID
	}
	if req.ProductName != nil {
		name := strings.TrimSpace(*req.ProductName)
		if name == "" {
			return fail(c, 422, "Product name cannot be empty")
		}
		product.ProductName = name
	}
	if req.ProductCode != nil {
		code := strings.TrimSpace(*req.ProductCode)
		if code == "" {
			return fail(c, 422, "Product code cannot be empty")
		}
		if existing, _ := h.productRepo.FindByCode(code); existing != nil && existing.ID != product.ID {
			return fail(c, 409, "Product code already exists")
		}
		product.ProductCode = code
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return fail(c, 422, "Price must be a positive value")
		}
		product.Price = *req.Price
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := h.productRepo.Update(product); err != nil {
		return fail(c, 500, "An error occurred while updating product.")
	}

	h.publish(c, "updated", product)
	return success(c, 200, "Product updated successfully", fiber.Map{"product": product})
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	if _, err := h.productRepo.FindByID(id); err != nil {
		return fail(c, 404, "Product not found")
	}

	if err := h.productRepo.Delete(id); err != nil {
		return fail(c, 500, "An error occurred while deleting product.")
	}

	h.publish(c, "deleted", fiber.Map{"id": id})
	return success(c, 200, "Product deleted successfully", nil)
}
