package handler

import (
	"errors"

	"go-lottery-admin/internal/middleware"
	"go-lottery-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers lists all users (admin only)
// GET /api/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return fail(c, 500, "An error occurred while fetching users.")
	}
	return success(c, 200, "Users fetched successfully", fiber.Map{
		"count": len(users),
		"users": users,
	})
}

// GetUser fetches one user (admin only)
// GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid user ID")
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		return fail(c, 404, "User not found")
	}
	return success(c, 200, "User fetched successfully", fiber.Map{"user": user})
}

// CreateUser creates a new user (admin only)
// POST /api/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return fail(c, 422, err.Error())
		case errors.Is(err, service.ErrEmailExists):
			return fail(c, 409, "Email already exists")
		case errors.Is(err, service.ErrRoleNotFound):
			return fail(c, 404, "Role not found")
		default:
			return fail(c, 500, "An error occurred while creating user.")
		}
	}

	return success(c, 201, "User created successfully", fiber.Map{"user": user})
}

// UpdateUser updates a user (admin only)
// PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid user ID")
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fail(c, 404, "User not found")
		case errors.Is(err, service.ErrValidation):
			return fail(c, 422, err.Error())
		case errors.Is(err, service.ErrEmailExists):
			return fail(c, 409, "Email already exists")
		case errors.Is(err, service.ErrRoleNotFound):
			return fail(c, 404, "Role not found")
		default:
			return fail(c, 500, "An error occurred while updating user.")
		}
	}

	return success(c, 200, "User updated successfully", fiber.Map{"user": user})
}

// DeleteUser removes a user (admin only, no self-delete)
// DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid user ID")
	}

	identity := middleware.Identity(c)
	if err := h.userService.DeleteUser(id, identity.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrCannotSelfWipe):
			return fail(c, 400, "You cannot delete your own account")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fail(c, 404, "User not found")
		default:
			return fail(c, 500, "An error occurred while deleting user.")
		}
	}

	return success(c, 200, "User deleted successfully", nil)
}
