package handler

import (
	"go-lottery-admin/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	roleRepo repository.RoleRepository
}

func NewRoleHandler(roleRepo repository.RoleRepository) *RoleHandler {
	return &RoleHandler{roleRepo: roleRepo}
}

// GetRoles returns all available roles
// GET /api/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.roleRepo.FindAll()
	if err != nil {
		return fail(c, 500, "An error occurred while fetching roles.")
	}
	return success(c, 200, "Roles fetched successfully", fiber.Map{
		"count": len(roles),
		"roles": roles,
	})
}

// GetRole returns one role
// GET /api/roles/:id
func (h *RoleHandler) GetRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid role ID")
	}

	role, err := h.roleRepo.FindByID(id)
	if err != nil {
		return fail(c, 404, "Role not found")
	}
	return success(c, 200, "Role fetched successfully", fiber.Map{"role": role})
}
