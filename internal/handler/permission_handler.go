package handler

import (
	"errors"

	"go-lottery-admin/internal/middleware"
	"go-lottery-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PermissionHandler struct {
	permissionService service.PermissionService
}

func NewPermissionHandler(permissionService service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

// GetPermissions lists the whole grant matrix (admin only)
// GET /api/permissions
func (h *PermissionHandler) GetPermissions(c *fiber.Ctx) error {
	permissions, err := h.permissionService.GetAll()
	if err != nil {
		return fail(c, 500, "An error occurred while fetching permissions.")
	}
	return success(c, 200, "Permissions fetched successfully", fiber.Map{
		"count":       len(permissions),
		"permissions": permissions,
	})
}

// GetPermissionsByRole lists one role's grants (admin only)
// GET /api/permissions/role/:roleId
func (h *PermissionHandler) GetPermissionsByRole(c *fiber.Ctx) error {
	roleID, err := parseID(c, "roleId")
	if err != nil {
		return fail(c, 400, "Invalid role ID")
	}

	permissions, err := h.permissionService.GetByRole(roleID)
	if err != nil {
		if errors.Is(err, service.ErrRoleNotFound) {
			return fail(c, 404, "Role not found")
		}
		return fail(c, 500, "An error occurred while fetching permissions.")
	}
	return success(c, 200, "Permissions fetched successfully", fiber.Map{
		"count":       len(permissions),
		"permissions": permissions,
	})
}

// GetMyPermissions lists the caller's own grants
// GET /api/permissions/my
func (h *PermissionHandler) GetMyPermissions(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	permissions, err := h.permissionService.MyPermissions(identity)
	if err != nil {
		return fail(c, 500, "An error occurred while fetching permissions.")
	}
	return success(c, 200, "Permissions fetched successfully", fiber.Map{
		"role_id":     identity.RoleID,
		"role":        identity.Role,
		"permissions": permissions,
	})
}

// UpsertPermission creates or updates one matrix cell (admin only)
// POST /api/permissions
func (h *PermissionHandler) UpsertPermission(c *fiber.Ctx) error {
	var req service.UpsertPermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	permission, created, err := h.permissionService.Upsert(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return fail(c, 422, err.Error())
		case errors.Is(err, service.ErrRoleNotFound):
			return fail(c, 404, "Role not found")
		case errors.Is(err, service.ErrPageNotFound):
			return fail(c, 404, "Page not found")
		default:
			return fail(c, 500, "An error occurred while managing permission.")
		}
	}

	if created {
		return success(c, 201, "Permission created successfully", fiber.Map{"permission": permission})
	}
	return success(c, 200, "Permission updated successfully", fiber.Map{"permission": permission})
}

// BulkUpsertPermissions applies a batch of cells for one role (admin only)
// POST /api/permissions/bulk
func (h *PermissionHandler) BulkUpsertPermissions(c *fiber.Ctx) error {
	var req service.BulkUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	result, err := h.permissionService.BulkUpsert(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return fail(c, 422, err.Error())
		case errors.Is(err, service.ErrRoleNotFound):
			return fail(c, 404, "Role not found")
		default:
			return fail(c, 500, "An error occurred while updating permissions.")
		}
	}

	return success(c, 200, "Permissions updated successfully", result)
}

// DeletePermission removes one matrix cell (admin only)
// DELETE /api/permissions/:id
func (h *PermissionHandler) DeletePermission(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid permission ID")
	}

	if err := h.permissionService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, 404, "Permission not found")
		}
		return fail(c, 500, "An error occurred while deleting permission.")
	}
	return success(c, 200, "Permission deleted successfully", nil)
}

// DeletePermissionsByRole clears a role's grants (admin only)
// DELETE /api/permissions/role/:roleId
func (h *PermissionHandler) DeletePermissionsByRole(c *fiber.Ctx) error {
	roleID, err := parseID(c, "roleId")
	if err != nil {
		return fail(c, 400, "Invalid role ID")
	}

	if err := h.permissionService.DeleteByRole(roleID); err != nil {
		if errors.Is(err, service.ErrRoleNotFound) {
			return fail(c, 404, "Role not found")
		}
		return fail(c, 500, "An error occurred while deleting permissions.")
	}
	return success(c, 200, "Permissions deleted successfully", nil)
}
