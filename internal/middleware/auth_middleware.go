package middleware

import (
	"errors"
	"strings"

	"go-lottery-admin/internal/authz"
	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"
	"go-lottery-admin/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// RequireAuth validates the bearer token and resolves the caller's identity.
// The token is trusted only for id/email/name; the role is re-fetched from
// the database so role changes apply on the next request.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{
				"success": false,
				"message": "No token provided. Please login to access this resource.",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.Status(401).JSON(fiber.Map{
				"success": false,
				"message": "Invalid authorization format. Use: Bearer <token>",
			})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token. Please login again.",
			})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{
				"success": false,
				"message": "User not found. Please login again.",
			})
		}

		identity := authz.Identity{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			RoleID: user.RoleID,
		}
		if user.Role != nil {
			identity.Role = user.Role.Name
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// Identity returns the caller resolved by RequireAuth
func Identity(c *fiber.Ctx) authz.Identity {
	identity, _ := c.Locals(identityKey).(authz.Identity)
	return identity
}

// RequireAdmin allows only the admin role. Used for resources that are
// admin-exclusive regardless of the permission matrix.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authz.RequireRole(Identity(c), model.RoleAdminID); err != nil {
			return c.Status(403).JSON(fiber.Map{
				"success": false,
				"message": "Access denied. Admin role required.",
			})
		}
		return c.Next()
	}
}

// RequirePermission gates a route on the permission matrix: the caller's role
// must hold the given action grant on the named page. Deny is a 403; a page
// missing from the registry is a deployment defect and surfaces as a 500.
func RequirePermission(evaluator *authz.Evaluator, pageName string, action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := evaluator.CanAccess(Identity(c), pageName, action)
		if err == nil {
			return c.Next()
		}

		switch {
		case errors.Is(err, authz.ErrPageNotConfigured):
			logrus.WithError(err).WithField("page", pageName).Error("permission gate misconfigured")
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"message": "Page configuration not found.",
			})
		case errors.Is(err, authz.ErrForbidden):
			return c.Status(403).JSON(fiber.Map{
				"success": false,
				"message": "Access denied. You don't have permission to " + string(action) + " " + strings.ToLower(pageName) + ".",
			})
		default:
			logrus.WithError(err).Error("permission check failed")
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"message": "Error checking permissions.",
			})
		}
	}
}
