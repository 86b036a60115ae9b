package handler

import (
	"errors"

	"go-lottery-admin/internal/middleware"
	"go-lottery-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user authentication
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	if req.Email == "" || req.Password == "" {
		return fail(c, 400, "Email and password are required")
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fail(c, 401, "Invalid email or password")
		}
		return fail(c, 500, "An error occurred during login. Please try again.")
	}

	return success(c, 200, "Login successful", response)
}

// Logout acknowledges the logout; tokens are stateless and simply expire
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return success(c, 200, "Logged out successfully", nil)
}

// Profile returns the authenticated user's profile
// GET /api/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	user, err := h.authService.Profile(identity.ID)
	if err != nil {
		return fail(c, 404, "User not found")
	}

	return success(c, 200, "Profile fetched successfully", fiber.Map{"user": user})
}
