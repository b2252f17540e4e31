package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in session for API routes and returns JSON
// 401 instead of a redirect.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}

// RequireOwner ensures the session belongs to an owner (or admin).
func RequireOwner(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	if !usercontext.IsOwner(c) && !usercontext.IsAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "forbidden",
			"message": "owner role required",
		})
	}
	return c.Next()
}

// RequireAdmin ensures the session belongs to an admin.
func RequireAdmin(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	if !usercontext.IsAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "forbidden",
			"message": "admin role required",
		})
	}
	return c.Next()
}
