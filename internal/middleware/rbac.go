package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdmin is the single authorization guard for admin-only routes.
// Every admin operation goes through here instead of repeating the role
// check inline in each handler.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.IsAdmin() {
			return Forbidden("Admin role required for this operation")
		}

		return c.Next()
	}
}
