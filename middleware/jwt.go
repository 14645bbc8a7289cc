package middleware

import (
	"strings"

	"legacy/admin"

	"github.com/gofiber/fiber/v2"
)

// AdminGate guards the backoffice routes. It accepts the session token from
// the Authorization header or the admin_session cookie.
func AdminGate(gate *admin.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ""
		if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		} else {
			token = c.Cookies("admin_session")
		}

		if token == "" || !gate.IsAuthenticated(token) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		// ให้ handler ปลายทางใช้ token เดิมได้ (logout)
		c.Locals("admin_token", token)
		return c.Next()
	}
}
