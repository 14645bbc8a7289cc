package controllers

import (
	"legacy/admin"
	"legacy/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Gate *admin.Gate
}

// POST /login
// The response on a wrong password is deliberately generic.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot parse request"})
	}

	token, ok := ac.Gate.Authenticate(input.Password)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid password"})
	}

	utils.SetAdminCookie(c, token)
	return c.JSON(fiber.Map{"message": "Logged in", "token": token})
}

// POST /admin/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if token, ok := c.Locals("admin_token").(string); ok {
		ac.Gate.Logout(token)
	}
	utils.ClearAdminCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}
