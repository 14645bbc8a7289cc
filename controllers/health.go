package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GET /api/health
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"message":   "LEGACY API is working",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
