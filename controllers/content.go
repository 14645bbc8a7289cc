package controllers

import (
	"context"
	"log"
	"time"

	"legacy/content"
	"legacy/models"

	"github.com/gofiber/fiber/v2"
)

type ContentController struct {
	Content *content.Service
}

// Public reads. These never fail: absent documents and store outages both
// come back as the built-in defaults.

// GET /about
func (cc *ContentController) GetAbout(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.JSON(cc.Content.GetAbout(ctx))
}

// GET /rules
func (cc *ContentController) GetRules(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.JSON(cc.Content.GetRules(ctx))
}

// GET /social
func (cc *ContentController) GetSocial(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.JSON(cc.Content.GetSocial(ctx))
}

// Admin saves. Each save replaces the whole document (upsert); the last
// writer wins on concurrent edits.

// PUT /admin/about
func (cc *ContentController) SaveAbout(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var about models.AboutContent
	if err := c.BodyParser(&about); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot parse content"})
	}
	if err := cc.Content.SaveAbout(ctx, about); err != nil {
		log.Println("admin: save about:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save content"})
	}
	return c.JSON(fiber.Map{"message": "About content saved"})
}

// PUT /admin/rules
func (cc *ContentController) SaveRules(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var rules models.CompanyRules
	if err := c.BodyParser(&rules); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot parse rules"})
	}
	if err := cc.Content.SaveRules(ctx, rules); err != nil {
		log.Println("admin: save rules:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save rules"})
	}
	return c.JSON(fiber.Map{"message": "Company rules saved"})
}

// PUT /admin/social
func (cc *ContentController) SaveSocial(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var social models.SocialMediaURLs
	if err := c.BodyParser(&social); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot parse urls"})
	}
	if err := cc.Content.SaveSocial(ctx, social); err != nil {
		log.Println("admin: save social urls:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save urls"})
	}
	return c.JSON(fiber.Map{"message": "Social media URLs saved"})
}
