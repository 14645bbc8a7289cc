package controllers

import (
	"context"
	"log"
	"time"

	"legacy/models"
	"legacy/store"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Store store.Gateway
}

// GET /users/:id
func (uc *UserController) GetUserProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := uc.Store.ReadOne(ctx, "users", c.Params("id"), &user)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	if err != nil {
		log.Println("users: get profile:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch profile"})
	}
	return c.JSON(user)
}

// PUT /users/:id
func (uc *UserController) UpdateUserProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot parse profile"})
	}

	id := c.Params("id")
	err := uc.Store.Update(ctx, "users", id, user)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	if err != nil {
		log.Println("users: update profile:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated", "id": id})
}
