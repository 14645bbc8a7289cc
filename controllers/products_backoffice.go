package controllers

import (
	"context"
	"log"
	"time"

	"legacy/models"
	"legacy/store"

	"github.com/gofiber/fiber/v2"
)

// Admin product CRUD. The store assigns ids and timestamps on create; edits
// overwrite every field and refresh updatedAt; deletes are hard and
// irreversible (the admin UI confirms before calling).

// POST /admin/products
func (pc *ProductController) AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot parse product"})
	}

	id, err := pc.Store.Create(ctx, "products", product)
	if err != nil {
		log.Println("admin: add product:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to add product"})
	}

	return c.JSON(fiber.Map{"message": "Product added", "id": id})
}

// PUT /admin/products/:id  (full-field overwrite)
func (pc *ProductController) UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot parse product"})
	}

	id := c.Params("id")
	err := pc.Store.Update(ctx, "products", id, product)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		log.Println("admin: update product:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update product"})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "id": id})
}

// DELETE /admin/products/:id
func (pc *ProductController) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Params("id")
	err := pc.Store.Delete(ctx, "products", id)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		log.Println("admin: delete product:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete product"})
	}

	return c.JSON(fiber.Map{"message": "Product deleted", "id": id})
}
