package controllers

import (
	"context"
	"log"
	"time"

	"legacy/models"
	"legacy/store"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Store store.Gateway
}

// POST /orders
func (oc *OrderController) CreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot parse order"})
	}
	if order.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}
	if order.Status == "" {
		order.Status = "pending"
	}

	id, err := oc.Store.Create(ctx, "orders", order)
	if err != nil {
		log.Println("orders: create:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create order"})
	}

	return c.JSON(fiber.Map{"message": "Order created", "id": id})
}

// GET /orders?userId=X  (that user's orders, newest first)
func (oc *OrderController) GetUserOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	var orders []models.Order
	q := store.Query{
		Eq:     map[string]interface{}{"userId": userID},
		SortBy: "createdAt",
		Desc:   true,
	}
	if err := oc.Store.ReadMany(ctx, "orders", q, &orders); err != nil {
		log.Println("orders: list:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch orders"})
	}
	if orders == nil {
		orders = []models.Order{}
	}

	return c.JSON(fiber.Map{"orders": orders, "total": len(orders)})
}
