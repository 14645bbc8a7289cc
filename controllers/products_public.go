package controllers

import (
	"context"
	"strconv"
	"time"

	"legacy/catalog"
	"legacy/models"
	"legacy/store"

	"github.com/gofiber/fiber/v2"
)

type ProductController struct {
	Catalog *catalog.Service
	Store   store.Gateway
}

type ProductsListResp struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

// GET /products  (list, newest first, filtered in memory)
//
// The whole collection is a few hundred records at most, so filtering happens
// here over the loaded list rather than in the store query. A store outage
// degrades to an empty list.
func (pc *ProductController) GetProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filters := catalog.Filters{
		Category: c.Query("category", "ALL"),
		Search:   c.Query("q"),
	}
	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil {
		filters.PriceMin = v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil {
		filters.PriceMax = v
	}

	products := catalog.Filter(pc.Catalog.LoadAll(ctx), filters)
	return c.JSON(ProductsListResp{Products: products, Total: len(products)})
}

// GET /categories  (filter vocabulary, "ALL" first)
func (pc *ProductController) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": append([]string{"ALL"}, models.Categories...),
	})
}

// GET /products/:id
func (pc *ProductController) GetProductByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var p models.Product
	err := pc.Store.ReadOne(ctx, "products", c.Params("id"), &p)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch product"})
	}
	return c.JSON(p)
}
