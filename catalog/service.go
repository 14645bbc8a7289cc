package catalog

import (
	"context"
	"log"

	"legacy/models"
	"legacy/store"
)

// Service loads the product collection through the document store.
type Service struct {
	Store store.Gateway
}

func NewService(gw store.Gateway) *Service {
	return &Service{Store: gw}
}

// LoadAll returns every product, newest first. A store failure is logged and
// yields an empty list; the storefront shows an empty state rather than an
// error page. No retry.
func (s *Service) LoadAll(ctx context.Context) []models.Product {
	var products []models.Product
	q := store.Query{SortBy: "createdAt", Desc: true}
	if err := s.Store.ReadMany(ctx, "products", q, &products); err != nil {
		log.Println("catalog: load products:", err)
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}
