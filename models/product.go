package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is one catalog item. Price fields are display strings ("$180"),
// never parsed beyond stripping non-numeric characters for range filtering.
// The optional fields omit from JSON when empty but always serialize to bson:
// an admin edit is a full-field overwrite, so saving a product without a
// discount or buy URL must clear the stored values.
type Product struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name"`
	Price              string             `json:"price" bson:"price"`
	OriginalPrice      string             `json:"originalPrice,omitempty" bson:"originalPrice"`
	DiscountPercentage int                `json:"discountPercentage,omitempty" bson:"discountPercentage"`
	Category           string             `json:"category" bson:"category"`
	Image              string             `json:"image" bson:"image"`
	Description        string             `json:"description" bson:"description"`
	BuyURL             string             `json:"buyUrl,omitempty" bson:"buyUrl"`
	CreatedAt          time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt          time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Categories is the fixed vocabulary shown by the storefront filter bar.
// "ALL" is a filter value only, never stored on a product.
var Categories = []string{"DIGITAL PRODUCTS", "SHOES", "CLOTHING", "ACCESSORIES", "NEW ARRIVALS"}
