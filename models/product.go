package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Slug         string `json:"slug"`
	IsActive     bool   `json:"is_active"`
	ProductCount int    `json:"product_count"`
}

type Product struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Price             decimal.Decimal  `json:"price"`
	DiscountPrice     *decimal.Decimal `json:"discount_price,omitempty"`
	Category          Category         `json:"category"`
	Stock             int              `json:"stock"`
	Thumbnail         string           `json:"thumbnail"`
	Image             string           `json:"image"`
	AdditionalImages  []ProductImage   `json:"additional_images,omitempty"`
	Ingredients       string           `json:"ingredients"`
	UsageInstructions string           `json:"usage_instructions"`
	Weight            string           `json:"weight"`
	IsActive          bool             `json:"is_active"`
	IsFeatured        bool             `json:"is_featured"`
	Slug              string           `json:"slug"`
	AverageRating     *float64         `json:"average_rating"`
	Reviews           []Review         `json:"reviews,omitempty"`
	ReviewCount       int              `json:"review_count"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// UnitPrice is the price a storefront charges for the product right now:
// the discount price when one is set, the regular price otherwise.
func (p Product) UnitPrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

func (p Product) IsInStock() bool {
	return p.Stock > 0
}

type ProductImage struct {
	ID      int    `json:"id"`
	Image   string `json:"image"`
	AltText string `json:"alt_text"`
	Order   int    `json:"order"`
}

type Review struct {
	ID                 int       `json:"id"`
	User               User      `json:"user"`
	Rating             int       `json:"rating"`
	Comment            string    `json:"comment"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	CreatedAt          time.Time `json:"created_at"`
}

type Wishlist struct {
	ID        int       `json:"id"`
	Products  []Product `json:"products"`
	CreatedAt time.Time `json:"created_at"`
}
