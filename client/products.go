package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"beaute-shop/models"
)

// Orderings accepted by the product list endpoint.
const (
	OrderingNewest    = "-created_at"
	OrderingPriceAsc  = "price"
	OrderingPriceDesc = "-price"
	OrderingName      = "name"
)

// ProductListParams narrows GET /products/. Zero values are omitted from
// the query string.
type ProductListParams struct {
	Search     string
	Category   string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Ordering   string
	IsFeatured *bool
	InStock    *bool
	Page       int
	PageSize   int
}

func (p ProductListParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.MinPrice != nil {
		q.Set("min_price", p.MinPrice.String())
	}
	if p.MaxPrice != nil {
		q.Set("max_price", p.MaxPrice.String())
	}
	if p.Ordering != "" {
		q.Set("ordering", p.Ordering)
	}
	if p.IsFeatured != nil {
		q.Set("is_featured", strconv.FormatBool(*p.IsFeatured))
	}
	if p.InStock != nil {
		q.Set("in_stock", strconv.FormatBool(*p.InStock))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	return q
}

func (c *Client) ListProducts(ctx context.Context, params ProductListParams) (*models.Page[models.Product], error) {
	var page models.Page[models.Product]
	if err := c.get(ctx, "/products/", params.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d/", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/products/by-slug/"+url.PathEscape(slug)+"/", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products/featured/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SubmitReview posts a review on a product. The server enforces one review
// per user per product.
func (c *Client) SubmitReview(ctx context.Context, productID int, req models.ReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := c.post(ctx, fmt.Sprintf("/products/%d/review/", productID), req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) SimilarProducts(ctx context.Context, productID int) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d/similar/", productID), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// LowStockProducts is staff-only.
func (c *Client) LowStockProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products/low_stock/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
