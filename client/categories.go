package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"beaute-shop/models"
)

func (c *Client) ListCategories(ctx context.Context, page, pageSize int) (*models.Page[models.Category], error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}

	var result models.Page[models.Category]
	if err := c.get(ctx, "/categories/", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	if err := c.get(ctx, fmt.Sprintf("/categories/%d/", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := c.get(ctx, "/categories/by-slug/"+url.PathEscape(slug)+"/", nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
