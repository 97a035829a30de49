package client

import (
	"context"
	"fmt"

	"beaute-shop/models"
)

func (c *Client) Wishlist(ctx context.Context) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := c.get(ctx, "/wishlist/", nil, &wishlist); err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (c *Client) AddToWishlist(ctx context.Context, productID int) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := c.post(ctx, fmt.Sprintf("/wishlist/add/%d/", productID), nil, &wishlist); err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (c *Client) RemoveFromWishlist(ctx context.Context, productID int) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := c.delete(ctx, fmt.Sprintf("/wishlist/remove/%d/", productID), &wishlist); err != nil {
		return nil, err
	}
	return &wishlist, nil
}
