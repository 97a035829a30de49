package client

import (
	"context"

	"beaute-shop/models"
)

// TopCustomers ranks customers by total spend. Staff-only.
func (c *Client) TopCustomers(ctx context.Context) ([]models.TopCustomer, error) {
	var customers []models.TopCustomer
	if err := c.get(ctx, "/users/top-customers/", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
