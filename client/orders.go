package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"beaute-shop/models"
)

type OrderListParams struct {
	Ordering string
	Page     int
	PageSize int
}

func (p OrderListParams) values() url.Values {
	q := url.Values{}
	if p.Ordering != "" {
		q.Set("ordering", p.Ordering)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	return q
}

// ListOrders returns the caller's orders; staff accounts see every order.
func (c *Client) ListOrders(ctx context.Context, params OrderListParams) (*models.Page[models.Order], error) {
	var page models.Page[models.Order]
	if err := c.get(ctx, "/orders/", params.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d/", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder places an order. Prices are snapshotted and stock is reserved
// server-side; the request only carries product ids and quantities.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.post(ctx, "/orders/", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus is staff-only.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	var order models.Order
	req := models.UpdateOrderStatusRequest{Status: status}
	if err := c.post(ctx, fmt.Sprintf("/orders/%d/update_status/", id), req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels one of the caller's orders while it is still pending
// or confirmed.
func (c *Client) CancelOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := c.post(ctx, fmt.Sprintf("/orders/%d/cancel/", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DashboardStats is staff-only.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.get(ctx, "/orders/dashboard_stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecentOrders is staff-only.
func (c *Client) RecentOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/orders/recent/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
