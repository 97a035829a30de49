package models

import "github.com/shopspring/decimal"

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardStats struct {
	TotalOrders      int             `json:"total_orders"`
	RecentOrders     int             `json:"recent_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	RecentRevenue    decimal.Decimal `json:"recent_revenue"`
	TotalCustomers   int             `json:"total_customers"`
	LowStockProducts int             `json:"low_stock_products"`
	TopProducts      []Product       `json:"top_products"`
	OrdersByStatus   []StatusCount   `json:"orders_by_status"`
}

type TopCustomer struct {
	User       User            `json:"user"`
	OrderCount int             `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}
