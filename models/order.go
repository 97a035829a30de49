package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// OrderStatusLabels maps a status code to its display label, matching the
// labels the storefront shows to customers.
var OrderStatusLabels = map[string]string{
	OrderStatusPending:    "En attente",
	OrderStatusConfirmed:  "Confirmée",
	OrderStatusProcessing: "En préparation",
	OrderStatusShipped:    "Expédiée",
	OrderStatusDelivered:  "Livrée",
	OrderStatusCancelled:  "Annulée",
}

type Order struct {
	ID              int             `json:"id"`
	User            User            `json:"user"`
	Status          string          `json:"status"`
	StatusDisplay   string          `json:"status_display"`
	PaymentStatus   string          `json:"payment_status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingAddress string          `json:"shipping_address"`
	BillingAddress  string          `json:"billing_address"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	TrackingNumber  string          `json:"tracking_number"`
	Notes           string          `json:"notes"`
	Coupon          *Coupon         `json:"coupon,omitempty"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID       int             `json:"id"`
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type Coupon struct {
	ID              int             `json:"id"`
	Code            string          `json:"code"`
	Description     string          `json:"description"`
	DiscountPercent int             `json:"discount_percent"`
	MinimumAmount   decimal.Decimal `json:"minimum_amount"`
	ValidFrom       time.Time       `json:"valid_from"`
	ValidTo         time.Time       `json:"valid_to"`
	IsActive        bool            `json:"is_active"`
	UsageLimit      int             `json:"usage_limit"`
	TimesUsed       int             `json:"times_used"`
}
