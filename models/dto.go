package models

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenPair is the SimpleJWT-shaped response of POST /token/.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"omitempty"`
	LastName  string `json:"last_name" binding:"omitempty"`
}

type UpdateProfileRequest struct {
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Newsletter bool   `json:"newsletter"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type OrderItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	BillingAddress  string             `json:"billing_address"`
	Phone           string             `json:"phone" binding:"required"`
	Email           string             `json:"email" binding:"required,email"`
	Notes           string             `json:"notes"`
	CouponCode      string             `json:"coupon_code"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type VerifyCouponRequest struct {
	Code  string          `json:"code" binding:"required"`
	Total decimal.Decimal `json:"total"`
}

type CouponVerification struct {
	Valid           bool            `json:"valid"`
	Code            string          `json:"code"`
	DiscountPercent int             `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	Message         string          `json:"message,omitempty"`
}

type ApplyCouponRequest struct {
	Code  string          `json:"code" binding:"required"`
	Total decimal.Decimal `json:"total" binding:"required"`
}

type CouponApplication struct {
	Code           string          `json:"code"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ErrorResponse is the failure body every endpoint emits. Message is the
// field the client's response hook surfaces to the user.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
