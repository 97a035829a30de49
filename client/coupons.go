package client

import (
	"context"

	"github.com/shopspring/decimal"

	"beaute-shop/models"
)

// VerifyCoupon checks a code against the given cart total without consuming
// a use.
func (c *Client) VerifyCoupon(ctx context.Context, code string, total decimal.Decimal) (*models.CouponVerification, error) {
	var result models.CouponVerification
	req := models.VerifyCouponRequest{Code: code, Total: total}
	if err := c.post(ctx, "/coupons/verify/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyCoupon validates the code and returns the discounted total, counting
// one use of the coupon.
func (c *Client) ApplyCoupon(ctx context.Context, code string, total decimal.Decimal) (*models.CouponApplication, error) {
	var result models.CouponApplication
	req := models.ApplyCouponRequest{Code: code, Total: total}
	if err := c.post(ctx, "/coupons/apply/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
