package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"beaute-shop/models"
)

type CouponRepository struct {
	s *Store
}

func NewCouponRepository(s *Store) *CouponRepository {
	return &CouponRepository{s: s}
}

// couponByCode must be called with the lock held. Codes are
// case-insensitive.
func (s *Store) couponByCode(code string) *models.Coupon {
	for _, c := range s.coupons {
		if strings.EqualFold(c.Code, code) {
			return c
		}
	}
	return nil
}

// validateCoupon checks a coupon against a cart total and returns the
// discount it grants. Must be called with the lock held.
func (s *Store) validateCoupon(code string, total decimal.Decimal) (*models.Coupon, decimal.Decimal, error) {
	c := s.couponByCode(code)
	if c == nil {
		return nil, decimal.Zero, fmt.Errorf("%w: code inconnu", ErrCouponInvalid)
	}

	now := time.Now()
	switch {
	case !c.IsActive:
		return nil, decimal.Zero, fmt.Errorf("%w: code désactivé", ErrCouponInvalid)
	case now.Before(c.ValidFrom) || now.After(c.ValidTo):
		return nil, decimal.Zero, fmt.Errorf("%w: code expiré", ErrCouponInvalid)
	case c.UsageLimit > 0 && c.TimesUsed >= c.UsageLimit:
		return nil, decimal.Zero, fmt.Errorf("%w: limite d'utilisation atteinte", ErrCouponInvalid)
	case total.LessThan(c.MinimumAmount):
		return nil, decimal.Zero, fmt.Errorf("%w: montant minimum de %s € non atteint", ErrCouponInvalid, c.MinimumAmount)
	}

	discount := total.Mul(decimal.NewFromInt(int64(c.DiscountPercent))).Div(decimal.NewFromInt(100)).Round(2)
	return c, discount, nil
}

// Verify checks a code without consuming a use.
func (r *CouponRepository) Verify(code string, total decimal.Decimal) (*models.Coupon, decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, discount, err := r.s.validateCoupon(code, total)
	if err != nil {
		return nil, decimal.Zero, err
	}
	clone := *c
	return &clone, discount, nil
}

// Apply validates the code and counts one use.
func (r *CouponRepository) Apply(code string, total decimal.Decimal) (*models.Coupon, decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, discount, err := r.s.validateCoupon(code, total)
	if err != nil {
		return nil, decimal.Zero, err
	}
	c.TimesUsed++
	clone := *c
	return &clone, discount, nil
}
