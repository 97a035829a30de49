package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"beaute-shop/models"
	"beaute-shop/repositories"
)

type CouponController struct {
	coupons *repositories.CouponRepository
}

func NewCouponController(coupons *repositories.CouponRepository) *CouponController {
	return &CouponController{coupons: coupons}
}

// VerifyCoupon godoc
// @Summary Verify a coupon code
// @Description Checks the code against a cart total without consuming a use
// @Tags Coupons
// @Accept json
// @Produce json
// @Param request body models.VerifyCouponRequest true "Code and cart total"
// @Success 200 {object} models.CouponVerification
// @Router /coupons/verify/ [post]
func (ctrl *CouponController) VerifyCoupon(c *gin.Context) {
	var req models.VerifyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	coupon, discount, err := ctrl.coupons.Verify(req.Code, req.Total)
	if err != nil {
		// Invalid codes are a normal answer here, not an error response.
		c.JSON(http.StatusOK, models.CouponVerification{
			Valid:   false,
			Code:    strings.ToUpper(req.Code),
			Message: couponMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.CouponVerification{
		Valid:           true,
		Code:            coupon.Code,
		DiscountPercent: coupon.DiscountPercent,
		DiscountAmount:  discount,
	})
}

// ApplyCoupon godoc
// @Summary Apply a coupon code
// @Description Validates the code, counts one use and returns the new total
// @Tags Coupons
// @Accept json
// @Produce json
// @Param request body models.ApplyCouponRequest true "Code and cart total"
// @Success 200 {object} models.CouponApplication
// @Failure 400 {object} models.ErrorResponse
// @Router /coupons/apply/ [post]
func (ctrl *CouponController) ApplyCoupon(c *gin.Context) {
	var req models.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	coupon, discount, err := ctrl.coupons.Apply(req.Code, req.Total)
	if err != nil {
		respondError(c, http.StatusBadRequest, couponMessage(err))
		return
	}

	c.JSON(http.StatusOK, models.CouponApplication{
		Code:           coupon.Code,
		DiscountAmount: discount,
		Total:          req.Total.Sub(discount),
	})
}

// couponMessage strips the sentinel prefix, keeping the human part.
func couponMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return "Code promo invalide : " + msg[idx+2:]
	}
	return "Code promo invalide"
}
