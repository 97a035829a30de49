package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"beaute-shop/repositories"
)

type WishlistController struct {
	wishlists *repositories.WishlistRepository
}

func NewWishlistController(wishlists *repositories.WishlistRepository) *WishlistController {
	return &WishlistController{wishlists: wishlists}
}

// GetWishlist godoc
// @Summary Get own wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Wishlist
// @Router /wishlist/ [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.wishlists.For(c.GetInt("user_id")))
}

// AddToWishlist godoc
// @Summary Add a product to the wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param product_id path int true "Product id"
// @Success 200 {object} models.Wishlist
// @Failure 404 {object} models.ErrorResponse
// @Router /wishlist/add/{product_id}/ [post]
func (ctrl *WishlistController) AddToWishlist(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	wishlist, err := ctrl.wishlists.Add(c.GetInt("user_id"), productID)
	if err != nil {
		respondError(c, http.StatusNotFound, "Produit introuvable")
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

// RemoveFromWishlist godoc
// @Summary Remove a product from the wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param product_id path int true "Product id"
// @Success 200 {object} models.Wishlist
// @Router /wishlist/remove/{product_id}/ [delete]
func (ctrl *WishlistController) RemoveFromWishlist(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}
	c.JSON(http.StatusOK, ctrl.wishlists.Remove(c.GetInt("user_id"), productID))
}
