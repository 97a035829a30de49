package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"beaute-shop/models"
	"beaute-shop/repositories"
)

const lowStockThreshold = 10

type ProductController struct {
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
	users    *repositories.UserRepository
}

func NewProductController(products *repositories.ProductRepository, orders *repositories.OrderRepository, users *repositories.UserRepository) *ProductController {
	return &ProductController{products: products, orders: orders, users: users}
}

func productCacheKey(c *gin.Context) string {
	return "products_list_" + c.Request.URL.RawQuery
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

func parseFilters(c *gin.Context) repositories.ProductFilters {
	filters := repositories.ProductFilters{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Ordering: c.Query("ordering"),
	}

	if raw := c.Query("min_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filters.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filters.MaxPrice = &v
		}
	}
	if raw := c.Query("is_featured"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filters.IsFeatured = &v
		}
	}
	if raw := c.Query("in_stock"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filters.InStock = &v
		}
	}
	return filters
}

// ListProducts godoc
// @Summary List products
// @Description Paginated catalog with search, category, price and stock filters
// @Tags Products
// @Produce json
// @Param search query string false "Search in name, description, category"
// @Param category query string false "Category slug or id"
// @Param min_price query string false "Minimum unit price"
// @Param max_price query string false "Maximum unit price"
// @Param ordering query string false "-created_at | price | -price | name"
// @Param is_featured query bool false "Featured only"
// @Param in_stock query bool false "In stock only"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} models.Page[models.Product]
// @Router /products/ [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	ctx := context.Background()
	cacheKey := productCacheKey(c)

	if models.RedisClient != nil {
		if cached, err := models.RedisClient.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	products := ctrl.products.List(parseFilters(c))
	envelope := paginate(c, products)

	if models.RedisClient != nil {
		if payload, err := json.Marshal(envelope); err == nil {
			models.RedisClient.Set(ctx, cacheKey, string(payload), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, envelope)
}

// GetProduct godoc
// @Summary Product detail
// @Tags Products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/ [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	product, err := ctrl.products.ByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Produit introuvable")
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductBySlug godoc
// @Summary Product detail by slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/by-slug/{slug}/ [get]
func (ctrl *ProductController) GetProductBySlug(c *gin.Context) {
	product, err := ctrl.products.BySlug(c.Param("slug"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Produit introuvable")
		return
	}
	c.JSON(http.StatusOK, product)
}

// FeaturedProducts godoc
// @Summary Featured products
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /products/featured/ [get]
func (ctrl *ProductController) FeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.products.Featured())
}

// SubmitReview godoc
// @Summary Review a product
// @Description One review per user per product; verified-purchase is derived from order history
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param request body models.ReviewRequest true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} models.ErrorResponse
// @Router /products/{id}/review/ [post]
func (ctrl *ProductController) SubmitReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "La note doit être comprise entre 1 et 5")
		return
	}

	user, ok := currentUser(c, ctrl.users)
	if !ok {
		return
	}

	verified := ctrl.orders.HasPurchased(user.ID, id)
	review, err := ctrl.products.AddReview(id, user, req.Rating, req.Comment, verified)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyReviewed) {
			respondError(c, http.StatusBadRequest, "Vous avez déjà laissé un avis sur ce produit")
			return
		}
		respondError(c, http.StatusNotFound, "Produit introuvable")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// SimilarProducts godoc
// @Summary Products of the same category
// @Tags Products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {array} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/similar/ [get]
func (ctrl *ProductController) SimilarProducts(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	products, err := ctrl.products.Similar(id, 4)
	if err != nil {
		respondError(c, http.StatusNotFound, "Produit introuvable")
		return
	}
	c.JSON(http.StatusOK, products)
}

// LowStockProducts godoc
// @Summary Products low on stock
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Product
// @Failure 403 {object} models.ErrorResponse
// @Router /products/low_stock/ [get]
func (ctrl *ProductController) LowStockProducts(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.products.LowStock(lowStockThreshold))
}

// ListCategories godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Page[models.Category]
// @Router /categories/ [get]
func (ctrl *ProductController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, paginate(c, ctrl.products.Categories()))
}

// GetCategory godoc
// @Summary Category detail
// @Tags Categories
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} models.Category
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id}/ [get]
func (ctrl *ProductController) GetCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	category, err := ctrl.products.CategoryByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Catégorie introuvable")
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetCategoryBySlug godoc
// @Summary Category detail by slug
// @Tags Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.Category
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/by-slug/{slug}/ [get]
func (ctrl *ProductController) GetCategoryBySlug(c *gin.Context) {
	category, err := ctrl.products.CategoryBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Catégorie introuvable")
		return
	}
	c.JSON(http.StatusOK, category)
}
