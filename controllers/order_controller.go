package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"beaute-shop/models"
	"beaute-shop/repositories"
)

type OrderController struct {
	orders *repositories.OrderRepository
	users  *repositories.UserRepository
	mailer *models.EmailService
}

func NewOrderController(orders *repositories.OrderRepository, users *repositories.UserRepository, mailer *models.EmailService) *OrderController {
	return &OrderController{orders: orders, users: users, mailer: mailer}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Checks stock, snapshots prices, applies the optional coupon
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /orders/ [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	user, ok := currentUser(c, ctrl.users)
	if !ok {
		return
	}

	order, err := ctrl.orders.Create(user, req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrInsufficientStock):
			respondError(c, http.StatusBadRequest, "Stock insuffisant")
		case errors.Is(err, repositories.ErrCouponInvalid):
			respondError(c, http.StatusBadRequest, "Code promo invalide")
		case errors.Is(err, repositories.ErrNotFound):
			respondError(c, http.StatusBadRequest, "Produit introuvable")
		default:
			respondError(c, http.StatusInternalServerError, "Échec de création de la commande")
		}
		return
	}

	invalidateProductCache()

	if ctrl.mailer != nil {
		if err := ctrl.mailer.SendOrderConfirmation(order.Email, order.ID, order.TotalAmount.StringFixed(2)); err != nil {
			log.Printf("Order confirmation email failed: %v", err)
		}
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders godoc
// @Summary List own orders
// @Description Staff accounts see every order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param ordering query string false "-created_at | status | total_amount"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} models.Page[models.Order]
// @Router /orders/ [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	user, ok := currentUser(c, ctrl.users)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, paginate(c, ctrl.orders.ListFor(user, c.Query("ordering"))))
}

// GetOrder godoc
// @Summary Order detail
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/ [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	user, ok := currentUser(c, ctrl.users)
	if !ok {
		return
	}

	order, err := ctrl.orders.ByID(id, user)
	if err != nil {
		respondError(c, http.StatusNotFound, "Commande introuvable")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order id"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /orders/{id}/update_status/ [post]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	order, err := ctrl.orders.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidStatus) {
			respondError(c, http.StatusBadRequest, "Statut invalide")
			return
		}
		respondError(c, http.StatusNotFound, "Commande introuvable")
		return
	}
	c.JSON(http.StatusOK, order)
}

// CancelOrder godoc
// @Summary Cancel an order
// @Description Only pending or confirmed orders; items are restocked
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /orders/{id}/cancel/ [post]
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	user, ok := currentUser(c, ctrl.users)
	if !ok {
		return
	}

	order, err := ctrl.orders.Cancel(id, user)
	if err != nil {
		if errors.Is(err, repositories.ErrNotCancellable) {
			respondError(c, http.StatusBadRequest, "Cette commande ne peut plus être annulée")
			return
		}
		respondError(c, http.StatusNotFound, "Commande introuvable")
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, order)
}

// DashboardStats godoc
// @Summary Admin dashboard aggregates
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 403 {object} models.ErrorResponse
// @Router /orders/dashboard_stats/ [get]
func (ctrl *OrderController) DashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.orders.Stats())
}

// RecentOrders godoc
// @Summary Latest orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Order
// @Failure 403 {object} models.ErrorResponse
// @Router /orders/recent/ [get]
func (ctrl *OrderController) RecentOrders(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.orders.Recent(10))
}
