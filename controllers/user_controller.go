package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beaute-shop/repositories"
)

type UserController struct {
	orders *repositories.OrderRepository
}

func NewUserController(orders *repositories.OrderRepository) *UserController {
	return &UserController{orders: orders}
}

// TopCustomers godoc
// @Summary Customers ranked by total spend
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.TopCustomer
// @Failure 403 {object} models.ErrorResponse
// @Router /users/top-customers/ [get]
func (ctrl *UserController) TopCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.orders.TopCustomers(10))
}
