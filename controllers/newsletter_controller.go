package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"beaute-shop/models"
	"beaute-shop/repositories"
)

type NewsletterController struct {
	users  *repositories.UserRepository
	mailer *models.EmailService
}

func NewNewsletterController(users *repositories.UserRepository, mailer *models.EmailService) *NewsletterController {
	return &NewsletterController{users: users, mailer: mailer}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body models.NewsletterRequest true "Email"
// @Success 200 {object} models.ErrorResponse
// @Router /newsletter/subscribe/ [post]
func (ctrl *NewsletterController) Subscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Adresse email invalide")
		return
	}

	ctrl.users.SubscribeNewsletter(req.Email)

	if ctrl.mailer != nil {
		if err := ctrl.mailer.SendNewsletterConfirmation(req.Email); err != nil {
			log.Printf("Newsletter confirmation email failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inscription à la newsletter confirmée"})
}

// Unsubscribe godoc
// @Summary Unsubscribe from the newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body models.NewsletterRequest true "Email"
// @Success 200 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /newsletter/unsubscribe/ [post]
func (ctrl *NewsletterController) Unsubscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Adresse email invalide")
		return
	}

	if !ctrl.users.UnsubscribeNewsletter(req.Email) {
		respondError(c, http.StatusNotFound, "Cette adresse n'est pas inscrite à la newsletter")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Désinscription confirmée"})
}
